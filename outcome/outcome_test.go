// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package outcome_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/outcome"
	"github.com/ocamlpro/matla/tlccode"
)

func TestRunOutcomeUpdateMonotonic(t *testing.T) {
	r := outcome.Success()
	r.Update(outcome.Failure(outcome.Unsafe()))
	require.False(t, r.IsSuccess())

	r.Update(outcome.Success())
	require.False(t, r.IsSuccess(), "once failed, a later success must not overwrite it")
}

func TestRunOutcomeDeadlock(t *testing.T) {
	r := outcome.Failure(outcome.Deadlock())
	require.True(t, r.IsDeadlock())
}

func TestProcessOutcomeKnown(t *testing.T) {
	p := outcome.NewProcessOutcome(int(tlccode.ExitSuccess))
	require.True(t, p.Known)
	require.Equal(t, tlccode.ExitSuccess, p.Status)
}

func TestProcessOutcomeUnknown(t *testing.T) {
	p := outcome.NewProcessOutcome(999)
	require.False(t, p.Known)
}

func TestToConciseSuccessFromRun(t *testing.T) {
	run := outcome.Success()
	o := outcome.NewOutcome(outcome.NewProcessOutcome(0), &run, time.Second, time.Time{})
	require.True(t, o.ToConcise().IsSuccess())
}

func TestToConciseUnsafeFromRun(t *testing.T) {
	run := outcome.Failure(outcome.Unsafe())
	o := outcome.NewOutcome(outcome.NewProcessOutcome(int(tlccode.ExitViolationSafety)), &run, 0, time.Time{})
	require.True(t, o.ToConcise().IsUnsafe())
}

func TestToConciseFromProcessWhenRunAbsent(t *testing.T) {
	o := outcome.NewOutcome(outcome.NewProcessOutcome(int(tlccode.ExitViolationSafety)), nil, 0, time.Time{})
	require.True(t, o.ToConcise().IsUnsafe())
}

func TestToConciseExitCodeMapping(t *testing.T) {
	require.Equal(t, 0, mustConcise(t, 0).ToExitCode())
	require.Equal(t, 10, mustConcise(t, 10).ToExitCode())
	require.Equal(t, 20, mustConcise(t, 20).ToExitCode())
	require.Equal(t, 25, mustConcise(t, 25).ToExitCode())
	require.Equal(t, 2, mustConcise(t, 2).ToExitCode())
	require.Equal(t, -1, mustConcise(t, -1).ToExitCode())
}

func mustConcise(t *testing.T, code int) outcome.ConciseOutcome {
	t.Helper()
	c, err := outcome.FromExitCode(code)
	require.NoError(t, err)
	return c
}

func TestFromExitCodeRejectsUnknown(t *testing.T) {
	_, err := outcome.FromExitCode(42)
	require.Error(t, err)
}

func TestExpecting(t *testing.T) {
	require.NoError(t, mustConcise(t, 0).Expecting(mustConcise(t, 0)))
	require.Error(t, mustConcise(t, 0).Expecting(mustConcise(t, 10)))
}
