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

package tlcrun_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/diag"
	"github.com/ocamlpro/matla/outcome"
	"github.com/ocamlpro/matla/tlccode"
	"github.com/ocamlpro/matla/tlcmsg"
	"github.com/ocamlpro/matla/tlcproc"
	"github.com/ocamlpro/matla/tlcrun"
	"github.com/ocamlpro/matla/value"
)

type fakeSink struct {
	messages []string
	errs     []diag.TlcError
	cexes    []*value.Cex
	outcomes []outcome.RunOutcome
}

func (s *fakeSink) HandleMessage(msg string, level tlcproc.LogLevel) {
	s.messages = append(s.messages, msg)
}

func (s *fakeSink) HandleOutcome(o outcome.RunOutcome) {
	s.outcomes = append(s.outcomes, o)
}

func (s *fakeSink) HandleError(e diag.TlcError) error {
	s.errs = append(s.errs, e)
	return nil
}

func (s *fakeSink) HandleCex(c *value.Cex) {
	s.cexes = append(s.cexes, c)
}

func line(s string) tlcmsg.Elm { return tlcmsg.Elm{Line: &s} }

func coded(code tlccode.Code, lines ...string) *tlcmsg.Msg {
	elms := make([]tlcmsg.Elm, len(lines))
	for i, l := range lines {
		elms[i] = line(l)
	}
	msg := tlcmsg.NewMsg(&code, tlcmsg.NewElms(elms...), false)
	return &msg
}

func plain(text string) *tlcmsg.Msg {
	msg := tlcmsg.NewMsg(nil, tlcmsg.NewElms(line(text)), false)
	return &msg
}

func newTestRuntime() (*tlcrun.Runtime, *fakeSink, tlcrun.Ctx) {
	sink := &fakeSink{}
	ctx := tlcrun.Ctx{Out: sink}
	return tlcrun.NewRuntime(ctx), sink, ctx
}

func TestRuntimeCleanRunSucceeds(t *testing.T) {
	r, sink, _ := newTestRuntime()

	steps := []*tlcmsg.Msg{
		coded(tlccode.NormalTlcVersion, "TLC version 2.18"),
		coded(tlccode.StatusTlcSanyStart),
		plain("Parsing file Spec.tla"),
		coded(tlccode.StatusTlcSanyEnd),
		coded(tlccode.StatusTlcStarting),
		coded(tlccode.StatusTlcComputingInit),
		coded(tlccode.StatusTlcInitGenerated1, "1 state generated"),
		coded(tlccode.StatsTlcProgressStats, "progress"),
		coded(tlccode.StatusTlcSuccess),
	}

	for _, msg := range steps {
		final, err := r.Handle(msg)
		require.NoError(t, err)
		require.Nil(t, final)
	}

	final, err := r.Handle(coded(tlccode.StatusTlcFinished))
	require.NoError(t, err)
	require.NotNil(t, final)
	require.True(t, final.IsSuccess())
	require.Empty(t, sink.errs)
}

// A failed run does not unwind the mode stack all the way down on its
// own: the Error frame that absorbs StatusTlcFinished settles back onto
// Analysis instead of finalizing the run, so Handle keeps returning a nil
// outcome. The caller is expected to call Finish once TLC's output ends,
// exactly like Run does.
func TestRuntimeAssertFailureReportsProblemOutcome(t *testing.T) {
	r, sink, ctx := newTestRuntime()

	warmup := []*tlcmsg.Msg{
		coded(tlccode.StatusTlcSanyStart),
		coded(tlccode.StatusTlcSanyEnd),
		coded(tlccode.StatusTlcStarting),
		coded(tlccode.StatusTlcComputingInit),
		coded(tlccode.StatusTlcInitGenerated1),
	}
	for _, msg := range warmup {
		_, err := r.Handle(msg)
		require.NoError(t, err)
	}

	_, err := r.Handle(coded(tlccode.ProblemTlcValueAssertFailed,
		`The first argument of Assert evaluated to FALSE; the second argument was :`,
		`"the bank must balance"`))
	require.NoError(t, err)

	final, err := r.Handle(coded(tlccode.StatusTlcFinished))
	require.NoError(t, err)
	require.Nil(t, final)
	require.Len(t, sink.errs, 1)

	run, ok := sink.errs[0].(*diag.RunError)
	require.True(t, ok)
	require.Contains(t, run.Error(), "assertion failed")

	finished, err := r.Finish(ctx)
	require.NoError(t, err)
	require.False(t, finished.IsSuccess())
	require.Len(t, sink.errs, 1)
}

func TestRuntimeDeadlockReportsProblemOutcome(t *testing.T) {
	r, sink, ctx := newTestRuntime()

	warmup := []*tlcmsg.Msg{
		coded(tlccode.StatusTlcSanyStart),
		coded(tlccode.StatusTlcSanyEnd),
		coded(tlccode.StatusTlcStarting),
		coded(tlccode.StatusTlcComputingInit),
		coded(tlccode.StatusTlcInitGenerated1),
	}
	for _, msg := range warmup {
		_, err := r.Handle(msg)
		require.NoError(t, err)
	}

	_, err := r.Handle(coded(tlccode.UnsafeDeadlockReached, "Deadlock reached"))
	require.NoError(t, err)

	final, err := r.Handle(coded(tlccode.StatusTlcFinished))
	require.NoError(t, err)
	require.Nil(t, final)
	require.Len(t, sink.errs, 1)

	finished, err := r.Finish(ctx)
	require.NoError(t, err)
	require.True(t, finished.IsDeadlock())
	require.Len(t, sink.errs, 1)
}

func TestRuntimeInvariantViolationCollectsCex(t *testing.T) {
	r, sink, _ := newTestRuntime()

	warmup := []*tlcmsg.Msg{
		coded(tlccode.StatusTlcSanyStart),
		coded(tlccode.StatusTlcSanyEnd),
		coded(tlccode.StatusTlcStarting),
		coded(tlccode.StatusTlcComputingInit),
		coded(tlccode.StatusTlcInitGenerated1),
	}
	for _, msg := range warmup {
		_, err := r.Handle(msg)
		require.NoError(t, err)
	}

	_, err := r.Handle(coded(tlccode.UnsafeInvariantViolatedBehavior, "Invariant Inv is violated."))
	require.NoError(t, err)

	_, err = r.Handle(coded(tlccode.CexTlcTraceState, "1: <Initial predicate>", "/\\ x = 0"))
	require.NoError(t, err)

	_, err = r.Handle(coded(tlccode.CexTlcTraceState,
		"2: <Next line 3, col 1 to line 3, col 10 of module Spec>", "/\\ x = 1"))
	require.NoError(t, err)

	_, err = r.Handle(coded(tlccode.NormalTlcCheckingTemporalPropsEnd))
	require.NoError(t, err)

	final, err := r.Handle(coded(tlccode.StatusTlcFinished))
	require.NoError(t, err)
	require.NotNil(t, final)
	require.False(t, final.IsSuccess())

	require.Len(t, sink.cexes, 1)
	require.Len(t, sink.cexes[0].States, 2)
	name, _ := sink.cexes[0].FalsifiedName()
	require.Equal(t, "Inv", name)
}

// A message no mode on the stack can make sense of (StatusTlcFinished
// arriving with nothing underway yet) is logged and dropped, not treated
// as fatal: TLC can print plenty that no mode cares about.
func TestRuntimeUnhandleableMessageIsDropped(t *testing.T) {
	r, _, _ := newTestRuntime()
	final, err := r.Handle(coded(tlccode.StatusTlcFinished))
	require.NoError(t, err)
	require.Nil(t, final)
}
