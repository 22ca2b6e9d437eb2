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

package tlccode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/tlccode"
)

func TestExitIsError(t *testing.T) {
	require.False(t, tlccode.ExitSuccess.IsError())
	require.False(t, tlccode.ExitViolationSafety.IsError())
	require.False(t, tlccode.ExitViolationLiveness.IsError())

	require.True(t, tlccode.ExitViolationAssumption.IsError())
	require.True(t, tlccode.ExitViolationDeadlock.IsError())
	require.True(t, tlccode.ExitViolationAssert.IsError())
	require.True(t, tlccode.ExitPlainError.IsError())
	require.True(t, tlccode.ExitFailureSpecEval.IsError())
	require.True(t, tlccode.ExitErrorSystem.IsError())
}

func TestExitString(t *testing.T) {
	require.Equal(t, "success", tlccode.ExitSuccess.String())
	require.Equal(t, "[violation] deadlock", tlccode.ExitViolationDeadlock.String())
}
