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

package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/value"
)

func TestCexAppendStateValidatesIndex(t *testing.T) {
	cex := value.NewCex()
	err := cex.AppendState(0, value.NewState(nil))
	require.NoError(t, err)

	err = cex.AppendState(5, value.NewState(&value.StateInfo{Action: "Next"}))
	require.Error(t, err)

	err = cex.AppendState(1, value.NewState(&value.StateInfo{Action: "Next"}))
	require.NoError(t, err)
	require.Len(t, cex.States, 2)
}

func TestCexSetFalsifiedOnce(t *testing.T) {
	cex := value.NewCex()
	require.NoError(t, cex.SetFalsified("Inv"))
	require.Error(t, cex.SetFalsified("Inv2"))
}

func TestCexLoopShapeInvariant(t *testing.T) {
	cex := value.NewCex()
	require.NoError(t, cex.AppendState(0, value.NewState(nil)))
	require.NoError(t, cex.AppendState(1, value.NewState(&value.StateInfo{Action: "Next"})))

	require.Error(t, cex.SetShape(value.Loop(5)))
	require.NoError(t, cex.SetShape(value.Loop(0)))

	idx, ok := cex.Shape.LoopIndex()
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestCexStutteringShape(t *testing.T) {
	cex := value.NewCex()
	require.NoError(t, cex.SetShape(value.Stuttering()))
	require.True(t, cex.Shape.IsStuttering())
}
