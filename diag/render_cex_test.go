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

package diag_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/diag"
	"github.com/ocamlpro/matla/pos"
	"github.com/ocamlpro/matla/value"
)

func stateWith(t *testing.T, info *value.StateInfo, bindings map[string]value.Plain) value.State {
	t.Helper()
	s := value.NewState(info)
	for k, v := range bindings {
		s.Values.Set(k, v)
	}
	return s
}

func TestCexRendererRendersInitialStateHeader(t *testing.T) {
	cex := value.NewCex()
	require.NoError(t, cex.SetFalsified("Invariant"))
	require.NoError(t, cex.AppendState(0, stateWith(t, nil, map[string]value.Plain{
		"x": value.FromInt(big.NewInt(1)),
	})))

	out := diag.NewCexRenderer(cex).Render()
	joined := strings.Join(out, "\n")
	require.Contains(t, joined, "invariant `Invariant` is falsified")
	require.Contains(t, joined, "initial state")
	require.Contains(t, joined, "x: 1")
}

func TestCexRendererRendersTransitionWithAction(t *testing.T) {
	cex := value.NewCex()
	require.NoError(t, cex.AppendState(0, value.NewState(nil)))
	info := &value.StateInfo{Action: "Next", Module: "Spec", Span: [2]pos.Pos{pos.New(10, 1), pos.New(10, 5)}}
	require.NoError(t, cex.AppendState(1, stateWith(t, info, map[string]value.Plain{
		"x": value.FromInt(big.NewInt(2)),
	})))

	out := diag.NewCexRenderer(cex).Render()
	joined := strings.Join(out, "\n")
	require.Contains(t, joined, "Next")
	require.Contains(t, joined, "Spec.tla:10:1")
}

func TestCexRendererMarksLoopBack(t *testing.T) {
	cex := value.NewCex()
	require.NoError(t, cex.AppendState(0, value.NewState(nil)))
	info := &value.StateInfo{Action: "Loop", Module: "Spec", Span: [2]pos.Pos{pos.New(1, 1), pos.New(1, 2)}}
	require.NoError(t, cex.AppendState(1, value.NewState(info)))
	require.NoError(t, cex.SetShape(value.Loop(0)))

	out := diag.NewCexRenderer(cex).Render()
	last := out[len(out)-1]
	require.Contains(t, last, "└")
}

func TestCexRendererEmptyTrace(t *testing.T) {
	cex := value.NewCex()
	out := diag.NewCexRenderer(cex).Render()
	require.Empty(t, out)
}
