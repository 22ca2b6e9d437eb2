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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/diag"
	"github.com/ocamlpro/matla/pos"
)

func fixedResolver(modules map[string]string) diag.ModuleResolver {
	return func(module string) (string, error) {
		content, ok := modules[module]
		if !ok {
			return "", errors.New("no such module")
		}
		return content, nil
	}
}

func TestSemanticErrorRenderResolvesModule(t *testing.T) {
	resolve := fixedResolver(map[string]string{
		"Spec": "EXTENDS Naturals\nVARIABLE x\n",
	})
	span := pos.NewFileSpan(pos.NewFilePos("Spec", pos.New(2, 10)), pos.New(2, 11))
	err := &diag.SemanticError{Module: "Spec", Message: "x is never assigned", Span: &span}

	lines, rerr := err.Render(resolve)
	require.NoError(t, rerr)
	require.Contains(t, lines[0], "Spec")
	require.Contains(t, lines, "- x is never assigned")
}

func TestSemanticErrorRenderWrapsResolverFailure(t *testing.T) {
	resolve := fixedResolver(nil)
	err := &diag.SemanticError{Module: "Missing", Message: "whatever"}
	_, rerr := err.Render(resolve)
	require.Error(t, rerr)
	require.ErrorContains(t, rerr, "Missing")
}
