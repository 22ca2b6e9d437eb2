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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/diag"
	"github.com/ocamlpro/matla/pos"
)

func TestNoJavaRuntimeError(t *testing.T) {
	var e diag.NoJavaRuntimeError
	lines, err := e.Render(nil)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.False(t, e.IsWarning())
	outc, ok := e.ToOutcome()
	require.True(t, ok)
	require.Contains(t, outc.String(), "Java")
}

func TestParseErrorRender(t *testing.T) {
	resolve := fixedResolver(map[string]string{
		"Spec": "---- MODULE Spec ----\nbad token here\n====\n",
	})
	e := &diag.ParseError{
		Module:      "Spec",
		Expected:    "identifier",
		Encountered: "here",
		At:          pos.New(2, 11),
	}
	lines, err := e.Render(resolve)
	require.NoError(t, err)
	require.Contains(t, lines[0], "parse error")
	require.Contains(t, lines[1], "expected identifier")
	require.Contains(t, lines[1], "here")
}

func TestParseErrorRenderWithTrace(t *testing.T) {
	resolve := fixedResolver(map[string]string{
		"Spec": "line one\nline two\nline three\n",
	})
	e := &diag.ParseError{
		Module:      "Spec",
		Expected:    "expression",
		Encountered: "EOF",
		At:          pos.New(3, 1),
		Trace: []diag.TraceStep{
			{Desc: "while parsing LET", At: pos.New(1, 1)},
		},
	}
	lines, err := e.Render(resolve)
	require.NoError(t, err)
	found := false
	for _, l := range lines {
		if l == "- while parsing" {
			found = true
		}
	}
	require.True(t, found)
}

func TestLexicalErrorRenderWarnsAboutPosition(t *testing.T) {
	resolve := fixedResolver(map[string]string{"Spec": "x <> y\n"})
	e := &diag.LexicalError{Module: "Spec", Encountered: "<>", At: pos.New(1, 3)}
	lines, err := e.Render(resolve)
	require.NoError(t, err)
	require.Contains(t, lines[1], "more art than science")
	require.False(t, e.IsWarning())
}

func TestRunErrorAssertFailedKind(t *testing.T) {
	msg := "x > 0"
	e := &diag.RunError{Kind: diag.AssertFailedKind(&msg)}
	require.Contains(t, e.Error(), "x > 0")
	outc, ok := e.ToOutcome()
	require.True(t, ok)
	require.True(t, outc.String() == "assertion failure")
}

func TestRunErrorRenderSkipsGeneratedModule(t *testing.T) {
	resolve := fixedResolver(map[string]string{
		"Spec": "x == 1\n",
	})
	generated := pos.NewFileSpan(pos.NewFilePos(diag.GeneratedModuleName, pos.New(1, 1)), pos.New(1, 2))
	real := pos.NewFileSpan(pos.NewFilePos("Spec", pos.New(1, 1)), pos.New(1, 2))
	e := &diag.RunError{
		Kind:      diag.PlainKind("bad thing happened"),
		Locations: []pos.FileSpan{real, generated},
	}
	lines, err := e.Render(resolve)
	require.NoError(t, err)
	for _, l := range lines {
		require.NotContains(t, l, diag.GeneratedModuleName)
	}
}

func TestSemanticErrorAsRunError(t *testing.T) {
	span := pos.NewFileSpan(pos.NewFilePos("Spec", pos.New(4, 1)), pos.New(4, 5))
	sem := &diag.SemanticError{Module: "Spec", Message: "oops", Span: &span}
	run := sem.AsRunError()
	require.Equal(t, "oops", run.Kind.String())
	require.Len(t, run.Locations, 1)
}

func TestWarningErrorNeverImpliesOutcome(t *testing.T) {
	w := &diag.WarningError{Message: "symbol redefined"}
	require.True(t, w.IsWarning())
	_, ok := w.ToOutcome()
	require.False(t, ok)
}

func TestListAggregatesRenderAndOutcome(t *testing.T) {
	resolve := fixedResolver(nil)
	l := &diag.List{
		Errs: []diag.TlcError{
			&diag.WarningError{Message: "heads up"},
			&diag.RunError{Kind: diag.PlainKind("run failed")},
		},
	}
	lines, err := l.Render(resolve)
	require.NoError(t, err)
	require.Contains(t, lines[1], "warning: heads up")
	require.Contains(t, lines[2], "run failed")

	outc, ok := l.ToOutcome()
	require.True(t, ok)
	require.Contains(t, outc.String(), "run failed")

	require.False(t, l.IsWarning())
}

func TestListIsWarningWhenAllSubErrorsAreWarnings(t *testing.T) {
	l := &diag.List{Errs: []diag.TlcError{&diag.WarningError{Message: "a"}, &diag.WarningError{Message: "b"}}}
	require.True(t, l.IsWarning())
}
