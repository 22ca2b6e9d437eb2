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

package tlcparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/tlcparse"
)

func TestParseErrorExpected(t *testing.T) {
	s, err := tlcparse.ParseErrorExpected(`Was expecting "----"`)
	require.NoError(t, err)
	require.Equal(t, "----", s)
}

func TestParseErrorGot1NoAnd(t *testing.T) {
	got, rest, err := tlcparse.ParseErrorGot1(`Encountered "foo" at line 1, col 2`)
	require.NoError(t, err)
	require.Equal(t, "foo", got.Encountered)
	require.Equal(t, 1, got.Pos.Row)
	require.Nil(t, got.And)
	require.Empty(t, rest)
}

func TestParseErrorGot2(t *testing.T) {
	got, _, err := tlcparse.ParseErrorGot2(`Encountered "foo" at line 1, col 2 and token "bar"`)
	require.NoError(t, err)
	require.NotNil(t, got.And)
	require.Equal(t, "bar", *got.And)
}

func TestParseErrorTrace(t *testing.T) {
	trace, err := tlcparse.ParseErrorTrace(
		"Residual stack trace follows : Module definition starting at line 1, col 1 . Definition starting at line 2, col 1 .")
	require.NoError(t, err)
	require.Len(t, trace, 2)
	require.Equal(t, "module definition start", trace[0].Label)
}

func TestParseLexicalError(t *testing.T) {
	le, err := tlcparse.ParseLexicalError(
		`Lexical error at line 3, col 4. Encountered: "@" (64), after : "foo" Fatal errors while parsing TLA+ spec in file Foo java.lang.NullPointerException *** Abort messages: 1 In module Foo Could not parse module Foo from file Foo.tla`)
	require.NoError(t, err)
	require.Equal(t, "foo", le.Code)
	require.Equal(t, "Foo", le.Module)
}

func TestParseWarningRedef(t *testing.T) {
	w, err := tlcparse.ParseWarningRedef(
		"line 1, col 1 to line 1, col 4 of module Foo. Multiple declarations or definitions for symbol x. This duplicates the one at line 2, col 1 to line 2, col 4 of module Foo")
	require.NoError(t, err)
	require.Equal(t, "x", w.Sym)
	require.Equal(t, "Foo", w.Pos.File())
}

func TestParseParsingFileModule(t *testing.T) {
	kind, module, err := tlcparse.ParseParsingFile("Parsing file Foo.tla")
	require.NoError(t, err)
	require.Equal(t, tlcparse.ParsingModule, kind)
	require.Equal(t, "Foo", module)
}

func TestParseParsingFileConfig(t *testing.T) {
	kind, _, err := tlcparse.ParseParsingFile("Parsing file Foo.cfg")
	require.NoError(t, err)
	require.Equal(t, tlcparse.ParsingConfig, kind)
}

func TestParseProcessingFile(t *testing.T) {
	module, err := tlcparse.ParseProcessingFile("Semantic processing of module Foo")
	require.NoError(t, err)
	require.Equal(t, "Foo", module)
}
