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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/tlcparse"
)

func TestParsePrettyInt(t *testing.T) {
	n, err := tlcparse.ParsePrettyInt("12,345,678")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(12345678), n)
}

func TestParsePrettyUsize(t *testing.T) {
	n, err := tlcparse.ParsePrettyUsize("1,024")
	require.NoError(t, err)
	require.Equal(t, 1024, n)
}

func TestDQString(t *testing.T) {
	s, err := tlcparse.DQString(`"\in"`)
	require.NoError(t, err)
	require.Equal(t, `\in`, s)
}

func TestParseFilePos(t *testing.T) {
	p, err := tlcparse.ParseFilePos("line 12, col 7")
	require.NoError(t, err)
	require.Equal(t, 12, p.Row)
	require.Equal(t, 7, p.Col)
}

func TestParseFilePosCapitalizedColumn(t *testing.T) {
	p, err := tlcparse.ParseFilePos("Line 3, column 9")
	require.NoError(t, err)
	require.Equal(t, 3, p.Row)
	require.Equal(t, 9, p.Col)
}

func TestParseFilePosSpan(t *testing.T) {
	span, err := tlcparse.ParseFilePosSpan("line 1, col 1 to line 2, col 4 in Foo")
	require.NoError(t, err)
	require.Equal(t, "Foo", span.File())
}

func TestParseDate(t *testing.T) {
	d, err := tlcparse.ParseDate("2024-01-02 03:04:05")
	require.NoError(t, err)
	require.Equal(t, 2024, d.Year())
}

func TestParseExc(t *testing.T) {
	exc, err := tlcparse.ParseExc("java.lang.NullPointerException")
	require.NoError(t, err)
	require.Equal(t, tlcparse.ExcNullPointer, exc)
}
