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
	"github.com/ocamlpro/matla/value"
)

func TestCexValueTuple(t *testing.T) {
	v, err := tlcparse.CexValue(`<<1, TRUE, "hi">>`)
	require.NoError(t, err)
	plain, ok := v.Plain()
	require.True(t, ok)
	elms, ok := plain.AsTuple()
	require.True(t, ok)
	require.Len(t, elms, 3)
}

func TestCexValueSet(t *testing.T) {
	v, err := tlcparse.CexValue(`{1, 2, 3}`)
	require.NoError(t, err)
	plain, _ := v.Plain()
	elms, ok := plain.AsSet()
	require.True(t, ok)
	require.Len(t, elms, 3)
}

func TestCexValueSMap(t *testing.T) {
	v, err := tlcparse.CexValue(`[a |-> 1, b |-> TRUE]`)
	require.NoError(t, err)
	plain, _ := v.Plain()
	m, ok := plain.AsSMap()
	require.True(t, ok)
	require.Equal(t, 2, m.Len())
}

func TestCexValueBag(t *testing.T) {
	v, err := tlcparse.CexValue(`(1 :> 2 @@ 3 :> 4)`)
	require.NoError(t, err)
	plain, _ := v.Plain()
	bag, ok := plain.AsBag()
	require.True(t, ok)
	require.Equal(t, 2, bag.Len())
}

func TestCexValueNull(t *testing.T) {
	v, err := tlcparse.CexValue("null")
	require.NoError(t, err)
	require.True(t, v.IsNull())
}

func TestCexIdentValue(t *testing.T) {
	id, v, err := tlcparse.CexIdentValue(`/\ x = 5`)
	require.NoError(t, err)
	require.Equal(t, "x", id)
	plain, ok := v.Plain()
	require.True(t, ok)
	require.True(t, plain.IsCst())
}

func TestParseStateInfoInitial(t *testing.T) {
	idx, info, err := tlcparse.ParseStateInfo("1: <Initial predicate>")
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	require.Nil(t, info)
}

func TestParseStateInfoAction(t *testing.T) {
	idx, info, err := tlcparse.ParseStateInfo("2: <Next line 1, col 1 to line 2, col 4 of module Foo>")
	require.NoError(t, err)
	require.Equal(t, 2, idx)
	require.NotNil(t, info)
	require.Equal(t, "Next", info.Action)
	require.Equal(t, "Foo", info.Module)
}

func TestValueFromCexStringMatchesValuePackage(t *testing.T) {
	v, err := tlcparse.CexValue(`"hi"`)
	require.NoError(t, err)
	plain, _ := v.Plain()
	cst, ok := plain.AsCst()
	require.True(t, ok)
	require.True(t, cst.IsString())
	require.Equal(t, value.FromString("hi"), plain)
}
