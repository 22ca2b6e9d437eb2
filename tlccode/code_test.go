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

func TestLookupKnownCode(t *testing.T) {
	e, ok := tlccode.Lookup(2193)
	require.True(t, ok)
	require.Equal(t, "TlcSuccess", e.Name)
	require.False(t, e.IsErr())
}

func TestLookupUnknownCode(t *testing.T) {
	_, ok := tlccode.Lookup(987654321)
	require.False(t, ok)
}

func TestErrCategoryTop(t *testing.T) {
	e, ok := tlccode.Lookup(2100)
	require.True(t, ok)
	require.True(t, e.IsErr())
	require.Equal(t, tlccode.CategoryTlcErr, e.Category)
}

func TestIsGeneralMsg(t *testing.T) {
	require.True(t, tlccode.IsGeneralMsg(1000))
	require.False(t, tlccode.IsGeneralMsg(2193))
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "#(2193)", tlccode.NewCode(2193).String())
}
