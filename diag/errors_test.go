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

func TestWithPosCarriesPosition(t *testing.T) {
	p := pos.New(3, 5)
	err := diag.WithPos(p, errors.New("boom"))
	require.Equal(t, p, err.GetPosition())
	require.ErrorContains(t, err, "boom")
	require.ErrorContains(t, err, "3:5")
}

func TestWithPosfFormats(t *testing.T) {
	err := diag.WithPosf(pos.New(1, 1), "expected %s, got %s", "A", "B")
	require.ErrorContains(t, err, "expected A, got B")
}

func TestWithPosUnwraps(t *testing.T) {
	underlying := errors.New("root cause")
	err := diag.WithPos(pos.New(1, 1), underlying)
	require.ErrorIs(t, err.Unwrap(), underlying)
}
