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

package tlcproc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/tlcproc"
)

func TestDefaultModuleResolverFindsNestedFile(t *testing.T) {
	resolve := tlcproc.DefaultModuleResolver("testdata")
	content, err := resolve("Spec")
	require.NoError(t, err)
	require.Contains(t, content, "MODULE Spec")
}

func TestDefaultModuleResolverMissingModule(t *testing.T) {
	resolve := tlcproc.DefaultModuleResolver("testdata")
	_, err := resolve("DoesNotExist")
	require.Error(t, err)
}

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "trace", tlcproc.LogTrace.String())
	require.Equal(t, "warn", tlcproc.LogWarn.String())
}
