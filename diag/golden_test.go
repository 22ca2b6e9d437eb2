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
	"path/filepath"
	"strings"
	"testing"

	"github.com/ocamlpro/matla/diag"
	"github.com/ocamlpro/matla/internal/golden"
	"github.com/ocamlpro/matla/pos"
)

// findMarker locates the "(*HERE*)" marker a fixture uses to pin down the
// position its rendered error should point at, and returns that position
// alongside the fixture's content with the marker stripped back out, so the
// rendered excerpt doesn't echo it.
func findMarker(t *testing.T, content string) (pos.Pos, string) {
	t.Helper()
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		idx := strings.Index(line, "(*HERE*)")
		if idx < 0 {
			continue
		}
		p := pos.New(i+1, idx+1)
		lines[i] = line[:idx] + line[idx+len("(*HERE*)"):]
		return p, strings.Join(lines, "\n")
	}
	t.Fatalf("golden fixture missing a (*HERE*) marker")
	return pos.Pos{}, ""
}

// TestRenderSemanticError golden-tests SemanticError.Render against a
// corpus of TLA+ fixtures, each carrying one marker position the rendered
// excerpt should land the caret on.
func TestRenderSemanticError(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:       "testdata",
		Refresh:    "MATLA_REFRESH",
		Extensions: []string{"tla"},
		Outputs: []golden.Output{
			{Extension: "want"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		module := strings.TrimSuffix(filepath.Base(path), ".tla")
		at, content := findMarker(t, text)

		tlcErr := &diag.SemanticError{
			Module:  module,
			TlcCode: "TLC2FailedException",
			Message: "value is not an element of the expected set",
			Span:    &pos.FileSpan{Start: pos.NewFilePos(module, at), End: at},
		}

		lines, err := tlcErr.Render(func(string) (string, error) { return content, nil })
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		outputs[0] = strings.Join(lines, "\n") + "\n"
	})
}
