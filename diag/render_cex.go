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

package diag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ocamlpro/matla/value"
)

// Box-drawing glyphs used to render a counter-example's state sequence.
// Grounded on cex/src/pretty.rs's PrettyStatePref constants.
const (
	glyphVLine      = '│'
	glyphHLine      = '─'
	glyphSouthEast  = '┌'
	glyphSouthWest  = '┐'
	glyphNorthWest  = '┘'
	glyphNorthEast  = '└'
	glyphEastArrow  = '►'
	glyphSouthArrow = '▼'
	glyphSouthBranch = '┬'
	glyphNorthBranch = '┴'
)

// CexRenderer renders a counter-example trace (spec §4.7) as the box-drawn
// state sequence a terminal prints under "while exploring this trace".
//
// Grounded on cex/src/pretty.rs's PrettyStatePref and Spec::cex_to_ml_string.
// Where the original colorizes values with ansi styles and recurses through
// a hand-rolled frame stack for multi-line collection layout, this keeps
// value.Plain's own String (already one-line-vs-multi-line aware per
// Plain.IsOneLine) rather than re-deriving that logic a second time here.
type CexRenderer struct {
	cex *value.Cex
}

// NewCexRenderer wraps cex for rendering.
func NewCexRenderer(cex *value.Cex) *CexRenderer {
	return &CexRenderer{cex: cex}
}

// Render produces the full trace: one header line naming what was falsified
// (if known), then one box-drawn block per state.
func (r *CexRenderer) Render() []string {
	var res []string
	if name, isTemporal := r.cex.FalsifiedName(); name != "" {
		if isTemporal {
			res = append(res, fmt.Sprintf("property `%s` is falsified by this behavior", name))
		} else {
			res = append(res, fmt.Sprintf("invariant `%s` is falsified by this state", name))
		}
	}

	lastIdx := len(r.cex.States) - 1
	if lastIdx < 0 {
		return res
	}
	lastIdxLen := len(strconv.Itoa(lastIdx))

	loopsTo := -1
	switch {
	case r.cex.Shape.IsStuttering():
		loopsTo = lastIdx
	default:
		if idx, ok := r.cex.Shape.LoopIndex(); ok {
			loopsTo = idx
		}
	}

	for idx, state := range r.cex.States {
		loopsToCurrent := loopsTo == idx
		loopsAbove := loopsTo >= 0 && loopsTo < idx
		isLast := idx == lastIdx
		res = append(res, r.renderState(idx, state, lastIdxLen, loopsAbove, loopsToCurrent, isLast, loopsTo >= 0)...)
	}
	return res
}

func (r *CexRenderer) renderState(idx int, state value.State, lastIdxLen int, loopsAbove, loopsToCurrent, isLast, hasLoop bool) []string {
	var lines []string

	sideGlyph := rune(' ')
	if loopsAbove {
		sideGlyph = glyphVLine
	}

	// First line: box top, with a down-arrow continuing from the state above.
	var first strings.Builder
	first.WriteRune(sideGlyph)
	first.WriteByte(' ')
	first.WriteRune(glyphSouthEast)
	for i := 0; i < lastIdxLen+2; i++ {
		if i == 1 && idx > 0 {
			first.WriteRune(glyphSouthArrow)
		} else {
			first.WriteRune(glyphHLine)
		}
	}
	first.WriteRune(glyphSouthWest)
	lines = append(lines, first.String())

	// Second line: state index and provenance (action/module:span, or
	// "initial state" for state 0).
	var second strings.Builder
	if loopsToCurrent {
		second.WriteRune(glyphSouthEast)
		second.WriteRune(glyphHLine)
		second.WriteRune(glyphEastArrow)
	} else {
		second.WriteRune(sideGlyph)
		second.WriteByte(' ')
		second.WriteRune(glyphVLine)
	}
	second.WriteByte(' ')
	idxStr := strconv.Itoa(idx)
	second.WriteString(strings.Repeat(" ", lastIdxLen-len(idxStr)))
	second.WriteString(idxStr)
	second.WriteByte(' ')
	second.WriteRune(glyphVLine)
	second.WriteByte(' ')
	if state.Info != nil {
		second.WriteString(fmt.Sprintf("%s   @ %s.tla:%s", state.Info.Action, state.Info.Module, state.Info.Span[0]))
	} else {
		second.WriteString("initial state")
	}
	lines = append(lines, second.String())

	sideGlyph2 := rune(' ')
	if loopsAbove || loopsToCurrent {
		sideGlyph2 = glyphVLine
	}

	// Third line: box bottom, branching down to the variable bindings.
	var third strings.Builder
	third.WriteRune(sideGlyph2)
	third.WriteByte(' ')
	third.WriteRune(glyphNorthEast)
	for i := 0; i < lastIdxLen+2; i++ {
		if i == 1 {
			third.WriteRune(glyphSouthBranch)
		} else {
			third.WriteRune(glyphHLine)
		}
	}
	third.WriteRune(glyphNorthWest)
	lines = append(lines, third.String())

	maxKeyLen := 0
	state.Values.Each(func(key string, _ value.Plain) {
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
	})
	state.Values.Each(func(key string, v value.Plain) {
		binding := key + strings.Repeat(" ", maxKeyLen-len(key)) + ": " + v.String()
		for _, line := range strings.Split(binding, "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("%c   %c %s", sideGlyph2, glyphVLine, line))
		}
	})

	if isLast {
		if hasLoop {
			lines = append(lines, fmt.Sprintf("%c%c%c%c%c", glyphNorthEast, glyphHLine, glyphHLine, glyphHLine, glyphNorthWest))
		} else {
			lines = append(lines, fmt.Sprintf("    %c", glyphNorthBranch))
		}
	}

	return lines
}
