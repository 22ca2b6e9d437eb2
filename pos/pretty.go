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

package pos

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// TabWidth is the number of display columns a tab is rendered as when
// expanding an excerpt line for caret alignment. Spec §9 calls this
// load-bearing: alternative renderers must keep this rule or recompute the
// caret column some other way.
const TabWidth = 4

// gutterWidth is the minimum width reserved for the line-number gutter.
const gutterWidth = 4

// expandLine replaces every tab in line with TabWidth spaces and returns
// both the expanded line and a function mapping a raw (rune, not byte)
// column in the original line to the corresponding display column in the
// expanded line.
func expandLine(line string) (expanded string, displayCol func(rawCol int) int) {
	runes := []rune(line)
	var b strings.Builder
	b.Grow(len(line) + 8)
	// prefix[i] is the display column (1-indexed) of runes[i] after
	// expansion; prefix[len(runes)] is the display column one past the end.
	prefix := make([]int, len(runes)+1)
	col := 1
	for i, r := range runes {
		prefix[i] = col
		if r == '\t' {
			b.WriteString(strings.Repeat(" ", TabWidth))
			col += TabWidth
		} else {
			b.WriteRune(r)
			col += uniseg.StringWidth(string(r))
			if col == prefix[i] {
				col++ // zero-width runes still occupy a caret column
			}
		}
	}
	prefix[len(runes)] = col
	return b.String(), func(rawCol int) int {
		idx := rawCol - 1
		switch {
		case idx < 0:
			return 1
		case idx >= len(prefix):
			return prefix[len(prefix)-1]
		default:
			return prefix[idx]
		}
	}
}

func gutter(rowStr string) (width int, prefix string) {
	width = len(rowStr)
	if width < gutterWidth {
		width = gutterWidth
	}
	return width, strings.Repeat(" ", width+2)
}

// Pretty renders a single-position excerpt of content: a blank gutter line,
// the row-numbered source line with tabs expanded, and (if captionText is
// non-empty) a caret line under p.Col carrying captionText. Fails if p is
// beyond the extent of content.
func Pretty(p Pos, content string, captionText string) ([]string, error) {
	lines := splitLines(content)
	if p.Row < 1 || p.Row > len(lines) {
		return nil, fmt.Errorf("pos: position %s is beyond file extent (%d lines)", p, len(lines))
	}
	line := lines[p.Row-1]
	rowStr := fmt.Sprintf("%d", p.Row)
	width, pref := gutter(rowStr)

	expanded, displayCol := expandLine(line)

	out := []string{pref + "|"}
	out = append(out, fmt.Sprintf(" %*s | %s", width, rowStr, expanded))

	if captionText != "" {
		col := displayCol(p.Col)
		caret := pref + "| " + strings.Repeat(" ", max(0, col-1)) + "^~~~~~ " + captionText
		out = append(out, caret)
	}
	return out, nil
}

// PrettySpan renders a (possibly multi-line) excerpt of content spanning
// from p to end: a down-arrow marker under the start column, every covered
// line in between with its row number, and a caret line under end's column
// carrying endText. For single-line spans both markers collapse onto one
// caret line (startText takes priority, falling back to endText, matching
// the TLA+ front-end's own convention of labelling the more specific end of
// a single-line span).
func PrettySpan(p Pos, end Pos, content string, startText, endText string) ([]string, error) {
	if p == end {
		return Pretty(p, content, startText)
	}
	if !p.Less(end) {
		return nil, fmt.Errorf("pos: illegal span %s to %s: not strictly ordered", p, end)
	}

	lines := splitLines(content)
	if p.Row < 1 || p.Row > len(lines) || end.Row < 1 || end.Row > len(lines) {
		return nil, fmt.Errorf("pos: span %s to %s is beyond file extent (%d lines)", p, end, len(lines))
	}

	rowStr := fmt.Sprintf("%d", end.Row)
	width, pref := gutter(rowStr)
	monoline := p.Row == end.Row

	var out []string
	for row := p.Row; row <= end.Row; row++ {
		line := lines[row-1]
		expanded, displayCol := expandLine(line)

		if row == p.Row {
			startCol := displayCol(p.Col)
			marker := pref + "| " + strings.Repeat(" ", max(0, startCol-1))
			if monoline {
				endCol := displayCol(end.Col)
				width := max(1, endCol-startCol)
				marker += strings.Repeat("v", width)
				switch {
				case startText != "":
					marker += "~~~~~ " + startText
				case endText != "":
					marker += "~~~~~ " + endText
				}
			} else {
				if startText != "" {
					marker += "v~~~~~ " + startText
				} else {
					marker += "v"
				}
			}
			out = append(out, marker)
		}

		out = append(out, fmt.Sprintf(" %*d | %s", width, row, expanded))

		if monoline && row == end.Row {
			break
		}
	}

	if monoline {
		out = append(out, pref+"|")
		return out, nil
	}

	lastLine := lines[end.Row-1]
	_, displayCol := expandLine(lastLine)
	endCol := displayCol(end.Col)
	caption := endText
	if caption == "" {
		caption = "ending here"
	}
	out = append(out, pref+"| "+strings.Repeat(" ", max(0, endCol-1))+"^~~~~~ "+caption)
	return out, nil
}
