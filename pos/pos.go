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

// Package pos implements the source-position model: single positions, file
// positions, file spans, line spans, and excerpt rendering for diagnostics.
//
// Rows and columns are 1-indexed and reported the way TLC itself reports
// them, i.e. in raw character counts rather than display-width-adjusted
// columns. Rendering an excerpt (Pretty, PrettySpan) is the one place that
// cares about display width, since a caret must land under the right glyph
// even when the line contains tabs.
package pos

import "fmt"

// Pos is a single position within a file: a 1-indexed row and column.
type Pos struct {
	Row int
	Col int
}

// New builds a Pos, panicking if either coordinate is not positive.
func New(row, col int) Pos {
	if row < 1 || col < 1 {
		panic(fmt.Sprintf("pos: invalid position %d:%d, row and col must be >= 1", row, col))
	}
	return Pos{Row: row, Col: col}
}

// IsStart is true for the (1, 1) position.
func (p Pos) IsStart() bool {
	return p.Row == 1 && p.Col == 1
}

// Less reports whether p comes strictly before other in (row, col)
// lexicographic order.
func (p Pos) Less(other Pos) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// FilePos is a Pos qualified by the file it is in.
type FilePos struct {
	File string
	Pos  Pos
}

// NewFilePos builds a FilePos.
func NewFilePos(file string, p Pos) FilePos {
	return FilePos{File: file, Pos: p}
}

func (fp FilePos) String() string {
	return fmt.Sprintf("%s at %s", fp.File, fp.Pos)
}

// IntoSpan builds a FileSpan from fp to end.
func (fp FilePos) IntoSpan(end Pos) FileSpan {
	return NewFileSpan(fp, end)
}

// FileSpan is a (start, end) range within a single file. The invariant is
// start.Pos <= end in (row, col) lexicographic order.
type FileSpan struct {
	Start FilePos
	End   Pos
}

// NewFileSpan builds a FileSpan, panicking if end precedes start (spec §3:
// "invariant start.pos <= end").
func NewFileSpan(start FilePos, end Pos) FileSpan {
	if end.Less(start.Pos) {
		panic(fmt.Sprintf("pos: illegal span %s to %s: end precedes start", start.Pos, end))
	}
	return FileSpan{Start: start, End: end}
}

// File is the file the span is located in.
func (fs FileSpan) File() string {
	return fs.Start.File
}

// IsSingle is true when the span covers a single position.
func (fs FileSpan) IsSingle() bool {
	return fs.Start.Pos == fs.End
}

func (fs FileSpan) String() string {
	return fmt.Sprintf("%s, %s to %s", fs.Start.File, fs.Start.Pos, fs.End)
}

// LineSpan is an inclusive range of whole lines in a file, independent of
// column information — used to quote a block of source (e.g. a module
// preamble) without pointing at a specific token.
type LineSpan struct {
	Path  string
	Start int
	End   int
}

// NewLineSpan builds a LineSpan, requiring Start <= End.
func NewLineSpan(path string, start, end int) (LineSpan, error) {
	if start > end {
		return LineSpan{}, fmt.Errorf("pos: illegal line span, start %d > end %d", start, end)
	}
	return LineSpan{Path: path, Start: start, End: end}, nil
}

// Lines calls action with every line of content (1-indexed by position in
// the file) whose line number falls within [ls.Start, ls.End].
func (ls LineSpan) Lines(content string, action func(line string) error) error {
	row := 0
	for _, line := range splitLines(content) {
		row++
		if row < ls.Start {
			continue
		}
		if row > ls.End {
			break
		}
		if err := action(line); err != nil {
			return err
		}
	}
	return nil
}

// splitLines splits content into lines without keeping line terminators,
// tolerating both "\n" and "\r\n".
func splitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			end := i
			if end > start && content[end-1] == '\r' {
				end--
			}
			lines = append(lines, content[start:end])
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}
