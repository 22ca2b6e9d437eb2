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

package tlcparse

import (
	"math/big"
	"strings"
	"time"

	"github.com/ocamlpro/matla/pos"
)

// ParseUsize parses a plain (non-separated) natural number.
func ParseUsize(line string) (int, error) {
	s := newScanner(line)
	n, ok := s.digits()
	if !ok || !s.eof() {
		return 0, s.errf("expected `usize` value")
	}
	var v int
	for _, c := range n {
		v = v*10 + int(c-'0')
	}
	return v, nil
}

// parsePrettyDigits consumes a `,`-separated (thousands) run of digits,
// e.g. `12,345,678`, and returns the concatenated digit string.
func (s *scanner) parsePrettyDigits() (string, bool) {
	head, ok := s.digits()
	if !ok {
		return "", false
	}
	var b strings.Builder
	b.WriteString(head)
	for {
		save := s.pos
		if !s.lit(",") {
			break
		}
		tail, ok := s.digits()
		if !ok {
			s.pos = save
			break
		}
		b.WriteString(tail)
	}
	return b.String(), true
}

// ParsePrettyUsize parses a natural number with optional `,` thousands
// separators.
func ParsePrettyUsize(line string) (int, error) {
	s := newScanner(line)
	digits, ok := s.parsePrettyDigits()
	if !ok || !s.eof() {
		return 0, s.errf("expected `usize` value")
	}
	n, err := ParseUsize(digits)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ParsePrettyInt parses an arbitrary-precision integer with optional `,`
// thousands separators (spec §3: values carry big.Int, not machine ints).
func ParsePrettyInt(line string) (*big.Int, error) {
	s := newScanner(line)
	digits, ok := s.parsePrettyDigits()
	if !ok || !s.eof() {
		return nil, s.errf("expected integer value")
	}
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, s.errf("illegal integer %q", digits)
	}
	return n, nil
}

// DQString parses a double-quoted string occupying the entire line.
func DQString(line string) (string, error) {
	s := newScanner(line)
	str, ok := s.dqString()
	if !ok || !s.eof() {
		return "", s.errf("expected double-quoted string")
	}
	return str, nil
}

// Ident parses a bare identifier occupying the entire line.
func Ident(line string) (string, error) {
	s := newScanner(line)
	id, ok := s.ident()
	if !ok || !s.eof() {
		return "", s.errf("expected identifier")
	}
	return id, nil
}

// filePos parses `line <nat>, col <nat>` (accepting `Line`/`line` and
// `column`/`col`).
func (s *scanner) filePos() (pos.Pos, bool) {
	save := s.pos
	if s.eof() || (s.s[s.pos] != 'l' && s.s[s.pos] != 'L') {
		return pos.Pos{}, false
	}
	s.pos++
	if !s.lit("ine") {
		s.pos = save
		return pos.Pos{}, false
	}
	s.skipSpace()
	row, ok := s.digits()
	if !ok {
		s.pos = save
		return pos.Pos{}, false
	}
	s.skipSpace()
	if !s.lit(",") {
		s.pos = save
		return pos.Pos{}, false
	}
	s.skipSpace()
	if !s.lit("column") && !s.lit("col") {
		s.pos = save
		return pos.Pos{}, false
	}
	s.skipSpace()
	col, ok := s.digits()
	if !ok {
		s.pos = save
		return pos.Pos{}, false
	}
	rowN, _ := ParseUsize(row)
	colN, _ := ParseUsize(col)
	return pos.New(rowN, colN), true
}

// ParseFilePos parses a standalone `line N, col M` position.
func ParseFilePos(s string) (pos.Pos, error) {
	sc := newScanner(s)
	p, ok := sc.filePos()
	if !ok {
		return pos.Pos{}, sc.errf("expected line/column file position")
	}
	return p, nil
}

// ParseFilePosSpan parses `<pos> to <pos> in <module>`.
func ParseFilePosSpan(s string) (pos.FileSpan, error) {
	sc := newScanner(s)
	start, ok := sc.filePos()
	if !ok {
		return pos.FileSpan{}, sc.errf("expected start position")
	}
	sc.skipSpace()
	if err := sc.expect("to"); err != nil {
		return pos.FileSpan{}, err
	}
	sc.skipSpace()
	end, ok := sc.filePos()
	if !ok {
		return pos.FileSpan{}, sc.errf("expected end position")
	}
	sc.skipSpace()
	if err := sc.expect("in"); err != nil {
		return pos.FileSpan{}, err
	}
	sc.skipSpace()
	module, ok := sc.ident()
	if !ok {
		return pos.FileSpan{}, sc.errf("expected module identifier")
	}
	return pos.NewFileSpan(pos.NewFilePos(module, start), end), nil
}

const dateLayout = "2006-01-02 15:04:05"

// ParseDate parses a TLC timestamp, `YYYY-MM-DD HH:MM:SS`.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Exc is a TLC-level JVM exception class matla's error prose special-cases.
type Exc int

const (
	ExcAbort Exc = iota
	ExcNullPointer
)

func (e Exc) String() string {
	switch e {
	case ExcAbort:
		return "tla2sany.semantic.AbortException"
	case ExcNullPointer:
		return "java.lang.NullPointerException"
	default:
		return "[??] unknown exception"
	}
}

// ParseExc recognizes one of the handful of JVM exception class names TLC
// prints verbatim when it crashes.
func ParseExc(line string) (Exc, error) {
	trimmed := strings.TrimSpace(line)
	switch trimmed {
	case "tla2sany.semantic.AbortException":
		return ExcAbort, nil
	case "java.lang.NullPointerException":
		return ExcNullPointer, nil
	default:
		return 0, newScanner(line).errf("expected TLC-level exception class name")
	}
}
