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
	"time"

	"github.com/ocamlpro/matla/pos"
)

// InitGenerated1 is the payload of TLC's "init generated (1)" status line:
// how many distinct initial states it found, and when it finished.
type InitGenerated1 struct {
	StateCount int
	EndTime    time.Time
}

// ParseInitGenerated1 parses:
//
//	Finished computing initial states: N distinct states generated at <date>.
func ParseInitGenerated1(line string) (InitGenerated1, error) {
	s := newScanner(line)
	for _, word := range []string{"Finished", "computing", "initial", "states", ":"} {
		s.skipSpace()
		if err := s.expect(word); err != nil {
			return InitGenerated1{}, err
		}
	}
	s.skipSpace()
	count, err := s.takePrettyUsize()
	if err != nil {
		return InitGenerated1{}, err
	}
	s.skipSpace()
	if err := s.expect("distinct"); err != nil {
		return InitGenerated1{}, err
	}
	s.skipSpace()
	if !s.lit("states") {
		if err := s.expect("state"); err != nil {
			return InitGenerated1{}, err
		}
	}
	s.skipSpace()
	if err := s.expect("generated"); err != nil {
		return InitGenerated1{}, err
	}
	s.skipSpace()
	if err := s.expect("at"); err != nil {
		return InitGenerated1{}, err
	}
	s.skipSpace()
	dateStr, ok := s.takeDateLiteral()
	if !ok {
		return InitGenerated1{}, s.errf("expected date/time")
	}
	end, err := ParseDate(dateStr)
	if err != nil {
		return InitGenerated1{}, err
	}
	s.skipSpace()
	s.lit(".")
	return InitGenerated1{StateCount: count, EndTime: end}, nil
}

// takePrettyUsize consumes a run of digits (with optional `,` separators)
// and parses it.
func (s *scanner) takePrettyUsize() (int, error) {
	digits, ok := s.parsePrettyDigits()
	if !ok {
		return 0, s.errf("expected number")
	}
	return ParseUsize(digits)
}

func (s *scanner) takePrettyInt() (string, error) {
	digits, ok := s.parsePrettyDigits()
	if !ok {
		return "", s.errf("expected number")
	}
	return digits, nil
}

// takeDateLiteral consumes the fixed-width `YYYY-MM-DD HH:MM:SS` shape TLC
// always prints dates in.
func (s *scanner) takeDateLiteral() (string, bool) {
	const width = len("2006-01-02 15:04:05")
	if len(s.rest()) < width {
		return "", false
	}
	candidate := s.rest()[:width]
	if _, err := ParseDate(candidate); err != nil {
		return "", false
	}
	s.pos += width
	return candidate, true
}

// Stats is TLC's periodic state-count summary.
type Stats struct {
	Generated int
	Distinct  int
	Left      int
}

// ParseStats parses:
//
//	N states generated, M distinct states found, L states left on queue.
func ParseStats(line string) (Stats, error) {
	s := newScanner(line)
	generated, err := s.takePrettyUsize()
	if err != nil {
		return Stats{}, err
	}
	if err := s.expectWords("state", "generated", ","); err != nil {
		return Stats{}, err
	}
	s.skipSpace()
	distinct, err := s.takePrettyUsize()
	if err != nil {
		return Stats{}, err
	}
	if err := s.expectWords("distinct", "state", "found", ","); err != nil {
		return Stats{}, err
	}
	s.skipSpace()
	left, err := s.takePrettyUsize()
	if err != nil {
		return Stats{}, err
	}
	if err := s.expectWords("state", "left", "on", "queue"); err != nil {
		return Stats{}, err
	}
	s.lit(".")
	return Stats{Generated: generated, Distinct: distinct, Left: left}, nil
}

// expectWords consumes each word in order, skipping whitespace between
// them, tolerating an optional trailing `s` on a pluralizable word (`state`
// vs `states`) and passing `,`/`.`-shaped tokens through expect directly.
func (s *scanner) expectWords(words ...string) error {
	for i, w := range words {
		s.skipSpace()
		if w == "state" {
			if s.lit("states") {
				continue
			}
			if err := s.expect("state"); err != nil {
				return err
			}
			continue
		}
		if err := s.expect(w); err != nil {
			return s.errf("expected %q (word %d of %v)", w, i, words)
		}
	}
	return nil
}

// SearchDepth is the depth TLC's complete state graph search reached.
type SearchDepth struct {
	Depth int
}

// ParseSearchDepth parses:
//
//	The depth of the complete state graph search is N.
func ParseSearchDepth(line string) (SearchDepth, error) {
	s := newScanner(line)
	if err := s.expectWords("The", "depth", "of", "the", "complete", "state", "graph", "search", "is"); err != nil {
		return SearchDepth{}, err
	}
	s.skipSpace()
	depth, err := s.takePrettyUsize()
	if err != nil {
		return SearchDepth{}, err
	}
	s.lit(".")
	return SearchDepth{Depth: depth}, nil
}

// GraphOutdegree summarizes the state graph's branching factor.
type GraphOutdegree struct {
	Outdegree    int
	Min          int
	Max          int
	PercentileTh int
	Percentile   int
}

// ParseGraphOutdegree parses:
//
//	The average outdegree of the complete state graph is D (minimum is
//	MIN, the maximum MAX and the PTH th percentile is P).
func ParseGraphOutdegree(line string) (GraphOutdegree, error) {
	s := newScanner(line)
	if err := s.expectWords("The", "average", "outdegree", "of", "the", "complete", "state", "graph", "is"); err != nil {
		return GraphOutdegree{}, err
	}
	s.skipSpace()
	outdegree, err := s.takePrettyUsize()
	if err != nil {
		return GraphOutdegree{}, err
	}
	if err := s.expectWords("(", "minimum", "is"); err != nil {
		return GraphOutdegree{}, err
	}
	s.skipSpace()
	min, err := s.takePrettyUsize()
	if err != nil {
		return GraphOutdegree{}, err
	}
	if err := s.expectWords(",", "the", "maximum"); err != nil {
		return GraphOutdegree{}, err
	}
	s.skipSpace()
	max, err := s.takePrettyUsize()
	if err != nil {
		return GraphOutdegree{}, err
	}
	if err := s.expectWords("and", "the"); err != nil {
		return GraphOutdegree{}, err
	}
	s.skipSpace()
	pth, err := s.takePrettyUsize()
	if err != nil {
		return GraphOutdegree{}, err
	}
	if err := s.expectWords("th", "percentile", "is"); err != nil {
		return GraphOutdegree{}, err
	}
	s.skipSpace()
	percentile, err := s.takePrettyUsize()
	if err != nil {
		return GraphOutdegree{}, err
	}
	if err := s.expectWords(")"); err != nil {
		return GraphOutdegree{}, err
	}
	s.lit(".")
	return GraphOutdegree{
		Outdegree: outdegree, Min: min, Max: max,
		PercentileTh: pth, Percentile: percentile,
	}, nil
}

// ProgressStats is a periodic "Progress(N) at <date>: ..." line. The
// per-minute rates are absent in DFS mode, present in BFS mode.
type ProgressStats struct {
	Generated int
	GenSpm    *int
	Distinct  int
	DistSpm   *int
	Left      int
}

// ParseProgressStats parses:
//
//	Progress(N) at <date>: G states generated (R s/min), D distinct states
//	found (R ds/min), L states left on queue.
func ParseProgressStats(line string) (ProgressStats, error) {
	s := newScanner(line)
	if err := s.expect("Progress"); err != nil {
		return ProgressStats{}, err
	}
	if err := s.expect("("); err != nil {
		return ProgressStats{}, err
	}
	if _, err := s.takePrettyUsize(); err != nil {
		return ProgressStats{}, err
	}
	if err := s.expectWords(")", "at"); err != nil {
		return ProgressStats{}, err
	}
	s.skipSpace()
	if !s.takeDateLiteralConsume() {
		return ProgressStats{}, s.errf("expected date/time")
	}
	if err := s.expect(":"); err != nil {
		return ProgressStats{}, err
	}
	s.skipSpace()
	generated, err := s.takePrettyUsize()
	if err != nil {
		return ProgressStats{}, err
	}
	if err := s.expectWords("states", "generated"); err != nil {
		return ProgressStats{}, err
	}
	genSpm, err := s.maybeRate("s")
	if err != nil {
		return ProgressStats{}, err
	}
	if err := s.expect(","); err != nil {
		return ProgressStats{}, err
	}
	s.skipSpace()
	distinct, err := s.takePrettyUsize()
	if err != nil {
		return ProgressStats{}, err
	}
	if err := s.expectWords("distinct", "states", "found"); err != nil {
		return ProgressStats{}, err
	}
	distSpm, err := s.maybeRate("ds")
	if err != nil {
		return ProgressStats{}, err
	}
	if err := s.expect(","); err != nil {
		return ProgressStats{}, err
	}
	s.skipSpace()
	left, err := s.takePrettyUsize()
	if err != nil {
		return ProgressStats{}, err
	}
	if err := s.expectWords("states", "left", "on", "queue"); err != nil {
		return ProgressStats{}, err
	}
	s.lit(".")
	return ProgressStats{
		Generated: generated, GenSpm: genSpm,
		Distinct: distinct, DistSpm: distSpm,
		Left: left,
	}, nil
}

func (s *scanner) takeDateLiteralConsume() bool {
	_, ok := s.takeDateLiteral()
	return ok
}

// maybeRate consumes an optional `(N <unit>/min)` parenthesized rate.
func (s *scanner) maybeRate(unit string) (*int, error) {
	s.skipSpace()
	save := s.pos
	if !s.lit("(") {
		return nil, nil
	}
	s.skipSpace()
	rate, err := s.takePrettyUsize()
	if err != nil {
		s.pos = save
		return nil, nil
	}
	if err := s.expectWords(unit, "/", "min"); err != nil {
		s.pos = save
		return nil, nil
	}
	s.skipSpace()
	if !s.lit(")") {
		s.pos = save
		return nil, nil
	}
	return &rate, nil
}

// ParseInvariantViolatedBehavior parses:
//
//	Invariant <ident> is violated.
func ParseInvariantViolatedBehavior(line string) (string, error) {
	s := newScanner(line)
	if err := s.expect("Invariant"); err != nil {
		return "", err
	}
	s.skipSpace()
	id, ok := s.ident()
	if !ok {
		return "", s.errf("expected invariant identifier")
	}
	if err := s.expectWords("is", "violated"); err != nil {
		return "", err
	}
	s.lit(".")
	return id, nil
}

// ParseFinished parses TLC's final timing line:
//
//	Finished in Nms at (<date>)
func ParseFinished(line string) (time.Duration, error) {
	s := newScanner(line)
	if err := s.expectWords("Finished", "in"); err != nil {
		return 0, err
	}
	s.skipSpace()
	millisStr, err := s.takePrettyInt()
	if err != nil {
		return 0, err
	}
	if err := s.expectWords("ms", "at", "("); err != nil {
		return 0, err
	}
	s.skipSpace()
	if !s.takeDateLiteralConsume() {
		return 0, s.errf("expected date/time")
	}
	s.skipSpace()
	if err := s.expect(")"); err != nil {
		return 0, err
	}
	millis, err := ParseUsize(millisStr)
	if err != nil {
		return 0, err
	}
	return time.Duration(millis) * time.Millisecond, nil
}

// AssertionFailure is the two-line payload of a `TLCValueAssertFailed`
// message: the first line is a fixed, uninformative preamble; the second
// carries the (optional) failure message the spec author wrote.
type AssertionFailure struct {
	Message *string
}

// ParseAssertionFailure1 validates the fixed first line of an assertion
// failure message.
func ParseAssertionFailure1(line string) error {
	s := newScanner(line)
	s.skipSpace()
	if err := s.expectWords("The", "first", "argument", "of"); err != nil {
		return err
	}
	s.skipSpace()
	if _, ok := s.ident(); !ok {
		return s.errf("expected operator identifier")
	}
	if err := s.expectWords("evaluated", "to", "FALSE"); err != nil {
		return err
	}
	s.skipSpace()
	if err := s.expect(";"); err != nil {
		return err
	}
	return s.expectWords("the", "second", "argument", "was", ":")
}

// ParseAssertionFailure2 parses the second, message-carrying line of an
// assertion failure.
func ParseAssertionFailure2(line string) (*string, error) {
	s := newScanner(line)
	s.skipSpace()
	msg, ok := s.dqString()
	if !ok {
		return nil, s.errf("expected assertion failure message")
	}
	return &msg, nil
}

// ParseErrorNestedExpressions1 validates the fixed preamble line of a
// `TlcNestedExpression` message.
func ParseErrorNestedExpressions1(line string) error {
	s := newScanner(line)
	s.skipSpace()
	return s.expectWords("The", "error", "occurred", "when", "TLC", "was", "evaluating", "the", "nested")
}

// ParseErrorNestedExpressions2 validates the second, fixed preamble line.
func ParseErrorNestedExpressions2(line string) error {
	s := newScanner(line)
	s.skipSpace()
	if err := s.expectWords("expressions", "at", "the", "following", "positions"); err != nil {
		return err
	}
	s.skipSpace()
	return s.expect(":")
}

// ParseErrorNestedExpressionsLocation parses one `<idx>. <pos> to <pos> in
// <module>` location line.
func ParseErrorNestedExpressionsLocation(line string) (pos.FileSpan, error) {
	s := newScanner(line)
	s.skipSpace()
	if _, err := s.takePrettyUsize(); err != nil {
		return pos.FileSpan{}, err
	}
	s.skipSpace()
	if err := s.expect("."); err != nil {
		return pos.FileSpan{}, err
	}
	s.skipSpace()
	return ParseFilePosSpan(s.restTrimmed())
}
