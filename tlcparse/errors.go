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
	"strings"

	"github.com/ocamlpro/matla/pos"
)

// TraceElm is one step of a parse-error's residual stack trace: what TLC
// was parsing, and where it started.
type TraceElm struct {
	Label string
	Pos   pos.Pos
}

var traceElmFixedForms = []struct {
	words []string
	label string
}{
	{[]string{"Module", "definition", "starting", "at"}, "module definition start"},
	{[]string{"Module", "body", "starting", "at"}, "module body start"},
	{[]string{"Begin", "module", "starting", "at"}, "module header start"},
	{[]string{"Definition", "starting", "at"}, "definition start"},
}

// parseTraceElm parses one residual-stack-trace entry: either one of the
// fixed-wording forms TLC uses for module/definition starts, or the
// catch-all `<words...> starting at <pos>.` shape.
func (s *scanner) parseTraceElm() (TraceElm, bool) {
	save := s.pos
	for _, form := range traceElmFixedForms {
		ok := true
		for _, w := range form.words {
			s.skipSpace()
			if !s.lit(w) {
				ok = false
				break
			}
		}
		if ok {
			s.skipSpace()
			p, posOK := s.filePos()
			if !posOK {
				s.pos = save
				continue
			}
			s.skipSpace()
			if !s.lit(".") {
				s.pos = save
				continue
			}
			return TraceElm{Label: form.label, Pos: p}, true
		}
		s.pos = save
	}

	start := s.pos
	lastWordEnd := s.pos
	for {
		s.skipSpace()
		mark := s.pos
		if s.lit("starting") {
			save2 := s.pos
			s.skipSpace()
			if s.lit("at") {
				s.skipSpace()
				p, ok := s.filePos()
				if ok {
					s.skipSpace()
					if s.lit(".") {
						label := strings.TrimSpace(s.s[start:lastWordEnd])
						return TraceElm{Label: label, Pos: p}, true
					}
				}
			}
			s.pos = save2
		}
		s.pos = mark
		word := s.takeBareWord()
		if word == "" {
			s.pos = save
			return TraceElm{}, false
		}
		lastWordEnd = s.pos
	}
}

// takeBareWord consumes a run of identifier-ish characters not containing
// whitespace, used to skip over the free-form prefix text in a trace
// element label.
func (s *scanner) takeBareWord() string {
	start := s.pos
	for !s.eof() {
		b := s.s[s.pos]
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			return s.s[start:s.pos]
		case isIdentCont(b) || b == '!':
			s.pos++
		default:
			if s.pos == start {
				return ""
			}
			return s.s[start:s.pos]
		}
	}
	return s.s[start:s.pos]
}

// ParseErrorTrace parses "Residual stack trace follows:" followed by zero
// or more trace elements.
func ParseErrorTrace(text string) ([]TraceElm, error) {
	s := newScanner(text)
	s.skipSpace()
	if err := s.expectWords("Residual", "stack", "trace", "follows", ":"); err != nil {
		return nil, err
	}
	var trace []TraceElm
	for {
		s.skipSpace()
		elm, ok := s.parseTraceElm()
		if !ok {
			break
		}
		trace = append(trace, elm)
	}
	return trace, nil
}

// ParseErrorExpected parses `Was expecting "<token>"`.
func ParseErrorExpected(text string) (string, error) {
	s := newScanner(text)
	s.skipSpace()
	if err := s.expectWords("Was", "expecting"); err != nil {
		return "", err
	}
	s.skipSpace()
	str, ok := s.dqString()
	if !ok {
		return "", s.errf("expected double-quoted token")
	}
	return str, nil
}

// ErrorGot is the "Encountered ... at ... [and ...]" fragment common to
// both shapes of parse error.
type ErrorGot struct {
	Encountered string
	Pos         pos.Pos
	And         *string
}

// ParseErrorGot1 parses the first shape:
//
//	Encountered "<tok>" at <pos> [and [token] ["]<text>["] ]
func ParseErrorGot1(text string) (ErrorGot, string, error) {
	s := newScanner(text)
	s.skipSpace()
	if err := s.expect("Encountered"); err != nil {
		return ErrorGot{}, "", err
	}
	s.skipSpace()
	tok, ok := s.dqString()
	if !ok {
		return ErrorGot{}, "", s.errf("expected encountered token")
	}
	s.skipSpace()
	if err := s.expect("at"); err != nil {
		return ErrorGot{}, "", err
	}
	s.skipSpace()
	p, ok := s.filePos()
	if !ok {
		return ErrorGot{}, "", s.errf("expected position")
	}

	var and *string
	s.skipSpace()
	mark := s.pos
	if s.lit("and") {
		s.skipSpace()
		s.lit("token")
		s.skipSpace()
		s.lit(`"`)
		start := s.pos
		for !s.eof() {
			b := s.s[s.pos]
			if b == '.' || b == '\n' || b == '\r' || b == '"' {
				break
			}
			s.pos++
		}
		word := strings.TrimSpace(s.s[start:s.pos])
		s.lit(`"`)
		s.skipSpace()
		if word != "" {
			and = &word
		} else {
			s.pos = mark
		}
	}
	return ErrorGot{Encountered: tok, Pos: p, And: and}, s.rest(), nil
}

// ParseErrorGot2 parses the second shape:
//
//	Encountered "<tok>" at <pos> and token "<tok2>"
func ParseErrorGot2(text string) (ErrorGot, string, error) {
	s := newScanner(text)
	s.skipSpace()
	if err := s.expect("Encountered"); err != nil {
		return ErrorGot{}, "", err
	}
	s.skipSpace()
	tok, ok := s.dqString()
	if !ok {
		return ErrorGot{}, "", s.errf("expected encountered token")
	}
	s.skipSpace()
	if err := s.expect("at"); err != nil {
		return ErrorGot{}, "", err
	}
	s.skipSpace()
	p, ok := s.filePos()
	if !ok {
		return ErrorGot{}, "", s.errf("expected position")
	}
	s.skipSpace()
	if err := s.expectWords("and", "token"); err != nil {
		return ErrorGot{}, "", err
	}
	s.skipSpace()
	tok2, ok := s.dqString()
	if !ok {
		return ErrorGot{}, "", s.errf("expected second token")
	}
	return ErrorGot{Encountered: tok, Pos: p, And: &tok2}, s.rest(), nil
}

// takeExcClassName consumes a dotted JVM class name (letters, digits, and
// `.`) up to the next whitespace.
func (s *scanner) takeExcClassName() string {
	start := s.pos
	for !s.eof() {
		b := s.s[s.pos]
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			break
		}
		s.pos++
	}
	return s.s[start:s.pos]
}

// ParseErrorTail parses the fixed closing preamble of a parse error,
// returning the module it names.
//
//	Fatal errors while parsing TLA+ spec in file <m0> <exc> *** Abort
//	messages: <n> In module <m1> Could not parse module <m2> from file <f>
func ParseErrorTail(text string) (string, error) {
	s := newScanner(text)
	s.skipSpace()
	if err := s.expectWords("Fatal", "errors", "while", "parsing", "TLA+", "spec"); err != nil {
		return "", err
	}
	s.skipSpace()
	if err := s.expectWords("in", "file"); err != nil {
		return "", err
	}
	s.skipSpace()
	module0, ok := s.ident()
	if !ok {
		return "", s.errf("expected module identifier")
	}
	s.skipSpace()
	if _, err := ParseExc(s.takeExcClassName()); err != nil {
		return "", err
	}
	s.skipSpace()
	if err := s.expectWords("***", "Abort", "messages", ":"); err != nil {
		return "", err
	}
	s.skipSpace()
	if _, err := s.takePrettyUsize(); err != nil {
		return "", err
	}
	s.skipSpace()
	if err := s.expectWords("In", "module"); err != nil {
		return "", err
	}
	s.skipSpace()
	if _, ok := s.ident(); !ok {
		return "", s.errf("expected module identifier")
	}
	s.skipSpace()
	if err := s.expectWords("Could", "not", "parse", "module"); err != nil {
		return "", err
	}
	s.skipSpace()
	if _, ok := s.ident(); !ok {
		return "", s.errf("expected module identifier")
	}
	s.skipSpace()
	if err := s.expectWords("from", "file"); err != nil {
		return "", err
	}
	s.skipSpace()
	if _, ok := s.unixFileName(); !ok {
		return "", s.errf("expected file name")
	}
	return module0, nil
}

// squotedIdent consumes a TLA+ identifier wrapped in single quotes.
func (s *scanner) squotedIdent() (string, bool) {
	save := s.pos
	if !s.lit("'") {
		return "", false
	}
	id, ok := s.ident()
	if !ok || !s.lit("'") {
		s.pos = save
		return "", false
	}
	return id, true
}

// ContainsNullPointerException reports whether text carries one of the
// handful of NullPointerException phrasings TLC prints when its own
// module parsing fails in an uninformative way. Grounded on parse.rs's
// semantic_error rule, which discards the exception's own text and
// rewrites it into a hint about ill-formed module headers/footers.
func ContainsNullPointerException(text string) bool {
	return strings.Contains(text, "java.lang.NullPointerException")
}

// ParseModuleNameMismatch parses:
//
//	File name '<module>' does not match the name '<name>' of the top level
//	module it contains.
//
// TLC prints this when a file's basename disagrees with its own top-level
// module header; grounded on parse.rs's semantic_error rule.
func ParseModuleNameMismatch(text string) (module, name string, err error) {
	s := newScanner(text)
	s.skipSpace()
	if err := s.expectWords("File", "name"); err != nil {
		return "", "", err
	}
	s.skipSpace()
	module, ok := s.squotedIdent()
	if !ok {
		return "", "", s.errf("expected quoted module name")
	}
	s.skipSpace()
	if err := s.expectWords("does", "not", "match", "the", "name"); err != nil {
		return "", "", err
	}
	s.skipSpace()
	name, ok = s.squotedIdent()
	if !ok {
		return "", "", s.errf("expected quoted module name")
	}
	s.skipSpace()
	if err := s.expectWords("of", "the", "top", "level", "module", "it", "contains", "."); err != nil {
		return "", "", err
	}
	return module, name, nil
}

// LexicalError is the payload of a `Lexical error` message.
type LexicalError struct {
	Token  string
	Pos    pos.Pos
	Code   string
	Module string
}

// ParseLexicalError parses:
//
//	Lexical error at <pos>. Encountered: "<token>" (<n>), after : "<code>"
//	<tail>
func ParseLexicalError(text string) (LexicalError, error) {
	s := newScanner(text)
	s.skipSpace()
	if err := s.expectWords("Lexical", "error", "at"); err != nil {
		return LexicalError{}, err
	}
	s.skipSpace()
	p, ok := s.filePos()
	if !ok {
		return LexicalError{}, s.errf("expected position")
	}
	s.skipSpace()
	if err := s.expect("."); err != nil {
		return LexicalError{}, err
	}
	s.skipSpace()
	if err := s.expectWords("Encountered", ":"); err != nil {
		return LexicalError{}, err
	}
	s.skipSpace()
	tok, ok := s.dqString()
	if !ok {
		return LexicalError{}, s.errf("expected token")
	}
	s.skipSpace()
	if err := s.expect("("); err != nil {
		return LexicalError{}, err
	}
	if _, err := s.takePrettyUsize(); err != nil {
		return LexicalError{}, err
	}
	s.skipSpace()
	if err := s.expect(")"); err != nil {
		return LexicalError{}, err
	}
	s.skipSpace()
	if err := s.expectWords(",", "after", ":"); err != nil {
		return LexicalError{}, err
	}
	s.skipSpace()
	code, ok := s.dqString()
	if !ok {
		return LexicalError{}, s.errf("expected code fragment")
	}
	s.skipSpace()
	module, err := ParseErrorTail(s.rest())
	if err != nil {
		return LexicalError{}, err
	}
	return LexicalError{Token: tok, Pos: p, Code: unescapeCode(code), Module: module}, nil
}

// unescapeCode undoes TLC's `\"`/`\\` escaping of the offending source
// fragment it echoes back.
func unescapeCode(s string) string {
	r := strings.NewReplacer(`\"`, `"`, `\\`, `\`)
	return r.Replace(s)
}

// SemanticErrorSpan is one `<pos> to <pos> of module <m> <msg>` entry from
// a "Semantic error(s): *** Error(s): N" report, or one half of the "item
// not properly indented" report.
type SemanticErrorSpan struct {
	Module  string
	Span    pos.FileSpan
	Message string
}

// ParseSemanticErrorList parses:
//
//	Semantic error(s) : *** Error(s): N
//	<pos> to <pos> of module <m> <msg>
//	...
func ParseSemanticErrorList(text string) ([]SemanticErrorSpan, error) {
	s := newScanner(text)
	s.skipSpace()
	if err := s.expect("Semantic"); err != nil {
		return nil, err
	}
	s.skipSpace()
	if err := s.expect("error"); err != nil {
		return nil, err
	}
	s.lit("s")
	s.skipSpace()
	if err := s.expect(":"); err != nil {
		return nil, err
	}
	s.skipSpace()
	if err := s.expect("***"); err != nil {
		return nil, err
	}
	s.skipSpace()
	if err := s.expect("Error"); err != nil {
		return nil, err
	}
	s.lit("s")
	s.skipSpace()
	if err := s.expect(":"); err != nil {
		return nil, err
	}
	s.skipSpace()
	count, err := s.takePrettyUsize()
	if err != nil {
		return nil, err
	}

	entries := make([]SemanticErrorSpan, 0, count)
	for {
		s.skipSpace()
		start, ok := s.filePos()
		if !ok {
			break
		}
		s.skipSpace()
		if err := s.expect("to"); err != nil {
			return nil, err
		}
		s.skipSpace()
		end, ok := s.filePos()
		if !ok {
			return nil, s.errf("expected end position")
		}
		s.skipSpace()
		if err := s.expectWords("of", "module"); err != nil {
			return nil, err
		}
		s.skipSpace()
		module, ok := s.ident()
		if !ok {
			return nil, s.errf("expected module identifier")
		}
		lineStart := s.pos
		for !s.eof() && s.s[s.pos] != '\n' {
			s.pos++
		}
		msg := strings.TrimSpace(s.s[lineStart:s.pos])
		entries = append(entries, SemanticErrorSpan{
			Module:  module,
			Span:    pos.NewFileSpan(pos.NewFilePos(module, start), end),
			Message: msg,
		})
	}
	return entries, nil
}

// WarningRedef is a parsed redefinition warning.
type WarningRedef struct {
	Pos  pos.FileSpan
	Sym  string
	Prev pos.FileSpan
}

// ParseWarningRedef parses:
//
//	<pos> to <pos> of module <m>. Multiple declarations or definitions for
//	symbol <sym>. This duplicates the one at <pos> to <pos> of module <m>.
func ParseWarningRedef(text string) (WarningRedef, error) {
	s := newScanner(text)
	s.skipSpace()
	symStart, ok := s.filePos()
	if !ok {
		return WarningRedef{}, s.errf("expected position")
	}
	s.skipSpace()
	if err := s.expect("to"); err != nil {
		return WarningRedef{}, err
	}
	s.skipSpace()
	symEnd, ok := s.filePos()
	if !ok {
		return WarningRedef{}, s.errf("expected position")
	}
	s.skipSpace()
	if err := s.expectWords("of", "module"); err != nil {
		return WarningRedef{}, err
	}
	s.skipSpace()
	module, ok := s.ident()
	if !ok {
		return WarningRedef{}, s.errf("expected module identifier")
	}
	s.skipSpace()
	s.lit(".")
	s.skipSpace()
	if err := s.expectWords("Multiple", "declarations", "or", "definitions", "for", "symbol"); err != nil {
		return WarningRedef{}, err
	}
	s.skipSpace()
	sym, ok := s.ident()
	if !ok {
		return WarningRedef{}, s.errf("expected symbol identifier")
	}
	s.skipSpace()
	s.lit(".")
	s.skipSpace()
	if err := s.expectWords("This", "duplicates", "the", "one", "at"); err != nil {
		return WarningRedef{}, err
	}
	s.skipSpace()
	prevStart, ok := s.filePos()
	if !ok {
		return WarningRedef{}, s.errf("expected position")
	}
	s.skipSpace()
	if err := s.expect("to"); err != nil {
		return WarningRedef{}, err
	}
	s.skipSpace()
	prevEnd, ok := s.filePos()
	if !ok {
		return WarningRedef{}, s.errf("expected position")
	}
	s.skipSpace()
	if err := s.expectWords("of", "module"); err != nil {
		return WarningRedef{}, err
	}
	s.skipSpace()
	prevModule, ok := s.ident()
	if !ok {
		return WarningRedef{}, s.errf("expected module identifier")
	}
	return WarningRedef{
		Pos:  pos.NewFileSpan(pos.NewFilePos(module, symStart), symEnd),
		Sym:  sym,
		Prev: pos.NewFileSpan(pos.NewFilePos(prevModule, prevStart), prevEnd),
	}, nil
}

// ParsingFileKind says which kind of file TLC reports parsing: a regular
// TLA+ module, or the `.cfg` configuration file (which has no module name
// of its own).
type ParsingFileKind int

const (
	ParsingModule ParsingFileKind = iota
	ParsingConfig
)

// ParseParsingFile parses:
//
//	Parsing file <path/><module>.<ext>
func ParseParsingFile(text string) (ParsingFileKind, string, error) {
	s := newScanner(text)
	s.skipSpace()
	if err := s.expectWords("Parsing", "file"); err != nil {
		return 0, "", err
	}
	s.skipSpace()
	for {
		mark := s.pos
		if _, ok := s.unixFileName(); ok && s.lit("/") {
			continue
		}
		s.pos = mark
		break
	}
	module, ok := s.ident()
	if !ok {
		return 0, "", s.errf("expected module name")
	}
	if err := s.expect("."); err != nil {
		return 0, "", err
	}
	ext, ok := s.ident()
	if !ok {
		return 0, "", s.errf("expected file extension")
	}
	if ext == "cfg" {
		return ParsingConfig, "", nil
	}
	return ParsingModule, module, nil
}

// ParseProcessingFile parses:
//
//	Semantic processing of module <m>
func ParseProcessingFile(text string) (string, error) {
	s := newScanner(text)
	s.skipSpace()
	if err := s.expectWords("Semantic", "processing", "of", "module"); err != nil {
		return "", err
	}
	s.skipSpace()
	module, ok := s.ident()
	if !ok {
		return "", s.errf("expected module identifier")
	}
	return module, nil
}
