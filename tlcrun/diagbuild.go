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

package tlcrun

import (
	"fmt"
	"strings"

	"github.com/ocamlpro/matla/diag"
	"github.com/ocamlpro/matla/tlccode"
	"github.com/ocamlpro/matla/tlcmsg"
	"github.com/ocamlpro/matla/tlcparse"
)

// topModule is the module name used when a parse error is reported before
// Parsing mode has learned which file TLC was working on.
const topModule = "<tla>"

// buildParseError turns the raw text accumulated for a "*** Parse Error
// ***"/"Semantic error(s)"/"Lexical error" report into a structured
// diag.TlcError, falling back to a plain SemanticError carrying the raw
// text verbatim if the report doesn't match a known shape. Grounded on
// err.rs's TlcError::new_parse and parse.rs's parse_error rule.
func buildParseError(module, text string) diag.TlcError {
	if tlcparse.ContainsNullPointerException(text) {
		return &diag.SemanticError{
			Module: module,
			Message: "TLC-level exception `java.lang.NullPointerException`\n" +
				"This usually means your module opener/closer is ill-formed or inexistent.\n" +
				"Make sure your module starts with `---- MODULE file_name_without_tla_extension ----`\n" +
				"and ends with `====`",
		}
	}

	if idx := strings.Index(text, "File name"); idx >= 0 {
		if mod, name, err := tlcparse.ParseModuleNameMismatch(text[idx:]); err == nil {
			return &diag.SemanticError{
				Module: mod,
				Message: fmt.Sprintf(
					"in `%s.tla`: unexpected top-most header module name `%s`;\n"+
						"top-most module header must have the file's basename (`%s`, here) as the module's name",
					mod, name, mod,
				),
			}
		}
	}
	if spans, err := tlcparse.ParseSemanticErrorList(text); err == nil && len(spans) > 0 {
		if len(spans) == 1 {
			sp := spans[0]
			span := sp.Span
			return &diag.SemanticError{Module: sp.Module, Message: sp.Message, Span: &span}
		}
		errs := make([]diag.TlcError, 0, len(spans))
		for _, sp := range spans {
			span := sp.Span
			errs = append(errs, &diag.SemanticError{Module: sp.Module, Message: sp.Message, Span: &span})
		}
		during := "semantic processing"
		return &diag.List{During: &during, Errs: errs}
	}

	if redef, err := tlcparse.ParseWarningRedef(text); err == nil {
		span := redef.Pos
		return &diag.WarningError{
			Message: fmt.Sprintf("redefinition of symbol %q, previously defined at %s", redef.Sym, redef.Prev),
			Span:    &span,
		}
	}

	if lex, err := tlcparse.ParseLexicalError(text); err == nil {
		mod := module
		if lex.Module != "" {
			mod = lex.Module
		}
		return &diag.LexicalError{Module: mod, Encountered: lex.Token, At: lex.Pos, Code: lex.Code}
	}

	if pe, err := buildParsingParseError(module, text); err == nil {
		return pe
	}

	return &diag.SemanticError{Module: module, Message: strings.TrimSpace(text)}
}

// buildParsingParseError assembles a "*** Parse Error ***" report's
// "Was expecting"/"Encountered"/residual-trace/tail fragments, which TLC
// prints back to back with no separators of their own. The grammar lives
// on a single peg rule in the original (parse_parse_error); here the
// fragments are located by their fixed anchor text and handed to the
// matching tlcparse function one at a time.
func buildParsingParseError(module, text string) (*diag.ParseError, error) {
	expIdx := strings.Index(text, "Was expecting")
	encIdx := strings.Index(text, "Encountered")
	if expIdx < 0 || encIdx < 0 || encIdx < expIdx {
		return nil, fmt.Errorf("not a parse-error report")
	}
	traceIdx := strings.Index(text, "Residual stack trace follows:")
	tailIdx := strings.Index(text, "Fatal errors while parsing")

	encEnd := len(text)
	if traceIdx > encIdx {
		encEnd = traceIdx
	} else if tailIdx > encIdx {
		encEnd = tailIdx
	}

	expected, err := tlcparse.ParseErrorExpected(text[expIdx:encIdx])
	if err != nil {
		return nil, err
	}

	got, _, err := tlcparse.ParseErrorGot2(text[encIdx:encEnd])
	if err != nil {
		got, _, err = tlcparse.ParseErrorGot1(text[encIdx:encEnd])
		if err != nil {
			return nil, err
		}
	}

	var trace []tlcparse.TraceElm
	if traceIdx >= 0 {
		traceEnd := len(text)
		if tailIdx > traceIdx {
			traceEnd = tailIdx
		}
		trace, _ = tlcparse.ParseErrorTrace(text[traceIdx:traceEnd])
	}

	if tailIdx >= 0 {
		if tailModule, err := tlcparse.ParseErrorTail(text[tailIdx:]); err == nil {
			module = tailModule
		}
	}

	steps := make([]diag.TraceStep, 0, len(trace))
	for _, t := range trace {
		steps = append(steps, diag.TraceStep{Desc: t.Label, At: t.Pos})
	}
	return &diag.ParseError{
		Module:      module,
		Expected:    expected,
		Encountered: got.Encountered,
		At:          got.Pos,
		And:         got.And,
		Trace:       steps,
	}, nil
}

// matchFatalErrorsWhileParsing recognizes the bare
// "Fatal errors while parsing TLA+ spec in file <module>" line Parsing
// mode sees on its own (distinct from the longer post-amble ParseErrorTail
// expects once a full parse-error report has accumulated).
func matchFatalErrorsWhileParsing(line string) (module string, ok bool) {
	want := []string{"Fatal", "errors", "while", "parsing", "TLA+", "spec", "in", "file"}
	fields := strings.Fields(line)
	if len(fields) != len(want)+1 {
		return "", false
	}
	for i, w := range want {
		if fields[i] != w {
			return "", false
		}
	}
	return fields[len(want)], true
}

// classifyErrorMsg turns one accumulated error-coded message into a
// diag.TlcError. This covers the handful of run-level error codes this
// module bothers classifying precisely (assert failures, deadlocks,
// nested-expression locations); everything else is dispatched by the
// code's category, mirroring code.rs's into_tlc_error: a TlcProblem code
// is a RunError, a TopCfg code is a SemanticError rooted at the .cfg file,
// and every other error category is a SemanticError rooted at the top-level
// TLA+ module, carrying the message text TLC printed verbatim (curated
// with the same two rewrites code.rs applies for otherwise-uninformative
// phrasings: TlcParsingFailed2's header/footer hint and
// TlcConfigMissingInit's missing-init hint).
func classifyErrorMsg(msg *tlcmsg.Msg) diag.TlcError {
	if msg.Code == nil {
		return &diag.SemanticError{Module: topModule, Message: strings.Join(msg.Lines(), "\n")}
	}
	entry, known := tlccode.Lookup(msg.Code.Int())

	switch msg.Code.Int() {
	case tlccode.ProblemTlcValueAssertFailed.Int():
		lines := msg.Lines()
		var assertMsg *string
		if len(lines) >= 2 {
			if m, err := tlcparse.ParseAssertionFailure2(lines[1]); err == nil {
				assertMsg = m
			}
		}
		return &diag.RunError{Kind: diag.AssertFailedKind(assertMsg)}

	case tlccode.UnsafeDeadlockReached.Int():
		return &diag.RunError{Kind: diag.DeadlockKind()}

	case tlccode.ErrTlcNestedExpression.Int():
		lines := msg.Lines()
		run := &diag.RunError{Kind: diag.PlainKind(entry.Desc)}
		for i, line := range lines {
			if i < 2 {
				continue // first two lines are the fixed preamble validated by ParseErrorNestedExpressions1/2
			}
			if span, err := tlcparse.ParseErrorNestedExpressionsLocation(line); err == nil {
				run.Locations = append(run.Locations, span)
			}
		}
		return run

	case tlccode.ErrNoJavaRuntime.Int():
		return &diag.NoJavaRuntimeError{}

	default:
		return classifyByCategory(entry, known, msg)
	}
}

// classifyByCategory is the catch-all code.rs's into_tlc_error reduces to
// once the individually-classified codes above are carved out: every
// TlcProblem code stays a RunError (TLC's own report method, not
// SemanticError, covers that branch in the original), a TopCfg code is
// rooted at the .cfg file, and everything else is rooted at the top-level
// TLA+ module.
func classifyByCategory(entry tlccode.Entry, known bool, msg *tlcmsg.Msg) diag.TlcError {
	text := strings.Join(msg.Lines(), "\n")
	if text == "" {
		text = entry.Desc
	}

	if known && entry.Category == tlccode.CategoryTlcProblem {
		return &diag.RunError{Kind: diag.PlainKind(entry.Desc)}
	}

	switch {
	case known && entry.Code.Int() == tlccode.ErrTlcParsingFailed2.Int():
		text = text + "\n\n" +
			"This error often appears when your module header and/or footer are ill-formed.\n" +
			"Make sure your module starts with\n    ---- MODULE <file_basename> ----\n" +
			"and ends with\n    ====\n" +
			"where `<file_basename>` is your file's name without `.tla`."
	case known && entry.Code.Int() == tlccode.CfgMissingInit.Int():
		text = "The `.cfg` file provided does not specify an initial state predicate.\n" +
			"Modules imported with a parameterized `INSTANCE` statement can also cause this error."
	}

	module := topModule
	var tlcCode string
	if known {
		tlcCode = entry.Name
		if entry.Category == tlccode.CategoryCfg {
			module = topCfgModule
		}
	}
	return &diag.SemanticError{Module: module, TlcCode: tlcCode, Message: text}
}
