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
	"strings"

	"github.com/ocamlpro/matla/outcome"
	"github.com/ocamlpro/matla/pos"
)

// GeneratedModuleName is the module name the runtime's own helper-module
// generator writes to disk. Locations pointing into it are noise in a
// "triggered at" trace (spec §4.6) and are skipped when rendering one.
const GeneratedModuleName = "MatlaHarness"

// TlcError is any diagnostic the runtime can surface to the sink's
// handle_error (spec §7). Render produces the ordered, captioned lines a
// caller prints; ToOutcome says what run-level failure (if any) this
// diagnostic implies; IsWarning distinguishes warnings, which never affect
// the run's outcome, from everything else.
type TlcError interface {
	error
	Render(resolve ModuleResolver) ([]string, error)
	ToOutcome() (outcome.FailedOutcome, bool)
	IsWarning() bool
}

// NoJavaRuntimeError reports that the JVM launcher could not find a Java
// runtime to run TLC with at all.
type NoJavaRuntimeError struct{}

func (NoJavaRuntimeError) Error() string { return "unable to locate a Java Runtime" }

func (NoJavaRuntimeError) Render(ModuleResolver) ([]string, error) {
	return []string{
		"The operation couldn't be completed. Unable to locate a Java Runtime.",
		"Please visit http://www.java.com for information on installing Java.",
	}, nil
}

func (NoJavaRuntimeError) ToOutcome() (outcome.FailedOutcome, bool) {
	return outcome.Plain("unable to locate a Java Runtime"), true
}

func (NoJavaRuntimeError) IsWarning() bool { return false }

// ParseError is a TLA+ parser failure: "expected X, encountered Y at pos",
// with the full parser stack trace TLC reports alongside it.
type ParseError struct {
	Module      string
	Expected    string
	Encountered string
	At          pos.Pos
	And         *string
	Trace       []TraceStep
}

// TraceStep is one entry of a parse error's residual stack trace.
type TraceStep struct {
	Desc string
	At   pos.Pos
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in module %q: expected %s, encountered %q at %s", e.Module, e.Expected, e.Encountered, e.At)
}

func (e *ParseError) Render(resolve ModuleResolver) ([]string, error) {
	content, err := loadModule(resolve, e.Module)
	if err != nil {
		return nil, err
	}
	var res []string
	res = append(res, fmt.Sprintf("parse error on file `%s`", e.Module))

	encountered := fmt.Sprintf("- expected %s, encountered `%s`", e.Expected, e.Encountered)
	if e.And != nil {
		encountered += fmt.Sprintf(" and `%s`", *e.And)
	}
	res = append(res, encountered)
	res = append(res, fmt.Sprintf("  %s at %s", e.Module, e.At))
	excerpt, err := pos.Pretty(e.At, content, "here")
	if err != nil {
		return nil, err
	}
	res = append(res, indent(excerpt, "  ")...)

	if len(e.Trace) > 0 {
		res = append(res, "- while parsing")
		for _, step := range e.Trace {
			res = append(res, fmt.Sprintf("  %s at %s", e.Module, step.At))
			lines, err := pos.Pretty(step.At, content, step.Desc)
			if err != nil {
				return nil, err
			}
			res = append(res, indent(lines, "  ")...)
		}
	}
	return res, nil
}

func (e *ParseError) ToOutcome() (outcome.FailedOutcome, bool) { return outcome.ParseError(), true }
func (e *ParseError) IsWarning() bool                          { return false }

// SemanticError wraps a semantic-processing diagnostic TLC printed: a
// message, optionally qualified by a code and/or source span.
type SemanticError struct {
	Module  string
	TlcCode string
	Message string
	Span    *pos.FileSpan
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error in module %q: %s", e.Module, e.Message)
}

func (e *SemanticError) Render(resolve ModuleResolver) ([]string, error) {
	content, err := loadModule(resolve, e.Module)
	if err != nil {
		return nil, err
	}
	var res []string
	line1 := fmt.Sprintf("on file `%s`", e.Module)
	if e.Span != nil {
		line1 += fmt.Sprintf(" (%s)", e.Span)
	}
	res = append(res, line1)

	pref := "- "
	for _, line := range strings.Split(e.Message, "\n") {
		res = append(res, pref+line)
		pref = "  "
	}

	if e.Span != nil {
		var excerpt []string
		if e.Span.IsSingle() {
			excerpt, err = pos.Pretty(e.Span.Start.Pos, content, "here")
		} else {
			excerpt, err = pos.PrettySpan(e.Span.Start.Pos, e.Span.End, content, "here", "ending here")
		}
		if err != nil {
			return nil, err
		}
		res = append(res, excerpt...)
	}

	if e.TlcCode != "" {
		res = append(res, fmt.Sprintf("- TLC-level error: %s", e.TlcCode))
	}
	return res, nil
}

func (e *SemanticError) ToOutcome() (outcome.FailedOutcome, bool) { return outcome.ParseError(), true }
func (e *SemanticError) IsWarning() bool                          { return false }

// LexicalError is a TLA+ lexer failure: an unexpected token, the position
// TLC reported it at, and the raw code snippet TLC echoed for context.
// Spec §7: "TLC's lexical errors are more art than science" — the position
// is unreliable, and the renderer says so.
type LexicalError struct {
	Module      string
	Encountered string
	At          pos.Pos
	Code        string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error in module %q: encountered %q at %s", e.Module, e.Encountered, e.At)
}

func (e *LexicalError) Render(resolve ModuleResolver) ([]string, error) {
	content, err := loadModule(resolve, e.Module)
	if err != nil {
		return nil, err
	}
	res := []string{
		fmt.Sprintf("lexical error on file `%s` (%s)", e.Module, e.At),
		"- warning: TLC's lexical errors are more art than science",
		"  don't trust the error position too much",
		fmt.Sprintf("- encountered `%s`", e.Encountered),
	}
	lines, err := pos.Pretty(e.At, content, "here")
	if err != nil {
		return nil, err
	}
	res = append(res, indent(lines, "  ")...)
	return res, nil
}

func (e *LexicalError) ToOutcome() (outcome.FailedOutcome, bool) { return outcome.ParseError(), true }
func (e *LexicalError) IsWarning() bool                          { return false }

// RunErrorKind is what kind of mid-execution failure a RunError reports.
type RunErrorKind struct {
	assertFailed bool
	deadlock     bool
	msg          *string
	plain        string
}

func AssertFailedKind(msg *string) RunErrorKind { return RunErrorKind{assertFailed: true, msg: msg} }
func DeadlockKind() RunErrorKind                { return RunErrorKind{deadlock: true} }
func PlainKind(msg string) RunErrorKind         { return RunErrorKind{plain: msg} }

func (k RunErrorKind) String() string {
	switch {
	case k.assertFailed:
		if k.msg != nil {
			return fmt.Sprintf("an assertion failed with %q", *k.msg)
		}
		return "an assertion failed"
	case k.deadlock:
		return "TLC found a deadlock: a reachable state with no enabled next-state action"
	default:
		return k.plain
	}
}

func (k RunErrorKind) toOutcome() outcome.FailedOutcome {
	switch {
	case k.assertFailed:
		return outcome.AssertFailed()
	case k.deadlock:
		return outcome.Deadlock()
	default:
		return outcome.Plain(k.plain)
	}
}

// RunError is a mid-execution failure: an assertion failure or other
// run-level problem, optionally enriched post-hoc with the nested-
// expression locations TLC reports and a falsifying counter-example.
type RunError struct {
	Kind      RunErrorKind
	Locations []pos.FileSpan
	Behavior  *CexRenderer
}

func (e *RunError) Error() string { return e.Kind.String() }

func (e *RunError) Render(resolve ModuleResolver) ([]string, error) {
	res := []string{e.Kind.String()}

	if len(e.Locations) > 0 {
		res = append(res, "", "- triggered at")
		handledRelevant := false
		var lastFile string
		var lastRow int
		for i := len(e.Locations) - 1; i >= 0; i-- {
			span := e.Locations[i]
			if span.File() == GeneratedModuleName {
				continue
			}
			if !handledRelevant {
				res = append(res, fmt.Sprintf("  module %s", span))
				content, err := loadModule(resolve, span.File())
				if err != nil {
					return nil, err
				}
				var excerpt []string
				if span.IsSingle() {
					excerpt, err = pos.Pretty(span.Start.Pos, content, "")
				} else {
					excerpt, err = pos.PrettySpan(span.Start.Pos, span.End, content, "", "")
				}
				if err != nil {
					return nil, err
				}
				res = append(res, indent(excerpt, "  ")...)
				handledRelevant = true
				continue
			}
			if span.File() == lastFile && span.Start.Pos.Row == lastRow {
				continue
			}
			lastFile, lastRow = span.File(), span.Start.Pos.Row
			res = append(res, fmt.Sprintf("  module %s", span))
			content, err := loadModule(resolve, span.File())
			if err != nil {
				return nil, err
			}
			lines, err := pos.Pretty(span.Start.Pos, content, "")
			if err != nil {
				return nil, err
			}
			res = append(res, indent(lines, "  ")...)
		}
	}

	if e.Behavior != nil {
		res = append(res, "", "- while exploring this trace")
		res = append(res, e.Behavior.Render()...)
	}
	return res, nil
}

func (e *RunError) ToOutcome() (outcome.FailedOutcome, bool) { return e.Kind.toOutcome(), true }
func (e *RunError) IsWarning() bool                          { return false }

// AsRunError promotes a SemanticError into a RunError, the way TLC's own
// uninformative phrasings get rewritten into something a run can carry a
// behavior/locations on (err.rs's try_into_run_error).
func (e *SemanticError) AsRunError() *RunError {
	run := &RunError{Kind: PlainKind(e.Message)}
	if e.Span != nil {
		run.Locations = append(run.Locations, *e.Span)
	}
	return run
}

// WarningError wraps a non-fatal diagnostic (e.g. symbol redefinition).
// Spec §7: "kept separate; do not affect outcome."
type WarningError struct {
	Message string
	Span    *pos.FileSpan
}

func (w *WarningError) Error() string { return w.Message }

func (w *WarningError) Render(resolve ModuleResolver) ([]string, error) {
	res := []string{w.Message}
	if w.Span != nil {
		content, err := loadModule(resolve, w.Span.File())
		if err != nil {
			return nil, err
		}
		lines, err := pos.PrettySpan(w.Span.Start.Pos, w.Span.End, content, "here", "ending here")
		if err != nil {
			return nil, err
		}
		res = append(res, lines...)
	}
	return res, nil
}

func (w *WarningError) ToOutcome() (outcome.FailedOutcome, bool) { return outcome.FailedOutcome{}, false }
func (w *WarningError) IsWarning() bool                          { return true }

// List bundles several diagnostics under one umbrella error, e.g. "multiple
// problems occurred during parsing."
type List struct {
	During *string
	Errs   []TlcError
}

func (l *List) Error() string {
	if l.During != nil {
		return fmt.Sprintf("multiple problems occurred during %s", *l.During)
	}
	return "multiple problems occurred"
}

func (l *List) Render(resolve ModuleResolver) ([]string, error) {
	res := []string{l.Error()}
	for _, e := range l.Errs {
		warn := ""
		if e.IsWarning() {
			warn = "warning: "
		}
		lines, err := e.Render(resolve)
		if err != nil {
			return nil, err
		}
		for i, line := range lines {
			if i == 0 {
				res = append(res, fmt.Sprintf("- %s%s", warn, line))
			} else {
				res = append(res, "  "+line)
			}
		}
	}
	return res, nil
}

func (l *List) ToOutcome() (outcome.FailedOutcome, bool) {
	for _, e := range l.Errs {
		if f, ok := e.ToOutcome(); ok {
			return f, true
		}
	}
	return outcome.FailedOutcome{}, false
}

func (l *List) IsWarning() bool {
	for _, e := range l.Errs {
		if !e.IsWarning() {
			return false
		}
	}
	return true
}

func indent(lines []string, prefix string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = prefix + l
	}
	return out
}
