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

// Package tlcrun is the runtime state machine that turns the stream of
// framed TLC messages into a [outcome.RunOutcome]: a stack of [Mode]s, one
// per (rough) phase of a TLC run, each reacting to incoming messages by
// replacing, keeping, or finalizing itself.
//
// Grounded on project/src/tlc/runtime.rs and its runtime/ submodules.
package tlcrun

import (
	"github.com/ocamlpro/matla/outcome"
	"github.com/ocamlpro/matla/value"
)

// controlKind is the instruction a mode hands back to the Runtime after
// handling a message, mirroring runtime/control.rs's Control enum.
type controlKind int

const (
	ctrlIgnored controlKind = iota
	ctrlReplace
	ctrlKeep
	ctrlFinalize
)

// Control is what a Mode's HandleMsg/HandleError/Integrate returns: an
// instruction for the Runtime about what to do with the mode stack next.
type Control struct {
	kind    controlKind
	first   Mode
	second  Mode
	outcome ModeOutcome
}

// Ignored says this mode could not make sense of the message; the Runtime
// should try the mode below it on the stack. mode is handed back unchanged
// so it can be put back once something downstream deals with the message.
func Ignored(mode Mode) Control { return Control{kind: ctrlIgnored, first: mode} }

// Replace swaps the top of the stack for a new mode.
func Replace(mode Mode) Control { return Control{kind: ctrlReplace, first: mode} }

// Keep puts mode back on top of the stack unchanged (besides whatever
// internal state mutation already happened to it).
func Keep(mode Mode) Control { return Control{kind: ctrlKeep, first: mode} }

// KeepAnd puts mode back, then pushes next on top of it — used when a mode
// needs a sub-mode to take over temporarily (e.g. Analysis pushing a Trace
// mode to consume a counter-example).
func KeepAnd(mode, next Mode) Control { return Control{kind: ctrlKeep, first: mode, second: next} }

// Finalize pops this mode off the stack for good, handing o up to
// whatever is now on top via its Integrate method.
func Finalize(o ModeOutcome) Control { return Control{kind: ctrlFinalize, outcome: o} }

// modeOutcomeKind is what kind of result a finished mode produced,
// mirroring runtime.rs's ModeOutcomeKind.
type modeOutcomeKind int

const (
	outcomeUnknown modeOutcomeKind = iota
	outcomeSuccess
	outcomeCex
	outcomeProblem
)

// ModeOutcome is what a mode hands up the stack when it finalizes: either
// nothing in particular, a completed run (safe or not), a counter-example
// it produced, or a problem (with whether it's already been reported to
// the sink).
type ModeOutcome struct {
	kind    modeOutcomeKind
	safe    bool
	cex     *value.Cex
	failed  outcome.FailedOutcome
	reported bool
	notes   []string
}

func NewUnknownOutcome() ModeOutcome { return ModeOutcome{kind: outcomeUnknown} }

func NewSuccessOutcome(safe bool) ModeOutcome {
	return ModeOutcome{kind: outcomeSuccess, safe: safe}
}

func NewCexOutcome(cex *value.Cex) ModeOutcome { return ModeOutcome{kind: outcomeCex, cex: cex} }

func NewProblemOutcome(f outcome.FailedOutcome, reported bool) ModeOutcome {
	return ModeOutcome{kind: outcomeProblem, failed: f, reported: reported}
}

// Desc is a one-word description of which variant this is, used in
// unexpected-outcome diagnostics.
func (o ModeOutcome) Desc() string {
	switch o.kind {
	case outcomeSuccess:
		return "success"
	case outcomeCex:
		return "cex"
	case outcomeProblem:
		return "problem"
	default:
		return "unknown"
	}
}

// Push appends a note to the outcome, used when an unexpected outcome gets
// finalized further up the stack so the eventual error explains why.
func (o *ModeOutcome) Push(note string) { o.notes = append(o.notes, note) }

// Notes returns the accumulated annotations, if any.
func (o ModeOutcome) Notes() []string { return o.notes }

// AsSuccess reports whether this is a Success outcome, and if so whether
// the run stayed safe throughout.
func (o ModeOutcome) AsSuccess() (safe bool, ok bool) {
	if o.kind != outcomeSuccess {
		return false, false
	}
	return o.safe, true
}

// AsCex reports whether this is a Cex outcome, and if so the trace.
func (o ModeOutcome) AsCex() (*value.Cex, bool) {
	if o.kind != outcomeCex {
		return nil, false
	}
	return o.cex, true
}

// AsProblem reports whether this is a Problem outcome, and if so the
// failure it carries and whether it was already reported to the sink.
func (o ModeOutcome) AsProblem() (f outcome.FailedOutcome, reported bool, ok bool) {
	if o.kind != outcomeProblem {
		return outcome.FailedOutcome{}, false, false
	}
	return o.failed, o.reported, true
}
