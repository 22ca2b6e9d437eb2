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

// Package outcome gathers the different kinds of result a run produces:
// [ProcessOutcome] classifies the child's raw exit code, [RunOutcome] is
// what the runtime state machine concluded, and [Outcome] bundles both
// together with the errors and the runtime duration for a full report.
// [ConciseOutcome] reduces all of that to the one-word verdict callers
// compare against, with a fixed, stable exit-code mapping.
//
// Grounded on project/src/tlc/outcome.rs.
package outcome

import (
	"fmt"
	"time"

	"github.com/ocamlpro/matla/tlccode"
)

// FailedOutcome names why a run did not succeed.
type FailedOutcome struct {
	kind failedKind
	msg  string
}

type failedKind int

const (
	failedParseError failedKind = iota
	failedAssertFailed
	failedDeadlock
	failedUnsafe
	failedPlain
)

func ParseError() FailedOutcome   { return FailedOutcome{kind: failedParseError} }
func AssertFailed() FailedOutcome { return FailedOutcome{kind: failedAssertFailed} }
func Deadlock() FailedOutcome     { return FailedOutcome{kind: failedDeadlock} }
func Unsafe() FailedOutcome       { return FailedOutcome{kind: failedUnsafe} }
func Plain(msg string) FailedOutcome {
	return FailedOutcome{kind: failedPlain, msg: msg}
}

// IsDeadlock reports whether this is specifically a deadlock failure.
func (f FailedOutcome) IsDeadlock() bool { return f.kind == failedDeadlock }

func (f FailedOutcome) String() string {
	switch f.kind {
	case failedParseError:
		return "parse error"
	case failedAssertFailed:
		return "assertion failure"
	case failedDeadlock:
		return "deadlock"
	case failedUnsafe:
		return "unsafe"
	case failedPlain:
		return fmt.Sprintf("<%s>", f.msg)
	default:
		return "<unknown failure>"
	}
}

// RunOutcome is the result of the runtime state machine: either success or
// one named failure. The zero value is Success.
type RunOutcome struct {
	failure *FailedOutcome
}

// Success is the run-succeeded outcome.
func Success() RunOutcome { return RunOutcome{} }

// Failure wraps a FailedOutcome into a RunOutcome.
func Failure(f FailedOutcome) RunOutcome { return RunOutcome{failure: &f} }

func (r RunOutcome) IsSuccess() bool { return r.failure == nil }

// IsDeadlock reports whether the run failed specifically with a deadlock.
func (r RunOutcome) IsDeadlock() bool { return r.failure != nil && r.failure.IsDeadlock() }

// AsFailure returns the failure reason, if any.
func (r RunOutcome) AsFailure() (FailedOutcome, bool) {
	if r.failure == nil {
		return FailedOutcome{}, false
	}
	return *r.failure, true
}

// Update replaces self with that if self is still Success; once failed, a
// RunOutcome never reverts (spec §4.5: "updated monotonically").
func (r *RunOutcome) Update(that RunOutcome) {
	if r.failure == nil {
		*r = that
	}
}

func (r RunOutcome) String() string {
	if r.failure == nil {
		return "success"
	}
	return r.failure.String()
}

// ProcessOutcome classifies the child process's raw exit code.
type ProcessOutcome struct {
	Code   int
	Status tlccode.Exit
	Known  bool
}

// NewProcessOutcome wraps a raw exit code, looking it up against the known
// tlccode.Exit table.
func NewProcessOutcome(code int) ProcessOutcome {
	status := tlccode.Exit(code)
	_, known := map[tlccode.Exit]bool{
		tlccode.ExitSuccess: true, tlccode.ExitPlainError: true,
		tlccode.ExitViolationAssumption: true, tlccode.ExitViolationDeadlock: true,
		tlccode.ExitViolationSafety: true, tlccode.ExitViolationLiveness: true,
		tlccode.ExitViolationAssert: true,
		tlccode.ExitFailureSpecEval: true, tlccode.ExitFailureSafetyEval: true,
		tlccode.ExitFailureLivenessEval: true,
		tlccode.ExitErrorSpecParse: true, tlccode.ExitErrorConfigParse: true,
		tlccode.ExitErrorStatespaceTooLarge: true, tlccode.ExitErrorSystem: true,
	}[status]
	return ProcessOutcome{Code: code, Status: status, Known: known}
}

func (p ProcessOutcome) String() string {
	if !p.Known {
		return fmt.Sprintf("unknown TLC exit code %d", p.Code)
	}
	return fmt.Sprintf("%s (%d)", p.Status, p.Code)
}

// Outcome bundles everything a completed run produced: the child's process
// outcome, the runtime state machine's outcome (absent if the process never
// got that far), every surfaced error, the run's wall-clock duration, and
// when it started.
type Outcome struct {
	Process   ProcessOutcome
	Run       *RunOutcome
	Runtime   time.Duration
	StartTime time.Time
	Errors    []error
}

// NewOutcome builds an Outcome with no errors yet recorded.
func NewOutcome(process ProcessOutcome, run *RunOutcome, runtime time.Duration, startTime time.Time) Outcome {
	return Outcome{Process: process, Run: run, Runtime: runtime, StartTime: startTime}
}

// ConciseOutcome reduces an Outcome to the one-word verdict callers compare
// their expectations against.
type ConciseOutcome struct {
	kind    conciseKind
	errText *string
}

type conciseKind int

const (
	ConciseSuccess conciseKind = iota
	ConciseUnsafe
	ConciseIllDefined
	ConciseError
	ConciseAssertFailed
	ConciseUnknown
)

func concise(k conciseKind) ConciseOutcome { return ConciseOutcome{kind: k} }

func conciseError(msg *string) ConciseOutcome { return ConciseOutcome{kind: ConciseError, errText: msg} }

// Kind reports which of the six concise variants this is.
func (c ConciseOutcome) Kind() conciseKind { return c.kind }

func (c ConciseOutcome) IsSuccess() bool      { return c.kind == ConciseSuccess }
func (c ConciseOutcome) IsUnsafe() bool       { return c.kind == ConciseUnsafe }
func (c ConciseOutcome) IsIllDefined() bool   { return c.kind == ConciseIllDefined }
func (c ConciseOutcome) IsError() bool        { return c.kind == ConciseError }
func (c ConciseOutcome) IsAssertFailed() bool { return c.kind == ConciseAssertFailed }
func (c ConciseOutcome) IsUnknown() bool      { return c.kind == ConciseUnknown }

func (c ConciseOutcome) String() string {
	switch c.kind {
	case ConciseSuccess:
		return "success"
	case ConciseUnsafe:
		return "unsafe"
	case ConciseIllDefined:
		return "ill-defined"
	case ConciseError:
		if c.errText != nil {
			return fmt.Sprintf("error[%s]", *c.errText)
		}
		return "error"
	case ConciseAssertFailed:
		return "assert failed"
	default:
		return "<unknown>"
	}
}

// ToExitCode follows the fixed, bit-stable table from spec §6: Safe=0,
// Unsafe=10, IllDefined=20, AssertFailed=25, Error=2, Unknown=-1.
func (c ConciseOutcome) ToExitCode() int {
	switch c.kind {
	case ConciseSuccess:
		return 0
	case ConciseUnsafe:
		return 10
	case ConciseIllDefined:
		return 20
	case ConciseError:
		return 2
	case ConciseAssertFailed:
		return 25
	default:
		return -1
	}
}

// FromExitCode inverts ToExitCode, mainly for tests comparing against a
// fixture's expected exit code.
func FromExitCode(code int) (ConciseOutcome, error) {
	switch code {
	case 0:
		return concise(ConciseSuccess), nil
	case 10:
		return concise(ConciseUnsafe), nil
	case 20:
		return concise(ConciseIllDefined), nil
	case 2:
		return concise(ConciseError), nil
	case 25:
		return concise(ConciseAssertFailed), nil
	case -1:
		return concise(ConciseUnknown), nil
	default:
		return ConciseOutcome{}, fmt.Errorf("exit code %d does not exist and has no semantics", code)
	}
}

// Expecting fails if c and reference differ, naming the mismatch.
func (c ConciseOutcome) Expecting(reference ConciseOutcome) error {
	if c.kind == reference.kind {
		return nil
	}
	return fmt.Errorf("expected %q outcome, got %q", reference, c)
}

// ToConcise produces the final one-word verdict for a full Outcome,
// preferring the runtime's own conclusion (Run) and falling back to the
// process exit code's classification when the runtime never produced one
// (e.g. the process died before the runtime state machine even started).
func (o Outcome) ToConcise() ConciseOutcome {
	if o.Run != nil {
		if o.Run.IsSuccess() {
			return concise(ConciseSuccess)
		}
		failure, _ := o.Run.AsFailure()
		switch failure.kind {
		case failedUnsafe, failedDeadlock:
			return concise(ConciseUnsafe)
		case failedParseError:
			return concise(ConciseIllDefined)
		case failedAssertFailed:
			return concise(ConciseAssertFailed)
		case failedPlain:
			msg := failure.msg
			return conciseError(&msg)
		}
	}

	switch {
	case o.Process.Status == tlccode.ExitSuccess:
		return concise(ConciseSuccess)
	case o.Process.Status.IsViolation():
		return concise(ConciseUnsafe)
	case o.Process.Status.IsFailure():
		return concise(ConciseIllDefined)
	case o.Process.Status.IsErrorKind(), o.Process.Status == tlccode.ExitPlainError:
		return concise(ConciseError)
	default:
		return concise(ConciseUnknown)
	}
}
