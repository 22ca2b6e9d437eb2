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
	"time"

	"github.com/ocamlpro/matla/outcome"
	"github.com/ocamlpro/matla/tlcmsg"
)

// frame is one entry of the runtime's mode stack, with the time it was
// pushed so a caller can report how long a phase took. Grounded on
// runtime.rs's Frame.
type frame struct {
	mode  Mode
	start time.Time
}

// Runtime drives the mode stack across a TLC run's stream of framed
// messages, tracking the run's outcome as it goes. Grounded on
// runtime.rs's Runtime.
type Runtime struct {
	ctx      Ctx
	stack    []frame
	stackMem []frame
	outcome  outcome.RunOutcome
}

// NewRuntime builds a Runtime in its initial state: a single WarmUp frame
// on the stack, outcome defaulting to Success.
func NewRuntime(ctx Ctx) *Runtime {
	r := &Runtime{ctx: ctx, outcome: outcome.Success()}
	r.push(NewWarmUp())
	return r
}

// Outcome returns the run outcome accumulated so far.
func (r *Runtime) Outcome() outcome.RunOutcome { return r.outcome }

// PendingErrors returns every Error frame still on the stack, bottom to
// top. An Error frame is still there when TLC's output ended before it saw
// StatusTlcFinished; one that saw it has already finalized and been
// popped. Grounded on runtime.rs's Runtime::tlc_error_fold.
func (r *Runtime) PendingErrors() []*Error {
	var errs []*Error
	for _, f := range r.stack {
		if e, ok := f.mode.(*Error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}

// Finish is called once TLC's output has ended, whether or not Handle
// ever returned a terminal outcome on its own. A failed run usually ends
// with Analysis still on the stack: the Error frame finalizes on
// StatusTlcFinished with an already-reported Problem outcome and Analysis
// keeps itself after integrating it, so Handle never returns a final
// outcome. Finish folds over any Error frame still on the stack (see
// PendingErrors), reports any error that never made it to the sink, and
// forces the outcome to a plain failure if errors were found but the
// outcome is still Success. Grounded on tlc.rs's Runner::run post-loop
// cleanup.
func (r *Runtime) Finish(ctx Ctx) (outcome.RunOutcome, error) {
	count := 0
	for _, e := range r.PendingErrors() {
		tlcErr := e.intoError()
		if !e.reported {
			if err := ctx.Out.HandleError(tlcErr); err != nil {
				return outcome.RunOutcome{}, err
			}
		}
		count++
	}
	if count > 0 && r.outcome.IsSuccess() {
		r.outcome = outcome.Failure(outcome.Plain(fmt.Sprintf("%d error(s) occurred", count)))
	}
	return r.outcome, nil
}

func (r *Runtime) push(m Mode) {
	r.stack = append(r.stack, frame{mode: m, start: time.Now()})
}

func (r *Runtime) pop() (frame, bool) {
	if len(r.stack) == 0 {
		return frame{}, false
	}
	last := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return last, true
}

// stackDesc renders the current stack bottom-up, for diagnostics.
func (r *Runtime) stackDesc() string {
	descs := make([]string, len(r.stack))
	for i, f := range r.stack {
		descs[i] = f.mode.Desc()
	}
	return strings.Join(descs, ", ")
}

// applyStackMem restores any frames stashed by an Ignored control back
// onto the stack, in their original bottom-to-top order.
func (r *Runtime) applyStackMem() {
	for i := len(r.stackMem) - 1; i >= 0; i-- {
		r.stack = append(r.stack, r.stackMem[i])
	}
	r.stackMem = nil
}

// runOutcomeOf folds a finalized ModeOutcome into a run-level outcome, if
// it represents one (Success or Problem); a Cex or Unknown outcome is not
// itself a run conclusion — it's meant for the mode below to Integrate. A
// Success outcome that came out unsafe (a violation was found but the run
// kept going, e.g. under "continue after violation") still counts as a
// failed run, even though nothing here reports it again.
func runOutcomeOf(o ModeOutcome) (outcome.RunOutcome, bool) {
	if safe, ok := o.AsSuccess(); ok {
		if !safe {
			return outcome.Failure(outcome.Unsafe()), true
		}
		return outcome.Success(), true
	}
	if failed, _, ok := o.AsProblem(); ok {
		return outcome.Failure(failed), true
	}
	return outcome.RunOutcome{}, false
}

// Handle feeds one framed message into the runtime, returning the run's
// final outcome once the mode stack has been fully unwound (i.e. the run
// is over), or nil while it's still in progress. Grounded on runtime.rs's
// Runtime::handle/inner_handle.
func (r *Runtime) Handle(msg *tlcmsg.Msg) (*outcome.RunOutcome, error) {
	result, err := r.innerHandle(msg)
	r.applyStackMem()
	return result, err
}

func (r *Runtime) innerHandle(msg *tlcmsg.Msg) (*outcome.RunOutcome, error) {
	f, ok := r.pop()
	if !ok {
		return nil, fmt.Errorf("tlcrun: runtime stack is empty")
	}

	ctrl, err := Dispatch(r.ctx, f.mode, msg)
	if err != nil {
		return nil, err
	}

	for {
		switch ctrl.kind {
		case ctrlKeep:
			r.push(ctrl.first)
			if ctrl.second != nil {
				r.push(ctrl.second)
			}
			return nil, nil

		case ctrlReplace:
			r.push(ctrl.first)
			return nil, nil

		case ctrlIgnored:
			r.stackMem = append(r.stackMem, frame{mode: ctrl.first, start: f.start})
			next, ok := r.pop()
			if !ok {
				reportUnexpected(r.ctx, r.stackDesc(), msg)
				return nil, nil
			}
			f = next
			ctrl, err = Dispatch(r.ctx, f.mode, msg)
			if err != nil {
				return nil, err
			}

		case ctrlFinalize:
			o := ctrl.outcome
			if run, ok := runOutcomeOf(o); ok {
				r.outcome.Update(run)
			}
			below, ok := r.pop()
			if !ok {
				return &r.outcome, nil
			}
			f = below
			ctrl, err = IntegrateDefault(r.ctx, f.mode, o)
			if err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("tlcrun: unreachable control kind %d", ctrl.kind)
		}
	}
}
