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

	"github.com/ocamlpro/matla/diag"
	"github.com/ocamlpro/matla/outcome"
	"github.com/ocamlpro/matla/tlccode"
	"github.com/ocamlpro/matla/tlcmsg"
	"github.com/ocamlpro/matla/tlcproc"
)

// Error accumulates every error-coded message TLC prints around a single
// failure, picking up whatever counter-example trace runs alongside it,
// until TLC announces it's finished and the whole thing can be turned
// into one diag.TlcError. Grounded on runtime/error.rs.
type Error struct {
	msgs     []*tlcmsg.Msg
	built    diag.TlcError
	trace    *diag.CexRenderer
	reported bool
}

func newErrorMode(msg *tlcmsg.Msg, reported bool) *Error {
	return &Error{msgs: []*tlcmsg.Msg{msg}, reported: reported}
}

// newErrorModeFromDiag opens an Error mode around a diagnostic some earlier
// mode already built and (if reported) already handed to the sink, so
// intoError doesn't have to re-derive it from the raw coded message.
func newErrorModeFromDiag(built diag.TlcError, reported bool) *Error {
	return &Error{built: built, reported: reported}
}

func (*Error) Desc() string { return "error" }

func (e *Error) HandleError(ctx Ctx, msg *tlcmsg.Msg, reported bool) (Control, error) {
	e.msgs = append(e.msgs, msg)
	return Keep(e), nil
}

func (e *Error) HandleMsg(ctx Ctx, msg *tlcmsg.Msg, code tlccode.Code) (Control, error) {
	switch code.Int() {
	case tlccode.StatsTlcProgressStats.Int(), tlccode.StatsTlcStats.Int(),
		tlccode.StatusTlcBehaviorUpToThisPoint.Int():
		ctx.report(tlcproc.LogTrace, msg)
		return KeepAnd(e, newTraceEmpty()), nil

	case tlccode.StatusTlcFinished.Int():
		ctx.report(tlcproc.LogDebug, msg)
		tlcErr := e.intoError()
		failed, ok := tlcErr.ToOutcome()
		if !ok {
			failed = outcome.Plain("fatal error")
		}
		if !e.reported {
			if err := ctx.Out.HandleError(tlcErr); err != nil {
				return Control{}, err
			}
		}
		return Finalize(NewProblemOutcome(failed, true)), nil

	default:
		return Ignored(e), nil
	}
}

func (e *Error) Integrate(ctx Ctx, o ModeOutcome) (Control, error) {
	switch {
	case o.kind == outcomeUnknown:
		return Keep(e), nil
	default:
		if _, ok := o.AsSuccess(); ok {
			return Keep(e), nil
		}
		if cex, ok := o.AsCex(); ok {
			if e.trace != nil {
				return Control{}, fmt.Errorf("error mode already has a counter-example, got a second one")
			}
			e.trace = diag.NewCexRenderer(cex)
			return Keep(e), nil
		}
		return Control{}, fmt.Errorf("error mode received an unexpected %s outcome", o.Desc())
	}
}

// intoError turns the accumulated messages into one diag.TlcError. If an
// earlier mode already built (and possibly reported) the diagnostic for
// the first message, that one is reused verbatim instead of re-deriving it
// from the raw coded message; otherwise the first message's code drives
// the classification. Any further messages are folded in as a list, and a
// counter-example picked up along the way (if any) is attached when the
// leading result is a RunError.
func (e *Error) intoError() diag.TlcError {
	rest := e.msgs
	first := e.built
	if first == nil {
		if len(rest) == 0 {
			return &diag.SemanticError{Module: topModule, Message: "TLC reported an error but printed no detail"}
		}
		first = classifyErrorMsg(rest[0])
		rest = rest[1:]
	}
	if run, ok := first.(*diag.RunError); ok && e.trace != nil {
		run.Behavior = e.trace
	}
	if len(rest) == 0 {
		return first
	}

	errs := []diag.TlcError{first}
	for _, msg := range rest {
		errs = append(errs, classifyErrorMsg(msg))
	}
	return &diag.List{Errs: errs}
}
