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
	"context"
	"fmt"
	"log/slog"

	"github.com/ocamlpro/matla/tlccode"
	"github.com/ocamlpro/matla/tlcmsg"
	"github.com/ocamlpro/matla/tlcproc"
)

// Ctx bundles the collaborators every Mode needs to react to a message:
// the sink observations and errors ultimately go to, and a logger for the
// mode-stack's own internal diagnostics (distinct from what gets reported
// to the sink). Grounded on runtime.rs's Runtime carrying an
// `out: &mut dyn Out` across every handle call, plus the `log` crate calls
// scattered through every mode's handle_msg.
type Ctx struct {
	Out tlcproc.Sink
	Log *slog.Logger
}

// report hands msg to the sink at the given level — the Go equivalent of
// the original's pervasive `out.handle_message(msg, log::Level::X)` calls.
func (c Ctx) report(level tlcproc.LogLevel, msg *tlcmsg.Msg) {
	c.Out.HandleMessage(msg.String(), level)
}

// trace is the mode-stack's own internal logging, separate from what gets
// reported to the sink (e.g. a message no mode on the stack could make
// sense of).
func (c Ctx) trace(level slog.Level, text string, args ...any) {
	if c.Log == nil {
		return
	}
	c.Log.Log(context.Background(), level, fmt.Sprintf(text, args...))
}

// Mode is one frame of the runtime stack: a phase of a TLC run reacting to
// incoming messages. Grounded on runtime.rs's IsMode trait; Go has no
// trait-default mechanism, so the shared default dispatch lives in
// Dispatch/Integrate and concrete modes opt into overriding it by
// implementing the optional plainHandler/errorHandler/integrator
// interfaces below.
type Mode interface {
	// Desc names the mode for diagnostics ("parsing", "analysis", ...).
	Desc() string
	// HandleMsg reacts to a coded, non-error message.
	HandleMsg(ctx Ctx, msg *tlcmsg.Msg, code tlccode.Code) (Control, error)
}

// plainHandler lets a mode override how it reacts to a codeless
// ("plain") message. The default (Dispatch) logs it at Info and keeps the
// mode unchanged.
type plainHandler interface {
	HandlePlain(ctx Ctx, msg *tlcmsg.Msg) (Control, error)
}

// errorHandler lets a mode override how it reacts to an error-coded
// message. The default (Dispatch) wraps it into a fresh Error mode kept
// on top of the current one.
type errorHandler interface {
	HandleError(ctx Ctx, msg *tlcmsg.Msg, reported bool) (Control, error)
}

// integrator lets a mode override how it absorbs the outcome of a mode
// that finalized above it. The default (Integrate) treats anything other
// than Unknown as unexpected and finalizes with an annotated outcome.
type integrator interface {
	Integrate(ctx Ctx, o ModeOutcome) (Control, error)
}

// Dispatch is the shared entry point runtime.rs's IsMode::handle provides:
// route a message to HandleMsg, or to the mode's plain/error overrides (or
// their defaults) depending on what kind of message it is.
func Dispatch(ctx Ctx, m Mode, msg *tlcmsg.Msg) (Control, error) {
	if msg.Code == nil {
		if ph, ok := m.(plainHandler); ok {
			return ph.HandlePlain(ctx, msg)
		}
		ctx.report(tlcproc.LogInfo, msg)
		return Keep(m), nil
	}

	entry, known := tlccode.Lookup(msg.Code.Int())
	if !known {
		return Control{}, fmt.Errorf("tlcrun: unrecognized TLC message code %d", msg.Code.Int())
	}
	if entry.IsErr() {
		if eh, ok := m.(errorHandler); ok {
			return eh.HandleError(ctx, msg, false)
		}
		return KeepAnd(m, newErrorMode(msg, false)), nil
	}
	return m.HandleMsg(ctx, msg, *msg.Code)
}

// IntegrateDefault applies runtime.rs's IsMode::integrate default: any
// outcome other than Unknown is unexpected for a mode that doesn't care
// to override it, and gets annotated and bubbled further up.
func IntegrateDefault(ctx Ctx, m Mode, o ModeOutcome) (Control, error) {
	if m2, ok := m.(integrator); ok {
		return m2.Integrate(ctx, o)
	}
	if o.kind == outcomeUnknown {
		return Keep(m), nil
	}
	o.Push(fmt.Sprintf("was not expecting a %s outcome while in %s mode", o.Desc(), m.Desc()))
	return Finalize(o), nil
}

// reportUnexpected logs a message no mode on the stack could make sense
// of, even after being Ignored all the way down. This is not a fatal
// error: TLC prints plenty of messages no mode cares about, so the
// message is simply dropped. Grounded on runtime/utils.rs's
// report_unexpected.
func reportUnexpected(ctx Ctx, stackDesc string, msg *tlcmsg.Msg) {
	ctx.trace(slog.LevelWarn, "unexpected message while in [%s]: %s", stackDesc, msg.String())
}
