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

	"github.com/ocamlpro/matla/pos"
	"github.com/ocamlpro/matla/tlccode"
	"github.com/ocamlpro/matla/tlcmsg"
	"github.com/ocamlpro/matla/tlcparse"
	"github.com/ocamlpro/matla/tlcproc"
	"github.com/ocamlpro/matla/value"
)

// Trace collects the states of a counter-example TLC is printing, pushed
// on top of Analysis once a violation is announced. Grounded on
// runtime/trace.rs.
type Trace struct {
	cex *value.Cex
}

func newTrace(cex *value.Cex) *Trace { return &Trace{cex: cex} }

func newTraceEmpty() *Trace { return &Trace{cex: value.NewCex()} }

func (*Trace) Desc() string { return "trace" }

// HandleError overrides the default (which would wrap the message in a
// fresh Error mode): a Trace frame has nothing useful to say about an
// error, so it lets the mode below handle it instead.
func (t *Trace) HandleError(ctx Ctx, msg *tlcmsg.Msg, reported bool) (Control, error) {
	return Ignored(t), nil
}

func (t *Trace) HandleMsg(ctx Ctx, msg *tlcmsg.Msg, code tlccode.Code) (Control, error) {
	switch code.Int() {
	case tlccode.StatusTlcCounterExample.Int(), tlccode.StatusTlcBehaviorUpToThisPoint.Int():
		ctx.report(tlcproc.LogTrace, msg)
		return Keep(t), nil

	case tlccode.NormalTlcCheckingTemporalPropsEnd.Int(), tlccode.StatsTlcProgressStats.Int():
		// TLC prints the end-of-run stats right after the last trace state,
		// with no dedicated "counter-example done" message of its own.
		ctx.report(tlcproc.LogTrace, msg)
		return Finalize(NewCexOutcome(t.cex)), nil

	case tlccode.CexTlcStuttering.Int():
		ctx.report(tlcproc.LogTrace, msg)
		if err := t.cex.SetShape(value.Stuttering()); err != nil {
			return Control{}, err
		}
		return Keep(t), nil

	case tlccode.CexTlcBackToState.Int():
		ctx.report(tlcproc.LogTrace, msg)
		lines := msg.Lines()
		if len(lines) == 0 {
			return Control{}, fmt.Errorf("back-to-state message carries no text")
		}
		declared, err := tlcparse.ParseBackToState(lines[0])
		if err != nil {
			return Control{}, fmt.Errorf("parsing back-to-state message: %w", err)
		}
		if err := t.cex.SetShape(value.Loop(declared - 1)); err != nil {
			return Control{}, err
		}
		return Keep(t), nil

	case tlccode.CexTlcTraceState.Int():
		ctx.report(tlcproc.LogTrace, msg)
		if err := t.pushState(msg); err != nil {
			return Control{}, err
		}
		return Keep(t), nil

	default:
		return Ignored(t), nil
	}
}

// pushState parses one `<index>: <header>` state followed by its
// `/\ var = value` bindings and appends it to the trace.
func (t *Trace) pushState(msg *tlcmsg.Msg) error {
	lines := msg.Lines()
	if len(lines) == 0 {
		return fmt.Errorf("trace-state message carries no text")
	}
	declared, header, err := tlcparse.ParseStateInfo(lines[0])
	if err != nil {
		return fmt.Errorf("parsing trace-state header: %w", err)
	}
	if declared == 0 {
		return fmt.Errorf("trace states are numbered from 1, got 0")
	}

	var info *value.StateInfo
	if header != nil {
		info = &value.StateInfo{
			Action: header.Action,
			Span:   [2]pos.Pos{header.Start, header.End},
			Module: header.Module,
		}
	}
	state := value.NewState(info)
	for _, line := range lines[1:] {
		id, val, err := tlcparse.CexIdentValue(line)
		if err != nil {
			return fmt.Errorf("parsing state binding %q: %w", line, err)
		}
		if plain, ok := val.Plain(); ok {
			state.Values.Set(id, plain)
		}
	}

	return t.cex.AppendState(declared-1, state)
}
