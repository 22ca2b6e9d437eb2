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

	"github.com/ocamlpro/matla/tlccode"
	"github.com/ocamlpro/matla/tlcmsg"
	"github.com/ocamlpro/matla/tlcparse"
	"github.com/ocamlpro/matla/tlcproc"
	"github.com/ocamlpro/matla/value"
)

// Analysis is TLC's main model-checking phase: it watches progress stats
// go by and, when TLC announces a safety or liveness violation, hands off
// to Trace to collect the counter-example before coming back. safe tracks
// whether a violation was ever seen, even after TLC keeps running past it
// (e.g. under a "continue" flag). Grounded on runtime/analysis.rs.
type Analysis struct {
	safe bool
}

func newAnalysis() *Analysis { return &Analysis{safe: true} }

func (*Analysis) Desc() string { return "analysis" }

func (a *Analysis) HandleMsg(ctx Ctx, msg *tlcmsg.Msg, code tlccode.Code) (Control, error) {
	switch code.Int() {
	case tlccode.StatusTlcSuccess.Int():
		ctx.report(tlcproc.LogTrace, msg)
		return Replace(newSuccess(a.safe)), nil

	case tlccode.StatsTlcProgressStats.Int(),
		tlccode.StatsTlcStats.Int(),
		tlccode.NormalTlcCheckingTemporalProps.Int(),
		tlccode.NormalTlcCheckingTemporalPropsEnd.Int():
		ctx.report(tlcproc.LogDebug, msg)
		return Keep(a), nil

	case tlccode.UnsafeInvariantViolatedBehavior.Int():
		ctx.report(tlcproc.LogDebug, msg)
		lines := msg.Lines()
		if len(lines) == 0 {
			return Control{}, fmt.Errorf("invariant-violated message carries no text")
		}
		invariant, err := tlcparse.ParseInvariantViolatedBehavior(lines[0])
		if err != nil {
			return Control{}, fmt.Errorf("parsing invariant-violated message: %w", err)
		}
		cex := value.NewCex()
		if err := cex.SetFalsified(invariant); err != nil {
			return Control{}, err
		}
		return KeepAnd(a, newTrace(cex)), nil

	case tlccode.UnsafeTemporalPropertyViolated.Int():
		ctx.report(tlcproc.LogDebug, msg)
		return KeepAnd(a, newTrace(value.NewCex())), nil

	case tlccode.UnsafeDeadlockReached.Int():
		// Unlike the invariant/property violations above, TlcDeadlockReached
		// is not wrapped by Dispatch's default error handling (it sits under
		// the Msg branch of the code tree, not Err), so Analysis routes it
		// into an Error mode itself.
		ctx.report(tlcproc.LogDebug, msg)
		return KeepAnd(a, newErrorMode(msg, false)), nil

	default:
		return Ignored(a), nil
	}
}

func (a *Analysis) Integrate(ctx Ctx, o ModeOutcome) (Control, error) {
	switch {
	case o.kind == outcomeUnknown:
		return Keep(a), nil

	default:
		if safe, ok := o.AsSuccess(); ok {
			if !safe {
				a.safe = false
			}
			return Keep(a), nil
		}
		if cex, ok := o.AsCex(); ok {
			ctx.Out.HandleCex(cex)
			return Replace(newSuccess(false)), nil
		}
		if _, reported, ok := o.AsProblem(); ok {
			if reported {
				return Keep(a), nil
			}
			return Control{}, fmt.Errorf("analysis mode received an unreported problem outcome")
		}
		return Control{}, fmt.Errorf("analysis mode received an unexpected %s outcome", o.Desc())
	}
}
