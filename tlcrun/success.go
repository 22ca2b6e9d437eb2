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
	"github.com/ocamlpro/matla/tlccode"
	"github.com/ocamlpro/matla/tlcmsg"
	"github.com/ocamlpro/matla/tlcproc"
)

// Success is the terminal mode for a run that hasn't hit a problem: it
// just waits for TLC to announce it's done. safe is false if some nested
// mode already found (and reported) a counter-example but the run
// continued regardless (e.g. "continue after violation" runs). Grounded
// on runtime/success.rs.
type Success struct {
	safe bool
}

func newSuccess(safe bool) *Success { return &Success{safe: safe} }

func (*Success) Desc() string { return "success" }

func (s *Success) HandleMsg(ctx Ctx, msg *tlcmsg.Msg, code tlccode.Code) (Control, error) {
	switch code.Int() {
	case tlccode.StatusTlcFinished.Int():
		ctx.report(tlcproc.LogDebug, msg)
		return Finalize(NewSuccessOutcome(s.safe)), nil
	case tlccode.StatsTlcProgressStats.Int(),
		tlccode.StatsTlcStats.Int(),
		tlccode.StatsTlcSearchDepth.Int(),
		tlccode.StatsTlcStateGraphOutdegree.Int():
		ctx.report(tlcproc.LogDebug, msg)
		return Keep(s), nil
	default:
		return Ignored(s), nil
	}
}
