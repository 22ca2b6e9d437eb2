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

// InitialStates waits for TLC to report it finished computing the initial
// states, then hands off to Analysis. Grounded on runtime/initial_states.rs.
type InitialStates struct{}

func newInitialStates() *InitialStates { return &InitialStates{} }

func (*InitialStates) Desc() string { return "initial states" }

func (i *InitialStates) HandleMsg(ctx Ctx, msg *tlcmsg.Msg, code tlccode.Code) (Control, error) {
	switch code.Int() {
	case tlccode.StatusTlcInitGenerated1.Int(),
		tlccode.StatusTlcInitGenerated2.Int(),
		tlccode.StatusTlcInitGenerated3.Int(),
		tlccode.StatusTlcInitGenerated4.Int():
		ctx.report(tlcproc.LogTrace, msg)
		return Replace(newAnalysis()), nil
	case tlccode.NormalTlcComputingInitProgress.Int(), tlccode.LiveTlcLiveImplied.Int():
		ctx.report(tlcproc.LogTrace, msg)
		return Keep(i), nil
	default:
		return Ignored(i), nil
	}
}
