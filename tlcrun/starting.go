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

// Starting waits for TLC to announce it's computing the initial states.
// Grounded on runtime/starting.rs.
type Starting struct{}

func newStarting() *Starting { return &Starting{} }

func (*Starting) Desc() string { return "starting" }

func (s *Starting) HandleMsg(ctx Ctx, msg *tlcmsg.Msg, code tlccode.Code) (Control, error) {
	switch code.Int() {
	case tlccode.StatusTlcComputingInit.Int():
		ctx.report(tlcproc.LogDebug, msg)
		return Replace(newInitialStates()), nil
	case tlccode.LiveTlcLiveImplied.Int():
		ctx.report(tlcproc.LogDebug, msg)
		return Keep(s), nil
	default:
		return Ignored(s), nil
	}
}
