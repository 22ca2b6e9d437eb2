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

// WarmUp is the runtime's initial mode, waiting for TLC to hand control
// over to its spec parser (SANY). Grounded on runtime/warmup.rs.
type WarmUp struct{}

func NewWarmUp() *WarmUp { return &WarmUp{} }

func (*WarmUp) Desc() string { return "warmup" }

func (w *WarmUp) HandleMsg(ctx Ctx, msg *tlcmsg.Msg, code tlccode.Code) (Control, error) {
	switch code.Int() {
	case tlccode.StatusTlcSanyStart.Int():
		ctx.report(tlcproc.LogDebug, msg)
		return Replace(newParsing()), nil
	case tlccode.NormalTlcVersion.Int(), tlccode.NormalTlcModeMc.Int():
		ctx.report(tlcproc.LogTrace, msg)
		return Keep(w), nil
	default:
		return Ignored(w), nil
	}
}
