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

package tlcmsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocamlpro/matla/tlccode"
	"github.com/ocamlpro/matla/tlcmsg"
)

func line(s string) tlcmsg.Elm { return tlcmsg.Elm{Line: &s} }

func TestElmsPlainStringsArity(t *testing.T) {
	elms := tlcmsg.NewElms(line("a"), line("b"))
	got, err := elms.PlainStrings(2)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)

	_, err = elms.PlainStrings(1)
	require.Error(t, err)
}

func TestElmsPlainStringsRejectsSubMessage(t *testing.T) {
	sub := tlcmsg.NewMsg(nil, tlcmsg.NewElms(), false)
	elms := tlcmsg.NewElms(tlcmsg.Elm{Sub: &sub})
	_, err := elms.PlainStrings(1)
	require.Error(t, err)
}

func TestMsgLinesOfCodeless(t *testing.T) {
	msg := tlcmsg.NewMsg(nil, tlcmsg.NewElms(line("hello")), false)
	lines, err := msg.LinesOfCodeless()
	require.NoError(t, err)
	require.Equal(t, []string{"hello"}, lines)
}

func TestMsgLinesOfCodelessRejectsCoded(t *testing.T) {
	code := tlccode.ErrNoJavaRuntime
	msg := tlcmsg.NewMsg(&code, tlcmsg.NewElms(), false)
	_, err := msg.LinesOfCodeless()
	require.Error(t, err)
}

func TestMsgHasErr(t *testing.T) {
	code := tlccode.ErrNoJavaRuntime
	msg := tlcmsg.NewMsg(&code, tlcmsg.NewElms(), false)
	require.True(t, msg.HasErr())
}

func TestMsgHasErrRecursesIntoSubs(t *testing.T) {
	code := tlccode.ErrNoJavaRuntime
	inner := tlcmsg.NewMsg(&code, tlcmsg.NewElms(), false)
	outer := tlcmsg.NewMsg(nil, tlcmsg.NewElms(tlcmsg.Elm{Sub: &inner}), false)
	require.True(t, outer.HasErr())
}

func TestMsgIsPrint(t *testing.T) {
	msg := tlcmsg.NewMsg(nil, tlcmsg.NewElms(), false)
	require.True(t, msg.IsPrint())
}

func TestNewMsgCollapsesSoleGeneralSub(t *testing.T) {
	code := tlccode.ErrNoJavaRuntime
	inner := tlcmsg.NewMsg(&code, tlcmsg.NewElms(line("boom")), false)
	general := tlccode.MsgGeneral
	outer := tlcmsg.NewMsg(&general, tlcmsg.NewElms(tlcmsg.Elm{Sub: &inner}), false)
	require.Equal(t, code.Int(), outer.Code.Int())
}

func TestNewMsgSimplifiesObfuscatedRuntimeException(t *testing.T) {
	code := tlccode.ErrNoJavaRuntime
	inner := tlcmsg.NewMsg(&code, tlcmsg.NewElms(line("real cause")), false)
	msg := tlcmsg.NewMsg(nil, tlcmsg.NewElms(
		line("TLC threw an unexpected exception."),
		line("This was probably caused by an error in the spec or model."),
		line("See the User Output or TLC Console for clues to what happened."),
		line("The exception was a java.lang.RuntimeException"),
		tlcmsg.Elm{Sub: &inner},
	), false)
	require.Equal(t, code.Int(), msg.Code.Int())
}
