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

	"github.com/ocamlpro/matla/tlcmsg"
)

func feedAll(t *testing.T, f *tlcmsg.Framer, lines ...string) []*tlcmsg.Msg {
	t.Helper()
	var out []*tlcmsg.Msg
	for _, l := range lines {
		msg, err := f.Feed(tlcmsg.Line{Text: l})
		require.NoError(t, err)
		if msg != nil {
			out = append(out, msg)
		}
	}
	return out
}

func TestFramerCodelessLine(t *testing.T) {
	f := tlcmsg.NewFramer()
	msgs := feedAll(t, f, "hello there")
	require.Len(t, msgs, 1)
	require.True(t, msgs[0].IsPrint())
	require.Equal(t, []string{"hello there"}, msgs[0].Lines())
}

func TestFramerSimpleFramedMessage(t *testing.T) {
	f := tlcmsg.NewFramer()
	msgs := feedAll(t, f,
		"@!@!@STARTMSG 1000:1 @!@!@",
		"some content",
		"@!@!@ENDMSG 1000 @!@!@",
	)
	require.Len(t, msgs, 1)
	require.False(t, msgs[0].IsPrint())
	require.Equal(t, []string{"some content"}, msgs[0].Lines())
}

func TestFramerNestedMessage(t *testing.T) {
	f := tlcmsg.NewFramer()
	msgs := feedAll(t, f,
		"@!@!@STARTMSG 1000:1 @!@!@",
		"outer line",
		"@!@!@STARTMSG 3000:2 @!@!@",
		"inner line",
		"@!@!@ENDMSG 3000 @!@!@",
		"@!@!@ENDMSG 1000 @!@!@",
	)
	require.Len(t, msgs, 1)
	outer := msgs[0]
	require.True(t, outer.HasSubMsgs())
	require.Equal(t, []string{"outer line", "inner line"}, outer.Lines())
	require.True(t, outer.HasErr())
}

func TestFramerBlankLinesDiscardedInsideBuilder(t *testing.T) {
	f := tlcmsg.NewFramer()
	msgs := feedAll(t, f,
		"@!@!@STARTMSG 1000:1 @!@!@",
		"   ",
		"content",
		"@!@!@ENDMSG 1000 @!@!@",
	)
	require.Len(t, msgs, 1)
	require.Equal(t, []string{"content"}, msgs[0].Lines())
}

func TestFramerMismatchedEndIsError(t *testing.T) {
	f := tlcmsg.NewFramer()
	_, err := f.Feed(tlcmsg.Line{Text: "@!@!@STARTMSG 1000:1 @!@!@"})
	require.NoError(t, err)
	_, err = f.Feed(tlcmsg.Line{Text: "@!@!@ENDMSG 3000 @!@!@"})
	require.Error(t, err)
}

func TestFramerEndWithNothingBuildingIsError(t *testing.T) {
	f := tlcmsg.NewFramer()
	_, err := f.Feed(tlcmsg.Line{Text: "@!@!@ENDMSG 1000 @!@!@"})
	require.Error(t, err)
}

func TestFramerNoJavaRuntimeSpecialCase(t *testing.T) {
	f := tlcmsg.NewFramer()
	msgs := feedAll(t, f,
		"Unable to locate a Java Runtime.",
		"See our troubleshooting guide on installing Java",
	)
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].Code)
}

func TestFramerStreamsIndependent(t *testing.T) {
	f := tlcmsg.NewFramer()
	_, err := f.Feed(tlcmsg.Line{Text: "@!@!@STARTMSG 1000:1 @!@!@", FromStderr: false})
	require.NoError(t, err)
	require.True(t, f.IsBuilding(false))
	require.False(t, f.IsBuilding(true))
}
