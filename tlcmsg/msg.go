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

// Package tlcmsg frames the raw lines TLC prints into nested [Msg] values.
//
// TLC wraps most of what it prints between `@!@!@STARTMSG`/`@!@!@ENDMSG`
// sentinels (see tlccode.ParseStart/ParseEnd); this package turns a stream of
// such lines, tagged by origin (stdout or stderr), into the tree of messages
// those sentinels describe. Messages can nest — a coded message's body can
// itself contain other coded messages — so the reconstruction keeps one
// builder stack per stream.
package tlcmsg

import (
	"fmt"
	"strings"

	"github.com/ocamlpro/matla/tlccode"
)

// Elm is one element of a message's body: either a line of plain text or a
// nested sub-message.
type Elm struct {
	Line *string
	Sub  *Msg
}

func lineElm(line string) Elm { return Elm{Line: &line} }
func subElm(msg *Msg) Elm     { return Elm{Sub: msg} }

// IsLine is true if this element is a plain text line rather than a
// sub-message.
func (e Elm) IsLine() bool { return e.Line != nil }

// Elms is the body of a [Msg]: a list of plain-text lines and sub-messages,
// in the order TLC printed them.
type Elms struct {
	elms []Elm
}

// NewElms builds an Elms from already-constructed elements. Mostly useful in
// tests.
func NewElms(elms ...Elm) Elms { return Elms{elms: append([]Elm(nil), elms...)} }

// Len returns the number of elements.
func (e *Elms) Len() int { return len(e.elms) }

// Elm returns the element at i.
func (e *Elms) Elm(i int) Elm { return e.elms[i] }

func (e *Elms) push(elm Elm) { e.elms = append(e.elms, elm) }

func (e *Elms) pop() (Elm, bool) {
	if len(e.elms) == 0 {
		return Elm{}, false
	}
	last := e.elms[len(e.elms)-1]
	e.elms = e.elms[:len(e.elms)-1]
	return last, true
}

// PlainStrings unpacks an Elms that must contain exactly n plain-text lines
// and no sub-messages, returning them in order. This stands in for the
// original's `get_1_plain_str`..`get_4_plain_str` family: Go has no macros to
// generate one function per arity, so a single helper takes the arity as an
// argument instead.
func (e *Elms) PlainStrings(n int) ([]string, error) {
	out := make([]string, 0, n)
	for _, elm := range e.elms {
		if elm.Sub != nil {
			desc := "plain text"
			if elm.Sub.Code != nil {
				if entry, ok := tlccode.Lookup(elm.Sub.Code.Int()); ok {
					desc = entry.Desc
				}
			}
			return nil, fmt.Errorf("unexpected sub-message %q", desc)
		}
		out = append(out, *elm.Line)
	}
	if len(out) != n {
		return nil, fmt.Errorf("expected %d plain text elements, got %d", n, len(out))
	}
	return out, nil
}

// startsWithRm removes the given lines from the front of the element list if
// they match exactly, reporting whether anything was removed.
func (e *Elms) startsWithRm(lines []string) bool {
	for idx, line := range lines {
		if idx >= len(e.elms) {
			return false
		}
		elm := e.elms[idx]
		if elm.Sub != nil || *elm.Line != line {
			return false
		}
	}
	e.elms = append([]Elm(nil), e.elms[len(lines):]...)
	return true
}

// Msg is a qualified message read off a TLC child process.
//
// Code is nil for a bare print: TLC only frames a message with a code when
// it feels like it, and a codeless Msg is how a line with no sentinels
// around it is represented.
type Msg struct {
	Code       *tlccode.Code
	Subs       Elms
	FromStderr bool
}

// obfuscatedRuntimeExceptionPreamble is the fixed text TLC prints ahead of an
// otherwise-uninformative general message wrapping a real error; recognizing
// it lets simplifyTryFlatten discard the noise and surface the real message.
var obfuscatedRuntimeExceptionPreamble = []string{
	"TLC threw an unexpected exception.",
	"This was probably caused by an error in the spec or model.",
	"See the User Output or TLC Console for clues to what happened.",
	"The exception was a java.lang.RuntimeException",
}

// NewMsg builds a Msg, collapsing the one case TLC's own obfuscation
// warrants: a general message whose sole content is a single sub-message.
func NewMsg(code *tlccode.Code, subs Elms, fromStderr bool) Msg {
	if code != nil && tlccode.IsGeneralMsg(code.Int()) && subs.Len() == 1 && !subs.Elm(0).IsLine() {
		last, _ := subs.pop()
		return *last.Sub
	}
	msg := Msg{Code: code, Subs: subs, FromStderr: fromStderr}
	return msg.simplifyTryFlatten()
}

// tryFlatten returns the sole sub-message if subs holds exactly one, and
// that one is itself a sub-message (not a plain line).
func (m Msg) tryFlatten() Msg {
	if m.Subs.Len() != 1 {
		return m
	}
	elm := m.Subs.Elm(0)
	if elm.Sub != nil {
		return *elm.Sub
	}
	return m
}

func (m Msg) simplifyTryFlatten() Msg {
	if m.Subs.startsWithRm(obfuscatedRuntimeExceptionPreamble) {
		return m.tryFlatten()
	}
	return m
}

// Lines flattens the message body into its plain-text lines, recursing into
// sub-messages depth-first.
func (m *Msg) Lines() []string {
	var out []string
	var walk func(msg *Msg)
	walk = func(msg *Msg) {
		for _, elm := range msg.Subs.elms {
			if elm.Sub != nil {
				walk(elm.Sub)
			} else {
				out = append(out, *elm.Line)
			}
		}
	}
	walk(m)
	return out
}

// LinesOfCodeless returns the message's lines, failing if it carries a code
// or has sub-messages of its own.
func (m *Msg) LinesOfCodeless() ([]string, error) {
	if m.Code != nil {
		return nil, fmt.Errorf("message is not codeless: %s", m.Code)
	}
	if m.HasSubMsgs() {
		return nil, fmt.Errorf("cannot extract lines of message with sub-messages")
	}
	return m.Lines(), nil
}

// HasErr reports whether this message, or any of its sub-messages, is an
// error-coded one.
func (m *Msg) HasErr() bool {
	if m.Code != nil {
		if entry, ok := tlccode.Lookup(m.Code.Int()); ok && entry.IsErr() {
			return true
		}
	}
	for _, elm := range m.Subs.elms {
		if elm.Sub != nil && elm.Sub.HasErr() {
			return true
		}
	}
	return false
}

// HasSubMsgs reports whether the message's body contains any sub-messages.
func (m *Msg) HasSubMsgs() bool {
	for _, elm := range m.Subs.elms {
		if elm.Sub != nil {
			return true
		}
	}
	return false
}

// Source names the stream the message came off, for diagnostics.
func (m *Msg) Source() string {
	if m.FromStderr {
		return "stderr"
	}
	return "stdout"
}

// IsPrint reports whether the message is a bare, codeless print rather than
// a coded TLC message.
func (m *Msg) IsPrint() bool { return m.Code == nil }

func (m *Msg) String() string {
	var b strings.Builder
	if m.Code != nil {
		fmt.Fprintf(&b, "|===[%s] ", m.Code)
	}
	if m.FromStderr {
		b.WriteString("from stderr\n")
	} else {
		b.WriteString("from stdout\n")
	}
	for _, elm := range m.Subs.elms {
		if elm.Sub != nil {
			for _, line := range strings.Split(elm.Sub.String(), "\n") {
				fmt.Fprintf(&b, "| %s\n", line)
			}
		} else {
			fmt.Fprintf(&b, "| %s\n", strings.TrimSpace(*elm.Line))
		}
	}
	b.WriteString("|===|")
	return b.String()
}
