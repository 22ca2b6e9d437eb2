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

package tlcmsg

import (
	"fmt"
	"strings"

	"github.com/ocamlpro/matla/tlccode"
)

// Line is one line read off a TLC child process, tagged with the stream it
// came from.
type Line struct {
	Text       string
	FromStderr bool
}

type builder struct {
	code tlccode.Code
	elms Elms
}

// Framer reassembles STARTMSG/ENDMSG-framed lines into [Msg] values.
//
// It keeps one stack of in-progress builders per stream, since stdout and
// stderr can each be mid-message independently and TLC messages can nest.
type Framer struct {
	stdout []builder
	stderr []builder
}

// NewFramer returns a Framer with no messages in progress.
func NewFramer() *Framer {
	return &Framer{}
}

func (f *Framer) stack(fromStderr bool) *[]builder {
	if fromStderr {
		return &f.stderr
	}
	return &f.stdout
}

// IsBuilding reports whether a message is currently under construction on
// the given stream.
func (f *Framer) IsBuilding(fromStderr bool) bool {
	return len(*f.stack(fromStderr)) > 0
}

// Feed processes one line. It returns a completed Msg when the line finishes
// one (either a framed message whose stack emptied, or a codeless single
// line with nothing under construction); otherwise it returns nil, nil.
func (f *Framer) Feed(line Line) (*Msg, error) {
	if code, _, ok, err := tlccode.ParseStart(line.Text); err != nil {
		return nil, err
	} else if ok {
		f.pushBuilder(code, line.FromStderr)
		return nil, nil
	}

	if code, ok, err := tlccode.ParseEnd(line.Text); err != nil {
		return nil, err
	} else if ok {
		return f.popBuilder(code, line.FromStderr)
	}

	text := strings.TrimSpace(line.Text)
	if text == "" {
		return nil, nil
	}
	if f.IsBuilding(line.FromStderr) {
		f.pushLine(text, line.FromStderr)
		return nil, nil
	}
	msg := NewMsg(nil, NewElms(lineElm(text)), line.FromStderr)
	return &msg, nil
}

func (f *Framer) pushBuilder(code tlccode.Code, fromStderr bool) {
	stack := f.stack(fromStderr)
	*stack = append(*stack, builder{code: code})
}

func (f *Framer) popBuilder(code tlccode.Code, fromStderr bool) (*Msg, error) {
	stack := f.stack(fromStderr)
	source := "stdout"
	if fromStderr {
		source = "stderr"
	}

	if len(*stack) == 0 {
		return nil, fmt.Errorf("trying to end message from %s, but no message is under construction", source)
	}
	top := (*stack)[len(*stack)-1]
	if top.code.Int() != code.Int() {
		return nil, fmt.Errorf(
			"trying to end %s message from %s, but message under construction is %s",
			code, source, top.code,
		)
	}
	*stack = (*stack)[:len(*stack)-1]

	msg := NewMsg(&top.code, top.elms, fromStderr)
	if len(*stack) == 0 {
		return &msg, nil
	}
	parent := &(*stack)[len(*stack)-1]
	parent.elms.push(subElm(&msg))
	return nil, nil
}

func (f *Framer) pushLine(text string, fromStderr bool) {
	stack := f.stack(fromStderr)
	top := &(*stack)[len(*stack)-1]
	top.elms.push(lineElm(text))
}
