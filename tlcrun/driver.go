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

	"github.com/ocamlpro/matla/outcome"
	"github.com/ocamlpro/matla/tlcmsg"
	"github.com/ocamlpro/matla/tlcproc"
)

// lineSource is the minimal surface Run needs off a running TLC child;
// *tlcproc.Process satisfies it.
type lineSource interface {
	Next() (tlcmsg.Line, bool)
}

// Run drains src line by line, framing and feeding every completed message
// through a fresh Runtime, and returns the run's final outcome. It does
// not launch or join the child process itself — that's the caller's job,
// using tlcproc.Start/Process.Join around this call.
func Run(ctx Ctx, src lineSource) (outcome.RunOutcome, error) {
	framer := tlcmsg.NewFramer()
	runtime := NewRuntime(ctx)

	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		msg, err := framer.Feed(line)
		if err != nil {
			return outcome.RunOutcome{}, fmt.Errorf("tlcrun: framing TLC output: %w", err)
		}
		if msg == nil {
			continue
		}
		final, err := runtime.Handle(msg)
		if err != nil {
			return outcome.RunOutcome{}, fmt.Errorf("tlcrun: %w", err)
		}
		if final != nil {
			return *final, nil
		}
	}

	// TLC's output ended without the mode stack ever unwinding all the way
	// (the common case for a failed run: an Error frame settles rather than
	// finalizing past Analysis). Fold over whatever is left instead of
	// treating this as abnormal.
	final, err := runtime.Finish(ctx)
	if err != nil {
		return outcome.RunOutcome{}, fmt.Errorf("tlcrun: %w", err)
	}
	return final, nil
}

var _ lineSource = (*tlcproc.Process)(nil)
