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

// Package diag implements the TlcError taxonomy (spec §7) and the
// diagnostic renderer (spec §4.6): given a TlcError and a module resolver,
// it produces the ordered, captioned excerpt lines a caller prints.
//
// Adapted from reporter.ErrorWithPos/reporter.Handler, swapping the
// protobuf ast.SourcePos for pos.Pos and the single abort-on-first-error
// semantics for the "reported" per-error dedup flag spec §7 calls for.
package diag

import (
	"fmt"

	"github.com/ocamlpro/matla/pos"
)

// ErrorWithPos is an error that also carries a source position, so callers
// can render an excerpt without re-deriving where the problem is.
type ErrorWithPos interface {
	error
	GetPosition() pos.Pos
	Unwrap() error
}

// WithPos wraps err with a position, returning an ErrorWithPos.
func WithPos(p pos.Pos, err error) ErrorWithPos {
	return errorWithPos{pos: p, underlying: err}
}

// WithPosf is WithPos with fmt.Errorf-style formatting.
func WithPosf(p pos.Pos, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: p, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        pos.Pos
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithPos) GetPosition() pos.Pos { return e.pos }
func (e errorWithPos) Unwrap() error        { return e.underlying }

var _ ErrorWithPos = errorWithPos{}
