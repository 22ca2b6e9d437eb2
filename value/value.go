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

// Package value implements the typed value model TLC counter-examples are
// made of: constants, tuples, sets, records ("structures" in TLA+, SMap
// here), and bags (multisets), plus the counter-example shape itself
// (finite / stuttering / looping).
//
// Grounded on cex/src/value.rs and cex/src/lib.rs of the OCamlPro/matla
// original source.
package value

import (
	"fmt"
	"math/big"
)

// Value is either Null (TLA+'s absence of a value, e.g. an unassigned
// variable) or a Plain value.
type Value struct {
	null  bool
	plain Plain
}

// Null is the absence of a value.
var Null = Value{null: true}

// Of wraps a Plain into a Value.
func Of(p Plain) Value {
	return Value{plain: p}
}

// IsNull reports whether v is Null.
func (v Value) IsNull() bool {
	return v.null
}

// Plain returns the underlying Plain value and true, or the zero Plain and
// false if v is Null.
func (v Value) Plain() (Plain, bool) {
	if v.null {
		return Plain{}, false
	}
	return v.plain, true
}

func (v Value) String() string {
	if v.null {
		return "null"
	}
	return v.plain.String()
}

// Kind tags the variant a Plain value holds.
type Kind int

const (
	KindCst Kind = iota
	KindTuple
	KindSet
	KindSMap
	KindBag
)

// Cst is a TLA+ constant: a boolean, an arbitrary-precision integer, or a
// string. Spec §3: "Bigints are required."
type Cst struct {
	isBool bool
	isInt  bool
	b      bool
	i      *big.Int
	s      string
}

func CstBool(b bool) Cst { return Cst{isBool: true, b: b} }
func CstInt(i *big.Int) Cst {
	return Cst{isInt: true, i: i}
}
func CstString(s string) Cst { return Cst{s: s} }

func (c Cst) IsBool() bool     { return c.isBool }
func (c Cst) IsInt() bool      { return c.isInt }
func (c Cst) IsString() bool   { return !c.isBool && !c.isInt }
func (c Cst) Bool() bool       { return c.b }
func (c Cst) Int() *big.Int    { return c.i }
func (c Cst) StringVal() string { return c.s }

func (c Cst) String() string {
	switch {
	case c.isBool:
		if c.b {
			return "TRUE"
		}
		return "FALSE"
	case c.isInt:
		return c.i.String()
	default:
		return fmt.Sprintf("%q", c.s)
	}
}

// Plain is a fully-formed TLA+ value (everything but Null).
type Plain struct {
	kind  Kind
	cst   Cst
	tuple []Plain
	set   []Plain
	smap  *OrderedMap
	bag   *Bag
}

func FromCst(c Cst) Plain    { return Plain{kind: KindCst, cst: c} }
func FromBool(b bool) Plain  { return FromCst(CstBool(b)) }
func FromInt(i *big.Int) Plain { return FromCst(CstInt(i)) }
func FromString(s string) Plain { return FromCst(CstString(s)) }

// NewTuple builds a tuple value (`<<e1, e2, ...>>`).
func NewTuple(elms []Plain) Plain {
	return Plain{kind: KindTuple, tuple: elms}
}

// NewSet builds a set value (`{e1, e2, ...}`).
func NewSet(elms []Plain) Plain {
	return Plain{kind: KindSet, set: elms}
}

// NewSMap builds a record/structure value (`[k1 |-> v1, ...]`).
func NewSMap(m *OrderedMap) Plain {
	return Plain{kind: KindSMap, smap: m}
}

// NewBag builds a bag value (`(v1 :> n1 @@ ...)`).
func NewBag(b *Bag) Plain {
	return Plain{kind: KindBag, bag: b}
}

func (p Plain) Kind() Kind { return p.kind }

func (p Plain) AsCst() (Cst, bool) {
	if p.kind != KindCst {
		return Cst{}, false
	}
	return p.cst, true
}

func (p Plain) AsTuple() ([]Plain, bool) {
	if p.kind != KindTuple {
		return nil, false
	}
	return p.tuple, true
}

func (p Plain) AsSet() ([]Plain, bool) {
	if p.kind != KindSet {
		return nil, false
	}
	return p.set, true
}

func (p Plain) AsSMap() (*OrderedMap, bool) {
	if p.kind != KindSMap {
		return nil, false
	}
	return p.smap, true
}

func (p Plain) AsBag() (*Bag, bool) {
	if p.kind != KindBag {
		return nil, false
	}
	return p.bag, true
}

// IsCst reports whether p is a constant.
func (p Plain) IsCst() bool { return p.kind == KindCst }

// IsTinyCst reports whether p is a boolean or integer constant — used by
// the renderer to decide whether a value is cheap enough to inline.
func (p Plain) IsTinyCst() bool {
	return p.kind == KindCst && (p.cst.isBool || p.cst.isInt)
}

// FmtLen is a rough measure of how much horizontal space p would take to
// render, used to decide between one-line and multi-line rendering.
// Grounded on Plain::fmt_len in cex/src/value.rs.
func (p Plain) FmtLen() int {
	switch p.kind {
	case KindCst:
		if p.cst.isBool || p.cst.isInt {
			return 1
		}
		return len(p.cst.s) / 10
	case KindTuple:
		sum := 0
		for _, e := range p.tuple {
			sum += max1(e.FmtLen())
		}
		return sum
	case KindSet:
		sum := 0
		for _, e := range p.set {
			sum += max1(e.FmtLen())
		}
		return sum
	case KindSMap:
		sum := 0
		p.smap.Each(func(_ string, v Plain) {
			sum += 1 + max1(v.FmtLen())
		})
		return sum
	case KindBag:
		if p.bag.Len() == 0 {
			return 0
		}
		return int(^uint(0) >> 1) // math.MaxInt: bags always render multi-line
	}
	return 0
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

const (
	maxElementCount = 7
	maxBindingCount = 5
)

// IsOneLine reports whether p is small enough to render on a single line.
// Grounded on Plain::is_one_line in cex/src/value.rs.
func (p Plain) IsOneLine() bool {
	switch p.kind {
	case KindCst:
		return true
	case KindTuple:
		if len(p.tuple) > maxElementCount {
			return false
		}
		for _, e := range p.tuple {
			if !(e.IsOneLine() && (e.IsCst() || e.FmtLen() <= 2)) {
				return false
			}
		}
		return true
	case KindSet:
		if len(p.set) > maxElementCount {
			return false
		}
		for _, e := range p.set {
			if !(e.IsOneLine() && (e.IsCst() || e.FmtLen() <= 2)) {
				return false
			}
		}
		return true
	case KindSMap:
		if p.smap.Len() > maxBindingCount {
			return false
		}
		oneLine := true
		p.smap.Each(func(_ string, v Plain) {
			if !(v.IsOneLine() && (v.IsCst() || v.FmtLen() <= 2)) {
				oneLine = false
			}
		})
		return oneLine
	case KindBag:
		return p.bag.Len() == 0
	}
	return true
}

func (p Plain) String() string {
	switch p.kind {
	case KindCst:
		return p.cst.String()
	case KindTuple:
		return joinDelim("<<", ">>", p.tuple, func(e Plain) string { return e.String() })
	case KindSet:
		return joinDelim("{", "}", p.set, func(e Plain) string { return e.String() })
	case KindSMap:
		var parts []string
		p.smap.Each(func(k string, v Plain) {
			parts = append(parts, fmt.Sprintf("%s |-> %s", k, v))
		})
		return "[" + joinStrings(parts) + "]"
	case KindBag:
		var parts []string
		p.bag.Each(func(k Plain, n *big.Int) {
			parts = append(parts, fmt.Sprintf("%s :> %s", k, n))
		})
		return "(" + joinStrings(parts, " @@ ") + ")"
	}
	return "?"
}

func joinDelim(open, closeDelim string, elms []Plain, show func(Plain) string) string {
	var parts []string
	for _, e := range elms {
		parts = append(parts, show(e))
	}
	return open + joinStrings(parts) + closeDelim
}

func joinStrings(parts []string, sep ...string) string {
	s := ", "
	if len(sep) > 0 {
		s = sep[0]
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += s
		}
		out += p
	}
	return out
}
