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

// Package tlccode catalogues the message codes TLC prints between its
// `@!@!@STARTMSG`/`@!@!@ENDMSG` sentinels (TLC calls them "error codes",
// though most of them aren't errors at all) and classifies them into the
// handful of categories the rest of this module cares about.
//
// Reference: EC.java in the tlaplus/tlaplus repository enumerates the same
// codes under the same numeric values; this package mirrors that mapping.
package tlccode

import "fmt"

// Code is a type-safe wrapper around a TLC message code.
type Code struct {
	code int
}

// NewCode wraps a raw integer code. Exported for tlcmsg/tlcparse, which read
// the numeric code straight off the wire before it's classified.
func NewCode(code int) Code {
	return Code{code: code}
}

// Int returns the raw numeric code.
func (c Code) Int() int {
	return c.code
}

func (c Code) String() string {
	return fmt.Sprintf("#(%d)", c.code)
}

// Category groups codes the way the original enum tree nests them: a
// message is either an Err or a Msg, and each of those breaks down further.
type Category int

const (
	CategoryUnknown Category = iota

	CategoryErrGeneral // CheckFailedToCheck, CheckCouldNotReadTrace, NoJavaRuntime
	CategoryParam
	CategoryParser
	CategoryWeird
	CategoryFeature
	CategorySystem
	CategoryCla
	CategoryPp
	CategoryTlcErr
	CategoryCfg
	CategoryTlcProblem

	CategoryMsgGeneral
	CategoryStatus
	CategoryTlcCex
	CategoryTlcUnsafe
	CategoryTlcLive
	CategoryDistributedTlc
	CategoryTlcNormal
)

// Top says whether a category belongs under the error branch or the message
// branch of the code tree.
type Top int

const (
	TopErr Top = iota
	TopMsg
)

func (cat Category) Top() Top {
	switch cat {
	case CategoryErrGeneral, CategoryParam, CategoryParser, CategoryWeird,
		CategoryFeature, CategorySystem, CategoryCla, CategoryPp,
		CategoryTlcErr, CategoryCfg, CategoryTlcProblem:
		return TopErr
	default:
		return TopMsg
	}
}

// Entry describes one cataloged code: its category, a short machine name
// matching the original enum variant, and the human-readable description
// TLC's own EC.java attaches to it.
type Entry struct {
	Code     Code
	Category Category
	Name     string
	Desc     string
}

func (e Entry) IsErr() bool { return e.Category.Top() == TopErr }

// catalog maps every known numeric code to its Entry. Built from the
// per-category tables in catalog_data.go.
var catalog = make(map[int]Entry)

func register(cat Category, code int, name, desc string) Code {
	c := NewCode(code)
	if prev, ok := catalog[code]; ok {
		panic(fmt.Sprintf("tlccode: code %d registered twice (%s and %s)", code, prev.Name, name))
	}
	catalog[code] = Entry{Code: c, Category: cat, Name: name, Desc: desc}
	return c
}

// Lookup finds the cataloged Entry for a raw code, if any.
func Lookup(code int) (Entry, bool) {
	e, ok := catalog[code]
	return e, ok
}

// MustLookup is Lookup but panics if the code is uncatalogued. Use only for
// codes the caller has already verified exist (e.g. ones it just
// registered).
func MustLookup(code int) Entry {
	e, ok := Lookup(code)
	if !ok {
		panic(fmt.Sprintf("tlccode: no entry for code %d", code))
	}
	return e
}

// IsGeneralMsg is true for the catch-all "general" message code, the one
// TLC uses for plain progress/log lines that don't carry a more specific
// code.
func IsGeneralMsg(code int) bool {
	e, ok := Lookup(code)
	return ok && e.Category == CategoryMsgGeneral
}
