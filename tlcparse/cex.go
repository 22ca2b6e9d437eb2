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

package tlcparse

import (
	"math/big"

	"github.com/ocamlpro/matla/pos"
	"github.com/ocamlpro/matla/value"
)

// cexCst parses a boolean, integer, or double-quoted string constant.
func (s *scanner) cexCst() (value.Plain, bool) {
	save := s.pos
	if s.lit("TRUE") {
		return value.FromBool(true), true
	}
	if s.lit("FALSE") {
		return value.FromBool(false), true
	}
	if str, ok := s.dqString(); ok {
		return value.FromString(str), true
	}
	if digits, ok := s.parsePrettyDigits(); ok {
		n, ok := new(big.Int).SetString(digits, 10)
		if ok {
			return value.FromInt(n), true
		}
	}
	s.pos = save
	return value.Plain{}, false
}

// cexPlainValue parses any counter-example value: a constant, tuple, set,
// record-like structure map, or bag.
func (s *scanner) cexPlainValue() (value.Plain, bool) {
	if cst, ok := s.cexCst(); ok {
		return cst, true
	}
	if tup, ok := s.cexTuple(); ok {
		return tup, true
	}
	if smap, ok := s.cexSMap(); ok {
		return smap, true
	}
	if bag, ok := s.cexBag(); ok {
		return bag, true
	}
	if set, ok := s.cexSet(); ok {
		return set, true
	}
	return value.Plain{}, false
}

func (s *scanner) cexTuple() (value.Plain, bool) {
	save := s.pos
	if !s.lit("<<") {
		return value.Plain{}, false
	}
	s.skipSpace()
	var elms []value.Plain
	if elm, ok := s.cexPlainValue(); ok {
		elms = append(elms, elm)
		for {
			mark := s.pos
			s.skipSpace()
			if !s.lit(",") {
				s.pos = mark
				break
			}
			s.skipSpace()
			next, ok := s.cexPlainValue()
			if !ok {
				s.pos = mark
				break
			}
			elms = append(elms, next)
		}
	}
	s.skipSpace()
	if !s.lit(">>") {
		s.pos = save
		return value.Plain{}, false
	}
	return value.NewTuple(elms), true
}

func (s *scanner) cexSet() (value.Plain, bool) {
	save := s.pos
	if !s.lit("{") {
		return value.Plain{}, false
	}
	s.skipSpace()
	var elms []value.Plain
	if elm, ok := s.cexPlainValue(); ok {
		elms = append(elms, elm)
		for {
			mark := s.pos
			s.skipSpace()
			if !s.lit(",") {
				s.pos = mark
				break
			}
			s.skipSpace()
			next, ok := s.cexPlainValue()
			if !ok {
				s.pos = mark
				break
			}
			elms = append(elms, next)
		}
	}
	s.skipSpace()
	if !s.lit("}") {
		s.pos = save
		return value.Plain{}, false
	}
	return value.NewSet(elms), true
}

func (s *scanner) cexSMap() (value.Plain, bool) {
	save := s.pos
	if !s.lit("[") {
		return value.Plain{}, false
	}
	s.skipSpace()
	m := value.NewOrderedMap()
	if id, ok := s.ident(); ok {
		s.skipSpace()
		if !s.lit("|->") {
			s.pos = save
			return value.Plain{}, false
		}
		s.skipSpace()
		val, ok := s.cexPlainValue()
		if !ok {
			s.pos = save
			return value.Plain{}, false
		}
		m.Set(id, val)
		for {
			mark := s.pos
			s.skipSpace()
			if !s.lit(",") {
				s.pos = mark
				break
			}
			s.skipSpace()
			nextID, ok := s.ident()
			if !ok {
				s.pos = mark
				break
			}
			s.skipSpace()
			if !s.lit("|->") {
				s.pos = mark
				break
			}
			s.skipSpace()
			nextVal, ok := s.cexPlainValue()
			if !ok {
				s.pos = mark
				break
			}
			m.Set(nextID, nextVal)
		}
	}
	s.skipSpace()
	if !s.lit("]") {
		s.pos = save
		return value.Plain{}, false
	}
	return value.NewSMap(m), true
}

func (s *scanner) cexBag() (value.Plain, bool) {
	save := s.pos
	if !s.lit("(") {
		return value.Plain{}, false
	}
	s.skipSpace()
	bag := value.NewBagMap()
	if val, ok := s.cexPlainValue(); ok {
		s.skipSpace()
		if !s.lit(":>") {
			s.pos = save
			return value.Plain{}, false
		}
		s.skipSpace()
		count, ok := s.parsePrettyDigits()
		if !ok {
			s.pos = save
			return value.Plain{}, false
		}
		countN, ok := new(big.Int).SetString(count, 10)
		if !ok {
			s.pos = save
			return value.Plain{}, false
		}
		bag.Set(val, countN)
		for {
			mark := s.pos
			s.skipSpace()
			if !s.lit("@@") {
				s.pos = mark
				break
			}
			s.skipSpace()
			nextVal, ok := s.cexPlainValue()
			if !ok {
				s.pos = mark
				break
			}
			s.skipSpace()
			if !s.lit(":>") {
				s.pos = mark
				break
			}
			s.skipSpace()
			nextCount, ok := s.parsePrettyDigits()
			if !ok {
				s.pos = mark
				break
			}
			nextCountN, ok := new(big.Int).SetString(nextCount, 10)
			if !ok {
				s.pos = mark
				break
			}
			bag.Set(nextVal, nextCountN)
		}
	}
	s.skipSpace()
	s.lit(",")
	if !s.lit(")") {
		s.pos = save
		return value.Plain{}, false
	}
	return value.NewBag(bag), true
}

// cexValue parses a value or the `null` sentinel (an undefined value).
func (s *scanner) cexValue() (value.Value, bool) {
	save := s.pos
	if s.lit("null") {
		return value.Null, true
	}
	s.pos = save
	if plain, ok := s.cexPlainValue(); ok {
		return value.Of(plain), true
	}
	return value.Value{}, false
}

// CexValue parses a complete counter-example value occupying the whole
// line.
func CexValue(line string) (value.Value, error) {
	s := newScanner(line)
	v, ok := s.cexValue()
	if !ok || !s.eof() {
		return value.Value{}, s.errf("expected a counter-example value")
	}
	return v, nil
}

// CexIdentValue parses a `[/\] <ident> = <value>` state-variable binding.
func CexIdentValue(line string) (string, value.Value, error) {
	s := newScanner(line)
	mark := s.pos
	if s.lit(`/\`) {
		s.skipSpace()
	} else {
		s.pos = mark
	}
	id, ok := s.ident()
	if !ok {
		return "", value.Value{}, s.errf("expected identifier")
	}
	s.skipSpace()
	if err := s.expect("="); err != nil {
		return "", value.Value{}, err
	}
	s.skipSpace()
	val, ok := s.cexValue()
	if !ok {
		return "", value.Value{}, s.errf("expected value")
	}
	return id, val, nil
}

// ParseBackToState parses either `Back to state N: ...` or
// `N: Back to state ...`, the two shapes TLC uses for the loop-back line at
// the end of a lasso-shaped liveness counter-example.
func ParseBackToState(line string) (int, error) {
	s := newScanner(line)
	s.skipSpace()
	if s.lit("Back") {
		s.skipSpace()
		if err := s.expectWords("to", "state"); err != nil {
			return 0, err
		}
		s.skipSpace()
		return s.takePrettyUsize()
	}
	n, err := s.takePrettyUsize()
	if err != nil {
		return 0, err
	}
	s.skipSpace()
	if err := s.expect(":"); err != nil {
		return 0, err
	}
	s.skipSpace()
	if err := s.expectWords("Back", "to", "state"); err != nil {
		return 0, err
	}
	return n, nil
}

// StateInfo carries the parsed `<index>: <N. action pos to pos of module M>`
// header of a counter-example state. Info is nil for the initial state.
type StateInfo struct {
	Action string
	Start  pos.Pos
	End    pos.Pos
	Module string
}

// ParseStateInfo parses a state header line:
//
//	N: <Initial predicate>
//	N: <action pos to pos of module M>
func ParseStateInfo(line string) (index int, info *StateInfo, err error) {
	s := newScanner(line)
	s.skipSpace()
	idx, convErr := s.takePrettyUsize()
	if convErr != nil {
		return 0, nil, convErr
	}
	s.skipSpace()
	if err := s.expect(":"); err != nil {
		return 0, nil, err
	}
	s.skipSpace()
	if err := s.expect("<"); err != nil {
		return 0, nil, err
	}
	s.skipSpace()

	mark := s.pos
	if s.lit("Initial") {
		s.skipSpace()
		if err := s.expect("predicate"); err == nil {
			s.skipSpace()
			if err := s.expect(">"); err != nil {
				return 0, nil, err
			}
			return idx, nil, nil
		}
		s.pos = mark
	}

	action, ok := s.ident()
	if !ok {
		return 0, nil, s.errf("expected action identifier")
	}
	s.skipSpace()
	start, ok := s.filePos()
	if !ok {
		return 0, nil, s.errf("expected span start")
	}
	s.skipSpace()
	if err := s.expect("to"); err != nil {
		return 0, nil, err
	}
	s.skipSpace()
	end, ok := s.filePos()
	if !ok {
		return 0, nil, s.errf("expected span end")
	}
	s.skipSpace()
	if err := s.expectWords("of", "module"); err != nil {
		return 0, nil, err
	}
	s.skipSpace()
	module, ok := s.ident()
	if !ok {
		return 0, nil, s.errf("expected module identifier")
	}
	s.skipSpace()
	if err := s.expect(">"); err != nil {
		return 0, nil, err
	}
	return idx, &StateInfo{Action: action, Start: start, End: end, Module: module}, nil
}
