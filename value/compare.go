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

package value

// Compare implements a total order over Values, needed so that Bag keys
// (which are themselves structured Values) and rendered sets/bags have a
// deterministic order. Grounded on the derived Ord/PartialOrd on Value,
// Plain and Cst in cex/src/value.rs: Null sorts before every Plain; within
// Plain the variants are ordered Cst < Tuple < Set < SMap < Bag; within Cst,
// Bool < Int < String; composite values compare element-wise, then by
// length if one is a prefix of the other.
func Compare(a, b Value) int {
	if a.null != b.null {
		if a.null {
			return -1
		}
		return 1
	}
	if a.null {
		return 0
	}
	return ComparePlain(a.plain, b.plain)
}

func ComparePlain(a, b Plain) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindCst:
		return compareCst(a.cst, b.cst)
	case KindTuple:
		return compareSlice(a.tuple, b.tuple)
	case KindSet:
		return compareSlice(a.set, b.set)
	case KindSMap:
		return compareSMap(a.smap, b.smap)
	case KindBag:
		return compareBag(a.bag, b.bag)
	}
	return 0
}

func compareCst(a, b Cst) int {
	rank := func(c Cst) int {
		switch {
		case c.isBool:
			return 0
		case c.isInt:
			return 1
		default:
			return 2
		}
	}
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch ra {
	case 0:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case 1:
		return a.i.Cmp(b.i)
	default:
		if a.s == b.s {
			return 0
		}
		if a.s < b.s {
			return -1
		}
		return 1
	}
}

func compareSlice(a, b []Plain) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := ComparePlain(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func compareSMap(a, b *OrderedMap) int {
	ak, bk := a.Keys(), b.Keys()
	for i := 0; i < len(ak) && i < len(bk); i++ {
		if ak[i] != bk[i] {
			if ak[i] < bk[i] {
				return -1
			}
			return 1
		}
		av, _ := a.Get(ak[i])
		bv, _ := b.Get(bk[i])
		if c := ComparePlain(av, bv); c != 0 {
			return c
		}
	}
	switch {
	case len(ak) < len(bk):
		return -1
	case len(ak) > len(bk):
		return 1
	default:
		return 0
	}
}

func compareBag(a, b *Bag) int {
	ak, bk := a.Keys(), b.Keys()
	for i := 0; i < len(ak) && i < len(bk); i++ {
		if c := ComparePlain(ak[i], bk[i]); c != 0 {
			return c
		}
		an, _ := a.Get(ak[i])
		bn, _ := b.Get(bk[i])
		if c := an.Cmp(bn); c != 0 {
			return c
		}
	}
	switch {
	case len(ak) < len(bk):
		return -1
	case len(ak) > len(bk):
		return 1
	default:
		return 0
	}
}
