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

import (
	"math/big"
	"sort"
)

// Bag is an ordered multiset mapping Plain values to their multiplicity.
// Spec §3 requires bag keys to be structured values with "a total order
// over values"; tidwall/btree's generic Map (used for OrderedMap) only
// accepts cmp.Ordered primitive keys, so Bag instead keeps its entries in a
// slice sorted by ComparePlain, with binary search for lookups — a plain
// sorted-slice ordered container is the stdlib-only fallback documented in
// DESIGN.md for the one case the library's confirmed API doesn't reach.
type Bag struct {
	entries []bagEntry
}

type bagEntry struct {
	key   Plain
	count *big.Int
}

// NewBagMap builds an empty Bag.
func NewBagMap() *Bag {
	return &Bag{}
}

func (b *Bag) search(key Plain) (int, bool) {
	i := sort.Search(len(b.entries), func(i int) bool {
		return ComparePlain(b.entries[i].key, key) >= 0
	})
	if i < len(b.entries) && ComparePlain(b.entries[i].key, key) == 0 {
		return i, true
	}
	return i, false
}

// Set binds key to count, overwriting any previous binding.
func (b *Bag) Set(key Plain, count *big.Int) {
	i, found := b.search(key)
	if found {
		b.entries[i].count = count
		return
	}
	b.entries = append(b.entries, bagEntry{})
	copy(b.entries[i+1:], b.entries[i:])
	b.entries[i] = bagEntry{key: key, count: count}
}

// Get looks up key.
func (b *Bag) Get(key Plain) (*big.Int, bool) {
	i, found := b.search(key)
	if !found {
		return nil, false
	}
	return b.entries[i].count, true
}

// Len is the number of distinct keys in the bag.
func (b *Bag) Len() int {
	return len(b.entries)
}

// Keys returns the bag's keys in ascending order.
func (b *Bag) Keys() []Plain {
	keys := make([]Plain, len(b.entries))
	for i, e := range b.entries {
		keys[i] = e.key
	}
	return keys
}

// Each calls fn for every (key, count) pair in ascending key order.
func (b *Bag) Each(fn func(key Plain, count *big.Int)) {
	for _, e := range b.entries {
		fn(e.key, e.count)
	}
}
