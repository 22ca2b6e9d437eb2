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

import "github.com/tidwall/btree"

// OrderedMap is the ordered string-keyed map backing SMap ("structure")
// values. Spec §3 requires SMap to be an OrderedMap; this wraps
// github.com/tidwall/btree's generic Map, the same ordered B-tree the
// teacher corpus uses for its own ordered maps (protocompile's
// internal/interval.Map, before that package was dropped as
// protobuf-specific — the dependency itself survives, relocated here).
type OrderedMap struct {
	tree btree.Map[string, Plain]
}

// NewOrderedMap builds an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{}
}

// Set binds key to value, overwriting any previous binding.
func (m *OrderedMap) Set(key string, val Plain) {
	m.tree.Set(key, val)
}

// Get looks up key.
func (m *OrderedMap) Get(key string) (Plain, bool) {
	return m.tree.Get(key)
}

// Len is the number of bindings.
func (m *OrderedMap) Len() int {
	return m.tree.Len()
}

// Keys returns the bound keys in ascending order.
func (m *OrderedMap) Keys() []string {
	keys := make([]string, 0, m.tree.Len())
	m.tree.Scan(func(k string, _ Plain) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Each calls fn for every binding in ascending key order.
func (m *OrderedMap) Each(fn func(key string, val Plain)) {
	m.tree.Scan(func(k string, v Plain) bool {
		fn(k, v)
		return true
	})
}
