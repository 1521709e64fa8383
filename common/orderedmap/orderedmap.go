/*
 * Loom - A compact agent-oriented programming language
 *
 * Copyright Loom Language Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package orderedmap provides a map which additionally maintains
// insertion order. Iteration order is deterministic,
// which keeps every verifier output stable across runs.
package orderedmap

// Pair is an entry of an OrderedMap
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is a map that iterates in insertion order
type OrderedMap[K comparable, V any] struct {
	indices map[K]int
	pairs   []*Pair[K, V]
}

// New returns a new OrderedMap with the given initial capacity
func New[K comparable, V any](size int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		indices: make(map[K]int, size),
		pairs:   make([]*Pair[K, V], 0, size),
	}
}

func (om *OrderedMap[K, V]) ensureInitialized() {
	if om.indices == nil {
		om.indices = make(map[K]int)
	}
}

// Get returns the value associated with the given key.
// The second return value indicates if the key is present.
func (om *OrderedMap[K, V]) Get(key K) (result V, present bool) {
	if om.indices == nil {
		return
	}

	var index int
	if index, present = om.indices[key]; present {
		return om.pairs[index].Value, present
	}
	return
}

// Contains returns true if the key is present in the map
func (om *OrderedMap[K, V]) Contains(key K) (present bool) {
	if om.indices == nil {
		return
	}

	_, present = om.indices[key]
	return
}

// Set sets the key-value pair, and returns what `Get` would have returned
// on that key prior to the call to `Set`
func (om *OrderedMap[K, V]) Set(key K, value V) (oldValue V, present bool) {
	om.ensureInitialized()

	var index int
	if index, present = om.indices[key]; present {
		pair := om.pairs[index]
		oldValue = pair.Value
		pair.Value = value
		return
	}

	om.indices[key] = len(om.pairs)
	om.pairs = append(om.pairs, &Pair[K, V]{
		Key:   key,
		Value: value,
	})

	return
}

// Len returns the number of entries in the map
func (om *OrderedMap[K, V]) Len() int {
	return len(om.pairs)
}

// Foreach iterates over the entries of the map in insertion order
func (om *OrderedMap[K, V]) Foreach(f func(key K, value V)) {
	for _, pair := range om.pairs {
		f(pair.Key, pair.Value)
	}
}

// ForeachWithError iterates over the entries of the map in insertion order,
// and stops at the first error
func (om *OrderedMap[K, V]) ForeachWithError(f func(key K, value V) error) error {
	for _, pair := range om.pairs {
		err := f(pair.Key, pair.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

// Keys returns the keys of the map in insertion order
func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(om.pairs))
	for _, pair := range om.pairs {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Pairs returns the entries of the map in insertion order
func (om *OrderedMap[K, V]) Pairs() []*Pair[K, V] {
	return om.pairs
}
