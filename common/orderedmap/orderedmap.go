/*
 * Jaspar - a static type checker for JSDoc-annotated JavaScript
 *
 * Copyright Jaspar Authors
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

package orderedmap

// OrderedMap is a map which iterates in insertion order.
// Setting an existing key updates the value in place and keeps
// the key's original position.
//
// The zero value is an empty, ready-to-use map.
type OrderedMap[K comparable, V any] struct {
	pairs map[K]*Pair[K, V]
	order []*Pair[K, V]
}

// New returns a new OrderedMap with the given initial capacity.
func New[K comparable, V any](size int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		pairs: make(map[K]*Pair[K, V], size),
		order: make([]*Pair[K, V], 0, size),
	}
}

func (om *OrderedMap[K, V]) ensureInitialized() {
	if om.pairs != nil {
		return
	}
	om.pairs = make(map[K]*Pair[K, V])
}

// Get returns the value associated with the given key.
// The second return value indicates if the key is present in the map.
func (om *OrderedMap[K, V]) Get(key K) (result V, present bool) {
	if om.pairs == nil {
		return
	}

	var pair *Pair[K, V]
	if pair, present = om.pairs[key]; present {
		return pair.Value, present
	}
	return
}

// Contains returns true if the key is present in the map.
func (om *OrderedMap[K, V]) Contains(key K) (present bool) {
	if om.pairs == nil {
		return
	}

	_, present = om.pairs[key]
	return
}

// Set sets the key-value pair, and returns what `Get` would have returned
// on that key prior to the call to `Set`.
func (om *OrderedMap[K, V]) Set(key K, value V) (oldValue V, present bool) {
	om.ensureInitialized()

	var pair *Pair[K, V]
	if pair, present = om.pairs[key]; present {
		oldValue = pair.Value
		pair.Value = value
		return
	}

	pair = &Pair[K, V]{
		Key:   key,
		Value: value,
	}
	om.pairs[key] = pair
	om.order = append(om.order, pair)

	return
}

// Len returns the number of entries in the map.
func (om *OrderedMap[K, V]) Len() int {
	return len(om.pairs)
}

// Keys returns the keys of the map, in insertion order.
func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(om.order))
	for _, pair := range om.order {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Foreach iterates over the entries of the map in insertion order,
// and invokes the provided function for each key-value pair.
func (om *OrderedMap[K, V]) Foreach(f func(key K, value V)) {
	for _, pair := range om.order {
		f(pair.Key, pair.Value)
	}
}

// ForeachWithError iterates over the entries of the map in insertion order,
// and invokes the provided function for each key-value pair.
// If the passed function returns an error, iteration breaks and the error is returned.
func (om *OrderedMap[K, V]) ForeachWithError(f func(key K, value V) error) error {
	for _, pair := range om.order {
		err := f(pair.Key, pair.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

// Pair is an entry in an OrderedMap.
type Pair[K any, V any] struct {
	Key   K
	Value V
}
