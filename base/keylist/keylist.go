// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., an observer id) to indexes,
to support fast lookup and removal by key while keeping
insertion order for iteration.
*/
package keylist

import (
	"fmt"
	"slices"
)

// List implements an ordered list (slice) of Values,
// with a map from a key to indexes, to support fast lookup by key.
// The zero value is ready to use.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values]
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List].  The zero value
// is usable without initialization, so this is
// just a simple standard convenience method.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// initIndexes ensures that the index map exists.
func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
}

// Reset resets the list, removing any existing elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}

// Set sets given key to given value, adding to the end of the list
// if not already present, and otherwise replacing with this new value
// in its existing position. This is the same semantics as a Go map.
func (kl *List[K, V]) Set(key K, val V) {
	kl.initIndexes()
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// At returns the value corresponding to the given key,
// with false returned for a missing key.
func (kl *List[K, V]) At(key K) (V, bool) {
	idx, ok := kl.indexes[key]
	if ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
// Indexes after the deleted item are shifted down.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx, ok := kl.indexes[key]
	if !ok {
		return false
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	delete(kl.indexes, key)
	for i := idx; i < len(kl.Keys); i++ {
		kl.indexes[kl.Keys[i]] = i
	}
	return true
}

// Clone returns a copy of the current values in order.
// It is used to iterate over a stable snapshot while
// the list itself may be modified.
func (kl *List[K, V]) Clone() []V {
	return slices.Clone(kl.Values)
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	sv := "{"
	for i, v := range kl.Values {
		sv += fmt.Sprintf("%v", kl.Keys[i]) + ": " + fmt.Sprintf("%v", v) + ", "
	}
	sv += "}"
	return sv
}
