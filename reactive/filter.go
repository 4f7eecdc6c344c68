// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactive

import (
	"cmp"

	"cogentcore.org/tint/math32"
)

// Filter transforms a new value of a cell before it is stored,
// or rejects it by returning false, in which case the update is
// dropped and no notification happens.
type Filter[T any] func(v T) (T, bool)

// Clamp returns a [Filter] that clamps values to the closed interval [min, max].
func Clamp[T cmp.Ordered](min, max T) Filter[T] {
	return func(v T) (T, bool) {
		return math32.Clamp(v, min, max), true
	}
}

// Accept returns a [Filter] that rejects values for which ok returns false.
func Accept[T any](ok func(v T) bool) Filter[T] {
	return func(v T) (T, bool) {
		return v, ok(v)
	}
}

// Chain returns a [Filter] that applies the given filters in order,
// stopping at the first rejection.
func Chain[T any](filters ...Filter[T]) Filter[T] {
	return func(v T) (T, bool) {
		for _, f := range filters {
			var ok bool
			v, ok = f(v)
			if !ok {
				return v, false
			}
		}
		return v, true
	}
}
