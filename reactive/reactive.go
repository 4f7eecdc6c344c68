// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reactive provides observable value cells that push change
// notifications to their observers, and can be derived from other
// observables through a generator function.
//
// There are two flavors with the same API: [Shared] guards its value
// with a mutex and can be used from any goroutine, and [Property] is
// confined to a single goroutine and panics on reentrant notification.
// Both observe their upstream dependencies through weak handles, so a
// derived cell never keeps itself alive through the cells it depends on,
// and its registrations are released when it is garbage collected.
//
// All cells are created within a [Context], which hands out cell ids
// and supports batching notifications with [Context.Batch].
package reactive

// Observable is anything that can notify a zero-argument callback
// when it changes. The id identifies the registration, so that an
// observer can replace or remove exactly the callback it added.
type Observable interface {
	AddObserver(id uint64, fn func()) Removal
}

// Value is an [Observable] that also provides its current value.
// Both [Shared] and [Property] are Values.
type Value[T any] interface {
	Observable
	Get() T
}

// Removal removes the single observer registration it was returned for.
// It is safe to call it any number of times; only the first call
// has an effect, and it never removes a later registration that
// reused the same id.
type Removal func()

// Remove calls the removal function if it is non-nil.
func (r Removal) Remove() {
	if r != nil {
		r()
	}
}
