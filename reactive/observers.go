// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactive

import (
	"sync"

	"cogentcore.org/tint/base/keylist"
)

// entry is one observer registration. The sequence number distinguishes
// registrations that reuse the same id.
type entry[F any] struct {
	seq uint64
	fn  F
}

// observers is the registry of simple and specific observers of a cell,
// in registration order. Registering an id that is already present
// replaces its callback in place.
type observers[T any] struct {
	mu       sync.Mutex
	seq      uint64
	simple   keylist.List[uint64, entry[func()]]
	specific keylist.List[uint64, entry[func(*T)]]
}

func (o *observers[T]) addSimple(id uint64, fn func()) Removal {
	o.mu.Lock()
	o.seq++
	seq := o.seq
	o.simple.Set(id, entry[func()]{seq, fn})
	o.mu.Unlock()
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if e, ok := o.simple.At(id); ok && e.seq == seq {
			o.simple.DeleteByKey(id)
		}
	}
}

func (o *observers[T]) addSpecific(id uint64, fn func(*T)) Removal {
	o.mu.Lock()
	o.seq++
	seq := o.seq
	o.specific.Set(id, entry[func(*T)]{seq, fn})
	o.mu.Unlock()
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if e, ok := o.specific.At(id); ok && e.seq == seq {
			o.specific.DeleteByKey(id)
		}
	}
}

// snapshot returns the current callbacks, so that they can be called
// without holding the lock while observers are added or removed.
func (o *observers[T]) snapshot() ([]entry[func()], []entry[func(*T)]) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.simple.Clone(), o.specific.Clone()
}

func (o *observers[T]) len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.simple.Len() + o.specific.Len()
}

// upstream holds the removals for the registrations a cell made on the
// observables it depends on.
type upstream struct {
	mu       sync.Mutex
	removals []Removal
}

func (u *upstream) add(r Removal) {
	u.mu.Lock()
	u.removals = append(u.removals, r)
	u.mu.Unlock()
}

// clear removes every upstream registration.
func (u *upstream) clear() {
	u.mu.Lock()
	rs := u.removals
	u.removals = nil
	u.mu.Unlock()
	for _, r := range rs {
		r.Remove()
	}
}

func (u *upstream) len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.removals)
}
