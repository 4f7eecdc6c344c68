// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactive

// Shared is a reactive cell that can be used from any goroutine.
// It holds either a static value or a value derived from a generator
// function that is rerun whenever one of its upstream observables
// notifies. Its value is guarded by a mutex, which is released before
// simple observers are called, so they may read the cell.
type Shared[T any] struct {
	c cell[T]
}

// NewShared returns a new [Shared] cell with the given static value.
func NewShared[T any](ctx *Context, value T) *Shared[T] {
	return &Shared[T]{c: newCell(ctx, value, false)}
}

// NewSharedDynamic returns a new [Shared] cell whose value is computed by
// gen, which is called once now and again whenever any of the given
// upstream observables notifies.
func NewSharedDynamic[T any](ctx *Context, upstream []Observable, gen func() T) *Shared[T] {
	return &Shared[T]{c: newDynamicCell(ctx, upstream, gen, false)}
}

// ID returns the id of the cell, which it uses to register
// itself on the observables it depends on.
func (s *Shared[T]) ID() uint64 { return s.c.id }

// Get returns the current value.
func (s *Shared[T]) Get() T { return s.c.get() }

// Set sets a static value, removing any upstream registrations and
// generator, and notifies. If a filter rejects the value, nothing changes.
func (s *Shared[T]) Set(value T) { s.c.set(value) }

// SetDynamic replaces the upstream registrations and generator
// with the given ones, and notifies, which recomputes the value.
func (s *Shared[T]) SetDynamic(upstream []Observable, gen func() T) {
	s.c.setDynamic(upstream, gen)
}

// Write calls f with a pointer to the value for modification
// and then notifies. Without a filter f modifies the live value. With a
// filter f modifies a copy, which is stored only if the filter accepts it.
// See [WriteShared] for a version with a result.
func (s *Shared[T]) Write(f func(v *T)) {
	write(s.c, func(v *T) struct{} { f(v); return struct{}{} })
}

// WriteShared calls f with a pointer to the value of s for modification,
// notifies, and returns the result of f.
func WriteShared[T, R any](s *Shared[T], f func(v *T) R) R {
	return write(s.c, f)
}

// Lock locks the cell and returns a pointer to its live value,
// which must be followed by [Shared.Unlock]. Changes made this way
// do not notify; call [Shared.Notify] afterward if they should.
func (s *Shared[T]) Lock() *T { return s.c.lock() }

// Unlock unlocks the cell after [Shared.Lock].
func (s *Shared[T]) Unlock() { s.c.unlock() }

// Notify recomputes the value if the cell has a generator, then calls
// the simple observers and then the specific observers, each group in
// registration order. No observer is called with the lock held.
func (s *Shared[T]) Notify() { s.c.notify() }

// Observe makes this cell notify whenever o notifies.
func (s *Shared[T]) Observe(o Observable) { s.c.observe(o) }

// AddObserver adds fn to be called after every notification.
func (s *Shared[T]) AddObserver(id uint64, fn func()) Removal {
	return s.c.obs.addSimple(id, fn)
}

// AddSpecificObserver adds fn to be called with a pointer to
// the value after every notification. Changes fn makes are kept
// unless the value is replaced while the observers run.
func (s *Shared[T]) AddSpecificObserver(id uint64, fn func(v *T)) Removal {
	return s.c.obs.addSpecific(id, fn)
}

// ClearObserved removes all registrations this cell has made on
// the observables it depends on. The generator, if any, stays installed
// but is no longer triggered by them.
func (s *Shared[T]) ClearObserved() { s.c.up.clear() }

// SetFilter sets a filter through which every later static value,
// generated value, and written value passes. Nil removes the filter.
func (s *Shared[T]) SetFilter(f Filter[T]) { s.c.setFilter(f) }

// NumObservers returns the number of observers registered on this cell.
func (s *Shared[T]) NumObservers() int { return s.c.obs.len() }

// NumObserved returns the number of registrations this cell
// currently holds on other observables.
func (s *Shared[T]) NumObserved() int { return s.c.up.len() }

// Weak returns a weak handle to this cell.
func (s *Shared[T]) Weak() WeakShared[T] {
	return WeakShared[T]{w: s.c.weak()}
}

// WeakShared is a weak handle to a [Shared] cell, which
// does not keep the cell alive.
type WeakShared[T any] struct {
	w weakCell[T]
}

// Upgrade returns the cell if it is still alive.
func (w WeakShared[T]) Upgrade() (*Shared[T], bool) {
	c, ok := w.w.upgrade()
	if !ok {
		return nil, false
	}
	return &Shared[T]{c: c}, true
}
