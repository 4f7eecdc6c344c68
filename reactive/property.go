// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactive

// Property is a reactive cell that is confined to a single goroutine.
// It has the same behavior as [Shared], but its value is not guarded
// by a lock, so all of its methods must be called from the goroutine
// that owns it. Notifying a Property from within its own notification,
// for example by setting it from one of its observers, panics.
// Its registration lists are still locked, since registrations on it
// are released from the cleanup of collected downstream cells.
type Property[T any] struct {
	c cell[T]
}

// NewProperty returns a new [Property] cell with the given static value.
func NewProperty[T any](ctx *Context, value T) *Property[T] {
	return &Property[T]{c: newCell(ctx, value, true)}
}

// NewPropertyDynamic returns a new [Property] cell whose value is computed by
// gen, which is called once now and again whenever any of the given
// upstream observables notifies.
func NewPropertyDynamic[T any](ctx *Context, upstream []Observable, gen func() T) *Property[T] {
	return &Property[T]{c: newDynamicCell(ctx, upstream, gen, true)}
}

// ID returns the id of the cell, which it uses to register
// itself on the observables it depends on.
func (p *Property[T]) ID() uint64 { return p.c.id }

// Get returns the current value.
func (p *Property[T]) Get() T { return p.c.get() }

// Set sets a static value, removing any upstream registrations and
// generator, and notifies. If a filter rejects the value, nothing changes.
func (p *Property[T]) Set(value T) { p.c.set(value) }

// SetDynamic replaces the upstream registrations and generator
// with the given ones, and notifies, which recomputes the value.
func (p *Property[T]) SetDynamic(upstream []Observable, gen func() T) {
	p.c.setDynamic(upstream, gen)
}

// Write calls f with a pointer to the value for modification
// and then notifies. Without a filter f modifies the live value. With a
// filter f modifies a copy, which is stored only if the filter accepts it.
// See [WriteProperty] for a version with a result.
func (p *Property[T]) Write(f func(v *T)) {
	write(p.c, func(v *T) struct{} { f(v); return struct{}{} })
}

// WriteProperty calls f with a pointer to the value of p for modification,
// notifies, and returns the result of f.
func WriteProperty[T, R any](p *Property[T], f func(v *T) R) R {
	return write(p.c, f)
}

// Lock returns a pointer to the live value. It is paired with
// [Property.Unlock] for symmetry with [Shared]. Changes made this way
// do not notify; call [Property.Notify] afterward if they should.
func (p *Property[T]) Lock() *T { return p.c.lock() }

// Unlock ends access after [Property.Lock].
func (p *Property[T]) Unlock() { p.c.unlock() }

// Notify recomputes the value if the cell has a generator, then calls
// the simple observers and then the specific observers, each group in
// registration order. It panics if called during its own notification.
func (p *Property[T]) Notify() { p.c.notify() }

// Observe makes this cell notify whenever o notifies.
func (p *Property[T]) Observe(o Observable) { p.c.observe(o) }

// AddObserver adds fn to be called after every notification.
func (p *Property[T]) AddObserver(id uint64, fn func()) Removal {
	return p.c.obs.addSimple(id, fn)
}

// AddSpecificObserver adds fn to be called with a pointer to
// the value after every notification. Changes fn makes are kept
// unless the value is replaced while the observers run.
func (p *Property[T]) AddSpecificObserver(id uint64, fn func(v *T)) Removal {
	return p.c.obs.addSpecific(id, fn)
}

// ClearObserved removes all registrations this cell has made on
// the observables it depends on. The generator, if any, stays installed
// but is no longer triggered by them.
func (p *Property[T]) ClearObserved() { p.c.up.clear() }

// SetFilter sets a filter through which every later static value,
// generated value, and written value passes. Nil removes the filter.
func (p *Property[T]) SetFilter(f Filter[T]) { p.c.setFilter(f) }

// NumObservers returns the number of observers registered on this cell.
func (p *Property[T]) NumObservers() int { return p.c.obs.len() }

// NumObserved returns the number of registrations this cell
// currently holds on other observables.
func (p *Property[T]) NumObserved() int { return p.c.up.len() }

// Weak returns a weak handle to this cell.
func (p *Property[T]) Weak() WeakProperty[T] {
	return WeakProperty[T]{w: p.c.weak()}
}

// WeakProperty is a weak handle to a [Property] cell, which
// does not keep the cell alive.
type WeakProperty[T any] struct {
	w weakCell[T]
}

// Upgrade returns the cell if it is still alive.
func (w WeakProperty[T]) Upgrade() (*Property[T], bool) {
	c, ok := w.w.upgrade()
	if !ok {
		return nil, false
	}
	return &Property[T]{c: c}, true
}
