// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactive

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"weak"
)

// nopLocker is the locker of thread-confined cells.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// state is the value part of a cell.
type state[T any] struct {
	mu     sync.Locker
	value  T
	gen    func() T
	filter Filter[T]

	// confined is set for [Property] cells, which panic
	// on reentrant notification.
	confined  bool
	notifying bool

	// version counts the stores to value, so that a copy handed to the
	// specific observers is only written back if nothing replaced it.
	version uint64
}

// store sets the value and bumps the version. The lock must be held.
func (st *state[T]) store(v T) {
	st.value = v
	st.version++
}

// apply passes v through the filter, if any.
func (st *state[T]) apply(v T) (T, bool) {
	if st.filter == nil {
		return v, true
	}
	return st.filter(v)
}

// cell is the implementation shared by [Shared] and [Property].
// The state, observers, and upstream registrations are separate
// allocations, each of which a weak handle points to.
type cell[T any] struct {
	ctx   *Context
	id    uint64
	state *state[T]
	obs   *observers[T]
	up    *upstream
}

func newCell[T any](ctx *Context, value T, confined bool) cell[T] {
	st := &state[T]{value: value, confined: confined}
	if confined {
		st.mu = nopLocker{}
	} else {
		st.mu = &sync.Mutex{}
	}
	c := cell[T]{ctx: ctx, id: ctx.NextID(), state: st, obs: &observers[T]{}, up: &upstream{}}
	// the upstream registrations only hold weak handles to this cell,
	// so they are removed once the state is unreachable.
	runtime.AddCleanup(st, (*upstream).clear, c.up)
	return c
}

func newDynamicCell[T any](ctx *Context, ups []Observable, gen func() T, confined bool) cell[T] {
	c := newCell(ctx, gen(), confined)
	c.state.gen = gen
	for _, o := range ups {
		c.observe(o)
	}
	return c
}

func (c cell[T]) get() T {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	return c.state.value
}

func (c cell[T]) set(v T) {
	st := c.state
	st.mu.Lock()
	v, ok := st.apply(v)
	st.mu.Unlock()
	if !ok {
		return
	}
	c.up.clear()
	st.mu.Lock()
	st.gen = nil
	st.store(v)
	st.mu.Unlock()
	c.notify()
}

func (c cell[T]) setDynamic(ups []Observable, gen func() T) {
	c.up.clear()
	st := c.state
	st.mu.Lock()
	st.gen = gen
	st.mu.Unlock()
	for _, o := range ups {
		c.observe(o)
	}
	c.notify()
}

// write calls f with a pointer to the value and notifies. Without a
// filter, f mutates the live value in place. With a filter, f works on a
// copy, and the filtered copy is stored. A copy rejected by the filter is
// discarded without notification. Copies are shallow, so the elements of a
// slice or map value are shared with the stored value either way.
func write[T, R any](c cell[T], f func(*T) R) R {
	st := c.state
	st.mu.Lock()
	if st.filter == nil {
		r := f(&st.value)
		st.version++
		st.mu.Unlock()
		c.notify()
		return r
	}
	v := st.value
	r := f(&v)
	v, ok := st.apply(v)
	if ok {
		st.store(v)
	}
	st.mu.Unlock()
	if ok {
		c.notify()
	}
	return r
}

func (c cell[T]) lock() *T {
	c.state.mu.Lock()
	c.state.version++
	return &c.state.value
}

func (c cell[T]) unlock() {
	c.state.mu.Unlock()
}

// notify runs [cell.notifyNow], or defers it within a [Context.Batch].
func (c cell[T]) notify() {
	if c.ctx.deferNotify(c.id, c.notifyNow) {
		return
	}
	c.notifyNow()
}

// notifyNow recomputes the value from the generator, if any, then calls
// the simple observers and then the specific observers, each in
// registration order. No observer runs with the value lock held: the
// specific observers share a copy of the value, which is stored back
// afterward unless the value was replaced in the meantime.
func (c cell[T]) notifyNow() {
	st := c.state
	st.mu.Lock()
	if st.confined {
		if st.notifying {
			st.mu.Unlock()
			panic(fmt.Sprintf("reactive: reentrant notification of property %d", c.id))
		}
		st.notifying = true
		defer func() { st.notifying = false }()
	}
	if st.gen != nil {
		v, ok := st.apply(st.gen())
		if !ok {
			st.mu.Unlock()
			return
		}
		st.store(v)
	}
	st.mu.Unlock()

	simple, specific := c.obs.snapshot()
	for _, e := range simple {
		e.fn()
	}
	if len(specific) == 0 {
		return
	}
	st.mu.Lock()
	v, version := st.value, st.version
	st.mu.Unlock()
	for _, e := range specific {
		e.fn(&v)
	}
	st.mu.Lock()
	if st.version == version {
		st.value = v
	}
	st.mu.Unlock()
}

// observe registers this cell's notification on o through a weak handle,
// and records the removal in the upstream list.
func (c cell[T]) observe(o Observable) {
	w := c.weak()
	id := c.id
	c.up.add(o.AddObserver(id, func() {
		if cc, ok := w.upgrade(); ok {
			cc.notify()
			return
		}
		slog.Debug("reactive: dropped notification for collected cell", "id", id)
	}))
}

func (c cell[T]) setFilter(f Filter[T]) {
	c.state.mu.Lock()
	c.state.filter = f
	c.state.mu.Unlock()
}

func (c cell[T]) weak() weakCell[T] {
	return weakCell[T]{
		ctx:   c.ctx,
		id:    c.id,
		state: weak.Make(c.state),
		obs:   weak.Make(c.obs),
		up:    weak.Make(c.up),
	}
}

// weakCell holds weak pointers to all of the allocations of a cell.
type weakCell[T any] struct {
	ctx   *Context
	id    uint64
	state weak.Pointer[state[T]]
	obs   weak.Pointer[observers[T]]
	up    weak.Pointer[upstream]
}

// upgrade returns the cell if all of its allocations are still alive.
func (w weakCell[T]) upgrade() (cell[T], bool) {
	st := w.state.Value()
	obs := w.obs.Value()
	up := w.up.Value()
	if st == nil || obs == nil || up == nil {
		return cell[T]{}, false
	}
	return cell[T]{ctx: w.ctx, id: w.id, state: st, obs: obs, up: up}, true
}
