// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactive

import (
	"sync"
	"sync/atomic"

	"cogentcore.org/tint/base/keylist"
)

// Context is the owner of cell ids and of the notification batch state
// for a set of cells. A program typically creates one Context at startup
// and passes it to every constructor.
type Context struct {
	lastID atomic.Uint64

	// mu protects the batch state.
	mu sync.Mutex

	// depth is the nesting depth of [Context.Batch] calls.
	depth int

	// pending are the notifications deferred during a batch, keyed by cell id.
	pending keylist.List[uint64, func()]
}

// NewContext returns a new [Context] with its id counter at zero.
func NewContext() *Context {
	return &Context{}
}

// NextID returns a new id, unique within this context and
// strictly greater than any id it returned before. The first id is 1.
func (c *Context) NextID() uint64 {
	return c.lastID.Add(1)
}

// Batch calls fn and defers every cell notification triggered while it
// runs until it returns. The deferred notifications are then run in the
// order they were first requested, and a cell that is already pending is
// not queued again, so a cell that depends on several cells changed within
// the batch recomputes once. Notifications triggered while flushing are
// deferred and coalesced in the same way, until nothing remains pending.
//
// Batches nest; only the outermost call flushes. Cell values read inside
// fn may be stale for derived cells, which recompute during the flush.
// Notifications from other goroutines during a batch are also deferred,
// and are run by the goroutine that flushes.
func (c *Context) Batch(fn func()) {
	c.mu.Lock()
	c.depth++
	c.mu.Unlock()
	defer c.endBatch()
	fn()
}

// InBatch returns whether a [Context.Batch] is in progress.
func (c *Context) InBatch() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.depth > 0
}

// endBatch flushes the pending notifications if this is the
// outermost batch. The depth stays positive while flushing so that
// downstream notifications are queued rather than run recursively.
func (c *Context) endBatch() {
	c.mu.Lock()
	if c.depth > 1 {
		c.depth--
		c.mu.Unlock()
		return
	}
	for c.pending.Len() > 0 {
		id := c.pending.Keys[0]
		fn := c.pending.Values[0]
		c.pending.DeleteByKey(id)
		c.mu.Unlock()
		c.runPending(fn)
		c.mu.Lock()
	}
	c.depth--
	c.mu.Unlock()
}

// runPending runs a deferred notification. If it panics, the batch
// state is reset so that later notifications are not deferred forever.
func (c *Context) runPending(fn func()) {
	done := false
	defer func() {
		if !done {
			c.mu.Lock()
			c.depth = 0
			c.pending.Reset()
			c.mu.Unlock()
		}
	}()
	fn()
	done = true
}

// deferNotify queues the notification fn for the cell with the given id
// if a batch is in progress, returning false otherwise.
func (c *Context) deferNotify(id uint64, fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.depth == 0 {
		return false
	}
	if _, ok := c.pending.At(id); !ok {
		c.pending.Set(id, fn)
	}
	return true
}
