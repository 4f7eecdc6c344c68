// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactive

// Map returns a new [Shared] cell holding f applied to the value of src,
// recomputed whenever src notifies.
func Map[S, T any](ctx *Context, src Value[S], f func(S) T) *Shared[T] {
	return NewSharedDynamic(ctx, []Observable{src}, func() T {
		return f(src.Get())
	})
}

// Combine returns a new [Shared] cell holding f applied to the values
// of a and b, recomputed whenever either of them notifies.
func Combine[A, B, T any](ctx *Context, a Value[A], b Value[B], f func(A, B) T) *Shared[T] {
	return NewSharedDynamic(ctx, []Observable{a, b}, func() T {
		return f(a.Get(), b.Get())
	})
}
