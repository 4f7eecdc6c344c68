// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactive

// Signal is an [Observable] without a value, for sources of change
// that are not cells, such as file system events. The zero value is
// ready to use.
type Signal struct {
	obs observers[struct{}]
}

// NewSignal returns a new [Signal].
func NewSignal() *Signal {
	return &Signal{}
}

// AddObserver adds fn to be called on every [Signal.Emit].
func (s *Signal) AddObserver(id uint64, fn func()) Removal {
	return s.obs.addSimple(id, fn)
}

// Emit calls every observer in registration order.
func (s *Signal) Emit() {
	simple, _ := s.obs.snapshot()
	for _, e := range simple {
		e.fn()
	}
}

// NumObservers returns the number of registered observers.
func (s *Signal) NumObservers() int {
	return s.obs.len()
}
