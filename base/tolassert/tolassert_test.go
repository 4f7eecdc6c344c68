// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func TestEqualTol(t *testing.T) {
	assert.True(t, EqualTol(t, float32(1), 1.05, 0.1))
	assert.True(t, Equal(t, 3.0, 3.0004))

	r := &recorder{}
	assert.False(t, EqualTol(r, float32(1), 1.5, 0.1))
	assert.True(t, r.failed)
}
