// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyList(t *testing.T) {
	kl := New[string, int]()
	kl.Set("key0", 0)
	kl.Set("key1", 1)
	kl.Set("key2", 2)
	assert.Equal(t, 3, kl.Len())

	v, ok := kl.At("key1")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = kl.At("missing")
	assert.False(t, ok)

	kl.Set("key0", 10)
	assert.Equal(t, []int{10, 1, 2}, kl.Values)

	assert.True(t, kl.DeleteByKey("key1"))
	assert.False(t, kl.DeleteByKey("key1"))
	assert.Equal(t, []string{"key0", "key2"}, kl.Keys)
	assert.Equal(t, 1, kl.IndexByKey("key2"))
	assert.Equal(t, -1, kl.IndexByKey("key1"))

	snap := kl.Clone()
	kl.Set("key3", 3)
	assert.Equal(t, []int{10, 2}, snap)
	assert.Equal(t, "{key0: 10, key2: 2, key3: 3, }", kl.String())

	kl.Reset()
	assert.Equal(t, 0, kl.Len())
	var nl *List[int, int]
	assert.Equal(t, 0, nl.Len())
}
