// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/colors/cam/hct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		hex  string
		want color.RGBA
	}{
		{"#6750A4", color.RGBA{0x67, 0x50, 0xa4, 0xff}},
		{"6750a4", color.RGBA{0x67, 0x50, 0xa4, 0xff}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"#01020380", color.RGBA{1, 2, 3, 0x80}},
	}
	for _, test := range tests {
		c, err := FromHex(test.hex)
		require.NoError(t, err, test.hex)
		assert.Equal(t, test.want, c, test.hex)
	}
	for _, bad := range []string{"#12", "#12345", "#gggggg", ""} {
		_, err := FromHex(bad)
		assert.Error(t, err, bad)
	}
	assert.Panics(t, func() { MustFromHex("nope") })
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#6750A4", AsHex(color.RGBA{0x67, 0x50, 0xa4, 0xff}))
	assert.Equal(t, "#01020380", AsHex(color.RGBA{1, 2, 3, 0x80}))
	assert.Equal(t, "nil", AsHex(nil))
	c := MustFromHex(AsHex(color.RGBA{12, 200, 99, 255}))
	assert.Equal(t, color.RGBA{12, 200, 99, 255}, c)
}

func TestFromName(t *testing.T) {
	c, err := FromName("darkorchid")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x99, 0x32, 0xcc, 0xff}, c)

	c, err = FromName("Blue")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, c)

	_, err = FromName("notacolor")
	assert.Error(t, err)
	assert.Equal(t, color.RGBA{}, LogFromName("notacolor"))
	assert.Panics(t, func() { MustFromName("notacolor") })
}

func TestFromString(t *testing.T) {
	c, err := FromString("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = FromString(" Green ")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 128, 0, 255}, c)

	c, err = FromString("none")
	require.NoError(t, err)
	assert.True(t, IsNil(c))

	c, err = FromString("hct(0, 0, 50)")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x77, 0x77, 0x77, 0xff}, c)

	_, err = FromString("hct(1, 2)")
	assert.Error(t, err)
	_, err = FromString("hct(a, b, c)")
	assert.Error(t, err)
	_, err = FromString("chartreusey")
	assert.Error(t, err)
}

func TestARGB(t *testing.T) {
	assert.Equal(t, color.RGBA{0x67, 0x50, 0xa4, 0xff}, FromARGB(0xff6750a4))
	assert.Equal(t, cie.ARGB(0xff6750a4), AsARGB(color.RGBA{0x67, 0x50, 0xa4, 0xff}))
	assert.Equal(t, cie.ARGB(0xff000000), AsARGB(nil))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, color.RGBA{155, 55, 0, 255}, Inverse(color.RGBA{100, 200, 255, 255}))
	assert.Equal(t, color.RGBA{100, 0, 0, 100}, WithA(color.RGBA{255, 0, 0, 255}, 100))
	assert.Equal(t, "rgba(1, 2, 3, 4)", AsString(color.RGBA{1, 2, 3, 4}))
	assert.True(t, IsNil(nil))
	assert.False(t, IsNil(color.Black))
}

func TestSpaced(t *testing.T) {
	seen := map[color.RGBA]bool{}
	for i := range 16 {
		c := Spaced(i, false)
		assert.False(t, seen[c], i)
		seen[c] = true
	}
	h := hct.FromColor(Spaced(0, false))
	assert.InDelta(t, 255, h.Hue, 5)
	assert.InDelta(t, 65, h.Tone, 1)
	assert.NotEqual(t, Spaced(3, false), Spaced(3, true))
}
