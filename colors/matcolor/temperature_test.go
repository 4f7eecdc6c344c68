// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"testing"

	"cogentcore.org/tint/base/tolassert"
	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/colors/cam/hct"
	"cogentcore.org/tint/math32"
	"github.com/stretchr/testify/assert"
)

func TestRawTemperature(t *testing.T) {
	tests := []struct {
		argb cie.ARGB
		want float32
	}{
		{0xff0000ff, -1.393},
		{0xffff0000, 2.351},
		{0xff00ff00, -0.267},
		{0xffffffff, -0.5},
		{0xff000000, -0.5},
	}
	for _, test := range tests {
		tolassert.EqualTol(t, test.want, RawTemperature(hct.FromARGB(test.argb)), 0.01)
	}
}

func TestRelativeTemperature(t *testing.T) {
	tests := []struct {
		argb cie.ARGB
		want float32
	}{
		{0xff0000ff, 0},
		{0xffff0000, 1},
		{0xff00ff00, 0.467},
		{0xffffffff, 0.5},
		{0xff000000, 0.5},
	}
	for _, test := range tests {
		tc := NewTemperatureCache(hct.FromARGB(test.argb))
		tolassert.EqualTol(t, test.want, tc.InputRelativeTemperature(), 0.02)
	}
}

// assertNearHue asserts that two hues are within tol degrees.
func assertNearHue(t *testing.T, want, got, tol float32, msgAndArgs ...any) {
	t.Helper()
	assert.LessOrEqual(t, math32.DifferenceDegrees(want, got), tol, msgAndArgs...)
}

func TestComplement(t *testing.T) {
	tests := []struct {
		argb, want cie.ARGB
	}{
		{0xff0000ff, 0xff9d0002},
		{0xffff0000, 0xff007bfc},
		{0xff00ff00, 0xffffd2c9},
	}
	for _, test := range tests {
		got := NewTemperatureCache(hct.FromARGB(test.argb)).Complement()
		assertNearHue(t, hct.FromARGB(test.want).Hue, got.Hue, 2, test.argb)
	}
	white := hct.FromARGB(0xffffffff)
	assert.Equal(t, cie.ARGB(0xffffffff), NewTemperatureCache(white).Complement().ARGB())
}

func TestAnalogous(t *testing.T) {
	blue := hct.FromARGB(0xff0000ff)
	tc := NewTemperatureCache(blue)
	got := tc.Analogous(5, 12)
	want := []cie.ARGB{0xff00590c, 0xff00564e, 0xff0000ff, 0xff6700cc, 0xff81009f}
	if assert.Len(t, got, len(want)) {
		assert.Equal(t, blue, got[2])
		for i, w := range want {
			assertNearHue(t, hct.FromARGB(w).Hue, got[i].Hue, 3, i)
		}
	}
	assert.Len(t, tc.Analogous(3, 6), 3)

	gray := NewTemperatureCache(hct.FromARGB(0xff808080))
	assert.Len(t, gray.Analogous(5, 12), 5)
}

func TestRelativeTemperatureZeroRange(t *testing.T) {
	black := NewTemperatureCache(hct.FromARGB(0xff000000))
	assert.Equal(t, float32(0.5), black.RelativeTemperature(hct.FromARGB(0xff000000)))
	assert.Equal(t, float32(0.5), black.InputRelativeTemperature())

	tc := &TemperatureCache{}
	tc.once.Do(func() {})
	tc.coldestTemp, tc.warmestTemp = 0.3, 0.3
	assert.Equal(t, float32(0.5), tc.relative(1.2))
	assert.Equal(t, float32(0.5), tc.relative(-0.5))
}

func TestWarmestColdest(t *testing.T) {
	tc := NewTemperatureCache(hct.FromARGB(0xff6750a4))
	w, c := tc.Warmest(), tc.Coldest()
	assert.Greater(t, RawTemperature(w), RawTemperature(c))
	tolassert.EqualTol(t, 1, tc.RelativeTemperature(w), 0.05)
	tolassert.EqualTol(t, 0, tc.RelativeTemperature(c), 0.05)
}
