// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"testing"

	"cogentcore.org/tint/base/tolassert"
	"cogentcore.org/tint/colors/cam/hct"
	"github.com/stretchr/testify/assert"
)

func TestContrastCurve(t *testing.T) {
	cc := NewContrastCurve(3, 4.5, 7, 11)
	tolassert.Equal(t, 3, cc.Get(-2))
	tolassert.Equal(t, 3, cc.Get(-1))
	tolassert.Equal(t, 3.75, cc.Get(-0.5))
	tolassert.Equal(t, 4.5, cc.Get(0))
	tolassert.Equal(t, 5.75, cc.Get(0.25))
	tolassert.Equal(t, 7, cc.Get(0.5))
	tolassert.Equal(t, 9, cc.Get(0.75))
	tolassert.Equal(t, 11, cc.Get(1))
	tolassert.Equal(t, 11, cc.Get(3))
}

func TestForegroundTone(t *testing.T) {
	tolassert.EqualTol(t, 55.024, ForegroundTone(10, 4.5), 0.01)
	tolassert.EqualTol(t, 1.444, ForegroundTone(50, 4.5), 0.01)
	tolassert.EqualTol(t, 42.465, ForegroundTone(90, 4.5), 0.01)
	tolassert.EqualTol(t, 91.539, ForegroundTone(55, 3), 0.01)
	tolassert.EqualTol(t, 29.116, ForegroundTone(60, 3), 0.01)
	tolassert.Equal(t, 0, ForegroundTone(100, 21))
	tolassert.Equal(t, 100, ForegroundTone(0, 21))
}

func TestForegroundToneRatio(t *testing.T) {
	for _, ratio := range []float32{1.5, 3, 4.5, 7} {
		for bg := range 101 {
			bgTone := float32(bg)
			fg := ForegroundTone(bgTone, ratio)
			// 4.5 is reachable from every background; 7 is not from the middle tones
			if ratio <= 4.5 {
				assert.GreaterOrEqual(t, hct.ToneContrastRatio(bgTone, fg), ratio-0.04, "bg %g ratio %g", bgTone, ratio)
			}
			assert.True(t, fg >= 0 && fg <= 100)
		}
	}
}

func TestLightForeground(t *testing.T) {
	assert.True(t, TonePrefersLightForeground(59.4))
	assert.False(t, TonePrefersLightForeground(59.5))
	assert.True(t, ToneAllowsLightForeground(49.4))
	assert.False(t, ToneAllowsLightForeground(50))
	assert.Equal(t, float32(49), EnableLightForeground(55))
	assert.Equal(t, float32(40), EnableLightForeground(40))
	assert.Equal(t, float32(70), EnableLightForeground(70))
}

func TestTonePolarity(t *testing.T) {
	a, b := &DynamicColor{Name: "a"}, &DynamicColor{Name: "b"}
	tests := []struct {
		polarity    TonePolarity
		light, dark bool
	}{
		{Darker, false, true},
		{Lighter, true, false},
		{Nearer, true, true},
		{Farther, false, false},
	}
	for _, test := range tests {
		tp := NewToneDeltaPair(a, b, 10, test.polarity, false)
		assert.Equal(t, test.light, tp.aIsNearer(false), test.polarity.String())
		assert.Equal(t, test.dark, tp.aIsNearer(true), test.polarity.String())
	}
	assert.Equal(t, "nearer", Nearer.String())
}
