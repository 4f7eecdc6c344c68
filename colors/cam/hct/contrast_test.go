// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"testing"

	"cogentcore.org/tint/base/tolassert"
	"cogentcore.org/tint/colors/cam/cie"
	"github.com/stretchr/testify/assert"
)

func TestARGBContrastRatio(t *testing.T) {
	type data struct {
		a    cie.ARGB
		b    cie.ARGB
		want float32
	}
	tests := []data{
		{0xffffffff, 0xff000000, 21},
		{0xff000000, 0xffffffff, 21},
		{0xff646464, 0xff646464, 1},
		{0xff0000ff, 0xffffffff, 8.59},
		{0xff6750a4, 0xffffffff, 6.44},
	}
	for i, test := range tests {
		res := ARGBContrastRatio(test.a, test.b)
		tolassert.EqualTol(t, test.want, res, 0.05, i)
		tolassert.EqualTol(t, ToneContrastRatio(cie.LFromARGB(test.a), cie.LFromARGB(test.b)), res, 0.01, i)
	}
}

func TestToneContrastRatio(t *testing.T) {
	type data struct {
		a    float32
		b    float32
		want float32
	}
	tests := []data{
		{0, 100, 21},
		{100, 0, 21},
		{50, 50, 1},
		{100, 32.302586, 8.59},
		{-20, 120, 21},
	}
	for i, test := range tests {
		res := ToneContrastRatio(test.a, test.b)
		tolassert.EqualTol(t, test.want, res, 0.1, i)
		tolassert.Equal(t, res, ToneContrastRatio(test.b, test.a), i)
	}
	tolassert.Equal(t, 21, ContrastRatioOfYs(0, 100))
	tolassert.Equal(t, ContrastRatioOfYs(20, 60), ContrastRatioOfYs(60, 20))
}

func TestContrastToneLighter(t *testing.T) {
	type data struct {
		tone  float32
		ratio float32
		want  float32
	}
	tests := []data{
		{0, 21, Unreachable},
		{100, 21, Unreachable},
		{50, 1, 50.4},
		{60, 18, Unreachable},
		{-1, 2, Unreachable},
		{101, 2, Unreachable},
		{10, 4.5, 55.024},
	}
	for i, test := range tests {
		res := ContrastToneLighter(test.tone, test.ratio)
		tolassert.EqualTol(t, test.want, res, 0.05, i)
		if res != Unreachable {
			assert.GreaterOrEqual(t, res, test.tone, i)
			assert.GreaterOrEqual(t, ToneContrastRatio(res, test.tone), test.ratio-ratioSlack, i)
		}
	}
	tolassert.Equal(t, 100, ContrastToneLighterUnsafe(0, 21))
	tolassert.Equal(t, 100, ContrastToneLighterUnsafe(60, 18))
	tolassert.EqualTol(t, 50.4, ContrastToneLighterUnsafe(50, 1), 0.05)
}

func TestContrastToneDarker(t *testing.T) {
	type data struct {
		tone  float32
		ratio float32
		want  float32
	}
	tests := []data{
		{100, 21, Unreachable},
		{0, 21, Unreachable},
		{50, 1, 49.6},
		{100, 8.59, 31.910},
		{50, 4.5, 1.444},
		{90, 4.5, 42.465},
		{40, 7, Unreachable},
		{101, 2, Unreachable},
	}
	for i, test := range tests {
		res := ContrastToneDarker(test.tone, test.ratio)
		tolassert.EqualTol(t, test.want, res, 0.05, i)
		if res != Unreachable {
			assert.LessOrEqual(t, res, test.tone, i)
			assert.GreaterOrEqual(t, ToneContrastRatio(res, test.tone), test.ratio-ratioSlack, i)
		}
	}
	tolassert.Equal(t, 0, ContrastToneDarkerUnsafe(100, 21))
	tolassert.Equal(t, 0, ContrastToneDarkerUnsafe(40, 7))
	tolassert.EqualTol(t, 1.444, ContrastToneDarkerUnsafe(50, 4.5), 0.05)
}
