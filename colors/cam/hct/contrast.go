// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hct

import (
	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/math32"
)

// Unreachable is the tone returned by [ContrastToneLighter] and
// [ContrastToneDarker] when no tone on the requested side of the
// background reaches the requested contrast ratio.
const Unreachable float32 = -1

const (
	// ratioSlack is how far short of the requested ratio a computed tone
	// may fall and still count as reaching it.
	ratioSlack = 0.04

	// gamutMargin moves a computed tone away from the background, since
	// fitting the final color into the sRGB gamut can shift its tone a little.
	gamutMargin = 0.4
)

// ToneContrastRatio returns the contrast ratio between two tones,
// from 1 to 21. It is symmetric, and tones are clamped to [0, 100].
func ToneContrastRatio(a, b float32) float32 {
	return ContrastRatioOfYs(cie.LToY(math32.Clamp(a, 0, 100)), cie.LToY(math32.Clamp(b, 0, 100)))
}

// ContrastRatioOfYs returns the contrast ratio between two relative
// luminances on the 0-100 Y scale.
func ContrastRatioOfYs(a, b float32) float32 {
	return (max(a, b) + 5) / (min(a, b) + 5)
}

// ARGBContrastRatio returns the contrast ratio between two colors.
// Only their luminance matters, so the hue and chroma are ignored.
func ARGBContrastRatio(a, b cie.ARGB) float32 {
	_, ya, _ := cie.XYZ100FromARGB(a)
	_, yb, _ := cie.XYZ100FromARGB(b)
	return ContrastRatioOfYs(ya, yb)
}

// ContrastToneLighter returns the tone at or above the given tone that
// has the given contrast ratio with it, or [Unreachable] if that tone
// would be above 100 or the given tone is outside [0, 100].
func ContrastToneLighter(tone, ratio float32) float32 {
	if tone < 0 || tone > 100 {
		return Unreachable
	}
	y := cie.LToY(tone)
	return toneAtY(y, ratio*(y+5)-5, ratio, gamutMargin)
}

// ContrastToneDarker returns the tone at or below the given tone that
// has the given contrast ratio with it, or [Unreachable] if that tone
// would be below 0 or the given tone is outside [0, 100].
func ContrastToneDarker(tone, ratio float32) float32 {
	if tone < 0 || tone > 100 {
		return Unreachable
	}
	y := cie.LToY(tone)
	return toneAtY(y, (y+5)/ratio-5, ratio, -gamutMargin)
}

// toneAtY returns the tone of the target luminance shifted by margin, or
// [Unreachable] if the target misses the ratio against the background
// luminance bgY or its tone falls outside [0, 100].
func toneAtY(bgY, targetY, ratio, margin float32) float32 {
	if ContrastRatioOfYs(bgY, targetY) < ratio-ratioSlack {
		return Unreachable
	}
	tone := cie.YToL(targetY) + margin
	if tone < 0 || tone > 100 {
		return Unreachable
	}
	return tone
}

// ContrastToneLighterUnsafe is like [ContrastToneLighter], but it
// returns 100 instead of [Unreachable], which may miss the ratio.
func ContrastToneLighterUnsafe(tone, ratio float32) float32 {
	if t := ContrastToneLighter(tone, ratio); t != Unreachable {
		return t
	}
	return 100
}

// ContrastToneDarkerUnsafe is like [ContrastToneDarker], but it
// returns 0 instead of [Unreachable], which may miss the ratio.
func ContrastToneDarkerUnsafe(tone, ratio float32) float32 {
	if t := ContrastToneDarker(tone, ratio); t != Unreachable {
		return t
	}
	return 0
}
