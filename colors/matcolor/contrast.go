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

package matcolor

import (
	"cogentcore.org/tint/colors/cam/hct"
	"cogentcore.org/tint/math32"
)

// ContrastCurve holds the contrast ratios to reach at the four standard
// contrast levels. Ratios in between are linearly interpolated.
type ContrastCurve struct {

	// Low is the ratio at contrast level -1
	Low float32

	// Normal is the ratio at contrast level 0
	Normal float32

	// Medium is the ratio at contrast level 0.5
	Medium float32

	// High is the ratio at contrast level 1
	High float32
}

// NewContrastCurve returns a new [ContrastCurve] with the given ratios.
func NewContrastCurve(low, normal, medium, high float32) *ContrastCurve {
	return &ContrastCurve{Low: low, Normal: normal, Medium: medium, High: high}
}

// Get returns the contrast ratio at the given contrast level,
// which is clamped to [-1, 1].
func (cc *ContrastCurve) Get(level float32) float32 {
	switch {
	case level <= -1:
		return cc.Low
	case level < 0:
		return math32.Lerp(cc.Low, cc.Normal, level+1)
	case level < 0.5:
		return math32.Lerp(cc.Normal, cc.Medium, level/0.5)
	case level < 1:
		return math32.Lerp(cc.Medium, cc.High, (level-0.5)/0.5)
	}
	return cc.High
}

// ForegroundTone returns the tone of a foreground color that reaches
// the given contrast ratio against the given background tone, choosing
// the light or dark side according to [TonePrefersLightForeground].
// When the ratio can not be reached, the side with the higher ratio wins.
func ForegroundTone(bgTone, ratio float32) float32 {
	lighterTone := hct.ContrastToneLighterUnsafe(bgTone, ratio)
	darkerTone := hct.ContrastToneDarkerUnsafe(bgTone, ratio)
	lighterRatio := hct.ToneContrastRatio(lighterTone, bgTone)
	darkerRatio := hct.ToneContrastRatio(darkerTone, bgTone)
	if TonePrefersLightForeground(bgTone) {
		// Lighter wins ties that are too small to notice when
		// neither side reaches the ratio.
		negligible := math32.Abs(lighterRatio-darkerRatio) < 0.1 && lighterRatio < ratio && darkerRatio < ratio
		if lighterRatio >= ratio || lighterRatio >= darkerRatio || negligible {
			return lighterTone
		}
		return darkerTone
	}
	if darkerRatio >= ratio || darkerRatio >= lighterRatio {
		return darkerTone
	}
	return lighterTone
}

// TonePrefersLightForeground returns whether content on a background
// of the given tone should be light. Tones up to 60 count as dark
// backgrounds, which also keeps light foregrounds away from the
// awkward 50-59 band.
func TonePrefersLightForeground(tone float32) bool {
	return math32.Round(tone) < 60
}

// ToneAllowsLightForeground returns whether the given tone is dark
// enough for a light foreground, which is true up to tone 49.
func ToneAllowsLightForeground(tone float32) bool {
	return math32.Round(tone) <= 49
}

// EnableLightForeground moves a tone in the 50-59 band down to 49,
// so that it can carry a light foreground.
func EnableLightForeground(tone float32) float32 {
	if TonePrefersLightForeground(tone) && !ToneAllowsLightForeground(tone) {
		return 49
	}
	return tone
}
