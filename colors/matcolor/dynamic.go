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
	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/colors/cam/hct"
	"cogentcore.org/tint/math32"
)

// DynamicColor describes how a named color role of a [DynamicScheme]
// is computed: which palette it comes from, its undisturbed tone, and
// the contrast constraints it must satisfy against its backgrounds.
// All functions must be pure functions of the scheme.
type DynamicColor struct {

	// Name is the unique name of the role
	Name string

	// Palette returns the palette the color is taken from.
	Palette func(s *DynamicScheme) *TonalPalette

	// Tone returns the tone of the color before any contrast adjustment.
	Tone func(s *DynamicScheme) float32

	// IsBackground is whether other roles may use this color
	// as their background.
	IsBackground bool

	// Background returns the role this color must contrast against,
	// or nil.
	Background func(s *DynamicScheme) *DynamicColor

	// SecondBackground returns a second role this color must
	// also contrast against, or nil.
	SecondBackground func(s *DynamicScheme) *DynamicColor

	// ContrastCurve gives the contrast ratio to reach against the
	// background at each contrast level. It is required when
	// Background is set.
	ContrastCurve *ContrastCurve

	// ToneDeltaPair returns the tone constraint shared with
	// another role, or nil.
	ToneDeltaPair func(s *DynamicScheme) *ToneDeltaPair
}

// FromPalette returns a [DynamicColor] with the given palette and
// tone functions and no contrast constraints.
func FromPalette(name string, palette func(s *DynamicScheme) *TonalPalette, tone func(s *DynamicScheme) float32) *DynamicColor {
	return &DynamicColor{Name: name, Palette: palette, Tone: tone}
}

// ARGB returns the color of the role in the given scheme.
func (dc *DynamicColor) ARGB(s *DynamicScheme) cie.ARGB {
	return dc.Palette(s).Tone(dc.GetTone(s))
}

// HCT returns the color of the role in the given scheme as an [hct.HCT].
func (dc *DynamicColor) HCT(s *DynamicScheme) hct.HCT {
	return hct.FromARGB(dc.ARGB(s))
}

// GetTone returns the tone of the role in the given scheme after all
// contrast constraints have been applied. Results are cached on the
// scheme.
func (dc *DynamicColor) GetTone(s *DynamicScheme) float32 {
	if t, ok := s.cachedTone(dc.Name); ok {
		return t
	}
	t := math32.Clamp(dc.resolveTone(s), 0, 100)
	s.cacheTone(dc.Name, t)
	return t
}

func (dc *DynamicColor) resolveTone(s *DynamicScheme) float32 {
	decreasingContrast := s.ContrastLevel < 0
	if dc.ToneDeltaPair != nil {
		if pair := dc.ToneDeltaPair(s); pair != nil {
			return dc.resolvePairTone(s, pair, decreasingContrast)
		}
	}

	answer := dc.Tone(s)
	if dc.Background == nil {
		return answer
	}
	bg := dc.Background(s)
	if bg == nil {
		return answer
	}
	bgTone := bg.GetTone(s)
	desiredRatio := dc.ContrastCurve.Get(s.ContrastLevel)
	if hct.ToneContrastRatio(bgTone, answer) < desiredRatio || decreasingContrast {
		answer = ForegroundTone(bgTone, desiredRatio)
	}

	if dc.IsBackground && 50 <= answer && answer < 60 {
		if hct.ToneContrastRatio(49, bgTone) >= desiredRatio {
			answer = 49
		} else {
			answer = 60
		}
	}

	if dc.SecondBackground == nil {
		return answer
	}
	bg2 := dc.SecondBackground(s)
	if bg2 == nil {
		return answer
	}

	// The color must contrast with both backgrounds.
	bgTone1 := bgTone
	bgTone2 := bg2.GetTone(s)
	upper := max(bgTone1, bgTone2)
	lower := min(bgTone1, bgTone2)
	if hct.ToneContrastRatio(upper, answer) >= desiredRatio && hct.ToneContrastRatio(lower, answer) >= desiredRatio {
		return answer
	}

	light := hct.ContrastToneLighter(upper, desiredRatio)
	dark := hct.ContrastToneDarker(lower, desiredRatio)
	if TonePrefersLightForeground(bgTone1) || TonePrefersLightForeground(bgTone2) {
		if light != hct.Unreachable {
			return light
		}
		return 100
	}
	switch {
	case dark != hct.Unreachable:
		return dark
	case light != hct.Unreachable:
		return light
	}
	return 0
}

// resolvePairTone returns the tone of dc as one of the two roles of
// the given pair.
func (dc *DynamicColor) resolvePairTone(s *DynamicScheme, pair *ToneDeltaPair, decreasingContrast bool) float32 {
	nearer, farther := pair.RoleA, pair.RoleB
	if !pair.aIsNearer(s.IsDark) {
		nearer, farther = farther, nearer
	}
	amNearer := dc.Name == nearer.Name
	delta := pair.Delta
	expansionDir := float32(-1)
	if s.IsDark {
		expansionDir = 1
	}

	// Both roles share the background of dc.
	bgTone := dc.Background(s).GetTone(s)

	nContrast := nearer.ContrastCurve.Get(s.ContrastLevel)
	fContrast := farther.ContrastCurve.Get(s.ContrastLevel)

	nTone := nearer.Tone(s)
	if decreasingContrast || hct.ToneContrastRatio(bgTone, nTone) < nContrast {
		nTone = ForegroundTone(bgTone, nContrast)
	}
	fTone := farther.Tone(s)
	if decreasingContrast || hct.ToneContrastRatio(bgTone, fTone) < fContrast {
		fTone = ForegroundTone(bgTone, fContrast)
	}

	if (fTone-nTone)*expansionDir < delta {
		// Expand farther first, then contract nearer if farther is at its limit.
		fTone = math32.Clamp(nTone+delta*expansionDir, 0, 100)
		if (fTone-nTone)*expansionDir < delta {
			nTone = math32.Clamp(fTone-delta*expansionDir, 0, 100)
		}
	}

	// Move out of the 50-59 band, which is neither light nor dark.
	switch {
	case 50 <= nTone && nTone < 60:
		nTone, fTone = leaveAwkwardZone(nTone, fTone, delta, expansionDir)
	case 50 <= fTone && fTone < 60:
		if pair.StayTogether {
			nTone, fTone = leaveAwkwardZone(nTone, fTone, delta, expansionDir)
		} else if expansionDir > 0 {
			fTone = 60
		} else {
			fTone = 49
		}
	}

	if amNearer {
		return nTone
	}
	return fTone
}

// leaveAwkwardZone moves the nearer tone just outside of the 50-59 band
// in the expansion direction and keeps the farther tone at least delta
// away from it.
func leaveAwkwardZone(nTone, fTone, delta, expansionDir float32) (float32, float32) {
	if expansionDir > 0 {
		nTone = 60
		fTone = max(fTone, nTone+delta*expansionDir)
	} else {
		nTone = 49
		fTone = min(fTone, nTone+delta*expansionDir)
	}
	return nTone, math32.Clamp(fTone, 0, 100)
}
