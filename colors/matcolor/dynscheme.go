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
	"fmt"
	"sync"

	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/colors/cam/hct"
	"cogentcore.org/tint/math32"
)

// DynamicScheme is a color scheme whose role colors are resolved on
// demand by [DynamicColor] so that they meet their contrast
// requirements at the scheme's contrast level. Resolved tones
// are cached, and a scheme is safe for concurrent use.
type DynamicScheme struct {

	// SourceColor is the color the scheme is derived from
	SourceColor hct.HCT

	// Variant is the style of the scheme
	Variant Variant

	// IsDark is whether the scheme is in dark mode
	IsDark bool

	// ContrastLevel is the contrast level in [-1, 1]: 0 is the standard
	// contrast, -1 the reduced contrast, 0.5 medium and 1 high contrast.
	ContrastLevel float32

	PrimaryPalette        *TonalPalette
	SecondaryPalette      *TonalPalette
	TertiaryPalette       *TonalPalette
	NeutralPalette        *TonalPalette
	NeutralVariantPalette *TonalPalette
	ErrorPalette          *TonalPalette

	mu    sync.Mutex
	tones map[string]float32
}

// Palettes holds the five palettes that define a [DynamicScheme].
type Palettes struct {
	Primary, Secondary, Tertiary, Neutral, NeutralVariant *TonalPalette
}

// NewDynamicScheme returns a new [DynamicScheme] with the given palettes.
// The error palette is always hue 25 with chroma 84, and the contrast
// level is clamped to [-1, 1].
func NewDynamicScheme(source hct.HCT, variant Variant, isDark bool, contrastLevel float32, p Palettes) *DynamicScheme {
	return &DynamicScheme{
		SourceColor:           source,
		Variant:               variant,
		IsDark:                isDark,
		ContrastLevel:         math32.Clamp(contrastLevel, -1, 1),
		PrimaryPalette:        p.Primary,
		SecondaryPalette:      p.Secondary,
		TertiaryPalette:       p.Tertiary,
		NeutralPalette:        p.Neutral,
		NeutralVariantPalette: p.NeutralVariant,
		ErrorPalette:          NewTonalPalette(25, 84),
	}
}

// NewScheme returns a new [DynamicScheme] of the given variant
// for the given source color.
func NewScheme(variant Variant, source hct.HCT, isDark bool, contrastLevel float32) *DynamicScheme {
	if !variant.IsValid() {
		variant = TonalSpot
	}
	return NewDynamicScheme(source, variant, isDark, contrastLevel, variantPalettes[variant](source))
}

// NewSchemeFromARGB is like [NewScheme], with the source color
// given as a packed ARGB value.
func NewSchemeFromARGB(variant Variant, source cie.ARGB, isDark bool, contrastLevel float32) *DynamicScheme {
	return NewScheme(variant, hct.FromARGB(source), isDark, contrastLevel)
}

func (s *DynamicScheme) String() string {
	mode := "light"
	if s.IsDark {
		mode = "dark"
	}
	return fmt.Sprintf("DynamicScheme(%s, %s, contrast %g, source %v)", s.Variant, mode, s.ContrastLevel, s.SourceColor)
}

func (s *DynamicScheme) cachedTone(name string) (float32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tones[name]
	return t, ok
}

func (s *DynamicScheme) cacheTone(name string, tone float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tones == nil {
		s.tones = map[string]float32{}
	}
	s.tones[name] = tone
}

// isFidelity is whether the scheme keeps its primary
// close to the source color.
func (s *DynamicScheme) isFidelity() bool {
	return s.Variant == Fidelity || s.Variant == Content
}

func (s *DynamicScheme) isMonochrome() bool {
	return s.Variant == Monochrome
}

// RotatedHue returns the hue of the source color rotated by the
// rotation of the hue range it falls into. hues must be sorted in
// increasing order, and rotations[i] applies to the range from
// hues[i] to hues[i+1]. The hue is returned unrotated if it falls
// into no range.
func RotatedHue(source hct.HCT, hues, rotations []float32) float32 {
	sourceHue := source.Hue
	if len(rotations) == 1 {
		return math32.SanitizeDegrees(sourceHue + rotations[0])
	}
	for i := 0; i <= len(hues)-2 && i < len(rotations); i++ {
		thisHue := hues[i]
		nextHue := hues[i+1]
		if thisHue < sourceHue && sourceHue < nextHue {
			return math32.SanitizeDegrees(sourceHue + rotations[i])
		}
	}
	return sourceHue
}

var (
	vibrantHues               = []float32{0, 41, 61, 101, 131, 181, 251, 301, 360}
	vibrantSecondaryRotations = []float32{18, 15, 10, 12, 15, 18, 15, 12, 12}
	vibrantTertiaryRotations  = []float32{35, 30, 20, 25, 30, 35, 30, 25, 25}

	expressiveHues               = []float32{0, 21, 51, 121, 151, 191, 271, 321, 360}
	expressiveSecondaryRotations = []float32{45, 95, 45, 20, 45, 90, 45, 45, 45}
	expressiveTertiaryRotations  = []float32{120, 120, 20, 45, 20, 15, 20, 120, 120}
)

// variantPalettes are the palette rules of each variant.
var variantPalettes = [VariantN]func(src hct.HCT) Palettes{
	Monochrome: func(src hct.HCT) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(src.Hue, 0),
			Secondary:      NewTonalPalette(src.Hue, 0),
			Tertiary:       NewTonalPalette(src.Hue, 0),
			Neutral:        NewTonalPalette(src.Hue, 0),
			NeutralVariant: NewTonalPalette(src.Hue, 0),
		}
	},
	Neutral: func(src hct.HCT) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(src.Hue, 12),
			Secondary:      NewTonalPalette(src.Hue, 8),
			Tertiary:       NewTonalPalette(src.Hue, 16),
			Neutral:        NewTonalPalette(src.Hue, 2),
			NeutralVariant: NewTonalPalette(src.Hue, 2),
		}
	},
	TonalSpot: func(src hct.HCT) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(src.Hue, 36),
			Secondary:      NewTonalPalette(src.Hue, 16),
			Tertiary:       NewTonalPalette(src.Hue+60, 24),
			Neutral:        NewTonalPalette(src.Hue, 6),
			NeutralVariant: NewTonalPalette(src.Hue, 8),
		}
	},
	Vibrant: func(src hct.HCT) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(src.Hue, 200),
			Secondary:      NewTonalPalette(RotatedHue(src, vibrantHues, vibrantSecondaryRotations), 24),
			Tertiary:       NewTonalPalette(RotatedHue(src, vibrantHues, vibrantTertiaryRotations), 32),
			Neutral:        NewTonalPalette(src.Hue, 10),
			NeutralVariant: NewTonalPalette(src.Hue, 12),
		}
	},
	Expressive: func(src hct.HCT) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(src.Hue+240, 40),
			Secondary:      NewTonalPalette(RotatedHue(src, expressiveHues, expressiveSecondaryRotations), 24),
			Tertiary:       NewTonalPalette(RotatedHue(src, expressiveHues, expressiveTertiaryRotations), 32),
			Neutral:        NewTonalPalette(src.Hue+15, 8),
			NeutralVariant: NewTonalPalette(src.Hue+15, 12),
		}
	},
	Fidelity: func(src hct.HCT) Palettes {
		tertiary := FixIfDisliked(NewTemperatureCache(src).Complement())
		return fidelityPalettes(src, tertiary)
	},
	Content: func(src hct.HCT) Palettes {
		tertiary := FixIfDisliked(NewTemperatureCache(src).Analogous(3, 6)[2])
		return fidelityPalettes(src, tertiary)
	},
	Rainbow: func(src hct.HCT) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(src.Hue, 48),
			Secondary:      NewTonalPalette(src.Hue, 16),
			Tertiary:       NewTonalPalette(src.Hue+60, 24),
			Neutral:        NewTonalPalette(src.Hue, 0),
			NeutralVariant: NewTonalPalette(src.Hue, 0),
		}
	},
	FruitSalad: func(src hct.HCT) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(src.Hue-50, 48),
			Secondary:      NewTonalPalette(src.Hue-50, 36),
			Tertiary:       NewTonalPalette(src.Hue, 36),
			Neutral:        NewTonalPalette(src.Hue, 10),
			NeutralVariant: NewTonalPalette(src.Hue, 16),
		}
	},
}

// fidelityPalettes returns the palettes of the variants that
// keep the chroma of the source color.
func fidelityPalettes(src, tertiary hct.HCT) Palettes {
	return Palettes{
		Primary:        NewTonalPalette(src.Hue, src.Chroma),
		Secondary:      NewTonalPalette(src.Hue, max(src.Chroma-32, src.Chroma*0.5)),
		Tertiary:       TonalPaletteFromHCT(tertiary),
		Neutral:        NewTonalPalette(src.Hue, src.Chroma/8),
		NeutralVariant: NewTonalPalette(src.Hue, src.Chroma/8+4),
	}
}
