// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/colors/cam/hct"
)

// CorePalette is the set of tonal palettes that a static [Scheme]
// is built from: three accent palettes, two neutral palettes,
// and the error palette.
type CorePalette struct {
	A1, A2, A3 *TonalPalette
	N1, N2     *TonalPalette
	Error      *TonalPalette
}

// NewCorePalette returns the [CorePalette] for the given source color.
// The primary palette keeps a chroma of at least 48.
func NewCorePalette(argb cie.ARGB) *CorePalette {
	h := hct.FromARGB(argb)
	return &CorePalette{
		A1:    NewTonalPalette(h.Hue, max(48, h.Chroma)),
		A2:    NewTonalPalette(h.Hue, 16),
		A3:    NewTonalPalette(h.Hue+60, 24),
		N1:    NewTonalPalette(h.Hue, 4),
		N2:    NewTonalPalette(h.Hue, 8),
		Error: NewTonalPalette(25, 84),
	}
}

// NewContentCorePalette returns the [CorePalette] for the given source
// color that stays close to its chroma, for content-derived schemes.
func NewContentCorePalette(argb cie.ARGB) *CorePalette {
	h := hct.FromARGB(argb)
	return &CorePalette{
		A1:    NewTonalPalette(h.Hue, h.Chroma),
		A2:    NewTonalPalette(h.Hue, h.Chroma/3),
		A3:    NewTonalPalette(h.Hue+60, h.Chroma/2),
		N1:    NewTonalPalette(h.Hue, min(h.Chroma/12, 4)),
		N2:    NewTonalPalette(h.Hue, min(h.Chroma/6, 8)),
		Error: NewTonalPalette(25, 84),
	}
}
