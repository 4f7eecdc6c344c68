// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"fmt"
	"image/color"
	"sync"

	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/colors/cam/hct"
	"cogentcore.org/tint/math32"
)

// TonalPalette is a family of colors sharing one hue and chroma, in
// which only the tone varies. Colors are computed on demand and
// cached, so a palette is safe for concurrent use.
type TonalPalette struct {

	// Hue is the HCT hue shared by all colors of the palette.
	Hue float32

	// Chroma is the requested HCT chroma of the palette. Individual
	// tones may have a lower chroma when it is out of gamut.
	Chroma float32

	// KeyColor is the representative color of the palette.
	KeyColor hct.HCT

	mu    sync.Mutex
	tones map[float32]cie.ARGB
}

// NewTonalPalette returns a new [TonalPalette] with the given hue and chroma.
// Its key color is the color of the palette closest to tone 50.
func NewTonalPalette(hue, chroma float32) *TonalPalette {
	hue = math32.SanitizeDegrees(hue)
	return &TonalPalette{Hue: hue, Chroma: chroma, KeyColor: hct.New(hue, chroma, 50)}
}

// TonalPaletteFromHCT returns a new [TonalPalette] with the hue and
// chroma of the given color, which is also its key color.
func TonalPaletteFromHCT(h hct.HCT) *TonalPalette {
	return &TonalPalette{Hue: h.Hue, Chroma: h.Chroma, KeyColor: h}
}

// TonalPaletteFromColor returns a new [TonalPalette] for the given color.
func TonalPaletteFromColor(c color.Color) *TonalPalette {
	return TonalPaletteFromHCT(hct.FromColor(c))
}

// Tone returns the color of the palette at the given tone (0-100).
// It uses the cached value if it exists, and it caches the value
// if it is not already.
func (tp *TonalPalette) Tone(tone float32) cie.ARGB {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	if c, ok := tp.tones[tone]; ok {
		return c
	}
	if tp.tones == nil {
		tp.tones = map[float32]cie.ARGB{}
	}
	c := hct.Solve(tp.Hue, tp.Chroma, tone)
	tp.tones[tone] = c
	return c
}

// HCT returns the [hct.HCT] of the palette at the given tone.
func (tp *TonalPalette) HCT(tone float32) hct.HCT {
	return hct.FromARGB(tp.Tone(tone))
}

// AbsTone returns the color at the given absolute
// tone on a scale of 0 to 100, as a [color.RGBA].
func (tp *TonalPalette) AbsTone(tone int) color.RGBA {
	argb := tp.Tone(float32(tone))
	return color.RGBA{uint8(argb >> 16), uint8(argb >> 8), uint8(argb), 255}
}

func (tp *TonalPalette) String() string {
	return fmt.Sprintf("TonalPalette(hue: %g, chroma: %g)", tp.Hue, tp.Chroma)
}
