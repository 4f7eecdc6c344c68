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

// Package hct implements the HCT (hue, chroma, tone) color space,
// which combines the CAM16 hue and chroma with the L* tone of L*a*b*.
package hct

import (
	"fmt"
	"image/color"

	"cogentcore.org/tint/colors/cam/cam16"
	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/math32"
)

// HCT represents a color as hue, chroma, and tone. HCT is a color system
// that provides a perceptually accurate color measurement system that can
// also accurately render what colors will appear as in different lighting
// environments.
type HCT struct {

	// Hue (h) is the spectral identity of the color
	// (red, green, blue etc) in degrees (0-360)
	Hue float32 `min:"0" max:"360"`

	// Chroma (C) is the colorfulness or saturation of the color.
	// Grayscale colors have no chroma, and fully saturated ones
	// have high chroma. The maximum varies as a function of hue
	// and tone, but 150 is a general upper bound.
	Chroma float32 `min:"0" max:"150"`

	// Tone is the L* component from the LAB (L*a*b*) color system,
	// which is linear in human perception of lightness.
	// It ranges from 0 to 100.
	Tone float32 `min:"0" max:"100"`

	// sRGB standard gamma-corrected 0-1 normalized RGB representation
	// of the color. Critically, components are not premultiplied by alpha.
	R, G, B, A float32
}

// New returns a new HCT representation for the given parameters:
// hue = 0..360
// chroma = 0..? depends on other params
// tone = 0..100
// It also computes and sets the sRGB normalized, gamma corrected R,G,B values
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
// The resulting hue, chroma, and tone are those of the in-gamut color.
func New(hue, chroma, tone float32) HCT {
	return FromARGB(Solve(hue, chroma, tone))
}

// FromARGB returns the HCT representation of the given opaque [cie.ARGB] color.
func FromARGB(argb cie.ARGB) HCT {
	r, g, b := cie.RGBFromARGB(argb)
	return SRGBToHCT(float32(r)/255, float32(g)/255, float32(b)/255)
}

// FromColor constructs a new HCT color from a standard [color.Color].
func FromColor(c color.Color) HCT {
	return Uint32ToHCT(c.RGBA())
}

// Model is the standard [color.Model] that converts colors to HCT.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HCT); ok {
		return h
	}
	return FromColor(c)
}

// RGBA implements the color.Color interface.
// Performs the premultiplication of the RGB components by alpha at this point.
func (h HCT) RGBA() (r, g, b, a uint32) {
	return cie.SRGBFloatToUint32(h.R, h.G, h.B, h.A)
}

// AsRGBA returns a standard color.RGBA type
func (h HCT) AsRGBA() color.RGBA {
	r, g, b, a := cie.SRGBFloatToUint8(h.R, h.G, h.B, h.A)
	return color.RGBA{r, g, b, a}
}

// ARGB returns the color as an opaque [cie.ARGB] value, ignoring alpha.
func (h HCT) ARGB() cie.ARGB {
	return cie.ARGBFromRGB(to8(h.R), to8(h.G), to8(h.B))
}

func to8(v float32) uint8 {
	return uint8(math32.Round(math32.Clamp(v, 0, 1) * 255))
}

// SetUint32 sets components from unsigned 32bit integers (alpha-premultiplied)
func (h *HCT) SetUint32(r, g, b, a uint32) {
	if a == 0 {
		h.SetToNil()
		return
	}
	fr, fg, fb, fa := cie.SRGBUint32ToFloat(r, g, b, a)
	*h = SRGBToHCT(fr, fg, fb)
	h.A = fa
}

// SetColor sets from a standard color.Color
func (h *HCT) SetColor(ci color.Color) {
	if ci == nil {
		h.SetToNil()
		return
	}
	h.SetUint32(ci.RGBA())
}

// SetToNil sets the color to fully transparent black.
func (h *HCT) SetToNil() {
	*h = SRGBToHCT(0, 0, 0)
	h.A = 0
}

// SetHue sets the hue of this color. Chroma may decrease because chroma has a
// different maximum for any given hue and tone.
// 0 <= hue < 360; invalid values are corrected.
func (h *HCT) SetHue(hue float32) {
	*h = h.WithHue(hue)
}

// WithHue is like [HCT.SetHue] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithHue(hue float32) HCT {
	return h.with(hue, h.Chroma, h.Tone)
}

// SetChroma sets the chroma of this color (0 to max that depends on other params),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h *HCT) SetChroma(chroma float32) {
	*h = h.WithChroma(chroma)
}

// WithChroma is like [HCT.SetChroma] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithChroma(chroma float32) HCT {
	return h.with(h.Hue, chroma, h.Tone)
}

// SetTone sets the tone of this color (0 < tone < 100),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h *HCT) SetTone(tone float32) {
	*h = h.WithTone(tone)
}

// WithTone is like [HCT.SetTone] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithTone(tone float32) HCT {
	return h.with(h.Hue, h.Chroma, tone)
}

// with returns a new color with the given values and the alpha of h.
func (h HCT) with(hue, chroma, tone float32) HCT {
	a := h.A
	n := New(hue, chroma, math32.Clamp(tone, 0, 100))
	n.A = a
	return n
}

// SRGBToHCT returns an HCT from given SRGB color coordinates,
// under standard viewing conditions. The RGB value range is 0-1,
// and RGB values have gamma correction. Alpha is always 1.
func SRGBToHCT(r, g, b float32) HCT {
	x, y, z := cie.SRGBToXYZ100(r, g, b)
	cam := cam16.FromXYZ(x, y, z)
	return HCT{Hue: cam.Hue, Chroma: cam.Chroma, Tone: cie.YToL(y), R: r, G: g, B: b, A: 1}
}

// Uint32ToHCT returns an HCT from given SRGBA uint32 color coordinates,
// which are used for interchange among image.Color types.
// Uses standard viewing conditions, and RGB values already have gamma correction
// (i.e., they are SRGB values).
func Uint32ToHCT(r, g, b, a uint32) HCT {
	h := HCT{}
	h.SetUint32(r, g, b, a)
	return h
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.Hue, h.Chroma, h.Tone)
}
