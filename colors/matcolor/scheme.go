// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"image/color"

	"cogentcore.org/tint/colors/cam/cie"
)

// Scheme is a static color scheme with fixed tones, built
// from a [CorePalette] without any contrast resolution.
// See [DynamicScheme] for contrast-aware schemes.
type Scheme struct {

	// Primary is the base color of the scheme
	Primary Accent

	// Secondary is a secondary color used for less prominent components
	Secondary Accent

	// Tertiary is a tertiary color used as a contrasting accent
	Tertiary Accent

	// Error is the color used for errors
	Error Accent

	// Background is the color behind scrollable content
	Background color.RGBA

	// OnBackground is the color applied to content on top of [Scheme.Background]
	OnBackground color.RGBA

	// Surface is the color of container surfaces
	Surface color.RGBA

	// OnSurface is the color applied to content on top of [Scheme.Surface]
	OnSurface color.RGBA

	// SurfaceVariant is an alternate surface color
	SurfaceVariant color.RGBA

	// OnSurfaceVariant is the color applied to content on top of [Scheme.SurfaceVariant]
	OnSurfaceVariant color.RGBA

	// Outline is the color of important boundaries
	Outline color.RGBA

	// OutlineVariant is the color of decorative boundaries
	OutlineVariant color.RGBA

	Shadow color.RGBA
	Scrim  color.RGBA

	InverseSurface   color.RGBA
	InverseOnSurface color.RGBA
	InversePrimary   color.RGBA
}

// NewLightScheme returns a new light-themed [Scheme]
// based on the given [CorePalette].
func NewLightScheme(p *CorePalette) Scheme {
	return Scheme{
		Primary:   NewAccentLight(p.A1),
		Secondary: NewAccentLight(p.A2),
		Tertiary:  NewAccentLight(p.A3),
		Error:     NewAccentLight(p.Error),

		Background:       p.N1.AbsTone(99),
		OnBackground:     p.N1.AbsTone(10),
		Surface:          p.N1.AbsTone(99),
		OnSurface:        p.N1.AbsTone(10),
		SurfaceVariant:   p.N2.AbsTone(90),
		OnSurfaceVariant: p.N2.AbsTone(30),
		Outline:          p.N2.AbsTone(50),
		OutlineVariant:   p.N2.AbsTone(80),
		Shadow:           p.N1.AbsTone(0),
		Scrim:            p.N1.AbsTone(0),
		InverseSurface:   p.N1.AbsTone(20),
		InverseOnSurface: p.N1.AbsTone(95),
		InversePrimary:   p.A1.AbsTone(80),
	}
}

// NewDarkScheme returns a new dark-themed [Scheme]
// based on the given [CorePalette].
func NewDarkScheme(p *CorePalette) Scheme {
	return Scheme{
		Primary:   NewAccentDark(p.A1),
		Secondary: NewAccentDark(p.A2),
		Tertiary:  NewAccentDark(p.A3),
		Error:     NewAccentDark(p.Error),

		Background:       p.N1.AbsTone(10),
		OnBackground:     p.N1.AbsTone(90),
		Surface:          p.N1.AbsTone(10),
		OnSurface:        p.N1.AbsTone(90),
		SurfaceVariant:   p.N2.AbsTone(30),
		OnSurfaceVariant: p.N2.AbsTone(80),
		Outline:          p.N2.AbsTone(60),
		OutlineVariant:   p.N2.AbsTone(30),
		Shadow:           p.N1.AbsTone(0),
		Scrim:            p.N1.AbsTone(0),
		InverseSurface:   p.N1.AbsTone(90),
		InverseOnSurface: p.N1.AbsTone(20),
		InversePrimary:   p.A1.AbsTone(40),
	}
}

// MaterialLightColorScheme returns the standard light [Scheme]
// for the given source color.
func MaterialLightColorScheme(argb cie.ARGB) Scheme {
	return NewLightScheme(NewCorePalette(argb))
}

// MaterialDarkColorScheme returns the standard dark [Scheme]
// for the given source color.
func MaterialDarkColorScheme(argb cie.ARGB) Scheme {
	return NewDarkScheme(NewCorePalette(argb))
}

// MaterialLightContentColorScheme returns the light [Scheme] that
// stays close to the chroma of the given source color.
func MaterialLightContentColorScheme(argb cie.ARGB) Scheme {
	return NewLightScheme(NewContentCorePalette(argb))
}

// MaterialDarkContentColorScheme returns the dark [Scheme] that
// stays close to the chroma of the given source color.
func MaterialDarkContentColorScheme(argb cie.ARGB) Scheme {
	return NewDarkScheme(NewContentCorePalette(argb))
}

// Schemes contains multiple static color schemes
// (light and dark) for the same source color.
type Schemes struct {
	Light Scheme
	Dark  Scheme
}

// NewSchemes returns new [Schemes] for the given [CorePalette].
func NewSchemes(p *CorePalette) *Schemes {
	return &Schemes{
		Light: NewLightScheme(p),
		Dark:  NewDarkScheme(p),
	}
}
