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
	"cogentcore.org/tint/base/keylist"
	"cogentcore.org/tint/colors/cam/hct"
	"cogentcore.org/tint/math32"
)

// The material color roles. They are defined in init, as most of
// them refer to each other through their backgrounds and pairs.
var (
	PrimaryPaletteKeyColor        = &DynamicColor{}
	SecondaryPaletteKeyColor      = &DynamicColor{}
	TertiaryPaletteKeyColor       = &DynamicColor{}
	NeutralPaletteKeyColor        = &DynamicColor{}
	NeutralVariantPaletteKeyColor = &DynamicColor{}

	Background              = &DynamicColor{}
	OnBackground            = &DynamicColor{}
	Surface                 = &DynamicColor{}
	SurfaceDim              = &DynamicColor{}
	SurfaceBright           = &DynamicColor{}
	SurfaceContainerLowest  = &DynamicColor{}
	SurfaceContainerLow     = &DynamicColor{}
	SurfaceContainer        = &DynamicColor{}
	SurfaceContainerHigh    = &DynamicColor{}
	SurfaceContainerHighest = &DynamicColor{}
	OnSurface               = &DynamicColor{}
	SurfaceVariant          = &DynamicColor{}
	OnSurfaceVariant        = &DynamicColor{}
	InverseSurface          = &DynamicColor{}
	InverseOnSurface        = &DynamicColor{}
	Outline                 = &DynamicColor{}
	OutlineVariant          = &DynamicColor{}
	Shadow                  = &DynamicColor{}
	Scrim                   = &DynamicColor{}
	SurfaceTint             = &DynamicColor{}

	Primary            = &DynamicColor{}
	OnPrimary          = &DynamicColor{}
	PrimaryContainer   = &DynamicColor{}
	OnPrimaryContainer = &DynamicColor{}
	InversePrimary     = &DynamicColor{}

	Secondary            = &DynamicColor{}
	OnSecondary          = &DynamicColor{}
	SecondaryContainer   = &DynamicColor{}
	OnSecondaryContainer = &DynamicColor{}

	Tertiary            = &DynamicColor{}
	OnTertiary          = &DynamicColor{}
	TertiaryContainer   = &DynamicColor{}
	OnTertiaryContainer = &DynamicColor{}

	Error            = &DynamicColor{}
	OnError          = &DynamicColor{}
	ErrorContainer   = &DynamicColor{}
	OnErrorContainer = &DynamicColor{}

	PrimaryFixed            = &DynamicColor{}
	PrimaryFixedDim         = &DynamicColor{}
	OnPrimaryFixed          = &DynamicColor{}
	OnPrimaryFixedVariant   = &DynamicColor{}
	SecondaryFixed          = &DynamicColor{}
	SecondaryFixedDim       = &DynamicColor{}
	OnSecondaryFixed        = &DynamicColor{}
	OnSecondaryFixedVariant = &DynamicColor{}
	TertiaryFixed           = &DynamicColor{}
	TertiaryFixedDim        = &DynamicColor{}
	OnTertiaryFixed         = &DynamicColor{}
	OnTertiaryFixedVariant  = &DynamicColor{}
)

// Roles is the table of all material color roles, keyed by name,
// in their standard order.
var Roles = keylist.New[string, *DynamicColor]()

// RoleByName returns the role with the given name, such as "on_primary".
func RoleByName(name string) (*DynamicColor, bool) {
	return Roles.At(name)
}

func primaryPalette(s *DynamicScheme) *TonalPalette        { return s.PrimaryPalette }
func secondaryPalette(s *DynamicScheme) *TonalPalette      { return s.SecondaryPalette }
func tertiaryPalette(s *DynamicScheme) *TonalPalette       { return s.TertiaryPalette }
func neutralPalette(s *DynamicScheme) *TonalPalette        { return s.NeutralPalette }
func neutralVariantPalette(s *DynamicScheme) *TonalPalette { return s.NeutralVariantPalette }
func errorPalette(s *DynamicScheme) *TonalPalette          { return s.ErrorPalette }

// highestSurface is the background of most accent roles.
func highestSurface(s *DynamicScheme) *DynamicColor {
	if s.IsDark {
		return SurfaceBright
	}
	return SurfaceDim
}

func role(dc *DynamicColor) func(s *DynamicScheme) *DynamicColor {
	return func(*DynamicScheme) *DynamicColor { return dc }
}

func pair(a, b *DynamicColor, delta float32, polarity TonePolarity, stayTogether bool) func(s *DynamicScheme) *ToneDeltaPair {
	p := NewToneDeltaPair(a, b, delta, polarity, stayTogether)
	return func(*DynamicScheme) *ToneDeltaPair { return p }
}

// darkLight returns a tone function choosing between the dark
// and light mode tones.
func darkLight(dark, light float32) func(s *DynamicScheme) float32 {
	return func(s *DynamicScheme) float32 {
		if s.IsDark {
			return dark
		}
		return light
	}
}

// darkLightCurve is like darkLight for tones that depend on the contrast level.
func darkLightCurve(dark, light *ContrastCurve) func(s *DynamicScheme) float32 {
	return func(s *DynamicScheme) float32 {
		if s.IsDark {
			return dark.Get(s.ContrastLevel)
		}
		return light.Get(s.ContrastLevel)
	}
}

// monochrome returns a tone function that uses the given tones
// for monochrome schemes and the normal tone function otherwise.
func monochrome(dark, light float32, normal func(s *DynamicScheme) float32) func(s *DynamicScheme) float32 {
	mono := darkLight(dark, light)
	return func(s *DynamicScheme) float32 {
		if s.isMonochrome() {
			return mono(s)
		}
		return normal(s)
	}
}

func fixedTone(tone float32) func(s *DynamicScheme) float32 {
	return func(*DynamicScheme) float32 { return tone }
}

func keyColorTone(palette func(s *DynamicScheme) *TonalPalette) func(s *DynamicScheme) float32 {
	return func(s *DynamicScheme) float32 { return palette(s).KeyColor.Tone }
}

// findDesiredChromaByTone searches from the given tone, in the given
// direction, for the tone at which the hue reaches the given chroma,
// stopping when the chroma starts to decrease.
func findDesiredChromaByTone(hue, chroma, tone float32, byDecreasingTone bool) float32 {
	answer := tone
	closest := hct.New(hue, chroma, tone)
	if closest.Chroma >= chroma {
		return answer
	}
	chromaPeak := closest.Chroma
	step := float32(1)
	if byDecreasingTone {
		step = -1
	}
	for closest.Chroma < chroma {
		answer += step
		if answer < 0 || answer > 100 {
			return math32.Clamp(answer, 0, 100)
		}
		potential := hct.New(hue, chroma, answer)
		if chromaPeak > potential.Chroma {
			break
		}
		if math32.Abs(potential.Chroma-chroma) < 0.4 {
			break
		}
		if math32.Abs(potential.Chroma-chroma) < math32.Abs(closest.Chroma-chroma) {
			closest = potential
		}
		chromaPeak = max(chromaPeak, potential.Chroma)
	}
	return answer
}

var (
	textCurve        = NewContrastCurve(4.5, 7, 11, 21)
	variantTextCurve = NewContrastCurve(3, 4.5, 7, 11)
	accentCurve      = NewContrastCurve(3, 4.5, 7, 7)
	containerCurve   = NewContrastCurve(1, 1, 3, 4.5)
	outlineCurve     = NewContrastCurve(1.5, 3, 4.5, 7)
	onBgCurve        = NewContrastCurve(3, 3, 4.5, 7)
)

// define sets the role to the given definition and registers it in [Roles].
func define(dc *DynamicColor, def DynamicColor) {
	*dc = def
	Roles.Set(dc.Name, dc)
}

func init() {
	define(PrimaryPaletteKeyColor, *FromPalette("primary_palette_key_color", primaryPalette, keyColorTone(primaryPalette)))
	define(SecondaryPaletteKeyColor, *FromPalette("secondary_palette_key_color", secondaryPalette, keyColorTone(secondaryPalette)))
	define(TertiaryPaletteKeyColor, *FromPalette("tertiary_palette_key_color", tertiaryPalette, keyColorTone(tertiaryPalette)))
	define(NeutralPaletteKeyColor, *FromPalette("neutral_palette_key_color", neutralPalette, keyColorTone(neutralPalette)))
	define(NeutralVariantPaletteKeyColor, *FromPalette("neutral_variant_palette_key_color", neutralVariantPalette, keyColorTone(neutralVariantPalette)))

	defineSurfaces()
	defineAccents()
	defineFixed()
}

func defineSurfaces() {
	define(Background, DynamicColor{Name: "background", Palette: neutralPalette, Tone: darkLight(6, 98), IsBackground: true})
	define(OnBackground, DynamicColor{Name: "on_background", Palette: neutralPalette, Tone: darkLight(90, 10),
		Background: role(Background), ContrastCurve: onBgCurve})
	define(Surface, DynamicColor{Name: "surface", Palette: neutralPalette, Tone: darkLight(6, 98), IsBackground: true})
	define(SurfaceDim, DynamicColor{Name: "surface_dim", Palette: neutralPalette, IsBackground: true,
		Tone: darkLightCurve(NewContrastCurve(6, 6, 6, 6), NewContrastCurve(87, 87, 80, 75))})
	define(SurfaceBright, DynamicColor{Name: "surface_bright", Palette: neutralPalette, IsBackground: true,
		Tone: darkLightCurve(NewContrastCurve(24, 24, 29, 34), NewContrastCurve(98, 98, 98, 98))})
	define(SurfaceContainerLowest, DynamicColor{Name: "surface_container_lowest", Palette: neutralPalette, IsBackground: true,
		Tone: darkLightCurve(NewContrastCurve(4, 4, 2, 0), NewContrastCurve(100, 100, 100, 100))})
	define(SurfaceContainerLow, DynamicColor{Name: "surface_container_low", Palette: neutralPalette, IsBackground: true,
		Tone: darkLightCurve(NewContrastCurve(10, 10, 11, 12), NewContrastCurve(96, 96, 96, 95))})
	define(SurfaceContainer, DynamicColor{Name: "surface_container", Palette: neutralPalette, IsBackground: true,
		Tone: darkLightCurve(NewContrastCurve(12, 12, 16, 20), NewContrastCurve(94, 94, 92, 90))})
	define(SurfaceContainerHigh, DynamicColor{Name: "surface_container_high", Palette: neutralPalette, IsBackground: true,
		Tone: darkLightCurve(NewContrastCurve(17, 17, 21, 25), NewContrastCurve(92, 92, 88, 85))})
	define(SurfaceContainerHighest, DynamicColor{Name: "surface_container_highest", Palette: neutralPalette, IsBackground: true,
		Tone: darkLightCurve(NewContrastCurve(22, 22, 26, 30), NewContrastCurve(90, 90, 84, 80))})
	define(OnSurface, DynamicColor{Name: "on_surface", Palette: neutralPalette, Tone: darkLight(90, 10),
		Background: highestSurface, ContrastCurve: textCurve})
	define(SurfaceVariant, DynamicColor{Name: "surface_variant", Palette: neutralVariantPalette, Tone: darkLight(30, 90), IsBackground: true})
	define(OnSurfaceVariant, DynamicColor{Name: "on_surface_variant", Palette: neutralVariantPalette, Tone: darkLight(80, 30),
		Background: highestSurface, ContrastCurve: variantTextCurve})
	define(InverseSurface, DynamicColor{Name: "inverse_surface", Palette: neutralPalette, Tone: darkLight(90, 20)})
	define(InverseOnSurface, DynamicColor{Name: "inverse_on_surface", Palette: neutralPalette, Tone: darkLight(20, 95),
		Background: role(InverseSurface), ContrastCurve: textCurve})
	define(Outline, DynamicColor{Name: "outline", Palette: neutralVariantPalette, Tone: darkLight(60, 50),
		Background: highestSurface, ContrastCurve: outlineCurve})
	define(OutlineVariant, DynamicColor{Name: "outline_variant", Palette: neutralVariantPalette, Tone: darkLight(30, 80),
		Background: highestSurface, ContrastCurve: containerCurve})
	define(Shadow, *FromPalette("shadow", neutralPalette, fixedTone(0)))
	define(Scrim, *FromPalette("scrim", neutralPalette, fixedTone(0)))
	define(SurfaceTint, DynamicColor{Name: "surface_tint", Palette: primaryPalette, Tone: darkLight(80, 40), IsBackground: true})
}

func defineAccents() {
	primaryPair := pair(PrimaryContainer, Primary, 10, Nearer, false)
	define(Primary, DynamicColor{Name: "primary", Palette: primaryPalette, IsBackground: true,
		Tone:       monochrome(100, 0, darkLight(80, 40)),
		Background: highestSurface, ContrastCurve: accentCurve, ToneDeltaPair: primaryPair})
	define(OnPrimary, DynamicColor{Name: "on_primary", Palette: primaryPalette,
		Tone:       monochrome(10, 90, darkLight(20, 100)),
		Background: role(Primary), ContrastCurve: textCurve})
	define(PrimaryContainer, DynamicColor{Name: "primary_container", Palette: primaryPalette, IsBackground: true,
		Tone: func(s *DynamicScheme) float32 {
			if s.isFidelity() {
				return s.SourceColor.Tone
			}
			return monochrome(85, 25, darkLight(30, 90))(s)
		},
		Background: highestSurface, ContrastCurve: containerCurve, ToneDeltaPair: primaryPair})
	define(OnPrimaryContainer, DynamicColor{Name: "on_primary_container", Palette: primaryPalette,
		Tone: func(s *DynamicScheme) float32 {
			if s.isFidelity() {
				return ForegroundTone(PrimaryContainer.Tone(s), 4.5)
			}
			return monochrome(0, 100, darkLight(90, 10))(s)
		},
		Background: role(PrimaryContainer), ContrastCurve: textCurve})
	define(InversePrimary, DynamicColor{Name: "inverse_primary", Palette: primaryPalette, Tone: darkLight(40, 80),
		Background: role(InverseSurface), ContrastCurve: accentCurve})

	secondaryPair := pair(SecondaryContainer, Secondary, 10, Nearer, false)
	define(Secondary, DynamicColor{Name: "secondary", Palette: secondaryPalette, IsBackground: true,
		Tone:       darkLight(80, 40),
		Background: highestSurface, ContrastCurve: accentCurve, ToneDeltaPair: secondaryPair})
	define(OnSecondary, DynamicColor{Name: "on_secondary", Palette: secondaryPalette,
		Tone:       monochrome(10, 100, darkLight(20, 100)),
		Background: role(Secondary), ContrastCurve: textCurve})
	define(SecondaryContainer, DynamicColor{Name: "secondary_container", Palette: secondaryPalette, IsBackground: true,
		Tone: func(s *DynamicScheme) float32 {
			initial := darkLight(30, 90)(s)
			switch {
			case s.isMonochrome():
				return darkLight(30, 85)(s)
			case !s.isFidelity():
				return initial
			}
			return findDesiredChromaByTone(s.SecondaryPalette.Hue, s.SecondaryPalette.Chroma, initial, !s.IsDark)
		},
		Background: highestSurface, ContrastCurve: containerCurve, ToneDeltaPair: secondaryPair})
	define(OnSecondaryContainer, DynamicColor{Name: "on_secondary_container", Palette: secondaryPalette,
		Tone: func(s *DynamicScheme) float32 {
			if !s.isFidelity() {
				return darkLight(90, 10)(s)
			}
			return ForegroundTone(SecondaryContainer.Tone(s), 4.5)
		},
		Background: role(SecondaryContainer), ContrastCurve: textCurve})

	tertiaryPair := pair(TertiaryContainer, Tertiary, 10, Nearer, false)
	define(Tertiary, DynamicColor{Name: "tertiary", Palette: tertiaryPalette, IsBackground: true,
		Tone:       monochrome(90, 25, darkLight(80, 40)),
		Background: highestSurface, ContrastCurve: accentCurve, ToneDeltaPair: tertiaryPair})
	define(OnTertiary, DynamicColor{Name: "on_tertiary", Palette: tertiaryPalette,
		Tone:       monochrome(10, 90, darkLight(20, 100)),
		Background: role(Tertiary), ContrastCurve: textCurve})
	define(TertiaryContainer, DynamicColor{Name: "tertiary_container", Palette: tertiaryPalette, IsBackground: true,
		Tone: func(s *DynamicScheme) float32 {
			switch {
			case s.isMonochrome():
				return darkLight(60, 49)(s)
			case !s.isFidelity():
				return darkLight(30, 90)(s)
			}
			return FixIfDisliked(s.TertiaryPalette.HCT(s.SourceColor.Tone)).Tone
		},
		Background: highestSurface, ContrastCurve: containerCurve, ToneDeltaPair: tertiaryPair})
	define(OnTertiaryContainer, DynamicColor{Name: "on_tertiary_container", Palette: tertiaryPalette,
		Tone: func(s *DynamicScheme) float32 {
			switch {
			case s.isMonochrome():
				return darkLight(0, 100)(s)
			case !s.isFidelity():
				return darkLight(90, 10)(s)
			}
			return ForegroundTone(TertiaryContainer.Tone(s), 4.5)
		},
		Background: role(TertiaryContainer), ContrastCurve: textCurve})

	errorPair := pair(ErrorContainer, Error, 10, Nearer, false)
	define(Error, DynamicColor{Name: "error", Palette: errorPalette, IsBackground: true,
		Tone:       darkLight(80, 40),
		Background: highestSurface, ContrastCurve: accentCurve, ToneDeltaPair: errorPair})
	define(OnError, DynamicColor{Name: "on_error", Palette: errorPalette, Tone: darkLight(20, 100),
		Background: role(Error), ContrastCurve: textCurve})
	define(ErrorContainer, DynamicColor{Name: "error_container", Palette: errorPalette, IsBackground: true,
		Tone:       darkLight(30, 90),
		Background: highestSurface, ContrastCurve: containerCurve, ToneDeltaPair: errorPair})
	define(OnErrorContainer, DynamicColor{Name: "on_error_container", Palette: errorPalette, Tone: darkLight(90, 10),
		Background: role(ErrorContainer), ContrastCurve: textCurve})
}

// defineFixed defines the fixed roles, which have the same
// tones in light and dark mode.
func defineFixed() {
	type fixedSet struct {
		name                      string
		palette                   func(s *DynamicScheme) *TonalPalette
		fixed, dim, on, onVariant *DynamicColor
		fixedTone, dimTone        [2]float32 // monochrome, normal
		onTone, onVariantTone     [2]float32
	}
	sets := []fixedSet{
		{"primary", primaryPalette, PrimaryFixed, PrimaryFixedDim, OnPrimaryFixed, OnPrimaryFixedVariant,
			[2]float32{40, 90}, [2]float32{30, 80}, [2]float32{100, 10}, [2]float32{90, 30}},
		{"secondary", secondaryPalette, SecondaryFixed, SecondaryFixedDim, OnSecondaryFixed, OnSecondaryFixedVariant,
			[2]float32{80, 90}, [2]float32{70, 80}, [2]float32{10, 10}, [2]float32{25, 30}},
		{"tertiary", tertiaryPalette, TertiaryFixed, TertiaryFixedDim, OnTertiaryFixed, OnTertiaryFixedVariant,
			[2]float32{40, 90}, [2]float32{30, 80}, [2]float32{100, 10}, [2]float32{90, 30}},
	}
	monoOr := func(t [2]float32) func(s *DynamicScheme) float32 {
		return func(s *DynamicScheme) float32 {
			if s.isMonochrome() {
				return t[0]
			}
			return t[1]
		}
	}
	for _, fs := range sets {
		fixedPair := pair(fs.fixed, fs.dim, 10, Lighter, true)
		define(fs.fixed, DynamicColor{Name: fs.name + "_fixed", Palette: fs.palette, IsBackground: true,
			Tone:       monoOr(fs.fixedTone),
			Background: highestSurface, ContrastCurve: containerCurve, ToneDeltaPair: fixedPair})
		define(fs.dim, DynamicColor{Name: fs.name + "_fixed_dim", Palette: fs.palette, IsBackground: true,
			Tone:       monoOr(fs.dimTone),
			Background: highestSurface, ContrastCurve: containerCurve, ToneDeltaPair: fixedPair})
		define(fs.on, DynamicColor{Name: "on_" + fs.name + "_fixed", Palette: fs.palette,
			Tone:       monoOr(fs.onTone),
			Background: role(fs.dim), SecondBackground: role(fs.fixed), ContrastCurve: textCurve})
		define(fs.onVariant, DynamicColor{Name: "on_" + fs.name + "_fixed_variant", Palette: fs.palette,
			Tone:       monoOr(fs.onVariantTone),
			Background: role(fs.dim), SecondBackground: role(fs.fixed), ContrastCurve: variantTextCurve})
	}
}
