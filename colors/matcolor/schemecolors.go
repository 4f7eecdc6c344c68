// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"fmt"
	"image/color"

	"cogentcore.org/tint/base/keylist"
	"cogentcore.org/tint/colors/cam/cie"
)

// Color returns the resolved color of the given role in the scheme.
func (s *DynamicScheme) Color(role *DynamicColor) color.RGBA {
	r, g, b := cie.RGBFromARGB(role.ARGB(s))
	return color.RGBA{r, g, b, 255}
}

// ColorByName returns the resolved color of the role with the given
// name, such as "primary_container".
func (s *DynamicScheme) ColorByName(name string) (color.RGBA, error) {
	role, ok := RoleByName(name)
	if !ok {
		return color.RGBA{}, fmt.Errorf("matcolor: unknown color role %q", name)
	}
	return s.Color(role), nil
}

// Colors returns the resolved colors of all of the [Roles],
// keyed by role name in the standard order.
func (s *DynamicScheme) Colors() *keylist.List[string, color.RGBA] {
	kl := keylist.New[string, color.RGBA]()
	for i, role := range Roles.Values {
		kl.Set(Roles.Keys[i], s.Color(role))
	}
	return kl
}

func (s *DynamicScheme) accent(base, on, container, onContainer *DynamicColor) Accent {
	return Accent{
		Base:        s.Color(base),
		On:          s.Color(on),
		Container:   s.Color(container),
		OnContainer: s.Color(onContainer),
	}
}

// Static returns a [Scheme] with the resolved colors of the
// corresponding roles of the dynamic scheme.
func (s *DynamicScheme) Static() Scheme {
	return Scheme{
		Primary:   s.accent(Primary, OnPrimary, PrimaryContainer, OnPrimaryContainer),
		Secondary: s.accent(Secondary, OnSecondary, SecondaryContainer, OnSecondaryContainer),
		Tertiary:  s.accent(Tertiary, OnTertiary, TertiaryContainer, OnTertiaryContainer),
		Error:     s.accent(Error, OnError, ErrorContainer, OnErrorContainer),

		Background:       s.Color(Background),
		OnBackground:     s.Color(OnBackground),
		Surface:          s.Color(Surface),
		OnSurface:        s.Color(OnSurface),
		SurfaceVariant:   s.Color(SurfaceVariant),
		OnSurfaceVariant: s.Color(OnSurfaceVariant),
		Outline:          s.Color(Outline),
		OutlineVariant:   s.Color(OutlineVariant),
		Shadow:           s.Color(Shadow),
		Scrim:            s.Color(Scrim),
		InverseSurface:   s.Color(InverseSurface),
		InverseOnSurface: s.Color(InverseOnSurface),
		InversePrimary:   s.Color(InversePrimary),
	}
}

func (s *DynamicScheme) Primary() cie.ARGB            { return Primary.ARGB(s) }
func (s *DynamicScheme) OnPrimary() cie.ARGB          { return OnPrimary.ARGB(s) }
func (s *DynamicScheme) PrimaryContainer() cie.ARGB   { return PrimaryContainer.ARGB(s) }
func (s *DynamicScheme) OnPrimaryContainer() cie.ARGB { return OnPrimaryContainer.ARGB(s) }
func (s *DynamicScheme) InversePrimary() cie.ARGB     { return InversePrimary.ARGB(s) }

func (s *DynamicScheme) Secondary() cie.ARGB            { return Secondary.ARGB(s) }
func (s *DynamicScheme) OnSecondary() cie.ARGB          { return OnSecondary.ARGB(s) }
func (s *DynamicScheme) SecondaryContainer() cie.ARGB   { return SecondaryContainer.ARGB(s) }
func (s *DynamicScheme) OnSecondaryContainer() cie.ARGB { return OnSecondaryContainer.ARGB(s) }

func (s *DynamicScheme) Tertiary() cie.ARGB            { return Tertiary.ARGB(s) }
func (s *DynamicScheme) OnTertiary() cie.ARGB          { return OnTertiary.ARGB(s) }
func (s *DynamicScheme) TertiaryContainer() cie.ARGB   { return TertiaryContainer.ARGB(s) }
func (s *DynamicScheme) OnTertiaryContainer() cie.ARGB { return OnTertiaryContainer.ARGB(s) }

func (s *DynamicScheme) Error() cie.ARGB            { return Error.ARGB(s) }
func (s *DynamicScheme) OnError() cie.ARGB          { return OnError.ARGB(s) }
func (s *DynamicScheme) ErrorContainer() cie.ARGB   { return ErrorContainer.ARGB(s) }
func (s *DynamicScheme) OnErrorContainer() cie.ARGB { return OnErrorContainer.ARGB(s) }

func (s *DynamicScheme) Background() cie.ARGB              { return Background.ARGB(s) }
func (s *DynamicScheme) OnBackground() cie.ARGB            { return OnBackground.ARGB(s) }
func (s *DynamicScheme) Surface() cie.ARGB                 { return Surface.ARGB(s) }
func (s *DynamicScheme) SurfaceDim() cie.ARGB              { return SurfaceDim.ARGB(s) }
func (s *DynamicScheme) SurfaceBright() cie.ARGB           { return SurfaceBright.ARGB(s) }
func (s *DynamicScheme) SurfaceContainerLowest() cie.ARGB  { return SurfaceContainerLowest.ARGB(s) }
func (s *DynamicScheme) SurfaceContainerLow() cie.ARGB     { return SurfaceContainerLow.ARGB(s) }
func (s *DynamicScheme) SurfaceContainer() cie.ARGB        { return SurfaceContainer.ARGB(s) }
func (s *DynamicScheme) SurfaceContainerHigh() cie.ARGB    { return SurfaceContainerHigh.ARGB(s) }
func (s *DynamicScheme) SurfaceContainerHighest() cie.ARGB { return SurfaceContainerHighest.ARGB(s) }
func (s *DynamicScheme) OnSurface() cie.ARGB               { return OnSurface.ARGB(s) }
func (s *DynamicScheme) SurfaceVariant() cie.ARGB          { return SurfaceVariant.ARGB(s) }
func (s *DynamicScheme) OnSurfaceVariant() cie.ARGB        { return OnSurfaceVariant.ARGB(s) }
func (s *DynamicScheme) InverseSurface() cie.ARGB          { return InverseSurface.ARGB(s) }
func (s *DynamicScheme) InverseOnSurface() cie.ARGB        { return InverseOnSurface.ARGB(s) }
func (s *DynamicScheme) Outline() cie.ARGB                 { return Outline.ARGB(s) }
func (s *DynamicScheme) OutlineVariant() cie.ARGB          { return OutlineVariant.ARGB(s) }
func (s *DynamicScheme) Shadow() cie.ARGB                  { return Shadow.ARGB(s) }
func (s *DynamicScheme) Scrim() cie.ARGB                   { return Scrim.ARGB(s) }
func (s *DynamicScheme) SurfaceTint() cie.ARGB             { return SurfaceTint.ARGB(s) }

func (s *DynamicScheme) PrimaryFixed() cie.ARGB            { return PrimaryFixed.ARGB(s) }
func (s *DynamicScheme) PrimaryFixedDim() cie.ARGB         { return PrimaryFixedDim.ARGB(s) }
func (s *DynamicScheme) OnPrimaryFixed() cie.ARGB          { return OnPrimaryFixed.ARGB(s) }
func (s *DynamicScheme) OnPrimaryFixedVariant() cie.ARGB   { return OnPrimaryFixedVariant.ARGB(s) }
func (s *DynamicScheme) SecondaryFixed() cie.ARGB          { return SecondaryFixed.ARGB(s) }
func (s *DynamicScheme) SecondaryFixedDim() cie.ARGB       { return SecondaryFixedDim.ARGB(s) }
func (s *DynamicScheme) OnSecondaryFixed() cie.ARGB        { return OnSecondaryFixed.ARGB(s) }
func (s *DynamicScheme) OnSecondaryFixedVariant() cie.ARGB { return OnSecondaryFixedVariant.ARGB(s) }
func (s *DynamicScheme) TertiaryFixed() cie.ARGB           { return TertiaryFixed.ARGB(s) }
func (s *DynamicScheme) TertiaryFixedDim() cie.ARGB        { return TertiaryFixedDim.ARGB(s) }
func (s *DynamicScheme) OnTertiaryFixed() cie.ARGB         { return OnTertiaryFixed.ARGB(s) }
func (s *DynamicScheme) OnTertiaryFixedVariant() cie.ARGB  { return OnTertiaryFixedVariant.ARGB(s) }
