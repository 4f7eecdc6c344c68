// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"fmt"
	"sync"
	"testing"

	"cogentcore.org/tint/base/tolassert"
	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/colors/cam/hct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleWant struct {
	role *DynamicColor
	argb cie.ARGB
	tone float32 // -1 to skip
}

func checkRoles(t *testing.T, s *DynamicScheme, wants []roleWant) {
	t.Helper()
	for _, w := range wants {
		assertNearARGB(t, w.argb, w.role.ARGB(s), w.role.Name)
		if w.tone >= 0 {
			tolassert.EqualTol(t, w.tone, w.role.GetTone(s), 0.5, w.role.Name)
		}
	}
}

func TestTonalSpotLight(t *testing.T) {
	s := NewSchemeFromARGB(TonalSpot, 0xff6750a4, false, 0)
	checkRoles(t, s, []roleWant{
		{Primary, 0xff65558f, 40},
		{OnPrimary, 0xffffffff, 100},
		{PrimaryContainer, 0xffe9ddff, 90},
		{OnPrimaryContainer, 0xff201047, 10},
		{Surface, 0xfffdf7ff, 98},
		{OnSurface, 0xff1d1b20, 10},
		{Outline, 0xff7a757f, 50},
		{Secondary, 0xff625b71, -1},
		{Tertiary, 0xff7e5260, -1},
		{Error, 0xffba1a1a, -1},
		{ErrorContainer, 0xffffdad6, -1},
		{PrimaryFixed, 0xffe9ddff, 90},
		{PrimaryFixedDim, 0xffcfbdfe, 80},
		{OnPrimaryFixed, 0xff201047, -1},
		{OnPrimaryFixedVariant, 0xff4d3d75, 30},
		{SurfaceContainerHighest, 0xffe6e0e9, 90},
		{InversePrimary, 0xffcfbdfe, -1},
	})
	assertNearARGB(t, 0xff65558f, s.Primary())
	assertNearARGB(t, 0xfffdf7ff, s.Surface())
}

func TestTonalSpotDark(t *testing.T) {
	s := NewSchemeFromARGB(TonalSpot, 0xff6750a4, true, 0)
	checkRoles(t, s, []roleWant{
		{Primary, 0xffcfbdfe, 80},
		{OnPrimary, 0xff36275d, 20},
		{PrimaryContainer, 0xff4d3d75, 30},
		{OnPrimaryContainer, 0xffe9ddff, 90},
		{Surface, 0xff141218, 6},
		{OnSurface, 0xffe6e0e9, 90},
		{Outline, 0xff948f99, 60},
		{SurfaceContainerHighest, 0xff36343a, 22},
		{InversePrimary, 0xff65558f, 40},
	})
}

func TestTonalSpotContrast(t *testing.T) {
	s := NewSchemeFromARGB(TonalSpot, 0xff6750a4, false, 1)
	checkRoles(t, s, []roleWant{
		{Primary, 0xff312259, 18.01},
		{PrimaryContainer, 0xff4f4078, 31.04},
		{OnSurface, 0xff000000, 0},
	})
	tolassert.EqualTol(t, 80, SurfaceContainerHighest.GetTone(s), 0.5)

	s = NewSchemeFromARGB(TonalSpot, 0xff6750a4, false, -1)
	checkRoles(t, s, []roleWant{
		{Primary, 0xff7b6ba7, 49},
	})
	tolassert.EqualTol(t, 86.6, PrimaryContainer.GetTone(s), 0.5)
	tolassert.EqualTol(t, 39.99, OnPrimaryContainer.GetTone(s), 0.5)

	s = NewSchemeFromARGB(TonalSpot, 0xff6750a4, false, 0.5)
	tolassert.EqualTol(t, 22.64, Primary.GetTone(s), 0.5)
	tolassert.EqualTol(t, 45.99, PrimaryContainer.GetTone(s), 0.5)

	s = NewSchemeFromARGB(TonalSpot, 0xff6750a4, true, 1)
	assertNearARGB(t, 0xfff5edff, s.Primary())
	tolassert.EqualTol(t, 94.74, Primary.GetTone(s), 0.5)

	s = NewSchemeFromARGB(TonalSpot, 0xff6750a4, true, -1)
	assertNearARGB(t, 0xff9887c5, s.Primary())
	tolassert.EqualTol(t, 60, Primary.GetTone(s), 0.5)
}

func TestTonalSpotBlue(t *testing.T) {
	s := NewSchemeFromARGB(TonalSpot, 0xff0000ff, false, 0)
	checkRoles(t, s, []roleWant{
		{Primary, 0xff555992, 40},
		{Secondary, 0xff5c5d72, -1},
		{Tertiary, 0xff78536b, -1},
		{Surface, 0xfffbf8ff, -1},
	})
	s = NewSchemeFromARGB(TonalSpot, 0xff0000ff, true, 0)
	assertNearARGB(t, 0xffbec2ff, s.Primary())
}

func TestContrastLevelClamped(t *testing.T) {
	s := NewSchemeFromARGB(TonalSpot, 0xff6750a4, false, 3)
	assert.Equal(t, float32(1), s.ContrastLevel)
	s = NewSchemeFromARGB(Variant(99), 0xff6750a4, false, -3)
	assert.Equal(t, float32(-1), s.ContrastLevel)
	assert.Equal(t, TonalSpot, s.Variant)
}

var testSources = []cie.ARGB{0xff6750a4, 0xff0000ff, 0xffff0000, 0xff00ff00, 0xff808080, 0xffb3a126, 0xff000000, 0xffffffff}

var testLevels = []float32{-1, -0.5, 0, 0.5, 1}

// forSchemes calls fun with a scheme for every combination of
// variant, test source, mode and test contrast level.
func forSchemes(fun func(s *DynamicScheme)) {
	for _, v := range VariantValues() {
		for _, src := range testSources {
			for _, dark := range []bool{false, true} {
				for _, level := range testLevels {
					fun(NewSchemeFromARGB(v, src, dark, level))
				}
			}
		}
	}
}

func TestRolesInRange(t *testing.T) {
	forSchemes(func(s *DynamicScheme) {
		for _, role := range Roles.Values {
			tone := role.GetTone(s)
			if !assert.True(t, tone >= 0 && tone <= 100, "%s %s: %g", s, role.Name, tone) {
				return
			}
		}
	})
}

func TestAwkwardZone(t *testing.T) {
	forSchemes(func(s *DynamicScheme) {
		for _, role := range Roles.Values {
			if role.ToneDeltaPair == nil {
				continue
			}
			tone := role.GetTone(s)
			assert.False(t, tone > 50 && tone < 60, "%s %s: %g", s, role.Name, tone)
		}
	})
}

func TestToneDeltaPairs(t *testing.T) {
	forSchemes(func(s *DynamicScheme) {
		for _, role := range Roles.Values {
			if role.ToneDeltaPair == nil {
				continue
			}
			pair := role.ToneDeltaPair(s)
			a, b := pair.RoleA.GetTone(s), pair.RoleB.GetTone(s)
			gap := a - b
			if gap < 0 {
				gap = -gap
			}
			// the gap can only shrink when a tone is pinned at an end of the range
			if a > 0 && a < 100 && b > 0 && b < 100 {
				assert.GreaterOrEqual(t, gap, pair.Delta-0.01, "%s %s/%s: %g %g", s, pair.RoleA.Name, pair.RoleB.Name, a, b)
			}
		}
	})
}

func TestOnColorContrast(t *testing.T) {
	pairs := []struct{ fg, bg *DynamicColor }{
		{OnPrimary, Primary},
		{OnSecondary, Secondary},
		{OnTertiary, Tertiary},
		{OnError, Error},
		{OnSurface, SurfaceDim},
		{OnBackground, Background},
	}
	for _, src := range testSources {
		for _, dark := range []bool{false, true} {
			s := NewSchemeFromARGB(TonalSpot, src, dark, 0)
			for _, p := range pairs {
				if dark && p.bg == SurfaceDim {
					continue
				}
				bg := p.bg.GetTone(s)
				ratio := hct.ToneContrastRatio(p.fg.GetTone(s), bg)
				// an unreachable ratio falls back to the better of black and white
				best := max(hct.ToneContrastRatio(0, bg), hct.ToneContrastRatio(100, bg))
				want := min(p.fg.ContrastCurve.Get(0), best)
				assert.GreaterOrEqual(t, ratio, want-0.15, "%s %s", s, p.fg.Name)
				assert.GreaterOrEqual(t, ratio, float32(4.5)-0.05, "%s %s", s, p.fg.Name)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	want := NewSchemeFromARGB(Vibrant, 0xff6750a4, true, 0.5).Colors()
	for range 3 {
		got := NewSchemeFromARGB(Vibrant, 0xff6750a4, true, 0.5).Colors()
		assert.Equal(t, want.Keys, got.Keys)
		assert.Equal(t, want.Values, got.Values)
	}
}

func TestSchemeConcurrent(t *testing.T) {
	want := NewSchemeFromARGB(Fidelity, 0xff0000ff, false, 0).Colors()
	s := NewSchemeFromARGB(Fidelity, 0xff0000ff, false, 0)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// start at different roles to interleave the resolution
			n := Roles.Len()
			for j := range n {
				role := Roles.Values[(i*7+j)%n]
				assert.Equal(t, want.Values[(i*7+j)%n], s.Color(role))
			}
		}()
	}
	wg.Wait()
}

func TestRoles(t *testing.T) {
	assert.Equal(t, 54, Roles.Len())
	r, ok := RoleByName("on_primary_container")
	require.True(t, ok)
	assert.Same(t, OnPrimaryContainer, r)
	_, ok = RoleByName("nope")
	assert.False(t, ok)

	s := NewSchemeFromARGB(TonalSpot, 0xff6750a4, false, 0)
	c, err := s.ColorByName("primary")
	require.NoError(t, err)
	assert.Equal(t, s.Color(Primary), c)
	_, err = s.ColorByName("nope")
	assert.Error(t, err)

	colors := s.Colors()
	assert.Equal(t, Roles.Len(), colors.Len())
	assert.Equal(t, "primary_palette_key_color", colors.Keys[0])
}

func TestMonochrome(t *testing.T) {
	s := NewSchemeFromARGB(Monochrome, 0xff6750a4, false, 0)
	for _, p := range []*TonalPalette{s.PrimaryPalette, s.SecondaryPalette, s.TertiaryPalette, s.NeutralPalette} {
		assert.Equal(t, float32(0), p.Chroma)
	}
	tolassert.EqualTol(t, 0, Primary.GetTone(s), 0.5)
	tolassert.EqualTol(t, 90, OnPrimary.GetTone(s), 0.5)
	tolassert.EqualTol(t, 25, PrimaryContainer.GetTone(s), 0.5)

	s = NewSchemeFromARGB(Monochrome, 0xff6750a4, true, 0)
	tolassert.EqualTol(t, 100, Primary.GetTone(s), 0.5)
	tolassert.EqualTol(t, 10, OnPrimary.GetTone(s), 0.5)
}

func TestFidelity(t *testing.T) {
	src := hct.FromARGB(0xff0000ff)
	s := NewScheme(Fidelity, src, false, 0)
	tolassert.EqualTol(t, src.Chroma, s.PrimaryPalette.Chroma, 0.01)
	// the container keeps the source tone when it has enough contrast
	pc := PrimaryContainer.GetTone(s)
	assert.True(t, pc <= 50 || pc >= 60, fmt.Sprint(pc))
	ratio := hct.ToneContrastRatio(OnPrimaryContainer.GetTone(s), pc)
	assert.GreaterOrEqual(t, ratio, float32(4.45))
}

func TestRotatedHue(t *testing.T) {
	src := hct.HCT{Hue: 45}
	hues := []float32{0, 41, 61, 101, 131, 181, 251, 301, 360}
	rots := []float32{18, 15, 10, 12, 15, 18, 15, 12, 12}
	tolassert.EqualTol(t, 60, RotatedHue(src, hues, rots), 0.001)
	src = hct.HCT{Hue: 359.5}
	tolassert.EqualTol(t, 11.5, RotatedHue(src, hues, rots), 0.001)
	src = hct.HCT{Hue: 41}
	tolassert.EqualTol(t, 41, RotatedHue(src, hues, rots), 0.001)
	tolassert.EqualTol(t, 65, RotatedHue(src, nil, []float32{24}), 0.001)
}
