// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/matcolor"
	"cogentcore.org/tint/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertNearRGBA asserts that each channel differs by at most one.
func assertNearRGBA(t *testing.T, want, got color.RGBA, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, int(want.R), int(got.R), 1, msgAndArgs...)
	assert.InDelta(t, int(want.G), int(got.G), 1, msgAndArgs...)
	assert.InDelta(t, int(want.B), int(got.B), 1, msgAndArgs...)
	assert.Equal(t, want.A, got.A, msgAndArgs...)
}

func purple() Settings {
	return Settings{Source: "#6750a4", Variant: matcolor.TonalSpot}
}

func TestTheme(t *testing.T) {
	th := New(reactive.NewContext(), purple())
	primary := th.Color(matcolor.Primary)
	assertNearRGBA(t, colors.MustFromHex("#65558f"), primary.Get())

	th.Dark.Set(true)
	assertNearRGBA(t, colors.MustFromHex("#cfbdfe"), primary.Get())
	assert.True(t, th.Scheme.Get().IsDark)

	th.Contrast.Set(5)
	assert.Equal(t, float32(1), th.Contrast.Get())
	assertNearRGBA(t, colors.MustFromHex("#f5edff"), primary.Get())
	th.Contrast.Set(-5)
	assert.Equal(t, float32(-1), th.Contrast.Get())

	th.Variant.Set(matcolor.Variant(100))
	assert.Equal(t, matcolor.TonalSpot, th.Variant.Get())
	th.Variant.Set(matcolor.Monochrome)
	assert.Equal(t, matcolor.Monochrome, th.Scheme.Get().Variant)
}

func TestThemeDefaults(t *testing.T) {
	th := New(reactive.NewContext(), Settings{Source: "not a color", Variant: matcolor.Variant(-3)})
	assert.Equal(t, colors.MustFromHex("#4285f4"), th.Source.Get())
	assert.Equal(t, matcolor.TonalSpot, th.Variant.Get())
	assert.Equal(t, DefaultSettings(), th.Settings())
}

func TestColorByName(t *testing.T) {
	th := New(reactive.NewContext(), purple())
	c, err := th.ColorByName("on_primary")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.Get())
	_, err = th.ColorByName("nope")
	assert.Error(t, err)
}

func TestApplyBatch(t *testing.T) {
	th := New(reactive.NewContext(), purple())
	n := 0
	th.Scheme.AddObserver(th.Context().NextID(), func() { n++ })
	err := th.Apply(Settings{Source: "blue", Variant: matcolor.Vibrant, Dark: true, Contrast: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	s := th.Scheme.Get()
	assert.Equal(t, matcolor.Vibrant, s.Variant)
	assert.True(t, s.IsDark)
	assert.Equal(t, float32(0.5), s.ContrastLevel)
	assert.Equal(t, Settings{Source: "#0000FF", Variant: matcolor.Vibrant, Dark: true, Contrast: 0.5}, th.Settings())

	err = th.Apply(Settings{Source: "#zzz"})
	assert.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, th.Source.Get())
}

func TestApplyReturns(t *testing.T) {
	th := New(reactive.NewContext(), purple())
	primary := th.Color(matcolor.Primary)
	errc := make(chan error, 1)
	go func() {
		errc <- th.Apply(Settings{Source: "#6750a4", Dark: true})
	}()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Apply did not return")
	}
	assert.False(t, th.Context().InBatch())
	assert.True(t, th.Scheme.Get().IsDark)
	assert.Equal(t, th.Scheme.Get().Color(matcolor.Primary), primary.Get())
}

func TestSettingsSaveOpen(t *testing.T) {
	dir := t.TempDir()
	want := Settings{Source: "hct(120, 40, 50)", Variant: matcolor.FruitSalad, Dark: true, Contrast: -0.5}
	for _, name := range []string{"theme.toml", "theme.yaml", "theme.yml"} {
		fname := filepath.Join(dir, name)
		require.NoError(t, want.Save(fname))
		got, err := OpenSettings(fname)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	b, err := os.ReadFile(filepath.Join(dir, "theme.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "fruit-salad")

	_, err = OpenSettings(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
	s, err := LoadSettings(filepath.Join(dir, "missing.toml"))
	assert.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestOpenPartial(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(fname, []byte("dark = true\n"), 0666))
	s, err := OpenSettings(fname)
	require.NoError(t, err)
	assert.True(t, s.Dark)
	assert.Equal(t, DefaultSettings().Source, s.Source)
	assert.Equal(t, matcolor.TonalSpot, s.Variant)

	require.NoError(t, os.WriteFile(fname, []byte("variant = \"pastel\"\n"), 0666))
	_, err = OpenSettings(fname)
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "theme.toml")
	s := purple()
	require.NoError(t, s.Save(fname))

	th := New(reactive.NewContext(), DefaultSettings())
	applied := make(chan Settings, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, th, fname, func(s Settings) { applied <- s })
	}()

	// the watcher may not be running yet, so keep writing until it sees a change
	s.Dark = true
	timeout := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case got := <-applied:
			// a reload can see a partially written file
			if got.Dark {
				assert.Equal(t, "#6750A4", got.Source)
				break loop
			}
		case <-tick.C:
			require.NoError(t, s.Save(fname))
		case <-timeout:
			t.Fatal("settings were not applied")
		}
	}
	assert.True(t, th.Scheme.Get().IsDark)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return")
	}
}

func TestWatchMissingDir(t *testing.T) {
	th := New(reactive.NewContext(), DefaultSettings())
	err := Watch(context.Background(), th, filepath.Join(t.TempDir(), "nope", "theme.toml"), nil)
	assert.Error(t, err)
}
