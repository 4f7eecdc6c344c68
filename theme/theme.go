// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides a reactive color theme: a set of settings
// cells from which a dynamic color scheme, and the colors of its
// roles, are derived and kept up to date.
package theme

import (
	"image/color"
	"log/slog"

	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/cam/hct"
	"cogentcore.org/tint/colors/matcolor"
	"cogentcore.org/tint/reactive"
)

// Theme is a reactive color theme. Setting any of its settings cells
// recomputes [Theme.Scheme], which in turn updates every cell returned
// by [Theme.Color]. A Theme is safe for concurrent use.
type Theme struct {
	ctx *reactive.Context

	// Source is the color the scheme is generated from.
	Source *reactive.Shared[color.RGBA]

	// Dark is whether the scheme is dark.
	Dark *reactive.Shared[bool]

	// Contrast is the contrast level, clamped to [-1, 1].
	Contrast *reactive.Shared[float32]

	// Variant is the style of the scheme; invalid variants are ignored.
	Variant *reactive.Shared[matcolor.Variant]

	// Scheme is the scheme derived from the other cells.
	Scheme *reactive.Shared[*matcolor.DynamicScheme]
}

// New returns a new [Theme] in the given context, initialized
// from the given settings. An invalid source color is logged
// and replaced with the default source.
func New(ctx *reactive.Context, s Settings) *Theme {
	src, err := s.SourceColor()
	if err != nil {
		slog.Error("theme: invalid source color", "err", err)
		def := DefaultSettings()
		src, _ = def.SourceColor()
	}
	if !s.Variant.IsValid() {
		s.Variant = matcolor.TonalSpot
	}
	th := &Theme{ctx: ctx}
	th.Source = reactive.NewShared(ctx, src)
	th.Dark = reactive.NewShared(ctx, s.Dark)
	th.Contrast = reactive.NewShared(ctx, float32(0))
	th.Contrast.SetFilter(reactive.Clamp[float32](-1, 1))
	th.Contrast.Set(s.Contrast)
	th.Variant = reactive.NewShared(ctx, s.Variant)
	th.Variant.SetFilter(reactive.Accept(matcolor.Variant.IsValid))
	th.Scheme = reactive.NewSharedDynamic(ctx,
		[]reactive.Observable{th.Source, th.Dark, th.Contrast, th.Variant},
		th.newScheme)
	return th
}

func (th *Theme) newScheme() *matcolor.DynamicScheme {
	source := hct.FromColor(th.Source.Get())
	s := matcolor.NewScheme(th.Variant.Get(), source, th.Dark.Get(), th.Contrast.Get())
	slog.Debug("theme: new scheme", "scheme", s)
	return s
}

// Context returns the reactive context of the theme.
func (th *Theme) Context() *reactive.Context {
	return th.ctx
}

// Color returns a new cell holding the color of the given role in
// the current scheme. The cell is only kept up to date for as
// long as it is referenced.
func (th *Theme) Color(role *matcolor.DynamicColor) *reactive.Shared[color.RGBA] {
	return reactive.Map(th.ctx, th.Scheme, func(s *matcolor.DynamicScheme) color.RGBA {
		return s.Color(role)
	})
}

// ColorByName is like [Theme.Color] for the role with the given name.
func (th *Theme) ColorByName(name string) (*reactive.Shared[color.RGBA], error) {
	if _, err := th.Scheme.Get().ColorByName(name); err != nil {
		return nil, err
	}
	role, _ := matcolor.RoleByName(name)
	return th.Color(role), nil
}

// Settings returns the current settings of the theme.
func (th *Theme) Settings() Settings {
	return Settings{
		Source:   colors.AsHex(th.Source.Get()),
		Variant:  th.Variant.Get(),
		Dark:     th.Dark.Get(),
		Contrast: th.Contrast.Get(),
	}
}

// Apply sets the settings cells of the theme from the given settings
// within a single batch, so that the scheme is recomputed only once.
// Nothing is set if the source color is invalid.
func (th *Theme) Apply(s Settings) error {
	src, err := s.SourceColor()
	if err != nil {
		return err
	}
	th.ctx.Batch(func() {
		th.Source.Set(src)
		th.Dark.Set(s.Dark)
		th.Contrast.Set(s.Contrast)
		th.Variant.Set(s.Variant)
	})
	slog.Info("theme: applied settings", "source", s.Source, "variant", th.Variant.Get(), "dark", s.Dark, "contrast", th.Contrast.Get())
	return nil
}

// Load opens the settings file with [OpenSettings] and applies it.
func (th *Theme) Load(filename string) error {
	s, err := OpenSettings(filename)
	if err != nil {
		return err
	}
	return th.Apply(s)
}
