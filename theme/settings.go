// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"strings"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/base/iox/tomlx"
	"cogentcore.org/tint/base/iox/yamlx"
	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/matcolor"
)

// Settings are the saved settings of a [Theme].
type Settings struct {

	// Source is the color the scheme is generated from, as a hex
	// string, a color name, or an hct(hue, chroma, tone) triple
	Source string `toml:"source" yaml:"source"`

	// Variant is the style of the scheme
	Variant matcolor.Variant `toml:"variant" yaml:"variant"`

	// Dark is whether to use the dark scheme
	Dark bool `toml:"dark" yaml:"dark"`

	// Contrast is the contrast level in [-1, 1]: 0 is the standard
	// contrast, and 0.5 and 1 are medium and high contrast
	Contrast float32 `toml:"contrast" yaml:"contrast"`
}

// DefaultSettings returns the default settings: a tonal spot light
// scheme at standard contrast from Google Blue (#4285f4).
func DefaultSettings() Settings {
	return Settings{Source: "#4285F4", Variant: matcolor.TonalSpot}
}

// SourceColor returns the parsed [Settings.Source] color.
func (s *Settings) SourceColor() (color.RGBA, error) {
	c, err := colors.FromString(s.Source)
	if err != nil {
		return c, err
	}
	if colors.IsNil(c) {
		return c, fmt.Errorf("theme: empty source color %q", s.Source)
	}
	return c, nil
}

// isYAML returns whether the filename has a YAML extension.
func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// OpenSettings opens settings from the given file, starting from
// [DefaultSettings] so that missing fields keep their default values.
// The file is assumed to be in TOML unless it has a .yaml or .yml
// extension.
func OpenSettings(filename string) (Settings, error) {
	s := DefaultSettings()
	var err error
	if isYAML(filename) {
		err = yamlx.Open(&s, filename)
	} else {
		err = tomlx.Open(&s, filename)
	}
	return s, err
}

// LoadSettings is like [OpenSettings], except that a missing
// file is not an error and yields the default settings.
func LoadSettings(filename string) (Settings, error) {
	s, err := OpenSettings(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	return s, err
}

// Save saves the settings to the given file, in TOML unless it
// has a .yaml or .yml extension.
func (s *Settings) Save(filename string) error {
	if isYAML(filename) {
		return yamlx.Save(s, filename)
	}
	return tomlx.Save(s, filename)
}
