// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages.
// It is on by default when the output supports it.
var UseColor = true

// colorProfile is the termenv color profile, stored globally for convenience.
// It is set by [SetColorProfile] to [termenv.ColorProfile] by default.
var colorProfile termenv.Profile

func init() {
	SetColorProfile(termenv.ColorProfile())
}

// SetColorProfile sets the color profile used for coloring
// log messages. [termenv.Ascii] disables coloring.
func SetColorProfile(p termenv.Profile) {
	colorProfile = p
}

// ApplyColor applies the given hex color to the given string
// and returns the resulting string. If [UseColor] is false,
// it just returns the string it was passed.
func ApplyColor(hex string, str string) string {
	if !UseColor {
		return str
	}
	return colorProfile.String(str).Foreground(colorProfile.Color(hex)).String()
}

// LevelColor applies the color associated with the given level to the
// given string and returns the resulting string.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level >= slog.LevelError:
		return ApplyColor("#ba1a1a", str)
	case level >= slog.LevelWarn:
		return ApplyColor("#b06000", str)
	case level >= slog.LevelInfo:
		return ApplyColor("#006a6a", str)
	}
	return ApplyColor("#6750a4", str)
}
