// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides conversions between the color
// representations used across tint: [color.RGBA], hex strings,
// CSS color names, and packed [cie.ARGB] values.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/colors/cam/hct"
	"golang.org/x/image/colornames"
)

// IsNil returns whether the color is the nil initial default color
func IsNil(c color.Color) bool {
	return c == nil || AsRGBA(c) == color.RGBA{}
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsString returns the given color as a string,
// using its String method if it exists, and formatting
// it as rgba(r, g, b, a) otherwise.
func AsString(c color.Color) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	r := AsRGBA(c)
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r.R, r.G, r.B, r.A)
}

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found; see [MustFromName]
// and [LogFromName] for versions that do not return an error.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// MustFromName is like [FromName], except that it panics
// if the name is not found.
func MustFromName(name string) color.RGBA {
	return errors.Must1(FromName(name))
}

// LogFromName is like [FromName], except that it logs
// an error if the name is not found.
func LogFromName(name string) color.RGBA {
	return errors.Log1(FromName(name))
}

// FromString returns a color value from the given string.
// It accepts hex values (#rgb, #rrggbb, #rrggbbaa), CSS
// color names, and hct(hue, chroma, tone) triples.
// An empty string, "none", and "off" yield the nil color.
func FromString(str string) (color.RGBA, error) {
	lstr := strings.TrimSpace(strings.ToLower(str))
	switch {
	case lstr == "", lstr == "none", lstr == "off":
		return color.RGBA{}, nil
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "hct(") && strings.HasSuffix(lstr, ")"):
		fields := strings.Split(lstr[4:len(lstr)-1], ",")
		if len(fields) != 3 {
			return color.RGBA{}, fmt.Errorf("colors.FromString: hct needs 3 values: %q", str)
		}
		var v [3]float32
		for i, f := range fields {
			fv, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("colors.FromString: %q: %w", str, err)
			}
			v[i] = float32(fv)
		}
		return hct.New(v[0], v[1], v[2]).AsRGBA(), nil
	}
	if c, err := FromName(lstr); err == nil {
		return c, nil
	}
	// bare hex without the leading #
	if c, err := FromHex(lstr); err == nil {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("colors.FromString: could not process: %q", str)
}

// FromHex parses the given hex color string
// and returns the resulting color. It returns any
// resulting error; see [MustFromHex] for a
// version that does not return an error.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return color.RGBA{}, errors.New("colors.FromHex: invalid hex digit in: " + hex)
		}
	}
	var r, g, b, a int
	a = 255
	switch len(hex) {
	case 3:
		fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// MustFromHex is like [FromHex], except that it panics
// on any resulting error.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string.
// The alpha component is omitted when the color is opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// FromARGB returns the opaque color for the given packed ARGB value.
// The alpha byte of argb is honored.
func FromARGB(argb cie.ARGB) color.RGBA {
	return color.RGBA{uint8(argb >> 16), uint8(argb >> 8), uint8(argb), uint8(argb >> 24)}
}

// AsARGB returns the given color as a packed ARGB value,
// ignoring any transparency.
func AsARGB(c color.Color) cie.ARGB {
	r := AsRGBA(c)
	return cie.ARGBFromRGB(r.R, r.G, r.B)
}

// WithA returns the given color with the alpha component
// set to the given value, as a correctly premultiplied color.
func WithA(c color.Color, a uint8) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return AsRGBA(n)
}

// Inverse returns the inverse of the given color
// (255 - each component);
// does not change the alpha channel.
func Inverse(c color.Color) color.RGBA {
	r := AsRGBA(c)
	return color.RGBA{255 - r.R, 255 - r.G, 255 - r.B, r.A}
}
