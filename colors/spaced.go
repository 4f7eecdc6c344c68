// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/tint/colors/cam/hct"
)

// blue, red, green, yellow, violet, aqua, orange, blueviolet
var spacedHues = []float32{255, 25, 150, 105, 340, 210, 60, 300}

var (
	spacedTones   = []float32{65, 80, 45, 65, 80}
	spacedChromas = []float32{90, 90, 90, 20, 20}

	spacedOffsetsLight = []float32{0, -10, 0, 5, 0, 0, 5, 0}
	spacedOffsetsDark  = []float32{0, -10, 0, 10, 0, 0, 5, 0}
)

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HCT space.
// This is useful, for example, for assigning colors in graphs
// or to the roles of a color scheme listing.
func Spaced(idx int, dark bool) color.RGBA {
	toffs := spacedOffsetsLight
	if dark {
		toffs = spacedOffsetsDark
	}
	ncats := len(spacedHues)
	hi := idx % ncats
	tci := (idx / ncats) % len(spacedTones)
	tone := toffs[hi] + spacedTones[tci]
	return hct.New(spacedHues[hi], spacedChromas[tci], tone).AsRGBA()
}
