// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/tint/math32"

// ARGB is an opaque color packed as 0xAARRGGBB, the form in which
// palettes and schemes exchange colors.
type ARGB = uint32

// ARGBFromRGB returns an opaque [ARGB] color from 8-bit components.
func ARGBFromRGB(r, g, b uint8) ARGB {
	return 0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// RGBFromARGB returns the 8-bit components of the given [ARGB] color.
func RGBFromARGB(argb ARGB) (r, g, b uint8) {
	return uint8(argb >> 16), uint8(argb >> 8), uint8(argb)
}

// ARGBFromLinear returns the [ARGB] color closest to the given
// linear RGB components in the 0-100 range.
func ARGBFromLinear(rl, gl, bl float32) ARGB {
	r, g, b := SRGBFromLinear100(rl, gl, bl)
	return ARGBFromRGB(uint8(math32.Round(r*255)), uint8(math32.Round(g*255)), uint8(math32.Round(b*255)))
}

// XYZ100FromARGB returns the 100-base XYZ coordinates of the given [ARGB] color.
func XYZ100FromARGB(argb ARGB) (x, y, z float32) {
	r, g, b := RGBFromARGB(argb)
	return SRGBToXYZ100(float32(r)/255, float32(g)/255, float32(b)/255)
}

// LFromARGB returns the L* (tone) of the given [ARGB] color.
func LFromARGB(argb ARGB) float32 {
	_, y, _ := XYZ100FromARGB(argb)
	return YToL(y)
}

// ARGBFromL returns the grey [ARGB] color with the given L* (tone).
func ARGBFromL(l float32) ARGB {
	y := LToY(l)
	c := uint8(math32.Round(SRGBFromLinearComp(y/100) * 255))
	return ARGBFromRGB(c, c, c)
}
