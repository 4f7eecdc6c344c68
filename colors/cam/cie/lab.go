// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/tint/math32"

// LABCompress does cube-root compression of the X, Y, Z components
// prior to performing the LAB conversion
func LABCompress(t float32) float32 {
	e := float32(216.0 / 24389.0)
	if t > e {
		return math32.Pow(t, 1.0/3.0)
	}
	kappa := float32(24389.0 / 27.0)
	return (kappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float32) float32 {
	e := float32(216.0 / 24389.0)
	ft3 := ft * ft * ft
	if ft3 > e {
		return ft3
	}
	kappa := float32(24389.0 / 27.0)
	return (116*ft - 16) / kappa
}

// XYZToLAB converts a color from XYZ to L*a*b*
// coordinates using the standard D65 illuminant.
// XYZ values are in the 0-1 range.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(100 * x / WhiteD65.X)
	fy := LABCompress(100 * y / WhiteD65.Y)
	fz := LABCompress(100 * z / WhiteD65.Z)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts a color from L*a*b* to XYZ
// coordinates using the standard D65 illuminant.
// XYZ values are in the 0-1 range.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65.X / 100
	y = LABUncompress(fy) * WhiteD65.Y / 100
	z = LABUncompress(fz) * WhiteD65.Z / 100
	return
}

// LToY converts an L* value to a Y value (0-100 range).
// L* in L*a*b* and Y in XYZ measure the same quantity, luminance.
// L* measures perceptual luminance, a linear scale. Y in XYZ
// measures relative luminance, a logarithmic scale.
func LToY(l float32) float32 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts a Y value (0-100 range) to an L* value.
// See [LToY].
func YToL(y float32) float32 {
	return LABCompress(y/100)*116 - 16
}
