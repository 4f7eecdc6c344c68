// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/tint/math32"

// WhiteD65 is the standard D65 white point in 100-base XYZ coordinates.
var WhiteD65 = math32.Vec3(95.047, 100.0, 108.883)

// SRGBLinToXYZMatrix converts linear sRGB to 0-1 XYZ.
var SRGBLinToXYZMatrix = math32.Matrix3{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// XYZToSRGBLinMatrix is the inverse of [SRGBLinToXYZMatrix].
var XYZToSRGBLinMatrix = math32.Matrix3{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	v := SRGBLinToXYZMatrix.MulVector3(math32.Vec3(rl, gl, bl))
	return v.X, v.Y, v.Z
}

// XYZToSRGBLin converts XYZ CIE standard color space to sRGB linear
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	v := XYZToSRGBLinMatrix.MulVector3(math32.Vec3(x, y, z))
	return v.X, v.Y, v.Z
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	x, y, z = SRGBLinToXYZ(rl, gl, bl)
	return
}

// SRGBToXYZ100 converts sRGB into XYZ CIE standard color space
// with 100-base sRGB values -- used for CAM16 but not CAM02
func SRGBToXYZ100(r, g, b float32) (x, y, z float32) {
	rl, gl, bl := SRGB100ToLinear(r, g, b)
	x, y, z = SRGBLinToXYZ(rl, gl, bl)
	return
}

// XYZToSRGB converts XYZ CIE standard color space into sRGB
func XYZToSRGB(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	r, g, b = SRGBFromLinear(rl, gl, bl)
	return
}

// XYZ100ToSRGB converts XYZ CIE standard color space, 100-base values,
// into sRGB standard color space.
func XYZ100ToSRGB(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZToSRGBLin(x/100, y/100, z/100)
	r, g, b = SRGBFromLinear(rl, gl, bl)
	return
}
