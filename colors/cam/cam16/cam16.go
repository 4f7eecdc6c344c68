// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cam16 implements the CAM16 color appearance model,
// which supplies the hue and chroma of HCT colors.
package cam16

import (
	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/math32"
)

// CAM is a color described by its CAM16 appearance correlates.
type CAM struct {

	// Hue (h) in degrees, in [0, 360).
	Hue float32

	// Chroma (C) is colorfulness relative to the brightness of white.
	// Grays have a chroma near 0.
	Chroma float32

	// Colorfulness (M) is the absolute chromatic intensity.
	Colorfulness float32

	// Saturation (s) is colorfulness relative to brightness.
	Saturation float32

	// Brightness (Q) is the absolute perceived amount of light.
	Brightness float32

	// Lightness (J) is brightness relative to white.
	Lightness float32
}

// lmsToXYZ is the inverse of [XYZToLMSMatrix].
var lmsToXYZ = math32.Matrix3{
	{1.86206786, -1.01125463, 0.14918677},
	{0.38752654, 0.62144744, -0.00897398},
	{-0.01584150, -0.03412294, 1.04996444},
}

// FromARGB returns the appearance of the given opaque sRGB color
// under standard viewing conditions.
func FromARGB(argb cie.ARGB) *CAM {
	return FromXYZ(cie.XYZ100FromARGB(argb))
}

// FromXYZ returns the appearance of the given 100-base XYZ color
// under standard viewing conditions.
func FromXYZ(x, y, z float32) *CAM {
	return FromXYZView(x, y, z, NewStdView())
}

// FromXYZView returns the appearance of the given 100-base XYZ color
// under the given viewing conditions.
func FromXYZView(x, y, z float32, vw *View) *CAM {
	l, m, s := XYZToLMS(x, y, z)
	rg, yb, grey, greyNorm := LMSToOps(l, m, s, vw)
	hue := math32.SanitizeDegrees(math32.RadToDeg(math32.Atan2(yb, rg)))
	j := vw.lightness(grey * vw.NBB)
	t := vw.eccentricity(math32.DegToRad(hue)) * math32.Hypot(rg, yb) / (greyNorm + 0.305)
	alpha := math32.Pow(t, 0.9) * vw.chromaScale()
	return vw.correlates(j, alpha*math32.Sqrt(j/100), hue)
}

// FromJCH returns the appearance with the given lightness (J), chroma (C),
// and hue (h) under standard viewing conditions.
func FromJCH(j, c, h float32) *CAM {
	return NewStdView().correlates(j, c, h)
}

// FromUCS returns the appearance at the given CAM16-UCS coordinates
// under standard viewing conditions. It is the inverse of [CAM.UCS].
func FromUCS(jstar, astar, bstar float32) *CAM {
	vw := NewStdView()
	m := (math32.Exp(math32.Hypot(astar, bstar)*0.0228) - 1) / 0.0228
	h := math32.SanitizeDegrees(math32.RadToDeg(math32.Atan2(bstar, astar)))
	j := jstar / (1 - (jstar-100)*0.007)
	return vw.correlates(j, m/vw.FLRoot, h)
}

// UCS returns the CAM16-UCS coordinates of the color: the
// uniform lightness jstar, colorfulness mstar, and the
// opponent coordinates astar and bstar.
func (cam *CAM) UCS() (jstar, mstar, astar, bstar float32) {
	jstar = 1.7 * cam.Lightness / (1 + 0.007*cam.Lightness)
	mstar = math32.Log(1+0.0228*cam.Colorfulness) / 0.0228
	hr := math32.DegToRad(cam.Hue)
	return jstar, mstar, mstar * math32.Cos(hr), mstar * math32.Sin(hr)
}

// Distance returns the perceptual distance between two colors,
// from their CAM16-UCS coordinates.
func (cam *CAM) Distance(other *CAM) float32 {
	j1, _, a1, b1 := cam.UCS()
	j2, _, a2, b2 := other.UCS()
	de := math32.Sqrt((j1-j2)*(j1-j2) + (a1-a2)*(a1-a2) + (b1-b2)*(b1-b2))
	return 1.41 * math32.Pow(de, 0.63)
}

// ARGB returns the sRGB color with this appearance under standard
// viewing conditions, clipping out of gamut components.
func (cam *CAM) ARGB() cie.ARGB {
	r, g, b := cie.XYZ100ToSRGB(cam.XYZ())
	r8, g8, b8, _ := cie.SRGBFloatToUint8(math32.Clamp(r, 0, 1), math32.Clamp(g, 0, 1), math32.Clamp(b, 0, 1), 1)
	return cie.ARGBFromRGB(r8, g8, b8)
}

// XYZ returns the 100-base XYZ color with this appearance
// under standard viewing conditions.
func (cam *CAM) XYZ() (x, y, z float32) {
	return cam.XYZView(NewStdView())
}

// XYZView returns the 100-base XYZ color with this appearance
// under the given viewing conditions.
func (cam *CAM) XYZView(vw *View) (x, y, z float32) {
	alpha := float32(0)
	if cam.Chroma != 0 && cam.Lightness != 0 {
		alpha = cam.Chroma / math32.Sqrt(cam.Lightness/100)
	}
	t := math32.Pow(alpha/vw.chromaScale(), 1/0.9)
	hr := math32.DegToRad(cam.Hue)
	hSin, hCos := math32.Sin(hr), math32.Cos(hr)

	p1 := vw.eccentricity(hr)
	p2 := vw.AW * math32.Pow(cam.Lightness/100, 1/vw.C/vw.Z) / vw.NBB
	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a, b := gamma*hCos, gamma*hSin

	// opponent coordinates back to adapted cone responses, then undo
	// the adaptation and the discounting of the white point
	adapted := math32.Vec3(460*p2+451*a+288*b, 460*p2-891*a-261*b, 460*p2-220*a-6300*b).MulScalar(1.0 / 1403)
	lms := math32.Vec3(
		InverseChromaticAdapt(adapted.X)/vw.RGBD.X,
		InverseChromaticAdapt(adapted.Y)/vw.RGBD.Y,
		InverseChromaticAdapt(adapted.Z)/vw.RGBD.Z,
	).MulScalar(100 / vw.FL)
	v := lmsToXYZ.MulVector3(lms)
	return v.X, v.Y, v.Z
}
