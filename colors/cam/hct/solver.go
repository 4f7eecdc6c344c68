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

package hct

import (
	"cogentcore.org/tint/colors/cam/cam16"
	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/math32"
)

// Solve returns the opaque color with the given hue, chroma, and tone.
// When the requested chroma is outside of the sRGB gamut for that hue and
// tone, the color with the highest reachable chroma is returned instead;
// hue and tone are preserved as closely as possible.
func Solve(hue, chroma, tone float32) cie.ARGB {
	if chroma < 0.0001 || tone < 0.0001 || tone > 99.9999 {
		return cie.ARGBFromL(tone)
	}
	hue = math32.SanitizeDegrees(hue)
	hr := math32.DegToRad(hue)
	y := cie.LToY(tone)
	if exact, ok := findResultByJ(hr, chroma, y); ok {
		return exact
	}
	lin := bisectToLimit(y, hr)
	return cie.ARGBFromLinear(lin.X, lin.Y, lin.Z)
}

// SolveToRGB returns the gamma corrected 0-1 normalized sRGB values of
// the color that [Solve] returns for the given hue, chroma, and tone.
func SolveToRGB(hue, chroma, tone float32) (r, g, b float32) {
	ri, gi, bi := cie.RGBFromARGB(Solve(hue, chroma, tone))
	return float32(ri) / 255, float32(gi) / 255, float32(bi) / 255
}

// findResultByJ iterates on the CAM16 lightness J with Newton's method
// until the relative luminance of the candidate matches y. It fails
// when any candidate falls outside of the sRGB cube.
func findResultByJ(hueRadians, chroma, y float32) (cie.ARGB, bool) {
	// Initial estimate of j.
	j := math32.Sqrt(y) * 11
	vw := cam16.NewStdView()
	tInnerCoeff := 1 / math32.Pow(1.64-math32.Pow(0.29, vw.BgYToWhiteY), 0.73)
	eHue := 0.25 * (math32.Cos(hueRadians+2) + 3.8)
	p1 := eHue * (50000.0 / 13.0) * vw.NC * vw.NCB
	hSin := math32.Sin(hueRadians)
	hCos := math32.Cos(hueRadians)
	for iter := range 5 {
		jNorm := j / 100
		alpha := float32(0)
		if chroma != 0 && j != 0 {
			alpha = chroma / math32.Sqrt(jNorm)
		}
		t := math32.Pow(alpha*tInnerCoeff, 1/0.9)
		ac := vw.AW * math32.Pow(jNorm, 1/vw.C/vw.Z)
		p2 := ac / vw.NBB
		gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
		a := gamma * hCos
		b := gamma * hSin
		rA := (460*p2 + 451*a + 288*b) / 1403
		gA := (460*p2 - 891*a - 261*b) / 1403
		bA := (460*p2 - 220*a - 6300*b) / 1403
		scaled := math32.Vec3(cam16.InverseChromaticAdapt(rA), cam16.InverseChromaticAdapt(gA), cam16.InverseChromaticAdapt(bA))
		lin := linrgbFromScaledDiscount.MulVector3(scaled)
		if lin.X < 0 || lin.Y < 0 || lin.Z < 0 {
			return 0, false
		}
		fnj := yFromLinrgb[0]*lin.X + yFromLinrgb[1]*lin.Y + yFromLinrgb[2]*lin.Z
		if fnj <= 0 {
			return 0, false
		}
		if iter == 4 || math32.Abs(fnj-y) < 0.002 {
			if lin.X > 100.01 || lin.Y > 100.01 || lin.Z > 100.01 {
				return 0, false
			}
			return cie.ARGBFromLinear(lin.X, lin.Y, lin.Z), true
		}
		// 2 * fn(j) / j is an approximation of fn'(j).
		j -= (fnj - y) * j / (2 * fnj)
	}
	return 0, false
}
