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

package cam16

import (
	"cogentcore.org/tint/math32"
)

// XYZToLMSMatrix converts XYZ to the LMS cone response space.
var XYZToLMSMatrix = math32.Matrix3{
	{0.401288, 0.650173, -0.051461},
	{-0.250268, 1.204414, 0.045854},
	{-0.002079, 0.048952, 0.953127},
}

// XYZToLMS converts XYZ to Long, Medium, Short cone-based responses,
// using the CAM16 transform
func XYZToLMS(x, y, z float32) (l, m, s float32) {
	v := XYZToLMSMatrix.MulVector3(math32.Vec3(x, y, z))
	return v.X, v.Y, v.Z
}

// ChromaticAdapt applies the post-adaptation nonlinear compression
// to a single discounted, luminance-scaled cone response.
func ChromaticAdapt(c float32) float32 {
	af := math32.Pow(math32.Abs(c), 0.42)
	return math32.Signum(c) * 400 * af / (af + 27.13)
}

// InverseChromaticAdapt is the inverse of [ChromaticAdapt].
func InverseChromaticAdapt(adapted float32) float32 {
	aa := math32.Abs(adapted)
	base := max(0, 27.13*aa/(400-aa))
	return math32.Signum(adapted) * math32.Pow(base, 1/0.42)
}

// LuminanceAdaptComp performs luminance adaptation
// based on the discount factor d and the luminance adaptation
// factor fl for a single LMS component.
func LuminanceAdaptComp(v, d, fl float32) float32 {
	return ChromaticAdapt(fl * d * v / 100)
}

// LuminanceAdapt performs luminance adaptation of the given
// LMS responses under the given viewing conditions.
func LuminanceAdapt(l, m, s float32, vw *View) (lA, mA, sA float32) {
	lA = LuminanceAdaptComp(l, vw.RGBD.X, vw.FL)
	mA = LuminanceAdaptComp(m, vw.RGBD.Y, vw.FL)
	sA = LuminanceAdaptComp(s, vw.RGBD.Z, vw.FL)
	return
}

// LMSToOps converts LMS to opponent-process coordinates:
// redVgreen (a), yellowVblue (b), the achromatic response (grey)
// and the normalizing response used for chroma (greyNorm).
func LMSToOps(l, m, s float32, vw *View) (redVgreen, yellowVblue, grey, greyNorm float32) {
	lA, mA, sA := LuminanceAdapt(l, m, s, vw)
	redVgreen = (11*lA - 12*mA + sA) / 11
	yellowVblue = (lA + mA - 2*sA) / 9
	greyNorm = (20*lA + 20*mA + 21*sA) / 20
	grey = (40*lA + 20*mA + sA) / 20
	return
}

// InCyclicOrder returns whether a, b, c are in counter-clockwise
// cyclic order, for angles in radians.
func InCyclicOrder(a, b, c float32) bool {
	return math32.SanitizeRadians(b-a) < math32.SanitizeRadians(c-a)
}
