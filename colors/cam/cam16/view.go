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
	"sync"

	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/math32"
)

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. Defaults represent the
// standard defined such conditions, under which the CAM16 computations operate.
type View struct {

	// white point illumination; typically [cie.WhiteD65]
	WhitePoint math32.Vector3

	// the ambient light strength in lux
	Luminance float32 `default:"200"`

	// the average luminance of 10 degrees around the color in question
	BgLuminance float32 `default:"50"`

	// the brightness of the entire environment
	Surround float32 `default:"2"`

	// whether the person's eyes have adapted to the lighting
	Adapted bool `default:"false"`

	// computed from Luminance
	AdaptingLuminance float32 `display:"-"`

	BgYToWhiteY float32 `display:"-"`

	AW float32 `display:"-"`

	// luminance level induction factor
	NBB float32 `display:"-"`

	// luminance level induction factor
	NCB float32 `display:"-"`

	// exponential nonlinearity
	C float32 `display:"-"`

	// chromatic induction factor
	NC float32 `display:"-"`

	// luminance-level adaptation factor, based on the HuntLiLuo03 equations
	FL float32 `display:"-"`

	// FL to the 1/4 power
	FLRoot float32 `display:"-"`

	// base exponential nonlinearity
	Z float32 `display:"-"`

	// cone responses to white point, adjusted for discounting
	RGBD math32.Vector3 `display:"-"`
}

// NewView returns a new view with all parameters initialized based on given major params
func NewView(whitePoint math32.Vector3, lum, bgLum, surround float32, adapt bool) *View {
	vw := &View{WhitePoint: whitePoint, Luminance: lum, BgLuminance: bgLum, Surround: surround, Adapted: adapt}
	vw.Update()
	return vw
}

// stdView is the standard viewing conditions, created on first use.
var stdView = sync.OnceValue(func() *View {
	return NewView(cie.WhiteD65, 200, 50, 2, false)
})

// NewStdView returns the standard viewing conditions model,
// which is shared and must not be modified.
func NewStdView() *View {
	return stdView()
}

// Update updates all the computed values based on main parameters
func (vw *View) Update() {
	vw.AdaptingLuminance = (vw.Luminance / math32.Pi) * (cie.LToY(50) / 100)
	// A background of pure black is non-physical and leads to infinities that
	// represent the idea that any color viewed in pure black can't be seen.
	vw.BgLuminance = math32.Max(0.1, vw.BgLuminance)

	// Transform test illuminant white in XYZ to 'cone'/'rgb' responses
	rW, gW, bW := XYZToLMS(vw.WhitePoint.X, vw.WhitePoint.Y, vw.WhitePoint.Z)

	// Scale input surround, domain (0, 2), to CAM16 surround, domain (0.8, 1.0)
	vw.Surround = math32.Clamp(vw.Surround, 0, 2)
	f := 0.8 + (vw.Surround / 10)
	// "Exponential non-linearity"
	if f >= 0.9 {
		vw.C = math32.Lerp(0.59, 0.69, ((f - 0.9) * 10))
	} else {
		vw.C = math32.Lerp(0.525, 0.59, ((f - 0.8) * 10))
	}
	// Calculate degree of adaptation to illuminant
	d := float32(1)
	if !vw.Adapted {
		d = f * (1 - ((1 / 3.6) * math32.Exp((-vw.AdaptingLuminance-42)/92)))
	}

	// Per Li et al, if D is greater than 1 or less than 0, set it to 1 or 0.
	d = math32.Clamp(d, 0, 1)

	// chromatic induction factor
	vw.NC = f

	// Cone responses to the whitePoint, r/g/b/W, adjusted for discounting.
	// This uses 100 rather than the white point's relative luminance,
	// following Fairchild's Color Appearance Models (3rd edition).
	vw.RGBD.X = d*(100/rW) + 1 - d
	vw.RGBD.Y = d*(100/gW) + 1 - d
	vw.RGBD.Z = d*(100/bW) + 1 - d

	// Factor used in calculating meaningful factors
	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4

	// Luminance-level adaptation factor
	vw.FL = (k4 * vw.AdaptingLuminance) +
		(0.1 * k4F * k4F * math32.Cbrt(5*vw.AdaptingLuminance))

	vw.FLRoot = math32.Pow(vw.FL, 0.25)

	// Intermediate factor, ratio of background relative luminance to white relative luminance
	n := cie.LToY(vw.BgLuminance) / vw.WhitePoint.Y
	vw.BgYToWhiteY = n

	// Base exponential nonlinearity
	// note Schlomer 2018 has a typo and uses 1.58, the correct factor is 1.48
	vw.Z = 1.48 + math32.Sqrt(n)

	// Luminance-level induction factors
	vw.NBB = 0.725 / math32.Pow(n, 0.2)
	vw.NCB = vw.NBB

	// Discounted cone responses to the white point, adjusted for post-saturation
	// adaptation perceptual nonlinearities.
	rA, gA, bA := LuminanceAdapt(rW, gW, bW, vw)

	vw.AW = ((40*rA + 20*gA + bA) / 20) * vw.NBB
}

// correlates returns the appearance with the given lightness (J),
// chroma (C), and hue (h), deriving the other correlates for this view.
func (vw *View) correlates(j, c, h float32) *CAM {
	alpha := float32(0)
	if j > 0 {
		alpha = c / math32.Sqrt(j/100)
	}
	return &CAM{
		Hue:          h,
		Chroma:       c,
		Lightness:    j,
		Colorfulness: c * vw.FLRoot,
		Saturation:   50 * math32.Sqrt(alpha*vw.C/(vw.AW+4)),
		Brightness:   (4 / vw.C) * math32.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot,
	}
}

// lightness returns the lightness (J) for the achromatic response ac.
func (vw *View) lightness(ac float32) float32 {
	return 100 * math32.Pow(ac/vw.AW, vw.C*vw.Z)
}

// chromaScale is the background dependent factor relating the
// chromatic response t to the chroma alpha.
func (vw *View) chromaScale() float32 {
	return math32.Pow(1.64-math32.Pow(0.29, vw.BgYToWhiteY), 0.73)
}

// eccentricity returns the hue eccentricity factor for the hue in
// radians, scaled by the chromatic induction factors.
func (vw *View) eccentricity(hr float32) float32 {
	return 0.25 * (math32.Cos(hr+2) + 3.8) * (50000.0 / 13.0) * vw.NC * vw.NCB
}
