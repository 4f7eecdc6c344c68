// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"testing"

	"cogentcore.org/tint/base/tolassert"
	"cogentcore.org/tint/colors/cam/cie"
	"github.com/stretchr/testify/assert"
)

func TestView(t *testing.T) {
	vw := NewStdView()
	assert.Same(t, vw, NewStdView())
	tolassert.EqualTol(t, 11.725676537, vw.AdaptingLuminance, 0.001)
	tolassert.EqualTol(t, 50.000000000, vw.BgLuminance, 0.001)
	tolassert.EqualTol(t, 2.000000000, vw.Surround, 0.001)
	tolassert.EqualTol(t, 0.184186503, vw.BgYToWhiteY, 0.001)
	tolassert.EqualTol(t, 29.980997194, vw.AW, 0.001)
	tolassert.EqualTol(t, 1.016919180, vw.NBB, 0.001)
	tolassert.EqualTol(t, 1.016919180, vw.NCB, 0.001)
	tolassert.EqualTol(t, 0.69, vw.C, 0.001)
	tolassert.EqualTol(t, 1.0, vw.NC, 0.001)
	tolassert.EqualTol(t, 0.388481454, vw.FL, 0.001)
	tolassert.EqualTol(t, 0.789482618, vw.FLRoot, 0.001)
	tolassert.EqualTol(t, 1.909169568, vw.Z, 0.001)

	tolassert.EqualTol(t, 1.021177703, vw.RGBD.X, 0.001)
	tolassert.EqualTol(t, 0.986307729, vw.RGBD.Y, 0.001)
	tolassert.EqualTol(t, 0.933960508, vw.RGBD.Z, 0.001)
}

func TestCAM(t *testing.T) {
	camw := FromARGB(0xffffffff)
	tolassert.EqualTol(t, 209.492, camw.Hue, 0.01)
	tolassert.EqualTol(t, 2.869, camw.Chroma, 0.01)
	tolassert.EqualTol(t, 100, camw.Lightness, 0.01)
	tolassert.EqualTol(t, 2.265, camw.Colorfulness, 0.01)
	tolassert.EqualTol(t, 12.068, camw.Saturation, 0.01)
	tolassert.EqualTol(t, 155.521, camw.Brightness, 0.01)

	camr := FromARGB(0xffff0000)
	tolassert.EqualTol(t, 27.408, camr.Hue, 0.01)
	tolassert.EqualTol(t, 113.358, camr.Chroma, 0.01)
	tolassert.EqualTol(t, 46.445, camr.Lightness, 0.01)

	camg := FromARGB(0xff00ff00)
	tolassert.EqualTol(t, 142.140, camg.Hue, 0.01)
	tolassert.EqualTol(t, 108.410, camg.Chroma, 0.01)
	tolassert.EqualTol(t, 79.332, camg.Lightness, 0.01)

	camb := FromARGB(0xff0000ff)
	tolassert.EqualTol(t, 282.788, camb.Hue, 0.01)
	tolassert.EqualTol(t, 87.231, camb.Chroma, 0.01)
	tolassert.EqualTol(t, 25.466, camb.Lightness, 0.01)
	tolassert.EqualTol(t, 68.867, camb.Colorfulness, 0.01)
	tolassert.EqualTol(t, 93.675, camb.Saturation, 0.01)
	tolassert.EqualTol(t, 78.481, camb.Brightness, 0.01)

	camp := FromARGB(0xff6750a4)
	tolassert.EqualTol(t, 298.981, camp.Hue, 0.01)
	tolassert.EqualTol(t, 47.857, camp.Chroma, 0.01)
}

func TestXYZ(t *testing.T) {
	tests := [][3]float32{{0.5, 0.1, 0.6}, {0.3, 0.5, 0.1}, {0.4, 0.2, 0.8}, {0.777, 0.424, 0.521}}
	for _, test := range tests {
		x, y, z := cie.SRGBToXYZ100(test[0], test[1], test[2])
		cam := FromXYZ(x, y, z)
		xc, yc, zc := cam.XYZ()
		tolassert.EqualTol(t, x, xc, 0.01)
		tolassert.EqualTol(t, y, yc, 0.01)
		tolassert.EqualTol(t, z, zc, 0.01)
		rf, gf, bf := cie.XYZ100ToSRGB(xc, yc, zc)
		tolassert.EqualTol(t, test[0], rf, 0.001)
		tolassert.EqualTol(t, test[1], gf, 0.001)
		tolassert.EqualTol(t, test[2], bf, 0.001)
	}
	for _, argb := range []cie.ARGB{0xff6750a4, 0xff000000, 0xffffffff, 0xff00ff00} {
		assert.Equal(t, argb, FromARGB(argb).ARGB())
	}
	// out of gamut appearances clip rather than wrap around
	r, g, _ := cie.RGBFromARGB(FromJCH(60, 200, 140).ARGB())
	assert.Equal(t, uint8(0), r)
	assert.Greater(t, g, uint8(128))
	assert.Equal(t, cie.ARGB(0xff000000), FromJCH(0, 50, 120).ARGB())
}

func TestJCH(t *testing.T) {
	for _, argb := range []cie.ARGB{0xff6750a4, 0xff0000ff, 0xff808080} {
		cam := FromARGB(argb)
		jch := FromJCH(cam.Lightness, cam.Chroma, cam.Hue)
		tolassert.EqualTol(t, cam.Colorfulness, jch.Colorfulness, 0.01)
		tolassert.EqualTol(t, cam.Saturation, jch.Saturation, 0.01)
		tolassert.EqualTol(t, cam.Brightness, jch.Brightness, 0.01)
		assert.Equal(t, argb, jch.ARGB())
	}
}

func TestUCS(t *testing.T) {
	camb := FromARGB(0xff0000ff)
	j, _, a, b := camb.UCS()
	tolassert.EqualTol(t, 36.742, j, 0.01)
	tolassert.EqualTol(t, 9.164, a, 0.01)
	tolassert.EqualTol(t, -40.375, b, 0.01)

	for _, argb := range []cie.ARGB{0xffffff00, 0xff0000ff, 0xff6633cc} {
		cam := FromARGB(argb)
		j, _, a, b := cam.UCS()
		ccam := FromUCS(j, a, b)
		tolassert.EqualTol(t, cam.Chroma, ccam.Chroma, 0.01)
		tolassert.EqualTol(t, cam.Lightness, ccam.Lightness, 0.01)
		tolassert.EqualTol(t, cam.Colorfulness, ccam.Colorfulness, 0.01)
		tolassert.EqualTol(t, cam.Saturation, ccam.Saturation, 0.01)
		tolassert.EqualTol(t, cam.Brightness, ccam.Brightness, 0.01)
		assert.InDelta(t, 0, cam.Distance(ccam), 0.2)
	}
	red, blue := FromARGB(0xffff0000), FromARGB(0xff0000ff)
	d := red.Distance(blue)
	tolassert.EqualTol(t, 21.4, d, 1)
	assert.Equal(t, d, blue.Distance(red))
	assert.Less(t, red.Distance(FromARGB(0xffff1a00)), d)
}

func TestInCyclicOrder(t *testing.T) {
	assert.True(t, InCyclicOrder(0.1, 0.5, 1))
	assert.False(t, InCyclicOrder(0.1, 1, 0.5))
	assert.True(t, InCyclicOrder(6, 0.1, 0.5))
	tolassert.EqualTol(t, 0.5, InverseChromaticAdapt(ChromaticAdapt(0.5)), 0.0001)
	tolassert.EqualTol(t, -2, InverseChromaticAdapt(ChromaticAdapt(-2)), 0.0001)
	assert.Equal(t, float32(0), ChromaticAdapt(0))
}
