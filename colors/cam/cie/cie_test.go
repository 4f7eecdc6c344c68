// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/tint/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestSRGB(t *testing.T) {
	tolassert.Equal(t, float32(0.00015479876), SRGBToLinearComp(0.002))
	tolassert.Equal(t, float32(0.23302202), SRGBToLinearComp(0.52))

	tolassert.Equal(t, float32(0.012920001), SRGBFromLinearComp(0.001))
	tolassert.Equal(t, float32(0.84338915), SRGBFromLinearComp(0.68))
	assert.Equal(t, float32(0), SRGBFromLinearComp(-0.2))
	assert.Equal(t, float32(1), SRGBFromLinearComp(1.3))

	rl, gl, bl := SRGB100ToLinear(0.3, 0.2, 0.6)
	tolassert.Equal(t, float32(7.323897), rl)
	tolassert.Equal(t, float32(3.3104763), gl)
	tolassert.Equal(t, float32(31.854683), bl)

	r, g, b := SRGBFromLinear(0.12, 0.34, 0.78)
	tolassert.Equal(t, float32(0.38109186), r)
	tolassert.Equal(t, float32(0.61803144), g)
	tolassert.Equal(t, float32(0.8962438), b)

	r, g, b = SRGBFromLinear100(12, 34, 78)
	tolassert.Equal(t, float32(0.38109186), r)
	tolassert.Equal(t, float32(0.61803144), g)
	tolassert.Equal(t, float32(0.8962438), b)

	ur, ug, ub, ua := SRGBFloatToUint8(0.36, 0.81, 0.41, 0.9)
	assert.Equal(t, uint8(0x53), ur)
	assert.Equal(t, uint8(0xba), ug)
	assert.Equal(t, uint8(0x5e), ub)
	assert.Equal(t, uint8(0xe6), ua)

	ur32, ug32, ub32, ua32 := SRGBFloatToUint32(0.36, 0.81, 0.41, 0.9)
	assert.Equal(t, uint32(0x52f1), ur32)
	assert.Equal(t, uint32(0xba9f), ug32)
	assert.Equal(t, uint32(0x5e76), ub32)
	assert.Equal(t, uint32(0xe666), ua32)

	fr, fg, fb, fa := SRGBUint8ToFloat(18, 201, 157, 198)
	tolassert.Equal(t, float32(0.09090909), fr)
	tolassert.Equal(t, float32(1.0151515), fg)
	tolassert.Equal(t, float32(0.7929293), fb)
	tolassert.Equal(t, float32(0.7764706), fa)

	fr, fg, fb, fa = SRGBUint32ToFloat(21022, 10836, 15893, 27980)
	tolassert.Equal(t, float32(0.7513223), fr)
	tolassert.Equal(t, float32(0.3872766), fg)
	tolassert.Equal(t, float32(0.56801283), fb)
	tolassert.Equal(t, float32(0.42694744), fa)
}

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	tolassert.Equal(t, float32(0.5470991), x)
	tolassert.Equal(t, float32(0.58596003), y)
	tolassert.Equal(t, float32(0.74640036), z)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.Equal(t, float32(0.5), rl)
	tolassert.Equal(t, float32(0.6), gl)
	tolassert.Equal(t, float32(0.7), bl)

	x, y, z = XYZ100FromARGB(0xff6750a4)
	tolassert.EqualTol(t, float32(15.162744), x, 0.01)
	tolassert.EqualTol(t, float32(11.301222), y, 0.01)
	tolassert.EqualTol(t, float32(36.49837), z, 0.01)

	r, g, b := XYZ100ToSRGB(x, y, z)
	tolassert.Equal(t, float32(0x67)/255, r)
	tolassert.Equal(t, float32(0x50)/255, g)
	tolassert.Equal(t, float32(0xa4)/255, b)
}

func TestLAB(t *testing.T) {
	tolassert.Equal(t, float32(0.887904), LABCompress(0.7))
	tolassert.Equal(t, float32(0.1379544), LABCompress(0.000003))
	tolassert.Equal(t, float32(0.21600002), LABUncompress(0.6))

	l, a, b := XYZToLAB(0.1, 0.3, 0.5)
	tolassert.EqualTol(t, float32(61.65422), l, 0.01)
	tolassert.EqualTol(t, float32(-98.673805), a, 0.01)
	tolassert.EqualTol(t, float32(-20.413673), b, 0.01)

	x, y, z := LABToXYZ(28, 14, 36.2)
	tolassert.Equal(t, float32(0.06422656), x)
	tolassert.Equal(t, float32(0.054573778), y)
	tolassert.Equal(t, float32(0.008442593), z)

	tolassert.Equal(t, float32(2.3023312), LToY(17))
	tolassert.Equal(t, float32(21.579498), YToL(3.4))
}

// TestLABColorful checks the L*a*b* conversion against go-colorful,
// which uses a slightly different sRGB matrix.
func TestLABColorful(t *testing.T) {
	tests := [][3]float32{{1, 1, 1}, {0, 0, 0}, {1, 0, 0}, {0.2, 0.6, 0.3}, {0.404, 0.314, 0.643}, {0.9, 0.85, 0.1}}
	for _, test := range tests {
		l, a, b := XYZToLAB(SRGBToXYZ(test[0], test[1], test[2]))
		c := colorful.Color{R: float64(test[0]), G: float64(test[1]), B: float64(test[2])}
		cl, ca, cb := c.Lab()
		tolassert.EqualTol(t, float32(cl*100), l, 0.1, "L* of %v", test)
		tolassert.EqualTol(t, float32(ca*100), a, 0.2, "a* of %v", test)
		tolassert.EqualTol(t, float32(cb*100), b, 0.2, "b* of %v", test)
	}
}

func TestLRoundTrip(t *testing.T) {
	assert.Equal(t, ARGB(0xff000000), ARGBFromL(0))
	assert.Equal(t, ARGB(0xff777777), ARGBFromL(50))
	assert.Equal(t, ARGB(0xffffffff), ARGBFromL(100))
	tolassert.EqualTol(t, float32(50.034439), LFromARGB(0xff777777), 0.001)

	for x := float32(0); x <= 100; x += 0.25 {
		got := LFromARGB(ARGBFromL(x))
		tolassert.EqualTol(t, x, got, 1, "tone %g", x)
	}
}

func TestARGB(t *testing.T) {
	assert.Equal(t, ARGB(0xff6750a4), ARGBFromRGB(0x67, 0x50, 0xa4))
	r, g, b := RGBFromARGB(0xff6750a4)
	assert.Equal(t, []uint8{0x67, 0x50, 0xa4}, []uint8{r, g, b})

	rl, gl, bl := SRGB100ToLinear(float32(0x67)/255, float32(0x50)/255, float32(0xa4)/255)
	assert.Equal(t, ARGB(0xff6750a4), ARGBFromLinear(rl, gl, bl))
}
