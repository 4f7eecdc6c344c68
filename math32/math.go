// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based math package for color science,
// with a small vector type used by the color space transforms.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	E  = math.E
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sign returns -1 if x < 0 and 1 otherwise.
func Sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

// Signum returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
// Unlike [Sign], zero maps to zero, which the color appearance
// model transforms depend on.
func Signum(x float32) float32 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Atan2 returns the arc tangent of y/x, using
// the signs of the two to determine the quadrant
// of the return value.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Cbrt returns the cube root of x.
func Cbrt(x float32) float32 {
	return math32.Cbrt(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Exp returns e**x, the base-e exponential of x.
func Exp(x float32) float32 {
	return math32.Exp(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Hypot returns Sqrt(p*p + q*q), taking care to avoid
// unnecessary overflow and underflow.
func Hypot(p, q float32) float32 {
	return math32.Hypot(p, q)
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// Log returns the natural logarithm of x.
func Log(x float32) float32 {
	return math32.Log(x)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Mod returns the floating-point remainder of x/y.
// The magnitude of the result is less than y and its
// sign agrees with that of x.
func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 {
	return math32.Pow(x, y)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Clamp clamps x to the provided closed interval [a, b]
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Lerp returns the linear interpolation between start and stop in proportion to amount
func Lerp(start, stop, amount float32) float32 {
	return (1-amount)*start + amount*stop
}

// SanitizeDegrees ensures that degrees are in [0, 360).
func SanitizeDegrees(deg float32) float32 {
	deg = Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SanitizeDegreesInt ensures that degrees are in [0, 360).
func SanitizeDegreesInt(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SanitizeRadians ensures that radians are in [0, 2*Pi).
func SanitizeRadians(rad float32) float32 {
	return Mod(rad+Pi*8, Pi*2)
}

// DifferenceDegrees returns the unsigned distance between two angles
// in degrees, going the short way around the circle.
func DifferenceDegrees(a, b float32) float32 {
	return 180 - Abs(Abs(a-b)-180)
}

// RotationDirection returns the sign of the shortest rotation from
// one angle to another: 1 for increasing, -1 for decreasing.
func RotationDirection(from, to float32) float32 {
	if SanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}
