// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector3 is a 3D vector/point with X, Y and Z components.
// In the color packages it holds linear RGB or XYZ triples.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Dim returns the value of the given dimension (0 = X, 1 = Y, 2 = Z).
// It returns -1 for any other dimension.
func (v Vector3) Dim(dim int) float32 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return -1
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vec3(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vec3(v.X-other.X, v.Y-other.Y, v.Z-other.Z)
}

// MulScalar multiplies each component of this vector by the scalar s
// and returns result in a new vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vec3(v.X*s, v.Y*s, v.Z*s)
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector3) Lerp(other Vector3, alpha float32) Vector3 {
	return Vec3(v.X+(other.X-v.X)*alpha, v.Y+(other.Y-v.Y)*alpha, v.Z+(other.Z-v.Z)*alpha)
}

// Midpoint returns the point halfway between this vector and the other.
func (v Vector3) Midpoint(other Vector3) Vector3 {
	return Vec3((v.X+other.X)/2, (v.Y+other.Y)/2, (v.Z+other.Z)/2)
}

// Matrix3 is a row-major 3x3 matrix used for color space conversions.
type Matrix3 [3][3]float32

// MulVector3 returns the product of the matrix and the column vector v.
func (m *Matrix3) MulVector3(v Vector3) Vector3 {
	return Vec3(
		v.X*m[0][0]+v.Y*m[0][1]+v.Z*m[0][2],
		v.X*m[1][0]+v.Y*m[1][1]+v.Z*m[1][2],
		v.X*m[2][0]+v.Y*m[2][1]+v.Z*m[2][2],
	)
}
