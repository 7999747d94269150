// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/chewxy/math32"
)

type Vec3 struct {
	X, Y, Z float32
}

func VFromA(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vec3) Idx(i int) float32 {
	switch i {
	default:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
}

// Length returns the length of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(Dot(v, v))
}

// Add returns a + b
func Add(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Scale returns the vector multiplied by the skalar s
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Normalize returns the normalized vector
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Dot returns a dot b
func Dot(a Vec3, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns a cross b
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Lerp computes a weighted average between two points
func Lerp(a, b Vec3, frac float32) Vec3 {
	fi := 1 - frac
	return Vec3{
		fi*a.X + frac*b.X,
		fi*a.Y + frac*b.Y,
		fi*a.Z + frac*b.Z,
	}
}

func minmax(a, b float32) (float32, float32) {
	if a < b {
		return a, b
	}
	return b, a
}

func MinMax(a, b Vec3) (Vec3, Vec3) {
	var r, s Vec3
	r.X, s.X = minmax(a.X, b.X)
	r.Y, s.Y = minmax(a.Y, b.Y)
	r.Z, s.Z = minmax(a.Z, b.Z)
	return r, s
}

// Vec4 is used for homogeneous points and plane equations.
type Vec4 struct {
	X, Y, Z, W float32
}

// Dot4 returns a dot b
func Dot4(a, b Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// NormalizePlane scales the plane equation so its normal has unit
// length. A zero normal is returned unchanged.
func (p Vec4) NormalizePlane() Vec4 {
	l := math32.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	if l == 0 {
		return p
	}
	return Vec4{p.X / l, p.Y / l, p.Z / l, p.W / l}
}

// Normal returns the xyz part of a plane equation.
func (p Vec4) Normal() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}
