// SPDX-License-Identifier: GPL-2.0-or-later

// Package mtx implements 4x4 transform matrices in row major order.
// The GL upload site must request transposition as opengl expects
// column major order.
package mtx

import (
	"github.com/chewxy/math32"

	"goarena/math/vec"
)

type Matrix struct {
	m [16]float32
}

func Identity() *Matrix {
	return &Matrix{
		m: [16]float32{
			1, 0, 0, 0, // 0 - 3
			0, 1, 0, 0, // 4 - 7
			0, 0, 1, 0, // 8 - 11
			0, 0, 0, 1, // 12 - 15
		},
	}
}

func (m *Matrix) Copy() *Matrix {
	nm := &Matrix{}
	copy(nm.m[:], m.m[:])
	return nm
}

// Ptr returns a pointer to the first element for GL uploads.
func (m *Matrix) Ptr() *float32 {
	return &m.m[0]
}

// Row returns row i as a plane style Vec4.
func (m *Matrix) Row(i int) vec.Vec4 {
	return vec.Vec4{
		X: m.m[i*4],
		Y: m.m[i*4+1],
		Z: m.m[i*4+2],
		W: m.m[i*4+3],
	}
}

// FromAxes builds the rigid transform with the given axis vectors as
// matrix columns and origin as translation.
func FromAxes(origin vec.Vec3, axis [3]vec.Vec3) *Matrix {
	return &Matrix{
		m: [16]float32{
			axis[0].X, axis[1].X, axis[2].X, origin.X,
			axis[0].Y, axis[1].Y, axis[2].Y, origin.Y,
			axis[0].Z, axis[1].Z, axis[2].Z, origin.Z,
			0, 0, 0, 1,
		},
	}
}

func (m *Matrix) Translate(x, y, z float32) {
	// 1, 0, 0, x
	// 0, 1, 0, y
	// 0, 0, 1, z
	// 0, 0, 0, 1
	// compute m*t
	n := [16]float32{
		m.m[0], m.m[1], m.m[2], x*m.m[0] + y*m.m[1] + z*m.m[2] + m.m[3],
		m.m[4], m.m[5], m.m[6], x*m.m[4] + y*m.m[5] + z*m.m[6] + m.m[7],
		m.m[8], m.m[9], m.m[10], x*m.m[8] + y*m.m[9] + z*m.m[10] + m.m[11],
		m.m[12], m.m[13], m.m[14], x*m.m[12] + y*m.m[13] + z*m.m[14] + m.m[15],
	}
	m.m = n
}

func (m *Matrix) RotateX(rad float32) {
	sin, cos := math32.Sincos(rad)
	// 1, 0, 0, 0
	// 0, cos, -sin, 0
	// 0, sin, cos 0
	// 0, 0, 0, 1
	// compute m*t
	n := [16]float32{
		m.m[0], cos*m.m[1] + sin*m.m[2], -sin*m.m[1] + cos*m.m[2], m.m[3],
		m.m[4], cos*m.m[5] + sin*m.m[6], -sin*m.m[5] + cos*m.m[6], m.m[7],
		m.m[8], cos*m.m[9] + sin*m.m[10], -sin*m.m[9] + cos*m.m[10], m.m[11],
		m.m[12], cos*m.m[13] + sin*m.m[14], -sin*m.m[13] + cos*m.m[14], m.m[15],
	}
	m.m = n
}

func (m *Matrix) RotateY(rad float32) {
	sin, cos := math32.Sincos(rad)
	// cos, 0, sin, 0
	// 0, 1, 0, 0
	// -sin, 0, cos, 0
	// 0, 0, 0, 1
	// compute m*t
	n := [16]float32{
		cos*m.m[0] - sin*m.m[2], m.m[1], sin*m.m[0] + cos*m.m[2], m.m[3],
		cos*m.m[4] - sin*m.m[6], m.m[5], sin*m.m[4] + cos*m.m[6], m.m[7],
		cos*m.m[8] - sin*m.m[10], m.m[9], sin*m.m[8] + cos*m.m[10], m.m[11],
		cos*m.m[12] - sin*m.m[14], m.m[13], sin*m.m[12] + cos*m.m[14], m.m[15],
	}
	m.m = n
}

func (m *Matrix) RotateZ(rad float32) {
	sin, cos := math32.Sincos(rad)
	// cos, -sin, 0, 0
	// sin, cos, 0, 0
	// 0, 0, 1, 0
	// 0, 0, 0, 1
	// compute m*t
	n := [16]float32{
		cos*m.m[0] + sin*m.m[1], -sin*m.m[0] + cos*m.m[1], m.m[2], m.m[3],
		cos*m.m[4] + sin*m.m[5], -sin*m.m[4] + cos*m.m[5], m.m[6], m.m[7],
		cos*m.m[8] + sin*m.m[9], -sin*m.m[8] + cos*m.m[9], m.m[10], m.m[11],
		cos*m.m[12] + sin*m.m[13], -sin*m.m[12] + cos*m.m[13], m.m[14], m.m[15],
	}
	m.m = n
}

func (m *Matrix) Scale(x, y, z float32) {
	// x, 0, 0, 0
	// 0, y, 0, 0
	// 0, 0, z, 0
	// 0, 0, 0, 1
	// compute m*t
	n := [16]float32{
		x * m.m[0], y * m.m[1], z * m.m[2], m.m[3],
		x * m.m[4], y * m.m[5], z * m.m[6], m.m[7],
		x * m.m[8], y * m.m[9], z * m.m[10], m.m[11],
		x * m.m[12], y * m.m[13], z * m.m[14], m.m[15],
	}
	m.m = n
}

// Mul computes m = m*o
func (m *Matrix) Mul(o *Matrix) {
	var n [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m.m[r*4+k] * o.m[k*4+c]
			}
			n[r*4+c] = s
		}
	}
	m.m = n
}

// TransformPoint applies the affine transform to a point.
func (m *Matrix) TransformPoint(p vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: m.m[0]*p.X + m.m[1]*p.Y + m.m[2]*p.Z + m.m[3],
		Y: m.m[4]*p.X + m.m[5]*p.Y + m.m[6]*p.Z + m.m[7],
		Z: m.m[8]*p.X + m.m[9]*p.Y + m.m[10]*p.Z + m.m[11],
	}
}

// Perspective returns a perspective projection. fovY is in radians.
func Perspective(fovY, aspect, near, far float32) *Matrix {
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)
	return &Matrix{
		m: [16]float32{
			f / aspect, 0, 0, 0,
			0, f, 0, 0,
			0, 0, (far + near) * nf, 2 * far * near * nf,
			0, 0, -1, 0,
		},
	}
}

// LookAt returns a view matrix looking from eye to center.
func LookAt(eye, center, up vec.Vec3) *Matrix {
	f := vec.Sub(center, eye).Normalize()
	s := vec.Cross(f, up).Normalize()
	u := vec.Cross(s, f)
	return &Matrix{
		m: [16]float32{
			s.X, s.Y, s.Z, -vec.Dot(s, eye),
			u.X, u.Y, u.Z, -vec.Dot(u, eye),
			-f.X, -f.Y, -f.Z, vec.Dot(f, eye),
			0, 0, 0, 1,
		},
	}
}
