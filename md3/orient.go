// SPDX-License-Identifier: GPL-2.0-or-later
package md3

import (
	"github.com/chewxy/math32"

	"goarena/math/mtx"
	"goarena/math/vec"
)

// Orientation is a rigid transform given as an origin and three
// orthonormal axis vectors. It is recomputed from tag data every
// frame, so no drift accumulates.
type Orientation struct {
	Origin vec.Vec3
	Axis   [3]vec.Vec3
}

// IdentityOrientation returns the orientation with no rotation or
// translation.
func IdentityOrientation() Orientation {
	return Orientation{
		Axis: [3]vec.Vec3{
			{X: 1}, {Y: 1}, {Z: 1},
		},
	}
}

// Attach places the tag's transform in the parent's frame of
// reference. The tag position is transformed through the parent axis,
// the tag rotation is multiplied onto the parent rotation. If both
// inputs are orthonormal the result is orthonormal.
func Attach(parent Orientation, tag Tag) Orientation {
	o := Orientation{
		Origin: parent.Origin,
	}
	for i := 0; i < 3; i++ {
		o.Origin = vec.Add(o.Origin, parent.Axis[i].Scale(tag.Position[i]))
	}
	for i := 0; i < 3; i++ {
		var a vec.Vec3
		for k := 0; k < 3; k++ {
			a = vec.Add(a, parent.Axis[k].Scale(tag.Axis[i][k]))
		}
		o.Axis[i] = a
	}
	return o
}

// rotated composes an extra local rotation, given as axis rows, onto
// the orientation. Implemented as attaching a zero position tag.
func (o Orientation) rotated(rows [3][3]float32) Orientation {
	return Attach(o, Tag{Axis: rows})
}

// RotatedZ applies a yaw rotation in the model's local frame. In the
// MD3 convention z is up, so this turns the part left/right.
func (o Orientation) RotatedZ(rad float32) Orientation {
	s, c := math32.Sincos(rad)
	return o.rotated([3][3]float32{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	})
}

// RotatedY applies a pitch rotation in the model's local frame. In the
// MD3 convention y is left, so this tips the part up/down.
func (o Orientation) RotatedY(rad float32) Orientation {
	s, c := math32.Sincos(rad)
	return o.rotated([3][3]float32{
		{c, 0, -s},
		{0, 1, 0},
		{s, 0, c},
	})
}

// RotatedX applies a roll rotation in the model's local frame. In the
// MD3 convention x is forward.
func (o Orientation) RotatedX(rad float32) Orientation {
	s, c := math32.Sincos(rad)
	return o.rotated([3][3]float32{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	})
}

// Mat4 converts the orientation to a transform matrix.
func (o Orientation) Mat4() *mtx.Matrix {
	return mtx.FromAxes(o.Origin, o.Axis)
}
