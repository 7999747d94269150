// SPDX-License-Identifier: GPL-2.0-or-later

// Package frustum culls points and spheres against a camera frustum
// and bounds projectile lifetimes by their time on screen.
package frustum

import (
	"goarena/math/mtx"
	"goarena/math/vec"
)

const (
	// MinVisibility keeps just expired projectiles alive long enough
	// to finish their explosion.
	MinVisibility = 0.1
	// MaxVisibility caps the lifetime of projectiles that never
	// leave the view.
	MaxVisibility = 10.0
)

// Frustum is six inward facing planes. A point is inside when it is
// on the positive side of all of them.
type Frustum struct {
	planes [6]vec.Vec4
}

// FromViewProj extracts the clip planes from a combined
// view-projection matrix.
func FromViewProj(m *mtx.Matrix) *Frustum {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)
	add := func(a, b vec.Vec4) vec.Vec4 {
		return vec.Vec4{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, W: a.W + b.W}
	}
	sub := func(a, b vec.Vec4) vec.Vec4 {
		return vec.Vec4{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z, W: a.W - b.W}
	}
	f := &Frustum{planes: [6]vec.Vec4{
		add(r3, r0), // left
		sub(r3, r0), // right
		add(r3, r1), // bottom
		sub(r3, r1), // top
		add(r3, r2), // near
		sub(r3, r2), // far
	}}
	for i := range f.planes {
		f.planes[i] = f.planes[i].NormalizePlane()
	}
	return f
}

func dist(p vec.Vec4, v vec.Vec3) float32 {
	return p.X*v.X + p.Y*v.Y + p.Z*v.Z + p.W
}

// ContainsPoint reports whether p is inside the frustum.
func (f *Frustum) ContainsPoint(p vec.Vec3) bool {
	for _, pl := range f.planes {
		if dist(pl, p) < 0 {
			return false
		}
	}
	return true
}

// ContainsSphere reports whether any part of the sphere is inside.
func (f *Frustum) ContainsSphere(center vec.Vec3, radius float32) bool {
	for _, pl := range f.planes {
		if dist(pl, center) < -radius {
			return false
		}
	}
	return true
}

// EstimateVisibilityTime returns how long a point moving at constant
// velocity stays inside the frustum, clamped to
// [MinVisibility, MaxVisibility]. A point already outside gets the
// minimum, a point that never exits gets the maximum.
func (f *Frustum) EstimateVisibilityTime(pos, vel vec.Vec3) float32 {
	t := float32(MaxVisibility)
	for _, pl := range f.planes {
		d := dist(pl, pos)
		if d < 0 {
			return MinVisibility
		}
		speed := vec.Dot(pl.Normal(), vel)
		if speed >= 0 {
			continue
		}
		if exit := d / -speed; exit < t {
			t = exit
		}
	}
	if t < MinVisibility {
		t = MinVisibility
	}
	return t
}
