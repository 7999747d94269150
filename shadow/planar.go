// SPDX-License-Identifier: GPL-2.0-or-later
package shadow

import (
	"github.com/chewxy/math32"

	"goarena/math/vec"
)

// Plane is n.x*x + n.y*y + n.z*z + d = 0 with a bias lifting the
// projected geometry off the receiver to dodge z fighting.
type Plane struct {
	Normal vec.Vec3
	D      float32
	Bias   float32
}

// GroundPlane is the arena floor receiver.
func GroundPlane() Plane {
	return Plane{Normal: vec.Vec3{Y: 1}, D: 0, Bias: 0.002}
}

// WallPlane is the back wall receiver.
func WallPlane(z float32) Plane {
	return Plane{Normal: vec.Vec3{Z: 1}, D: -z, Bias: 0.01}
}

// Project casts p away from the light onto the plane. ok is false
// when the ray runs parallel to the plane or the plane is on the
// light side of p, in which case the vertex must not be drawn.
func (pl Plane) Project(p, light vec.Vec3) (vec.Vec3, bool) {
	dir := vec.Sub(p, light)
	denom := vec.Dot(pl.Normal, dir)
	if math32.Abs(denom) < 1e-4 {
		return vec.Vec3{}, false
	}
	t := -(vec.Dot(pl.Normal, p) + pl.D) / denom
	if t <= 0 {
		return vec.Vec3{}, false
	}
	hit := vec.Add(p, dir.Scale(t))
	return vec.Add(hit, pl.Normal.Scale(pl.Bias)), true
}

// ProjectAll flattens a vertex set onto the plane. Triangles touching
// a rejected vertex are dropped by the caller via the ok mask.
func (pl Plane) ProjectAll(pos []vec.Vec3, light vec.Vec3) ([]vec.Vec3, []bool) {
	out := make([]vec.Vec3, len(pos))
	ok := make([]bool, len(pos))
	for i, p := range pos {
		out[i], ok[i] = pl.Project(p, light)
	}
	return out, ok
}
