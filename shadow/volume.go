// SPDX-License-Identifier: GPL-2.0-or-later
package shadow

import (
	"goarena/math/vec"
	"goarena/md3"
)

const (
	minExtrudeRadius = 20
	extrudeFactor    = 4
)

// Volume is a closed triangle mesh enclosing the space a caster
// shadows, ready for the two sided stencil passes.
type Volume struct {
	Vertices []vec.Vec3
	Indices  []uint32
}

func (v *Volume) push(p vec.Vec3) uint32 {
	v.Vertices = append(v.Vertices, p)
	return uint32(len(v.Vertices) - 1)
}

func (v *Volume) tri(a, b, c uint32) {
	v.Indices = append(v.Indices, a, b, c)
}

// ExtrudeDist converts the light's radius to the volume extrusion
// length. Dim lights still get a deep volume so the shadow reaches
// the floor.
func ExtrudeDist(lightRadius float32) float32 {
	if lightRadius < minExtrudeRadius {
		lightRadius = minExtrudeRadius
	}
	return lightRadius * extrudeFactor
}

// extrudePoint pushes p away from the light. ok is false when p sits
// on the light and has no direction to go.
func extrudePoint(p, light vec.Vec3, dist float32) (vec.Vec3, bool) {
	d := vec.Sub(p, light)
	if d.Length() < 1e-6 {
		return vec.Vec3{}, false
	}
	return vec.Add(p, d.Normalize().Scale(dist)), true
}

// buildVolume assembles the shadow volume for one mesh: a quad per
// silhouette edge, the lit triangles as a near cap and the same
// triangles extruded with reversed winding as a far cap. Degenerate
// elements are skipped, a partial volume is still better than a hole
// in every shadow.
func buildVolume(tris []md3.Triangle, pos []vec.Vec3, edges []SilEdge, lit []bool, light vec.Vec3, dist float32) *Volume {
	v := &Volume{}

	for _, e := range edges {
		pa, pb := pos[e.A], pos[e.B]
		fa, oka := extrudePoint(pa, light, dist)
		fb, okb := extrudePoint(pb, light, dist)
		if !oka || !okb {
			continue
		}
		a := v.push(pa)
		b := v.push(pb)
		a2 := v.push(fa)
		b2 := v.push(fb)
		v.tri(a, b, a2)
		v.tri(b, b2, a2)
	}

	for t, tri := range tris {
		if !lit[t] {
			continue
		}
		p0 := pos[tri.Indexes[0]]
		p1 := pos[tri.Indexes[1]]
		p2 := pos[tri.Indexes[2]]
		v.tri(v.push(p0), v.push(p1), v.push(p2))

		f0, ok0 := extrudePoint(p0, light, dist)
		f1, ok1 := extrudePoint(p1, light, dist)
		f2, ok2 := extrudePoint(p2, light, dist)
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		// Reversed winding so the far cap faces away from the light.
		v.tri(v.push(f0), v.push(f2), v.push(f1))
	}

	return v
}
