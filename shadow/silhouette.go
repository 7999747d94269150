// SPDX-License-Identifier: GPL-2.0-or-later
package shadow

import (
	"sort"

	"goarena/math/vec"
	"goarena/md3"
)

// adjacency is the frame independent edge topology of one mesh. It
// depends only on the triangle index list, so it is built once per
// mesh and reused across frames and lights.
type adjacency struct {
	// neighbors[t*3+e] is the triangle on the far side of edge e of
	// triangle t, or -1 on a boundary edge. Edge e runs from corner e
	// to corner (e+1)%3.
	neighbors []int32
}

type edgeKey struct {
	lo, hi int32
}

func normalizeEdge(a, b int32) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// buildAdjacency computes per edge neighbor slots. Meshes from the
// wild are not always two manifold: when more than two triangles meet
// at an edge, each triangle's neighbor slot resolves to the lowest
// numbered other triangle on that edge, so the result does not depend
// on triangle iteration order.
func buildAdjacency(tris []md3.Triangle) *adjacency {
	byEdge := make(map[edgeKey][]int32, len(tris)*3/2)
	for t, tri := range tris {
		for e := 0; e < 3; e++ {
			k := normalizeEdge(tri.Indexes[e], tri.Indexes[(e+1)%3])
			byEdge[k] = append(byEdge[k], int32(t))
		}
	}
	for _, owners := range byEdge {
		sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })
	}

	adj := &adjacency{neighbors: make([]int32, len(tris)*3)}
	for t, tri := range tris {
		for e := 0; e < 3; e++ {
			k := normalizeEdge(tri.Indexes[e], tri.Indexes[(e+1)%3])
			adj.neighbors[t*3+e] = -1
			for _, o := range byEdge[k] {
				if o != int32(t) {
					adj.neighbors[t*3+e] = o
					break
				}
			}
		}
	}
	return adj
}

// SilEdge is one silhouette edge in the winding of its lit triangle.
type SilEdge struct {
	A, B int32
}

// facing marks each triangle lit or unlit for a point light. A
// triangle faces the light when the light sits on the outward side of
// its plane. Degenerate triangles count as unlit.
func facing(tris []md3.Triangle, pos []vec.Vec3, light vec.Vec3) []bool {
	lit := make([]bool, len(tris))
	for t, tri := range tris {
		v0 := pos[tri.Indexes[0]]
		n := vec.Cross(
			vec.Sub(pos[tri.Indexes[1]], v0),
			vec.Sub(pos[tri.Indexes[2]], v0),
		)
		lit[t] = vec.Dot(n, vec.Sub(light, v0)) > 0
	}
	return lit
}

// silhouette collects the edges separating lit from unlit surface. A
// boundary edge of a lit triangle is part of the silhouette as well,
// otherwise open meshes would leak light through their rim.
func silhouette(tris []md3.Triangle, adj *adjacency, lit []bool) []SilEdge {
	var out []SilEdge
	for t, tri := range tris {
		if !lit[t] {
			continue
		}
		for e := 0; e < 3; e++ {
			n := adj.neighbors[t*3+e]
			if n >= 0 && lit[n] {
				continue
			}
			out = append(out, SilEdge{
				A: tri.Indexes[e],
				B: tri.Indexes[(e+1)%3],
			})
		}
	}
	return out
}
