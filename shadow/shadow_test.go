// SPDX-License-Identifier: GPL-2.0-or-later
package shadow

import (
	"testing"

	"go.uber.org/zap"

	"goarena/math/mtx"
	"goarena/math/vec"
	"goarena/md3"
	"goarena/model"
)

// cubeModel is a unit cube (corners at +-1) with outward winding,
// encoded like a real MD3 frame (fixed point, 1/64 units).
func cubeModel() *md3.Model {
	corners := [8][3]int16{
		{-64, -64, -64},
		{64, -64, -64},
		{64, 64, -64},
		{-64, 64, -64},
		{-64, -64, 64},
		{64, -64, 64},
		{64, 64, 64},
		{-64, 64, 64},
	}
	verts := make([]md3.Vertex, 8)
	for i, c := range corners {
		verts[i] = md3.Vertex{X: c[0], Y: c[1], Z: c[2]}
	}
	idx := [12][3]int32{
		{0, 2, 1}, {0, 3, 2}, // -z
		{4, 5, 6}, {4, 6, 7}, // +z
		{1, 2, 6}, {1, 6, 5}, // +x
		{0, 7, 3}, {0, 4, 7}, // -x
		{2, 3, 7}, {2, 7, 6}, // +y
		{0, 1, 5}, {0, 5, 4}, // -y
	}
	tris := make([]md3.Triangle, 12)
	for i, t := range idx {
		tris[i] = md3.Triangle{Indexes: t}
	}
	return &md3.Model{
		Name:       "cube",
		FrameCount: 1,
		Meshes: []md3.Mesh{{
			Name:      "cube",
			Triangles: tris,
			Vertices:  [][]md3.Vertex{verts},
		}},
	}
}

func cubeCaster(reg *model.Registry) Caster {
	m := cubeModel()
	return Caster{
		ID:    reg.Add(m),
		Model: m,
		Frame: 0,
		World: mtx.Identity(),
	}
}

func TestCubeSilhouetteClosed(t *testing.T) {
	var reg model.Registry
	e := NewEngine(zap.NewNop())
	c := cubeCaster(&reg)
	light := vec.Vec3{X: 5}

	edges, _ := e.Silhouette(c, 0, light)
	if len(edges) != 4 {
		t.Fatalf("len(edges) = %d, want 4 (rim of the +x face)", len(edges))
	}
	// A closed silhouette loop touches every vertex exactly twice.
	degree := make(map[int32]int)
	for _, ed := range edges {
		degree[ed.A]++
		degree[ed.B]++
	}
	for v, d := range degree {
		if d != 2 {
			t.Errorf("vertex %d degree = %d, want 2", v, d)
		}
	}
	for _, v := range []int32{1, 2, 5, 6} {
		if degree[v] != 2 {
			t.Errorf("+x face vertex %d not on silhouette", v)
		}
	}
}

func TestVolumeExtrudedAwayFromLight(t *testing.T) {
	var reg model.Registry
	e := NewEngine(zap.NewNop())
	c := cubeCaster(&reg)
	light := vec.Vec3{X: 5}

	vols := e.Volumes(c, light, 10)
	if len(vols) != 1 {
		t.Fatalf("len(vols) = %d, want 1", len(vols))
	}
	v := vols[0]
	// 4 rim quads (4 verts each) + 2 near cap tris + 2 far cap tris.
	if got, want := len(v.Vertices), 4*4+4*3; got != want {
		t.Errorf("len(Vertices) = %d, want %d", got, want)
	}
	if got, want := len(v.Indices), (4*2+2+2)*3; got != want {
		t.Errorf("len(Indices) = %d, want %d", got, want)
	}
	// Cube vertices sit within ~6.2 units of the light, extruded
	// copies at original distance + 80. Nothing may land in between.
	var far int
	for i, p := range v.Vertices {
		d := vec.Sub(p, light).Length()
		if d > 7 && d < 80 {
			t.Errorf("vertex %d at distance %f, want near surface or extruded", i, d)
		}
		if d >= 80 {
			far++
		}
	}
	// 4 rim quads contribute 2 far vertices each, the far cap 6 more.
	if far != 4*2+6 {
		t.Errorf("extruded vertex count = %d, want 14", far)
	}
}

func TestExtrudeDistFloor(t *testing.T) {
	if got := ExtrudeDist(0); got != 80 {
		t.Errorf("ExtrudeDist(0) = %f, want 80", got)
	}
	if got := ExtrudeDist(50); got != 200 {
		t.Errorf("ExtrudeDist(50) = %f, want 200", got)
	}
}

func TestVolumeDepthFollowsLightRadius(t *testing.T) {
	var reg model.Registry
	e := NewEngine(zap.NewNop())
	c := cubeCaster(&reg)
	light := vec.Vec3{X: 5}

	vols := e.Volumes(c, light, 50)
	if len(vols) != 1 {
		t.Fatalf("len(vols) = %d, want 1", len(vols))
	}
	var far int
	for _, p := range vols[0].Vertices {
		if vec.Sub(p, light).Length() >= 200 {
			far++
		}
	}
	if far != 4*2+6 {
		t.Errorf("vertices extruded past 4x the light radius = %d, want 14", far)
	}
}

func TestPlanarProject(t *testing.T) {
	pl := GroundPlane()
	light := vec.Vec3{Y: 5}

	hit, ok := pl.Project(vec.Vec3{X: 1, Y: 3}, light)
	if !ok {
		t.Fatal("projection below light rejected")
	}
	if hit.Y != pl.Bias {
		t.Errorf("hit.Y = %f, want bias %f", hit.Y, pl.Bias)
	}
	// dir = p - light = (1,-2,0), t = 1.5, x = 1 + 1.5*1 = 2.5
	if hit.X < 2.5-1e-4 || hit.X > 2.5+1e-4 {
		t.Errorf("hit.X = %f, want 2.5", hit.X)
	}

	// A point above the light casts away from the floor.
	if _, ok := pl.Project(vec.Vec3{Y: 6}, light); ok {
		t.Error("projection from above the light accepted")
	}
	// A ray parallel to the receiver never lands.
	if _, ok := pl.Project(vec.Vec3{X: 2, Y: 5}, light); ok {
		t.Error("parallel ray accepted")
	}
}

func TestEnginePlanarDropsRejected(t *testing.T) {
	var reg model.Registry
	e := NewEngine(zap.NewNop())
	c := cubeCaster(&reg)

	// Light inside the cube's vertical span: some vertices project,
	// some are rejected, no triangle may mix the two.
	light := vec.Vec3{X: 10, Y: 5}
	flat := e.Planar(c, GroundPlane(), light)
	if len(flat) == 0 || len(flat)%3 != 0 {
		t.Fatalf("len(flat) = %d, want a non empty triangle list", len(flat))
	}
	for i, p := range flat {
		if p.Y != GroundPlane().Bias {
			t.Errorf("vertex %d not on receiver: y = %f", i, p.Y)
		}
	}
}

func TestNonManifoldNeighborDeterministic(t *testing.T) {
	// Three triangles share edge (0,1).
	tris := []md3.Triangle{
		{Indexes: [3]int32{0, 1, 2}},
		{Indexes: [3]int32{1, 0, 3}},
		{Indexes: [3]int32{0, 1, 4}},
	}
	adj := buildAdjacency(tris)
	// Every triangle resolves the shared edge to the lowest numbered
	// other triangle.
	if got := adj.neighbors[0*3+0]; got != 1 {
		t.Errorf("tri 0 neighbor = %d, want 1", got)
	}
	if got := adj.neighbors[1*3+0]; got != 0 {
		t.Errorf("tri 1 neighbor = %d, want 0", got)
	}
	if got := adj.neighbors[2*3+0]; got != 0 {
		t.Errorf("tri 2 neighbor = %d, want 0", got)
	}
}

func TestBoundaryEdgeOfLitTriangle(t *testing.T) {
	// A single lit triangle has all three edges on the silhouette.
	tris := []md3.Triangle{{Indexes: [3]int32{0, 1, 2}}}
	pos := []vec.Vec3{{}, {X: 1}, {Y: 1}}
	adj := buildAdjacency(tris)
	lit := facing(tris, pos, vec.Vec3{Z: 5})
	if !lit[0] {
		t.Fatal("triangle not facing the light")
	}
	if edges := silhouette(tris, adj, lit); len(edges) != 3 {
		t.Errorf("len(edges) = %d, want 3", len(edges))
	}

	// Unlit, the same triangle contributes nothing.
	lit = facing(tris, pos, vec.Vec3{Z: -5})
	if edges := silhouette(tris, adj, lit); len(edges) != 0 {
		t.Errorf("len(edges) = %d, want 0 for unlit boundary", len(edges))
	}
}

func TestEngineCacheInvalidation(t *testing.T) {
	var reg model.Registry
	e := NewEngine(zap.NewNop())
	c := cubeCaster(&reg)
	light := vec.Vec3{X: 5}

	e.Volumes(c, light, 10)
	if len(e.caches) != 1 {
		t.Fatalf("len(caches) = %d, want 1", len(e.caches))
	}
	e.Volumes(c, light, 10)
	if len(e.caches) != 1 {
		t.Fatalf("cache rebuilt instead of reused")
	}

	e.Invalidate(c.ID)
	if len(e.caches) != 0 {
		t.Errorf("len(caches) = %d after Invalidate, want 0", len(e.caches))
	}
}

func TestEngineSkipsBadFrame(t *testing.T) {
	var reg model.Registry
	e := NewEngine(zap.NewNop())
	c := cubeCaster(&reg)
	c.Frame = 9
	if vols := e.Volumes(c, vec.Vec3{X: 5}, 10); len(vols) != 0 {
		t.Errorf("len(vols) = %d for out of range frame, want 0", len(vols))
	}
}
