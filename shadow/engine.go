// SPDX-License-Identifier: GPL-2.0-or-later

// Package shadow extracts silhouette edges from posed models and
// builds stencil shadow volumes and planar projections from them on
// the CPU.
package shadow

import (
	"go.uber.org/zap"

	"goarena/math/mtx"
	"goarena/math/vec"
	"goarena/md3"
	"goarena/model"
)

// Caster is one posed mesh group to build shadows for.
type Caster struct {
	ID    model.ID
	Model *md3.Model
	Frame int
	World *mtx.Matrix
}

type cacheKey struct {
	id   model.ID
	mesh int
}

// Engine caches mesh adjacency across frames. Cache entries are keyed
// by model handle, so a reloaded model can never pick up the topology
// of whatever previously occupied its registry slot.
type Engine struct {
	log    *zap.Logger
	caches map[cacheKey]*adjacency
}

func NewEngine(log *zap.Logger) *Engine {
	return &Engine{
		log:    log,
		caches: make(map[cacheKey]*adjacency),
	}
}

// Invalidate drops cached topology for unloaded models.
func (e *Engine) Invalidate(ids ...model.ID) {
	for k := range e.caches {
		for _, id := range ids {
			if k.id == id {
				delete(e.caches, k)
			}
		}
	}
}

func (e *Engine) adjacencyFor(c Caster, mesh int) *adjacency {
	k := cacheKey{id: c.ID, mesh: mesh}
	if adj, ok := e.caches[k]; ok {
		return adj
	}
	adj := buildAdjacency(c.Model.Meshes[mesh].Triangles)
	e.caches[k] = adj
	e.log.Debug("built shadow adjacency",
		zap.String("model", c.Model.Name),
		zap.Int("mesh", mesh),
		zap.Int("triangles", len(c.Model.Meshes[mesh].Triangles)))
	return adj
}

// worldPositions decodes the caster's current morph frame and moves
// it to world space.
func worldPositions(m *md3.Mesh, frame int, world *mtx.Matrix) []vec.Vec3 {
	if frame < 0 || frame >= len(m.Vertices) {
		return nil
	}
	verts := m.Vertices[frame]
	out := make([]vec.Vec3, len(verts))
	for i, v := range verts {
		p := vec.Vec3{
			X: float32(v.X) * md3.VertexScale,
			Y: float32(v.Y) * md3.VertexScale,
			Z: float32(v.Z) * md3.VertexScale,
		}
		out[i] = world.TransformPoint(p)
	}
	return out
}

// Volumes builds one closed shadow volume per mesh of the caster for
// a point light in world space, extruded past the light's reach.
// Meshes whose current frame is missing are logged and skipped.
func (e *Engine) Volumes(c Caster, light vec.Vec3, lightRadius float32) []*Volume {
	dist := ExtrudeDist(lightRadius)
	var out []*Volume
	for i := range c.Model.Meshes {
		m := &c.Model.Meshes[i]
		pos := worldPositions(m, c.Frame, c.World)
		if pos == nil {
			e.log.Warn("shadow caster frame out of range",
				zap.String("model", c.Model.Name),
				zap.Int("frame", c.Frame))
			continue
		}
		adj := e.adjacencyFor(c, i)
		lit := facing(m.Triangles, pos, light)
		edges := silhouette(m.Triangles, adj, lit)
		if len(edges) == 0 {
			continue
		}
		out = append(out, buildVolume(m.Triangles, pos, edges, lit, light, dist))
	}
	return out
}

// Silhouette exposes the raw edge extraction for one mesh.
func (e *Engine) Silhouette(c Caster, mesh int, light vec.Vec3) ([]SilEdge, []vec.Vec3) {
	m := &c.Model.Meshes[mesh]
	pos := worldPositions(m, c.Frame, c.World)
	if pos == nil {
		return nil, nil
	}
	adj := e.adjacencyFor(c, mesh)
	lit := facing(m.Triangles, pos, light)
	return silhouette(m.Triangles, adj, lit), pos
}

// Planar projects the caster's meshes onto a receiver plane as flat
// triangle fans of world space positions. Triangles with any vertex
// rejected by the projection are dropped.
func (e *Engine) Planar(c Caster, pl Plane, light vec.Vec3) []vec.Vec3 {
	var out []vec.Vec3
	for i := range c.Model.Meshes {
		m := &c.Model.Meshes[i]
		pos := worldPositions(m, c.Frame, c.World)
		if pos == nil {
			continue
		}
		flat, ok := pl.ProjectAll(pos, light)
		for _, tri := range m.Triangles {
			a, b, cc := tri.Indexes[0], tri.Indexes[1], tri.Indexes[2]
			if !ok[a] || !ok[b] || !ok[cc] {
				continue
			}
			out = append(out, flat[a], flat[b], flat[cc])
		}
	}
	return out
}
