// SPDX-License-Identifier: GPL-2.0-or-later

// Package render draws the composed arena scene: level geometry,
// morph frame models, stencil or planar shadows and particle
// billboards.
package render

import (
	"io/fs"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.6-core/gl"
	"go.uber.org/zap"

	"goarena/maps"
	"goarena/math/mtx"
	"goarena/math/vec"
	"goarena/model"
	"goarena/shadow"
)

const (
	fovY      = math32.Pi / 3
	nearPlane = 0.1
	farPlane  = 200

	shadowAlpha = 0.45
	planarAlpha = 0.4
)

// Scene is everything the renderer needs for one frame.
type Scene struct {
	Parts   []model.PartDraw
	Casters []shadow.Caster
	Sprites []Sprite
	Time    float32
}

type Renderer struct {
	log *zap.Logger

	mesh      *meshDrawer
	particles *particleDrawer
	shadows   *shadowDrawer
	textures  *textureManager
	engine    *shadow.Engine
	level     *levelMesh

	lights []maps.Light

	projection *mtx.Matrix
	view       *mtx.Matrix
	right      vec.Vec3
	up         vec.Vec3

	stencilShadows bool
	planarShadows  bool
}

// New compiles every program and creates every GL object up front. A
// broken shader fails startup here instead of the first frame that
// happens to need it.
func New(log *zap.Logger, fsys fs.FS, width, height int32, stencilShadows, planarShadows bool) (*Renderer, error) {
	r := &Renderer{
		log:            log,
		textures:       newTextureManager(log, fsys),
		engine:         shadow.NewEngine(log),
		projection:     mtx.Identity(),
		view:           mtx.Identity(),
		up:             vec.Vec3{Y: 1},
		right:          vec.Vec3{X: 1},
		stencilShadows: stencilShadows,
		planarShadows:  planarShadows,
	}
	var err error
	if r.mesh, err = newMeshDrawer(); err != nil {
		return nil, err
	}
	if r.particles, err = newParticleDrawer(); err != nil {
		return nil, err
	}
	if r.shadows, err = newShadowDrawer(); err != nil {
		return nil, err
	}

	gl.ClearColor(0.08, 0.08, 0.1, 0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.Resize(width, height)
	log.Info("renderer ready",
		zap.Bool("stencilShadows", stencilShadows),
		zap.Bool("planarShadows", planarShadows))
	return r, nil
}

// SetArena rebuilds the static level mesh and takes over the map's
// light list.
func (r *Renderer) SetArena(a *maps.Arena) {
	r.level = newLevelMesh(a)
	r.lights = a.Lights
}

func (r *Renderer) Resize(width, height int32) {
	if height < 1 {
		height = 1
	}
	gl.Viewport(0, 0, width, height)
	r.projection = mtx.Perspective(fovY, float32(width)/float32(height), nearPlane, farPlane)
}

// SetCamera aims the view. The camera's right and up axes also drive
// the particle billboards.
func (r *Renderer) SetCamera(eye, center vec.Vec3) {
	r.view = mtx.LookAt(eye, center, vec.Vec3{Y: 1})
	r.right = r.view.Row(0).Normal().Normalize()
	r.up = r.view.Row(1).Normal().Normalize()
}

// ViewProj returns the combined matrix for frustum extraction.
func (r *Renderer) ViewProj() *mtx.Matrix {
	vp := r.projection.Copy()
	vp.Mul(r.view)
	return vp
}

// Invalidate drops per model GL and topology caches when registry
// slots are released.
func (r *Renderer) Invalidate(ids ...model.ID) {
	r.mesh.invalidate(ids...)
	r.engine.Invalidate(ids...)
}

// frameLights applies flicker to the map lights.
func (r *Renderer) frameLights(t float32) []Light {
	out := make([]Light, 0, len(r.lights))
	for i, l := range r.lights {
		gain := float32(1)
		if l.Flicker > 0 {
			gain = 1 - l.Flicker*(0.5+0.5*math32.Sin(t*11+float32(i)*7))
		}
		out = append(out, Light{
			Pos: [3]float32{l.Pos.X, l.Pos.Y, l.Pos.Z},
			Color: [3]float32{
				l.Color[0] * gain,
				l.Color[1] * gain,
				l.Color[2] * gain,
			},
			Radius: l.Radius,
		})
	}
	return out
}

// casterOrigin is the world space translation of the caster's root.
func casterOrigin(c shadow.Caster) vec.Vec3 {
	return c.World.TransformPoint(vec.Vec3{})
}

func (r *Renderer) Frame(s *Scene) {
	// one stencil clear per frame, volumes of every light accumulate
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	lights := r.frameLights(s.Time)
	ambient := [3]float32{0.5, 0.5, 0.55}

	r.mesh.begin(r.projection, r.view, lights, ambient)
	if r.level != nil {
		r.level.draw(r.mesh)
	}
	for _, pd := range s.Parts {
		r.mesh.drawPart(pd, r.textures)
	}

	switch {
	case r.stencilShadows:
		for _, l := range lights {
			lp := vec.Vec3{X: l.Pos[0], Y: l.Pos[1], Z: l.Pos[2]}
			for _, c := range s.Casters {
				if vec.Sub(casterOrigin(c), lp).Length() > l.Radius*4 {
					continue
				}
				r.shadows.drawVolumes(r.engine.Volumes(c, lp, l.Radius), r.projection, r.view)
			}
		}
		r.shadows.apply(shadowAlpha)
	case r.planarShadows:
		ground := shadow.GroundPlane()
		wall := shadow.WallPlane(WallZ)
		for _, l := range lights {
			lp := vec.Vec3{X: l.Pos[0], Y: l.Pos[1], Z: l.Pos[2]}
			for _, c := range s.Casters {
				if vec.Sub(casterOrigin(c), lp).Length() > l.Radius*4 {
					continue
				}
				r.shadows.drawPlanar(r.engine.Planar(c, ground, lp), r.projection, r.view, planarAlpha)
				r.shadows.drawPlanar(r.engine.Planar(c, wall, lp), r.projection, r.view, planarAlpha)
			}
		}
	}

	r.particles.Draw(s.Sprites, r.right, r.up, r.projection, r.view)
}
