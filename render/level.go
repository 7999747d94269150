// SPDX-License-Identifier: GPL-2.0-or-later
package render

import (
	"goarena/glh"
	"goarena/maps"
	"goarena/math/mtx"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// The arena is a slab: gameplay happens in the xy plane at z = 0, the
// geometry extends half a depth to either side and a back wall
// receives projected shadows.
const (
	ArenaHalfDepth = 4
	WallZ          = -ArenaHalfDepth
)

// levelMesh is the static arena geometry: floor slab, back wall and
// one box per solid tile. Built once at load, drawn with the mesh
// program using a flat color instead of a skin.
type levelMesh struct {
	vbo        *glh.Buffer
	ebo        *glh.Buffer
	indexCount int32
	identity   *mtx.Matrix
}

type levelBuilder struct {
	verts []float32
	idx   []uint32
}

// quad appends one face from four corners in winding order with a
// constant normal. Texcoords tile with world units.
func (b *levelBuilder) quad(c [4][3]float32, n [3]float32) {
	base := uint32(len(b.verts) / meshStride)
	us := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, p := range c {
		b.verts = append(b.verts,
			p[0], p[1], p[2],
			n[0], n[1], n[2],
			us[i][0], us[i][1])
	}
	b.idx = append(b.idx, base, base+1, base+2, base, base+2, base+3)
}

// box appends the five visible faces of an axis aligned box. The back
// face is skipped, it always faces away from the camera.
func (b *levelBuilder) box(x0, y0, z0, x1, y1, z1 float32) {
	// front
	b.quad([4][3]float32{{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1}}, [3]float32{0, 0, 1})
	// top
	b.quad([4][3]float32{{x0, y1, z1}, {x1, y1, z1}, {x1, y1, z0}, {x0, y1, z0}}, [3]float32{0, 1, 0})
	// bottom
	b.quad([4][3]float32{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}}, [3]float32{0, -1, 0})
	// left
	b.quad([4][3]float32{{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}}, [3]float32{-1, 0, 0})
	// right
	b.quad([4][3]float32{{x1, y0, z1}, {x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}}, [3]float32{1, 0, 0})
}

func newLevelMesh(a *maps.Arena) *levelMesh {
	b := &levelBuilder{}

	const margin = 4
	w := float32(a.Width)
	h := float32(a.Height)

	// floor, top face at y = 0
	b.quad([4][3]float32{
		{-margin, 0, ArenaHalfDepth}, {w + margin, 0, ArenaHalfDepth},
		{w + margin, 0, WallZ}, {-margin, 0, WallZ},
	}, [3]float32{0, 1, 0})

	// back wall facing the camera
	b.quad([4][3]float32{
		{-margin, 0, WallZ}, {w + margin, 0, WallZ},
		{w + margin, h + margin, WallZ}, {-margin, h + margin, WallZ},
	}, [3]float32{0, 0, 1})

	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if !a.SolidAt(float32(x)+0.5, float32(y)+0.5) {
				continue
			}
			b.box(float32(x), float32(y), WallZ,
				float32(x)+1, float32(y)+1, ArenaHalfDepth*0.25)
		}
	}

	lm := &levelMesh{
		vbo:        glh.NewBuffer(glh.ArrayBuffer),
		ebo:        glh.NewBuffer(glh.ElementArrayBuffer),
		indexCount: int32(len(b.idx)),
		identity:   mtx.Identity(),
	}
	lm.vbo.Bind()
	lm.vbo.SetData(4*len(b.verts), glh.Ptr(b.verts))
	lm.ebo.Bind()
	lm.ebo.SetData(4*len(b.idx), glh.Ptr(b.idx))
	return lm
}

// draw renders the arena through an already begun mesh drawer.
func (lm *levelMesh) draw(d *meshDrawer) {
	setUniformMatrix(d.modelU, lm.identity)
	gl.Uniform1i(d.useTexture, 0)
	gl.Uniform4f(d.baseColor, 0.42, 0.44, 0.5, 1)

	lm.vbo.Bind()
	lm.ebo.Bind()
	enableMeshAttribs()
	gl.DrawElements(gl.TRIANGLES, lm.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	disableMeshAttribs()
}
