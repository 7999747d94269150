// SPDX-License-Identifier: GPL-2.0-or-later
package render

import (
	"goarena/glh"
	"goarena/math/mtx"
	"goarena/math/vec"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Sprite is one camera facing billboard: smoke puff, flame, a
// projectile glow or an item marker.
type Sprite struct {
	Pos   vec.Vec3
	Size  float32
	Color [4]float32
}

func newParticleDrawProgram() (*glh.Program, error) {
	return glh.NewProgram(vertexSourceParticleDrawer, fragmentSourceParticleDrawer)
}

type particleDrawer struct {
	vao  *glh.VertexArray
	vbo  *glh.Buffer
	prog *glh.Program

	projection int32
	view       int32

	scratch []float32
}

func newParticleDrawer() (*particleDrawer, error) {
	d := &particleDrawer{}
	d.vao = glh.NewVertexArray()
	d.vbo = glh.NewBuffer(glh.ArrayBuffer)
	var err error
	d.prog, err = newParticleDrawProgram()
	if err != nil {
		return nil, err
	}
	d.projection = d.prog.GetUniformLocation("projection")
	d.view = d.prog.GetUniformLocation("view")
	return d, nil
}

// layout: 3 position + 2 texcoord + 4 color
const particleStride = 9

func (d *particleDrawer) push(p vec.Vec3, u, v float32, c [4]float32) {
	d.scratch = append(d.scratch, p.X, p.Y, p.Z, u, v, c[0], c[1], c[2], c[3])
}

// Draw renders the sprite batch additively with depth writes off so
// overlapping puffs glow instead of z fighting.
func (d *particleDrawer) Draw(sprites []Sprite, right, up vec.Vec3, projection, view *mtx.Matrix) {
	if len(sprites) == 0 {
		return
	}
	d.scratch = d.scratch[:0]
	for _, s := range sprites {
		r := right.Scale(s.Size * 0.5)
		u := up.Scale(s.Size * 0.5)
		bl := vec.Sub(vec.Sub(s.Pos, r), u)
		br := vec.Sub(vec.Add(s.Pos, r), u)
		tr := vec.Add(vec.Add(s.Pos, r), u)
		tl := vec.Add(vec.Sub(s.Pos, r), u)
		d.push(bl, 0, 0, s.Color)
		d.push(br, 1, 0, s.Color)
		d.push(tr, 1, 1, s.Color)
		d.push(bl, 0, 0, s.Color)
		d.push(tr, 1, 1, s.Color)
		d.push(tl, 0, 1, s.Color)
	}

	d.prog.Use()
	d.vao.Bind()
	setUniformMatrix(d.projection, projection)
	setUniformMatrix(d.view, view)

	d.vbo.Bind()
	d.vbo.SetDynamicData(4*len(d.scratch), glh.Ptr(d.scratch))

	gl.DepthMask(false)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)

	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, particleStride*4, 0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, particleStride*4, 3*4)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, particleStride*4, 5*4)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(sprites)*6))
	gl.DisableVertexAttribArray(0)
	gl.DisableVertexAttribArray(1)
	gl.DisableVertexAttribArray(2)

	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
}
