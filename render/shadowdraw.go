// SPDX-License-Identifier: GPL-2.0-or-later
package render

import (
	"goarena/glh"
	"goarena/math/mtx"
	"goarena/math/vec"
	"goarena/shadow"

	"github.com/go-gl/gl/v4.6-core/gl"
)

func newFlatDrawProgram() (*glh.Program, error) {
	return glh.NewProgram(vertexSourceFlatDrawer, fragmentSourceFlatDrawer)
}

func newScreenDrawProgram() (*glh.Program, error) {
	return glh.NewProgram(vertexSourceScreenDrawer, fragmentSourceScreenDrawer)
}

// shadowDrawer owns the stencil volume passes, the full screen
// darkening pass and the planar projection fallback.
type shadowDrawer struct {
	vao  *glh.VertexArray
	vbo  *glh.Buffer
	ebo  *glh.Buffer
	prog *glh.Program

	projection int32
	view       int32
	flatColor  int32

	screenVao   *glh.VertexArray
	screenVbo   *glh.Buffer
	screenProg  *glh.Program
	screenColor int32

	scratch []float32
}

func newShadowDrawer() (*shadowDrawer, error) {
	d := &shadowDrawer{}
	d.vao = glh.NewVertexArray()
	d.vbo = glh.NewBuffer(glh.ArrayBuffer)
	d.ebo = glh.NewBuffer(glh.ElementArrayBuffer)
	var err error
	d.prog, err = newFlatDrawProgram()
	if err != nil {
		return nil, err
	}
	d.projection = d.prog.GetUniformLocation("projection")
	d.view = d.prog.GetUniformLocation("view")
	d.flatColor = d.prog.GetUniformLocation("flatColor")

	d.screenVao = glh.NewVertexArray()
	d.screenVbo = glh.NewBuffer(glh.ArrayBuffer)
	d.screenProg, err = newScreenDrawProgram()
	if err != nil {
		return nil, err
	}
	d.screenColor = d.screenProg.GetUniformLocation("screenColor")

	// one triangle covering the whole screen
	screen := []float32{-1, -1, 3, -1, -1, 3}
	d.screenVbo.Bind()
	d.screenVbo.SetData(4*len(screen), glh.Ptr(screen))
	return d, nil
}

// drawVolumes runs the z-fail counting passes for one light's volumes.
// Color and depth writes are off, only the stencil buffer changes. The
// stencil is not cleared here: volumes of every light of the frame
// accumulate, so overlapping shadows darken once in the apply pass.
func (d *shadowDrawer) drawVolumes(vols []*shadow.Volume, projection, view *mtx.Matrix) {
	if len(vols) == 0 {
		return
	}
	d.prog.Use()
	d.vao.Bind()
	setUniformMatrix(d.projection, projection)
	setUniformMatrix(d.view, view)

	gl.ColorMask(false, false, false, false)
	gl.DepthMask(false)
	gl.Enable(gl.STENCIL_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.StencilFunc(gl.ALWAYS, 0, ^uint32(0))

	for _, v := range vols {
		d.scratch = d.scratch[:0]
		for _, p := range v.Vertices {
			d.scratch = append(d.scratch, p.X, p.Y, p.Z)
		}
		d.vbo.Bind()
		d.vbo.SetDynamicData(4*len(d.scratch), glh.Ptr(d.scratch))
		d.ebo.Bind()
		d.ebo.SetDynamicData(4*len(v.Indices), glh.Ptr(v.Indices))

		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

		// z-fail: count volume faces behind the scene geometry
		gl.CullFace(gl.FRONT)
		gl.StencilOp(gl.KEEP, gl.DECR_WRAP, gl.KEEP)
		gl.DrawElements(gl.TRIANGLES, int32(len(v.Indices)), gl.UNSIGNED_INT, gl.PtrOffset(0))

		gl.CullFace(gl.BACK)
		gl.StencilOp(gl.KEEP, gl.INCR_WRAP, gl.KEEP)
		gl.DrawElements(gl.TRIANGLES, int32(len(v.Indices)), gl.UNSIGNED_INT, gl.PtrOffset(0))

		gl.DisableVertexAttribArray(0)
	}

	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.STENCIL_TEST)
	gl.DepthMask(true)
	gl.ColorMask(true, true, true, true)
}

// apply darkens every pixel the volume passes marked. Stencil writes
// are masked off, the count survives for debugging within the frame.
func (d *shadowDrawer) apply(alpha float32) {
	d.screenProg.Use()
	d.screenVao.Bind()
	gl.Uniform4f(d.screenColor, 0, 0, 0, alpha)

	gl.Enable(gl.STENCIL_TEST)
	gl.StencilFunc(gl.NOTEQUAL, 0, ^uint32(0))
	gl.StencilMask(0)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	d.screenVbo.Bind()
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.DisableVertexAttribArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.StencilMask(^uint32(0))
	gl.Disable(gl.STENCIL_TEST)
}

// drawPlanar renders pre-projected shadow triangles onto a receiver.
// The stencil keeps overlapping triangles from darkening twice.
func (d *shadowDrawer) drawPlanar(tris []vec.Vec3, projection, view *mtx.Matrix, alpha float32) {
	if len(tris) == 0 {
		return
	}
	d.prog.Use()
	d.vao.Bind()
	setUniformMatrix(d.projection, projection)
	setUniformMatrix(d.view, view)
	gl.Uniform4f(d.flatColor, 0, 0, 0, alpha)

	d.scratch = d.scratch[:0]
	for _, p := range tris {
		d.scratch = append(d.scratch, p.X, p.Y, p.Z)
	}
	d.vbo.Bind()
	d.vbo.SetDynamicData(4*len(d.scratch), glh.Ptr(d.scratch))

	gl.DepthMask(false)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilFunc(gl.EQUAL, 0, ^uint32(0))
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.INCR)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(tris)))
	gl.DisableVertexAttribArray(0)

	gl.Disable(gl.STENCIL_TEST)
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
}
