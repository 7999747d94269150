// SPDX-License-Identifier: GPL-2.0-or-later
package render

import (
	"goarena/glh"
	"goarena/math/mtx"
	"goarena/md3"
	"goarena/model"

	"github.com/go-gl/gl/v4.6-core/gl"
)

const maxLights = 8

// Light is one effective point light for the current frame, flicker
// already applied.
type Light struct {
	Pos    [3]float32
	Color  [3]float32
	Radius float32
}

func newMeshDrawProgram() (*glh.Program, error) {
	return glh.NewProgram(vertexSourceMeshDrawer, fragmentSourceMeshDrawer)
}

type meshKey struct {
	id   model.ID
	mesh int
}

type meshBuffers struct {
	vbo        *glh.Buffer
	ebo        *glh.Buffer
	indexCount int32
}

// meshDrawer renders morph frame geometry. Index buffers are cached
// per model handle, vertex data is decoded and uploaded every draw
// since every frame is a different morph target.
type meshDrawer struct {
	vao  *glh.VertexArray
	prog *glh.Program

	projection  int32
	view        int32
	modelU      int32
	tex         int32
	useTexture  int32
	baseColor   int32
	ambient     int32
	lightCount  int32
	lightPos    int32
	lightColor  int32
	lightRadius int32

	buffers map[meshKey]*meshBuffers
	scratch []float32
}

func newMeshDrawer() (*meshDrawer, error) {
	d := &meshDrawer{
		buffers: make(map[meshKey]*meshBuffers),
	}
	d.vao = glh.NewVertexArray()
	var err error
	d.prog, err = newMeshDrawProgram()
	if err != nil {
		return nil, err
	}
	d.projection = d.prog.GetUniformLocation("projection")
	d.view = d.prog.GetUniformLocation("view")
	d.modelU = d.prog.GetUniformLocation("model")
	d.tex = d.prog.GetUniformLocation("tex")
	d.useTexture = d.prog.GetUniformLocation("useTexture")
	d.baseColor = d.prog.GetUniformLocation("baseColor")
	d.ambient = d.prog.GetUniformLocation("ambient")
	d.lightCount = d.prog.GetUniformLocation("lightCount")
	d.lightPos = d.prog.GetUniformLocation("lightPos")
	d.lightColor = d.prog.GetUniformLocation("lightColor")
	d.lightRadius = d.prog.GetUniformLocation("lightRadius")
	return d, nil
}

// invalidate drops cached index buffers for unloaded models.
func (d *meshDrawer) invalidate(ids ...model.ID) {
	for k := range d.buffers {
		for _, id := range ids {
			if k.id == id {
				delete(d.buffers, k)
			}
		}
	}
}

// begin binds the program and sets the per frame uniforms.
func (d *meshDrawer) begin(projection, view *mtx.Matrix, lights []Light, ambient [3]float32) {
	d.prog.Use()
	d.vao.Bind()
	setUniformMatrix(d.projection, projection)
	setUniformMatrix(d.view, view)
	gl.Uniform3f(d.ambient, ambient[0], ambient[1], ambient[2])

	if len(lights) > maxLights {
		lights = lights[:maxLights]
	}
	var pos, col [maxLights * 3]float32
	var rad [maxLights]float32
	for i, l := range lights {
		pos[i*3], pos[i*3+1], pos[i*3+2] = l.Pos[0], l.Pos[1], l.Pos[2]
		col[i*3], col[i*3+1], col[i*3+2] = l.Color[0], l.Color[1], l.Color[2]
		rad[i] = l.Radius
	}
	gl.Uniform1i(d.lightCount, int32(len(lights)))
	gl.Uniform3fv(d.lightPos, maxLights, &pos[0])
	gl.Uniform3fv(d.lightColor, maxLights, &col[0])
	gl.Uniform1fv(d.lightRadius, maxLights, &rad[0])
	gl.Uniform1i(d.tex, 0)
}

func (d *meshDrawer) buffersFor(id model.ID, meshIdx int, m *md3.Mesh) *meshBuffers {
	k := meshKey{id: id, mesh: meshIdx}
	if b, ok := d.buffers[k]; ok {
		return b
	}
	b := &meshBuffers{
		vbo:        glh.NewBuffer(glh.ArrayBuffer),
		ebo:        glh.NewBuffer(glh.ElementArrayBuffer),
		indexCount: int32(len(m.Triangles) * 3),
	}
	idx := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		idx = append(idx, uint32(t.Indexes[0]), uint32(t.Indexes[1]), uint32(t.Indexes[2]))
	}
	b.ebo.Bind()
	b.ebo.SetData(4*len(idx), glh.Ptr(idx))
	d.buffers[k] = b
	return b
}

// layout: 3 position + 3 normal + 2 texcoord, float32 each
const meshStride = 8

func (d *meshDrawer) appendMeshVerts(m *md3.Mesh, frame int) {
	d.scratch = d.scratch[:0]
	for i, v := range m.Vertices[frame] {
		n := v.DecodedNormal()
		st := m.TexCoords[i]
		d.scratch = append(d.scratch,
			float32(v.X)*md3.VertexScale,
			float32(v.Y)*md3.VertexScale,
			float32(v.Z)*md3.VertexScale,
			n[0], n[1], n[2],
			st.S, st.T)
	}
}

// drawPart draws every mesh of one composed part. Out of range frames
// fall back to frame 0, matching the animation parser's forgiveness.
func (d *meshDrawer) drawPart(pd model.PartDraw, tm *textureManager) {
	frame := pd.Frame
	if frame < 0 || frame >= pd.Part.Model.FrameCount {
		frame = 0
	}
	setUniformMatrix(d.modelU, pd.World)
	gl.Uniform1i(d.useTexture, 1)
	gl.Uniform4f(d.baseColor, 1, 1, 1, 1)

	for i := range pd.Part.Model.Meshes {
		m := &pd.Part.Model.Meshes[i]
		if frame >= len(m.Vertices) {
			continue
		}
		b := d.buffersFor(pd.Part.ID, i, m)
		d.appendMeshVerts(m, frame)
		b.vbo.Bind()
		b.vbo.SetDynamicData(4*len(d.scratch), glh.Ptr(d.scratch))
		b.ebo.Bind()

		var tex glh.Texture = tm.white
		if i < len(pd.Part.Textures) {
			tex = tm.get(pd.Part.Textures[i])
		}
		gl.ActiveTexture(gl.TEXTURE0)
		tex.Bind()

		enableMeshAttribs()
		gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
		disableMeshAttribs()
	}
}

func enableMeshAttribs() {
	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, meshStride*4, 0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, meshStride*4, 3*4)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, meshStride*4, 6*4)
}

func disableMeshAttribs() {
	gl.DisableVertexAttribArray(0)
	gl.DisableVertexAttribArray(1)
	gl.DisableVertexAttribArray(2)
}

func setUniformMatrix(id int32, m *mtx.Matrix) {
	// row major matrices, so transpose is true
	gl.UniformMatrix4fv(id, 1, true, m.Ptr())
}
