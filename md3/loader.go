// SPDX-License-Identifier: GPL-2.0-or-later
package md3

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load reads an MD3 model. The reader must be positioned at the start
// of the file.
func Load(name string, r io.ReadSeeker) (*Model, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrapf(err, "%s: header", name)
	}
	if string(h.ID[:]) != "IDP3" {
		return nil, errors.Errorf("%s: not an MD3 file", name)
	}
	if h.Version != md3Version {
		return nil, errors.Errorf("%s: unsupported MD3 version %d", name, h.Version)
	}

	mod := &Model{
		Name:       name,
		FrameCount: int(h.FrameCount),
	}

	if _, err := r.Seek(int64(h.FrameStart), io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "%s: frames", name)
	}
	frames := make([]frame, h.FrameCount)
	if err := binary.Read(r, binary.LittleEndian, frames); err != nil {
		return nil, errors.Wrapf(err, "%s: frames", name)
	}
	mod.mins = make([][3]float32, len(frames))
	mod.radii = make([]float32, len(frames))
	for i, f := range frames {
		mod.mins[i] = f.Mins
		mod.radii[i] = f.Radius
	}

	if _, err := r.Seek(int64(h.TagStart), io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "%s: tags", name)
	}
	mod.Tags = make([][]Tag, h.FrameCount)
	for i := range mod.Tags {
		tags := make([]Tag, h.TagCount)
		if err := binary.Read(r, binary.LittleEndian, tags); err != nil {
			return nil, errors.Wrapf(err, "%s: tags", name)
		}
		mod.Tags[i] = tags
	}

	offset := int64(h.SurfaceStart)
	for i := int32(0); i < h.SurfaceCount; i++ {
		mesh, size, err := loadSurface(r, offset)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: surface %d", name, i)
		}
		mod.Meshes = append(mod.Meshes, *mesh)
		offset += size
	}

	return mod, nil
}

// LoadFile reads an MD3 model from disk.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open model")
	}
	defer f.Close()
	return Load(path, f)
}

func loadSurface(r io.ReadSeeker, offset int64) (*Mesh, int64, error) {
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, 0, err
	}
	var sh surfaceHeader
	if err := binary.Read(r, binary.LittleEndian, &sh); err != nil {
		return nil, 0, err
	}

	mesh := &Mesh{
		Name: cstr(sh.Name[:]),
	}

	if _, err := r.Seek(offset+int64(sh.ShaderStart), io.SeekStart); err != nil {
		return nil, 0, err
	}
	shaders := make([]shader, sh.ShaderCount)
	if err := binary.Read(r, binary.LittleEndian, shaders); err != nil {
		return nil, 0, err
	}
	for _, s := range shaders {
		mesh.Shaders = append(mesh.Shaders, cstr(s.Name[:]))
	}

	if _, err := r.Seek(offset+int64(sh.TriangleStart), io.SeekStart); err != nil {
		return nil, 0, err
	}
	mesh.Triangles = make([]Triangle, sh.TriangleCount)
	if err := binary.Read(r, binary.LittleEndian, mesh.Triangles); err != nil {
		return nil, 0, err
	}

	if _, err := r.Seek(offset+int64(sh.TexCoordStart), io.SeekStart); err != nil {
		return nil, 0, err
	}
	mesh.TexCoords = make([]TexCoord, sh.VerticeCount)
	if err := binary.Read(r, binary.LittleEndian, mesh.TexCoords); err != nil {
		return nil, 0, err
	}

	if _, err := r.Seek(offset+int64(sh.VertexStart), io.SeekStart); err != nil {
		return nil, 0, err
	}
	mesh.Vertices = make([][]Vertex, sh.FrameCount)
	for i := range mesh.Vertices {
		verts := make([]Vertex, sh.VerticeCount)
		if err := binary.Read(r, binary.LittleEndian, verts); err != nil {
			return nil, 0, err
		}
		mesh.Vertices[i] = verts
	}

	return mesh, int64(sh.SurfaceSize), nil
}

func cstr(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// Name returns the tag name with the trailing padding removed.
func (t *Tag) TagName() string {
	return cstr(t.Name[:])
}

// TagByName finds a named tag in the given frame's tag list. Frame
// indices out of range and unknown names yield ok == false.
func (m *Model) TagByName(frameIdx int, name string) (Tag, bool) {
	if frameIdx < 0 || frameIdx >= len(m.Tags) {
		return Tag{}, false
	}
	for _, t := range m.Tags[frameIdx] {
		if t.TagName() == name {
			return t, true
		}
	}
	return Tag{}, false
}

// Radius returns the bounding sphere radius of the given frame.
func (m *Model) Radius(frameIdx int) float32 {
	if frameIdx < 0 || frameIdx >= len(m.radii) {
		return 0
	}
	return m.radii[frameIdx]
}

// MinZ returns the lowest decoded z bound of the given frame, used to
// place a model's feet on the floor.
func (m *Model) MinZ(frameIdx int) float32 {
	if frameIdx < 0 || frameIdx >= len(m.mins) {
		return 0
	}
	return m.mins[frameIdx][2]
}
