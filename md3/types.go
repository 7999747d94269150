// SPDX-License-Identifier: GPL-2.0-or-later
package md3

const (
	md3Version = 15
	Magic      = '3'<<24 | 'P'<<16 | 'D'<<8 | 'I'

	// VertexScale decodes the fixed point vertex positions.
	VertexScale = 1.0 / 64

	maxQPath = 64
)

type header struct { // md3Header_t
	ID           [4]byte
	Version      int32
	Name         [maxQPath]byte
	Flags        int32
	FrameCount   int32
	TagCount     int32
	SurfaceCount int32
	SkinCount    int32
	FrameStart   int32
	TagStart     int32
	SurfaceStart int32
	FileSize     int32
}

type frame struct { // md3Frame_t
	Mins   [3]float32
	Maxs   [3]float32
	Origin [3]float32
	Radius float32
	Name   [16]byte
}

type surfaceHeader struct { // md3Surface_t
	ID            [4]byte
	Name          [maxQPath]byte
	Flags         int32
	FrameCount    int32
	ShaderCount   int32
	VerticeCount  int32
	TriangleCount int32
	TriangleStart int32
	ShaderStart   int32
	TexCoordStart int32
	VertexStart   int32
	SurfaceSize   int32
}

type shader struct { // md3Shader_t
	Name  [maxQPath]byte
	Index int32
}

// Tag is a named per frame attachment transform. Position and Axis
// are expressed in the owning model's frame of reference.
type Tag struct {
	Name     [maxQPath]byte
	Position [3]float32
	Axis     [3][3]float32
}

type Triangle struct { // md3Triangle_t
	Indexes [3]int32
}

type TexCoord struct { // md3St_t
	S, T float32
}

// Vertex is a fixed point position plus a lat/lng encoded normal.
// Final position is Vertex * VertexScale.
type Vertex struct {
	X, Y, Z int16
	Normal  uint16
}

// Mesh holds one surface. Topology is shared across frames, only the
// vertex positions morph.
type Mesh struct {
	Name      string
	Shaders   []string
	Triangles []Triangle
	TexCoords []TexCoord
	// Vertices is indexed [frame][vertex].
	Vertices [][]Vertex
}

type Model struct {
	Name       string
	FrameCount int
	// Tags is indexed [frame][tag].
	Tags   [][]Tag
	Meshes []Mesh

	mins  [][3]float32 // per frame bounds
	radii []float32    // per frame bounding sphere
}
