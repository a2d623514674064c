package meshing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one record of the vertex buffer. The layout is uploaded verbatim:
// position at byte 0, normal at 12, color at 24.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
}

// Byte layout of Vertex for attribute binding.
const (
	VertexStride   = 36
	PositionOffset = 0
	NormalOffset   = 12
	ColorOffset    = 24
)

// Per-face and per-voxel geometry sizes.
const (
	VerticesPerFace  = 4
	IndicesPerFace   = 6
	MaxVoxelVertices = FaceCount * VerticesPerFace
	MaxVoxelIndices  = FaceCount * IndicesPerFace
)

// Mesh is an indexed triangle list; every three indices form one
// counter-clockwise, outward-facing triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles described by the indices.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// FaceCount returns the number of unit quads in the mesh.
func (m *Mesh) FaceCount() int {
	return len(m.Indices) / IndicesPerFace
}

// Empty reports whether the mesh carries no geometry.
func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Append splices other onto m, rebasing its indices past m's vertices.
func (m *Mesh) Append(other Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, i := range other.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// Bounds returns the axis-aligned box enclosing all vertex positions.
// An empty mesh returns two zero vectors.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo = mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	hi = mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, v := range m.Vertices {
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], v.Position[a])
			hi[a] = max(hi[a], v.Position[a])
		}
	}
	return lo, hi
}
