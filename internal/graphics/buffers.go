package graphics

import (
	"voxmesh/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MeshBuffers owns the GL objects holding one uploaded mesh.
type MeshBuffers struct {
	VAO, VBO, IBO uint32
	IndexCount    int32
}

// UploadMesh copies the vertex and index arrays into static GL buffers.
// Attribute 0 is position, 1 normal, 2 color, at the byte offsets of
// meshing.Vertex.
func UploadMesh(mesh meshing.Mesh) *MeshBuffers {
	b := &MeshBuffers{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	gl.GenBuffers(1, &b.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	if len(mesh.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*meshing.VertexStride, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)
	}

	gl.GenBuffers(1, &b.IBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.IBO)
	if len(mesh.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, meshing.VertexStride, meshing.PositionOffset)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, meshing.VertexStride, meshing.NormalOffset)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, meshing.VertexStride, meshing.ColorOffset)

	gl.BindVertexArray(0)
	return b
}

// Draw issues one indexed draw of the whole mesh.
func (b *MeshBuffers) Draw() {
	if b.IndexCount == 0 {
		return
	}
	gl.BindVertexArray(b.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.IndexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete frees the GL objects.
func (b *MeshBuffers) Delete() {
	gl.DeleteBuffers(1, &b.IBO)
	gl.DeleteBuffers(1, &b.VBO)
	gl.DeleteVertexArrays(1, &b.VAO)
	*b = MeshBuffers{}
}
