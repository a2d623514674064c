package voxels

import (
	"voxmesh/internal/graphics"
	renderer "voxmesh/internal/graphics/renderer"
	"voxmesh/internal/meshing"
	"voxmesh/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Voxels draws one mesher output with a single directional light.
type Voxels struct {
	program  *graphics.Program
	buffers  *graphics.MeshBuffers
	mesh     meshing.Mesh
	LightDir mgl32.Vec3
}

// NewVoxels creates a renderable for mesh. The mesh is uploaded in Init.
func NewVoxels(mesh meshing.Mesh) *Voxels {
	return &Voxels{
		mesh:     mesh,
		LightDir: mgl32.Vec3{0.4, 1.0, 0.3}.Normalize(),
	}
}

// Init compiles the shader and uploads the mesh.
func (v *Voxels) Init() error {
	var err error
	v.program, err = graphics.NewProgram(graphics.VoxelVertexSource, graphics.VoxelFragmentSource)
	if err != nil {
		return err
	}
	v.buffers = graphics.UploadMesh(v.mesh)
	// The GPU copy is authoritative from here on.
	v.mesh = meshing.Mesh{}
	return nil
}

// Render draws the uploaded mesh.
func (v *Voxels) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderVoxels")()

	v.program.Use()
	v.program.SetMatrix4("projection", &ctx.Proj[0])
	v.program.SetMatrix4("view", &ctx.View[0])
	v.program.SetVector3("light_dir", v.LightDir.X(), v.LightDir.Y(), v.LightDir.Z())
	v.buffers.Draw()
}

// IndexCount returns the number of uploaded indices.
func (v *Voxels) IndexCount() int32 {
	if v.buffers == nil {
		return 0
	}
	return v.buffers.IndexCount
}

// Dispose cleans up OpenGL resources
func (v *Voxels) Dispose() {
	if v.buffers != nil {
		v.buffers.Delete()
		v.buffers = nil
	}
	if v.program != nil {
		v.program.Delete()
		v.program = nil
	}
}

func (v *Voxels) SetViewport(int, int) {}
