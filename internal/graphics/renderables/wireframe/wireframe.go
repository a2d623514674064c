package wireframe

import (
	"voxmesh/internal/graphics"
	renderer "voxmesh/internal/graphics/renderer"
	"voxmesh/internal/profiling"
	"voxmesh/internal/voxel"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Wireframe outlines the meshed region as a box.
type Wireframe struct {
	program *graphics.Program
	vao     uint32
	vbo     uint32
	bounds  voxel.Bounds
	color   mgl32.Vec3
	Enabled bool
}

// NewWireframe creates a wireframe renderable around bounds.
func NewWireframe(bounds voxel.Bounds) *Wireframe {
	return &Wireframe{bounds: bounds, Enabled: true}
}

// Init initializes the wireframe rendering system
func (w *Wireframe) Init() error {
	var err error
	w.program, err = graphics.NewProgram(graphics.WireframeVertexSource, graphics.WireframeFragmentSource)
	if err != nil {
		return err
	}

	w.setupWireframeVAO()
	return nil
}

// Render draws the region outline.
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if !w.Enabled {
		return
	}
	defer profiling.Track("renderer.renderRegionOutline")()

	w.program.Use()
	w.program.SetMatrix4("proj", &ctx.Proj[0])
	w.program.SetMatrix4("view", &ctx.View[0])

	model := w.Model()
	w.program.SetMatrix4("model", &model[0])
	w.program.SetVector3("color", w.color.X(), w.color.Y(), w.color.Z())

	gl.BindVertexArray(w.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, 24)
	gl.BindVertexArray(0)
}

// Model maps the unit cube onto the region.
func (w *Wireframe) Model() mgl32.Mat4 {
	size := w.bounds.Size().Vec3()
	return mgl32.Translate3D(w.bounds.From.Vec3().Elem()).Mul4(mgl32.Scale3D(size.Elem()))
}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
	}
	if w.program != nil {
		w.program.Delete()
	}
}

func (w *Wireframe) SetViewport(int, int) {}

// unitCubeEdges holds the 12 edges of the cube 0..1 as line pairs.
var unitCubeEdges = []float32{
	// z = 1
	0, 0, 1, 1, 0, 1,
	1, 0, 1, 1, 1, 1,
	1, 1, 1, 0, 1, 1,
	0, 1, 1, 0, 0, 1,

	// z = 0
	0, 0, 0, 1, 0, 0,
	1, 0, 0, 1, 1, 0,
	1, 1, 0, 0, 1, 0,
	0, 1, 0, 0, 0, 0,

	// Connecting edges
	0, 0, 1, 0, 0, 0,
	1, 0, 1, 1, 0, 0,
	1, 1, 1, 1, 1, 0,
	0, 1, 1, 0, 1, 0,
}

func (w *Wireframe) setupWireframeVAO() {
	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)

	gl.BufferData(gl.ARRAY_BUFFER, len(unitCubeEdges)*4, gl.Ptr(unitCubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
}
