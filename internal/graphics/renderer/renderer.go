package renderer

import (
	"voxmesh/internal/graphics"
	"voxmesh/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	clear       mgl32.Vec3
}

// NewRenderer configures GL state and initializes rs in order. On failure
// the renderables initialized so far are disposed.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		camera: camera,
		clear:  mgl32.Vec3{0.53, 0.81, 0.92},
	}

	for _, rr := range rs {
		if err := rr.Init(); err != nil {
			r.Dispose()
			return nil, err
		}
		r.renderables = append(r.renderables, rr)
	}

	return r, nil
}

// Render clears the frame and draws every renderable from the camera.
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(r.clear.X(), r.clear.Y(), r.clear.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		DT:     dt,
		View:   r.camera.ViewMatrix(),
		Proj:   r.camera.ProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// Camera returns the camera instance
func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// SetViewport resizes the GL viewport and updates the camera aspect ratio.
func (r *Renderer) SetViewport(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.AspectRatio = float32(width) / float32(height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
