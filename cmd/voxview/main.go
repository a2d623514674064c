// Command voxview meshes a voxel region and shows it in a window.
//
// Controls: WASD or arrows to move, Space/Shift up and down, Ctrl to move
// faster, drag with the left mouse button to look around, F to toggle the
// region outline, Escape to quit.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"voxmesh/internal/config"
	"voxmesh/internal/graphics"
	"voxmesh/internal/graphics/renderables/voxels"
	"voxmesh/internal/graphics/renderables/wireframe"
	renderer "voxmesh/internal/graphics/renderer"
	"voxmesh/internal/input"
	"voxmesh/internal/logger"
	"voxmesh/internal/pipeline"
	"voxmesh/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

const (
	moveSpeed   = 20.0 // units per second
	fastFactor  = 4.0
	lookSpeed   = 0.15 // degrees per pixel
	windowTitle = "voxview"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	closer.Bind(logger.Sync)

	if err := run(cfg); err != nil {
		logger.Error("voxview failed", zap.Error(err))
		closer.Fatalln(err)
	}
	closer.Close()
}

func run(cfg *config.Config) error {
	mesh, err := pipeline.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Viewer)
	if err != nil {
		return err
	}
	defer window.Destroy()

	bounds, err := cfg.Region.Bounds()
	if err != nil {
		return err
	}

	camera := graphics.NewCamera(cfg.Viewer.Width, cfg.Viewer.Height, cfg.Viewer.FOV)
	lo, hi := mesh.Bounds()
	camera.Frame(lo, hi)

	voxelsRenderer := voxels.NewVoxels(mesh)
	outline := wireframe.NewWireframe(bounds)
	r, err := renderer.NewRenderer(camera, voxelsRenderer, outline)
	if err != nil {
		return err
	}
	defer r.Dispose()

	fbw, fbh := window.GetFramebufferSize()
	r.SetViewport(fbw, fbh)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		r.SetViewport(w, h)
	})
	im := input.NewManager()
	im.Attach(window)

	logger.Info("viewer ready",
		zap.Int("width", cfg.Viewer.Width),
		zap.Int("height", cfg.Viewer.Height),
		zap.Int32("indices", voxelsRenderer.IndexCount()),
	)

	var lastX, lastY float64
	dragging := false
	last := glfw.GetTime()

	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		if im.JustPressed(input.ActionQuit) {
			window.SetShouldClose(true)
		}
		if im.JustPressed(input.ActionToggleOutline) {
			outline.Enabled = !outline.Enabled
		}

		x, y := window.GetCursorPos()
		if im.IsActive(input.ActionLook) && dragging {
			camera.Turn(float32(x-lastX)*lookSpeed, float32(y-lastY)*lookSpeed)
		}
		dragging = im.IsActive(input.ActionLook)
		lastX, lastY = x, y

		forward, right, up := im.Axes()
		step := moveSpeed * dt
		if im.IsActive(input.ActionFast) {
			step *= fastFactor
		}
		camera.Move(forward*step, right*step, up*step)

		r.Render(float64(dt))

		window.SwapBuffers()
		im.PostUpdate()
		glfw.PollEvents()
	}

	logger.Info("viewer closed")
	logger.Debug("timings", zap.String("top", profiling.TopN(5)))
	return nil
}

func setupWindow(vc config.ViewerConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(vc.Width, vc.Height, windowTitle, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, err
	}

	if vc.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	logger.Debug("OpenGL context", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
	return window, nil
}
