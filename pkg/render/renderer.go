// Package render wires the window, the camera, the shader program and the
// lattice texture into a frame loop.
package render

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-lattice/internal/config"
	"github.com/leterax/go-lattice/internal/openglhelper"
	"github.com/leterax/go-lattice/pkg/camera"
	"github.com/leterax/go-lattice/pkg/frame"
	"github.com/leterax/go-lattice/pkg/uniform"
	"github.com/leterax/go-lattice/pkg/voxel"
)

// Renderer owns the viewer's window and GPU resources and runs the frame loop
type Renderer struct {
	logger *slog.Logger

	window   *openglhelper.Window
	camera   *camera.Camera
	mouse    *mouseLook
	pipeline *latticePipeline
	loop     *frame.Loop

	lattice *voxel.Lattice
	rng     *rand.Rand
}

// NewRenderer creates the window, loads the shaders and uploads the lattice
func NewRenderer(cfg config.Config, logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	r := &Renderer{
		logger: logger,
		window: window,
		camera: newCamera(cfg),
	}
	r.mouse = &mouseLook{cursor: window, camera: r.camera}

	pipeline, err := r.initPipeline(cfg)
	if err != nil {
		window.Close()
		return nil, err
	}
	r.pipeline = pipeline

	// Set up callbacks
	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(r.keyCallback)
	glfwWindow.SetCursorPosCallback(r.cursorPosCallback)
	glfwWindow.SetScrollCallback(r.scrollCallback)
	glfwWindow.SetFramebufferSizeCallback(r.framebufferSizeCallback)
	glfwWindow.SetFocusCallback(r.focusCallback)
	r.mouse.capture(cfg.Window.CaptureMouse)

	// The size callback only fires on change, so size the viewport once here
	window.OnResize(window.FramebufferSize())

	static := []uniform.Uniform{
		{Name: "light", Value: uniform.Vec3(cfg.Light)},
		{Name: "LATTICE_SIZE", Value: uniform.Vec3(r.lattice.Dimensions())},
		{Name: "lattice", Value: uniform.Int(LatticeTextureUnit)},
	}

	r.loop = frame.NewLoop(r.camera, window, &keyboardInput{keys: window}, pipeline, frame.Options{
		MaxDelta:      cfg.Frame.MaxDelta,
		TitleInterval: cfg.Frame.TitleInterval,
		Static:        static,
		Logger:        logger,
	})

	return r, nil
}

// newCamera builds the camera from the config, facing the target when one is set
func newCamera(cfg config.Config) *camera.Camera {
	cam := camera.NewCamera(cfg.CameraOptions())
	if target := cfg.Camera.Target; target != nil {
		cam.LookAt(mgl32.Vec3(*target))
		cam.UpdateBasis()
	}
	return cam
}

// initPipeline builds the shader program, the quad and the lattice texture
func (r *Renderer) initPipeline(cfg config.Config) (*latticePipeline, error) {
	shader, err := openglhelper.LoadShaderFromFiles(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	seed := cfg.Lattice.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r.rng = rand.New(rand.NewSource(seed))

	lattice, err := voxel.NewRandomLattice(cfg.Lattice.Width, cfg.Lattice.Height, cfg.Lattice.Depth, r.rng)
	if err != nil {
		shader.Delete()
		return nil, fmt.Errorf("failed to create lattice: %w", err)
	}
	r.lattice = lattice

	texture, err := openglhelper.NewLatticeTexture(lattice.Width, lattice.Height, lattice.Depth, lattice.Cells)
	if err != nil {
		shader.Delete()
		return nil, fmt.Errorf("failed to upload lattice: %w", err)
	}

	r.logger.Info("lattice ready",
		"size", fmt.Sprintf("%dx%dx%d", lattice.Width, lattice.Height, lattice.Depth),
		"solid", lattice.SolidCount(),
		"seed", seed)

	return &latticePipeline{
		window:  r.window,
		shader:  shader,
		program: uniform.NewLocationCache(shader, r.logger),
		quad:    openglhelper.NewQuad(),
		texture: texture,
	}, nil
}

// Run runs the frame loop until the window is closed, then releases everything
func (r *Renderer) Run() error {
	if err := r.loop.Run(); err != nil {
		return fmt.Errorf("frame loop: %w", err)
	}
	r.lattice.Release()
	r.logger.Info("viewer stopped", "frames", r.loop.Frames())
	return nil
}

// reseed refills the lattice from the renderer's rng and re-uploads it
func (r *Renderer) reseed() {
	r.lattice.Randomize(r.rng)
	if err := r.pipeline.texture.Update(r.lattice.Cells); err != nil {
		r.logger.Error("failed to upload lattice", "error", err)
		return
	}
	r.logger.Debug("lattice regenerated", "solid", r.lattice.SolidCount())
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != Press {
		return
	}

	switch key {
	case KeyExit:
		r.window.SetShouldClose(true)
	case KeyCapture:
		// Toggle mouse capture with C key
		r.mouse.toggle()
	case KeyReseed:
		r.reseed()
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.mouse.move(xpos, ypos)
}

func (r *Renderer) scrollCallback(_ *glfw.Window, xoffset, yoffset float64) {
	r.camera.HandleMouseScroll(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
}

func (r *Renderer) focusCallback(_ *glfw.Window, focused bool) {
	r.mouse.focus()
}
