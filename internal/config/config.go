// Package config loads the viewer settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-lattice/pkg/camera"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is looked up in the working directory when no -config flag is given.
const DefaultFilename = "lattice.yml"

// maxConfigSize bounds how much of a config file is read
const maxConfigSize = 1024 * 1024

// Config holds every tunable of the viewer. Zero-valued fields in a file
// keep the defaults they overlay.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Lattice LatticeConfig `yaml:"lattice"`
	Shaders ShaderConfig  `yaml:"shaders"`
	Frame   FrameConfig   `yaml:"frame"`
	Light   [3]float32    `yaml:"light"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`

	// CaptureMouse hides and grabs the cursor from the first frame; C toggles it
	CaptureMouse bool `yaml:"capture_mouse"`
}

type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	FOV         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Sensitivity float32    `yaml:"sensitivity"`
	WalkSpeed   float32    `yaml:"walk_speed"`
	RunSpeed    float32    `yaml:"run_speed"`

	// Target overrides yaw and pitch so the camera starts facing it
	Target *[3]float32 `yaml:"target"`
}

type LatticeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`

	// Seed for the random fill; 0 picks one from the clock
	Seed int64 `yaml:"seed"`
}

type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type FrameConfig struct {
	MaxDelta      float64 `yaml:"max_delta"`
	TitleInterval float64 `yaml:"title_interval"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:        "global lattice test",
			VSync:        true,
			CaptureMouse: true,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, -3},
			Yaw:         camera.DefaultYaw,
			Pitch:       camera.DefaultPitch,
			FOV:         camera.DefaultFOV,
			Near:        camera.DefaultNear,
			Far:         camera.DefaultFar,
			Sensitivity: camera.DefaultSensitivity,
			WalkSpeed:   camera.DefaultWalkSpeed,
			RunSpeed:    camera.DefaultRunSpeed,
		},
		Lattice: LatticeConfig{
			Width:  10,
			Height: 5,
			Depth:  10,
		},
		Shaders: ShaderConfig{
			Vertex:   "resources/genericVertex.glsl",
			Fragment: "resources/genericFragment.glsl",
		},
		Frame: FrameConfig{
			MaxDelta:      0.25,
			TitleInterval: 1.0 / 30.0,
		},
		Light: [3]float32{0, 5, 6},
	}
}

// Load overlays the YAML file at path on the defaults.
// A missing file is not an error and yields the defaults.
func Load(path string, logger *slog.Logger) (Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := Default()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to stat config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("config file %s too large (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	logger.Info("loaded config", "path", path, "size", info.Size())
	return cfg, nil
}

// Validate reports every setting the viewer cannot run with
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)

	cam := c.Camera
	check(cam.FOV > 0 && cam.FOV < 180, "camera fov %v must be in (0, 180)", cam.FOV)
	check(cam.Near > 0, "camera near plane %v must be positive", cam.Near)
	check(cam.Far > cam.Near, "camera far plane %v must be beyond near plane %v", cam.Far, cam.Near)
	check(cam.Sensitivity > 0, "camera sensitivity %v must be positive", cam.Sensitivity)
	check(cam.WalkSpeed > 0 && cam.RunSpeed > 0, "camera speeds %v/%v must be positive", cam.WalkSpeed, cam.RunSpeed)

	l := c.Lattice
	check(l.Width > 0 && l.Height > 0 && l.Depth > 0, "lattice size %dx%dx%d must be positive", l.Width, l.Height, l.Depth)

	check(c.Shaders.Vertex != "" && c.Shaders.Fragment != "", "shader paths must be set")
	check(c.Frame.MaxDelta > 0, "frame max_delta %v must be positive", c.Frame.MaxDelta)
	check(c.Frame.TitleInterval > 0, "frame title_interval %v must be positive", c.Frame.TitleInterval)

	return errors.Join(errs...)
}

// CameraOptions converts the camera section for camera.NewCamera
func (c Config) CameraOptions() camera.Options {
	cam := c.Camera
	return camera.Options{
		Position:    mgl32.Vec3(cam.Position),
		Yaw:         cam.Yaw,
		Pitch:       cam.Pitch,
		FOV:         cam.FOV,
		Near:        cam.Near,
		Far:         cam.Far,
		Sensitivity: cam.Sensitivity,
		WalkSpeed:   cam.WalkSpeed,
		RunSpeed:    cam.RunSpeed,
	}
}
