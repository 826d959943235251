package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/leterax/go-lattice/internal/config"
	"github.com/leterax/go-lattice/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", config.DefaultFilename, "Path to the YAML config file")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	vsync := flag.Bool("vsync", true, "Wait for vertical sync (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*configPath, *width, *height, *vsync); err != nil {
		slog.Error("lattice viewer failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, width, height int, vsync bool) error {
	cfg, err := config.Load(configPath, slog.Default())
	if err != nil {
		return err
	}

	// Only flags given on the command line override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = width
		case "height":
			cfg.Window.Height = height
		case "vsync":
			cfg.Window.VSync = vsync
		}
	})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	renderer, err := render.NewRenderer(cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	slog.Info("starting lattice viewer",
		"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"controls", "WASD move, space/shift up/down, ctrl run, C capture mouse, R reseed, esc quit")

	return renderer.Run()
}
