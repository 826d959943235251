// Package frame runs the viewer's per-frame state machine: timing, input,
// camera update, uniform push and draw, in that order, on a single thread.
package frame

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leterax/go-lattice/pkg/camera"
	"github.com/leterax/go-lattice/pkg/uniform"
)

// State is the lifecycle state of a Loop.
type State int

const (
	Init State = iota
	Running
	ShuttingDown
	Terminated
)

func (s State) String() string {
	switch s {
	case Init:
		return "init"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting-down"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrAlreadyStarted is returned by Start when the loop has left Init.
var ErrAlreadyStarted = errors.New("frame loop already started")

// Window is the part of the window system the loop drives.
type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	Time() float64
	FramebufferSize() (width, height int)
	SetTitle(title string)
	SwapBuffers()
	PollEvents()
	Close()
}

// Sample is the input state read once per frame, after events are polled.
type Sample struct {
	Movement camera.MovementInput
	Exit     bool
}

// Input reports the held controls.
type Input interface {
	Sample() Sample
}

// Pipeline owns the GPU side of a frame. Begin prepares the target and
// returns the bound program the uniforms go to.
type Pipeline interface {
	Begin() uniform.Program
	Draw()
	Release()
}

// Options tunes a Loop. Zero values select the defaults.
type Options struct {
	MaxDelta      float64
	TitleInterval float64
	// Static uniforms are pushed every frame ahead of the camera uniforms.
	Static []uniform.Uniform
	Logger *slog.Logger
}

// Loop drives one camera, one window and one pipeline.
type Loop struct {
	state State

	camera   *camera.Camera
	window   Window
	input    Input
	pipeline Pipeline

	clock  *Clock
	stats  *Stats
	static []uniform.Uniform
	logger *slog.Logger

	frames      uint64
	degenerate  bool
	lastApplied int
}

// NewLoop creates a loop in the Init state.
func NewLoop(cam *camera.Camera, window Window, input Input, pipeline Pipeline, opts Options) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Loop{
		state:    Init,
		camera:   cam,
		window:   window,
		input:    input,
		pipeline: pipeline,
		clock:    NewClock(opts.MaxDelta),
		stats:    NewStats(opts.TitleInterval),
		static:   opts.Static,
		logger:   logger,
	}
}

// State returns the current lifecycle state
func (l *Loop) State() State {
	return l.state
}

// Camera returns the camera the loop updates
func (l *Loop) Camera() *camera.Camera {
	return l.camera
}

// Frames returns the number of frames drawn so far
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Start moves the loop from Init to Running.
func (l *Loop) Start() error {
	if l.state != Init {
		return fmt.Errorf("%w (state %s)", ErrAlreadyStarted, l.state)
	}
	l.state = Running
	l.logger.Debug("frame loop running")
	return nil
}

// Step runs a single iteration. It returns false once the loop is no longer
// running; an exit request is only honored at the top of the next Step.
func (l *Loop) Step() bool {
	if l.state != Running {
		return false
	}
	if l.window.ShouldClose() {
		l.state = ShuttingDown
		l.logger.Debug("exit requested", "frames", l.frames)
		return false
	}

	// Timing
	now := l.window.Time()
	dt := l.clock.Tick(now)
	if ms, fps, ok := l.stats.Frame(now); ok {
		yaw, pitch, roll := l.camera.Orientation()
		l.window.SetTitle(Title(ms, fps, yaw, pitch, roll))
	}

	// Input. Mouse callbacks run inside PollEvents and mutate the camera.
	l.window.PollEvents()
	sample := l.input.Sample()
	if sample.Exit {
		l.window.SetShouldClose(true)
	}

	// Camera
	l.camera.Move(sample.Movement, float32(dt))
	l.camera.UpdateBasis()
	l.updateProjection()

	// Uniforms and draw
	program := l.pipeline.Begin()
	applied := uniform.Sync(program, l.static)
	applied += uniform.Sync(program, CameraUniforms(l.camera, now))
	if applied != l.lastApplied {
		l.logger.Debug("active uniform count changed", "applied", applied)
		l.lastApplied = applied
	}
	l.pipeline.Draw()

	l.window.SwapBuffers()
	l.frames++

	return true
}

func (l *Loop) updateProjection() {
	width, height := l.window.FramebufferSize()
	ok := l.camera.UpdateProjection(width, height)

	if !ok && !l.degenerate {
		l.logger.Debug("viewport is empty, keeping last projection", "width", width, "height", height)
	}
	l.degenerate = !ok
}

// Shutdown releases the pipeline and the window and moves to Terminated.
// It is safe to call more than once.
func (l *Loop) Shutdown() {
	if l.state == Terminated {
		return
	}
	l.state = ShuttingDown

	l.pipeline.Release()
	l.window.Close()

	l.state = Terminated
	l.logger.Debug("frame loop terminated", "frames", l.frames)
}

// Run starts the loop if needed, steps until an exit is requested and shuts down.
func (l *Loop) Run() error {
	if l.state == Init {
		if err := l.Start(); err != nil {
			return err
		}
	}
	if l.state != Running {
		return fmt.Errorf("cannot run frame loop in state %s", l.state)
	}

	for l.Step() {
	}

	l.Shutdown()
	return nil
}
