package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-lattice/pkg/camera"
	"github.com/leterax/go-lattice/pkg/frame"
)

// keySource reports the state of a key, as polled after events are processed
type keySource interface {
	GetKeyState(key glfw.Key) glfw.Action
}

// keyboardInput samples the held keys once per frame
type keyboardInput struct {
	keys keySource
}

func (in *keyboardInput) held(key glfw.Key) bool {
	return in.keys.GetKeyState(key) == Press
}

// Sample implements frame.Input
func (in *keyboardInput) Sample() frame.Sample {
	return frame.Sample{
		Movement: camera.MovementInput{
			Forward:  in.held(KeyForward),
			Backward: in.held(KeyBackward),
			Left:     in.held(KeyLeft),
			Right:    in.held(KeyRight),
			Up:       in.held(KeyUp),
			Down:     in.held(KeyDown),
			Run:      in.held(KeyRun),
		},
		Exit: in.held(KeyExit),
	}
}
