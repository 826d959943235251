package render

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-lattice/pkg/camera"
	"github.com/leterax/go-lattice/pkg/frame"
)

type fakeKeys map[glfw.Key]bool

func (k fakeKeys) GetKeyState(key glfw.Key) glfw.Action {
	if k[key] {
		return glfw.Press
	}
	return glfw.Release
}

func TestKeyboardInputSample(t *testing.T) {
	tests := []struct {
		name string
		held []glfw.Key
		want frame.Sample
	}{
		{"nothing held", nil, frame.Sample{}},
		{"W forward", []glfw.Key{glfw.KeyW}, frame.Sample{Movement: camera.MovementInput{Forward: true}}},
		{"S backward", []glfw.Key{glfw.KeyS}, frame.Sample{Movement: camera.MovementInput{Backward: true}}},
		{"A left", []glfw.Key{glfw.KeyA}, frame.Sample{Movement: camera.MovementInput{Left: true}}},
		{"D right", []glfw.Key{glfw.KeyD}, frame.Sample{Movement: camera.MovementInput{Right: true}}},
		{"space up", []glfw.Key{glfw.KeySpace}, frame.Sample{Movement: camera.MovementInput{Up: true}}},
		{"left shift down", []glfw.Key{glfw.KeyLeftShift}, frame.Sample{Movement: camera.MovementInput{Down: true}}},
		{"left control runs", []glfw.Key{glfw.KeyW, glfw.KeyLeftControl}, frame.Sample{Movement: camera.MovementInput{Forward: true, Run: true}}},
		{"escape exits", []glfw.Key{glfw.KeyEscape}, frame.Sample{Exit: true}},
		{"unbound key ignored", []glfw.Key{glfw.KeyQ}, frame.Sample{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := fakeKeys{}
			for _, k := range tt.held {
				keys[k] = true
			}

			in := &keyboardInput{keys: keys}
			if got := in.Sample(); got != tt.want {
				t.Errorf("Sample() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
