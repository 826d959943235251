package render

import (
	"github.com/leterax/go-lattice/pkg/camera"
)

// cursorCapture grabs or releases the pointer
type cursorCapture interface {
	IsMouseCaptured() bool
	SetMouseCaptured(captured bool)
}

// mouseLook feeds cursor positions to the camera while the pointer is captured
type mouseLook struct {
	cursor cursorCapture
	camera *camera.Camera
}

// capture sets the capture state and re-arms the anchor so the next sample
// does not jump
func (m *mouseLook) capture(captured bool) {
	m.cursor.SetMouseCaptured(captured)
	m.camera.ResetMouseAnchor()
}

func (m *mouseLook) toggle() {
	m.capture(!m.cursor.IsMouseCaptured())
}

func (m *mouseLook) move(xpos, ypos float64) {
	if m.cursor.IsMouseCaptured() {
		m.camera.HandleMouseMovement(xpos, ypos)
	}
}

// the cursor may have moved anywhere while unfocused
func (m *mouseLook) focus() {
	m.camera.ResetMouseAnchor()
}
