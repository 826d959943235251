package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Key bindings
const (
	KeyForward  = glfw.KeyW
	KeyBackward = glfw.KeyS
	KeyLeft     = glfw.KeyA
	KeyRight    = glfw.KeyD
	KeyUp       = glfw.KeySpace
	KeyDown     = glfw.KeyLeftShift
	KeyRun      = glfw.KeyLeftControl
	KeyExit     = glfw.KeyEscape
	KeyCapture  = glfw.KeyC
	KeyReseed   = glfw.KeyR
)

// Press is the key state polled and matched in callbacks
const Press = glfw.Press

// Lattice texture binding
const (
	LatticeTextureUnit = 0
)

// ClearColor is what shows before the first draw and around a failed shader
var ClearColor = mgl32.Vec4{0.05, 0.05, 0.1, 1.0}
