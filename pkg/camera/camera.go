// Package camera implements the first-person camera that drives the lattice
// viewer: mouse-driven orientation, the per-frame orthonormal basis, the view
// and projection transforms and keyboard movement.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// worldUp is the fixed up reference the basis is derived from.
var worldUp = mgl32.Vec3{0, 1, 0}

// Options configures a new Camera.
type Options struct {
	Position    mgl32.Vec3
	Yaw         float32 // degrees
	Pitch       float32 // degrees
	FOV         float32 // vertical, degrees
	Near        float32
	Far         float32
	Sensitivity float32 // degrees per pixel
	WalkSpeed   float32
	RunSpeed    float32
}

// DefaultOptions returns the options the viewer starts with.
func DefaultOptions() Options {
	return Options{
		Position:    mgl32.Vec3{0, 0, -3},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		FOV:         DefaultFOV,
		Near:        DefaultNear,
		Far:         DefaultFar,
		Sensitivity: DefaultSensitivity,
		WalkSpeed:   DefaultWalkSpeed,
		RunSpeed:    DefaultRunSpeed,
	}
}

// Camera implements a 3D first-person camera.
//
// Orientation changes as mouse samples arrive, but front/right/up and the
// view/projection matrices only change when UpdateBasis and UpdateProjection
// are called, once per frame.
type Camera struct {
	// Position and orientation
	position  mgl32.Vec3
	direction mgl32.Vec3
	front     mgl32.Vec3
	right     mgl32.Vec3
	up        mgl32.Vec3

	// Euler angles in degrees. Roll is carried for display only.
	yaw   float32
	pitch float32
	roll  float32

	// Camera options
	fov         float32
	maxFOV      float32
	near        float32
	far         float32
	sensitivity float32
	walkSpeed   float32
	runSpeed    float32
	speed       float32

	// Mouse state
	lastX      float64
	lastY      float64
	firstMouse bool

	// Transforms
	view       mgl32.Mat4
	projection mgl32.Mat4
	resolution mgl32.Vec2
}

// NewCamera creates a camera from opts. The direction and basis are valid
// immediately; the projection stays identity until the first UpdateProjection.
func NewCamera(opts Options) *Camera {
	c := &Camera{
		position:    opts.Position,
		fov:         opts.FOV,
		maxFOV:      opts.FOV,
		near:        opts.Near,
		far:         opts.Far,
		sensitivity: opts.Sensitivity,
		walkSpeed:   opts.WalkSpeed,
		runSpeed:    opts.RunSpeed,
		speed:       opts.WalkSpeed,
		firstMouse:  true,
		view:        mgl32.Ident4(),
		projection:  mgl32.Ident4(),
	}

	c.SetRotation(opts.Yaw, opts.Pitch)
	c.UpdateBasis()

	return c
}

// updateDirection recalculates the direction vector from the Euler angles
func (c *Camera) updateDirection() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	c.direction = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
}

func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < MinPitch {
		return MinPitch
	}
	return pitch
}

// UpdateBasis re-derives front, right, up and the view matrix from the
// current direction and position.
func (c *Camera) UpdateBasis() {
	c.right = worldUp.Cross(c.direction).Normalize()
	c.up = c.direction.Cross(c.right)
	c.front = c.direction.Normalize()

	c.view = mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// UpdateProjection rebuilds the projection matrix for a viewport of the given
// size in pixels. A degenerate viewport (e.g. a minimized window) leaves the
// previous projection and resolution in place and reports false.
func (c *Camera) UpdateProjection(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	c.resolution = mgl32.Vec2{float32(width), float32(height)}
	aspect := float32(width) / float32(height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.near, c.far)

	return true
}

// HandleMouseMovement updates the orientation from an absolute pointer
// position. The first sample after construction or ResetMouseAnchor only
// records the anchor.
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := float32(xpos - c.lastX)
	yoffset := float32(ypos - c.lastY)

	c.lastX = xpos
	c.lastY = ypos

	c.ApplyMouseDelta(xoffset, yoffset)
}

// ApplyMouseDelta turns a pointer delta in pixels into a yaw/pitch change.
// Moving the pointer up (negative dy) raises the pitch.
func (c *Camera) ApplyMouseDelta(dx, dy float32) {
	c.yaw += dx * c.sensitivity
	c.pitch = clampPitch(c.pitch - dy*c.sensitivity)

	c.updateDirection()
}

// ResetMouseAnchor makes the next mouse sample an anchor again. Call it
// whenever the cursor is recaptured so the jump from the old position is
// ignored.
func (c *Camera) ResetMouseAnchor() {
	c.firstMouse = true
}

// SetRotation sets the camera rotation angles in degrees
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampPitch(pitch)

	c.updateDirection()
}

// LookAt points the camera at target. The basis follows on the next UpdateBasis.
func (c *Camera) LookAt(target mgl32.Vec3) {
	delta := target.Sub(c.position)
	if delta.Len() == 0 {
		return
	}
	direction := delta.Normalize()

	yaw := mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	pitch := mgl32.RadToDeg(float32(math.Asin(float64(direction.Y()))))

	c.SetRotation(yaw, pitch)
}

// HandleMouseScroll zooms by narrowing or widening the field of view, never
// beyond the configured one.
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.fov -= float32(yoffset)

	if c.fov < MinFOV {
		c.fov = MinFOV
	}
	if c.fov > c.maxFOV {
		c.fov = c.maxFOV
	}
}

// ViewMatrix returns the view matrix from the last UpdateBasis
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.view
}

// ProjectionMatrix returns the projection matrix from the last successful UpdateProjection
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns yaw, pitch and roll in degrees
func (c *Camera) Orientation() (yaw, pitch, roll float32) {
	return c.yaw, c.pitch, c.roll
}

// Direction returns the unit look direction derived from yaw and pitch
func (c *Camera) Direction() mgl32.Vec3 {
	return c.direction
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// RightVector returns the camera's right basis vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}

// Resolution returns the viewport size used by the last projection
func (c *Camera) Resolution() mgl32.Vec2 {
	return c.resolution
}

// FOV returns the current vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

// ClipPlanes returns the near and far clipping distances
func (c *Camera) ClipPlanes() (near, far float32) {
	return c.near, c.far
}

// Speed returns the movement speed chosen by the last Move
func (c *Camera) Speed() float32 {
	return c.speed
}
