package camera

// Camera constants
const (
	// Movement speeds in world units per second
	DefaultWalkSpeed = 1.0
	DefaultRunSpeed  = 2.0

	// Degrees per pixel of pointer travel
	DefaultSensitivity = 0.05

	// Default orientation
	DefaultYaw   = 90.0 // Facing +Z, towards the origin from the default position
	DefaultPitch = 0.0

	// Field of view
	DefaultFOV = 70.0
	MinFOV     = 1.0

	// Clipping planes
	DefaultNear = 0.01
	DefaultFar  = 100.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)
