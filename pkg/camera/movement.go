package camera

// MovementInput is the set of movement controls held during one frame.
type MovementInput struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool
	Run      bool
}

// Any reports whether any directional control is held
func (in MovementInput) Any() bool {
	return in.Forward || in.Backward || in.Left || in.Right || in.Up || in.Down
}

// Move translates the camera along its current basis for dt seconds.
// The speed is picked fresh from in.Run on every call.
func (c *Camera) Move(in MovementInput, dt float32) {
	if in.Run {
		c.speed = c.runSpeed
	} else {
		c.speed = c.walkSpeed
	}

	if dt <= 0 || !in.Any() {
		return
	}

	step := c.speed * dt

	// Forward/Backward
	if in.Forward {
		c.position = c.position.Add(c.front.Mul(step))
	}
	if in.Backward {
		c.position = c.position.Sub(c.front.Mul(step))
	}

	// Left/Right, along the screen-right axis
	strafe := c.front.Cross(c.up).Normalize()
	if in.Left {
		c.position = c.position.Sub(strafe.Mul(step))
	}
	if in.Right {
		c.position = c.position.Add(strafe.Mul(step))
	}

	// Up/Down along the camera's up
	if in.Up {
		c.position = c.position.Add(c.up.Mul(step))
	}
	if in.Down {
		c.position = c.position.Sub(c.up.Mul(step))
	}
}
