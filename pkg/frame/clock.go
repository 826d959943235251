package frame

// DefaultMaxDelta caps a single frame's integration step, in seconds.
const DefaultMaxDelta = 0.25

// Clock turns absolute timestamps into per-frame deltas.
type Clock struct {
	maxDelta float64
	last     float64
	started  bool
}

// NewClock creates a clock whose deltas never exceed maxDelta seconds.
// A non-positive maxDelta selects DefaultMaxDelta.
func NewClock(maxDelta float64) *Clock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &Clock{maxDelta: maxDelta}
}

// Tick returns the seconds elapsed since the previous Tick, clamped to
// [0, maxDelta]. The first Tick returns 0.
func (c *Clock) Tick(now float64) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now - c.last
	c.last = now

	if dt < 0 {
		return 0
	}
	if dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// MaxDelta returns the clamp applied by Tick
func (c *Clock) MaxDelta() float64 {
	return c.maxDelta
}
