package uniform

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// LocationCache wraps a Program and remembers every name lookup, misses
// included. It is only valid while the wrapped program stays linked.
type LocationCache struct {
	program   Program
	locations map[string]int32
	logger    *slog.Logger
}

// Compile-time interface compliance check
var _ Program = (*LocationCache)(nil)

// NewLocationCache wraps p. Each missing name is logged once at debug level.
func NewLocationCache(p Program, logger *slog.Logger) *LocationCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocationCache{
		program:   p,
		locations: make(map[string]int32),
		logger:    logger,
	}
}

// UniformLocation returns the cached location, asking the program only once per name.
func (c *LocationCache) UniformLocation(name string) int32 {
	if loc, ok := c.locations[name]; ok {
		return loc
	}

	loc := c.program.UniformLocation(name)
	if loc < 0 {
		loc = Missing
		c.logger.Debug("uniform not active in program, skipping", "name", name)
	}
	c.locations[name] = loc
	return loc
}

// Invalidate forgets all cached locations, e.g. after relinking.
func (c *LocationCache) Invalidate() {
	clear(c.locations)
}

func (c *LocationCache) SetFloatAt(loc int32, v float32) { c.program.SetFloatAt(loc, v) }
func (c *LocationCache) SetIntAt(loc int32, v int32) { c.program.SetIntAt(loc, v) }
func (c *LocationCache) SetVec2At(loc int32, v mgl32.Vec2) { c.program.SetVec2At(loc, v) }
func (c *LocationCache) SetVec3At(loc int32, v mgl32.Vec3) { c.program.SetVec3At(loc, v) }
func (c *LocationCache) SetFloatsAt(loc int32, v []float32) { c.program.SetFloatsAt(loc, v) }
func (c *LocationCache) SetMat4At(loc int32, v mgl32.Mat4) { c.program.SetMat4At(loc, v) }
