// Package uniform pushes named, typed values into a shader program.
//
// Lookups that miss (a name the program never declared, or one the compiler
// optimized out) are skipped without error; the push is best effort.
package uniform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Missing is the location a Program reports for an unknown name.
const Missing int32 = -1

// Program is the capability set needed to push uniforms.
type Program interface {
	UniformLocation(name string) int32

	SetFloatAt(location int32, value float32)
	SetIntAt(location int32, value int32)
	SetVec2At(location int32, value mgl32.Vec2)
	SetVec3At(location int32, value mgl32.Vec3)
	SetFloatsAt(location int32, values []float32)
	SetMat4At(location int32, value mgl32.Mat4)
}

// Value is a typed uniform value. apply reports whether anything was pushed.
type Value interface {
	apply(p Program, location int32) bool
}

type (
	// Float is a GLSL float
	Float float32
	// Int is a GLSL int, also used for sampler units
	Int int32
	// Vec2 is a GLSL vec2
	Vec2 mgl32.Vec2
	// Vec3 is a GLSL vec3
	Vec3 mgl32.Vec3
	// Floats is a GLSL float array
	Floats []float32
	// Mat4 is a GLSL mat4, column-major
	Mat4 mgl32.Mat4
)

func (v Float) apply(p Program, loc int32) bool {
	p.SetFloatAt(loc, float32(v))
	return true
}

func (v Int) apply(p Program, loc int32) bool {
	p.SetIntAt(loc, int32(v))
	return true
}

func (v Vec2) apply(p Program, loc int32) bool {
	p.SetVec2At(loc, mgl32.Vec2(v))
	return true
}

func (v Vec3) apply(p Program, loc int32) bool {
	p.SetVec3At(loc, mgl32.Vec3(v))
	return true
}

func (v Mat4) apply(p Program, loc int32) bool {
	p.SetMat4At(loc, mgl32.Mat4(v))
	return true
}

// an empty array has nothing to upload
func (v Floats) apply(p Program, loc int32) bool {
	if len(v) == 0 {
		return false
	}
	p.SetFloatsAt(loc, v)
	return true
}

// Uniform pairs a uniform name with the value to push.
type Uniform struct {
	Name  string
	Value Value
}

// Set pushes one value and reports whether it reached the program: false
// when the name is unknown or the value is empty.
func Set(p Program, name string, value Value) bool {
	loc := p.UniformLocation(name)
	if loc < 0 {
		return false
	}
	return value.apply(p, loc)
}

// Sync pushes every uniform in order and returns how many were applied.
func Sync(p Program, uniforms []Uniform) int {
	applied := 0
	for _, u := range uniforms {
		if u.Value == nil {
			continue
		}
		if Set(p, u.Name, u.Value) {
			applied++
		}
	}
	return applied
}
