package openglhelper

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-lattice/pkg/uniform"
)

// ShaderError carries the driver's info log for a failed compile or link
type ShaderError struct {
	Stage string
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

// Shader represents an OpenGL shader program
type Shader struct {
	ID uint32
}

var _ uniform.Program = (*Shader)(nil)

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex shader compilation"
	case gl.FRAGMENT_SHADER:
		return "fragment shader compilation"
	default:
		return "shader compilation"
	}
}

// compileShader compiles a single shader
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, &ShaderError{Stage: stageName(shaderType), Log: strings.TrimRight(log, "\x00")}
	}

	return shader, nil
}

// NewShader creates a new shader program from vertex and fragment shader source
func NewShader(vertexShaderSource, fragmentShaderSource string) (*Shader, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}

	return &Shader{ID: program}, nil
}

// newProgram creates a shader program from vertex and fragment shader sources
func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, &ShaderError{Stage: "program link", Log: strings.TrimRight(log, "\x00")}
	}

	return program, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the shader program
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

// UniformLocation looks up an active uniform, -1 if the linker dropped it
func (s *Shader) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
}

// SetIntAt sets an integer uniform
func (s *Shader) SetIntAt(loc int32, value int32) {
	gl.Uniform1i(loc, value)
}

// SetFloatAt sets a float uniform
func (s *Shader) SetFloatAt(loc int32, value float32) {
	gl.Uniform1f(loc, value)
}

// SetVec2At sets a vec2 uniform
func (s *Shader) SetVec2At(loc int32, vec mgl32.Vec2) {
	gl.Uniform2f(loc, vec[0], vec[1])
}

// SetVec3At sets a vec3 uniform
func (s *Shader) SetVec3At(loc int32, vec mgl32.Vec3) {
	gl.Uniform3f(loc, vec[0], vec[1], vec[2])
}

// SetFloatsAt sets a float array uniform; an empty slice is ignored
func (s *Shader) SetFloatsAt(loc int32, values []float32) {
	if len(values) == 0 {
		return
	}
	gl.Uniform1fv(loc, int32(len(values)), &values[0])
}

// SetMat4At sets a mat4 uniform
func (s *Shader) SetMat4At(loc int32, mat mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &mat[0])
}

// LoadShaderFromFiles loads a shader program from vertex and fragment shader files
func LoadShaderFromFiles(vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment shader file: %w", err)
	}

	shader, err := NewShader(string(vertexSource), string(fragmentSource))
	if err != nil {
		return nil, fmt.Errorf("failed to build shader from %s and %s: %w", vertexPath, fragmentPath, err)
	}
	return shader, nil
}
