package openglhelper

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	quadFloatsPerVertex = 5
	quadVertexCount     = 6
)

// quadVertices covers clip space with two triangles: position (3), uv (2)
var quadVertices = []float32{
	-1.0, -1.0, 0.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 1.0, 0.0,
	1.0, 1.0, 0.0, 0.0, 0.0,

	1.0, 1.0, 0.0, 0.0, 0.0,
	1.0, -1.0, 0.0, 0.0, 1.0,
	-1.0, -1.0, 0.0, 1.0, 1.0,
}

// Quad is the full-screen geometry every fragment of the raymarch is shaded on
type Quad struct {
	vao *VertexArrayObject
	vbo *BufferObject
}

// NewQuad uploads the full-screen quad
func NewQuad() *Quad {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(quadVertices)

	const stride = quadFloatsPerVertex * 4
	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	// Texture coordinates attribute (2 floats)
	vao.SetVertexAttribPointer(1, 2, gl.FLOAT, false, stride, 3*4)

	vbo.Unbind()
	vao.Unbind()

	return &Quad{vao: vao, vbo: vbo}
}

// Draw renders the quad with whatever program is bound
func (q *Quad) Draw() {
	q.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, quadVertexCount)
	q.vao.Unbind()
}

// Delete releases the vertex array and buffer
func (q *Quad) Delete() {
	q.vao.Delete()
	q.vbo.Delete()
}
