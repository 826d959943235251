package render

import (
	"github.com/leterax/go-lattice/internal/openglhelper"
	"github.com/leterax/go-lattice/pkg/frame"
	"github.com/leterax/go-lattice/pkg/uniform"
)

var (
	_ frame.Pipeline = (*latticePipeline)(nil)
	_ frame.Window   = (*openglhelper.Window)(nil)
	_ frame.Input    = (*keyboardInput)(nil)
)

// latticePipeline draws the raymarched lattice on a full-screen quad
type latticePipeline struct {
	window  *openglhelper.Window
	shader  *openglhelper.Shader
	program *uniform.LocationCache
	quad    *openglhelper.Quad
	texture *openglhelper.LatticeTexture
}

// Begin clears the target, binds the program and the lattice texture
func (p *latticePipeline) Begin() uniform.Program {
	p.window.Clear(ClearColor)
	p.shader.Use()
	p.texture.Bind(LatticeTextureUnit)
	return p.program
}

// Draw issues the quad draw call
func (p *latticePipeline) Draw() {
	p.quad.Draw()
}

// Release deletes the GPU objects. The window is closed by the frame loop.
func (p *latticePipeline) Release() {
	p.quad.Delete()
	p.texture.Delete()
	p.shader.Delete()
	p.program.Invalidate()
}
