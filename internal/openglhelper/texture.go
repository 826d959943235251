package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// LatticeTexture is a single-channel 3D texture holding one byte per cell
type LatticeTexture struct {
	ID                   uint32
	Width, Height, Depth int32
}

// NewLatticeTexture uploads cells laid out x fastest, then y, then z.
// Sampling is nearest so cell edges stay sharp.
func NewLatticeTexture(width, height, depth int, cells []uint8) (*LatticeTexture, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("invalid texture dimensions %dx%dx%d", width, height, depth)
	}
	if len(cells) != width*height*depth {
		return nil, fmt.Errorf("texture data has %d cells, want %d", len(cells), width*height*depth)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_3D, id)

	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_3D, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	// rows of a single byte are not 4-aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage3D(gl.TEXTURE_3D, 0, gl.R8,
		int32(width), int32(height), int32(depth),
		0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(cells))

	gl.BindTexture(gl.TEXTURE_3D, 0)

	return &LatticeTexture{
		ID:     id,
		Width:  int32(width),
		Height: int32(height),
		Depth:  int32(depth),
	}, nil
}

// Update replaces the texture contents; cells must match the texture size
func (t *LatticeTexture) Update(cells []uint8) error {
	if len(cells) != int(t.Width*t.Height*t.Depth) {
		return fmt.Errorf("texture data has %d cells, want %d", len(cells), t.Width*t.Height*t.Depth)
	}

	gl.BindTexture(gl.TEXTURE_3D, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage3D(gl.TEXTURE_3D, 0, 0, 0, 0, t.Width, t.Height, t.Depth, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(cells))
	return nil
}

// Bind binds the texture to the given texture unit
func (t *LatticeTexture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_3D, t.ID)
}

// Delete releases the texture
func (t *LatticeTexture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
