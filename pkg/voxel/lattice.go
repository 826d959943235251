// Package voxel holds the occupancy lattice the fragment shader raymarches.
package voxel

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Cell values
const (
	Empty uint8 = 0
	Solid uint8 = 1
)

// Lattice is a dense 3D grid of binary occupancy values
type Lattice struct {
	// Size of the lattice in each dimension
	Width, Height, Depth int
	// Occupancy data, one byte per cell. X varies fastest, then Y, then Z,
	// which is the row order glTexImage3D expects.
	Cells []uint8
}

// NewLattice creates an empty lattice of the given dimensions
func NewLattice(width, height, depth int) (*Lattice, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("invalid lattice dimensions %dx%dx%d", width, height, depth)
	}

	return &Lattice{
		Width:  width,
		Height: height,
		Depth:  depth,
		Cells:  make([]uint8, width*height*depth),
	}, nil
}

// NewRandomLattice creates a lattice filled by Randomize
func NewRandomLattice(width, height, depth int, rng *rand.Rand) (*Lattice, error) {
	l, err := NewLattice(width, height, depth)
	if err != nil {
		return nil, err
	}

	l.Randomize(rng)
	return l, nil
}

// Randomize makes every cell independently solid with probability one half
func (l *Lattice) Randomize(rng *rand.Rand) {
	for i := range l.Cells {
		l.Cells[i] = uint8(rng.Intn(2))
	}
}

// SolidCount returns the number of occupied cells
func (l *Lattice) SolidCount() int {
	n := 0
	for _, c := range l.Cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Dimensions returns the lattice size as a vector, as the shader sees it
func (l *Lattice) Dimensions() mgl32.Vec3 {
	return mgl32.Vec3{float32(l.Width), float32(l.Height), float32(l.Depth)}
}

// Release drops the cell data. The lattice must not be used afterwards.
func (l *Lattice) Release() {
	l.Cells = nil
}
