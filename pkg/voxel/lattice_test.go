package voxel

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewLatticeRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][3]int{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}} {
		if _, err := NewLattice(dims[0], dims[1], dims[2]); err == nil {
			t.Errorf("NewLattice(%v) returned nil error", dims)
		}
	}
}

func TestNewLatticeIsEmpty(t *testing.T) {
	l, err := NewLattice(4, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Cells) != 24 {
		t.Fatalf("len(Cells) = %d, want 24", len(l.Cells))
	}
	if n := l.SolidCount(); n != 0 {
		t.Errorf("SolidCount() = %d, want 0", n)
	}
}

func TestRandomLattice(t *testing.T) {
	a, err := NewRandomLattice(10, 5, 10, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewRandomLattice(10, 5, 10, rand.New(rand.NewSource(1)))

	if len(a.Cells) != 500 {
		t.Fatalf("len(Cells) = %d, want 500", len(a.Cells))
	}
	for i := range a.Cells {
		if a.Cells[i] > Solid {
			t.Fatalf("cell %d = %d, want 0 or 1", i, a.Cells[i])
		}
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("same seed produced different cell %d", i)
		}
	}

	// half of 500 give or take
	if n := a.SolidCount(); n < 150 || n > 350 {
		t.Errorf("SolidCount() = %d, expected roughly half", n)
	}
}

func TestRandomizeRefills(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l, _ := NewRandomLattice(10, 5, 10, rng)
	before := append([]uint8(nil), l.Cells...)

	l.Randomize(rng)

	changed := 0
	for i := range before {
		if before[i] != l.Cells[i] {
			changed++
		}
	}
	if changed == 0 {
		t.Error("Randomize() left every cell unchanged")
	}
}

func TestDimensionsAndRelease(t *testing.T) {
	l, _ := NewLattice(10, 5, 10)
	if got := l.Dimensions(); got != (mgl32.Vec3{10, 5, 10}) {
		t.Errorf("Dimensions() = %v, want [10 5 10]", got)
	}

	l.Release()
	if l.Cells != nil {
		t.Error("Release() kept cell data")
	}
}
