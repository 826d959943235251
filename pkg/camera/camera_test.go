package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= eps
}

// nearVec compares by distance; mgl32's ApproxEqualThreshold is relative and
// rejects trig residue against an exact zero component.
func nearVec(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() <= eps
}

func TestPitchStaysClamped(t *testing.T) {
	c := NewCamera(DefaultOptions())
	rng := rand.New(rand.NewSource(7))

	c.HandleMouseMovement(0, 0)
	x, y := 0.0, 0.0
	for i := 0; i < 5000; i++ {
		x += rng.Float64()*4000 - 2000
		y += rng.Float64()*4000 - 2000
		c.HandleMouseMovement(x, y)

		_, pitch, _ := c.Orientation()
		if pitch < MinPitch || pitch > MaxPitch {
			t.Fatalf("step %d: pitch %v outside [%v, %v]", i, pitch, MinPitch, MaxPitch)
		}
	}
}

func TestPitchClampReachesBoundary(t *testing.T) {
	c := NewCamera(DefaultOptions())

	c.ApplyMouseDelta(0, -1e6)
	if _, pitch, _ := c.Orientation(); pitch != MaxPitch {
		t.Errorf("pointer far up: pitch = %v, want %v", pitch, MaxPitch)
	}

	c.ApplyMouseDelta(0, 1e6)
	if _, pitch, _ := c.Orientation(); pitch != MinPitch {
		t.Errorf("pointer far down: pitch = %v, want %v", pitch, MinPitch)
	}
}

func TestFirstMouseSampleIsAnchor(t *testing.T) {
	opts := DefaultOptions()
	c := NewCamera(opts)
	yaw0, pitch0, _ := c.Orientation()

	c.HandleMouseMovement(400, 300)
	yaw, pitch, _ := c.Orientation()
	if yaw != yaw0 || pitch != pitch0 {
		t.Fatalf("first sample changed orientation: (%v, %v) -> (%v, %v)", yaw0, pitch0, yaw, pitch)
	}

	c.HandleMouseMovement(410, 280)
	yaw, pitch, _ = c.Orientation()
	if !near(yaw-yaw0, 10*opts.Sensitivity) {
		t.Errorf("yaw delta = %v, want %v", yaw-yaw0, 10*opts.Sensitivity)
	}
	// pointer moved up by 20 pixels, pitch rises
	if !near(pitch-pitch0, 20*opts.Sensitivity) {
		t.Errorf("pitch delta = %v, want %v", pitch-pitch0, 20*opts.Sensitivity)
	}
}

func TestResetMouseAnchor(t *testing.T) {
	c := NewCamera(DefaultOptions())
	c.HandleMouseMovement(0, 0)
	c.HandleMouseMovement(5, 5)
	yaw0, pitch0, _ := c.Orientation()

	c.ResetMouseAnchor()
	c.HandleMouseMovement(5000, -5000)

	yaw, pitch, _ := c.Orientation()
	if yaw != yaw0 || pitch != pitch0 {
		t.Errorf("sample after reset moved the camera: (%v, %v) -> (%v, %v)", yaw0, pitch0, yaw, pitch)
	}
}

func TestDirectionFromAngles(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float32
		want       mgl32.Vec3
	}{
		{"yaw 0", 0, 0, mgl32.Vec3{1, 0, 0}},
		{"yaw 90", 90, 0, mgl32.Vec3{0, 0, 1}},
		{"yaw 180", 180, 0, mgl32.Vec3{-1, 0, 0}},
		{"yaw wraps", 450, 0, mgl32.Vec3{0, 0, 1}},
		{"pitch 30", 0, 30, mgl32.Vec3{float32(math.Sqrt(3) / 2), 0.5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(DefaultOptions())
			c.SetRotation(tt.yaw, tt.pitch)
			if got := c.Direction(); !nearVec(got, tt.want) {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
			if l := c.Direction().Len(); !near(l, 1) {
				t.Errorf("|direction| = %v, want 1", l)
			}
		})
	}
}

func TestBasisIsOrthonormal(t *testing.T) {
	c := NewCamera(DefaultOptions())
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		yaw := rng.Float32()*1440 - 720
		pitch := rng.Float32()*(MaxPitch-MinPitch) + MinPitch
		c.SetRotation(yaw, pitch)
		c.UpdateBasis()

		f, r, u := c.FrontVector(), c.RightVector(), c.UpVector()
		for name, v := range map[string]mgl32.Vec3{"front": f, "right": r, "up": u} {
			if !near(v.Len(), 1) {
				t.Fatalf("yaw=%v pitch=%v: |%s| = %v", yaw, pitch, name, v.Len())
			}
		}
		if d := f.Dot(r); !near(d, 0) {
			t.Fatalf("yaw=%v pitch=%v: front·right = %v", yaw, pitch, d)
		}
		if d := f.Dot(u); !near(d, 0) {
			t.Fatalf("yaw=%v pitch=%v: front·up = %v", yaw, pitch, d)
		}
		if d := r.Dot(u); !near(d, 0) {
			t.Fatalf("yaw=%v pitch=%v: right·up = %v", yaw, pitch, d)
		}
	}
}

func TestBasisAtPitchLimit(t *testing.T) {
	c := NewCamera(DefaultOptions())
	c.SetRotation(33, 500)
	c.UpdateBasis()

	for _, v := range []mgl32.Vec3{c.FrontVector(), c.RightVector(), c.UpVector()} {
		if math.IsNaN(float64(v.Len())) || !near(v.Len(), 1) {
			t.Fatalf("degenerate basis at clamped pitch: %v", v)
		}
	}
}

func TestViewMatchesLookAt(t *testing.T) {
	c := NewCamera(DefaultOptions())
	c.SetPosition(mgl32.Vec3{1.5, -2, 7})
	c.SetRotation(-37, 12)
	c.UpdateBasis()

	pos, front, up := c.Position(), c.FrontVector(), c.UpVector()
	want := mgl32.LookAtV(pos, pos.Add(front), up)
	if got := c.ViewMatrix(); got != want {
		t.Errorf("ViewMatrix() = %v, want %v", got, want)
	}

	// rebuilding without any input change reproduces the same bits
	c.UpdateBasis()
	if got := c.ViewMatrix(); got != want {
		t.Errorf("second UpdateBasis changed the view: %v", got)
	}
}

func TestProjectionClosedForm(t *testing.T) {
	opts := DefaultOptions()
	opts.FOV = 70
	opts.Near = 0.01
	opts.Far = 100
	c := NewCamera(opts)

	if !c.UpdateProjection(800, 600) {
		t.Fatal("UpdateProjection(800, 600) = false")
	}

	f := 1 / math.Tan(70*math.Pi/180/2)
	aspect := 800.0 / 600.0
	n, fr := 0.01, 100.0

	p := c.ProjectionMatrix()
	checks := []struct {
		row, col int
		want     float64
	}{
		{0, 0, f / aspect},
		{1, 1, f},
		{2, 2, (fr + n) / (n - fr)},
		{2, 3, 2 * fr * n / (n - fr)},
		{3, 2, -1},
		{3, 3, 0},
		{0, 1, 0},
		{1, 0, 0},
	}
	for _, ck := range checks {
		got := float64(p.At(ck.row, ck.col))
		if math.Abs(got-ck.want) > 1e-4*math.Max(1, math.Abs(ck.want)) {
			t.Errorf("P[%d][%d] = %v, want %v", ck.row, ck.col, got, ck.want)
		}
	}

	if r := c.Resolution(); r != (mgl32.Vec2{800, 600}) {
		t.Errorf("Resolution() = %v, want [800 600]", r)
	}
}

func TestProjectionFollowsResize(t *testing.T) {
	c := NewCamera(DefaultOptions())
	c.UpdateProjection(800, 600)
	before := c.ProjectionMatrix()

	c.UpdateProjection(1920, 600)
	after := c.ProjectionMatrix()
	if before == after {
		t.Fatal("projection unchanged after resize")
	}
	if got, want := after.At(1, 1)/after.At(0, 0), float32(1920.0/600.0); !near(got, want) {
		t.Errorf("aspect from matrix = %v, want %v", got, want)
	}
}

func TestProjectionKeepsLastOnDegenerateViewport(t *testing.T) {
	c := NewCamera(DefaultOptions())
	c.UpdateProjection(800, 600)
	want := c.ProjectionMatrix()

	for _, size := range [][2]int{{800, 0}, {0, 600}, {0, 0}, {-1, 10}} {
		if c.UpdateProjection(size[0], size[1]) {
			t.Errorf("UpdateProjection(%d, %d) = true, want false", size[0], size[1])
		}
		if got := c.ProjectionMatrix(); got != want {
			t.Errorf("UpdateProjection(%d, %d) replaced the projection", size[0], size[1])
		}
		if r := c.Resolution(); r != (mgl32.Vec2{800, 600}) {
			t.Errorf("UpdateProjection(%d, %d) changed resolution to %v", size[0], size[1], r)
		}
	}
}

func TestLookAt(t *testing.T) {
	c := NewCamera(DefaultOptions())
	c.SetPosition(mgl32.Vec3{0, 0, 0})
	c.LookAt(mgl32.Vec3{0, 0, -10})

	if got := c.Direction(); !nearVec(got, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Direction() = %v, want [0 0 -1]", got)
	}

	// looking at its own position is a no-op
	before := c.Direction()
	c.LookAt(c.Position())
	if c.Direction() != before {
		t.Errorf("LookAt(position) changed direction to %v", c.Direction())
	}
}

func TestMouseScrollClampsFOV(t *testing.T) {
	c := NewCamera(DefaultOptions())

	c.HandleMouseScroll(10)
	if got := c.FOV(); got != DefaultFOV-10 {
		t.Errorf("FOV after zoom in = %v, want %v", got, DefaultFOV-10)
	}

	c.HandleMouseScroll(1000)
	if got := c.FOV(); got != MinFOV {
		t.Errorf("FOV after large zoom in = %v, want %v", got, MinFOV)
	}

	c.HandleMouseScroll(-1000)
	if got := c.FOV(); got != DefaultFOV {
		t.Errorf("FOV after large zoom out = %v, want %v", got, DefaultFOV)
	}
}

func TestRollIsInert(t *testing.T) {
	c := NewCamera(DefaultOptions())
	c.SetRotation(10, 20)
	c.UpdateBasis()

	_, _, roll := c.Orientation()
	if roll != 0 {
		t.Errorf("roll = %v, want 0", roll)
	}
	if u := c.UpVector(); u.Y() <= 0 {
		t.Errorf("up vector %v tilted away from world up", u)
	}
}
