package camera

import (
	"math"
	"testing"

	"github.com/lixenwraith/orrery/vmath"
)

const eps = 1e-9

func newTestCamera() *Camera {
	return NewCamera(vmath.V3(0, 40, 140), 65, 16.0/9.0, 0.1, 1000)
}

func TestBasisOrthonormal(t *testing.T) {
	cams := []*Camera{
		newTestCamera(),
		NewCamera(vmath.V3(0, 100, 0), 65, 1, 0.1, 1000), // Looking straight down
		NewCamera(vmath.V3(0, 0, 0), 65, 1, 0.1, 1000),   // Degenerate
	}

	for i, c := range cams {
		f, r, u := c.Basis()
		for name, v := range map[string]vmath.Vec3{"forward": f, "right": r, "up": u} {
			if math.Abs(vmath.V3Mag(v)-1) > eps {
				t.Errorf("camera %d: |%s| = %v", i, name, vmath.V3Mag(v))
			}
		}
		if math.Abs(vmath.V3Dot(f, r)) > eps || math.Abs(vmath.V3Dot(f, u)) > eps || math.Abs(vmath.V3Dot(r, u)) > eps {
			t.Errorf("camera %d: basis not orthogonal f=%v r=%v u=%v", i, f, r, u)
		}
	}
}

func TestCenterRayHitsTarget(t *testing.T) {
	c := newTestCamera()
	ray := c.RayFromNDC(0, 0)

	dist := vmath.V3Mag(c.Position())
	got := ray.At(dist)
	if !vmath.V3ApproxEqual(got, c.Target(), 1e-6) {
		t.Errorf("center ray at %v = %v, want target %v", dist, got, c.Target())
	}
}

func TestProjectRoundTrip(t *testing.T) {
	c := newTestCamera()
	points := []vmath.Vec3{
		vmath.V3(0, 0, 0),
		vmath.V3(20, 0, 0),
		vmath.V3(-15, 3, 30),
		vmath.V3(10, 10, -40),
	}

	for _, p := range points {
		x, y, depth, ok := c.Project(p)
		if !ok {
			t.Fatalf("Project(%v) not visible", p)
		}
		ray := c.RayFromNDC(x, y)
		// The ray through the projected NDC must pass through p
		tAlong := vmath.V3Dot(vmath.V3Sub(p, ray.Origin), ray.Dir)
		if !vmath.V3ApproxEqual(ray.At(tAlong), p, 1e-6) {
			t.Errorf("ray through projection of %v misses it (depth %v)", p, depth)
		}
	}
}

func TestProjectBehindCamera(t *testing.T) {
	c := newTestCamera()
	if _, _, _, ok := c.Project(vmath.V3(0, 40, 200)); ok {
		t.Error("point behind the camera reported visible")
	}
	if _, _, _, ok := c.Project(vmath.V3(0, 40, -5000)); ok {
		t.Error("point beyond far plane reported visible")
	}
}

func TestProjectedRadius(t *testing.T) {
	c := NewCamera(vmath.V3(0, 0, 10), 90, 1, 0.1, 1000)
	// tan(45°) = 1, radius 2 at depth 10 covers 0.2 NDC
	if got := c.ProjectedRadius(2, 10); math.Abs(got-0.2) > eps {
		t.Errorf("ProjectedRadius = %v, want 0.2", got)
	}
	if got := c.ProjectedRadius(2, 0); got != 0 {
		t.Errorf("ProjectedRadius at depth 0 = %v", got)
	}
}
