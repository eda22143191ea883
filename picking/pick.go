package picking

import (
	"math"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/vmath"
)

// Result is the outcome of a successful pick
type Result struct {
	Body     *components.Body
	Screen   Point   // Pointer position the pick was made at
	Distance float64 // Distance along the ray to the hit
}

// Pick casts a ray from the camera through p and returns the nearest body
// whose sphere it hits at or beyond the near plane
// A body smaller than a cell is still drawn as one glyph, so the cell holding
// its projected center counts as a hit too
// Equal distances keep the body listed first; the function has no side effects
func Pick(p Point, cam *camera.Camera, vp Viewport, bodies []*components.Body) (Result, bool) {
	if !vp.Contains(p) {
		return Result{}, false
	}

	ray := cam.RayFromNDC(vp.ToNDC(p))

	var best Result
	found := false
	for _, b := range bodies {
		t, ok := ray.IntersectSphere(b.Position, b.Radius)
		if !ok {
			t, ok = cellHit(p, cam, vp, b)
		}
		if !ok || t < cam.Near {
			continue
		}
		if !found || t < best.Distance {
			best = Result{Body: b, Screen: p, Distance: t}
			found = true
		}
	}
	return best, found
}

// cellHit reports whether p lies in the cell b's center projects into
// The distance is to the near side of the sphere, comparable with ray hits
func cellHit(p Point, cam *camera.Camera, vp Viewport, b *components.Body) (float64, bool) {
	x, y, _, ok := cam.Project(b.Position)
	if !ok {
		return 0, false
	}
	c := vp.FromNDC(x, y)
	if math.Floor(c.X) != math.Floor(p.X) || math.Floor(c.Y) != math.Floor(p.Y) {
		return 0, false
	}
	return vmath.V3Dist(cam.Position(), b.Position) - b.Radius, true
}
