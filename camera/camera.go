package camera

import (
	"math"

	"github.com/lixenwraith/orrery/vmath"
)

// worldUp is the +Y axis, orbits lie in the XZ plane
var worldUp = vmath.V3(0, 1, 0)

// Transform is the camera capability shared by the flight controller and the
// orbit controls: whoever owns the camera this frame writes through it
type Transform interface {
	Position() vmath.Vec3
	SetPosition(p vmath.Vec3)
	Target() vmath.Vec3
	LookAt(p vmath.Vec3)
}

// Camera is a perspective camera looking at a point
type Camera struct {
	position vmath.Vec3
	target   vmath.Vec3

	FOV    float64 // Vertical field of view in degrees
	Aspect float64 // Viewport width / height in square units
	Near   float64
	Far    float64
}

// NewCamera creates a camera at position looking at the origin
func NewCamera(position vmath.Vec3, fov, aspect, near, far float64) *Camera {
	return &Camera{
		position: position,
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

func (c *Camera) Position() vmath.Vec3     { return c.position }
func (c *Camera) SetPosition(p vmath.Vec3) { c.position = p }
func (c *Camera) Target() vmath.Vec3       { return c.target }
func (c *Camera) LookAt(p vmath.Vec3)      { c.target = p }

// Basis returns the orthonormal forward, right and up vectors
// A camera looking straight along ±Y falls back to -Z as its up hint
func (c *Camera) Basis() (forward, right, up vmath.Vec3) {
	forward = vmath.V3Normalize(vmath.V3Sub(c.target, c.position))
	if vmath.V3MagSq(forward) == 0 {
		forward = vmath.V3(0, 0, -1)
	}

	hint := worldUp
	if math.Abs(vmath.V3Dot(forward, worldUp)) > 0.999999 {
		hint = vmath.V3(0, 0, -1)
	}
	right = vmath.V3Normalize(vmath.V3Cross(forward, hint))
	up = vmath.V3Cross(right, forward)
	return forward, right, up
}

// tanHalfFOV returns tan(fov/2), the NDC-to-view scale on the vertical axis
func (c *Camera) tanHalfFOV() float64 {
	return math.Tan(c.FOV * math.Pi / 360)
}

func (c *Camera) aspect() float64 {
	if c.Aspect <= 0 || !vmath.IsFinite(c.Aspect) {
		return 1
	}
	return c.Aspect
}

// RayFromNDC returns the world-space ray through normalized device
// coordinates x, y in [-1, 1] (+y up)
func (c *Camera) RayFromNDC(x, y float64) vmath.Ray {
	forward, right, up := c.Basis()
	th := c.tanHalfFOV()

	dir := vmath.V3Add(forward, vmath.V3Scale(right, x*th*c.aspect()))
	dir = vmath.V3Add(dir, vmath.V3Scale(up, y*th))
	return vmath.NewRay(c.position, dir)
}

// Project maps a world point to NDC and its view depth
// ok is false for points outside the near/far range
func (c *Camera) Project(p vmath.Vec3) (x, y, depth float64, ok bool) {
	forward, right, up := c.Basis()
	v := vmath.V3Sub(p, c.position)

	depth = vmath.V3Dot(v, forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}

	th := c.tanHalfFOV()
	x = vmath.V3Dot(v, right) / (depth * th * c.aspect())
	y = vmath.V3Dot(v, up) / (depth * th)
	return x, y, depth, true
}

// ProjectedRadius returns the NDC-height of a sphere of radius r at depth
func (c *Camera) ProjectedRadius(r, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return r / (depth * c.tanHalfFOV())
}
