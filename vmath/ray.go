package vmath

import "math"

// Ray is a half-line from Origin along a unit Dir
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay normalizes dir
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: V3Normalize(dir)}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vec3 {
	return V3Add(r.Origin, V3Scale(r.Dir, t))
}

// IntersectSphere returns the nearest non-negative distance at which the ray
// enters the sphere, or the exit distance when the origin is inside it
// ok is false when the ray misses or the sphere lies entirely behind the origin
func (r Ray) IntersectSphere(center Vec3, radius float64) (t float64, ok bool) {
	if radius <= 0 {
		return 0, false
	}

	// Solve |o + t·d - c|² = r² with |d| = 1: t² + 2bt + c = 0
	oc := V3Sub(r.Origin, center)
	b := V3Dot(oc, r.Dir)
	c := V3MagSq(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t0 := -b - sq
	t1 := -b + sq

	if t0 >= 0 {
		return t0, true
	}
	if t1 >= 0 {
		return t1, true
	}
	return 0, false
}
