package components

import (
	"math"

	"github.com/lixenwraith/orrery/vmath"
)

// RGB is a 24-bit display color
type RGB struct {
	R, G, B uint8
}

// RGBFromHex unpacks 0xRRGGBB
func RGBFromHex(hex uint32) RGB {
	return RGB{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex)}
}

// Hex packs the color back to 0xRRGGBB
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Body is a planet on a fixed-radius circular orbit around the origin
// Angle and Speed are the only fields mutated after startup
type Body struct {
	Name     string  // Unique, used as the body ID by the UI surface
	Radius   float64 // Display radius, also the picking collider radius
	Distance float64 // Orbital radius
	Speed    float64 // Angular increment per normalized tick
	Angle    float64 // Current orbital angle in [0, 2π)
	Color    RGB

	Position vmath.Vec3

	// Handle is owned by the renderer, the simulation never reads it
	Handle any
}

// NewBody places the body at angle 0 on its orbit
func NewBody(name string, radius, distance, speed float64, color RGB) *Body {
	b := &Body{
		Name:     name,
		Radius:   radius,
		Distance: distance,
		Speed:    speed,
		Color:    color,
	}
	b.SyncPosition()
	return b
}

// SyncPosition recomputes Position from Angle and Distance
func (b *Body) SyncPosition() {
	b.Position = OrbitPosition(b.Angle, b.Distance)
}

// OrbitPosition maps an angle on a circle of radius dist in the XZ plane
func OrbitPosition(angle, dist float64) vmath.Vec3 {
	return vmath.Vec3{
		X: math.Cos(angle) * dist,
		Y: 0,
		Z: math.Sin(angle) * dist,
	}
}
