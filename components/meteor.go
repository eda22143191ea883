package components

import "github.com/lixenwraith/orrery/vmath"

// MeteorBounds bounds the respawn region of a meteor
// A meteor whose Y drops below Threshold reappears inside the box
type MeteorBounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
	Threshold  float64
}

// Meteor is a free-flying particle with constant velocity
// Velocity is applied once per tick and never changes after creation
type Meteor struct {
	Position vmath.Vec3
	Velocity vmath.Vec3
	Bounds   MeteorBounds

	Respawns int // Number of times the meteor was recycled
}

// Contains reports whether p lies inside the respawn box
func (mb MeteorBounds) Contains(p vmath.Vec3) bool {
	return p.X >= mb.MinX && p.X <= mb.MaxX &&
		p.Y >= mb.MinY && p.Y <= mb.MaxY &&
		p.Z >= mb.MinZ && p.Z <= mb.MaxZ
}
