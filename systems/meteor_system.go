package systems

import (
	"math/rand"

	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/vmath"
)

// MeteorParams describes how a meteor field is spawned
type MeteorParams struct {
	Count   int
	Spawn   components.MeteorBounds // Initial placement box
	Respawn components.MeteorBounds // Recycling box and Y threshold

	VelocityX [2]float64
	VelocityY float64
	VelocityZ [2]float64
}

// MeteorSystem moves meteors and recycles the ones that fall out of view
// Velocity is applied once per call, not scaled by frame delta
type MeteorSystem struct {
	rng *rand.Rand
}

// NewMeteorSystem creates a meteor system drawing respawn positions from rng
func NewMeteorSystem(rng *rand.Rand) *MeteorSystem {
	return &MeteorSystem{rng: rng}
}

// Spawn creates the fixed meteor pool
func (s *MeteorSystem) Spawn(p MeteorParams) []*components.Meteor {
	meteors := make([]*components.Meteor, p.Count)
	for i := range meteors {
		meteors[i] = &components.Meteor{
			Position: s.randomIn(p.Spawn),
			Velocity: vmath.V3(
				vmath.RandRange(s.rng, p.VelocityX[0], p.VelocityX[1]),
				p.VelocityY,
				vmath.RandRange(s.rng, p.VelocityZ[0], p.VelocityZ[1]),
			),
			Bounds: p.Respawn,
		}
	}
	return meteors
}

// Update moves every meteor by its velocity and returns how many respawned
func (s *MeteorSystem) Update(meteors []*components.Meteor) int {
	respawned := 0
	for _, m := range meteors {
		m.Position = vmath.V3Add(m.Position, m.Velocity)
		if m.Position.Y < m.Bounds.Threshold {
			m.Position = s.randomIn(m.Bounds)
			m.Respawns++
			respawned++
		}
	}
	return respawned
}

func (s *MeteorSystem) randomIn(b components.MeteorBounds) vmath.Vec3 {
	return vmath.V3(
		vmath.RandRange(s.rng, b.MinX, b.MaxX),
		vmath.RandRange(s.rng, b.MinY, b.MaxY),
		vmath.RandRange(s.rng, b.MinZ, b.MaxZ),
	)
}
