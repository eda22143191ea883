package systems

import (
	"time"

	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/vmath"
)

// OrbitSystem advances bodies along their circular orbits
type OrbitSystem struct {
	// Normalization maps seconds to the tick rate body speeds were tuned for
	Normalization float64
}

// NewOrbitSystem creates an orbit system with normalization factor k
func NewOrbitSystem(k float64) *OrbitSystem {
	return &OrbitSystem{Normalization: k}
}

// Update advances every body by speed × dt × k radians
// A zero delta leaves angles and positions untouched
func (s *OrbitSystem) Update(bodies []*components.Body, dt time.Duration) {
	if dt <= 0 {
		return
	}
	step := dt.Seconds() * s.Normalization
	for _, b := range bodies {
		b.Angle = vmath.WrapAngle(b.Angle + b.Speed*step)
		b.SyncPosition()
	}
}
