package camera

import (
	"math"

	"github.com/lixenwraith/orrery/vmath"
)

// minPolar keeps the camera off the poles where azimuth is undefined
const minPolar = 1e-4

// settleEpsilon is the residual rotation below which damping stops
const settleEpsilon = 1e-6

// Lock reports whether another controller owns the camera this frame
type Lock interface {
	Locked() bool
}

// ControlsConfig holds the free-orbit tunables
type ControlsConfig struct {
	MinDistance float64
	MaxDistance float64
	Damping     float64 // Fraction of pending rotation applied per update
	RotateSpeed float64 // Radians per unit of Rotate input
	ZoomFactor  float64 // Distance scale per zoom notch, < 1
}

// OrbitControls rotates and zooms the camera around a target point
// Input accumulates between frames and is applied in Update
type OrbitControls struct {
	cam  Transform
	lock Lock
	cfg  ControlsConfig

	target vmath.Vec3

	pendingTheta float64 // Azimuth around +Y
	pendingPhi   float64 // Polar angle from +Y
	pendingScale float64 // Multiplier on distance, 1 = none
}

// NewOrbitControls creates controls for cam targeting the origin
// lock may be nil when nothing else writes the camera
func NewOrbitControls(cam Transform, lock Lock, cfg ControlsConfig) *OrbitControls {
	return &OrbitControls{
		cam:          cam,
		lock:         lock,
		cfg:          cfg,
		pendingScale: 1,
	}
}

// SetLock installs the camera arbitration source
func (oc *OrbitControls) SetLock(lock Lock) {
	oc.lock = lock
}

// Target returns the orbit pivot
func (oc *OrbitControls) Target() vmath.Vec3 {
	return oc.target
}

// SetTarget moves the orbit pivot without moving the camera
func (oc *OrbitControls) SetTarget(p vmath.Vec3) {
	oc.target = p
}

// Rotate queues a drag of dx, dy input units
// Positive dx swings the camera left around the target, positive dy raises it
func (oc *OrbitControls) Rotate(dx, dy float64) {
	oc.pendingTheta -= dx * oc.cfg.RotateSpeed
	oc.pendingPhi -= dy * oc.cfg.RotateSpeed
}

// Zoom queues notches of zoom, positive moves closer
func (oc *OrbitControls) Zoom(notches int) {
	oc.pendingScale *= math.Pow(oc.cfg.ZoomFactor, float64(notches))
}

// Pending reports whether queued input is still being applied
func (oc *OrbitControls) Pending() bool {
	return oc.pendingTheta != 0 || oc.pendingPhi != 0 || oc.pendingScale != 1
}

// Update applies damped input and writes the camera
// While locked the camera is left alone and queued input is dropped
// Returns true when the camera was written
func (oc *OrbitControls) Update() bool {
	if oc.lock != nil && oc.lock.Locked() {
		oc.clear()
		return false
	}

	offset := vmath.V3Sub(oc.cam.Position(), oc.target)
	radius := vmath.V3Mag(offset)
	if radius == 0 {
		offset = vmath.V3(0, 0, oc.cfg.MinDistance)
		radius = oc.cfg.MinDistance
	} else if !oc.Pending() && radius >= oc.cfg.MinDistance && radius <= oc.cfg.MaxDistance {
		// At rest: keep the position exact and only re-aim
		oc.cam.LookAt(oc.target)
		return true
	}

	theta := math.Atan2(offset.X, offset.Z)
	phi := math.Acos(vmath.Clamp(offset.Y/radius, -1, 1))

	damping := oc.cfg.Damping
	theta += oc.pendingTheta * damping
	phi += oc.pendingPhi * damping
	phi = vmath.Clamp(phi, minPolar, math.Pi-minPolar)

	radius = vmath.Clamp(radius*oc.pendingScale, oc.cfg.MinDistance, oc.cfg.MaxDistance)
	oc.pendingScale = 1

	sinPhi := math.Sin(phi)
	offset = vmath.V3(
		radius*sinPhi*math.Sin(theta),
		radius*math.Cos(phi),
		radius*sinPhi*math.Cos(theta),
	)
	oc.cam.SetPosition(vmath.V3Add(oc.target, offset))
	oc.cam.LookAt(oc.target)

	oc.pendingTheta *= 1 - damping
	oc.pendingPhi *= 1 - damping
	if math.Abs(oc.pendingTheta) < settleEpsilon {
		oc.pendingTheta = 0
	}
	if math.Abs(oc.pendingPhi) < settleEpsilon {
		oc.pendingPhi = 0
	}
	return true
}

func (oc *OrbitControls) clear() {
	oc.pendingTheta = 0
	oc.pendingPhi = 0
	oc.pendingScale = 1
}
