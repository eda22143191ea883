package camera

import (
	"time"

	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/vmath"
)

// Mode is the flight controller state
type Mode int

const (
	Idle Mode = iota
	Flying
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case Flying:
		return "Flying"
	default:
		return "Unknown"
	}
}

// Flight is an in-progress camera transition toward a body
type Flight struct {
	Body      string
	Start     vmath.Vec3 // Camera position when requested
	Target    vmath.Vec3 // Body position plus framing offset
	LookAt    vmath.Vec3 // Body position when requested
	StartTime time.Time
	Duration  time.Duration
}

// Progress returns the normalized flight time at now, clamped to [0, 1]
func (f Flight) Progress(now time.Time) float64 {
	if f.Duration <= 0 {
		return 1
	}
	t := float64(now.Sub(f.StartTime)) / float64(f.Duration)
	return vmath.Clamp(t, 0, 1)
}

// FlightListener is notified of flight lifecycle changes
// Calls happen on the frame goroutine and must not block
type FlightListener interface {
	FlightStarted(f Flight)
	FlightFinished(f Flight)
}

// FlightController moves the camera to a selected body over a fixed duration
// It reads wall-clock time, so flights complete while the simulation is paused
// The target is captured at request time; the body keeps orbiting meanwhile
type FlightController struct {
	cam      Transform
	controls *OrbitControls

	duration time.Duration
	offset   vmath.Vec3

	mode      Mode
	flight    Flight
	listeners []FlightListener
}

// NewFlightController creates an idle controller
// controls may be nil; when set, its target follows the flight look-at point
// and it yields the camera while a flight is in progress
func NewFlightController(cam Transform, controls *OrbitControls, duration time.Duration, offset vmath.Vec3) *FlightController {
	fc := &FlightController{
		cam:      cam,
		controls: controls,
		duration: duration,
		offset:   offset,
	}
	if controls != nil {
		controls.SetLock(fc)
	}
	return fc
}

// AddListener registers a lifecycle listener
func (fc *FlightController) AddListener(l FlightListener) {
	fc.listeners = append(fc.listeners, l)
}

// Mode returns the current state
func (fc *FlightController) Mode() Mode {
	return fc.mode
}

// Locked reports whether the flight owns the camera
func (fc *FlightController) Locked() bool {
	return fc.mode == Flying
}

// Current returns the active flight, ok is false while Idle
func (fc *FlightController) Current() (Flight, bool) {
	return fc.flight, fc.mode == Flying
}

// Request starts a flight to body, replacing any flight in progress
// The new flight starts from wherever the camera currently is
func (fc *FlightController) Request(body *components.Body, now time.Time) {
	if body == nil {
		return
	}
	fc.flight = Flight{
		Body:      body.Name,
		Start:     fc.cam.Position(),
		Target:    vmath.V3Add(body.Position, fc.offset),
		LookAt:    body.Position,
		StartTime: now,
		Duration:  fc.duration,
	}
	fc.mode = Flying

	for _, l := range fc.listeners {
		l.FlightStarted(fc.flight)
	}
}

// Update writes the interpolated camera transform while Flying
// Returns true when the camera was written
func (fc *FlightController) Update(now time.Time) bool {
	if fc.mode != Flying {
		return false
	}

	f := fc.flight
	t := f.Progress(now)

	fc.cam.SetPosition(vmath.V3Lerp(f.Start, f.Target, t))
	fc.cam.LookAt(f.LookAt)
	if fc.controls != nil {
		fc.controls.SetTarget(f.LookAt)
	}

	if t >= 1 {
		fc.mode = Idle
		for _, l := range fc.listeners {
			l.FlightFinished(f)
		}
	}
	return true
}
