package simulation

import (
	"time"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/metrics"
	"github.com/lixenwraith/orrery/picking"
	"github.com/lixenwraith/orrery/systems"
)

// Surface answers viewport queries for picking and camera aspect
type Surface interface {
	Viewport() picking.Viewport
}

// Renderer draws one frame of the scene
type Renderer interface {
	Surface
	Render(scene *Scene, cam *camera.Camera)
}

// Scene is the per-frame snapshot handed to the renderer
type Scene struct {
	Bodies       []*components.Body
	Meteors      []*components.Meteor
	Sun          Sun
	MeteorRadius float64

	Paused     bool
	Theme      Theme
	Selected   *components.Body
	Hover      Hover
	Flight     camera.Mode
	FlightBody string
}

// Loop is the per-frame driver
// Renderer and Metrics are optional
type Loop struct {
	Ctx      *Context
	Camera   *camera.Camera
	Clock    *engine.Clock
	Orbit    *systems.OrbitSystem
	Meteors  *systems.MeteorSystem
	Flight   *camera.FlightController
	Controls *camera.OrbitControls
	Renderer Renderer
	Metrics  *metrics.Collector

	scene Scene
}

// Tick runs one frame using the clock
// The delta is consumed even while paused so resuming does not jump
func (l *Loop) Tick() {
	now := l.Clock.Now()
	dt := l.Clock.Delta()
	l.Step(dt, now)
}

// Step runs one frame with an explicit delta and wall-clock time
func (l *Loop) Step(dt time.Duration, now time.Time) {
	frameStart := time.Now()

	if l.Renderer != nil {
		if vp := l.Renderer.Viewport(); !vp.Empty() {
			l.Camera.Aspect = vp.Aspect()
		}
	}

	respawns := 0
	if !l.Ctx.Paused {
		l.Orbit.Update(l.Ctx.Bodies, dt)
		respawns = l.Meteors.Update(l.Ctx.Meteors)
	}

	// Flight runs on wall-clock time regardless of pause
	l.Flight.Update(now)
	if l.Controls != nil {
		l.Controls.Update()
	}

	if l.Renderer != nil {
		l.Renderer.Render(l.Scene(), l.Camera)
	}

	l.Metrics.ObserveFrame(time.Since(frameStart), l.Ctx.Paused, respawns)
}

// Scene refreshes and returns the frame snapshot
func (l *Loop) Scene() *Scene {
	s := &l.scene
	s.Bodies = l.Ctx.Bodies
	s.Meteors = l.Ctx.Meteors
	s.Sun = l.Ctx.Sun
	s.MeteorRadius = l.Ctx.MeteorRadius
	s.Paused = l.Ctx.Paused
	s.Theme = l.Ctx.Theme
	s.Selected = l.Ctx.SelectedBody()
	s.Hover = l.Ctx.Hover
	s.Flight = l.Flight.Mode()
	s.FlightBody = ""
	if f, ok := l.Flight.Current(); ok {
		s.FlightBody = f.Body
	}
	return s
}
