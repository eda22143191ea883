package main

import (
	"math/rand"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/interaction"
	"github.com/lixenwraith/orrery/metrics"
	"github.com/lixenwraith/orrery/simulation"
	"github.com/lixenwraith/orrery/systems"
	"github.com/lixenwraith/orrery/vmath"
)

// app is the wired simulation, independent of the terminal
type app struct {
	ctx      *simulation.Context
	cam      *camera.Camera
	controls *camera.OrbitControls
	flight   *camera.FlightController
	layer    *interaction.Layer
	loop     *simulation.Loop
}

func meteorParams(m config.MeteorConfig) systems.MeteorParams {
	return systems.MeteorParams{
		Count:     m.Count,
		Spawn:     m.SpawnBounds(),
		Respawn:   m.RespawnBounds(),
		VelocityX: m.VelocityX,
		VelocityY: m.VelocityY,
		VelocityZ: m.VelocityZ,
	}
}

// newApp builds the simulation from cfg
// renderer is the render surface; tp is the clock and flight time source
func newApp(cfg *config.Config, renderer simulation.Renderer, tp engine.TimeProvider,
	rng *rand.Rand, m *metrics.Collector) *app {
	bodies := cfg.BuildBodies()
	meteorSys := systems.NewMeteorSystem(rng)
	meteors := meteorSys.Spawn(meteorParams(cfg.Meteors))

	ctx := simulation.NewContext(bodies, meteors,
		simulation.Sun{Radius: cfg.Sun.Radius, Color: components.RGBFromHex(cfg.Sun.Color)},
		simulation.SpeedRange{
			Min:  cfg.Simulation.SpeedMin,
			Max:  cfg.Simulation.SpeedMax,
			Step: cfg.Simulation.SpeedStep,
		})
	ctx.MeteorRadius = cfg.Meteors.Radius

	aspect := 1.0
	if vp := renderer.Viewport(); !vp.Empty() {
		aspect = vp.Aspect()
	}
	cam := camera.NewCamera(cfg.Camera.StartPosition(), cfg.Camera.FOV, aspect, cfg.Camera.Near, cfg.Camera.Far)
	cam.LookAt(vmath.Vec3{})

	controls := camera.NewOrbitControls(cam, nil, camera.ControlsConfig{
		MinDistance: cfg.Camera.MinDistance,
		MaxDistance: cfg.Camera.MaxDistance,
		Damping:     cfg.Camera.Damping,
		RotateSpeed: cfg.Camera.RotateSpeed,
		ZoomFactor:  cfg.Camera.ZoomFactor,
	})
	flight := camera.NewFlightController(cam, controls, cfg.Flight.Duration(), cfg.Flight.OffsetVec())
	if m != nil {
		flight.AddListener(m)
		for _, b := range bodies {
			m.SetBodySpeed(b.Name, b.Speed)
		}
	}

	loop := &simulation.Loop{
		Ctx:      ctx,
		Camera:   cam,
		Clock:    engine.NewClock(tp, constants.MaxFrameDelta),
		Orbit:    systems.NewOrbitSystem(cfg.Simulation.Normalization),
		Meteors:  meteorSys,
		Flight:   flight,
		Controls: controls,
		Renderer: renderer,
		Metrics:  m,
	}

	return &app{
		ctx:      ctx,
		cam:      cam,
		controls: controls,
		flight:   flight,
		layer:    interaction.NewLayer(ctx, cam, flight, renderer, tp, m),
		loop:     loop,
	}
}
