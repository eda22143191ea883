package simulation

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/picking"
	"github.com/lixenwraith/orrery/systems"
	"github.com/lixenwraith/orrery/vmath"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// mockRenderer records frames
type mockRenderer struct {
	viewport picking.Viewport
	frames   int
	last     Scene
}

func (m *mockRenderer) Viewport() picking.Viewport { return m.viewport }

func (m *mockRenderer) Render(scene *Scene, cam *camera.Camera) {
	m.frames++
	m.last = *scene
}

type rig struct {
	loop     *Loop
	ctx      *Context
	tp       *engine.ManualTimeProvider
	renderer *mockRenderer
}

func newRig() *rig {
	bodies := []*components.Body{
		components.NewBody("Mercury", 0.5, 10, 0.04, components.RGBFromHex(0xb1b1b1)),
		components.NewBody("Earth", 1.2, 20, 0.03, components.RGBFromHex(0x2a56ff)),
		components.NewBody("Mars", 0.9, 25, 0.024, components.RGBFromHex(0xff3300)),
	}
	msys := systems.NewMeteorSystem(rand.New(rand.NewSource(1)))
	meteors := msys.Spawn(systems.MeteorParams{
		Count:     6,
		Spawn:     components.MeteorBounds{MinX: -150, MaxX: 150, MinY: 80, MaxY: 120, MinZ: -200, MaxZ: 200, Threshold: -50},
		Respawn:   components.MeteorBounds{MinX: -100, MaxX: 100, MinY: 80, MaxY: 120, MinZ: -100, MaxZ: 100, Threshold: -50},
		VelocityX: [2]float64{0, 1.5},
		VelocityY: -1.2,
		VelocityZ: [2]float64{0, 1.5},
	})
	ctx := NewContext(bodies, meteors, Sun{Radius: 5}, SpeedRange{Min: 0, Max: 0.1, Step: 0.001})

	tp := engine.NewManualTimeProvider(epoch)
	cam := camera.NewCamera(vmath.V3(0, 40, 140), 65, 1, 0.1, 1000)
	controls := camera.NewOrbitControls(cam, nil, camera.ControlsConfig{
		MinDistance: 10, MaxDistance: 300, Damping: 0.05, RotateSpeed: 0.05, ZoomFactor: 0.95,
	})
	flight := camera.NewFlightController(cam, controls, time.Second, vmath.V3(0, 5, 15))
	renderer := &mockRenderer{viewport: picking.Viewport{Width: 160, Height: 45, PixelAspect: 2}}

	loop := &Loop{
		Ctx:      ctx,
		Camera:   cam,
		Clock:    engine.NewClock(tp, 250*time.Millisecond),
		Orbit:    systems.NewOrbitSystem(60),
		Meteors:  msys,
		Flight:   flight,
		Controls: controls,
		Renderer: renderer,
	}
	return &rig{loop: loop, ctx: ctx, tp: tp, renderer: renderer}
}

func TestStepAdvancesBodiesAndMeteors(t *testing.T) {
	r := newRig()
	earth, _ := r.ctx.Body("Earth")
	meteorY := r.ctx.Meteors[0].Position.Y

	r.loop.Step(time.Second, epoch)

	if math.Abs(earth.Angle-1.8) > 1e-9 {
		t.Errorf("Earth angle = %v, want 1.8", earth.Angle)
	}
	if got := r.ctx.Meteors[0].Position.Y; math.Abs(got-(meteorY-1.2)) > 1e-9 {
		t.Errorf("meteor y = %v, want %v", got, meteorY-1.2)
	}
	if r.renderer.frames != 1 {
		t.Errorf("frames rendered = %d, want 1", r.renderer.frames)
	}
	if r.loop.Camera.Aspect != 160.0/90.0 {
		t.Errorf("camera aspect = %v, want viewport aspect", r.loop.Camera.Aspect)
	}
}

func TestPauseFreezesMotionButNotFlight(t *testing.T) {
	r := newRig()
	mars, _ := r.ctx.Body("Mars")
	r.loop.Step(100*time.Millisecond, epoch)

	angles := make([]float64, len(r.ctx.Bodies))
	for i, b := range r.ctx.Bodies {
		angles[i] = b.Angle
	}
	meteorPos := r.ctx.Meteors[0].Position

	r.ctx.TogglePause()
	r.loop.Flight.Request(mars, epoch)
	target := vmath.V3Add(mars.Position, vmath.V3(0, 5, 15))

	for i := 1; i <= 20; i++ {
		r.loop.Step(100*time.Millisecond, epoch.Add(time.Duration(i)*100*time.Millisecond))
	}

	for i, b := range r.ctx.Bodies {
		if b.Angle != angles[i] {
			t.Errorf("%s moved while paused: %v -> %v", b.Name, angles[i], b.Angle)
		}
	}
	if r.ctx.Meteors[0].Position != meteorPos {
		t.Error("meteor moved while paused")
	}
	if r.loop.Flight.Mode() != camera.Idle {
		t.Errorf("flight mode = %v, want Idle after duration", r.loop.Flight.Mode())
	}
	if !vmath.V3ApproxEqual(r.loop.Camera.Position(), target, 1e-9) {
		t.Errorf("camera = %v, want %v", r.loop.Camera.Position(), target)
	}
	if !r.renderer.last.Paused {
		t.Error("scene not marked paused")
	}
}

func TestTickResumeHasNoCatchUp(t *testing.T) {
	r := newRig()
	earth, _ := r.ctx.Body("Earth")

	r.ctx.TogglePause()
	for i := 0; i < 100; i++ {
		r.tp.Advance(100 * time.Millisecond)
		r.loop.Tick()
	}
	r.ctx.TogglePause()

	r.tp.Advance(time.Second / 60)
	r.loop.Tick()

	// Only the single post-resume frame counts
	want := 0.03 * (time.Second / 60).Seconds() * 60
	if math.Abs(earth.Angle-want) > 1e-9 {
		t.Errorf("angle after resume = %v, want %v", earth.Angle, want)
	}
}

func TestSceneSnapshot(t *testing.T) {
	r := newRig()
	mercury, _ := r.ctx.Body("Mercury")
	r.ctx.Hover = Hover{Name: "Earth", X: 3, Y: 4, Visible: true}
	r.ctx.ToggleTheme()
	r.loop.Flight.Request(mercury, epoch)

	r.loop.Step(0, epoch)

	s := r.renderer.last
	if s.Theme != ThemeLight || !s.Hover.Visible || s.Hover.Name != "Earth" {
		t.Errorf("scene = %+v", s)
	}
	if s.Flight != camera.Flying || s.FlightBody != "Mercury" {
		t.Errorf("flight = %v %q", s.Flight, s.FlightBody)
	}
	if s.Selected != mercury {
		t.Errorf("selected = %v, want Mercury", s.Selected)
	}
}

func TestSetSpeed(t *testing.T) {
	r := newRig()

	tests := []struct {
		name    string
		body    string
		value   float64
		want    float64
		wantErr error
	}{
		{"in range", "Earth", 0.05, 0.05, nil},
		{"clamped high", "Earth", 0.5, 0.1, nil},
		{"clamped low", "Earth", -1, 0, nil},
		{"unknown body", "Pluto", 0.01, 0, ErrUnknownBody},
		{"nan", "Earth", math.NaN(), 0, ErrInvalidSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ctx.SetSpeed(tt.body, tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("speed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectAndStepSpeed(t *testing.T) {
	r := newRig()

	if b := r.ctx.Select(-1); b.Name != "Mars" {
		t.Errorf("Select(-1) from first = %s, want Mars", b.Name)
	}
	if b := r.ctx.Select(1); b.Name != "Mercury" {
		t.Errorf("Select(1) wrap = %s, want Mercury", b.Name)
	}

	b, err := r.ctx.StepSpeed(5)
	if err != nil {
		t.Fatalf("StepSpeed: %v", err)
	}
	if math.Abs(b.Speed-0.045) > 1e-12 {
		t.Errorf("speed = %v, want 0.045", b.Speed)
	}

	empty := NewContext(nil, nil, Sun{}, SpeedRange{Max: 0.1, Step: 0.001})
	if _, err := empty.StepSpeed(1); !errors.Is(err, ErrNoSelection) {
		t.Errorf("StepSpeed on empty context err = %v", err)
	}
	if empty.Select(1) != nil {
		t.Error("Select on empty context returned a body")
	}
}

func TestThemeAndPauseToggle(t *testing.T) {
	ctx := NewContext(nil, nil, Sun{}, SpeedRange{})
	if ctx.ToggleTheme() != ThemeLight || ctx.ToggleTheme() != ThemeDark {
		t.Error("theme did not alternate")
	}
	if !ctx.TogglePause() || ctx.TogglePause() {
		t.Error("pause did not alternate")
	}
	if ThemeLight.String() != "light" || ThemeDark.String() != "dark" {
		t.Error("unexpected theme names")
	}
}
