package interaction

import (
	"log"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/metrics"
	"github.com/lixenwraith/orrery/picking"
	"github.com/lixenwraith/orrery/simulation"
)

// Layer turns user intents into state changes and flight requests
// Every method must run on the frame goroutine
type Layer struct {
	ctx     *simulation.Context
	cam     *camera.Camera
	flight  *camera.FlightController
	surface simulation.Surface
	time    engine.TimeProvider
	metrics *metrics.Collector
}

// NewLayer wires the interaction layer; m may be nil
func NewLayer(ctx *simulation.Context, cam *camera.Camera, flight *camera.FlightController,
	surface simulation.Surface, tp engine.TimeProvider, m *metrics.Collector) *Layer {
	return &Layer{
		ctx:     ctx,
		cam:     cam,
		flight:  flight,
		surface: surface,
		time:    tp,
		metrics: m,
	}
}

func (l *Layer) pick(p picking.Point) (picking.Result, bool) {
	return picking.Pick(p, l.cam, l.surface.Viewport(), l.ctx.Bodies)
}

// OnPointerMove updates the hover tooltip
func (l *Layer) OnPointerMove(p picking.Point) simulation.Hover {
	res, ok := l.pick(p)
	l.metrics.ObservePick("hover", ok)
	if !ok {
		l.ctx.Hover = simulation.Hover{}
		return l.ctx.Hover
	}
	l.ctx.Hover = simulation.Hover{
		Name:    res.Body.Name,
		X:       p.X,
		Y:       p.Y,
		Visible: true,
	}
	return l.ctx.Hover
}

// OnPointerLeave hides the tooltip when the pointer leaves the surface
func (l *Layer) OnPointerLeave() {
	l.ctx.Hover = simulation.Hover{}
}

// OnPointerClick starts a flight to the clicked body
// Clicks off the render surface or on empty space do nothing
func (l *Layer) OnPointerClick(p picking.Point) (*components.Body, bool) {
	if !l.surface.Viewport().Contains(p) {
		return nil, false
	}
	res, ok := l.pick(p)
	l.metrics.ObservePick("click", ok)
	if !ok {
		return nil, false
	}
	l.flight.Request(res.Body, l.time.Now())
	l.selectBody(res.Body)
	return res.Body, true
}

// OnParameterChange sets a body speed from the UI surface
func (l *Layer) OnParameterChange(name string, value float64) error {
	v, err := l.ctx.SetSpeed(name, value)
	if err != nil {
		return err
	}
	l.metrics.SetBodySpeed(name, v)
	return nil
}

// OnPauseToggle flips the pause flag
func (l *Layer) OnPauseToggle() bool {
	paused := l.ctx.TogglePause()
	log.Printf("simulation paused=%v", paused)
	return paused
}

// OnThemeToggle switches the color scheme
func (l *Layer) OnThemeToggle() simulation.Theme {
	return l.ctx.ToggleTheme()
}

// OnSelect cycles the body targeted by keyboard speed changes
func (l *Layer) OnSelect(delta int) *components.Body {
	return l.ctx.Select(delta)
}

// OnSpeedStep nudges the selected body's speed by n slider steps
func (l *Layer) OnSpeedStep(n int) error {
	b, err := l.ctx.StepSpeed(n)
	if err != nil {
		return err
	}
	l.metrics.SetBodySpeed(b.Name, b.Speed)
	return nil
}

// OnFlyToSelected starts a flight to the selected body
func (l *Layer) OnFlyToSelected() *components.Body {
	b := l.ctx.SelectedBody()
	if b != nil {
		l.flight.Request(b, l.time.Now())
	}
	return b
}

func (l *Layer) selectBody(b *components.Body) {
	for i, c := range l.ctx.Bodies {
		if c == b {
			l.ctx.Selected = i
			return
		}
	}
}
