package input

import (
	"log"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/interaction"
	"github.com/lixenwraith/orrery/picking"
)

// Resizer re-reads the surface size
type Resizer interface {
	Resize()
}

// Router applies intents to the interaction layer and camera controls
// Must run on the frame goroutine
type Router struct {
	layer    *interaction.Layer
	controls *camera.OrbitControls
	resizer  Resizer
	quit     func()
}

// NewRouter creates a router; resizer may be nil
func NewRouter(layer *interaction.Layer, controls *camera.OrbitControls, resizer Resizer, quit func()) *Router {
	return &Router{
		layer:    layer,
		controls: controls,
		resizer:  resizer,
		quit:     quit,
	}
}

// cellCenter maps a terminal cell to its center in surface units
func cellCenter(x, y int) picking.Point {
	return picking.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// Handle applies one intent, nil is ignored
func (r *Router) Handle(intent *Intent) {
	if intent == nil {
		return
	}

	switch intent.Type {
	case IntentQuit:
		if r.quit != nil {
			r.quit()
		}
	case IntentResize:
		if r.resizer != nil {
			r.resizer.Resize()
		}

	case IntentPointerMove:
		r.layer.OnPointerMove(cellCenter(intent.X, intent.Y))
	case IntentPointerDown:
		// Wait for release or drag
	case IntentPointerClick:
		if b, ok := r.layer.OnPointerClick(cellCenter(intent.X, intent.Y)); ok {
			log.Printf("flight requested: %s", b.Name)
		}
	case IntentOrbit:
		r.controls.Rotate(float64(intent.X), float64(intent.Y))
	case IntentZoom:
		r.controls.Zoom(intent.Count)

	case IntentPauseToggle:
		r.layer.OnPauseToggle()
	case IntentThemeToggle:
		r.layer.OnThemeToggle()
	case IntentSelect:
		r.layer.OnSelect(intent.Count)
	case IntentSpeedStep:
		if err := r.layer.OnSpeedStep(intent.Count); err != nil {
			log.Printf("speed step: %v", err)
		}
	case IntentFly:
		if b := r.layer.OnFlyToSelected(); b != nil {
			log.Printf("flight requested: %s", b.Name)
		}
	}
}
