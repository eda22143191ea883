package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/constants"
)

// keyOrbitStep is the orbit delta of one arrow key press, in drag cells
const keyOrbitStep = 4

// Machine turns tcell events into intents
// It tracks the left button so a press and release is told apart from a drag
type Machine struct {
	pressed  bool
	dragging bool
	pressX   int
	pressY   int
	lastX    int
	lastY    int
}

// NewMachine creates an input machine with no button held
func NewMachine() *Machine {
	return &Machine{}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return &Intent{Type: IntentQuit}
	case tcell.KeyTab:
		return &Intent{Type: IntentSelect, Count: 1}
	case tcell.KeyBacktab:
		return &Intent{Type: IntentSelect, Count: -1}
	case tcell.KeyEnter:
		return &Intent{Type: IntentFly}
	case tcell.KeyLeft:
		return &Intent{Type: IntentOrbit, X: -keyOrbitStep}
	case tcell.KeyRight:
		return &Intent{Type: IntentOrbit, X: keyOrbitStep}
	case tcell.KeyUp:
		return &Intent{Type: IntentOrbit, Y: -keyOrbitStep}
	case tcell.KeyDown:
		return &Intent{Type: IntentOrbit, Y: keyOrbitStep}
	case tcell.KeyPgUp:
		return &Intent{Type: IntentZoom, Count: 1}
	case tcell.KeyPgDn:
		return &Intent{Type: IntentZoom, Count: -1}
	case tcell.KeyRune:
		return m.processRune(ev.Rune())
	}
	return nil
}

func (m *Machine) processRune(r rune) *Intent {
	switch r {
	case 'q', 'Q':
		return &Intent{Type: IntentQuit}
	case ' ':
		return &Intent{Type: IntentPauseToggle}
	case 't', 'T':
		return &Intent{Type: IntentThemeToggle}
	case '+', '=':
		return &Intent{Type: IntentSpeedStep, Count: 1}
	case '-', '_':
		return &Intent{Type: IntentSpeedStep, Count: -1}
	case 'f', 'F':
		return &Intent{Type: IntentFly}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		return &Intent{Type: IntentZoom, X: x, Y: y, Count: 1}
	case btn&tcell.WheelDown != 0:
		return &Intent{Type: IntentZoom, X: x, Y: y, Count: -1}

	case btn&tcell.Button1 != 0:
		if !m.pressed {
			m.pressed = true
			m.dragging = false
			m.pressX, m.pressY = x, y
			m.lastX, m.lastY = x, y
			return &Intent{Type: IntentPointerDown, X: x, Y: y}
		}
		if !m.dragging && (abs(x-m.pressX) > constants.ClickSlop || abs(y-m.pressY) > constants.ClickSlop) {
			m.dragging = true
		}
		if !m.dragging {
			return nil
		}
		dx, dy := x-m.lastX, y-m.lastY
		m.lastX, m.lastY = x, y
		if dx == 0 && dy == 0 {
			return nil
		}
		return &Intent{Type: IntentOrbit, X: dx, Y: dy}

	case btn == tcell.ButtonNone:
		if m.pressed {
			m.pressed = false
			if !m.dragging {
				return &Intent{Type: IntentPointerClick, X: x, Y: y}
			}
			m.dragging = false
		}
		return &Intent{Type: IntentPointerMove, X: x, Y: y}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
