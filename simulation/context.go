package simulation

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/vmath"
)

var (
	ErrUnknownBody  = errors.New("unknown body")
	ErrInvalidSpeed = errors.New("speed must be finite")
	ErrNoSelection  = errors.New("no body selected")
)

// Theme is the presentational color scheme
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// SpeedRange is the UI slider range for body speeds
type SpeedRange struct {
	Min, Max, Step float64
}

// Sun is the static central star
type Sun struct {
	Radius float64
	Color  components.RGB
}

// Hover is the tooltip state driven by pointer movement
type Hover struct {
	Name    string
	X, Y    float64 // Pointer position the tooltip anchors to
	Visible bool
}

// Context is the mutable simulation state
// Owned by the frame goroutine; input reaches it through posted closures
type Context struct {
	Bodies  []*components.Body
	Meteors []*components.Meteor
	Sun     Sun

	MeteorRadius float64

	Paused   bool
	Theme    Theme
	Selected int // Index into Bodies, -1 when nothing is selected
	Hover    Hover

	speeds SpeedRange
	byName map[string]*components.Body
}

// NewContext indexes bodies by name and selects the first body
func NewContext(bodies []*components.Body, meteors []*components.Meteor, sun Sun, speeds SpeedRange) *Context {
	byName := make(map[string]*components.Body, len(bodies))
	for _, b := range bodies {
		byName[b.Name] = b
	}
	selected := -1
	if len(bodies) > 0 {
		selected = 0
	}
	return &Context{
		Bodies:   bodies,
		Meteors:  meteors,
		Sun:      sun,
		Selected: selected,
		speeds:   speeds,
		byName:   byName,
	}
}

// Speeds returns the speed slider range
func (c *Context) Speeds() SpeedRange {
	return c.speeds
}

// Body looks up a body by name
func (c *Context) Body(name string) (*components.Body, bool) {
	b, ok := c.byName[name]
	return b, ok
}

// SetSpeed sets a body's angular speed clamped to the slider range
// Returns the stored value
func (c *Context) SetSpeed(name string, value float64) (float64, error) {
	b, ok := c.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}
	if !vmath.IsFinite(value) {
		return b.Speed, fmt.Errorf("%w: %q: %v", ErrInvalidSpeed, name, value)
	}
	b.Speed = vmath.Clamp(value, c.speeds.Min, c.speeds.Max)
	return b.Speed, nil
}

// TogglePause flips the pause flag and returns the new state
func (c *Context) TogglePause() bool {
	c.Paused = !c.Paused
	return c.Paused
}

// ToggleTheme switches between dark and light
func (c *Context) ToggleTheme() Theme {
	if c.Theme == ThemeDark {
		c.Theme = ThemeLight
	} else {
		c.Theme = ThemeDark
	}
	return c.Theme
}

// Select moves the selection by delta, wrapping around the body list
func (c *Context) Select(delta int) *components.Body {
	n := len(c.Bodies)
	if n == 0 {
		return nil
	}
	if c.Selected < 0 {
		c.Selected = 0
	} else {
		c.Selected = ((c.Selected+delta)%n + n) % n
	}
	return c.Bodies[c.Selected]
}

// SelectedBody returns the selected body or nil
func (c *Context) SelectedBody() *components.Body {
	if c.Selected < 0 || c.Selected >= len(c.Bodies) {
		return nil
	}
	return c.Bodies[c.Selected]
}

// StepSpeed changes the selected body's speed by n slider steps
func (c *Context) StepSpeed(n int) (*components.Body, error) {
	b := c.SelectedBody()
	if b == nil {
		return nil, ErrNoSelection
	}
	_, err := c.SetSpeed(b.Name, b.Speed+float64(n)*c.speeds.Step)
	return b, err
}
