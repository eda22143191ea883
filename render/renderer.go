package render

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/picking"
	"github.com/lixenwraith/orrery/simulation"
	"github.com/lixenwraith/orrery/vmath"
)

// Glyphs
const (
	glyphStar   = '.'
	glyphOrbit  = '·'
	glyphBody   = '●'
	glyphFill   = '█'
	glyphMeteor = '*'
	glyphSun    = '☼'
)

// bodyVisual is the per-body render state stored in Body.Handle
type bodyVisual struct {
	color components.RGB
	ring  []vmath.Vec3
	label string
}

// TerminalRenderer draws the scene with perspective projection onto a tcell screen
// The bottom HUDRows rows hold the status and help lines
type TerminalRenderer struct {
	screen tcell.Screen
	stars  []vmath.Vec3
	canvas canvas

	width  int
	height int
}

// NewTerminalRenderer scatters the starfield from rng and binds the screen
func NewTerminalRenderer(screen tcell.Screen, rng *rand.Rand) *TerminalRenderer {
	half := constants.StarSpread / 2
	stars := make([]vmath.Vec3, constants.StarCount)
	for i := range stars {
		stars[i] = vmath.V3(
			vmath.RandRange(rng, -half, half),
			vmath.RandRange(rng, -half, half),
			vmath.RandRange(rng, -half, half),
		)
	}
	r := &TerminalRenderer{screen: screen, stars: stars}
	r.width, r.height = screen.Size()
	return r
}

// Resize re-reads the screen size, called on tcell resize events
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// Viewport returns the scene rectangle in cells
func (r *TerminalRenderer) Viewport() picking.Viewport {
	h := r.height - constants.HUDRows
	if h < 0 {
		h = 0
	}
	return picking.Viewport{
		Width:       float64(r.width),
		Height:      float64(h),
		PixelAspect: constants.CellAspect,
	}
}

// Render draws one frame and shows it
func (r *TerminalRenderer) Render(scene *simulation.Scene, cam *camera.Camera) {
	vp := r.Viewport()
	pal := PaletteFor(scene.Theme)
	space := tcell.StyleDefault.Background(Color(pal.Space))

	r.screen.Fill(' ', space)
	r.canvas.reset(r.screen, int(vp.Width), int(vp.Height))

	if !vp.Empty() {
		p := projector{cam: cam, vp: vp}
		r.drawSun(p, scene.Sun, space)
		r.drawBodies(p, scene, space)
		r.drawMeteors(p, scene, space)
		r.drawOrbits(p, scene, pal, space)
		r.drawStars(p, pal, space)
		r.drawLabels(p, scene, pal, space)
		r.drawTooltip(scene.Hover, pal)
	}
	r.drawHUD(scene, pal)

	r.screen.Show()
}

// projector maps world points to fractional cell positions
type projector struct {
	cam *camera.Camera
	vp  picking.Viewport
}

func (p projector) project(w vmath.Vec3) (x, y, depth float64, ok bool) {
	nx, ny, depth, ok := p.cam.Project(w)
	if !ok {
		return 0, 0, depth, false
	}
	pt := p.vp.FromNDC(nx, ny)
	return pt.X, pt.Y, depth, true
}

// radius returns a sphere's on-screen half extent in rows and columns
func (p projector) radius(r, depth float64) (rows, cols float64) {
	ndc := p.cam.ProjectedRadius(r, depth)
	rows = ndc * p.vp.Height / 2
	cols = rows * p.vp.PixelAspect
	if p.vp.PixelAspect <= 0 {
		cols = rows
	}
	return rows, cols
}

func (r *TerminalRenderer) drawStars(p projector, pal Palette, space tcell.Style) {
	far := p.cam.Far
	for _, s := range r.stars {
		x, y, depth, ok := p.project(s)
		if !ok {
			continue
		}
		c := Fade(components.RGBFromHex(constants.StarColor), pal.Space, vmath.Clamp(depth/far, 0, 0.85))
		r.canvas.plotBackground(int(math.Floor(x)), int(math.Floor(y)), glyphStar, space.Foreground(Color(c)))
	}
}

func (r *TerminalRenderer) drawOrbits(p projector, scene *simulation.Scene, pal Palette, space tcell.Style) {
	for _, b := range scene.Bodies {
		v := visualOf(b)
		style := space.Foreground(Color(Blend(v.color, pal.Space, constants.OrbitOpacity)))

		var px, py float64
		prevOK := false
		for _, w := range v.ring {
			x, y, _, ok := p.project(w)
			if ok && prevOK {
				r.canvas.line(px, py, x, y, glyphOrbit, style)
			}
			px, py, prevOK = x, y, ok
		}
	}
}

func (r *TerminalRenderer) drawSun(p projector, sun simulation.Sun, space tcell.Style) {
	r.drawSphere(p, vmath.Vec3{}, sun.Radius, glyphSun, space.Foreground(Color(sun.Color)))
}

func (r *TerminalRenderer) drawBodies(p projector, scene *simulation.Scene, space tcell.Style) {
	for _, b := range scene.Bodies {
		style := space.Foreground(Color(b.Color))
		if b == scene.Selected {
			style = style.Bold(true)
		}
		r.drawSphere(p, b.Position, b.Radius, glyphBody, style)
	}
}

func (r *TerminalRenderer) drawMeteors(p projector, scene *simulation.Scene, space tcell.Style) {
	style := space.Foreground(Color(components.RGBFromHex(constants.MeteorColor)))
	for _, m := range scene.Meteors {
		r.drawSphere(p, m.Position, scene.MeteorRadius, glyphMeteor, style)
	}
}

// drawSphere fills the projected disc, or a single glyph when under one cell
func (r *TerminalRenderer) drawSphere(p projector, center vmath.Vec3, radius float64, small rune, style tcell.Style) {
	cx, cy, depth, ok := p.project(center)
	if !ok {
		return
	}
	rows, cols := p.radius(radius, depth)
	if rows < 0.75 {
		r.canvas.plot(int(math.Floor(cx)), int(math.Floor(cy)), depth-radius, small, style)
		return
	}

	for y := int(math.Floor(cy - rows)); y <= int(math.Ceil(cy+rows)); y++ {
		dy := (float64(y) + 0.5 - cy) / rows
		if dy*dy > 1 {
			continue
		}
		for x := int(math.Floor(cx - cols)); x <= int(math.Ceil(cx+cols)); x++ {
			dx := (float64(x) + 0.5 - cx) / cols
			if dx*dx+dy*dy > 1 {
				continue
			}
			// Nearer toward the disc center
			d := depth - radius*math.Sqrt(1-dx*dx-dy*dy)
			r.canvas.plot(x, y, d, glyphFill, style)
		}
	}
}

func (r *TerminalRenderer) drawLabels(p projector, scene *simulation.Scene, pal Palette, space tcell.Style) {
	for _, b := range scene.Bodies {
		v := visualOf(b)
		_, cy, depth, ok := p.project(b.Position)
		if !ok {
			continue
		}
		x, ly, _, ok := p.project(vmath.V3Add(b.Position, vmath.V3(0, b.Radius+constants.LabelLift, 0)))
		if !ok {
			continue
		}
		// Never on top of the body itself
		rows, _ := p.radius(b.Radius, depth)
		row := int(math.Floor(ly))
		if top := int(math.Floor(cy-rows)) - 1; row > top {
			row = top
		}
		style := space.Foreground(Color(pal.Label))
		label := v.label
		if b == scene.Selected {
			style = space.Foreground(Color(pal.Accent)).Bold(true)
			label = "[" + label + "]"
		}
		col := int(x) - runewidth.StringWidth(label)/2
		if row >= 0 && row < r.canvas.height {
			r.canvas.text(col, row, label, style)
		}
	}
}

func (r *TerminalRenderer) drawTooltip(h simulation.Hover, pal Palette) {
	if !h.Visible {
		return
	}
	text := " " + h.Name + " "
	w := runewidth.StringWidth(text)
	x := int(h.X) + constants.TooltipOffsetX
	y := int(h.Y) + constants.TooltipOffsetY

	// Keep the tooltip inside the scene area
	if x+w > r.canvas.width {
		x = r.canvas.width - w
	}
	if x < 0 {
		x = 0
	}
	if y >= r.canvas.height {
		y = r.canvas.height - 1
	}
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(Color(pal.TooltipFG)).Background(Color(pal.TooltipBG))
	r.canvas.text(x, y, text, style)
}

func (r *TerminalRenderer) drawHUD(scene *simulation.Scene, pal Palette) {
	top := r.height - constants.HUDRows
	if top < 0 {
		return
	}
	panel := tcell.StyleDefault.Foreground(Color(pal.PanelFG)).Background(Color(pal.PanelBG))
	accent := panel.Foreground(Color(pal.Accent)).Bold(true)
	muted := panel.Foreground(Color(pal.Muted))

	for row := top; row < r.height; row++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, row, ' ', nil, panel)
		}
	}

	state := "RUNNING"
	if scene.Paused {
		state = "PAUSED"
	}
	col := drawText(r.screen, 1, top, r.width, state, accent)
	col++

	status := ""
	if b := scene.Selected; b != nil {
		status = fmt.Sprintf("  %s  speed %.3f", b.Name, b.Speed)
	}
	if scene.Flight == camera.Flying {
		status += fmt.Sprintf("  → %s", scene.FlightBody)
	}
	status += "  " + scene.Theme.String()
	drawText(r.screen, 1+col, top, r.width, status, panel)

	if top+1 < r.height {
		help := "drag orbit  wheel zoom  click fly  Tab select  +/- speed  f fly  space pause  t theme  q quit"
		drawText(r.screen, 1, top+1, r.width, help, muted)
	}
}

// visualOf returns the render state of a body, building it on first use
func visualOf(b *components.Body) *bodyVisual {
	if v, ok := b.Handle.(*bodyVisual); ok && v.color == b.Color {
		return v
	}
	ring := make([]vmath.Vec3, constants.OrbitSegments+1)
	for i := range ring {
		a := vmath.TwoPi * float64(i) / float64(constants.OrbitSegments)
		ring[i] = components.OrbitPosition(a, b.Distance)
	}
	v := &bodyVisual{color: b.Color, ring: ring, label: b.Name}
	b.Handle = v
	return v
}
