package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// canvas is a depth-tested cell grid over the scene area of the screen
// Solids (sun, bodies, meteors) are depth tested against each other;
// orbits and stars only fill cells no solid covers
type canvas struct {
	screen tcell.Screen
	width  int
	height int
	depth  []float64
}

func (c *canvas) reset(screen tcell.Screen, width, height int) {
	c.screen = screen
	c.width = width
	c.height = height
	n := width * height
	if cap(c.depth) < n {
		c.depth = make([]float64, n)
	}
	c.depth = c.depth[:n]
	for i := range c.depth {
		c.depth[i] = math.Inf(1)
	}
}

// plot draws r at (x, y) if nothing nearer was drawn there
func (c *canvas) plot(x, y int, depth float64, r rune, style tcell.Style) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	i := y*c.width + x
	if depth > c.depth[i] {
		return false
	}
	c.depth[i] = depth
	c.screen.SetContent(x, y, r, nil, style)
	return true
}

// backdrop marks cells taken by background layers, nearer than empty space
// and farther than any solid
const backdrop = math.MaxFloat64

// plotBackground draws r only on a cell nothing else occupies
func (c *canvas) plotBackground(x, y int, r rune, style tcell.Style) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	i := y*c.width + x
	if c.depth[i] <= backdrop {
		return false
	}
	c.depth[i] = backdrop
	c.screen.SetContent(x, y, r, nil, style)
	return true
}

// line plots a background DDA line between two cell positions
func (c *canvas) line(x0, y0, x1, y1 float64, r rune, style tcell.Style) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	// Segments spanning more than a screen are clipped by plot, cap the walk
	if limit := 2 * (c.width + c.height); steps > limit {
		steps = limit
	}
	if steps == 0 {
		c.plotBackground(int(math.Floor(x0)), int(math.Floor(y0)), r, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + (x1-x0)*t
		y := y0 + (y1-y0)*t
		c.plotBackground(int(math.Floor(x)), int(math.Floor(y)), r, style)
	}
}

// text writes s starting at (x, y) without depth testing, returns columns used
func (c *canvas) text(x, y int, s string, style tcell.Style) int {
	return drawText(c.screen, x, y, c.width, s, style)
}

// drawText writes s clipped to [0, maxX), honoring wide runes
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > maxX {
			break
		}
		if col >= 0 {
			screen.SetContent(col, y, r, nil, style)
		}
		col += w
	}
	return col - x
}
