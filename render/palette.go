package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/simulation"
)

// Palette is the set of panel colors for one theme
// The scene itself stays on a dark sky in both themes; the theme only
// restyles the HUD and tooltip panels
type Palette struct {
	Space     components.RGB
	PanelFG   components.RGB
	PanelBG   components.RGB
	Accent    components.RGB
	Label     components.RGB
	Muted     components.RGB
	TooltipFG components.RGB
	TooltipBG components.RGB
}

var (
	darkPalette = Palette{
		Space:     components.RGB{R: 4, G: 5, B: 16},
		PanelFG:   components.RGB{R: 220, G: 220, B: 230},
		PanelBG:   components.RGB{R: 26, G: 27, B: 38},
		Accent:    components.RGB{R: 255, G: 204, B: 0},
		Label:     components.RGB{R: 235, G: 235, B: 235},
		Muted:     components.RGB{R: 130, G: 130, B: 150},
		TooltipFG: components.RGB{R: 255, G: 255, B: 255},
		TooltipBG: components.RGB{R: 50, G: 50, B: 70},
	}
	lightPalette = Palette{
		Space:     components.RGB{R: 4, G: 5, B: 16},
		PanelFG:   components.RGB{R: 20, G: 20, B: 30},
		PanelBG:   components.RGB{R: 235, G: 235, B: 240},
		Accent:    components.RGB{R: 180, G: 90, B: 0},
		Label:     components.RGB{R: 235, G: 235, B: 235},
		Muted:     components.RGB{R: 90, G: 90, B: 110},
		TooltipFG: components.RGB{R: 20, G: 20, B: 30},
		TooltipBG: components.RGB{R: 245, G: 245, B: 220},
	}
)

// PaletteFor returns the palette of a theme
func PaletteFor(t simulation.Theme) Palette {
	if t == simulation.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// Color converts an RGB to a tcell true color
func Color(c components.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend mixes a toward b in RGB space, t=0 is a and t=1 is b
func Blend(a, b components.RGB, t float64) components.RGB {
	r, g, bl := toColorful(a).BlendRgb(toColorful(b), t).Clamped().RGB255()
	return components.RGB{R: r, G: g, B: bl}
}

// Fade darkens c toward bg by perceptual lightness, used for depth cueing
func Fade(c, bg components.RGB, t float64) components.RGB {
	r, g, bl := toColorful(c).BlendLab(toColorful(bg), t).Clamped().RGB255()
	return components.RGB{R: r, G: g, B: bl}
}

func toColorful(c components.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
