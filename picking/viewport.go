package picking

// Point is a pointer position in surface units (pixels or terminal cells)
type Point struct {
	X, Y float64
}

// Viewport is the render surface rectangle the camera projects into
type Viewport struct {
	Left, Top     float64
	Width, Height float64

	// PixelAspect is the height/width ratio of one surface unit
	// Terminal cells are about twice as tall as wide; 0 means square
	PixelAspect float64
}

// Empty reports whether the viewport has no area
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Contains reports whether p lies on the surface
func (v Viewport) Contains(p Point) bool {
	if v.Empty() {
		return false
	}
	return p.X >= v.Left && p.X < v.Left+v.Width &&
		p.Y >= v.Top && p.Y < v.Top+v.Height
}

// Aspect returns the width/height ratio in square units, the camera aspect
func (v Viewport) Aspect() float64 {
	if v.Empty() {
		return 1
	}
	pa := v.PixelAspect
	if pa <= 0 {
		pa = 1
	}
	return v.Width / (v.Height * pa)
}

// ToNDC maps a surface point to normalized device coordinates, +y up
func (v Viewport) ToNDC(p Point) (x, y float64) {
	x = ((p.X-v.Left)/v.Width)*2 - 1
	y = -((p.Y-v.Top)/v.Height)*2 + 1
	return x, y
}

// FromNDC is the inverse of ToNDC
func (v Viewport) FromNDC(x, y float64) Point {
	return Point{
		X: v.Left + (x+1)/2*v.Width,
		Y: v.Top + (1-y)/2*v.Height,
	}
}
