package constants

// Layout
const (
	// HUDRows are reserved at the bottom of the screen for the status and help lines
	HUDRows = 2

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0

	// TooltipOffset shifts the hover tooltip away from the pointer
	TooltipOffsetX = 2
	TooltipOffsetY = 1

	// OrbitSegments is the number of points plotted per orbit ring
	OrbitSegments = 100

	// StarCount is the number of background stars
	StarCount = 1000

	// StarSpread is the edge length of the cube stars are scattered in
	StarSpread = 600.0
)

// Input
const (
	// ClickSlop is the maximum pointer travel in cells between press and
	// release for the gesture to count as a click instead of a drag
	ClickSlop = 1
)

// Scene colors not taken from the body table
const (
	MeteorColor = 0xff5500
	StarColor   = 0xffffff

	// OrbitOpacity is the blend of a ring toward the background
	OrbitOpacity = 0.5

	// LabelLift raises body labels above the orbital plane, in world units
	LabelLift = 2.5
)
