package input

// IntentType discriminates user actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Pointer
	IntentPointerMove  // Motion without a held button, or a drag release
	IntentPointerDown  // Left button pressed, not yet a click or a drag
	IntentPointerClick // Left press and release within ClickSlop
	IntentOrbit        // Left drag or arrow keys
	IntentZoom         // Wheel or PgUp/PgDn

	// Simulation
	IntentPauseToggle
	IntentThemeToggle
	IntentSelect    // Tab, Shift+Tab
	IntentSpeedStep // +, -
	IntentFly       // f, Enter
)

// Intent is a parsed user action
// X, Y carry the pointer cell for pointer intents and the orbit delta for
// IntentOrbit; Count carries zoom notches, selection and speed steps
type Intent struct {
	Type  IntentType
	X, Y  int
	Count int
}
