package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event
	IntentReload // r

	// Hero actions
	IntentJoin // Enter, or a click on the join button

	// Pointer
	IntentPointerEnter // Focus gained or first motion after leaving
	IntentPointerLeave // Focus lost
	IntentPointerMove  // Motion, X and Y in percent of the screen
	IntentClick        // Left button press, Col and Row in cells
)

// String returns the intent name for logs
func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "none"
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentReload:
		return "reload"
	case IntentJoin:
		return "join"
	case IntentPointerEnter:
		return "pointer-enter"
	case IntentPointerLeave:
		return "pointer-leave"
	case IntentPointerMove:
		return "pointer-move"
	case IntentClick:
		return "click"
	default:
		return "unknown"
	}
}

// Intent is a parsed event
type Intent struct {
	Type IntentType

	// Pointer position in percent of the screen
	X, Y float64

	// Pointer position in cells
	Col, Row int
}
