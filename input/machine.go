package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into intents
// It tracks pointer presence and button state across events, and is not safe
// for concurrent use
type Machine struct {
	keyTable *KeyTable

	width, height int
	inside        bool
	pressed       bool
}

// NewMachine creates a machine for a screen of width by height cells
func NewMachine(width, height int) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		width:    width,
		height:   height,
	}
}

// Inside reports whether the pointer is considered over the screen
func (m *Machine) Inside() bool {
	return m.inside
}

// Percent maps a cell to percent coordinates of its centre
func Percent(col, row, width, height int) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	x := (float64(col) + 0.5) * 100 / float64(width)
	y := (float64(row) + 0.5) * 100 / float64(height)
	return x, y
}

// Process returns the intents for one event, in order
func (m *Machine) Process(ev tcell.Event) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if t := m.keyTable.Lookup(ev); t != IntentNone {
			return []Intent{{Type: t}}
		}

	case *tcell.EventResize:
		m.width, m.height = ev.Size()
		return []Intent{{Type: IntentResize}}

	case *tcell.EventFocus:
		if ev.Focused == m.inside {
			return nil
		}
		m.inside = ev.Focused
		if ev.Focused {
			return []Intent{{Type: IntentPointerEnter}}
		}
		m.pressed = false
		return []Intent{{Type: IntentPointerLeave}}

	case *tcell.EventMouse:
		return m.mouse(ev)
	}
	return nil
}

func (m *Machine) mouse(ev *tcell.EventMouse) []Intent {
	col, row := ev.Position()
	x, y := Percent(col, row, m.width, m.height)

	var out []Intent
	if !m.inside {
		m.inside = true
		out = append(out, Intent{Type: IntentPointerEnter})
	}
	out = append(out, Intent{Type: IntentPointerMove, X: x, Y: y, Col: col, Row: row})

	// Click fires on the press edge only
	down := ev.Buttons()&tcell.Button1 != 0
	if down && !m.pressed {
		out = append(out, Intent{Type: IntentClick, X: x, Y: y, Col: col, Row: row})
	}
	m.pressed = down
	return out
}
