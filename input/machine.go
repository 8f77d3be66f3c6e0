package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into intents
// Tracks the left button so motion can be classified as drag or hover
type Machine struct {
	keyTable *KeyTable
	down     bool
	col, row int
}

func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// Pressed reports whether the left button is held
func (m *Machine) Pressed() bool {
	return m.down
}

// Process translates one event
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if e, ok := m.keyTable.Lookup(ev); ok {
			return Intent{Type: e.IntentType, Effect: e.Effect}
		}
	case *tcell.EventMouse:
		return m.mouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Col: w, Row: h}
	}
	return Intent{}
}

func (m *Machine) mouse(ev *tcell.EventMouse) Intent {
	col, row := ev.Position()
	btn := ev.Buttons()
	left := btn&tcell.Button1 != 0
	moved := col != m.col || row != m.row
	m.col, m.row = col, row

	switch {
	case left && !m.down:
		m.down = true
		return Intent{Type: IntentPress, Col: col, Row: row}
	case left:
		if !moved {
			return Intent{}
		}
		return Intent{Type: IntentDrag, Col: col, Row: row}
	case m.down:
		m.down = false
		return Intent{Type: IntentRelease, Col: col, Row: row}
	case btn&tcell.Button2 != 0:
		return Intent{Type: IntentSpawn, Col: col, Row: row}
	case moved:
		return Intent{Type: IntentHover, Col: col, Row: row}
	}
	return Intent{}
}
