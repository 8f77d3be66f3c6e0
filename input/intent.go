package input

import "github.com/lixenwraith/pulsefield/effect"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentPause      // p, Space
	IntentResize     // Terminal resize event

	// Simulation controls
	IntentEffect    // 1-5
	IntentReset     // r
	IntentClearPath // c

	// Pointer
	IntentPress   // Left button down
	IntentDrag    // Motion with left button held
	IntentRelease // Left button up after a press
	IntentHover   // Motion with no button
	IntentSpawn   // Right button down
)

// Intent is a parsed input event
type Intent struct {
	Type     IntentType
	Effect   effect.ID // IntentEffect
	Col, Row int       // pointer intents, resize dimensions
}
