package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pulsefield/effect"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Effect     effect.ID
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]KeyEntry
	Runes       map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyCtrlQ:  {IntentType: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			'm': {IntentType: IntentToggleMute},
			'p': {IntentType: IntentPause},
			' ': {IntentType: IntentPause},
			'r': {IntentType: IntentReset},
			'c': {IntentType: IntentClearPath},
		},
	}
	for id := effect.MinID; id <= effect.MaxID; id++ {
		kt.Runes['0'+rune(id)] = KeyEntry{IntentType: IntentEffect, Effect: id}
	}
	return kt
}

// Clone returns a deep copy for per-session rebinding
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}
