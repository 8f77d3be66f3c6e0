package particle

// Mode governs per-frame visual extras and one-time parameter resets
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeTrail
	ModeRainbow
	ModeGravity
	ModeSwirl
	ModePulse
	modeCount
)

var modeNames = [modeCount]string{
	ModeNormal:  "normal",
	ModeTrail:   "trail",
	ModeRainbow: "rainbow",
	ModeGravity: "gravity",
	ModeSwirl:   "swirl",
	ModePulse:   "pulse",
}

func (m Mode) String() string {
	if m >= modeCount {
		return "unknown"
	}
	return modeNames[m]
}

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m < modeCount
}

// ParseMode resolves a mode name, ok is false for unknown names
func ParseMode(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return ModeNormal, false
}
