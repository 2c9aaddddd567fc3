package editor

// Mode represents the current editing mode.
type Mode int

const (
	ModeNormal   Mode = iota // Select, drag, delete
	ModeDrawWire             // Two-click wire placement
	ModeDrag                 // A reroute session is attached
)

// String returns the mode name for display.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeDrawWire:
		return "WIRE"
	case ModeDrag:
		return "DRAG"
	default:
		return "UNKNOWN"
	}
}
