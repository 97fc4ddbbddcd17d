// Package viewer provides the interactive layout browser.
package viewer

// Mode represents what the viewer is showing.
type Mode int

const (
	// ModeMap shows the grid with a cursor.
	ModeMap Mode = iota
	// ModeList shows the rooms in traversal order.
	ModeList
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMap:
		return "map"
	case ModeList:
		return "list"
	default:
		return "unknown"
	}
}

// Next returns the mode tab switches to.
func (m Mode) Next() Mode {
	if m == ModeMap {
		return ModeList
	}
	return ModeMap
}
