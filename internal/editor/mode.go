package editor

import (
	"fmt"
	"strings"
)

// Mode decides how pointer events are interpreted
type Mode int

const (
	ModeDraw Mode = iota
	ModeMove
	ModeEditVertex
	ModeExtrude
)

// Modes lists every mode in control panel order
func Modes() []Mode {
	return []Mode{ModeDraw, ModeMove, ModeEditVertex, ModeExtrude}
}

func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "draw"
	case ModeMove:
		return "move"
	case ModeEditVertex:
		return "edit-vertex"
	case ModeExtrude:
		return "extrude"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Label returns the name shown on buttons
func (m Mode) Label() string {
	switch m {
	case ModeDraw:
		return "Draw"
	case ModeMove:
		return "Move"
	case ModeEditVertex:
		return "Edit Vertex"
	case ModeExtrude:
		return "Extrude"
	}
	return m.String()
}

// ParseMode accepts the String form; underscores and missing dashes are tolerated
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "draw":
		return ModeDraw, nil
	case "move":
		return ModeMove, nil
	case "edit-vertex", "edit_vertex", "editvertex":
		return ModeEditVertex, nil
	case "extrude":
		return ModeExtrude, nil
	}
	return ModeDraw, fmt.Errorf("unknown mode %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
