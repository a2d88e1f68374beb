package editor

// ButtonMask follows the DOM MouseEvent.buttons convention
type ButtonMask int

const (
	ButtonPrimary ButtonMask = 1 << iota
	ButtonSecondary
	ButtonAuxiliary
)

// Has reports whether b is pressed
func (m ButtonMask) Has(b ButtonMask) bool { return m&b != 0 }

// PointerEvent carries a screen position in pixels and the pressed buttons
type PointerEvent struct {
	X, Y    float64
	Buttons ButtonMask
}

// KeyEvent carries the key identifier, e.g. "x" or "Escape"
type KeyEvent struct {
	Key string
}

const keyEscape = "escape"
