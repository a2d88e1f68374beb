package editor

import (
	"strings"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

// KeyDown handles the axis lock keys x, y and z during a Move drag, and
// Escape
func (e *Editor) KeyDown(ev KeyEvent) {
	key := strings.ToLower(ev.Key)

	if key == keyEscape {
		if e.axisLocked {
			e.axisLocked = false
			return
		}
		if e.mode == ModeDraw {
			e.discardPending()
		}
		return
	}

	axis, ok := geometry.ParseAxis(key)
	if !ok || e.mode != ModeMove || !e.dragging {
		return
	}
	if e.axisLocked && e.axis == axis {
		e.axisLocked = false
		e.log.Debug("axis lock released", "axis", axis)
		return
	}
	e.axis = axis
	e.axisLocked = true
	e.log.Debug("axis locked", "axis", axis)
}
