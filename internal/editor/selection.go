package editor

import (
	"image/color"

	"github.com/philipparndt/goextrude/internal/scene"
	"github.com/philipparndt/goextrude/pkg/geometry"
)

// Tracker remembers the picked object together with the color and
// position it had before the interaction, so both can be restored.
// Fixed objects are never tinted or moved.
type Tracker struct {
	highlight color.RGBA

	selected   scene.Object
	original   color.RGBA
	tinted     bool
	preDrag    geometry.Vector3
	hasPreDrag bool
}

// NewTracker creates a tracker that tints selections with highlight
func NewTracker(highlight color.RGBA) *Tracker {
	return &Tracker{highlight: highlight}
}

// SetHighlight changes the tint used by later selections
func (t *Tracker) SetHighlight(c color.RGBA) { t.highlight = c }

// Select makes obj the current selection, restoring any previous one.
// With recordPosition set the pre-drag world position of a movable object
// is kept as well.
func (t *Tracker) Select(obj scene.Object, recordPosition bool) {
	t.Deselect()
	if obj == nil {
		return
	}
	t.selected = obj
	t.original = obj.Color()
	if _, ok := obj.(scene.Movable); ok && recordPosition && obj.Kind() != scene.KindFixed {
		t.preDrag = obj.Position()
		t.hasPreDrag = true
	}
}

// Highlight tints the current selection
func (t *Tracker) Highlight() {
	if t.selected == nil || t.selected.Kind() == scene.KindFixed {
		return
	}
	t.selected.SetColor(t.highlight)
	t.tinted = true
}

// Deselect restores the recorded color and forgets the selection
func (t *Tracker) Deselect() {
	if t.selected != nil && t.tinted {
		t.selected.SetColor(t.original)
	}
	t.selected = nil
	t.tinted = false
	t.hasPreDrag = false
	t.preDrag = geometry.Vector3{}
}

// Current returns the selected object or nil
func (t *Tracker) Current() scene.Object { return t.selected }

// PreDragPosition returns the position recorded by Select
func (t *Tracker) PreDragPosition() (geometry.Vector3, bool) {
	return t.preDrag, t.hasPreDrag
}
