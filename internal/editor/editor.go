// Package editor turns pointer and key events into polygon edits.
//
// An Editor owns all interaction state. It talks to the rendering side only
// through the Display interface, so it runs the same against the raylib
// window and the headless scene.
package editor

import (
	"errors"
	"image/color"
	"io"
	"log/slog"
	"slices"

	"github.com/philipparndt/goextrude/internal/scene"
	"github.com/philipparndt/goextrude/pkg/geometry"
)

var (
	// ErrEmptyHit is reported when nothing is under the pointer
	ErrEmptyHit = errors.New("no object under pointer")
	// ErrInvalidHeight is returned for non-positive extrusion heights
	ErrInvalidHeight = errors.New("extrusion height must be positive")
)

// DefaultExtrusionHeight is used unless configured
const DefaultExtrusionHeight = 5.0

// Display is the rendering side as seen by the editor
type Display interface {
	// Raycast returns the objects under a screen position, nearest first
	Raycast(x, y float64) []scene.Hit
	Insert(obj scene.Object)
	Remove(obj scene.Object)
	// SetControlsEnabled suspends camera navigation while dragging
	SetControlsEnabled(enabled bool)
}

// Resizer is implemented by displays that track the viewport size
type Resizer interface {
	Resize(width, height int)
}

// Editor is the interaction state machine
type Editor struct {
	display Display
	factory *scene.Factory
	tracker *Tracker
	log     *slog.Logger

	mode      Mode
	height    float64
	capBottom bool

	pending    []*scene.ControlPoint
	lastHits   []scene.Hit
	dragOffset geometry.Vector3
	dragging   bool
	axis       geometry.Axis
	axisLocked bool
}

// Option configures an Editor
type Option func(*Editor)

// WithLogger sets the logger; the default discards everything
func WithLogger(log *slog.Logger) Option {
	return func(e *Editor) { e.log = log }
}

// WithExtrusionHeight sets the initial height; non-positive values are ignored
func WithExtrusionHeight(h float64) Option {
	return func(e *Editor) {
		if h > 0 {
			e.height = h
		}
	}
}

// WithCapBottom controls whether extruded solids get a bottom face
func WithCapBottom(capBottom bool) Option {
	return func(e *Editor) { e.capBottom = capBottom }
}

// WithMode sets the initial mode
func WithMode(m Mode) Option {
	return func(e *Editor) { e.mode = m }
}

// WithHighlight sets the selection tint
func WithHighlight(c color.RGBA) Option {
	return func(e *Editor) { e.tracker.SetHighlight(c) }
}

// DefaultHighlight is the selection tint used unless configured
var DefaultHighlight = color.RGBA{R: 255, G: 255, A: 255}

// New creates an editor in Draw mode
func New(display Display, factory *scene.Factory, opts ...Option) *Editor {
	e := &Editor{
		display:   display,
		factory:   factory,
		tracker:   NewTracker(DefaultHighlight),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		mode:      ModeDraw,
		height:    DefaultExtrusionHeight,
		capBottom: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the current mode
func (e *Editor) Mode() Mode { return e.mode }

// SetMode switches mode. Leaving Draw discards the outline being drawn and
// a vertex drag in progress is committed first. Setting the current mode
// again does nothing.
func (e *Editor) SetMode(m Mode) {
	if m == e.mode {
		return
	}
	prev := e.mode
	e.finishInteraction()
	e.mode = m
	if prev == ModeDraw {
		e.discardPending()
	}
	e.log.Debug("mode changed", "from", prev, "to", m)
}

// ExtrusionHeight returns the height used by the next extrusion
func (e *Editor) ExtrusionHeight() float64 { return e.height }

// SetExtrusionHeight changes the height used by later extrusions
func (e *Editor) SetExtrusionHeight(h float64) error {
	if h <= 0 {
		return ErrInvalidHeight
	}
	e.height = h
	return nil
}

// CapBottom reports whether extrusions get a bottom face
func (e *Editor) CapBottom() bool { return e.capBottom }

// SetCapBottom changes whether later extrusions get a bottom face
func (e *Editor) SetCapBottom(capBottom bool) { e.capBottom = capBottom }

// SetHighlight changes the selection tint
func (e *Editor) SetHighlight(c color.RGBA) { e.tracker.SetHighlight(c) }

// PendingPoints returns the markers of the outline being drawn
func (e *Editor) PendingPoints() []*scene.ControlPoint {
	return slices.Clone(e.pending)
}

// Selection returns the selected object or nil
func (e *Editor) Selection() scene.Object { return e.tracker.Current() }

// LastHits returns the hits of the latest raycast, nearest first
func (e *Editor) LastHits() []scene.Hit {
	return slices.Clone(e.lastHits)
}

// AxisLock returns the locked axis while a constraint is active
func (e *Editor) AxisLock() (geometry.Axis, bool) {
	return e.axis, e.axisLocked
}

// Dragging reports whether a drag is in progress
func (e *Editor) Dragging() bool { return e.dragging }

// Resize forwards a viewport change to the display
func (e *Editor) Resize(width, height int) {
	if r, ok := e.display.(Resizer); ok {
		r.Resize(width, height)
	}
}

// discardPending removes the unfinished outline from the display
func (e *Editor) discardPending() {
	if len(e.pending) == 0 {
		return
	}
	for _, cp := range e.pending {
		e.display.Remove(cp)
	}
	e.log.Debug("outline discarded", "points", len(e.pending))
	e.pending = nil
}

// endInteraction restores the selection and resumes camera controls
func (e *Editor) endInteraction() {
	if e.dragging {
		e.display.SetControlsEnabled(true)
	}
	e.tracker.Deselect()
	e.dragging = false
	e.dragOffset = geometry.Vector3{}
	e.axisLocked = false
}

// finishInteraction ends the interaction like a pointer-up: a marker
// dragged in EditVertex mode is written back to its polygon
func (e *Editor) finishInteraction() {
	released := e.tracker.Current()
	editing := e.dragging && e.mode == ModeEditVertex

	e.endInteraction()

	if !editing {
		return
	}
	if cp, ok := released.(*scene.ControlPoint); ok {
		e.commitVertex(cp)
	}
}

// removePolygon takes a polygon and its markers out of the display,
// keeping the markers listed in keep
func (e *Editor) removePolygon(p *scene.Polygon, keep []*scene.ControlPoint) {
	e.display.Remove(p)
	for _, cp := range p.ControlPoints() {
		if !slices.Contains(keep, cp) {
			e.display.Remove(cp)
		}
	}
}
