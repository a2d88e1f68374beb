package editor

import (
	"math"

	"github.com/samber/lo"

	"github.com/philipparndt/goextrude/internal/scene"
	"github.com/philipparndt/goextrude/pkg/geometry"
)

// PointerDown places control points, closes outlines, starts drags and
// extrudes, depending on mode and button
func (e *Editor) PointerDown(ev PointerEvent) {
	hits := e.display.Raycast(ev.X, ev.Y)
	if len(hits) == 0 {
		e.log.Debug("pointer down ignored", "error", ErrEmptyHit, "x", ev.X, "y", ev.Y)
		return
	}
	if e.dragging {
		// a second button went down mid-drag. A committed vertex edit swaps
		// markers, so cast again.
		e.finishInteraction()
		if hits = e.display.Raycast(ev.X, ev.Y); len(hits) == 0 {
			return
		}
	}
	e.lastHits = hits
	nearest := hits[0]

	record := e.mode == ModeMove || e.mode == ModeEditVertex
	e.tracker.Select(nearest.Object, record)

	switch {
	case ev.Buttons.Has(ButtonPrimary):
		e.primaryDown(nearest)
	case ev.Buttons.Has(ButtonSecondary):
		e.secondaryDown()
	}
}

func (e *Editor) primaryDown(hit scene.Hit) {
	kind := hit.Object.Kind()

	switch e.mode {
	case ModeDraw:
		if kind != scene.KindFixed {
			return
		}
		cp := e.factory.MakeControlPoint(hit.Point)
		e.pending = append(e.pending, cp)
		e.display.Insert(cp)
		e.log.Debug("control point placed", "id", cp.ID(), "position", hit.Point, "pending", len(e.pending))

	case ModeMove:
		if kind.IsPolygon() {
			e.startDrag(hit)
		}

	case ModeEditVertex:
		if kind == scene.KindControlPoint {
			e.startDrag(hit)
		}

	case ModeExtrude:
		// markers are not extrusion targets, even when they sit on a polygon
		poly, ok := hit.Object.(*scene.Polygon)
		if !ok {
			return
		}
		e.tracker.Highlight()
		e.extrude(poly)
		// the polygon is gone from the display now
		e.tracker.Deselect()
	}
}

func (e *Editor) secondaryDown() {
	if e.mode != ModeDraw {
		return
	}
	e.tracker.Deselect()
	e.closeOutline()
}

func (e *Editor) startDrag(hit scene.Hit) {
	e.tracker.Highlight()

	offset := hit.Point.Sub(hit.Object.Position())
	offset.Y = 0
	e.dragOffset = offset
	e.dragging = true
	e.display.SetControlsEnabled(false)
}

// PointerMove drags the selection along the surface under the pointer
func (e *Editor) PointerMove(ev PointerEvent) {
	e.lastHits = e.display.Raycast(ev.X, ev.Y)
	if !e.dragging {
		return
	}

	obj, ok := e.tracker.Current().(scene.Movable)
	if !ok {
		return
	}
	hit, ok := dragSurface(e.lastHits, obj)
	if !ok {
		return
	}

	candidate := hit.Point.Sub(e.dragOffset)
	candidate.Y = math.Max(0, candidate.Y)

	if e.axisLocked && e.mode == ModeMove {
		if pre, ok := e.tracker.PreDragPosition(); ok {
			candidate = candidate.WithComponent(e.axis, pre.Component(e.axis))
		}
	}
	obj.SetPosition(candidate)
}

// dragSurface returns the nearest hit that is neither the dragged object
// nor one of the dragged polygon's own markers
func dragSurface(hits []scene.Hit, dragged scene.Object) (scene.Hit, bool) {
	poly, _ := dragged.(*scene.Polygon)
	return lo.Find(hits, func(h scene.Hit) bool {
		if h.Object.ID() == dragged.ID() {
			return false
		}
		if cp, ok := h.Object.(*scene.ControlPoint); ok && poly != nil && cp.Owner() == poly {
			return false
		}
		return true
	})
}

// PointerUp ends the interaction. In EditVertex mode a dragged marker is
// replaced and its polygon's vertex is rewritten.
func (e *Editor) PointerUp(ev PointerEvent) {
	e.finishInteraction()
}

func (e *Editor) commitVertex(old *scene.ControlPoint) {
	poly := old.Owner()
	if poly == nil {
		return
	}

	repl := e.factory.MakeControlPoint(old.Position())
	idx, err := poly.ReplaceControlPoint(old, repl)
	if err != nil {
		e.log.Warn("vertex edit failed", "polygon", poly.ID(), "error", err)
		return
	}
	e.display.Remove(old)
	e.display.Insert(repl)

	e.log.Info("vertex edited",
		"polygon", poly.ID(),
		"index", idx,
		"position", repl.Position())
}

func (e *Editor) closeOutline() {
	n := len(e.pending)
	if n < geometry.MinPolygonPoints {
		e.log.Debug("outline not closed", "error", &geometry.InsufficientPointsError{Count: n})
		return
	}

	positions := lo.Map(e.pending, func(cp *scene.ControlPoint, _ int) geometry.Vector3 {
		return cp.Position()
	})
	mesh, err := geometry.BuildFlat(positions)
	if err != nil {
		e.log.Debug("outline not closed", "error", err)
		return
	}

	poly := e.factory.MakeFlatPolygon(geometry.Vector3{}, e.pending, mesh.Vertices, mesh.Indices)
	e.display.Insert(poly)
	e.pending = nil

	e.log.Info("polygon closed",
		"polygon", poly.ID(),
		"points", n,
		"triangles", mesh.TriangleCount())
}

// extrude replaces poly with a solid of the current height built over its
// base ring. Extruded polygons are rebuilt from their lower ring.
func (e *Editor) extrude(poly *scene.Polygon) {
	base := poly.BaseRing()
	points, mesh, err := geometry.BuildExtruded(poly.Outline(), e.height, e.capBottom)
	if err != nil {
		e.log.Debug("extrusion refused", "polygon", poly.ID(), "error", err)
		return
	}

	origin := poly.Position()
	markers := append([]*scene.ControlPoint(nil), base...)
	var upper []*scene.ControlPoint
	for _, p := range points[len(base):] {
		cp := e.factory.MakeControlPoint(origin.Add(p))
		markers = append(markers, cp)
		upper = append(upper, cp)
	}

	e.removePolygon(poly, base)
	solid := e.factory.MakeExtrudedPolygon(origin, markers, mesh.Vertices, mesh.Indices)
	e.display.Insert(solid)
	for _, cp := range upper {
		e.display.Insert(cp)
	}

	e.log.Info("polygon extruded",
		"from", poly.ID(),
		"polygon", solid.ID(),
		"height", e.height,
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount())
}
