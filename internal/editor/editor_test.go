package editor

import (
	"bytes"
	"image/color"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goextrude/internal/scene"
	"github.com/philipparndt/goextrude/pkg/geometry"
)

// topDown is a display whose screen coordinates are world x and z. Every
// pointer position casts a ray straight down from above.
type topDown struct {
	objects  []scene.Object
	controls []bool
	width    int
	height   int
}

func newTopDown(f *scene.Factory) *topDown {
	d := &topDown{}
	d.Insert(f.MakeGroundPlane())
	return d
}

func (d *topDown) Raycast(x, y float64) []scene.Hit {
	ray := geometry.NewRay(geometry.NewVector3(x, 100, y), geometry.NewVector3(0, -1, 0))
	return scene.IntersectObjects(d.objects, ray)
}

func (d *topDown) Insert(obj scene.Object) { d.objects = append(d.objects, obj) }

func (d *topDown) Remove(obj scene.Object) {
	for i, o := range d.objects {
		if o == obj {
			d.objects = append(d.objects[:i], d.objects[i+1:]...)
			return
		}
	}
}

func (d *topDown) SetControlsEnabled(enabled bool) { d.controls = append(d.controls, enabled) }

func (d *topDown) Resize(w, h int) { d.width, d.height = w, h }

func (d *topDown) contains(obj scene.Object) bool {
	for _, o := range d.objects {
		if o == obj {
			return true
		}
	}
	return false
}

func (d *topDown) polygons() []*scene.Polygon {
	var out []*scene.Polygon
	for _, o := range d.objects {
		if p, ok := o.(*scene.Polygon); ok {
			out = append(out, p)
		}
	}
	return out
}

func (d *topDown) count(kind scene.Kind) int {
	n := 0
	for _, o := range d.objects {
		if o.Kind() == kind {
			n++
		}
	}
	return n
}

func newEditor(opts ...Option) (*Editor, *topDown) {
	f := scene.NewFactory(scene.DefaultStyle())
	d := newTopDown(f)
	return New(d, f, opts...), d
}

func click(e *Editor, x, y float64, buttons ButtonMask) {
	e.PointerDown(PointerEvent{X: x, Y: y, Buttons: buttons})
	e.PointerUp(PointerEvent{X: x, Y: y})
}

func drag(e *Editor, fromX, fromY, toX, toY float64) {
	e.PointerDown(PointerEvent{X: fromX, Y: fromY, Buttons: ButtonPrimary})
	e.PointerMove(PointerEvent{X: toX, Y: toY, Buttons: ButtonPrimary})
	e.PointerUp(PointerEvent{X: toX, Y: toY})
}

var squareClicks = [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}}

func drawSquare(t *testing.T, e *Editor, d *topDown) *scene.Polygon {
	t.Helper()
	for _, p := range squareClicks {
		click(e, p[0], p[1], ButtonPrimary)
	}
	click(e, 5, 5, ButtonSecondary)

	polys := d.polygons()
	require.Len(t, polys, 1)
	return polys[0]
}

func TestDrawSquare(t *testing.T) {
	e, d := newEditor()
	poly := drawSquare(t, e, d)

	assert.Equal(t, scene.KindPolygon, poly.Kind())
	assert.Equal(t, []float64{0, 0, 0, 2, 0, 0, 2, 0, 2, 0, 0, 2}, poly.Mesh().Vertices)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, poly.Mesh().Indices)
	assert.Empty(t, e.PendingPoints())
	assert.Nil(t, e.Selection())

	// the pending markers now belong to the polygon
	assert.Equal(t, 4, d.count(scene.KindControlPoint))
	for i, cp := range poly.ControlPoints() {
		assert.Same(t, poly, cp.Owner())
		assert.True(t, d.contains(cp))
		assert.Equal(t, geometry.VertexAt(poly.Mesh().Vertices, i), cp.Position())
	}
}

func TestDrawPlacesOnlyOnFixedSurfaces(t *testing.T) {
	e, d := newEditor()
	click(e, 1, 1, ButtonPrimary)
	require.Len(t, e.PendingPoints(), 1)

	// clicking the marker itself does not add another one
	click(e, 1, 1, ButtonPrimary)
	assert.Len(t, e.PendingPoints(), 1)
	assert.Equal(t, 1, d.count(scene.KindControlPoint))
}

func TestCloseNeedsThreePoints(t *testing.T) {
	e, d := newEditor()
	click(e, 0, 0, ButtonPrimary)
	click(e, 2, 0, ButtonPrimary)
	click(e, 5, 5, ButtonSecondary)

	assert.Empty(t, d.polygons())
	assert.Len(t, e.PendingPoints(), 2)
}

func TestEmptyHitIsNoOp(t *testing.T) {
	e, d := newEditor()
	click(e, 0, 0, ButtonPrimary)
	before := len(d.objects)
	pending := e.PendingPoints()
	hits := e.LastHits()

	// outside the ground plane
	e.PointerDown(PointerEvent{X: 5000, Y: 5000, Buttons: ButtonPrimary})

	assert.Len(t, d.objects, before)
	assert.Equal(t, pending, e.PendingPoints())
	assert.Equal(t, hits, e.LastHits())
	assert.Equal(t, ModeDraw, e.Mode())
	assert.Nil(t, e.Selection())
	assert.False(t, e.Dragging())
}

func TestSetModeIdempotent(t *testing.T) {
	e, d := newEditor()
	click(e, 0, 0, ButtonPrimary)
	click(e, 2, 0, ButtonPrimary)

	e.SetMode(ModeDraw)
	assert.Len(t, e.PendingPoints(), 2)

	e.SetMode(ModeMove)
	assert.Empty(t, e.PendingPoints())
	assert.Zero(t, d.count(scene.KindControlPoint))

	e.SetMode(ModeMove)
	assert.Equal(t, ModeMove, e.Mode())
	assert.Empty(t, e.PendingPoints())
}

func TestExtrudeSquare(t *testing.T) {
	e, d := newEditor()
	poly := drawSquare(t, e, d)
	base := poly.ControlPoints()

	e.SetMode(ModeExtrude)
	click(e, 1, 1, ButtonPrimary)

	polys := d.polygons()
	require.Len(t, polys, 1)
	solid := polys[0]
	assert.False(t, d.contains(poly))
	assert.Equal(t, scene.KindExtrudedPolygon, solid.Kind())
	assert.Equal(t, 8, solid.Mesh().VertexCount())
	assert.Equal(t, 12, solid.Mesh().TriangleCount())
	assert.Equal(t, 8, d.count(scene.KindControlPoint))
	assert.Nil(t, e.Selection())

	// base markers are kept, the upper ring is 5 above
	for i, cp := range solid.ControlPoints() {
		if i < 4 {
			assert.Same(t, base[i], cp)
		} else {
			assert.Equal(t, base[i-4].Position().Add(geometry.NewVector3(0, 5, 0)), cp.Position())
		}
		assert.Same(t, solid, cp.Owner())
	}

	// the solid keeps its original color
	assert.Equal(t, scene.DefaultStyle().ExtrudedPolygonColor, solid.Color())
}

func TestReExtrudeUsesBaseRing(t *testing.T) {
	e, d := newEditor(WithCapBottom(false))
	drawSquare(t, e, d)
	e.SetMode(ModeExtrude)
	click(e, 1, 1, ButtonPrimary)

	require.NoError(t, e.SetExtrusionHeight(2))
	click(e, 1, 1, ButtonPrimary)

	polys := d.polygons()
	require.Len(t, polys, 1)
	solid := polys[0]
	assert.Equal(t, 8, solid.Mesh().VertexCount())
	assert.Equal(t, 10, solid.Mesh().TriangleCount())
	assert.InDelta(t, 2.0, geometry.VertexAt(solid.Mesh().Vertices, 4).Y, 1e-12)
	assert.Equal(t, 8, d.count(scene.KindControlPoint))
}

func TestExtrudeIgnoresNonPolygons(t *testing.T) {
	e, d := newEditor(WithMode(ModeExtrude))
	click(e, 1, 1, ButtonPrimary)
	assert.Empty(t, d.polygons())
	assert.Len(t, d.objects, 1)
}

func TestSetExtrusionHeight(t *testing.T) {
	e, _ := newEditor()
	assert.Equal(t, DefaultExtrusionHeight, e.ExtrusionHeight())
	assert.ErrorIs(t, e.SetExtrusionHeight(0), ErrInvalidHeight)
	assert.ErrorIs(t, e.SetExtrusionHeight(-1), ErrInvalidHeight)
	assert.Equal(t, DefaultExtrusionHeight, e.ExtrusionHeight())
	require.NoError(t, e.SetExtrusionHeight(3))
	assert.Equal(t, 3.0, e.ExtrusionHeight())
}

func TestMovePolygon(t *testing.T) {
	e, d := newEditor()
	poly := drawSquare(t, e, d)
	e.SetMode(ModeMove)

	e.PointerDown(PointerEvent{X: 1, Y: 1, Buttons: ButtonPrimary})
	assert.Same(t, poly, e.Selection())
	assert.True(t, e.Dragging())
	assert.Equal(t, DefaultHighlight, poly.Color())

	e.PointerMove(PointerEvent{X: 4, Y: 6, Buttons: ButtonPrimary})
	assert.Equal(t, geometry.NewVector3(3, 0, 5), poly.Position())

	e.PointerUp(PointerEvent{X: 4, Y: 6})
	assert.Nil(t, e.Selection())
	assert.False(t, e.Dragging())
	assert.Equal(t, scene.DefaultStyle().PolygonColor, poly.Color())

	// markers follow, the buffer stays local
	assert.Equal(t, geometry.NewVector3(5, 0, 5), poly.ControlPoints()[1].Position())
	assert.Equal(t, []float64{0, 0, 0, 2, 0, 0, 2, 0, 2, 0, 0, 2}, poly.Mesh().Vertices)
}

func TestDragSuspendsControls(t *testing.T) {
	e, d := newEditor()
	drawSquare(t, e, d)
	e.SetMode(ModeMove)
	d.controls = nil

	drag(e, 1, 1, 3, 3)
	assert.Equal(t, []bool{false, true}, d.controls)

	// clicking empty ground does not drag
	d.controls = nil
	click(e, 50, 50, ButtonPrimary)
	assert.Empty(t, d.controls)
}

func TestMoveIgnoresFixed(t *testing.T) {
	e, d := newEditor(WithMode(ModeMove))
	ground := d.objects[0]
	tint := ground.Color()
	position := ground.Position()

	drag(e, 1, 1, 5, 5)

	assert.Equal(t, tint, ground.Color())
	assert.Equal(t, position, ground.Position())
	assert.False(t, e.Dragging())
}

func TestMoveClampsAboveGround(t *testing.T) {
	e, d := newEditor()
	poly := drawSquare(t, e, d)
	e.SetMode(ModeMove)

	below := &stub{id: uuid.New(), kind: scene.KindFixed, point: geometry.NewVector3(7, -3, 7)}
	d.Insert(below)

	e.PointerDown(PointerEvent{X: 1, Y: 1, Buttons: ButtonPrimary})
	d.Remove(d.objects[0]) // drop the ground so only the stub is hit
	e.PointerMove(PointerEvent{X: 7, Y: 7, Buttons: ButtonPrimary})
	e.PointerUp(PointerEvent{X: 7, Y: 7})

	assert.Equal(t, geometry.NewVector3(6, 0, 6), poly.Position())
}

func TestAxisLock(t *testing.T) {
	e, d := newEditor()
	poly := drawSquare(t, e, d)
	e.SetMode(ModeMove)

	// keys outside a drag are ignored
	e.KeyDown(KeyEvent{Key: "x"})
	_, locked := e.AxisLock()
	assert.False(t, locked)

	e.PointerDown(PointerEvent{X: 1, Y: 1, Buttons: ButtonPrimary})
	e.KeyDown(KeyEvent{Key: "X"})
	axis, locked := e.AxisLock()
	require.True(t, locked)
	assert.Equal(t, geometry.AxisX, axis)

	e.PointerMove(PointerEvent{X: 4, Y: 6, Buttons: ButtonPrimary})
	assert.Equal(t, geometry.NewVector3(0, 0, 5), poly.Position())

	// switching axis
	e.KeyDown(KeyEvent{Key: "z"})
	e.PointerMove(PointerEvent{X: 4, Y: 6, Buttons: ButtonPrimary})
	assert.Equal(t, geometry.NewVector3(3, 0, 0), poly.Position())

	// same key releases
	e.KeyDown(KeyEvent{Key: "z"})
	e.PointerMove(PointerEvent{X: 4, Y: 6, Buttons: ButtonPrimary})
	assert.Equal(t, geometry.NewVector3(3, 0, 5), poly.Position())

	e.KeyDown(KeyEvent{Key: "y"})
	e.PointerUp(PointerEvent{X: 4, Y: 6})
	_, locked = e.AxisLock()
	assert.False(t, locked)
}

func TestEscapeReleasesLockThenDiscards(t *testing.T) {
	e, d := newEditor()
	click(e, 0, 0, ButtonPrimary)
	click(e, 2, 0, ButtonPrimary)

	e.KeyDown(KeyEvent{Key: "Escape"})
	assert.Empty(t, e.PendingPoints())
	assert.Zero(t, d.count(scene.KindControlPoint))
}

func TestEditVertex(t *testing.T) {
	e, d := newEditor()
	poly := drawSquare(t, e, d)
	old := poly.ControlPoints()[1]
	normals := append([]float64(nil), poly.Normals()...)
	e.SetMode(ModeEditVertex)

	drag(e, 2, 0, 2, 1)

	assert.Equal(t, []float64{0, 0, 0, 2, 0, 1, 2, 0, 2, 0, 0, 2}, poly.Mesh().Vertices)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, poly.Mesh().Indices)
	assert.Equal(t, normals, poly.Normals())

	repl := poly.ControlPoints()[1]
	assert.NotSame(t, old, repl)
	assert.NotEqual(t, old.ID(), repl.ID())
	assert.False(t, d.contains(old))
	assert.True(t, d.contains(repl))
	assert.Equal(t, geometry.NewVector3(2, 0, 1), repl.Position())
	assert.Equal(t, scene.DefaultStyle().ControlPointColor, repl.Color())
	assert.Equal(t, 4, d.count(scene.KindControlPoint))
	assert.Nil(t, e.Selection())
}

func TestEditVertexOfMovedPolygon(t *testing.T) {
	e, d := newEditor()
	poly := drawSquare(t, e, d)
	e.SetMode(ModeMove)
	drag(e, 1, 1, 11, 1)
	require.Equal(t, geometry.NewVector3(10, 0, 0), poly.Position())

	e.SetMode(ModeEditVertex)
	drag(e, 12, 0, 12, 1)

	assert.Equal(t, []float64{0, 0, 0, 2, 0, 1, 2, 0, 2, 0, 0, 2}, poly.Mesh().Vertices)
	assert.Equal(t, geometry.NewVector3(12, 0, 1), poly.ControlPoints()[1].Position())
}

func TestModeChangeCommitsVertexDrag(t *testing.T) {
	e, d := newEditor()
	poly := drawSquare(t, e, d)
	e.SetMode(ModeEditVertex)

	e.PointerDown(PointerEvent{X: 2, Y: 0, Buttons: ButtonPrimary})
	e.PointerMove(PointerEvent{X: 2, Y: 1, Buttons: ButtonPrimary})
	e.SetMode(ModeMove)
	e.PointerUp(PointerEvent{X: 2, Y: 1})

	marker := poly.ControlPoints()[1]
	assert.Equal(t, geometry.NewVector3(2, 0, 1), marker.Position())
	assert.Equal(t, marker.LocalPosition(), geometry.VertexAt(poly.Mesh().Vertices, 1))
	assert.True(t, d.contains(marker))
	assert.Equal(t, 4, d.count(scene.KindControlPoint))
	assert.False(t, e.Dragging())
	assert.Nil(t, e.Selection())
}

func TestSecondButtonCommitsVertexDrag(t *testing.T) {
	e, d := newEditor()
	poly := drawSquare(t, e, d)
	e.SetMode(ModeEditVertex)

	e.PointerDown(PointerEvent{X: 2, Y: 0, Buttons: ButtonPrimary})
	e.PointerMove(PointerEvent{X: 2, Y: 1, Buttons: ButtonPrimary})
	e.PointerDown(PointerEvent{X: 1, Y: 1, Buttons: ButtonPrimary | ButtonSecondary})
	e.PointerUp(PointerEvent{X: 1, Y: 1})

	marker := poly.ControlPoints()[1]
	assert.Equal(t, geometry.NewVector3(2, 0, 1), marker.Position())
	assert.Equal(t, marker.LocalPosition(), geometry.VertexAt(poly.Mesh().Vertices, 1))
	assert.Equal(t, 4, d.count(scene.KindControlPoint))
}

func TestExtrudeIgnoresMarkers(t *testing.T) {
	e, d := newEditor()
	poly := drawSquare(t, e, d)
	e.SetMode(ModeExtrude)

	click(e, 2, 0, ButtonPrimary)

	assert.True(t, d.contains(poly))
	assert.Equal(t, 0, d.count(scene.KindExtrudedPolygon))
	assert.Equal(t, scene.DefaultStyle().ControlPointColor, poly.ControlPoints()[1].Color())
}

func TestEditVertexIgnoresPolygons(t *testing.T) {
	e, d := newEditor()
	poly := drawSquare(t, e, d)
	e.SetMode(ModeEditVertex)

	drag(e, 1, 1, 5, 5)
	assert.Equal(t, geometry.Vector3{}, poly.Position())
	assert.Equal(t, []float64{0, 0, 0, 2, 0, 0, 2, 0, 2, 0, 0, 2}, poly.Mesh().Vertices)
}

func TestResizePassThrough(t *testing.T) {
	e, d := newEditor()
	e.Resize(640, 480)
	assert.Equal(t, 640, d.width)
	assert.Equal(t, 480, d.height)
}

func TestLogsCommittedChanges(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e, d := newEditor(WithLogger(log), WithHighlight(color.RGBA{B: 255, A: 255}))

	click(e, 0, 0, ButtonPrimary)
	click(e, 5, 5, ButtonSecondary)
	assert.Contains(t, buf.String(), "outline not closed")

	drawSquare(t, e, d)
	assert.Contains(t, buf.String(), "polygon closed")
}

// stub is an object hit at one point regardless of the ray
type stub struct {
	id    uuid.UUID
	kind  scene.Kind
	point geometry.Vector3
	c     color.RGBA
}

func (s *stub) ID() uuid.UUID              { return s.id }
func (s *stub) Kind() scene.Kind           { return s.kind }
func (s *stub) Position() geometry.Vector3 { return s.point }
func (s *stub) Color() color.RGBA          { return s.c }
func (s *stub) SetColor(c color.RGBA)      { s.c = c }

func (s *stub) Intersect(ray geometry.Ray) (geometry.Vector3, float64, bool) {
	return s.point, ray.Origin.Distance(s.point), true
}
