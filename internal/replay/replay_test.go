package replay

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goextrude/internal/config"
	"github.com/philipparndt/goextrude/internal/editor"
	"github.com/philipparndt/goextrude/internal/scene"
	"github.com/philipparndt/goextrude/pkg/geometry"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestParseDefaults(t *testing.T) {
	script, err := Parse([]byte("steps:\n  - mode: move\n"))
	require.NoError(t, err)
	assert.Equal(t, 800, script.Width)
	assert.Equal(t, 40.0, script.Camera.Distance)
	require.Len(t, script.Steps, 1)
	assert.Equal(t, "move", script.Steps[0].Mode)
}

func TestParseRejectsAmbiguousSteps(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - {mode: move, key: x}\n"))
	assert.ErrorContains(t, err, "step 1: expected exactly one event, got 2")

	_, err = Parse([]byte("steps:\n  - down: {button: primary}\n"))
	assert.ErrorContains(t, err, "pointer needs either pos or at")

	_, err = Parse([]byte("steps:\n  - down: {pos: [1, 2], button: middle}\n"))
	assert.ErrorContains(t, err, "unknown button")
}

func TestRunSquareScript(t *testing.T) {
	script, err := Load("testdata/square.yaml")
	require.NoError(t, err)

	session, err := Run(script, config.Default(), quiet)
	require.NoError(t, err)

	polys := session.Scene.Polygons()
	require.Len(t, polys, 1)
	solid := polys[0]
	assert.Equal(t, scene.KindExtrudedPolygon, solid.Kind())
	assert.Equal(t, 8, solid.Mesh().VertexCount())
	assert.Equal(t, editor.ModeExtrude, session.Editor.Mode())

	pos := solid.Position()
	assert.InDelta(t, 3.0, pos.X, 1e-6)
	assert.InDelta(t, 0.0, pos.Y, 1e-6)
	assert.InDelta(t, 5.0, pos.Z, 1e-6)

	want := []geometry.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 2}, {X: 0, Y: 0, Z: 2},
		{X: 0, Y: 3, Z: 0}, {X: 2, Y: 3, Z: 0}, {X: 2, Y: 3, Z: 2}, {X: 0, Y: 3, Z: 2},
	}
	for i, w := range want {
		got := geometry.VertexAt(solid.Mesh().Vertices, i)
		assert.InDelta(t, 0, got.Distance(w), 1e-6, "vertex %d = %v", i, got)
	}

	var out bytes.Buffer
	session.Report(&out)
	assert.Contains(t, out.String(), "Polygons: 1")
	assert.Contains(t, out.String(), "extrudedPolygon")
	assert.Contains(t, out.String(), "Volume:     12.000 units³")
}

func TestRunStopsOnInvalidHeight(t *testing.T) {
	script, err := Parse([]byte("steps:\n  - height: -1\n"))
	require.NoError(t, err)

	_, err = Run(script, config.Default(), quiet)
	assert.ErrorIs(t, err, editor.ErrInvalidHeight)
}

func TestRunScreenPositions(t *testing.T) {
	script, err := Parse([]byte(`
width: 400
height: 300
steps:
  - click: {pos: [200, 150]}
  - resize: [800, 600]
`))
	require.NoError(t, err)

	session, err := Run(script, config.Default(), quiet)
	require.NoError(t, err)

	// the center pixel looks at the origin
	pending := session.Editor.PendingPoints()
	require.Len(t, pending, 1)
	assert.InDelta(t, 0, pending[0].Position().Length(), 1e-6)

	w, h := session.Scene.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}
