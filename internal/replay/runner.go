package replay

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/philipparndt/goextrude/internal/config"
	"github.com/philipparndt/goextrude/internal/editor"
	"github.com/philipparndt/goextrude/internal/scene"
	"github.com/philipparndt/goextrude/pkg/analysis"
	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/viewer"
)

// Session is the outcome of a replay
type Session struct {
	Scene  *scene.Scene
	Editor *editor.Editor
}

// Run plays script on a fresh scene built from cfg
func Run(script *Script, cfg *config.Config, log *slog.Logger) (*Session, error) {
	sc := scene.NewScene(script.Width, script.Height)
	cam := script.Camera
	*sc.Camera() = *viewer.NewCamera(
		geometry.NewVector3(cam.Target[0], cam.Target[1], cam.Target[2]),
		cam.Distance,
		cam.Elevation*math.Pi/180,
		cam.Azimuth*math.Pi/180,
	)

	factory := scene.NewFactory(cfg.Style())
	factory.Populate(sc)

	opts := append(cfg.EditorOptions(), editor.WithLogger(log))
	s := &Session{Scene: sc, Editor: editor.New(sc, factory, opts...)}

	for i, step := range script.Steps {
		if err := s.apply(step); err != nil {
			return s, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return s, nil
}

func (s *Session) apply(step Step) error {
	ed := s.Editor
	switch {
	case step.Mode != "":
		m, err := editor.ParseMode(step.Mode)
		if err != nil {
			return err
		}
		ed.SetMode(m)

	case step.Height != nil:
		return ed.SetExtrusionHeight(*step.Height)

	case step.Down != nil:
		ev, err := s.event(step.Down)
		if err != nil {
			return err
		}
		ed.PointerDown(ev)

	case step.Move != nil:
		ev, err := s.event(step.Move)
		if err != nil {
			return err
		}
		ed.PointerMove(ev)

	case step.Up != nil:
		ev, err := s.event(step.Up)
		if err != nil {
			return err
		}
		ed.PointerUp(ev)

	case step.Click != nil:
		ev, err := s.event(step.Click)
		if err != nil {
			return err
		}
		ed.PointerDown(ev)
		ev.Buttons = 0
		ed.PointerUp(ev)

	case step.Key != "":
		ed.KeyDown(editor.KeyEvent{Key: step.Key})

	case step.Resize != nil:
		ed.Resize(step.Resize[0], step.Resize[1])
	}
	return nil
}

// event turns a script pointer into screen coordinates
func (s *Session) event(p *Pointer) (editor.PointerEvent, error) {
	ev := editor.PointerEvent{Buttons: editor.ButtonPrimary}
	if p.Button == "secondary" {
		ev.Buttons = editor.ButtonSecondary
	}

	if p.Pos != nil {
		ev.X, ev.Y = p.Pos[0], p.Pos[1]
		return ev, nil
	}

	w, h := s.Scene.Size()
	world := geometry.NewVector3(p.At[0], p.At[1], p.At[2])
	x, y, ok := s.Scene.Camera().Project(world, float64(w), float64(h))
	if !ok {
		return ev, fmt.Errorf("point %v is behind the camera", world)
	}
	ev.X, ev.Y = x, y
	return ev, nil
}

// Report prints every polygon with its buffers and measurements
func (s *Session) Report(w io.Writer) {
	polygons := s.Scene.Polygons()
	fmt.Fprintf(w, "Mode: %s\n", s.Editor.Mode())
	fmt.Fprintf(w, "Pending points: %d\n", len(s.Editor.PendingPoints()))
	fmt.Fprintf(w, "Polygons: %d\n", len(polygons))

	for i, p := range polygons {
		mesh := p.Mesh()
		m := analysis.AnalyzeMesh(mesh, p.Position())

		fmt.Fprintf(w, "\n[%d] %s %s\n", i+1, p.Kind(), p.ID())
		fmt.Fprintf(w, "  Position:   %s\n", analysis.FormatVector(p.Position()))
		fmt.Fprintf(w, "  Vertices:   %s\n", formatBuffer(mesh.Vertices))
		fmt.Fprintf(w, "  Faces:      %v\n", mesh.Indices)
		fmt.Fprintf(w, "  Triangles:  %d\n", m.TriangleCount)
		fmt.Fprintf(w, "  Dimensions: %s\n", analysis.FormatVector(m.Dimensions))
		fmt.Fprintf(w, "  Area:       %s\n", analysis.FormatMeasurement(m.SurfaceArea, "units²"))
		fmt.Fprintf(w, "  Volume:     %s\n", analysis.FormatMeasurement(m.Volume, "units³"))
	}
}

func formatBuffer(values []float64) string {
	parts := lo.Map(values, func(v float64, _ int) string {
		if math.Abs(v) < 0.005 {
			// avoid printing -0.00 for raycast noise
			v = 0
		}
		return fmt.Sprintf("%.2f", v)
	})
	return "[" + strings.Join(parts, " ") + "]"
}
