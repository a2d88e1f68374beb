package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

func TestProjectRayRoundTrip(t *testing.T) {
	cam := DefaultCamera()
	points := []geometry.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 2},
		{X: -3, Y: 4, Z: 1},
	}

	for _, p := range points {
		x, y, ok := cam.Project(p, 800, 600)
		if !ok {
			t.Fatalf("Project(%v) reported point behind camera", p)
		}
		ray := cam.Ray(x, y, 800, 600)

		// The ray must pass through the original point
		toPoint := p.Sub(ray.Origin)
		along := toPoint.Dot(ray.Direction)
		closest := ray.At(along)
		if closest.Distance(p) > 1e-6 {
			t.Errorf("Ray through projection of %v misses by %v", p, closest.Distance(p))
		}
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := NewCamera(geometry.Vector3{}, 10, 0, 0)
	if _, _, ok := cam.Project(geometry.NewVector3(0, 0, 20), 100, 100); ok {
		t.Error("Expected point behind camera to be rejected")
	}
}

func TestCenterRayHitsTarget(t *testing.T) {
	cam := NewCamera(geometry.NewVector3(1, 2, 3), 10, 0.3, 0.7)
	ray := cam.Ray(50, 50, 100, 100)
	dir := cam.Target.Sub(cam.Position).Normalize()
	if ray.Direction.Sub(dir).Length() > 1e-10 {
		t.Errorf("Center ray = %v, want %v", ray.Direction, dir)
	}
}

func TestRotateClampsElevation(t *testing.T) {
	cam := DefaultCamera()
	cam.Rotate(10, 0)
	if math.Abs(cam.RotationX-maxElevation) > 1e-10 {
		t.Errorf("RotationX = %v, want %v", cam.RotationX, maxElevation)
	}
}

func TestZoomMinimum(t *testing.T) {
	cam := DefaultCamera()
	cam.Zoom(-2)
	if cam.Distance != minDistance {
		t.Errorf("Distance = %v, want %v", cam.Distance, minDistance)
	}
}

func TestPanMovesTarget(t *testing.T) {
	cam := DefaultCamera()
	before := cam.Position.Sub(cam.Target)
	cam.Pan(0.1, 0)
	if cam.Target.Length() == 0 {
		t.Error("Expected pan to move target")
	}
	after := cam.Position.Sub(cam.Target)
	if after.Sub(before).Length() > 1e-10 {
		t.Error("Pan must keep the orbit offset")
	}
}
