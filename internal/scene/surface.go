package scene

import (
	"image/color"
	"math"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

// SurfaceShape distinguishes the fixed helpers
type SurfaceShape int

const (
	ShapePlane SurfaceShape = iota
	ShapeAxes
)

// Surface is a static, non-editable helper: a reference plane or the axis
// indicator. It is only ever a placement target for new control points.
// It does not implement Movable.
type Surface struct {
	base
	shape       SurfaceShape
	center      geometry.Vector3
	size        float64
	rotation    geometry.Vector3
	translucent bool
	opacity     float64
}

func (s *Surface) Kind() Kind                 { return KindFixed }
func (s *Surface) Position() geometry.Vector3 { return s.center }

// Shape returns what the surface draws as
func (s *Surface) Shape() SurfaceShape { return s.shape }

// Size is the edge length of a plane or the axis length of the indicator
func (s *Surface) Size() float64 { return s.size }

// Rotation returns the Euler angles applied to the XY-plane quad
func (s *Surface) Rotation() geometry.Vector3 { return s.rotation }

// Translucent reports whether the surface is drawn blended with Opacity
func (s *Surface) Translucent() bool { return s.translucent }
func (s *Surface) Opacity() float64  { return s.opacity }

// Axes returns the in-plane unit vectors and the normal of a plane
func (s *Surface) Axes() (u, v, normal geometry.Vector3) {
	u = geometry.RotateEuler(geometry.NewVector3(1, 0, 0), s.rotation)
	v = geometry.RotateEuler(geometry.NewVector3(0, 1, 0), s.rotation)
	normal = geometry.RotateEuler(geometry.NewVector3(0, 0, 1), s.rotation)
	return u, v, normal
}

// Corners returns the four plane corners in drawing order
func (s *Surface) Corners() [4]geometry.Vector3 {
	u, v, _ := s.Axes()
	h := s.size / 2
	return [4]geometry.Vector3{
		s.center.Add(u.Mul(-h)).Add(v.Mul(-h)),
		s.center.Add(u.Mul(h)).Add(v.Mul(-h)),
		s.center.Add(u.Mul(h)).Add(v.Mul(h)),
		s.center.Add(u.Mul(-h)).Add(v.Mul(h)),
	}
}

func (s *Surface) Intersect(ray geometry.Ray) (geometry.Vector3, float64, bool) {
	if s.shape != ShapePlane {
		// the axis indicator is lines only
		return geometry.Vector3{}, 0, false
	}
	u, v, normal := s.Axes()
	dist, ok := ray.IntersectPlane(s.center, normal)
	if !ok {
		return geometry.Vector3{}, 0, false
	}
	hit := ray.At(dist)
	rel := hit.Sub(s.center)
	h := s.size / 2
	if math.Abs(rel.Dot(u)) > h || math.Abs(rel.Dot(v)) > h {
		return geometry.Vector3{}, 0, false
	}
	return hit, dist, true
}

func newSurface(shape SurfaceShape, size float64, rotation geometry.Vector3, c color.RGBA) *Surface {
	return &Surface{base: newBase(c), shape: shape, size: size, rotation: rotation, opacity: 1}
}
