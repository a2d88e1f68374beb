package scene

import (
	"image/color"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

// ControlPoint is a sphere marker for one polygon vertex.
//
// While it belongs to a polygon its position is stored relative to the
// polygon, so moving the polygon moves the marker too.
type ControlPoint struct {
	base
	local  geometry.Vector3
	radius float64
	owner  *Polygon
}

func (c *ControlPoint) Kind() Kind { return KindControlPoint }

// Radius returns the marker size
func (c *ControlPoint) Radius() float64 { return c.radius }

// Owner returns the polygon the marker belongs to, or nil while it is part
// of an outline being drawn
func (c *ControlPoint) Owner() *Polygon { return c.owner }

// LocalPosition returns the position in the owner's frame, which is the
// coordinate stored in the owner's vertex buffer
func (c *ControlPoint) LocalPosition() geometry.Vector3 { return c.local }

func (c *ControlPoint) Position() geometry.Vector3 {
	if c.owner == nil {
		return c.local
	}
	return c.owner.Position().Add(c.local)
}

func (c *ControlPoint) SetPosition(p geometry.Vector3) {
	if c.owner == nil {
		c.local = p
		return
	}
	c.local = p.Sub(c.owner.Position())
}

func (c *ControlPoint) Intersect(ray geometry.Ray) (geometry.Vector3, float64, bool) {
	dist, ok := ray.IntersectSphere(c.Position(), c.radius)
	if !ok {
		return geometry.Vector3{}, 0, false
	}
	return ray.At(dist), dist, true
}

// adopt moves the marker into owner's frame without changing its world position
func (c *ControlPoint) adopt(owner *Polygon) {
	world := c.Position()
	c.owner = owner
	c.SetPosition(world)
}

func newControlPoint(position geometry.Vector3, radius float64, c color.RGBA) *ControlPoint {
	return &ControlPoint{base: newBase(c), local: position, radius: radius}
}
