// Package scene holds the objects the editor creates and mutates, the factory
// that builds them, and a headless display that can pick them with rays.
package scene

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

// Kind is the semantic tag carried by every display object
type Kind int

const (
	KindFixed Kind = iota
	KindControlPoint
	KindPolygon
	KindExtrudedPolygon
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindControlPoint:
		return "controlPoint"
	case KindPolygon:
		return "polygon"
	case KindExtrudedPolygon:
		return "extrudedPolygon"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsPolygon reports whether k tags a flat or extruded polygon
func (k Kind) IsPolygon() bool {
	return k == KindPolygon || k == KindExtrudedPolygon
}

// Object is anything the display can hold
type Object interface {
	ID() uuid.UUID
	Kind() Kind
	// Position returns the world position
	Position() geometry.Vector3
	Color() color.RGBA
	SetColor(c color.RGBA)
	// Intersect returns the nearest hit of the ray with the object
	Intersect(ray geometry.Ray) (geometry.Vector3, float64, bool)
}

// Movable is implemented by objects the user may drag. Fixed surfaces do
// not implement it.
type Movable interface {
	Object
	SetPosition(p geometry.Vector3)
}

// Hit is one raycast result
type Hit struct {
	Object   Object
	Point    geometry.Vector3
	Distance float64
}

type base struct {
	id    uuid.UUID
	color color.RGBA
}

func newBase(c color.RGBA) base {
	return base{id: uuid.New(), color: c}
}

func (b *base) ID() uuid.UUID         { return b.id }
func (b *base) Color() color.RGBA     { return b.color }
func (b *base) SetColor(c color.RGBA) { b.color = c }
