package scene

import (
	"image/color"
	"math"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

// Style configures how the factory builds objects
type Style struct {
	ControlPointColor    color.RGBA
	PolygonColor         color.RGBA
	ExtrudedPolygonColor color.RGBA
	GroundColor          color.RGBA
	ReferenceColor       color.RGBA
	ReferenceOpacity     float64
	ControlPointRadius   float64
	PlaneSize            float64
	AxesLength           float64
}

// DefaultStyle matches the configuration defaults
func DefaultStyle() Style {
	return Style{
		ControlPointColor:    color.RGBA{R: 255, A: 255},
		PolygonColor:         color.RGBA{G: 255, A: 255},
		ExtrudedPolygonColor: color.RGBA{G: 255, A: 255},
		GroundColor:          color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ReferenceColor:       color.RGBA{R: 0x88, G: 0xaa, B: 0xff, A: 255},
		ReferenceOpacity:     0.25,
		ControlPointRadius:   0.3,
		PlaneSize:            2000,
		AxesLength:           20,
	}
}

// Factory constructs display objects. It never inserts anything into a
// display; callers do that.
type Factory struct {
	style Style
}

// NewFactory creates a factory for the given style
func NewFactory(style Style) *Factory {
	return &Factory{style: style}
}

// Style returns the active style
func (f *Factory) Style() Style { return f.style }

// SetStyle replaces the style used for objects created from now on
func (f *Factory) SetStyle(style Style) { f.style = style }

// MakeControlPoint creates an unowned marker at a world position
func (f *Factory) MakeControlPoint(position geometry.Vector3) *ControlPoint {
	return newControlPoint(position, f.style.ControlPointRadius, f.style.ControlPointColor)
}

// MakeFlatPolygon creates a polygon at origin from local buffers and takes
// ownership of points. Normals are computed here.
func (f *Factory) MakeFlatPolygon(origin geometry.Vector3, points []*ControlPoint, vertices []float64, faces []uint32) *Polygon {
	mesh := geometry.Mesh{Vertices: vertices, Indices: faces}
	return newPolygon(KindPolygon, origin, points, mesh, f.style.PolygonColor)
}

// MakeExtrudedPolygon is MakeFlatPolygon for solids built from a doubled
// control point set
func (f *Factory) MakeExtrudedPolygon(origin geometry.Vector3, points []*ControlPoint, vertices []float64, faces []uint32) *Polygon {
	mesh := geometry.Mesh{Vertices: vertices, Indices: faces}
	return newPolygon(KindExtrudedPolygon, origin, points, mesh, f.style.ExtrudedPolygonColor)
}

// MakeReferencePlane creates a large static quad. The unrotated quad lies
// in the XY plane; rotation is in radians.
func (f *Factory) MakeReferencePlane(c color.RGBA, translucent bool, opacity float64, rotation geometry.Vector3) *Surface {
	s := newSurface(ShapePlane, f.style.PlaneSize, rotation, c)
	s.translucent = translucent
	s.opacity = opacity
	return s
}

// MakeGroundPlane creates the opaque horizontal plane at y = 0
func (f *Factory) MakeGroundPlane() *Surface {
	return f.MakeReferencePlane(f.style.GroundColor, false, 1, geometry.NewVector3(-math.Pi/2, 0, 0))
}

// MakeAxes creates the axis indicator at the origin
func (f *Factory) MakeAxes() *Surface {
	return newSurface(ShapeAxes, f.style.AxesLength, geometry.Vector3{}, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

// Populate inserts the fixed helpers every editing session starts with:
// the ground plane, a translucent vertical reference plane and the axes.
func (f *Factory) Populate(d interface{ Insert(Object) }) {
	d.Insert(f.MakeGroundPlane())
	d.Insert(f.MakeReferencePlane(f.style.ReferenceColor, true, f.style.ReferenceOpacity, geometry.Vector3{}))
	d.Insert(f.MakeAxes())
}
