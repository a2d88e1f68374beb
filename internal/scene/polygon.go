package scene

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/samber/lo"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

// Polygon is a flat or extruded mesh that owns one control point per vertex.
// The control point order always equals the vertex buffer order.
type Polygon struct {
	base
	kind          Kind
	position      geometry.Vector3
	mesh          geometry.Mesh
	normals       []float64
	controlPoints []*ControlPoint
	version       uint64
}

func (p *Polygon) Kind() Kind                     { return p.kind }
func (p *Polygon) Position() geometry.Vector3     { return p.position }
func (p *Polygon) SetPosition(v geometry.Vector3) { p.position = v }

// Mesh returns the buffers in the polygon's local frame. Callers must not
// modify them.
func (p *Polygon) Mesh() geometry.Mesh { return p.mesh }

// Normals returns per-vertex normals computed at construction
func (p *Polygon) Normals() []float64 { return p.normals }

// Version increases on every buffer change so renderers know when to re-upload
func (p *Polygon) Version() uint64 { return p.version }

// ControlPoints returns the owned markers in vertex buffer order
func (p *Polygon) ControlPoints() []*ControlPoint {
	return slices.Clone(p.controlPoints)
}

// BaseRing returns the markers of the bottom outline. For flat polygons
// that is every marker; extruded polygons keep their base ring first.
func (p *Polygon) BaseRing() []*ControlPoint {
	if p.kind == KindExtrudedPolygon {
		return slices.Clone(p.controlPoints[:len(p.controlPoints)/2])
	}
	return p.ControlPoints()
}

// Outline returns the local positions of the base ring markers
func (p *Polygon) Outline() []geometry.Vector3 {
	return lo.Map(p.BaseRing(), func(cp *ControlPoint, _ int) geometry.Vector3 {
		return cp.LocalPosition()
	})
}

// IndexOf returns the vertex slot of cp or -1
func (p *Polygon) IndexOf(cp *ControlPoint) int {
	return slices.Index(p.controlPoints, cp)
}

// ReplaceControlPoint swaps old for repl in the same slot and rewrites the
// matching vertex with repl's position. Normals and faces are not touched.
func (p *Polygon) ReplaceControlPoint(old, repl *ControlPoint) (int, error) {
	idx := p.IndexOf(old)
	if idx < 0 {
		return -1, fmt.Errorf("control point %s does not belong to polygon %s", old.ID(), p.ID())
	}

	repl.adopt(p)
	if err := geometry.SetVertex(p.mesh.Vertices, idx, repl.LocalPosition()); err != nil {
		return -1, fmt.Errorf("failed to update vertex %d: %w", idx, err)
	}

	p.controlPoints[idx] = repl
	old.owner = nil
	p.version++
	return idx, nil
}

func (p *Polygon) Intersect(ray geometry.Ray) (geometry.Vector3, float64, bool) {
	// Test in the local frame
	local := geometry.Ray{Origin: ray.Origin.Sub(p.position), Direction: ray.Direction}

	best := 0.0
	found := false
	for f := 0; f < p.mesh.TriangleCount(); f++ {
		dist, ok := geometry.TriangleAt(p.mesh.Vertices, p.mesh.Indices, f).Intersect(local)
		if ok && (!found || dist < best) {
			best = dist
			found = true
		}
	}
	if !found {
		return geometry.Vector3{}, 0, false
	}
	return ray.At(best), best, true
}

func newPolygon(kind Kind, origin geometry.Vector3, points []*ControlPoint, mesh geometry.Mesh, c color.RGBA) *Polygon {
	p := &Polygon{
		base:          newBase(c),
		kind:          kind,
		position:      origin,
		mesh:          mesh,
		normals:       geometry.ComputeNormals(mesh.Vertices, mesh.Indices),
		controlPoints: slices.Clone(points),
	}
	for _, cp := range p.controlPoints {
		cp.adopt(p)
	}
	return p
}
