package geometry

import (
	"errors"
	"fmt"
)

// MinPolygonPoints is the smallest outline that can be closed or extruded
const MinPolygonPoints = 3

// ErrInsufficientPoints is matched by every InsufficientPointsError
var ErrInsufficientPoints = errors.New("insufficient points")

// InsufficientPointsError reports an outline with fewer than three points
type InsufficientPointsError struct {
	Count int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("polygon needs at least %d points, got %d", MinPolygonPoints, e.Count)
}

// Is lets errors.Is match ErrInsufficientPoints
func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

// Mesh holds the renderable buffers of a polygon.
// Vertices are flattened x,y,z triples, Indices are triangle triples.
type Mesh struct {
	Vertices []float64
	Indices  []uint32
}

// VertexCount returns the number of points in the vertex buffer
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of faces in the index buffer
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// FlatFaces returns a fan triangulation anchored at vertex 0:
// (0, i, i+1) for i in [1, n-2]. Only convex outlines, or outlines that are
// star-shaped from vertex 0, triangulate correctly. Self-intersecting input
// yields wrong faces but never fails.
func FlatFaces(n int) ([]uint32, error) {
	if n < MinPolygonPoints {
		return nil, &InsufficientPointsError{Count: n}
	}
	return fan(nil, 0, n, false), nil
}

// fan appends a fan over n ring vertices starting at base. reversed flips
// the winding of every triangle.
func fan(faces []uint32, base, n int, reversed bool) []uint32 {
	for i := 1; i < n-1; i++ {
		a, b, c := uint32(base), uint32(base+i), uint32(base+i+1)
		if reversed {
			b, c = c, b
		}
		faces = append(faces, a, b, c)
	}
	return faces
}

// VertexBuffer flattens points into x,y,z triples in the given order.
// The order must match the owning polygon's control point order.
func VertexBuffer(points []Vector3) []float64 {
	buf := make([]float64, 0, len(points)*3)
	for _, p := range points {
		buf = append(buf, p.X, p.Y, p.Z)
	}
	return buf
}

// VertexAt reads vertex number index from a flattened buffer
func VertexAt(vertices []float64, index int) Vector3 {
	return NewVector3(vertices[index*3], vertices[index*3+1], vertices[index*3+2])
}

// SetVertex rewrites one vertex in place. Topology and normals are left untouched.
func SetVertex(vertices []float64, index int, p Vector3) error {
	if index < 0 || index*3+2 >= len(vertices) {
		return fmt.Errorf("vertex index %d out of range [0,%d)", index, len(vertices)/3)
	}
	vertices[index*3] = p.X
	vertices[index*3+1] = p.Y
	vertices[index*3+2] = p.Z
	return nil
}

// ExtrudePoints doubles an outline: the base ring followed by every base
// point lifted by height along the up axis.
func ExtrudePoints(base []Vector3, height float64) []Vector3 {
	lift := Up.Mul(height)
	points := make([]Vector3, 0, len(base)*2)
	points = append(points, base...)
	for _, p := range base {
		points = append(points, p.Add(lift))
	}
	return points
}

// ExtrudeFaces returns the index buffer for a prism over n base points laid
// out as produced by ExtrudePoints.
//
// Each base edge (i, j), j = (i+1)%n, gets one side quad made of the
// triangles {i, i+n, n+j} and {i, j, n+j}. The top ring is fanned from n and
// the bottom ring, when capBottom is set, from 0. Triangles are ordered so
// that every face points away from the solid for the given ring winding.
func ExtrudeFaces(n int, winding Winding, capBottom bool) ([]uint32, error) {
	if n < MinPolygonPoints {
		return nil, &InsufficientPointsError{Count: n}
	}
	flip := winding == WindingCW

	faces := make([]uint32, 0, (2*n+2*(n-2))*3)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		quad := [2][3]uint32{
			{uint32(i), uint32(i + n), uint32(n + j)},
			{uint32(i), uint32(n + j), uint32(j)},
		}
		for _, tri := range quad {
			if flip {
				tri[1], tri[2] = tri[2], tri[1]
			}
			faces = append(faces, tri[:]...)
		}
	}

	// A CCW ring (XZ projection) fans downwards, so the top cap is reversed.
	faces = fan(faces, n, n, !flip)
	if capBottom {
		faces = fan(faces, 0, n, flip)
	}
	return faces, nil
}

// BuildFlat builds the buffers of a flat polygon over points
func BuildFlat(points []Vector3) (Mesh, error) {
	faces, err := FlatFaces(len(points))
	if err != nil {
		return Mesh{}, err
	}
	return Mesh{Vertices: VertexBuffer(points), Indices: faces}, nil
}

// BuildExtruded builds a prism of the given height over the base outline.
// It returns the doubled point set together with the buffers.
func BuildExtruded(base []Vector3, height float64, capBottom bool) ([]Vector3, Mesh, error) {
	faces, err := ExtrudeFaces(len(base), RingWinding(base), capBottom)
	if err != nil {
		return nil, Mesh{}, err
	}
	points := ExtrudePoints(base, height)
	return points, Mesh{Vertices: VertexBuffer(points), Indices: faces}, nil
}

// ComputeNormals returns area weighted per-vertex normals, one x,y,z triple
// per vertex. Vertices not referenced by any face get a zero normal.
func ComputeNormals(vertices []float64, indices []uint32) []float64 {
	acc := make([]Vector3, len(vertices)/3)
	for f := 0; f+2 < len(indices); f += 3 {
		tri := TriangleAt(vertices, indices, f/3)
		// unnormalized cross product carries the area weight
		n := tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A))
		for k := 0; k < 3; k++ {
			idx := indices[f+k]
			acc[idx] = acc[idx].Add(n)
		}
	}

	normals := make([]float64, 0, len(vertices))
	for _, n := range acc {
		n = n.Normalize()
		normals = append(normals, n.X, n.Y, n.Z)
	}
	return normals
}

// Corners expands a per-vertex buffer (vertices or normals) to one value
// per triangle corner in index order
func Corners(values []float64, indices []uint32) []Vector3 {
	out := make([]Vector3, 0, len(indices))
	for _, idx := range indices[:len(indices)/3*3] {
		out = append(out, VertexAt(values, int(idx)))
	}
	return out
}
