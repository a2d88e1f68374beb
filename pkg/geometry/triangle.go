package geometry

// Triangle is one face of a polygon mesh, wound A -> B -> C
type Triangle struct {
	A, B, C Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// TriangleAt reads face number face of an indexed mesh
func TriangleAt(vertices []float64, indices []uint32, face int) Triangle {
	return Triangle{
		A: VertexAt(vertices, int(indices[face*3])),
		B: VertexAt(vertices, int(indices[face*3+1])),
		C: VertexAt(vertices, int(indices[face*3+2])),
	}
}

// Normal computes the unit normal following the winding order
func (t Triangle) Normal() Vector3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length() / 2.0
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// SignedVolume returns the signed volume of the tetrahedron spanned by the
// triangle and the origin. Summed over a closed, outward wound mesh it yields
// the enclosed volume.
func (t Triangle) SignedVolume() float64 {
	return t.A.Dot(t.B.Cross(t.C)) / 6.0
}

// Intersect tests the ray against the triangle from both sides
// (Möller–Trumbore). It returns the ray parameter of the hit.
func (t Triangle) Intersect(ray Ray) (float64, bool) {
	edge1 := t.B.Sub(t.A)
	edge2 := t.C.Sub(t.A)
	p := ray.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if det > -epsilon && det < epsilon {
		return 0, false
	}
	inv := 1.0 / det

	s := ray.Origin.Sub(t.A)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := ray.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	dist := edge2.Dot(q) * inv
	if dist <= epsilon {
		return 0, false
	}
	return dist, true
}
