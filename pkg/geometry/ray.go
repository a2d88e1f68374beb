package geometry

import "math"

const epsilon = 1e-9

// Ray is a half line used for picking. Direction is expected to be normalized
// so that hit parameters are distances.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray and normalizes its direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectSphere returns the nearest non-negative hit distance
func (r Ray) IntersectSphere(center Vector3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		// origin inside the sphere
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectPlane intersects the ray with the infinite plane through point
// with the given normal. Rays parallel to the plane never hit.
func (r Ray) IntersectPlane(point, normal Vector3) (float64, bool) {
	denom := normal.Dot(r.Direction)
	if math.Abs(denom) < epsilon {
		return 0, false
	}
	t := point.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// RotateEuler rotates v by the Euler angles in radians using XYZ order:
// the combined matrix is Rx * Ry * Rz, so z is applied first.
func RotateEuler(v, euler Vector3) Vector3 {
	sz, cz := math.Sincos(euler.Z)
	v = Vector3{X: v.X*cz - v.Y*sz, Y: v.X*sz + v.Y*cz, Z: v.Z}

	sy, cy := math.Sincos(euler.Y)
	v = Vector3{X: v.X*cy + v.Z*sy, Y: v.Y, Z: -v.X*sy + v.Z*cy}

	sx, cx := math.Sincos(euler.X)
	return Vector3{X: v.X, Y: v.Y*cx - v.Z*sx, Z: v.Y*sx + v.Z*cx}
}
