// Package viewer provides an orbit camera that maps between screen pixels
// and world rays. It has no rendering dependency so it can drive headless
// picking as well as the window front end.
package viewer

import (
	"math"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

const (
	minDistance  = 0.1
	maxElevation = math.Pi/2 - 0.1
)

// Camera is a perspective camera orbiting a target point
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Elevation above the XZ plane
	RotationY float64 // Azimuth around the Y axis
}

// NewCamera creates a camera looking at target from the given distance and angles
func NewCamera(target geometry.Vector3, distance, rotationX, rotationY float64) *Camera {
	c := &Camera{
		Target:    target,
		Up:        geometry.Up,
		FOV:       math.Pi / 4,
		Distance:  distance,
		RotationX: rotationX,
		RotationY: rotationY,
	}
	c.UpdatePosition()
	return c
}

// DefaultCamera looks at the origin from above and in front
func DefaultCamera() *Camera {
	return NewCamera(geometry.Vector3{}, 40, math.Pi/6, math.Pi/8)
}

// UpdatePosition recomputes Position from the orbit parameters
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate orbits by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX = math.Max(-maxElevation, math.Min(maxElevation, c.RotationX+deltaX))
	c.RotationY += deltaY
	c.UpdatePosition()
}

// Zoom scales the orbit distance by 1+delta
func (c *Camera) Zoom(delta float64) {
	c.Distance = math.Max(minDistance, c.Distance*(1.0+delta))
	c.UpdatePosition()
}

// Pan moves the target in the view plane. dx and dy are fractions of the
// orbit distance.
func (c *Camera) Pan(dx, dy float64) {
	right, up, _ := c.basis()
	offset := right.Mul(-dx * c.Distance).Add(up.Mul(dy * c.Distance))
	c.Target = c.Target.Add(offset)
	c.UpdatePosition()
}

func (c *Camera) basis() (right, up, forward geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

// Project maps a world point to screen pixels. ok is false for points
// behind the camera.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (x, y float64, ok bool) {
	right, up, forward := c.basis()

	relative := point.Sub(c.Position)
	depth := relative.Dot(forward)
	if depth <= 0.01 {
		return 0, 0, false
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	x = (relative.Dot(right)/(depth*fovScale*aspect))*(width/2) + width/2
	y = (-relative.Dot(up)/(depth*fovScale))*(height/2) + height/2
	return x, y, true
}

// Ray returns the world ray through a screen pixel
func (c *Camera) Ray(screenX, screenY, width, height float64) geometry.Ray {
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	right, up, forward := c.basis()
	dir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))
	return geometry.NewRay(c.Position, dir)
}
