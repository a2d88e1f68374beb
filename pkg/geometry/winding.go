package geometry

import "github.com/paulmach/orb"

// Winding is the orientation of an outline seen in the XZ plane, with x as
// the first and z as the second planar coordinate.
type Winding int

const (
	WindingCCW Winding = iota
	WindingCW
)

func (w Winding) String() string {
	if w == WindingCW {
		return "CW"
	}
	return "CCW"
}

// RingWinding projects the outline onto the ground plane and reports its
// orientation. Degenerate (collinear) outlines count as CCW.
func RingWinding(points []Vector3) Winding {
	if len(points) < MinPolygonPoints {
		return WindingCCW
	}
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, orb.Point{p.X, p.Z})
	}
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	if ring.Orientation() == orb.CW {
		return WindingCW
	}
	return WindingCCW
}
