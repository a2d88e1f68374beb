package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

// EdgeInfo contains information about an edge in the mesh
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
}

// MeasurementResult contains various measurements of a polygon mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	VertexCount   int
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeMesh measures a mesh given in the renderer buffer layout. offset is
// the world translation of the owning object.
//
// Volume uses the divergence theorem and is only meaningful for closed,
// outward wound meshes; flat polygons report zero.
func AnalyzeMesh(mesh geometry.Mesh, offset geometry.Vector3) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   geometry.BoundsOf(mesh.Vertices).Translate(offset),
		VertexCount:   mesh.VertexCount(),
		TriangleCount: mesh.TriangleCount(),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	seen := make(map[[2]uint32]bool)
	volume := 0.0

	for f := 0; f < mesh.TriangleCount(); f++ {
		tri := geometry.TriangleAt(mesh.Vertices, mesh.Indices, f)
		result.SurfaceArea += tri.Area()
		volume += tri.SignedVolume()

		// Shared edges are counted once
		for k := 0; k < 3; k++ {
			a, b := mesh.Indices[f*3+k], mesh.Indices[f*3+(k+1)%3]
			if a > b {
				a, b = b, a
			}
			if seen[[2]uint32{a, b}] {
				continue
			}
			seen[[2]uint32{a, b}] = true

			length := geometry.VertexAt(mesh.Vertices, int(a)).Distance(geometry.VertexAt(mesh.Vertices, int(b)))
			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.Volume = math.Abs(volume)
	result.EdgeCount = len(seen)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// Edges lists the unique edges of a mesh in index order
func Edges(mesh geometry.Mesh) []EdgeInfo {
	var edges []EdgeInfo
	seen := make(map[[2]uint32]bool)
	for f := 0; f+2 < len(mesh.Indices); f += 3 {
		for k := 0; k < 3; k++ {
			a, b := mesh.Indices[f+k], mesh.Indices[f+(k+1)%3]
			if a > b {
				a, b = b, a
			}
			if seen[[2]uint32{a, b}] {
				continue
			}
			seen[[2]uint32{a, b}] = true

			start := geometry.VertexAt(mesh.Vertices, int(a))
			end := geometry.VertexAt(mesh.Vertices, int(b))
			edges = append(edges, EdgeInfo{Start: start, End: end, Length: start.Distance(end)})
		}
	}
	return edges
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
