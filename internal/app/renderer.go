package app

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"github.com/philipparndt/goextrude/internal/scene"
	"github.com/philipparndt/goextrude/pkg/geometry"
)

// Light direction for baked lighting
var lightDir = geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

func newMeshCache() *MeshCache {
	return &MeshCache{
		material: rl.LoadMaterialDefault(),
		meshes:   make(map[uuid.UUID]*gpuMesh),
	}
}

// meshFor returns the GPU mesh of p, uploading it again when the polygon
// buffers changed since the last frame
func (c *MeshCache) meshFor(p *scene.Polygon) rl.Mesh {
	cached, ok := c.meshes[p.ID()]
	if ok && cached.version == p.Version() {
		return cached.mesh
	}
	if ok {
		rl.UnloadMesh(&cached.mesh)
	}
	cached = &gpuMesh{mesh: polygonToRaylibMesh(p.Mesh(), p.Normals()), version: p.Version()}
	c.meshes[p.ID()] = cached
	return cached.mesh
}

// prune unloads meshes of polygons that left the scene
func (c *MeshCache) prune(live map[uuid.UUID]bool) {
	for id, cached := range c.meshes {
		if !live[id] {
			rl.UnloadMesh(&cached.mesh)
			delete(c.meshes, id)
		}
	}
}

func (c *MeshCache) unloadAll() {
	c.prune(nil)
}

// polygonToRaylibMesh expands the indexed buffers into one vertex per
// triangle corner and bakes lighting from the polygon's stored vertex
// normals. The polygon color is applied at draw time through the material
// so highlighting does not need an upload.
func polygonToRaylibMesh(m geometry.Mesh, vertexNormals []float64) rl.Mesh {
	triangleCount := m.TriangleCount()
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	colors := make([]uint8, 0, vertexCount*4)

	cornerNormals := geometry.Corners(vertexNormals, m.Indices)
	for i, v := range geometry.Corners(m.Vertices, m.Indices) {
		normal := cornerNormals[i]

		// flat polygons are seen from both sides
		shade := uint8(255 * math.Max(0.35, math.Abs(normal.Dot(lightDir))))

		vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
		normals = append(normals, float32(normal.X), float32(normal.Y), float32(normal.Z))
		colors = append(colors, shade, shade, shade, 255)
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, false)
	return mesh
}

// drawScene renders every display object
func (app *App) drawScene() {
	live := make(map[uuid.UUID]bool)

	rl.DisableBackfaceCulling()
	var translucent []*scene.Surface
	for _, obj := range app.scene.Objects() {
		switch o := obj.(type) {
		case *scene.Surface:
			if o.Translucent() {
				translucent = append(translucent, o)
				continue
			}
			app.drawSurface(o)
		case *scene.Polygon:
			live[o.ID()] = true
			app.drawPolygon(o)
		case *scene.ControlPoint:
			rl.DrawSphere(toRL(o.Position()), float32(o.Radius()), toRLColor(o.Color()))
		}
	}
	app.drawPendingOutline()

	// blended surfaces last so the shapes behind them stay visible
	for _, s := range translucent {
		app.drawSurface(s)
	}
	rl.EnableBackfaceCulling()

	app.Meshes.prune(live)
}

func (app *App) drawPolygon(p *scene.Polygon) {
	mesh := app.Meshes.meshFor(p)
	if albedo := app.Meshes.material.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = toRLColor(p.Color())
	}
	pos := p.Position()
	rl.DrawMesh(mesh, app.Meshes.material, rl.MatrixTranslate(float32(pos.X), float32(pos.Y), float32(pos.Z)))

	if p.ID() == app.Interaction.hovered {
		app.drawOutline(p)
	}
}

// drawOutline draws the triangle edges of a hovered polygon
func (app *App) drawOutline(p *scene.Polygon) {
	m := p.Mesh()
	pos := p.Position()
	edgeColor := rl.NewColor(255, 255, 255, 160)
	for f := 0; f < m.TriangleCount(); f++ {
		tri := geometry.TriangleAt(m.Vertices, m.Indices, f)
		a, b, c := toRL(tri.A.Add(pos)), toRL(tri.B.Add(pos)), toRL(tri.C.Add(pos))
		rl.DrawLine3D(a, b, edgeColor)
		rl.DrawLine3D(b, c, edgeColor)
		rl.DrawLine3D(c, a, edgeColor)
	}
}

func (app *App) drawSurface(s *scene.Surface) {
	switch s.Shape() {
	case scene.ShapeAxes:
		origin := toRL(s.Position())
		length := float32(s.Size())
		rl.DrawLine3D(origin, rl.Vector3{X: length}, rl.Red)
		rl.DrawLine3D(origin, rl.Vector3{Y: length}, rl.Green)
		rl.DrawLine3D(origin, rl.Vector3{Z: length}, rl.Blue)

	case scene.ShapePlane:
		c := toRLColor(s.Color())
		if s.Translucent() {
			c = rl.Fade(c, float32(s.Opacity()))
		}
		corners := s.Corners()
		a, b, cc, d := toRL(corners[0]), toRL(corners[1]), toRL(corners[2]), toRL(corners[3])
		rl.DrawTriangle3D(a, b, cc, c)
		rl.DrawTriangle3D(a, cc, d, c)
	}
}

// drawPendingOutline connects the markers of the outline being drawn
func (app *App) drawPendingOutline() {
	pending := app.editor.PendingPoints()
	lineColor := toRLColor(app.cfg.Colors.ControlPoint.RGBA())
	for i := 1; i < len(pending); i++ {
		rl.DrawLine3D(toRL(pending[i-1].Position()), toRL(pending[i].Position()), lineColor)
	}
}

func toRLColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
