package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

const (
	orbitSpeed = 0.005
	panSpeed   = 0.001
	zoomSpeed  = 0.1
)

// resetCameraView restores the start view
func (app *App) resetCameraView() {
	cam := app.scene.Camera()
	cam.Target = geometry.Vector3{}
	cam.Distance = app.Camera.defaultDist
	cam.RotationX = app.Camera.defaultAngleX
	cam.RotationY = app.Camera.defaultAngleY
	cam.UpdatePosition()
}

// setCameraTopView looks straight down at the ground
func (app *App) setCameraTopView() {
	cam := app.scene.Camera()
	cam.RotationX = math.Pi/2 - 0.1
	cam.RotationY = 0
	cam.UpdatePosition()
}

// handleCameraInput orbits with the middle button, pans with Shift+middle
// and zooms with the wheel. Nothing happens while the editor drags.
func (app *App) handleCameraInput() {
	if !app.scene.ControlsEnabled() {
		app.Camera.isOrbiting = false
		app.Camera.isPanning = false
		return
	}

	cam := app.scene.Camera()
	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	if rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		app.Camera.isPanning = shiftPressed
		app.Camera.isOrbiting = !shiftPressed
	}
	if rl.IsMouseButtonReleased(rl.MouseMiddleButton) {
		app.Camera.isOrbiting = false
		app.Camera.isPanning = false
	}

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		switch {
		case app.Camera.isOrbiting:
			cam.Rotate(float64(delta.Y)*orbitSpeed, -float64(delta.X)*orbitSpeed)
		case app.Camera.isPanning:
			cam.Pan(float64(delta.X)*panSpeed, float64(delta.Y)*panSpeed)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.Zoom(-float64(wheel) * zoomSpeed)
	}
}

// updateCamera copies the scene camera into the raylib camera
func (app *App) updateCamera() {
	cam := app.scene.Camera()
	app.Camera.camera.Position = toRL(cam.Position)
	app.Camera.camera.Target = toRL(cam.Target)
	app.Camera.camera.Up = toRL(cam.Up)
	app.Camera.camera.Fovy = float32(cam.FOV * 180 / math.Pi)
	app.Camera.camera.Projection = rl.CameraPerspective
}

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
