package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"github.com/philipparndt/goextrude/internal/editor"
	"github.com/philipparndt/goextrude/internal/scene"
)

var modeKeys = map[int32]editor.Mode{
	rl.KeyOne:   editor.ModeDraw,
	rl.KeyTwo:   editor.ModeMove,
	rl.KeyThree: editor.ModeEditVertex,
	rl.KeyFour:  editor.ModeExtrude,
}

var editorKeys = map[int32]string{
	rl.KeyX:      "x",
	rl.KeyY:      "y",
	rl.KeyZ:      "z",
	rl.KeyEscape: "Escape",
}

// handleInput turns raylib input into editor events
func (app *App) handleInput() {
	if rl.IsWindowResized() {
		app.editor.Resize(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
		app.layoutUI()
	}

	for key, mode := range modeKeys {
		if rl.IsKeyPressed(key) {
			app.setMode(mode)
		}
	}
	for key, name := range editorKeys {
		if rl.IsKeyPressed(key) {
			app.editor.KeyDown(editor.KeyEvent{Key: name})
		}
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}

	mousePos := rl.GetMousePosition()
	defer func() { app.Interaction.lastMousePos = mousePos }()

	// The panel swallows clicks unless the editor is mid-gesture
	if app.handleUIInput(mousePos) {
		return
	}

	x, y := float64(mousePos.X), float64(mousePos.Y)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.pointerDown(x, y, editor.ButtonPrimary)
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		app.pointerDown(x, y, editor.ButtonSecondary)
	}

	if mousePos != app.Interaction.lastMousePos {
		app.editor.PointerMove(editor.PointerEvent{X: x, Y: y, Buttons: app.Interaction.buttons})
	}
	app.updateHover()

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.pointerUp(x, y, editor.ButtonPrimary)
	}
	if rl.IsMouseButtonReleased(rl.MouseRightButton) {
		app.pointerUp(x, y, editor.ButtonSecondary)
	}

	app.handleCameraInput()
}

func (app *App) pointerDown(x, y float64, button editor.ButtonMask) {
	app.Interaction.buttons |= button
	app.editor.PointerDown(editor.PointerEvent{X: x, Y: y, Buttons: button})
}

// pointerUp only reports buttons whose press reached the editor
func (app *App) pointerUp(x, y float64, button editor.ButtonMask) {
	if !app.Interaction.buttons.Has(button) {
		return
	}
	app.Interaction.buttons &^= button
	app.editor.PointerUp(editor.PointerEvent{X: x, Y: y, Buttons: app.Interaction.buttons})
}

// updateHover remembers the polygon under the pointer for the outline and
// the info panel
func (app *App) updateHover() {
	app.Interaction.hovered = uuid.Nil
	for _, hit := range app.editor.LastHits() {
		if p, ok := hit.Object.(*scene.Polygon); ok {
			app.Interaction.hovered = p.ID()
			return
		}
		if cp, ok := hit.Object.(*scene.ControlPoint); ok && cp.Owner() != nil {
			app.Interaction.hovered = cp.Owner().ID()
			return
		}
	}
}

func (app *App) setMode(m editor.Mode) {
	if m == app.editor.Mode() {
		return
	}
	app.editor.SetMode(m)
	app.showMessage("Mode: " + m.Label())
}
