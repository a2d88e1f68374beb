package app

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goextrude/internal/editor"
	"github.com/philipparndt/goextrude/internal/scene"
	"github.com/philipparndt/goextrude/pkg/analysis"
	"github.com/philipparndt/goextrude/version"
)

const (
	panelX        = 10
	panelY        = 10
	panelWidth    = 260
	buttonHeight  = 28
	lineHeight    = 20
	minHeight     = 0.5
	maxHeight     = 50.0
	messageExpiry = 2 * time.Second
)

var (
	panelColor  = rl.NewColor(0, 0, 0, 180)
	activeColor = rl.NewColor(70, 130, 220, 255)
	buttonColor = rl.NewColor(50, 50, 60, 255)
)

// layoutUI computes the control panel rectangles
func (app *App) layoutUI() {
	y := float32(panelY + 30)
	modes := editor.Modes()
	app.UI.modeButtons = make([]rl.Rectangle, len(modes))
	for i := range modes {
		app.UI.modeButtons[i] = rl.Rectangle{X: panelX + 10, Y: y, Width: panelWidth - 20, Height: buttonHeight}
		y += buttonHeight + 4
	}
	y += 30
	app.UI.slider = rl.Rectangle{X: panelX + 10, Y: y, Width: panelWidth - 20, Height: 12}
	y += 24
	app.UI.capToggle = rl.Rectangle{X: panelX + 10, Y: y, Width: 16, Height: 16}
	y += 30
	app.UI.panel = rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: y - panelY + 8*lineHeight}
}

// handleUIInput applies clicks on the panel. It returns true when the
// pointer belongs to the panel this frame.
func (app *App) handleUIInput(mousePos rl.Vector2) bool {
	if app.UI.draggingSlide {
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			app.setHeightFromSlider(mousePos.X)
		} else {
			app.UI.draggingSlide = false
		}
		return true
	}

	// a drag that started in the viewport keeps going over the panel
	if app.editor.Dragging() || !rl.CheckCollisionPointRec(mousePos, app.UI.panel) {
		return false
	}
	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		return true
	}

	for i, rect := range app.UI.modeButtons {
		if rl.CheckCollisionPointRec(mousePos, rect) {
			app.setMode(editor.Modes()[i])
			return true
		}
	}

	grab := app.UI.slider
	grab.Y -= 6
	grab.Height += 12
	if rl.CheckCollisionPointRec(mousePos, grab) {
		app.UI.draggingSlide = true
		app.setHeightFromSlider(mousePos.X)
		return true
	}

	if rl.CheckCollisionPointRec(mousePos, app.UI.capToggle) {
		app.editor.SetCapBottom(!app.editor.CapBottom())
	}
	return true
}

func (app *App) setHeightFromSlider(mouseX float32) {
	t := float64((mouseX - app.UI.slider.X) / app.UI.slider.Width)
	t = math.Max(0, math.Min(1, t))
	h := minHeight + t*(maxHeight-minHeight)
	// snap to tenths
	h = math.Round(h*10) / 10
	if err := app.editor.SetExtrusionHeight(h); err != nil {
		app.log.Warn("failed to set extrusion height", "height", h, "error", err)
	}
}

func (app *App) showMessage(msg string) {
	app.UI.message = msg
	app.UI.messageTime = time.Now()
}

// drawUI draws the control panel and the status line
func (app *App) drawUI() {
	rl.DrawRectangleRec(app.UI.panel, panelColor)

	x := int32(panelX + 10)
	y := int32(panelY + 8)
	rl.DrawText("Mode", x, y, 18, rl.Yellow)

	current := app.editor.Mode()
	for i, m := range editor.Modes() {
		rect := app.UI.modeButtons[i]
		bg := buttonColor
		if m == current {
			bg = activeColor
		}
		rl.DrawRectangleRec(rect, bg)
		label := fmt.Sprintf("%d  %s", i+1, m.Label())
		rl.DrawText(label, int32(rect.X)+10, int32(rect.Y)+7, 16, rl.White)
	}

	// Extrusion height slider
	s := app.UI.slider
	height := app.editor.ExtrusionHeight()
	rl.DrawText(fmt.Sprintf("Extrusion height: %.1f", height), x, int32(s.Y)-22, 16, rl.White)
	rl.DrawRectangleRec(s, buttonColor)
	t := float32((math.Min(height, maxHeight) - minHeight) / (maxHeight - minHeight))
	rl.DrawRectangleRec(rl.Rectangle{X: s.X, Y: s.Y, Width: s.Width * t, Height: s.Height}, activeColor)
	rl.DrawCircle(int32(s.X+s.Width*t), int32(s.Y+s.Height/2), 8, rl.White)

	// Bottom cap toggle
	c := app.UI.capToggle
	rl.DrawRectangleLinesEx(c, 2, rl.White)
	if app.editor.CapBottom() {
		rl.DrawRectangle(int32(c.X)+4, int32(c.Y)+4, int32(c.Width)-8, int32(c.Height)-8, rl.White)
	}
	rl.DrawText("Cap bottom", int32(c.X+c.Width)+8, int32(c.Y), 16, rl.White)

	y = int32(c.Y) + 30
	y = app.drawStatus(x, y)
	app.drawHoveredInfo(x, y)

	app.drawFooter()
}

// drawStatus lists the interaction state
func (app *App) drawStatus(x, y int32) int32 {
	pending := len(app.editor.PendingPoints())
	polygons := len(app.scene.Polygons())
	rl.DrawText(fmt.Sprintf("Polygons: %d", polygons), x, y, 14, rl.LightGray)
	y += lineHeight
	if app.editor.Mode() == editor.ModeDraw {
		rl.DrawText(fmt.Sprintf("Outline points: %d", pending), x, y, 14, rl.LightGray)
		y += lineHeight
	}
	if axis, ok := app.editor.AxisLock(); ok {
		rl.DrawText(fmt.Sprintf("Locked axis: %s", axis), x, y, 14, rl.Orange)
		y += lineHeight
	}
	return y
}

// drawHoveredInfo shows measurements of the polygon under the pointer
func (app *App) drawHoveredInfo(x, y int32) {
	var hovered *scene.Polygon
	for _, p := range app.scene.Polygons() {
		if p.ID() == app.Interaction.hovered {
			hovered = p
			break
		}
	}
	if hovered == nil {
		return
	}

	m := analysis.AnalyzeMesh(hovered.Mesh(), hovered.Position())
	lines := []string{
		hovered.Kind().String(),
		fmt.Sprintf("  Triangles: %d", m.TriangleCount),
		fmt.Sprintf("  Size: %.2f x %.2f x %.2f", m.Dimensions.X, m.Dimensions.Y, m.Dimensions.Z),
		fmt.Sprintf("  Area: %.2f", m.SurfaceArea),
	}
	if hovered.Kind() == scene.KindExtrudedPolygon {
		lines = append(lines, fmt.Sprintf("  Volume: %.2f", m.Volume))
	}
	for i, line := range lines {
		c := rl.White
		if i == 0 {
			c = rl.Yellow
		}
		rl.DrawText(line, x, y, 14, c)
		y += lineHeight
	}
}

// drawFooter shows help, transient messages and the version
func (app *App) drawFooter() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	help := "LMB: place/drag  RMB: close outline  MMB: orbit  Shift+MMB: pan  Wheel: zoom  X/Y/Z: lock axis  Esc: cancel"
	rl.DrawText(help, 10, screenHeight-24, 14, rl.Gray)

	ver := "goextrude " + version.GetVersion()
	rl.DrawText(ver, screenWidth-rl.MeasureText(ver, 14)-10, screenHeight-24, 14, rl.Gray)

	if app.UI.message != "" && time.Since(app.UI.messageTime) < messageExpiry {
		w := rl.MeasureText(app.UI.message, 20)
		rl.DrawText(app.UI.message, (screenWidth-w)/2, 20, 20, rl.Yellow)
	}
}
