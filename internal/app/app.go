// Package app is the interactive window: it renders the scene with raylib
// and feeds mouse and keyboard input to the editor.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goextrude/internal/config"
	"github.com/philipparndt/goextrude/internal/editor"
	"github.com/philipparndt/goextrude/internal/scene"
	"github.com/philipparndt/goextrude/pkg/watcher"
)

const reloadDebounce = 500 * time.Millisecond

// Options configures Run
type Options struct {
	Config     *config.Config
	ConfigPath string
	Log        *slog.Logger
}

type App struct {
	cfg        *config.Config
	configPath string
	log        *slog.Logger

	scene   *scene.Scene
	factory *scene.Factory
	editor  *editor.Editor

	Camera      CameraState
	Meshes      *MeshCache
	Interaction InteractionState
	UI          UIState
	Reload      ReloadState
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	cfg := opts.Config
	win := cfg.Window

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(win.FPS))
	// Escape cancels outlines and axis locks
	rl.SetExitKey(rl.KeyNull)

	sc := scene.NewScene(win.Width, win.Height)
	factory := scene.NewFactory(cfg.Style())
	factory.Populate(sc)

	editorOpts := append(cfg.EditorOptions(), editor.WithLogger(opts.Log))
	app := &App{
		cfg:        cfg,
		configPath: opts.ConfigPath,
		log:        opts.Log,
		scene:      sc,
		factory:    factory,
		editor:     editor.New(sc, factory, editorOpts...),
		Meshes:     newMeshCache(),
		Reload:     ReloadState{changed: make(chan string, 1)},
	}
	defer app.Meshes.unloadAll()

	cam := sc.Camera()
	app.Camera.defaultDist = cam.Distance
	app.Camera.defaultAngleX = cam.RotationX
	app.Camera.defaultAngleY = cam.RotationY
	app.updateCamera()
	app.layoutUI()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := app.setupConfigWatcher(ctx); err != nil {
		app.log.Warn("config hot reload disabled", "error", err)
	} else {
		defer app.Reload.configWatcher.Close()
	}

	app.log.Info("editor started", "mode", app.editor.Mode(), "config", opts.ConfigPath)

	// Main loop
	for !rl.WindowShouldClose() {
		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Config changes must be applied on the main thread
		app.applyPendingReload()

		// Update
		app.handleInput()
		app.updateCamera()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(toRLColor(app.cfg.Colors.Background.RGBA()))

		rl.BeginMode3D(app.Camera.camera)
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}

	return nil
}

// setupConfigWatcher reports config file changes to the main loop
func (app *App) setupConfigWatcher(ctx context.Context) error {
	if app.configPath == "" {
		return fmt.Errorf("no config file")
	}
	fw, err := watcher.NewFileWatcher(reloadDebounce, watcher.WithLogger(app.log))
	if err != nil {
		return err
	}
	err = fw.Watch(app.configPath, func(path string) {
		select {
		case app.Reload.changed <- path:
		default:
			// a reload is already queued
		}
	})
	if err != nil {
		fw.Close()
		return err
	}
	app.Reload.configWatcher = fw
	go fw.Run(ctx)
	return nil
}

// applyPendingReload re-reads the config when the watcher fired
func (app *App) applyPendingReload() {
	select {
	case path := <-app.Reload.changed:
		cfg, err := config.Load(path)
		if err != nil {
			app.log.Warn("config reload failed", "path", path, "error", err)
			app.showMessage("Config error, keeping previous settings")
			return
		}
		app.applyConfig(cfg)
		app.log.Info("config reloaded", "path", path)
		app.showMessage("Config reloaded")
	default:
	}
}

// applyConfig updates settings that can change while running. Window
// settings need a restart.
func (app *App) applyConfig(cfg *config.Config) {
	app.cfg = cfg
	app.factory.SetStyle(cfg.Style())
	app.editor.SetCapBottom(cfg.Editor.CapBottom)
	app.editor.SetHighlight(cfg.Colors.Highlight.RGBA())
	if err := app.editor.SetExtrusionHeight(cfg.Editor.ExtrusionHeight); err != nil {
		app.log.Warn("ignoring extrusion height", "error", err)
	}
}
