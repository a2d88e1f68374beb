package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"github.com/philipparndt/goextrude/internal/editor"
	"github.com/philipparndt/goextrude/pkg/watcher"
)

// CameraState holds the navigation gesture state. The camera itself lives
// in the scene so picking and drawing share it.
type CameraState struct {
	camera        rl.Camera3D
	isOrbiting    bool
	isPanning     bool
	defaultDist   float64 // Default camera distance (for reset)
	defaultAngleX float64 // Default camera angle X (for reset)
	defaultAngleY float64 // Default camera angle Y (for reset)
}

// MeshCache holds GPU copies of polygon buffers
type MeshCache struct {
	material rl.Material
	meshes   map[uuid.UUID]*gpuMesh
}

type gpuMesh struct {
	mesh    rl.Mesh
	version uint64
}

// InteractionState holds pointer state between frames
type InteractionState struct {
	lastMousePos rl.Vector2
	buttons      editor.ButtonMask // buttons whose press reached the editor
	hovered      uuid.UUID
}

// UIState holds control panel layout and widget state
type UIState struct {
	panel         rl.Rectangle
	modeButtons   []rl.Rectangle
	slider        rl.Rectangle
	capToggle     rl.Rectangle
	draggingSlide bool
	message       string
	messageTime   time.Time
}

// ReloadState tracks config hot reload
type ReloadState struct {
	configWatcher *watcher.FileWatcher
	changed       chan string
}
