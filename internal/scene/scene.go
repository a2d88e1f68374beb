package scene

import (
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/viewer"
)

// Scene is a display without a window. It keeps objects in insertion order
// and picks them by casting rays from its camera. It is driven from one
// goroutine: the lock only covers the object list and viewport, while the
// polygons and markers it holds are mutated without synchronization.
type Scene struct {
	mu              sync.RWMutex
	objects         []Object
	index           map[uuid.UUID]Object
	camera          *viewer.Camera
	width, height   int
	controlsEnabled bool
}

// NewScene creates an empty scene with the default camera
func NewScene(width, height int) *Scene {
	return &Scene{
		index:           make(map[uuid.UUID]Object),
		camera:          viewer.DefaultCamera(),
		width:           width,
		height:          height,
		controlsEnabled: true,
	}
}

// Camera returns the camera used for picking
func (s *Scene) Camera() *viewer.Camera { return s.camera }

// Size returns the viewport size in pixels
func (s *Scene) Size() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height
}

// Resize changes the viewport used to turn pixels into rays
func (s *Scene) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
}

// Insert adds obj. Inserting an object twice is a no-op.
func (s *Scene) Insert(obj Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[obj.ID()]; ok {
		return
	}
	s.index[obj.ID()] = obj
	s.objects = append(s.objects, obj)
}

// Remove deletes obj if present
func (s *Scene) Remove(obj Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[obj.ID()]; !ok {
		return
	}
	delete(s.index, obj.ID())
	s.objects = slices.DeleteFunc(s.objects, func(o Object) bool { return o.ID() == obj.ID() })
}

// Contains reports whether obj is in the scene
func (s *Scene) Contains(obj Object) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[obj.ID()]
	return ok
}

// Objects returns a snapshot in insertion order
func (s *Scene) Objects() []Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.objects)
}

// Polygons returns the flat and extruded polygons in insertion order
func (s *Scene) Polygons() []*Polygon {
	return lo.FilterMap(s.Objects(), func(o Object, _ int) (*Polygon, bool) {
		p, ok := o.(*Polygon)
		return p, ok
	})
}

// SetControlsEnabled toggles camera navigation
func (s *Scene) SetControlsEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controlsEnabled = enabled
}

// ControlsEnabled reports whether camera navigation is on
func (s *Scene) ControlsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.controlsEnabled
}

// Raycast returns every object under the pixel, nearest first
func (s *Scene) Raycast(x, y float64) []Hit {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	return s.IntersectRay(s.camera.Ray(x, y, float64(w), float64(h)))
}

// IntersectRay returns every object hit by ray, nearest first
func (s *Scene) IntersectRay(ray geometry.Ray) []Hit {
	return IntersectObjects(s.Objects(), ray)
}

// fixedBias pushes fixed surfaces behind objects lying on them
const fixedBias = 1e-6

// IntersectObjects tests each object against ray and sorts the hits by
// distance. A polygon drawn on a reference plane is reported before the plane.
func IntersectObjects(objects []Object, ray geometry.Ray) []Hit {
	var hits []Hit
	for _, obj := range objects {
		point, dist, ok := obj.Intersect(ray)
		if !ok {
			continue
		}
		hits = append(hits, Hit{Object: obj, Point: point, Distance: dist})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return sortKey(hits[i]) < sortKey(hits[j])
	})
	return hits
}

func sortKey(h Hit) float64 {
	if h.Object.Kind() == KindFixed {
		return h.Distance + fixedBias
	}
	return h.Distance
}
