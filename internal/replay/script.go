// Package replay drives the editor from a YAML event script against the
// headless scene. It is used for reproducing interactions without a window.
package replay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a recorded interaction
type Script struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Camera CameraConfig `yaml:"camera"`
	Steps  []Step       `yaml:"steps"`
}

// CameraConfig places the orbit camera. Angles are in degrees.
type CameraConfig struct {
	Target    [3]float64 `yaml:"target"`
	Distance  float64    `yaml:"distance"`
	Elevation float64    `yaml:"elevation"`
	Azimuth   float64    `yaml:"azimuth"`
}

// Step is one event. Exactly one field must be set.
type Step struct {
	Mode   string   `yaml:"mode,omitempty"`
	Height *float64 `yaml:"height,omitempty"`
	Down   *Pointer `yaml:"down,omitempty"`
	Move   *Pointer `yaml:"move,omitempty"`
	Up     *Pointer `yaml:"up,omitempty"`
	Click  *Pointer `yaml:"click,omitempty"`
	Key    string   `yaml:"key,omitempty"`
	Resize *[2]int  `yaml:"resize,omitempty"`
}

// Pointer is a screen position given either in pixels or as a world point
// that is projected through the script camera
type Pointer struct {
	Pos    *[2]float64 `yaml:"pos,omitempty"`
	At     *[3]float64 `yaml:"at,omitempty"`
	Button string      `yaml:"button,omitempty"`
}

// Load reads a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	script, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load script %s: %w", path, err)
	}
	return script, nil
}

// Parse decodes and validates a script, filling in viewport and camera defaults
func Parse(data []byte) (*Script, error) {
	script := &Script{
		Width:  800,
		Height: 600,
		Camera: CameraConfig{Distance: 40, Elevation: 30, Azimuth: 22.5},
	}
	if err := yaml.Unmarshal(data, script); err != nil {
		return nil, err
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return script, nil
}

// Validate checks that every step holds exactly one event
func (s *Script) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", s.Width, s.Height))
	}
	if s.Camera.Distance <= 0 {
		errs = append(errs, fmt.Errorf("camera distance must be positive, got %v", s.Camera.Distance))
	}
	for i, step := range s.Steps {
		if n := step.events(); n != 1 {
			errs = append(errs, fmt.Errorf("step %d: expected exactly one event, got %d", i+1, n))
			continue
		}
		for _, p := range []*Pointer{step.Down, step.Move, step.Up, step.Click} {
			if p == nil {
				continue
			}
			if err := p.validate(); err != nil {
				errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (s Step) events() int {
	n := 0
	for _, set := range []bool{
		s.Mode != "", s.Height != nil, s.Down != nil, s.Move != nil,
		s.Up != nil, s.Click != nil, s.Key != "", s.Resize != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func (p *Pointer) validate() error {
	if (p.Pos == nil) == (p.At == nil) {
		return errors.New("pointer needs either pos or at")
	}
	switch p.Button {
	case "", "primary", "secondary":
		return nil
	}
	return fmt.Errorf("unknown button %q", p.Button)
}
