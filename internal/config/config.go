// Package config loads the editor settings from a YAML file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/goextrude/internal/editor"
	"github.com/philipparndt/goextrude/internal/scene"
)

// DefaultPath is used when no --config flag is given
const DefaultPath = "goextrude.yaml"

// Config is the whole settings file
type Config struct {
	Editor     EditorConfig     `yaml:"editor"`
	Colors     ColorConfig      `yaml:"colors"`
	Primitives PrimitivesConfig `yaml:"primitives"`
	Window     WindowConfig     `yaml:"window"`
	Log        LogConfig        `yaml:"log"`
}

type EditorConfig struct {
	ExtrusionHeight float64     `yaml:"extrusion_height"`
	CapBottom       bool        `yaml:"cap_bottom"`
	InitialMode     editor.Mode `yaml:"initial_mode"`
}

type ColorConfig struct {
	ControlPoint    Color `yaml:"control_point"`
	Polygon         Color `yaml:"polygon"`
	ExtrudedPolygon Color `yaml:"extruded_polygon"`
	Highlight       Color `yaml:"highlight"`
	Ground          Color `yaml:"ground"`
	Reference       Color `yaml:"reference"`
	Background      Color `yaml:"background"`
}

type PrimitivesConfig struct {
	ControlPointRadius float64 `yaml:"control_point_radius"`
	PlaneSize          float64 `yaml:"plane_size"`
	AxesLength         float64 `yaml:"axes_length"`
	ReferenceOpacity   float64 `yaml:"reference_opacity"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			ExtrusionHeight: editor.DefaultExtrusionHeight,
			CapBottom:       true,
			InitialMode:     editor.ModeDraw,
		},
		Colors: ColorConfig{
			ControlPoint:    Color{R: 0xff, A: 0xff},
			Polygon:         Color{G: 0xff, A: 0xff},
			ExtrudedPolygon: Color{G: 0xff, A: 0xff},
			Highlight:       Color{R: 0xff, G: 0xff, A: 0xff},
			Ground:          Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			Reference:       Color{R: 0x88, G: 0xaa, B: 0xff, A: 0xff},
			Background:      Color{R: 0x20, G: 0x20, B: 0x28, A: 0xff},
		},
		Primitives: PrimitivesConfig{
			ControlPointRadius: 0.3,
			PlaneSize:          2000,
			AxesLength:         20,
			ReferenceOpacity:   0.25,
		},
		Window: WindowConfig{
			Width:  1400,
			Height: 900,
			FPS:    60,
			Title:  "goextrude",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path on top of the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the editor cannot work with
func (c *Config) Validate() error {
	var errs []error
	if c.Editor.ExtrusionHeight <= 0 {
		errs = append(errs, fmt.Errorf("editor.extrusion_height must be positive, got %v", c.Editor.ExtrusionHeight))
	}
	if c.Primitives.ControlPointRadius <= 0 {
		errs = append(errs, fmt.Errorf("primitives.control_point_radius must be positive, got %v", c.Primitives.ControlPointRadius))
	}
	if c.Primitives.PlaneSize <= 0 {
		errs = append(errs, fmt.Errorf("primitives.plane_size must be positive, got %v", c.Primitives.PlaneSize))
	}
	if c.Primitives.AxesLength <= 0 {
		errs = append(errs, fmt.Errorf("primitives.axes_length must be positive, got %v", c.Primitives.AxesLength))
	}
	if o := c.Primitives.ReferenceOpacity; o < 0 || o > 1 {
		errs = append(errs, fmt.Errorf("primitives.reference_opacity must be within [0, 1], got %v", o))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("window.fps must be positive, got %d", c.Window.FPS))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Style converts the color and primitive settings for the factory
func (c *Config) Style() scene.Style {
	return scene.Style{
		ControlPointColor:    c.Colors.ControlPoint.RGBA(),
		PolygonColor:         c.Colors.Polygon.RGBA(),
		ExtrudedPolygonColor: c.Colors.ExtrudedPolygon.RGBA(),
		GroundColor:          c.Colors.Ground.RGBA(),
		ReferenceColor:       c.Colors.Reference.RGBA(),
		ReferenceOpacity:     c.Primitives.ReferenceOpacity,
		ControlPointRadius:   c.Primitives.ControlPointRadius,
		PlaneSize:            c.Primitives.PlaneSize,
		AxesLength:           c.Primitives.AxesLength,
	}
}

// EditorOptions converts the editor settings into editor options
func (c *Config) EditorOptions() []editor.Option {
	return []editor.Option{
		editor.WithExtrusionHeight(c.Editor.ExtrusionHeight),
		editor.WithCapBottom(c.Editor.CapBottom),
		editor.WithMode(c.Editor.InitialMode),
		editor.WithHighlight(c.Colors.Highlight.RGBA()),
	}
}
