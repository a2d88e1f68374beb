package config

import (
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA color written as #RGB, #RRGGBB or #RRGGBBAA in YAML
type Color color.RGBA

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. Alpha defaults to 255.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color %q must start with #", s)
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexDigit(hex[i]); !ok {
			return Color{}, fmt.Errorf("color %q has invalid digit %q", s, hex[i])
		}
	}

	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		return Color{R: nibble(hex[0]) * 17, G: nibble(hex[1]) * 17, B: nibble(hex[2]) * 17, A: 255}, nil
	case 6:
		return Color{R: hexByte(hex[0:2]), G: hexByte(hex[2:4]), B: hexByte(hex[4:6]), A: 255}, nil
	case 8:
		return Color{R: hexByte(hex[0:2]), G: hexByte(hex[2:4]), B: hexByte(hex[4:6]), A: hexByte(hex[6:8])}, nil
	}
	return Color{}, fmt.Errorf("color %q must have 3, 6 or 8 hex digits", s)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func nibble(c byte) uint8 {
	v, _ := hexDigit(c)
	return v
}

func hexByte(s string) uint8 {
	return nibble(s[0])<<4 + nibble(s[1])
}

// RGBA returns the color as image/color
func (c Color) RGBA() color.RGBA { return color.RGBA(c) }

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
