package host

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/raster"
)

// ErrInvalidSettings is wrapped by every settings validation error.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings configure a Runtime. They are usually read from a TOML file:
//
//	provider = "raster"
//	width = 300
//	height = 150
//	scale = 2.0
//
//	[defaults]
//	fill_color = "#333"
//	font = "12px serif"
//	smoothing_quality = "high"
//
//	[capabilities]
//	patterns = false
type Settings struct {
	// Provider names a registered surface provider.
	Provider string  `toml:"provider"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Scale    float64 `toml:"scale"`

	Defaults     Defaults     `toml:"defaults"`
	Capabilities Capabilities `toml:"capabilities"`
}

// Defaults override the initial drawing state. Empty strings and zero
// numbers keep the canvas defaults.
type Defaults struct {
	FillColor        string  `toml:"fill_color,omitempty"`
	StrokeColor      string  `toml:"stroke_color,omitempty"`
	ClearColor       string  `toml:"clear_color,omitempty"`
	LineWidth        float64 `toml:"line_width,omitempty"`
	LineCap          string  `toml:"line_cap,omitempty"`
	LineJoin         string  `toml:"line_join,omitempty"`
	MiterLimit       float64 `toml:"miter_limit,omitempty"`
	Font             string  `toml:"font,omitempty"`
	TextAlign        string  `toml:"text_align,omitempty"`
	Direction        string  `toml:"direction,omitempty"`
	SmoothingEnabled *bool   `toml:"smoothing_enabled,omitempty"`
	SmoothingQuality string  `toml:"smoothing_quality,omitempty"`
}

// Capabilities switch optional features off. Unset entries stay enabled.
type Capabilities struct {
	MiterLimit *bool `toml:"miter_limit,omitempty"`
	Direction  *bool `toml:"direction,omitempty"`
	Patterns   *bool `toml:"patterns,omitempty"`
}

// DefaultSettings returns a 300x150 raster canvas at scale 1 with the
// canvas defaults.
func DefaultSettings() Settings {
	return Settings{
		Provider: raster.Name,
		Width:    300,
		Height:   150,
		Scale:    1,
	}
}

// LoadSettings reads TOML settings from path on top of DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	md, err := toml.DecodeFile(filepath.Clean(path), &s)
	if err != nil {
		return Settings{}, fmt.Errorf("host: load settings: %w", err)
	}
	return s, finish(s, md)
}

// DecodeSettings reads TOML settings from r on top of DefaultSettings.
func DecodeSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Settings{}, fmt.Errorf("host: decode settings: %w", err)
	}
	return s, finish(s, md)
}

func finish(s Settings, md toml.MetaData) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		canvas.Logger().Warn("host: unknown settings keys ignored", "keys", fmt.Sprint(keys))
	}
	return s.Validate()
}

// WriteSettings encodes s as TOML to w.
func WriteSettings(w io.Writer, s Settings) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("host: encode settings: %w", err)
	}
	return nil
}

// SaveSettings writes s as TOML to path.
func SaveSettings(path string, s Settings) error {
	var b strings.Builder
	if err := WriteSettings(&b, s); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("host: save settings: %w", err)
	}
	return nil
}

// Validate checks sizes and colors.
func (s Settings) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("host: size %dx%d: %w", s.Width, s.Height, ErrInvalidSettings)
	}
	if s.Scale < 0 {
		return fmt.Errorf("host: scale %v: %w", s.Scale, ErrInvalidSettings)
	}
	for _, c := range []struct{ key, value string }{
		{"fill_color", s.Defaults.FillColor},
		{"stroke_color", s.Defaults.StrokeColor},
		{"clear_color", s.Defaults.ClearColor},
	} {
		if c.value == "" {
			continue
		}
		if _, ok := canvas.ParseColor(c.value); !ok {
			return fmt.Errorf("host: %s %q: %w", c.key, c.value, ErrInvalidSettings)
		}
	}
	if s.Defaults.LineWidth < 0 || s.Defaults.MiterLimit < 0 {
		return fmt.Errorf("host: negative line metrics: %w", ErrInvalidSettings)
	}
	return nil
}

// Config returns the canvas configuration the settings describe.
func (s Settings) Config() canvas.Config {
	cfg := canvas.DefaultConfig()
	d := s.Defaults
	if c, ok := canvas.ParseColor(d.FillColor); ok {
		cfg.FillColor = c
	}
	if c, ok := canvas.ParseColor(d.StrokeColor); ok {
		cfg.StrokeColor = c
	}
	if c, ok := canvas.ParseColor(d.ClearColor); ok {
		cfg.ClearColor = c
	}
	if d.LineWidth > 0 {
		cfg.LineWidth = d.LineWidth
	}
	if d.LineCap != "" {
		cfg.LineCap = canvas.ParseLineCap(d.LineCap)
	}
	if d.LineJoin != "" {
		cfg.LineJoin = canvas.ParseLineJoin(d.LineJoin)
	}
	if d.MiterLimit > 0 {
		cfg.MiterLimit = d.MiterLimit
	}
	if d.Font != "" {
		cfg.Font = d.Font
	}
	if d.TextAlign != "" {
		cfg.TextAlign = canvas.ParseTextAlign(d.TextAlign)
	}
	if d.Direction != "" {
		cfg.Direction = canvas.ParseDirection(d.Direction)
	}
	if d.SmoothingEnabled != nil {
		cfg.SmoothingEnabled = *d.SmoothingEnabled
	}
	if d.SmoothingQuality != "" {
		cfg.SmoothingQuality = canvas.ParseSmoothingQuality(d.SmoothingQuality)
	}
	c := s.Capabilities
	if c.MiterLimit != nil {
		cfg.Capabilities.MiterLimit = *c.MiterLimit
	}
	if c.Direction != nil {
		cfg.Capabilities.Direction = *c.Direction
	}
	if c.Patterns != nil {
		cfg.Capabilities.Patterns = *c.Patterns
	}
	return cfg
}
