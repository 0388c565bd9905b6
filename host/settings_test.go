package host

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/canvas"
)

func TestDecodeSettings(t *testing.T) {
	const doc = `
provider = "recording"
width = 640
scale = 2.0

[defaults]
fill_color = "#ff0000"
line_width = 3
line_cap = "round"
font = "bold 12px serif"
smoothing_enabled = false
smoothing_quality = "high"

[capabilities]
patterns = false
`
	s, err := DecodeSettings(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if s.Provider != "recording" || s.Width != 640 || s.Height != 150 || s.Scale != 2 {
		t.Errorf("Settings = %+v", s)
	}

	cfg := s.Config()
	want := canvas.DefaultConfig()
	want.FillColor = canvas.RGB(1, 0, 0)
	want.LineWidth = 3
	want.LineCap = canvas.LineCapRound
	want.Font = "bold 12px serif"
	want.SmoothingEnabled = false
	want.SmoothingQuality = canvas.FilterHigh
	want.Capabilities.Patterns = false
	if cfg != want {
		t.Errorf("Config() = %+v, want %+v", cfg, want)
	}
}

func TestDecodeSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", "width = "},
		{"type", `width = "wide"`},
		{"negative size", "width = -1"},
		{"bad color", "[defaults]\nstroke_color = \"nope\""},
		{"negative line width", "[defaults]\nline_width = -2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSettings(strings.NewReader(tt.doc)); err == nil {
				t.Errorf("DecodeSettings(%q) succeeded", tt.doc)
			}
		})
	}
	_, err := DecodeSettings(strings.NewReader("scale = -1.0"))
	if !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("error = %v, want ErrInvalidSettings", err)
	}
}

func TestSettingsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.toml")
	s := DefaultSettings()
	s.Width = 64
	s.Defaults.TextAlign = "center"
	off := false
	s.Capabilities.Direction = &off
	if err := SaveSettings(path, s); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width != 64 || got.Defaults.TextAlign != "center" {
		t.Errorf("LoadSettings() = %+v", got)
	}
	if got.Capabilities.Direction == nil || *got.Capabilities.Direction {
		t.Error("capabilities.direction not restored")
	}
	if got.Config().Capabilities.Direction {
		t.Error("Config() kept the direction capability")
	}

	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadSettings(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestRuntimeUsesSettings(t *testing.T) {
	s := DefaultSettings()
	s.Defaults.LineWidth = 4
	s.Defaults.FillColor = "rgb(0, 128, 0)"
	rt, err := NewRuntime(s)
	if err != nil {
		t.Fatal(err)
	}
	ctx := newContext(t, rt, 4, 4)
	c, _ := rt.Context(ctx)
	if c.LineWidth() != 4 {
		t.Errorf("LineWidth() = %v, want 4", c.LineWidth())
	}
	rt.FillRect(ctx, 0, 0, 4, 4)
	if got := pixelAt(t, rt, ctx, 1, 1); got.G != 128 || got.A != 255 {
		t.Errorf("pixel = %v, want green", got)
	}
}
