package raster

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
)

// Built-in family names.
const (
	FamilyGo     = "go"
	FamilyGoMono = "go mono"
)

// boldWeight is the lowest CSS weight rendered with a bold face.
const boldWeight = 600

// maxFontSize keeps glyph scales inside 26.6 fixed point.
const maxFontSize = 1 << 20

type faceKey struct {
	family       string
	bold, italic bool
}

// face is one parsed font file. The go-text font drives shaping and the
// sfnt font provides outlines; both read the same glyph ids.
type face struct {
	shape   *font.Font
	outline *sfnt.Font
}

// FontLibrary resolves canvas fonts to faces, shapes text with HarfBuzz
// and turns shaped runs into outlines. It is safe for concurrent use.
//
// A new library knows the Go fonts: "sans-serif", "serif" and any
// unknown family use Go, "monospace" uses Go Mono.
type FontLibrary struct {
	mu    sync.RWMutex
	faces map[faceKey]*face

	shapers sync.Pool
	buffers sync.Pool
}

// NewFontLibrary returns a library holding the built-in Go fonts.
func NewFontLibrary() *FontLibrary {
	l := &FontLibrary{
		faces: make(map[faceKey]*face),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		buffers: sync.Pool{
			New: func() any { return &sfnt.Buffer{} },
		},
	}
	builtin := []struct {
		family       string
		bold, italic bool
		data         []byte
	}{
		{FamilyGo, false, false, goregular.TTF},
		{FamilyGo, true, false, gobold.TTF},
		{FamilyGo, false, true, goitalic.TTF},
		{FamilyGo, true, true, gobolditalic.TTF},
		{FamilyGoMono, false, false, gomono.TTF},
		{FamilyGoMono, true, false, gomonobold.TTF},
		{FamilyGoMono, false, true, gomonoitalic.TTF},
		{FamilyGoMono, true, true, gomonobolditalic.TTF},
	}
	for _, b := range builtin {
		if err := l.Register(b.family, b.bold, b.italic, b.data); err != nil {
			canvas.Logger().Warn("raster: built-in font", "family", b.family, "err", err)
		}
	}
	return l
}

var defaultFonts = sync.OnceValue(NewFontLibrary)

// DefaultFonts returns the library shared by surfaces that were not given
// one.
func DefaultFonts() *FontLibrary { return defaultFonts() }

// Register adds a TrueType or OpenType font under family. Family names
// are matched case-insensitively.
func (l *FontLibrary) Register(family string, bold, italic bool, data []byte) error {
	gt, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("raster: parse font %q: %w", family, err)
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("raster: parse font %q: %w", family, err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.faces[faceKey{family: normalizeFamily(family), bold: bold, italic: italic}] = &face{shape: gt.Font, outline: sf}
	return nil
}

// HasFamily reports whether any face is registered under family.
func (l *FontLibrary) HasFamily(family string) bool {
	name := normalizeFamily(family)
	l.mu.RLock()
	defer l.mu.RUnlock()
	for k := range l.faces {
		if k.family == name {
			return true
		}
	}
	return false
}

func normalizeFamily(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.ToLower(strings.TrimSpace(s))
}

// resolve walks the comma-separated family list of f and returns the
// first registered face, preferring the exact bold/italic variant.
func (l *FontLibrary) resolve(f canvas.Font) *face {
	bold := f.Weight >= boldWeight
	italic := f.Style != canvas.FontStyleNormal

	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, name := range strings.Split(f.Family, ",") {
		if fc := l.variant(genericFamily(normalizeFamily(name)), bold, italic); fc != nil {
			return fc
		}
	}
	return l.variant(FamilyGo, bold, italic)
}

func (l *FontLibrary) variant(family string, bold, italic bool) *face {
	for _, k := range []faceKey{
		{family, bold, italic},
		{family, bold, false},
		{family, false, italic},
		{family, false, false},
	} {
		if fc, ok := l.faces[k]; ok {
			return fc
		}
	}
	return nil
}

func genericFamily(name string) string {
	switch name {
	case "monospace", "ui-monospace":
		return FamilyGoMono
	case "sans-serif", "serif", "system-ui", "ui-sans-serif", "ui-serif", "cursive", "fantasy":
		return FamilyGo
	}
	return name
}

func fontSize(f canvas.Font) (fixed.Int26_6, bool) {
	if !(f.Size > 0) || math.IsInf(f.Size, 0) {
		return 0, false
	}
	return fixed.Int26_6(math.Round(min(f.Size, maxFontSize) * 64)), true
}

func (l *FontLibrary) shape(text string, fc *face, size fixed.Int26_6, dir canvas.Direction) []shaping.Glyph {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	d := di.DirectionLTR
	if dir == canvas.DirectionRTL {
		d = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: d,
		Face:      font.NewFace(fc.shape),
		Size:      size,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := l.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	l.shapers.Put(hb)
	return out.Glyphs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// Measure returns the advance width of text in user units.
func (l *FontLibrary) Measure(text string, f canvas.Font, dir canvas.Direction) float64 {
	size, ok := fontSize(f)
	if !ok {
		return 0
	}
	var w fixed.Int26_6
	for _, g := range l.shape(text, l.resolve(f), size, dir) {
		w += g.Advance
	}
	return fixedToFloat(w)
}

// Path returns the outline of text with its alphabetic baseline starting
// at (x, y). Glyphs without outlines (spaces, color glyphs) only advance
// the pen.
func (l *FontLibrary) Path(text string, x, y float64, f canvas.Font, dir canvas.Direction) *canvas.Path {
	p := canvas.NewPath()
	size, ok := fontSize(f)
	if !ok {
		return p
	}
	fc := l.resolve(f)
	buf := l.buffers.Get().(*sfnt.Buffer)
	defer l.buffers.Put(buf)

	pen := x
	for _, g := range l.shape(text, fc, size, dir) {
		segs, err := fc.outline.LoadGlyph(buf, sfnt.GlyphIndex(g.GlyphID), size, nil)
		if err == nil {
			appendGlyph(p, segs, pen+fixedToFloat(g.XOffset), y-fixedToFloat(g.YOffset))
		}
		pen += fixedToFloat(g.Advance)
	}
	return p
}

// appendGlyph adds sfnt segments, which are y-down and relative to the
// glyph origin, at (ox, oy).
func appendGlyph(p *canvas.Path, segs sfnt.Segments, ox, oy float64) {
	pt := func(q fixed.Point26_6) (float64, float64) {
		return ox + fixedToFloat(q.X), oy + fixedToFloat(q.Y)
	}
	started := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				p.Close()
			}
			p.MoveTo(pt(s.Args[0]))
			started = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(s.Args[0])
			x, y := pt(s.Args[1])
			p.QuadraticTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(s.Args[0])
			c2x, c2y := pt(s.Args[1])
			x, y := pt(s.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if started {
		p.Close()
	}
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
