package canvas

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA is a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Transparent = RGBA{}
)

// RGB returns an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// ARGB decodes a 0xAARRGGBB value, the color encoding hosts pass across
// the binding layer.
func ARGB(v uint32) RGBA {
	return RGBA{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: float64(v>>24) / 255,
	}
}

// ARGB encodes c as 0xAARRGGBB.
func (c RGBA) ARGB() uint32 {
	return uint32(to8(c.A))<<24 | uint32(to8(c.R))<<16 | uint32(to8(c.G))<<8 | uint32(to8(c.B))
}

// FromColor converts any color.Color.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Premultiplied returns c as an 8-bit premultiplied color.
func (c RGBA) Premultiplied() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: to8(clamp01(c.R) * a),
		G: to8(clamp01(c.G) * a),
		B: to8(clamp01(c.B) * a),
		A: to8(a),
	}
}

// NRGBA returns c as an 8-bit straight-alpha color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A *= a
	return c
}

// IsTransparent reports whether c has no coverage.
func (c RGBA) IsTransparent() bool { return c.A <= 0 }

// Lerp interpolates between c (t=0) and other (t=1) in premultiplied space.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	a := c.A + (other.A-c.A)*t
	if a <= 0 {
		return Transparent
	}
	mix := func(x, y float64) float64 {
		return (x*c.A + (y*other.A-x*c.A)*t) / a
	}
	return RGBA{R: mix(c.R, other.R), G: mix(c.G, other.G), B: mix(c.B, other.B), A: a}
}

func clamp01(x float64) float64 {
	switch {
	case x < 0 || math.IsNaN(x):
		return 0
	case x > 1:
		return 1
	}
	return x
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

// ParseColor parses a CSS color: #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb(), rgba(), "transparent" and the CSS named colors.
func ParseColor(s string) (RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "transparent":
		return Transparent, true
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return FromColor(c), true
	}
	return RGBA{}, false
}

func parseHexColor(h string) (RGBA, bool) {
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return RGBA{}, false
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, false
	}
	// #rrggbbaa -> 0xaarrggbb
	return ARGB(uint32(v>>8) | uint32(v&0xff)<<24), true
}

func parseRGBFunc(s string) (RGBA, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return RGBA{}, false
	}
	args := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, false
	}
	var ch [4]float64
	ch[3] = 1
	for i, a := range args {
		pct := strings.HasSuffix(a, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
		if err != nil {
			return RGBA{}, false
		}
		switch {
		case pct:
			v /= 100
		case i < 3:
			v /= 255
		}
		ch[i] = clamp01(v)
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}
