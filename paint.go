package canvas

// Brush is the source of color for a Paint: a solid color, a gradient or
// a pattern. Implementations are immutable and live in this package.
type Brush interface {
	brushMarker()

	// ColorAt returns the straight-alpha color at user-space (x, y).
	ColorAt(x, y float64) RGBA
}

// SolidBrush paints one color everywhere.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush.
func (b SolidBrush) ColorAt(_, _ float64) RGBA { return b.Color }

// Solid returns a brush painting c.
func Solid(c RGBA) SolidBrush { return SolidBrush{Color: c} }

// PaintStyle selects whether a draw fills or strokes.
type PaintStyle uint8

const (
	StyleFill PaintStyle = iota
	StyleStroke
)

func (s PaintStyle) String() string {
	if s == StyleStroke {
		return "stroke"
	}
	return "fill"
}

// DropShadow is an image filter drawing a blurred, offset, tinted copy of
// the source's alpha underneath it. Sigma is the Gaussian standard
// deviation in device pixels.
type DropShadow struct {
	OffsetX, OffsetY float64
	Sigma            float64
	Color            RGBA
}

// Paint describes how a fill or stroke is rendered.
//
// ImageFilter and MaskBlur are transient: the drawing pipeline attaches
// them for a single draw call and clears them afterwards.
type Paint struct {
	Brush Brush

	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64
	Dash       *Dash

	Blend BlendMode
	// Alpha is the global alpha in [0, 1].
	Alpha float64
	// FilterQuality is the sampling filter for images.
	FilterQuality FilterQuality

	ImageFilter *DropShadow
	// MaskBlur blurs the coverage mask with this sigma when positive.
	MaskBlur float64
}

// DefaultLineWidth and DefaultMiterLimit are the canvas defaults.
const (
	DefaultLineWidth  = 1.0
	DefaultMiterLimit = 10.0
)

// NewPaint returns a paint with canvas defaults and the given color.
func NewPaint(c RGBA) *Paint {
	return &Paint{
		Brush:         Solid(c),
		LineWidth:     DefaultLineWidth,
		MiterLimit:    DefaultMiterLimit,
		Alpha:         1,
		FilterQuality: FilterLow,
	}
}

// Clone returns a copy of p. Brushes are immutable and shared; the dash
// pattern and image filter are copied.
func (p *Paint) Clone() *Paint {
	c := *p
	c.Dash = p.Dash.Clone()
	if p.ImageFilter != nil {
		f := *p.ImageFilter
		c.ImageFilter = &f
	}
	return &c
}

// ColorAt returns the paint color at user-space (x, y) with global alpha
// applied.
func (p *Paint) ColorAt(x, y float64) RGBA {
	if p.Brush == nil {
		return Transparent
	}
	return p.Brush.ColorAt(x, y).WithAlpha(p.Alpha)
}
