package canvas

// Capabilities gate features that only some host platforms expose. A
// setter for a disabled feature is a no-op.
type Capabilities struct {
	MiterLimit bool
	Direction  bool
	Patterns   bool
}

// AllCapabilities enables every optional feature.
func AllCapabilities() Capabilities {
	return Capabilities{MiterLimit: true, Direction: true, Patterns: true}
}

// Config holds the initial drawing state of a Context. It is read once
// when the Context is created and whenever the state is reset.
type Config struct {
	FillColor   RGBA
	StrokeColor RGBA
	LineWidth   float64
	LineCap     LineCap
	LineJoin    LineJoin
	MiterLimit  float64
	Font        string
	TextAlign   TextAlign
	Direction   Direction

	SmoothingEnabled bool
	SmoothingQuality FilterQuality

	// ClearColor is painted by ClearCanvas.
	ClearColor RGBA

	Capabilities Capabilities
}

// DefaultConfig returns the canvas defaults: black fill and stroke, a
// 1px butt/miter line with miter limit 10, "10px sans-serif", left
// aligned left-to-right text, low quality smoothing, white clear color
// and every capability enabled.
func DefaultConfig() Config {
	return Config{
		FillColor:        Black,
		StrokeColor:      Black,
		LineWidth:        DefaultLineWidth,
		LineCap:          LineCapButt,
		LineJoin:         LineJoinMiter,
		MiterLimit:       DefaultMiterLimit,
		Font:             DefaultFont,
		TextAlign:        TextAlignLeft,
		Direction:        DirectionLTR,
		SmoothingEnabled: true,
		SmoothingQuality: FilterLow,
		ClearColor:       White,
		Capabilities:     AllCapabilities(),
	}
}

func (c Config) fillPaint() *Paint {
	p := NewPaint(c.FillColor)
	c.applyLine(p)
	return p
}

func (c Config) strokePaint() *Paint {
	p := NewPaint(c.StrokeColor)
	c.applyLine(p)
	return p
}

func (c Config) applyLine(p *Paint) {
	p.LineWidth = c.LineWidth
	p.LineCap = c.LineCap
	p.LineJoin = c.LineJoin
	p.MiterLimit = c.MiterLimit
	p.FilterQuality = smoothingFilter(c.SmoothingEnabled, c.SmoothingQuality)
}

// smoothingFilter maps imageSmoothingEnabled/imageSmoothingQuality to a
// filter quality.
func smoothingFilter(enabled bool, quality FilterQuality) FilterQuality {
	if !enabled {
		return FilterNone
	}
	if quality == FilterNone {
		return FilterLow
	}
	return quality
}
