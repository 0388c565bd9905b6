package canvas

import (
	"fmt"
	"math"
)

// Shadow holds the shadowBlur, shadowColor and shadowOffset attributes.
type Shadow struct {
	Blur             float64
	Color            RGBA
	OffsetX, OffsetY float64
}

// active reports whether draws cast a shadow: the color is visible and
// the shadow is blurred or displaced.
func (s Shadow) active() bool {
	return s.Color.A > 0 && (s.Blur != 0 || s.OffsetX != 0 || s.OffsetY != 0)
}

// Smoothing holds imageSmoothingEnabled and imageSmoothingQuality.
type Smoothing struct {
	Enabled bool
	Quality FilterQuality
}

// Filter returns the image filter quality the smoothing settings select.
func (s Smoothing) Filter() FilterQuality {
	return smoothingFilter(s.Enabled, s.Quality)
}

// Context is a canvas 2D rendering context. It owns one surface, the
// current path, the fill and stroke paints and the state stack.
//
// A Context is not safe for concurrent use.
type Context struct {
	provider SurfaceProvider
	surface  Surface
	cfg      Config
	decoder  ImageDecoder

	path           *Path
	fill           *Paint
	stroke         *Paint
	font           Font
	lineDashOffset float64
	shadow         Shadow
	smoothing      Smoothing
	deviceScale    float64
	textAlign      TextAlign
	direction      Direction

	states []snapshot
}

// New creates a surface of width x height CSS pixels at scale device
// pixels per CSS pixel from provider and returns a Context drawing on it.
// Creation is the only step that can fail.
func New(provider SurfaceProvider, width, height int, scale float64, opts ...ContextOption) (*Context, error) {
	if width <= 0 || height <= 0 || !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("canvas: %dx%d at scale %v: %w", width, height, scale, ErrInvalidSize)
	}
	s, err := provider.Create(width, height, scale)
	if err != nil {
		return nil, fmt.Errorf("canvas: create surface: %w", err)
	}
	c := NewForSurface(s, opts...)
	c.provider = provider
	return c, nil
}

// NewForSurface returns a Context drawing on an existing surface. Without
// a provider, Resize fails and ToData/ToDataURL return placeholders.
func NewForSurface(s Surface, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Context{surface: s, cfg: o.config, decoder: o.decoder}
	c.deviceScale = s.Scale()
	if !(c.deviceScale > 0) {
		c.deviceScale = 1
	}
	c.resetState()
	s.SetMatrix(c.base())
	return c
}

// resetState applies the configured defaults to every state field.
func (c *Context) resetState() {
	c.path = NewPath()
	c.fill = c.cfg.fillPaint()
	c.stroke = c.cfg.strokePaint()
	c.font = ParseFont(c.cfg.Font)
	c.lineDashOffset = 0
	c.shadow = Shadow{Color: Transparent}
	c.smoothing = Smoothing{Enabled: c.cfg.SmoothingEnabled, Quality: c.cfg.SmoothingQuality}
	c.textAlign = c.cfg.TextAlign
	c.direction = c.cfg.Direction
	c.states = c.states[:0]
}

// base is the CSS pixel to device pixel transform.
func (c *Context) base() Matrix {
	return Scale(c.deviceScale, c.deviceScale)
}

// Surface returns the surface the context draws on.
func (c *Context) Surface() Surface { return c.surface }

// Width returns the surface width in CSS pixels.
func (c *Context) Width() int { return c.surface.Width() }

// Height returns the surface height in CSS pixels.
func (c *Context) Height() int { return c.surface.Height() }

// Config returns the configuration the context was created with.
func (c *Context) Config() Config { return c.cfg }

// Path returns the current path. It is replaced by BeginPath and Restore.
func (c *Context) Path() *Path { return c.path }

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	if !c.path.IsEmpty() {
		c.path = NewPath()
	}
}

// MoveTo starts a new subpath of the current path.
func (c *Context) MoveTo(x, y float64) { c.path.MoveTo(x, y) }

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) { c.path.LineTo(x, y) }

// BezierCurveTo adds a cubic Bezier curve to the current path.
func (c *Context) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// QuadraticCurveTo adds a quadratic Bezier curve to the current path.
func (c *Context) QuadraticCurveTo(cx, cy, x, y float64) {
	c.path.QuadraticTo(cx, cy, x, y)
}

// Arc adds a circular arc to the current path.
func (c *Context) Arc(x, y, r, start, end float64, anticlockwise bool) {
	c.path.Arc(x, y, r, start, end, anticlockwise)
}

// ArcTo adds a tangent arc to the current path.
func (c *Context) ArcTo(x1, y1, x2, y2, r float64) {
	c.path.ArcToTangent(x1, y1, x2, y2, r)
}

// Ellipse adds an elliptical arc to the current path.
func (c *Context) Ellipse(x, y, rx, ry, rotation, start, end float64, anticlockwise bool) {
	c.path.Ellipse(x, y, rx, ry, rotation, start, end, anticlockwise)
}

// Rect adds a closed rectangle to the current path.
func (c *Context) Rect(x, y, w, h float64) { c.path.Rect(x, y, w, h) }

// ClosePath closes the current subpath.
func (c *Context) ClosePath() { c.path.Close() }

// FillStyle returns the fill brush.
func (c *Context) FillStyle() Brush { return c.fill.Brush }

// StrokeStyle returns the stroke brush.
func (c *Context) StrokeStyle() Brush { return c.stroke.Brush }

// FillPaint returns a copy of the fill paint.
func (c *Context) FillPaint() *Paint { return c.fill.Clone() }

// StrokePaint returns a copy of the stroke paint.
func (c *Context) StrokePaint() *Paint { return c.stroke.Clone() }

func (c *Context) brushAllowed(b Brush) bool {
	if b == nil {
		return false
	}
	if _, ok := b.(*Pattern); ok && !c.cfg.Capabilities.Patterns {
		return false
	}
	return true
}

// SetFillStyle replaces the fill brush. A nil brush is ignored.
func (c *Context) SetFillStyle(b Brush) {
	if c.brushAllowed(b) {
		c.fill.Brush = b
	}
}

// SetStrokeStyle replaces the stroke brush. A nil brush is ignored.
func (c *Context) SetStrokeStyle(b Brush) {
	if c.brushAllowed(b) {
		c.stroke.Brush = b
	}
}

// SetFillColor fills with a solid color.
func (c *Context) SetFillColor(col RGBA) { c.fill.Brush = Solid(col) }

// SetStrokeColor strokes with a solid color.
func (c *Context) SetStrokeColor(col RGBA) { c.stroke.Brush = Solid(col) }

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 { return c.stroke.LineWidth }

// SetLineWidth sets the stroke width. Zero, negative and non-finite
// widths are ignored.
func (c *Context) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		c.stroke.LineWidth = w
	}
}

// LineCap returns the stroke cap.
func (c *Context) LineCap() LineCap { return c.stroke.LineCap }

// SetLineCap sets the stroke cap.
func (c *Context) SetLineCap(lc LineCap) { c.stroke.LineCap = lc }

// LineJoin returns the stroke join.
func (c *Context) LineJoin() LineJoin { return c.stroke.LineJoin }

// SetLineJoin sets the stroke join.
func (c *Context) SetLineJoin(lj LineJoin) { c.stroke.LineJoin = lj }

// MiterLimit returns the stroke miter limit.
func (c *Context) MiterLimit() float64 { return c.stroke.MiterLimit }

// SetMiterLimit sets the stroke miter limit. Non-positive and non-finite
// limits are ignored, as is every call when the MiterLimit capability is
// off.
func (c *Context) SetMiterLimit(limit float64) {
	if !c.cfg.Capabilities.MiterLimit {
		return
	}
	if limit > 0 && !math.IsInf(limit, 0) {
		c.stroke.MiterLimit = limit
	}
}

// LineDash returns the dash lengths in use; an empty slice means solid.
func (c *Context) LineDash() []float64 {
	if c.stroke.Dash == nil {
		return []float64{}
	}
	return append([]float64(nil), c.stroke.Dash.Array...)
}

// SetLineDash sets the dash lengths. An empty slice restores solid
// lines; slices holding a negative or non-finite length are ignored.
func (c *Context) SetLineDash(lengths []float64) {
	d, ok := NewDash(lengths, c.lineDashOffset)
	if !ok {
		return
	}
	c.stroke.Dash = d
}

// LineDashOffset returns the dash phase.
func (c *Context) LineDashOffset() float64 { return c.lineDashOffset }

// SetLineDashOffset sets the dash phase. Non-finite values are ignored.
func (c *Context) SetLineDashOffset(offset float64) {
	if !allFinite(offset) {
		return
	}
	c.lineDashOffset = offset
	c.stroke.Dash = c.stroke.Dash.WithOffset(offset)
}

// GlobalAlpha returns the alpha applied to every draw.
func (c *Context) GlobalAlpha() float64 { return c.fill.Alpha }

// SetGlobalAlpha sets the alpha of both paints. Values outside [0, 1]
// are ignored.
func (c *Context) SetGlobalAlpha(a float64) {
	if !(a >= 0 && a <= 1) {
		return
	}
	c.fill.Alpha = a
	c.stroke.Alpha = a
}

// GlobalCompositeOperation returns the blend mode of both paints.
func (c *Context) GlobalCompositeOperation() BlendMode { return c.fill.Blend }

// SetGlobalCompositeOperation sets the blend mode of both paints.
func (c *Context) SetGlobalCompositeOperation(m BlendMode) {
	c.fill.Blend = m
	c.stroke.Blend = m
}

// Shadow returns the shadow attributes.
func (c *Context) Shadow() Shadow { return c.shadow }

// SetShadowBlur sets the shadow blur. Negative and non-finite values are
// ignored.
func (c *Context) SetShadowBlur(blur float64) {
	if blur >= 0 && !math.IsInf(blur, 0) {
		c.shadow.Blur = blur
	}
}

// SetShadowColor sets the shadow color.
func (c *Context) SetShadowColor(col RGBA) { c.shadow.Color = col }

// SetShadowOffsetX sets the horizontal shadow offset in CSS pixels.
func (c *Context) SetShadowOffsetX(x float64) {
	if allFinite(x) {
		c.shadow.OffsetX = x
	}
}

// SetShadowOffsetY sets the vertical shadow offset in CSS pixels.
func (c *Context) SetShadowOffsetY(y float64) {
	if allFinite(y) {
		c.shadow.OffsetY = y
	}
}

// Smoothing returns the image smoothing attributes.
func (c *Context) Smoothing() Smoothing { return c.smoothing }

// SetImageSmoothingEnabled turns image smoothing on or off.
func (c *Context) SetImageSmoothingEnabled(enabled bool) {
	c.smoothing.Enabled = enabled
	c.applySmoothing()
}

// SetImageSmoothingQuality sets the smoothing quality.
func (c *Context) SetImageSmoothingQuality(q FilterQuality) {
	if q == FilterNone {
		q = FilterLow
	}
	c.smoothing.Quality = q
	c.applySmoothing()
}

func (c *Context) applySmoothing() {
	q := c.smoothing.Filter()
	c.fill.FilterQuality = q
	c.stroke.FilterQuality = q
}

// Font returns the current font.
func (c *Context) Font() Font { return c.font }

// SetFont parses a CSS font shorthand. Malformed input degrades to
// defaults.
func (c *Context) SetFont(css string) { c.font = ParseFont(css) }

// TextAlign returns the text alignment.
func (c *Context) TextAlign() TextAlign { return c.textAlign }

// SetTextAlign sets the text alignment.
func (c *Context) SetTextAlign(a TextAlign) { c.textAlign = a }

// Direction returns the text direction.
func (c *Context) Direction() Direction { return c.direction }

// SetDirection sets the text direction when the Direction capability is on.
func (c *Context) SetDirection(d Direction) {
	if c.cfg.Capabilities.Direction {
		c.direction = d
	}
}

// DeviceScale returns the device pixels per CSS pixel.
func (c *Context) DeviceScale() float64 { return c.deviceScale }

// SetDeviceScale changes the device pixel ratio, keeping the current
// user transform. Non-positive and non-finite values are ignored.
func (c *Context) SetDeviceScale(s float64) {
	if !(s > 0) || math.IsInf(s, 0) {
		return
	}
	user := c.GetTransform()
	c.deviceScale = s
	c.SetTransformMatrix(user)
}
