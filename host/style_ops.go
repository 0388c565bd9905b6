package host

import "github.com/gogpu/canvas"

// Style selects the fill or the stroke paint.
type Style uint8

const (
	// Fill is the fillStyle paint.
	Fill Style = iota
	// Stroke is the strokeStyle paint.
	Stroke
)

// ParseStyle maps "stroke" to Stroke and anything else to Fill.
func ParseStyle(s string) Style {
	if s == "stroke" {
		return Stroke
	}
	return Fill
}

func (s Style) String() string {
	if s == Stroke {
		return "stroke"
	}
	return "fill"
}

func setBrush(c *canvas.Context, s Style, b canvas.Brush) {
	if s == Stroke {
		c.SetStrokeStyle(b)
		return
	}
	c.SetFillStyle(b)
}

// SetFillColor sets a solid 0xAARRGGBB fill color.
func (r *Runtime) SetFillColor(ctx Handle, argb uint32) Handle {
	return r.SetStyleColor(ctx, Fill, argb)
}

// SetStrokeColor sets a solid 0xAARRGGBB stroke color.
func (r *Runtime) SetStrokeColor(ctx Handle, argb uint32) Handle {
	return r.SetStyleColor(ctx, Stroke, argb)
}

// SetStyleColor sets a solid 0xAARRGGBB color on the fill or stroke.
func (r *Runtime) SetStyleColor(ctx Handle, s Style, argb uint32) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { setBrush(c, s, canvas.Solid(canvas.ARGB(argb))) })
}

// SetStyleCSS sets a solid CSS color on the fill or stroke. Unparsable
// colors are ignored.
func (r *Runtime) SetStyleCSS(ctx Handle, s Style, css string) Handle {
	col, ok := canvas.ParseColor(css)
	if !ok {
		canvas.Logger().Debug("host: color ignored", "color", css)
		return ctx
	}
	return r.withContext(ctx, func(c *canvas.Context) { setBrush(c, s, canvas.Solid(col)) })
}

// SetLinearGradient sets a linear gradient from parallel ARGB color and
// position arrays. Invalid gradients are ignored.
func (r *Runtime) SetLinearGradient(ctx Handle, s Style, x0, y0, x1, y1 float64, colors []uint32, positions []float64) Handle {
	stops, err := canvas.StopsFromARGB(colors, positions)
	if err == nil {
		var g *canvas.LinearGradient
		if g, err = canvas.NewLinearGradient(x0, y0, x1, y1, stops); err == nil {
			return r.withContext(ctx, func(c *canvas.Context) { setBrush(c, s, g) })
		}
	}
	canvas.Logger().Debug("host: gradient ignored", "err", err)
	return ctx
}

// SetRadialGradient sets a two-point conical gradient from parallel ARGB
// color and position arrays. Invalid gradients are ignored.
func (r *Runtime) SetRadialGradient(ctx Handle, s Style, x0, y0, r0, x1, y1, r1 float64, colors []uint32, positions []float64) Handle {
	stops, err := canvas.StopsFromARGB(colors, positions)
	if err == nil {
		var g *canvas.RadialGradient
		if g, err = canvas.NewRadialGradient(x0, y0, r0, x1, y1, r1, stops); err == nil {
			return r.withContext(ctx, func(c *canvas.Context) { setBrush(c, s, g) })
		}
	}
	canvas.Logger().Debug("host: gradient ignored", "err", err)
	return ctx
}

// SetPattern tiles the image behind asset with repetition ("repeat",
// "repeat-x", "repeat-y", "no-repeat"), transformed by the matrix behind
// m when m is live.
func (r *Runtime) SetPattern(ctx Handle, s Style, asset Handle, repetition string, m Handle) Handle {
	a, ok := get(r.assets, "asset", asset)
	if !ok {
		return ctx
	}
	p, err := canvas.NewPattern(a.Image(), canvas.ParseRepetition(repetition))
	if err != nil {
		canvas.Logger().Debug("host: pattern ignored", "err", err)
		return ctx
	}
	if mat, ok := r.matrices.Get(m); ok {
		p = p.WithTransform(mat)
	}
	return r.withContext(ctx, func(c *canvas.Context) { setBrush(c, s, p) })
}

// SetLineWidth sets the stroke width.
func (r *Runtime) SetLineWidth(ctx Handle, w float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetLineWidth(w) })
}

// SetLineCap sets the line cap ("butt", "round", "square").
func (r *Runtime) SetLineCap(ctx Handle, lineCap string) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetLineCap(canvas.ParseLineCap(lineCap)) })
}

// SetLineJoin sets the line join ("miter", "round", "bevel").
func (r *Runtime) SetLineJoin(ctx Handle, join string) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetLineJoin(canvas.ParseLineJoin(join)) })
}

// SetMiterLimit sets the miter limit.
func (r *Runtime) SetMiterLimit(ctx Handle, limit float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetMiterLimit(limit) })
}

// SetLineDash sets the dash pattern.
func (r *Runtime) SetLineDash(ctx Handle, lengths []float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetLineDash(lengths) })
}

// SetLineDashOffset sets the dash phase.
func (r *Runtime) SetLineDashOffset(ctx Handle, offset float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetLineDashOffset(offset) })
}

// SetGlobalAlpha sets the global alpha.
func (r *Runtime) SetGlobalAlpha(ctx Handle, alpha float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetGlobalAlpha(alpha) })
}

// SetGlobalCompositeOperation sets the composite operation by keyword.
func (r *Runtime) SetGlobalCompositeOperation(ctx Handle, op string) Handle {
	return r.withContext(ctx, func(c *canvas.Context) {
		c.SetGlobalCompositeOperation(canvas.ParseBlendMode(op))
	})
}

// SetShadowBlur sets the shadow blur.
func (r *Runtime) SetShadowBlur(ctx Handle, blur float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetShadowBlur(blur) })
}

// SetShadowColor sets the 0xAARRGGBB shadow color.
func (r *Runtime) SetShadowColor(ctx Handle, argb uint32) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetShadowColor(canvas.ARGB(argb)) })
}

// SetShadowOffset sets both shadow offsets.
func (r *Runtime) SetShadowOffset(ctx Handle, x, y float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) {
		c.SetShadowOffsetX(x)
		c.SetShadowOffsetY(y)
	})
}

// SetImageSmoothingEnabled turns image smoothing on or off.
func (r *Runtime) SetImageSmoothingEnabled(ctx Handle, enabled bool) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetImageSmoothingEnabled(enabled) })
}

// SetImageSmoothingQuality sets the smoothing quality ("low", "medium",
// "high").
func (r *Runtime) SetImageSmoothingQuality(ctx Handle, quality string) Handle {
	return r.withContext(ctx, func(c *canvas.Context) {
		c.SetImageSmoothingQuality(canvas.ParseSmoothingQuality(quality))
	})
}

// SetFont sets the CSS font shorthand.
func (r *Runtime) SetFont(ctx Handle, css string) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetFont(css) })
}

// SetTextAlign sets the text alignment keyword.
func (r *Runtime) SetTextAlign(ctx Handle, align string) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetTextAlign(canvas.ParseTextAlign(align)) })
}

// SetDirection sets the text direction keyword.
func (r *Runtime) SetDirection(ctx Handle, dir string) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetDirection(canvas.ParseDirection(dir)) })
}

// SetDeviceScale changes the device pixel ratio of ctx.
func (r *Runtime) SetDeviceScale(ctx Handle, scale float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.SetDeviceScale(scale) })
}
