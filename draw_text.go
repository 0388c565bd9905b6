package canvas

// TextMetrics is the result of MeasureText.
type TextMetrics struct {
	// Width is the advance width of the text in CSS pixels.
	Width float64
}

// MeasureText measures text in the current font.
func (c *Context) MeasureText(text string) TextMetrics {
	if text == "" {
		return TextMetrics{}
	}
	return TextMetrics{Width: c.surface.MeasureText(text, c.font, c.direction)}
}

// FillText fills text with its alignment point at (x, y).
func (c *Context) FillText(text string, x, y float64) {
	c.drawText(text, x, y, c.fill, StyleFill)
}

// StrokeText strokes the outlines of text with its alignment point at
// (x, y).
func (c *Context) StrokeText(text string, x, y float64) {
	c.drawText(text, x, y, c.stroke, StyleStroke)
}

func (c *Context) drawText(text string, x, y float64, p *Paint, style PaintStyle) {
	if text == "" || !allFinite(x, y) {
		return
	}
	x = c.alignX(text, x)
	if c.shadow.active() {
		c.textShadow(text, x, y, p, style)
	}
	c.surface.DrawText(text, x, y, c.font, c.direction, p, style)
}

// alignX moves x from the alignment point to the left edge of the text.
func (c *Context) alignX(text string, x float64) float64 {
	switch c.textAlign {
	case TextAlignRight:
		return x - c.MeasureText(text).Width
	case TextAlignCenter:
		return x - c.MeasureText(text).Width/2
	}
	return x
}

// textShadow draws the blurred shadow of text underneath it. The offset
// is applied in device space so it ignores the current transform.
func (c *Context) textShadow(text string, x, y float64, p *Paint, style PaintStyle) {
	sp := p.Clone()
	sp.Brush = Solid(c.shadow.Color)
	sp.MaskBlur = c.shadow.Blur / 2 * c.deviceScale

	m := c.surface.Matrix()
	c.surface.SetMatrix(Translate(c.shadow.OffsetX*c.deviceScale, c.shadow.OffsetY*c.deviceScale).Multiply(m))
	c.surface.DrawText(text, x, y, c.font, c.direction, sp, style)
	c.surface.SetMatrix(m)
}
