package canvas

import "math"

// dropShadow builds the drop-shadow filter for the current shadow state.
// Blur and offsets are CSS pixels and the filter works in device pixels;
// the blur radius maps to a Gaussian sigma of half its value.
func (c *Context) dropShadow() *DropShadow {
	return &DropShadow{
		OffsetX: c.shadow.OffsetX * c.deviceScale,
		OffsetY: c.shadow.OffsetY * c.deviceScale,
		Sigma:   c.shadow.Blur / 2 * c.deviceScale,
		Color:   c.shadow.Color,
	}
}

// withShadow attaches the drop shadow to p for the duration of draw.
func (c *Context) withShadow(p *Paint, draw func()) {
	if c.shadow.active() {
		p.ImageFilter = c.dropShadow()
		defer func() { p.ImageFilter = nil }()
	}
	draw()
}

func (c *Context) drawPath(path *Path, p *Paint, style PaintStyle) {
	c.withShadow(p, func() {
		c.surface.DrawPath(path, p, style)
	})
}

// Fill fills the current path with the nonzero rule.
func (c *Context) Fill() { c.FillWithRule(NonZero) }

// FillWithRule fills the current path using rule.
func (c *Context) FillWithRule(rule FillRule) { c.FillPathWithRule(c.path, rule) }

// FillPath fills path with the nonzero rule.
func (c *Context) FillPath(path *Path) { c.FillPathWithRule(path, NonZero) }

// FillPathWithRule sets path's fill rule and fills it.
func (c *Context) FillPathWithRule(path *Path, rule FillRule) {
	if path == nil {
		return
	}
	path.SetFillRule(rule)
	c.drawPath(path, c.fill, StyleFill)
}

// Stroke strokes the current path.
func (c *Context) Stroke() { c.StrokePath(c.path) }

// StrokePath strokes path with the stroke paint.
func (c *Context) StrokePath(path *Path) {
	if path == nil {
		return
	}
	c.drawPath(path, c.stroke, StyleStroke)
}

// Clip intersects the clip region with the current path using the
// nonzero rule.
func (c *Context) Clip() { c.ClipWithRule(NonZero) }

// ClipWithRule intersects the clip region with the current path.
func (c *Context) ClipWithRule(rule FillRule) { c.ClipPath(c.path, rule) }

// ClipPath intersects the clip region with path. The clip lives on the
// backend's save stack, so Restore rolls it back.
func (c *Context) ClipPath(path *Path, rule FillRule) {
	if path == nil {
		return
	}
	path.SetFillRule(rule)
	c.surface.ClipPath(path, rule)
}

// rectPath builds the geometry fillRect and strokeRect draw. Only a
// rectangle with both sides positive is drawn as a rectangle. With
// exactly one positive side it becomes a closed two-point path so caps
// and joins still apply; otherwise there is nothing to draw.
func rectPath(x, y, w, h float64) (*Path, bool) {
	if !allFinite(x, y, w, h) {
		return nil, false
	}
	p := NewPath()
	switch {
	case w > 0 && h > 0:
		p.Rect(x, y, w, h)
	case w > 0 || h > 0:
		p.MoveTo(x, y)
		p.LineTo(x+w, y+h)
		p.Close()
	default:
		return nil, false
	}
	return p, true
}

// FillRect fills the rectangle without touching the current path.
func (c *Context) FillRect(x, y, w, h float64) {
	if p, ok := rectPath(x, y, w, h); ok {
		c.drawPath(p, c.fill, StyleFill)
	}
}

// StrokeRect strokes the rectangle without touching the current path.
func (c *Context) StrokeRect(x, y, w, h float64) {
	if p, ok := rectPath(x, y, w, h); ok {
		c.drawPath(p, c.stroke, StyleStroke)
	}
}

// ClearRect makes the rectangle transparent black, honouring the
// transform and clip but not shadows, alpha or the composite operation.
func (c *Context) ClearRect(x, y, w, h float64) {
	if !allFinite(x, y, w, h) || w == 0 || h == 0 {
		return
	}
	p := NewPath()
	p.Rect(x, y, w, h)
	clear := NewPaint(Black)
	clear.Blend = BlendClear
	c.surface.DrawPath(p, clear, StyleFill)
}

// ClearCanvas paints the whole surface with the configured clear color.
func (c *Context) ClearCanvas() {
	c.surface.Clear(c.cfg.ClearColor)
}

// PutImageData writes data to the surface with its top-left corner at
// device pixel (x, y).
func (c *Context) PutImageData(data *ImageData, x, y int) {
	if data == nil {
		return
	}
	c.PutImageDataDirty(data, x, y, 0, 0, data.Width, data.Height)
}

// PutImageDataDirty writes the dirty rectangle of data to the surface at
// (x+dirtyX, y+dirtyY). A negative dirty width or height selects the full
// extent of data. Transform, clip, alpha and blending do not apply.
func (c *Context) PutImageDataDirty(data *ImageData, x, y, dirtyX, dirtyY, dirtyW, dirtyH int) {
	if data == nil || data.Width <= 0 || data.Height <= 0 || len(data.Data) < data.Width*data.Height*4 {
		return
	}
	if dirtyW < 0 {
		dirtyW = data.Width
	}
	if dirtyH < 0 {
		dirtyH = data.Height
	}
	part := data.crop(dirtyX, dirtyY, dirtyW, dirtyH)
	if part.Width == 0 {
		return
	}
	img, err := NewImage(part.Width, part.Height, part.Data)
	if err != nil {
		return
	}
	c.surface.WritePixels(img, x+max(dirtyX, 0), y+max(dirtyY, 0))
}

// GetImageData reads the device rectangle (x, y, w, h). It never fails:
// pixels that cannot be read are opaque white, and a rectangle larger
// than MaxImageDataBytes yields empty data.
func (c *Context) GetImageData(x, y, w, h int) *ImageData {
	buf := opaqueWhite(w, h)
	if buf == nil {
		return &ImageData{}
	}
	c.surface.ReadPixels(x, y, w, h, buf)
	return &ImageData{Width: w, Height: h, Data: buf}
}

// CreateImageData returns transparent black pixel data.
func (c *Context) CreateImageData(w, h int) *ImageData {
	return NewImageData(w, h)
}

// imageRects clips the source rectangle to the image and shrinks the
// destination proportionally, as drawImage does.
func imageRects(img *Image, src, dst Rect) (Rect, Rect, bool) {
	norm := func(r Rect) Rect {
		if r.Right < r.Left {
			r.Left, r.Right = r.Right, r.Left
		}
		if r.Bottom < r.Top {
			r.Top, r.Bottom = r.Bottom, r.Top
		}
		return r
	}
	src, dst = norm(src), norm(dst)
	if src.IsEmpty() || dst.IsEmpty() {
		return src, dst, false
	}
	sx := dst.Width() / src.Width()
	sy := dst.Height() / src.Height()
	b := img.Bounds()
	clipped := Rect{
		Left:   math.Max(src.Left, b.Left),
		Top:    math.Max(src.Top, b.Top),
		Right:  math.Min(src.Right, b.Right),
		Bottom: math.Min(src.Bottom, b.Bottom),
	}
	if clipped.IsEmpty() {
		return src, dst, false
	}
	dst = Rect{
		Left:   dst.Left + (clipped.Left-src.Left)*sx,
		Top:    dst.Top + (clipped.Top-src.Top)*sy,
		Right:  dst.Right - (src.Right-clipped.Right)*sx,
		Bottom: dst.Bottom - (src.Bottom-clipped.Bottom)*sy,
	}
	return clipped, dst, true
}

// imagePaint is the paint used for drawImage: the fill paint's blend and
// alpha with the smoothing filter.
func (c *Context) imagePaint() *Paint {
	return &Paint{
		Blend:         c.fill.Blend,
		Alpha:         c.fill.Alpha,
		FilterQuality: c.smoothing.Filter(),
	}
}

// DrawImage draws img at its natural size with its top-left at (dx, dy).
func (c *Context) DrawImage(img *Image, dx, dy float64) {
	if img == nil {
		return
	}
	w, h := float64(img.Width), float64(img.Height)
	c.DrawImageRect(img, 0, 0, w, h, dx, dy, w, h)
}

// DrawImageScaled draws img scaled into (dx, dy, dw, dh).
func (c *Context) DrawImageScaled(img *Image, dx, dy, dw, dh float64) {
	if img == nil {
		return
	}
	c.DrawImageRect(img, 0, 0, float64(img.Width), float64(img.Height), dx, dy, dw, dh)
}

// DrawImageRect draws the source rectangle of img into the destination
// rectangle.
func (c *Context) DrawImageRect(img *Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	if img == nil || !allFinite(sx, sy, sw, sh, dx, dy, dw, dh) {
		return
	}
	src, dst, ok := imageRects(img, RectXYWH(sx, sy, sw, sh), RectXYWH(dx, dy, dw, dh))
	if !ok {
		return
	}
	p := c.imagePaint()
	c.withShadow(p, func() {
		c.surface.DrawImageRect(img, src, dst, p)
	})
}

// DrawImageBytes decodes an encoded image and draws it at (dx, dy).
// Undecodable data draws nothing.
func (c *Context) DrawImageBytes(data []byte, dx, dy float64) {
	if img := c.DecodeImage(data); img != nil {
		c.DrawImage(img, dx, dy)
	}
}

// DrawImagePixels draws a width x height premultiplied RGBA buffer at
// (dx, dy). A buffer that does not match its size draws nothing.
func (c *Context) DrawImagePixels(pix []byte, width, height int, dx, dy float64) {
	img, err := NewImage(width, height, pix)
	if err != nil {
		Logger().Debug("canvas: invalid image pixels", "err", err)
		return
	}
	c.DrawImage(img, dx, dy)
}

// DecodeImage decodes an encoded image with the context's decoder. It
// returns nil when there is no decoder or decoding fails.
func (c *Context) DecodeImage(data []byte) *Image {
	if c.decoder == nil {
		Logger().Debug("canvas: no image decoder configured")
		return nil
	}
	img, err := c.decoder.Decode(data)
	if err != nil {
		Logger().Debug("canvas: image decode failed", "err", err)
		return nil
	}
	return img
}
