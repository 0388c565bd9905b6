package canvas

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// DefaultQuality is the encoder quality used when a caller passes a value
// outside 0..100.
const DefaultQuality = 92

// Flush submits pending drawing to the surface.
func (c *Context) Flush() {
	if c.provider != nil {
		c.provider.Flush(c.surface)
		return
	}
	c.surface.Flush()
}

// Resize replaces the surface with one of the new size. Pixels are kept
// at the origin; the state stack, current path and transform are reset.
func (c *Context) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas: resize to %dx%d: %w", width, height, ErrInvalidSize)
	}
	if c.provider == nil {
		return ErrNoProvider
	}
	s, err := c.provider.Resize(c.surface, width, height, c.deviceScale)
	if err != nil {
		return fmt.Errorf("canvas: resize surface: %w", err)
	}
	c.surface = s
	c.resetState()
	s.SetMatrix(c.base())
	return nil
}

// ToData returns a copy of the surface pixels as premultiplied RGBA in
// device pixels. Without a provider the result is opaque white.
func (c *Context) ToData() []byte {
	if c.provider == nil {
		w := int(float64(c.Width()) * c.deviceScale)
		h := int(float64(c.Height()) * c.deviceScale)
		return opaqueWhite(w, h)
	}
	c.Flush()
	return c.provider.SnapshotPixels(c.surface)
}

// ToDataURL encodes the surface as a data URL. mime selects the format
// ("image/png", "image/jpeg", ...) and quality in 0..100 applies to lossy
// formats; out-of-range values use DefaultQuality. Formats the provider
// cannot encode fall back to PNG. It returns "data:," when encoding is
// impossible.
func (c *Context) ToDataURL(mime string, quality int) string {
	if c.provider == nil {
		return "data:,"
	}
	if quality < 0 || quality > 100 {
		quality = DefaultQuality
	}
	format := ParseImageFormat(mime)
	c.Flush()
	data, err := c.provider.Encode(c.surface, format, quality)
	if errors.Is(err, ErrUnsupportedFormat) && format != FormatPNG {
		Logger().Warn("canvas: unsupported export format, using png", "format", format)
		format = FormatPNG
		data, err = c.provider.Encode(c.surface, format, quality)
	}
	if err != nil {
		Logger().Warn("canvas: export failed", "format", format, "err", err)
		return "data:,"
	}
	return "data:" + format.MIMEType() + ";base64," + base64.StdEncoding.EncodeToString(data)
}
