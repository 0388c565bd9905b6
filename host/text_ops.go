package host

import (
	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/textcodec"
)

// MeasureText returns the advance width of text in the current font, or
// 0 when ctx is not live.
func (r *Runtime) MeasureText(ctx Handle, text string) float64 {
	c, ok := r.context(ctx)
	if !ok {
		return 0
	}
	return c.MeasureText(text).Width
}

// FillText fills text at (x, y).
func (r *Runtime) FillText(ctx Handle, text string, x, y float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.FillText(text, x, y) })
}

// StrokeText strokes text at (x, y).
func (r *Runtime) StrokeText(ctx Handle, text string, x, y float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.StrokeText(text, x, y) })
}

// CreateTextEncoder returns an encoder for label.
func (r *Runtime) CreateTextEncoder(label string) Handle {
	return r.encoders.Insert(textcodec.NewEncoder(label))
}

// TextEncoderEncoding returns the encoder's encoding name, or "".
func (r *Runtime) TextEncoderEncoding(h Handle) string {
	if e, ok := get(r.encoders, "encoder", h); ok {
		return e.Encoding()
	}
	return ""
}

// TextEncode encodes text with the encoder behind h.
func (r *Runtime) TextEncode(h Handle, text string) []byte {
	if e, ok := get(r.encoders, "encoder", h); ok {
		return e.Encode(text)
	}
	return nil
}

// ReleaseTextEncoder frees the encoder behind h.
func (r *Runtime) ReleaseTextEncoder(h Handle) bool {
	_, ok := r.encoders.Remove(h)
	return ok
}

// CreateTextDecoder returns a decoder for label.
func (r *Runtime) CreateTextDecoder(label string) Handle {
	return r.decoders.Insert(textcodec.NewDecoder(label))
}

// TextDecoderEncoding returns the decoder's encoding name, or "".
func (r *Runtime) TextDecoderEncoding(h Handle) string {
	if d, ok := get(r.decoders, "decoder", h); ok {
		return d.Encoding()
	}
	return ""
}

// TextDecode decodes data with the decoder behind h.
func (r *Runtime) TextDecode(h Handle, data []byte) string {
	if d, ok := get(r.decoders, "decoder", h); ok {
		return d.Decode(data)
	}
	return ""
}

// ReleaseTextDecoder frees the decoder behind h.
func (r *Runtime) ReleaseTextDecoder(h Handle) bool {
	_, ok := r.decoders.Remove(h)
	return ok
}
