// Package textcodec converts between Go strings and byte buffers in the
// encodings named by WHATWG labels ("utf-8", "latin1", "shift_jis", ...),
// as TextEncoder and TextDecoder do in a browser.
//
// Unknown labels fall back to UTF-8. Encoders for UTF-16 and the
// replacement encoding produce UTF-8, and characters an encoding cannot
// represent are written as HTML numeric character references. Decoding
// strips a leading byte order mark that matches the encoding and replaces
// malformed sequences with U+FFFD.
package textcodec

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/gogpu/canvas"
)

// DefaultLabel is the label used when none is given or a label is unknown.
const DefaultLabel = "utf-8"

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16LE = []byte{0xff, 0xfe}
	bomUTF16BE = []byte{0xfe, 0xff}
)

// lookup resolves label to an encoding and its canonical name.
func lookup(label string) (encoding.Encoding, string) {
	label = strings.TrimSpace(label)
	if label != "" {
		if enc, err := htmlindex.Get(label); err == nil {
			if name, err := htmlindex.Name(enc); err == nil {
				return enc, name
			}
		}
		canvas.Logger().Debug("textcodec: unknown label, using utf-8", "label", label)
	}
	return unicode.UTF8, DefaultLabel
}

// Encoder encodes strings into bytes.
type Encoder struct {
	name string
	enc  *encoding.Encoder
}

// NewEncoder returns an encoder for label.
func NewEncoder(label string) *Encoder {
	enc, name := lookup(label)
	switch name {
	case "utf-16le", "utf-16be", "replacement":
		enc, name = unicode.UTF8, DefaultLabel
	}
	return &Encoder{name: name, enc: encoding.HTMLEscapeUnsupported(enc.NewEncoder())}
}

// Encoding returns the canonical name of the output encoding.
func (e *Encoder) Encoding() string { return e.name }

// Encode returns text in the encoder's encoding.
func (e *Encoder) Encode(text string) []byte {
	if e.name == DefaultLabel {
		return []byte(text)
	}
	out, err := e.enc.Bytes([]byte(text))
	if err != nil {
		canvas.Logger().Debug("textcodec: encode failed", "encoding", e.name, "err", err)
		return nil
	}
	return out
}

// Decoder decodes bytes into strings.
type Decoder struct {
	name string
	enc  encoding.Encoding
}

// NewDecoder returns a decoder for label.
func NewDecoder(label string) *Decoder {
	enc, name := lookup(label)
	return &Decoder{name: name, enc: enc}
}

// Encoding returns the canonical name of the input encoding.
func (d *Decoder) Encoding() string { return d.name }

// Decode returns data decoded as text.
func (d *Decoder) Decode(data []byte) string {
	data = d.stripBOM(data)
	out, err := d.enc.NewDecoder().Bytes(data)
	if err != nil {
		canvas.Logger().Debug("textcodec: decode failed", "encoding", d.name, "err", err)
		return ""
	}
	return string(out)
}

func (d *Decoder) stripBOM(data []byte) []byte {
	var bom []byte
	switch d.name {
	case "utf-8":
		bom = bomUTF8
	case "utf-16le":
		bom = bomUTF16LE
	case "utf-16be":
		bom = bomUTF16BE
	}
	if bom != nil {
		return bytes.TrimPrefix(data, bom)
	}
	return data
}

// Encode encodes text with the encoding named by label.
func Encode(label, text string) []byte { return NewEncoder(label).Encode(text) }

// Decode decodes data with the encoding named by label.
func Decode(label string, data []byte) string { return NewDecoder(label).Decode(data) }
