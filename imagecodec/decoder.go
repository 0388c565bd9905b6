package imagecodec

import (
	"bytes"
	"fmt"
	"image"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/canvas"
)

// DecodeError is returned when encoded image data cannot be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "imagecodec: decode: " + e.Err.Error() }

// Unwrap returns the decoder's error.
func (e *DecodeError) Unwrap() error { return e.Err }

// Decoder is a canvas.ImageDecoder backed by the registered image
// formats.
type Decoder struct{}

var _ canvas.ImageDecoder = Decoder{}

// Decode implements canvas.ImageDecoder. The result is premultiplied.
func (Decoder) Decode(data []byte) (*canvas.Image, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}
	return canvas.ImageFromGo(img), nil
}

// Format reports the registered format name ("png", "jpeg", ...) of the
// encoded data without decoding the pixels.
func Format(data []byte) (string, error) {
	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", &DecodeError{Err: err}
	}
	return name, nil
}

func decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Err: fmt.Errorf("empty data: %w", image.ErrFormat)}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &DecodeError{Err: fmt.Errorf("image size %dx%d: %w", b.Dx(), b.Dy(), canvas.ErrInvalidImage)}
	}
	return img, nil
}
