package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Image is a premultiplied RGBA8 bitmap with a row stride of Width*4.
type Image struct {
	Width, Height int
	Pix           []byte
}

// NewImage wraps pix as a width x height image. It fails when the size is
// not positive or pix is shorter than width*height*4 bytes.
func NewImage(width, height int, pix []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: image size %dx%d: %w", width, height, ErrInvalidImage)
	}
	if need := width * height * 4; len(pix) < need {
		return nil, fmt.Errorf("canvas: image buffer has %d bytes, need %d: %w", len(pix), need, ErrInvalidImage)
	}
	return &Image{Width: width, Height: height, Pix: pix}, nil
}

// ImageFromGo converts any image.Image into a premultiplied Image.
func ImageFromGo(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Image{Width: b.Dx(), Height: b.Dy(), Pix: dst.Pix}
}

// RGBA returns an *image.RGBA sharing the pixels of img.
func (img *Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    img.Pix,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}

// At returns the premultiplied pixel at (x, y); outside the image it is
// transparent.
func (img *Image) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return color.RGBA{}
	}
	i := (y*img.Width + x) * 4
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
}

// Bounds returns the image rectangle in pixels.
func (img *Image) Bounds() Rect {
	return Rect{Right: float64(img.Width), Bottom: float64(img.Height)}
}

// ImageData is a rectangle of premultiplied RGBA8 pixels exchanged with
// putImageData and getImageData.
type ImageData struct {
	Width, Height int
	Data          []byte
}

// MaxImageDataBytes bounds the pixel buffers image data operations
// allocate. Larger requests yield empty data.
const MaxImageDataBytes = 1 << 30

// pixelBytes returns the RGBA8 buffer size of a width x height image, or
// false when a side is non-positive or the size exceeds
// MaxImageDataBytes.
func pixelBytes(width, height int) (int, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	if width > MaxImageDataBytes/4/height {
		Logger().Debug("canvas: image data too large", "width", width, "height", height)
		return 0, false
	}
	return width * height * 4, true
}

// NewImageData returns transparent black pixel data, as createImageData
// does. Non-positive or oversized requests yield empty data.
func NewImageData(width, height int) *ImageData {
	n, ok := pixelBytes(width, height)
	if !ok {
		return &ImageData{}
	}
	return &ImageData{Width: width, Height: height, Data: make([]byte, n)}
}

// opaqueWhite returns width x height pixels of opaque white.
func opaqueWhite(width, height int) []byte {
	n, ok := pixelBytes(width, height)
	if !ok {
		return nil
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = 0xff
	}
	return buf
}

// crop returns the sub-rectangle (x, y, w, h) of d clipped to its bounds.
func (d *ImageData) crop(x, y, w, h int) *ImageData {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	w = min(w, d.Width-x)
	h = min(h, d.Height-y)
	if w <= 0 || h <= 0 {
		return &ImageData{}
	}
	out := NewImageData(w, h)
	for row := 0; row < h; row++ {
		src := ((y+row)*d.Width + x) * 4
		copy(out.Data[row*w*4:(row+1)*w*4], d.Data[src:src+w*4])
	}
	return out
}

// ImageDecoder turns encoded bytes (PNG, JPEG, ...) into an Image.
type ImageDecoder interface {
	Decode(data []byte) (*Image, error)
}
