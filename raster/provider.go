package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/canvas"
)

// Name is the name the provider registers under.
const Name = "raster"

func init() {
	canvas.RegisterSurfaceProvider(Name, func() canvas.SurfaceProvider {
		return NewProvider()
	})
}

// Option configures a Provider.
type Option func(*Provider)

// WithFonts makes every surface of the provider use l for text.
func WithFonts(l *FontLibrary) Option {
	return func(p *Provider) { p.fonts = l }
}

// Provider creates CPU raster surfaces and encodes them.
type Provider struct {
	fonts *FontLibrary
}

var _ canvas.SurfaceProvider = (*Provider)(nil)

// NewProvider returns a raster surface provider.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{}
	for _, opt := range opts {
		opt(p)
	}
	if p.fonts == nil {
		p.fonts = DefaultFonts()
	}
	return p
}

// Fonts returns the font library shared by the provider's surfaces.
func (p *Provider) Fonts() *FontLibrary { return p.fonts }

// Create implements canvas.SurfaceProvider.
func (p *Provider) Create(width, height int, scale float64) (canvas.Surface, error) {
	if width <= 0 || height <= 0 || !(scale > 0) {
		return nil, fmt.Errorf("raster: %dx%d at scale %v: %w", width, height, scale, canvas.ErrInvalidSize)
	}
	return NewSurface(width, height, scale, p.fonts), nil
}

// Resize implements canvas.SurfaceProvider. Old pixels are copied to the
// origin of the new surface.
func (p *Provider) Resize(s canvas.Surface, width, height int, scale float64) (canvas.Surface, error) {
	ns, err := p.Create(width, height, scale)
	if err != nil {
		return nil, err
	}
	dst := ns.(*Surface).img
	if old, ok := s.(*Surface); ok {
		r := old.img.Rect.Intersect(dst.Rect)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			copy(dst.Pix[dst.PixOffset(0, y):dst.PixOffset(r.Max.X, y)], old.img.Pix[old.img.PixOffset(0, y):])
		}
	}
	return ns, nil
}

// Flush implements canvas.SurfaceProvider.
func (*Provider) Flush(s canvas.Surface) { s.Flush() }

// SnapshotPixels implements canvas.SurfaceProvider.
func (*Provider) SnapshotPixels(s canvas.Surface) []byte {
	if rs, ok := s.(*Surface); ok {
		return bytes.Clone(rs.img.Pix)
	}
	w, h := DeviceSize(s.Width(), s.Height(), s.Scale())
	buf := make([]byte, w*h*4)
	s.ReadPixels(0, 0, w, h, buf)
	return buf
}

// Encode implements canvas.SurfaceProvider. WebP and HEIF have no
// encoder and report canvas.ErrUnsupportedFormat.
func (*Provider) Encode(s canvas.Surface, format canvas.ImageFormat, quality int) ([]byte, error) {
	rs, ok := s.(*Surface)
	if !ok {
		return nil, fmt.Errorf("raster: cannot encode %T", s)
	}
	return Encode(rs.img, format, quality)
}

// Encode writes img in format. quality applies to JPEG.
func Encode(img image.Image, format canvas.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case canvas.FormatPNG:
		err = png.Encode(&buf, img)
	case canvas.FormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: max(1, min(quality, 100))})
	case canvas.FormatGIF:
		err = gif.Encode(&buf, img, nil)
	case canvas.FormatBMP:
		err = bmp.Encode(&buf, img)
	case canvas.FormatTIFF:
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return nil, fmt.Errorf("raster: %s: %w", format.MIMEType(), canvas.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("raster: encode %s: %w", format.MIMEType(), err)
	}
	return buf.Bytes(), nil
}
