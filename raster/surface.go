package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/canvas"
)

// state is one entry of the save stack.
type state struct {
	matrix canvas.Matrix
	clip   *image.Alpha
}

// Surface is a canvas.Surface rasterizing into a premultiplied
// *image.RGBA on the CPU. The pixel size is the CSS size times the scale.
type Surface struct {
	width, height int
	scale         float64
	img           *image.RGBA
	fonts         *FontLibrary

	matrix canvas.Matrix
	// clip is nil when nothing is clipped; otherwise it covers the whole
	// surface.
	clip  *image.Alpha
	saves []state
}

var _ canvas.Surface = (*Surface)(nil)

// DeviceSize returns the pixel size of a width x height surface at scale.
func DeviceSize(width, height int, scale float64) (int, int) {
	return int(math.Ceil(float64(width) * scale)), int(math.Ceil(float64(height) * scale))
}

// NewSurface returns a transparent surface. fonts may be nil to use
// DefaultFonts.
func NewSurface(width, height int, scale float64, fonts *FontLibrary) *Surface {
	if fonts == nil {
		fonts = DefaultFonts()
	}
	w, h := DeviceSize(width, height, scale)
	return &Surface{
		width:  width,
		height: height,
		scale:  scale,
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		fonts:  fonts,
		matrix: canvas.Identity(),
	}
}

// Width implements canvas.Surface.
func (s *Surface) Width() int { return s.width }

// Height implements canvas.Surface.
func (s *Surface) Height() int { return s.height }

// Scale implements canvas.Surface.
func (s *Surface) Scale() float64 { return s.scale }

// Image returns the backing pixels. They are premultiplied.
func (s *Surface) Image() *image.RGBA { return s.img }

// Fonts returns the font library used for text.
func (s *Surface) Fonts() *FontLibrary { return s.fonts }

// SaveCount implements canvas.Backend.
func (s *Surface) SaveCount() int { return len(s.saves) + 1 }

// Save implements canvas.Backend.
func (s *Surface) Save() {
	s.saves = append(s.saves, state{matrix: s.matrix, clip: s.clip})
}

// RestoreToCount implements canvas.Backend.
func (s *Surface) RestoreToCount(count int) {
	count = max(count, 1)
	for len(s.saves)+1 > count {
		top := s.saves[len(s.saves)-1]
		s.matrix, s.clip = top.matrix, top.clip
		s.saves = s.saves[:len(s.saves)-1]
	}
}

// Matrix implements canvas.Backend.
func (s *Surface) Matrix() canvas.Matrix { return s.matrix }

// SetMatrix implements canvas.Backend.
func (s *Surface) SetMatrix(m canvas.Matrix) { s.matrix = m }

// ClipPath implements canvas.Backend. Clip masks are never modified once
// built, so saved states can share them.
func (s *Surface) ClipPath(path *canvas.Path, rule canvas.FillRule) {
	mask := fillMask(s.img.Rect, path, rule, s.matrix)
	s.clip = intersectClip(s.img.Rect, s.clip, mask)
}

// DrawPath implements canvas.Backend.
func (s *Surface) DrawPath(path *canvas.Path, paint *canvas.Paint, style canvas.PaintStyle) {
	s.drawShape(path, paint, style)
}

func (s *Surface) drawShape(path *canvas.Path, paint *canvas.Paint, style canvas.PaintStyle) {
	var mask *image.Alpha
	if style == canvas.StyleStroke {
		mask = strokeMask(s.img.Rect, path, paint, s.matrix)
	} else {
		mask = fillMask(s.img.Rect, path, path.FillRule(), s.matrix)
	}
	s.drawMask(mask, paintSampler(paint, s.matrix), paint)
}

// DrawImageRect implements canvas.Backend. The src rectangle of img is
// resampled into a layer with the interpolator chosen by the paint's
// filter quality; the dst rectangle's coverage masks the layer.
func (s *Surface) DrawImageRect(img *canvas.Image, src, dst canvas.Rect, paint *canvas.Paint) {
	if img == nil || !(src.Width() > 0) || !(src.Height() > 0) || !(dst.Width() > 0) || !(dst.Height() > 0) {
		return
	}
	rect := canvas.NewPath()
	rect.Rect(dst.Left, dst.Top, dst.Width(), dst.Height())
	mask := fillMask(s.img.Rect, rect, canvas.NonZero, s.matrix)

	var layer *image.RGBA
	if mask != nil {
		layer = image.NewRGBA(mask.Rect)
		toDst := canvas.Translate(dst.Left, dst.Top).
			Multiply(canvas.Scale(dst.Width()/src.Width(), dst.Height()/src.Height())).
			Multiply(canvas.Translate(-src.Left, -src.Top))
		m := s.matrix.Multiply(toDst)
		sr := image.Rect(floorInt(src.Left), floorInt(src.Top), ceilInt(src.Right), ceilInt(src.Bottom)).
			Intersect(image.Rect(0, 0, img.Width, img.Height))
		interpolator(paint.FilterQuality).Transform(layer, f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}, img.RGBA(), sr, draw.Src, nil)
	}

	alpha := uint8(255)
	if paint.Alpha < 1 {
		alpha = uint8(math.Round(max(paint.Alpha, 0) * 255))
	}
	sample := func(x, y int) color.RGBA {
		if layer == nil {
			return color.RGBA{}
		}
		c := layer.RGBAAt(x, y)
		if alpha < 255 {
			c = scaleRGBA(c, alpha)
		}
		return c
	}
	s.drawMask(mask, sample, paint)
}

func interpolator(q canvas.FilterQuality) draw.Interpolator {
	switch q {
	case canvas.FilterNone:
		return draw.NearestNeighbor
	case canvas.FilterMedium:
		return draw.BiLinear
	case canvas.FilterHigh:
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}

// DrawText implements canvas.Backend. Text is shaped, converted to glyph
// outlines and drawn like a path.
func (s *Surface) DrawText(text string, x, y float64, font canvas.Font, dir canvas.Direction, paint *canvas.Paint, style canvas.PaintStyle) {
	path := s.fonts.Path(text, x, y, font, dir)
	if path.IsEmpty() {
		return
	}
	s.drawShape(path, paint, style)
}

// MeasureText implements canvas.Backend.
func (s *Surface) MeasureText(text string, font canvas.Font, dir canvas.Direction) float64 {
	return s.fonts.Measure(text, font, dir)
}

// ReadPixels implements canvas.Backend.
func (s *Surface) ReadPixels(x, y, w, h int, dst []byte) bool {
	if w <= 0 || h <= 0 || len(dst) < w*h*4 {
		return false
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		from := s.img.Pix[s.img.PixOffset(r.Min.X, py):s.img.PixOffset(r.Max.X, py)]
		copy(dst[((py-y)*w+(r.Min.X-x))*4:], from)
	}
	return true
}

// WritePixels implements canvas.Backend.
func (s *Surface) WritePixels(img *canvas.Image, x, y int) {
	if img == nil {
		return
	}
	r := image.Rect(x, y, x+img.Width, y+img.Height).Intersect(s.img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		i := ((py-y)*img.Width + (r.Min.X - x)) * 4
		copy(s.img.Pix[s.img.PixOffset(r.Min.X, py):s.img.PixOffset(r.Max.X, py)], img.Pix[i:])
	}
}

// Clear implements canvas.Backend.
func (s *Surface) Clear(c canvas.RGBA) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c.Premultiplied()), image.Point{}, draw.Src)
}

// Flush implements canvas.Backend. Drawing is immediate, so there is
// nothing to submit.
func (s *Surface) Flush() {}
