package raster

import (
	"image"
	"image/color"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/filter"
)

// sampler returns the premultiplied source color at a device pixel.
type sampler func(x, y int) color.RGBA

func uniform(c color.RGBA) sampler {
	return func(int, int) color.RGBA { return c }
}

var blendModes = map[canvas.BlendMode]blend.Mode{
	canvas.BlendSourceOver:      blend.ModeSourceOver,
	canvas.BlendSourceIn:        blend.ModeSourceIn,
	canvas.BlendSourceOut:       blend.ModeSourceOut,
	canvas.BlendSourceAtop:      blend.ModeSourceAtop,
	canvas.BlendDestinationOver: blend.ModeDestinationOver,
	canvas.BlendDestinationIn:   blend.ModeDestinationIn,
	canvas.BlendDestinationOut:  blend.ModeDestinationOut,
	canvas.BlendDestinationAtop: blend.ModeDestinationAtop,
	canvas.BlendLighter:         blend.ModePlus,
	canvas.BlendCopy:            blend.ModeSource,
	canvas.BlendXor:             blend.ModeXor,
	canvas.BlendClear:           blend.ModeClear,
	canvas.BlendMultiply:        blend.ModeMultiply,
	canvas.BlendScreen:          blend.ModeScreen,
	canvas.BlendOverlay:         blend.ModeOverlay,
	canvas.BlendDarken:          blend.ModeDarken,
	canvas.BlendLighten:         blend.ModeLighten,
	canvas.BlendColorDodge:      blend.ModeColorDodge,
	canvas.BlendColorBurn:       blend.ModeColorBurn,
	canvas.BlendHardLight:       blend.ModeHardLight,
	canvas.BlendSoftLight:       blend.ModeSoftLight,
	canvas.BlendDifference:      blend.ModeDifference,
	canvas.BlendExclusion:       blend.ModeExclusion,
	canvas.BlendHue:             blend.ModeHue,
	canvas.BlendSaturation:      blend.ModeSaturation,
	canvas.BlendColor:           blend.ModeColor,
	canvas.BlendLuminosity:      blend.ModeLuminosity,
}

func blendMode(m canvas.BlendMode) blend.Mode {
	if bm, ok := blendModes[m]; ok {
		return bm
	}
	return blend.ModeSourceOver
}

func scaleRGBA(c color.RGBA, k byte) color.RGBA {
	return color.RGBA{R: blend.Mul(c.R, k), G: blend.Mul(c.G, k), B: blend.Mul(c.B, k), A: blend.Mul(c.A, k)}
}

func alphaAt(m *image.Alpha, x, y int) byte {
	if m == nil || !(image.Point{X: x, Y: y}).In(m.Rect) {
		return 0
	}
	return m.Pix[m.PixOffset(x, y)]
}

// composite draws src through the coverage mask onto the surface.
//
// Bounded modes only touch covered pixels and use coverage times clip as
// the interpolation factor. Unbounded modes (copy, source-in, ...) touch
// every pixel inside the clip: the source is scaled by coverage, so
// uncovered pixels composite a transparent source. Clear is treated as
// bounded.
func (s *Surface) composite(mask *image.Alpha, src sampler, mode canvas.BlendMode) {
	bm := blendMode(mode)
	fn := blend.Get(bm)
	// clear erases covered pixels only; clearRect relies on it
	bounded := blend.Bounded(bm) || bm == blend.ModeClear

	area := s.img.Rect
	if bounded {
		if mask == nil {
			return
		}
		area = area.Intersect(mask.Rect)
	}
	if s.clip != nil {
		area = area.Intersect(s.clip.Rect)
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			clip := byte(255)
			if s.clip != nil {
				clip = s.clip.Pix[s.clip.PixOffset(x, y)]
				if clip == 0 {
					continue
				}
			}
			cov := alphaAt(mask, x, y)
			i := s.img.PixOffset(x, y)
			dst := s.img.Pix[i : i+4 : i+4]
			if bounded {
				k := blend.Mul(cov, clip)
				if k == 0 {
					continue
				}
				c := src(x, y)
				blend.Pixel(dst, c.R, c.G, c.B, c.A, k, fn)
				continue
			}
			var c color.RGBA
			if cov > 0 {
				c = src(x, y)
				if cov < 255 {
					c = scaleRGBA(c, cov)
				}
			}
			blend.Pixel(dst, c.R, c.G, c.B, c.A, clip, fn)
		}
	}
}

// drawMask composites src through mask with the transient effects of p: the
// mask blur first, then the drop shadow underneath the shape.
func (s *Surface) drawMask(mask *image.Alpha, src sampler, p *canvas.Paint) {
	if mask != nil && p.MaskBlur > 0 {
		mask = filter.BlurAlpha(mask, p.MaskBlur)
	}
	if sh := p.ImageFilter; sh != nil && mask != nil && !sh.Color.IsTransparent() {
		s.composite(shadowMask(mask, src, sh), uniform(sh.Color.Premultiplied()), p.Blend)
	}
	s.composite(mask, src, p.Blend)
}

// shadowMask returns the blurred, offset alpha of the source drawn
// through mask.
func shadowMask(mask *image.Alpha, src sampler, sh *canvas.DropShadow) *image.Alpha {
	a := image.NewAlpha(mask.Rect)
	for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
		for x := mask.Rect.Min.X; x < mask.Rect.Max.X; x++ {
			i := mask.PixOffset(x, y)
			if cov := mask.Pix[i]; cov != 0 {
				a.Pix[i] = blend.Mul(cov, src(x, y).A)
			}
		}
	}
	return filter.Shadow(a, sh.Sigma, sh.OffsetX, sh.OffsetY)
}

// paintSampler shades p's brush in user space through the inverse of m.
func paintSampler(p *canvas.Paint, m canvas.Matrix) sampler {
	if _, ok := p.Brush.(canvas.SolidBrush); ok || p.Brush == nil {
		return uniform(p.ColorAt(0, 0).Premultiplied())
	}
	inv, ok := m.Invert()
	if !ok {
		return uniform(color.RGBA{})
	}
	return func(x, y int) color.RGBA {
		pt := inv.TransformPoint(canvas.Pt(float64(x)+0.5, float64(y)+0.5))
		return p.ColorAt(pt.X, pt.Y).Premultiplied()
	}
}

// intersectClip returns the clip that is the product of clip and mask.
// A nil clip means no clip; a nil mask covers nothing.
func intersectClip(bounds image.Rectangle, clip, mask *image.Alpha) *image.Alpha {
	out := image.NewAlpha(bounds)
	if mask == nil {
		return out
	}
	area := bounds.Intersect(mask.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			v := mask.Pix[mask.PixOffset(x, y)]
			if clip != nil {
				v = blend.Mul(v, clip.Pix[clip.PixOffset(x, y)])
			}
			out.Pix[out.PixOffset(x, y)] = v
		}
	}
	return out
}
