package canvas

import (
	"fmt"
	"math"
)

// Pattern tiles an image across the plane. It is immutable once built;
// WithTransform returns a new pattern.
type Pattern struct {
	image      *Image
	repetition Repetition
	matrix     Matrix
	inverse    Matrix
}

// NewPattern builds a pattern from img.
func NewPattern(img *Image, rep Repetition) (*Pattern, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("canvas: pattern needs a non-empty image: %w", ErrInvalidPattern)
	}
	return &Pattern{image: img, repetition: rep, matrix: Identity(), inverse: Identity()}, nil
}

func (*Pattern) brushMarker() {}

// Image returns the tiled image.
func (p *Pattern) Image() *Image { return p.image }

// Repetition returns how the pattern tiles.
func (p *Pattern) Repetition() Repetition { return p.repetition }

// Matrix returns the pattern-space to user-space transform.
func (p *Pattern) Matrix() Matrix { return p.matrix }

// WithTransform returns a copy of p whose tiles are mapped into user
// space by m. A singular m leaves the pattern untransformed.
func (p *Pattern) WithTransform(m Matrix) *Pattern {
	inv, ok := m.Invert()
	if !ok {
		return p
	}
	c := *p
	c.matrix = m
	c.inverse = inv
	return &c
}

// ColorAt implements Brush with nearest-neighbour sampling.
func (p *Pattern) ColorAt(x, y float64) RGBA {
	pt := p.inverse.TransformPoint(Pt(x, y))
	w, h := float64(p.image.Width), float64(p.image.Height)
	px, py := pt.X, pt.Y
	if p.repetition == Repeat || p.repetition == RepeatX {
		px = px - w*math.Floor(px/w)
	}
	if p.repetition == Repeat || p.repetition == RepeatY {
		py = py - h*math.Floor(py/h)
	}
	if px < 0 || py < 0 || px >= w || py >= h {
		return Transparent
	}
	c := p.image.At(int(px), int(py))
	if c.A == 0 {
		return Transparent
	}
	a := float64(c.A)
	return RGBA{R: float64(c.R) / a, G: float64(c.G) / a, B: float64(c.B) / a, A: a / 255}
}
