package canvas

import (
	"fmt"
	"math"
	"sort"
)

// ColorStop is a color at Offset in [0, 1] along a gradient.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// StopsFromARGB pairs 0xAARRGGBB colors with their positions, the array
// layout hosts use. When positions is empty the colors are spread evenly.
func StopsFromARGB(colors []uint32, positions []float64) ([]ColorStop, error) {
	if len(positions) != 0 && len(positions) != len(colors) {
		return nil, fmt.Errorf("canvas: %d colors with %d positions: %w", len(colors), len(positions), ErrInvalidGradient)
	}
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		off := 0.0
		switch {
		case len(positions) != 0:
			off = positions[i]
		case len(colors) > 1:
			off = float64(i) / float64(len(colors)-1)
		}
		stops[i] = ColorStop{Offset: off, Color: ARGB(c)}
	}
	return stops, nil
}

// prepareStops validates and orders stops. Equal offsets keep their
// insertion order so hard color transitions survive sorting.
func prepareStops(stops []ColorStop) ([]ColorStop, error) {
	out := make([]ColorStop, len(stops))
	copy(out, stops)
	for _, s := range out {
		if math.IsNaN(s.Offset) || s.Offset < 0 || s.Offset > 1 {
			return nil, fmt.Errorf("canvas: color stop offset %v outside [0, 1]: %w", s.Offset, ErrInvalidGradient)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out, nil
}

// colorAt evaluates sorted stops at t, padding outside [0, 1].
func colorAt(stops []ColorStop, t float64) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}
	t = clamp01(t)
	idx := sort.Search(len(stops), func(i int) bool { return stops[i].Offset > t })
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}
	a, b := stops[idx-1], stops[idx]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Color
	}
	return a.Color.Lerp(b.Color, (t-a.Offset)/span)
}

// LinearGradient interpolates colors along the line from P0 to P1.
// It is immutable once built.
type LinearGradient struct {
	P0, P1 Point
	stops  []ColorStop
}

// NewLinearGradient builds a linear gradient. It fails on non-finite
// coordinates or stop offsets outside [0, 1].
func NewLinearGradient(x0, y0, x1, y1 float64, stops []ColorStop) (*LinearGradient, error) {
	if !allFinite(x0, y0, x1, y1) {
		return nil, fmt.Errorf("canvas: linear gradient geometry not finite: %w", ErrInvalidGradient)
	}
	sorted, err := prepareStops(stops)
	if err != nil {
		return nil, err
	}
	return &LinearGradient{P0: Pt(x0, y0), P1: Pt(x1, y1), stops: sorted}, nil
}

func (*LinearGradient) brushMarker() {}

// Stops returns a copy of the sorted color stops.
func (g *LinearGradient) Stops() []ColorStop {
	return append([]ColorStop(nil), g.stops...)
}

// ColorAt implements Brush. A gradient whose endpoints coincide paints
// nothing.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	d := g.P1.Sub(g.P0)
	l2 := d.Dot(d)
	if l2 == 0 {
		return Transparent
	}
	t := Pt(x, y).Sub(g.P0).Dot(d) / l2
	return colorAt(g.stops, t)
}

// RadialGradient is a two-point conical gradient between the circle
// (C0, R0) and the circle (C1, R1). It is immutable once built.
type RadialGradient struct {
	C0    Point
	R0    float64
	C1    Point
	R1    float64
	stops []ColorStop
}

// NewRadialGradient builds a two-point conical gradient. It fails on
// non-finite geometry, negative radii or bad stop offsets.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64, stops []ColorStop) (*RadialGradient, error) {
	if !allFinite(x0, y0, r0, x1, y1, r1) {
		return nil, fmt.Errorf("canvas: radial gradient geometry not finite: %w", ErrInvalidGradient)
	}
	if r0 < 0 || r1 < 0 {
		return nil, fmt.Errorf("canvas: radial gradient radius negative: %w", ErrInvalidGradient)
	}
	sorted, err := prepareStops(stops)
	if err != nil {
		return nil, err
	}
	return &RadialGradient{C0: Pt(x0, y0), R0: r0, C1: Pt(x1, y1), R1: r1, stops: sorted}, nil
}

func (*RadialGradient) brushMarker() {}

// Stops returns a copy of the sorted color stops.
func (g *RadialGradient) Stops() []ColorStop {
	return append([]ColorStop(nil), g.stops...)
}

// ColorAt implements Brush. The parameter is the largest w for which
// (x, y) lies on the circle interpolated at w with a non-negative radius;
// points on no such circle are transparent.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	if g.C0 == g.C1 && g.R0 == g.R1 {
		return Transparent
	}
	cd := g.C1.Sub(g.C0)
	pd := Pt(x, y).Sub(g.C0)
	dr := g.R1 - g.R0

	a := cd.Dot(cd) - dr*dr
	b := pd.Dot(cd) + g.R0*dr
	c := pd.Dot(pd) - g.R0*g.R0

	valid := func(w float64) bool { return g.R0+w*dr >= 0 }

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return Transparent
		}
		w := c / (2 * b)
		if !valid(w) {
			return Transparent
		}
		return colorAt(g.stops, w)
	}
	disc := b*b - a*c
	if disc < 0 {
		return Transparent
	}
	sq := math.Sqrt(disc)
	w1, w2 := (b+sq)/a, (b-sq)/a
	if w1 < w2 {
		w1, w2 = w2, w1
	}
	switch {
	case valid(w1):
		return colorAt(g.stops, w1)
	case valid(w2):
		return colorAt(g.stops, w2)
	}
	return Transparent
}
