package raster

import (
	"image"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
)

// addPath feeds path to a rasterx adder. Curves are passed on as
// Béziers; arcs are converted to cubics first. Points are multiplied by
// k before conversion to 26.6 fixed point so the fixed grid has roughly
// device-pixel resolution.
func addPath(a rasterx.Adder, path *canvas.Path, k float64) {
	open := false
	for _, e := range path.Flatten().Elements() {
		switch e := e.(type) {
		case canvas.MoveTo:
			if open {
				a.Stop(false)
			}
			a.Start(toFixed(e.Point, k))
			open = true
		case canvas.LineTo:
			a.Line(toFixed(e.Point, k))
		case canvas.QuadTo:
			a.QuadBezier(toFixed(e.Control, k), toFixed(e.Point, k))
		case canvas.CubicTo:
			a.CubeBezier(toFixed(e.Control1, k), toFixed(e.Control2, k), toFixed(e.Point, k))
		case canvas.Close:
			if open {
				a.Stop(true)
				open = false
			}
		}
	}
	if open {
		a.Stop(false)
	}
}

func toFixed(p canvas.Point, k float64) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed26(p.X * k), Y: toFixed26(p.Y * k)}
}

func toFixed26(v float64) fixed.Int26_6 {
	v = math.Round(v * 64)
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxCoord:
		v = maxCoord
	case v < -maxCoord:
		v = -maxCoord
	}
	return fixed.Int26_6(v)
}

func floorInt(v float64) int { return int(math.Floor(clampCoord(v))) }

func ceilInt(v float64) int { return int(math.Ceil(clampCoord(v))) }

func clampCoord(v float64) float64 {
	const limit = maxCoord / 64
	return min(max(v, -limit), limit)
}

// pathScale returns the factor applied to user coordinates before fixed
// point conversion, and whether m can draw anything at all.
func pathScale(m canvas.Matrix) (float64, bool) {
	k := m.ScaleFactor()
	if !(k > 0) || math.IsInf(k, 0) || !m.IsFinite() {
		return 0, false
	}
	return k, true
}

// fillMask returns the coverage of path filled with rule under m, or nil
// when nothing is covered.
func fillMask(bounds image.Rectangle, path *canvas.Path, rule canvas.FillRule, m canvas.Matrix) *image.Alpha {
	k, ok := pathScale(m)
	if !ok || path.IsEmpty() {
		return nil
	}
	sc := NewScanner(bounds)
	sc.SetTransform(m.Multiply(canvas.Scale(1/k, 1/k)))
	f := rasterx.NewFiller(bounds.Max.X, bounds.Max.Y, sc)
	f.SetWinding(rule == canvas.NonZero)
	addPath(f, path, k)
	f.Draw()
	return sc.Mask()
}

// strokeMask returns the coverage of path stroked with the line
// parameters of paint under m. The stroke is built in user space, so
// non-uniform transforms distort it the way canvas requires.
func strokeMask(bounds image.Rectangle, path *canvas.Path, paint *canvas.Paint, m canvas.Matrix) *image.Alpha {
	k, ok := pathScale(m)
	if !ok || path.IsEmpty() || !(paint.LineWidth > 0) {
		return nil
	}
	sc := NewScanner(bounds)
	sc.SetTransform(m.Multiply(canvas.Scale(1/k, 1/k)))
	d := rasterx.NewDasher(bounds.Max.X, bounds.Max.Y, sc)

	capFn, gap, join := strokeStyle(paint.LineCap, paint.LineJoin)
	var dashes []float64
	var offset float64
	if dash := paint.Dash.Scaled(k); dash != nil {
		dashes, offset = dash.Array, dash.Offset
	}
	d.SetStroke(toFixed26(paint.LineWidth*k), toFixed26(paint.MiterLimit), capFn, capFn, gap, join, dashes, offset)
	d.SetWinding(true)
	addPath(d, path, k)
	d.Draw()
	return sc.Mask()
}

func strokeStyle(c canvas.LineCap, j canvas.LineJoin) (rasterx.CapFunc, rasterx.GapFunc, rasterx.JoinMode) {
	capFn := rasterx.ButtCap
	switch c {
	case canvas.LineCapRound:
		capFn = rasterx.RoundCap
	case canvas.LineCapSquare:
		capFn = rasterx.SquareCap
	}
	switch j {
	case canvas.LineJoinRound:
		return capFn, rasterx.RoundGap, rasterx.Round
	case canvas.LineJoinBevel:
		return capFn, rasterx.FlatGap, rasterx.Bevel
	default:
		return capFn, rasterx.FlatGap, rasterx.Miter
	}
}
