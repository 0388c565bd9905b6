package canvas

import "math"

// isFullTurn recognises a sweep AdjustEndAngle clamped to one turn.
func isFullTurn(sweep float64) bool {
	return math.Abs(math.Abs(sweep)-twoPi) <= angleSlack
}

func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Arc appends a circular arc centered at (x, y). It is Ellipse with equal
// radii and no rotation.
func (p *Path) Arc(x, y, r, start, end float64, anticlockwise bool) {
	p.Ellipse(x, y, r, r, 0, start, end, anticlockwise)
}

// Ellipse appends an elliptical arc centered at (x, y) with radii rx, ry,
// rotated by rotation radians, from angle start to angle end. Calls with
// non-finite arguments, negative radii or an unrenderable sweep are
// ignored.
func (p *Path) Ellipse(x, y, rx, ry, rotation, start, end float64, anticlockwise bool) {
	if !allFinite(x, y, rx, ry, rotation, start, end) || rx < 0 || ry < 0 {
		Logger().Debug("canvas: ellipse ignored", "rx", rx, "ry", ry, "start", start, "end", end)
		return
	}
	if !arcAccepted(start, end) {
		return
	}
	end = AdjustEndAngle(start, end, anticlockwise)
	if rotation == 0 {
		p.ellipseArc(x, y, rx, ry, start, end)
		return
	}
	m := Translate(x, y).Multiply(Rotate(rotation))
	inv, ok := m.Invert()
	if !ok {
		return
	}
	*p = *p.Transform(inv)
	p.ellipseArc(0, 0, rx, ry, start, end)
	*p = *p.Transform(m)
}

// ellipseArc adds an axis-aligned arc as oval arc commands. A full turn
// cannot be expressed by one oval arc, so it is issued as two half turns.
func (p *Path) ellipseArc(x, y, rx, ry, start, end float64) {
	oval := Rect{Left: x - rx, Top: y - ry, Right: x + rx, Bottom: y + ry}
	sweep := end - start
	startDeg := degrees(start)
	if isFullTurn(sweep) {
		half := 180.0
		if sweep < 0 {
			half = -180
		}
		p.ArcToOval(oval, startDeg, half, false)
		p.ArcToOval(oval, startDeg+half, half, false)
		return
	}
	p.ArcToOval(oval, startDeg, degrees(sweep), false)
}
