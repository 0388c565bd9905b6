package canvas

import "math"

// PathElement is one drawing command of a Path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// ArcTo draws part of the ellipse inscribed in Oval, starting at
// StartAngle and sweeping SweepAngle degrees (positive is clockwise in
// y-down space). The current point is always the arc's start point:
// Path inserts the connecting MoveTo or LineTo when the command is added.
type ArcTo struct {
	Oval       Rect
	StartAngle float64
	SweepAngle float64
}

func (ArcTo) isPathElement() {}

// TangentArcTo draws a circular arc of Radius tangent to the line from
// the current point to P1 and to the line from P1 to P2, preceded by a
// straight segment to the first tangent point.
type TangentArcTo struct {
	P1, P2 Point
	Radius float64
}

func (TangentArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of subpath commands plus a fill rule.
// The zero value is an empty path using the nonzero rule.
type Path struct {
	elements []PathElement
	start    Point // start of the active subpath
	current  Point
	rule     FillRule
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// FillRule returns the rule used when the path is filled or clipped.
func (p *Path) FillRule() FillRule { return p.rule }

// SetFillRule sets the rule used when the path is filled or clipped.
func (p *Path) SetFillRule(rule FillRule) { p.rule = rule }

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool { return len(p.elements) == 0 }

// Len returns the number of commands.
func (p *Path) Len() int { return len(p.elements) }

// Elements returns the commands of the path. The slice must not be modified.
func (p *Path) Elements() []PathElement { return p.elements }

// CurrentPoint returns the end point of the last command.
func (p *Path) CurrentPoint() Point { return p.current }

// HasCurrentPoint reports whether the path has at least one command.
func (p *Path) HasCurrentPoint() bool { return len(p.elements) > 0 }

// Reset removes every command, keeping the fill rule.
func (p *Path) Reset() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	elems := make([]PathElement, len(p.elements))
	copy(elems, p.elements)
	return &Path{
		elements: elems,
		start:    p.start,
		current:  p.current,
		rule:     p.rule,
	}
}

// needsMove reports whether the next drawing command has no subpath to
// extend.
func (p *Path) needsMove() bool {
	if len(p.elements) == 0 {
		return true
	}
	_, closed := p.elements[len(p.elements)-1].(Close)
	return closed
}

// ensureSubpath starts a subpath for a drawing command: at the origin on
// an empty path, or at the last subpath start after a Close.
func (p *Path) ensureSubpath() {
	if len(p.elements) == 0 {
		p.MoveTo(0, 0)
		return
	}
	if p.needsMove() {
		p.MoveTo(p.start.X, p.start.Y)
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.ensureSubpath()
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo appends a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.ensureSubpath()
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo appends a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureSubpath()
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the active subpath. It does nothing on an empty path.
func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	if p.needsMove() {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Rect appends a closed rectangular subpath. The rectangle's origin
// becomes the start of the next subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.elements = append(p.elements,
		LineTo{Point: Pt(x+w, y)},
		LineTo{Point: Pt(x+w, y+h)},
		LineTo{Point: Pt(x, y+h)},
		Close{},
	)
	p.current = p.start
}

// ArcToOval appends an arc of the ellipse inscribed in oval, from
// startDeg sweeping sweepDeg degrees. On an empty path, or when
// forceMoveTo is set, the arc starts a new subpath; otherwise a line
// connects the current point to the arc's start.
func (p *Path) ArcToOval(oval Rect, startDeg, sweepDeg float64, forceMoveTo bool) {
	c := oval.Center()
	rx, ry := oval.Width()/2, oval.Height()/2
	startPt := ellipsePoint(c, rx, ry, radians(startDeg))
	switch {
	case forceMoveTo || len(p.elements) == 0:
		p.MoveTo(startPt.X, startPt.Y)
	case p.needsMove():
		p.ensureSubpath()
		p.LineTo(startPt.X, startPt.Y)
	case p.current != startPt:
		p.LineTo(startPt.X, startPt.Y)
	}
	if sweepDeg == 0 {
		return
	}
	p.elements = append(p.elements, ArcTo{Oval: oval, StartAngle: startDeg, SweepAngle: sweepDeg})
	p.current = ellipsePoint(c, rx, ry, radians(startDeg+sweepDeg))
}

// ArcToTangent appends a circular arc of radius r tangent to the lines
// (current, p1) and (p1, p2), as canvas arcTo does. On an empty path the
// subpath starts at p1. A negative radius is ignored.
func (p *Path) ArcToTangent(x1, y1, x2, y2, r float64) {
	if r < 0 {
		return
	}
	if len(p.elements) == 0 {
		p.MoveTo(x1, y1)
	} else {
		p.ensureSubpath()
	}
	p1, p2 := Pt(x1, y1), Pt(x2, y2)
	geom, ok := tangentArc(p.current, p1, p2, r)
	if !ok {
		p.LineTo(x1, y1)
		return
	}
	p.elements = append(p.elements, TangentArcTo{P1: p1, P2: p2, Radius: r})
	p.current = geom.t2
}

// AddPath appends the commands of other, transformed by m when m is not
// nil. The fill rule of p is unchanged.
func (p *Path) AddPath(other *Path, m *Matrix) {
	if other == nil || other.IsEmpty() {
		return
	}
	src := other
	if m != nil {
		src = other.Transform(*m)
	}
	p.elements = append(p.elements, src.elements...)
	p.start = src.start
	p.current = src.current
}

// Transform returns a copy of p with every point mapped through m.
// Arcs survive a transform that only scales positively and translates;
// otherwise they are converted to cubic curves first.
func (p *Path) Transform(m Matrix) *Path {
	if m.IsIdentity() {
		return p.Clone()
	}
	keepArcs := m.IsAxisAligned() && m.A > 0 && m.E > 0
	out := &Path{elements: make([]PathElement, 0, len(p.elements)), rule: p.rule}
	var cur, start Point
	emit := func(e PathElement) {
		out.elements = append(out.elements, e)
	}
	for _, e := range p.elements {
		switch el := e.(type) {
		case MoveTo:
			emit(MoveTo{Point: m.TransformPoint(el.Point)})
			cur, start = el.Point, el.Point
		case LineTo:
			emit(LineTo{Point: m.TransformPoint(el.Point)})
			cur = el.Point
		case QuadTo:
			emit(QuadTo{Control: m.TransformPoint(el.Control), Point: m.TransformPoint(el.Point)})
			cur = el.Point
		case CubicTo:
			emit(CubicTo{
				Control1: m.TransformPoint(el.Control1),
				Control2: m.TransformPoint(el.Control2),
				Point:    m.TransformPoint(el.Point),
			})
			cur = el.Point
		case ArcTo:
			if keepArcs {
				tl := m.TransformPoint(Pt(el.Oval.Left, el.Oval.Top))
				br := m.TransformPoint(Pt(el.Oval.Right, el.Oval.Bottom))
				emit(ArcTo{Oval: Rect{Left: tl.X, Top: tl.Y, Right: br.X, Bottom: br.Y}, StartAngle: el.StartAngle, SweepAngle: el.SweepAngle})
			} else {
				for _, c := range arcCubics(el) {
					emit(CubicTo{
						Control1: m.TransformPoint(c.Control1),
						Control2: m.TransformPoint(c.Control2),
						Point:    m.TransformPoint(c.Point),
					})
				}
			}
			cur = arcEnd(el)
		case TangentArcTo:
			for _, f := range flattenTangentArc(cur, el) {
				emit(transformElement(f, m))
			}
			cur = tangentEnd(cur, el)
		case Close:
			emit(Close{})
			cur = start
		}
	}
	out.start = m.TransformPoint(start)
	out.current = m.TransformPoint(cur)
	return out
}

func transformElement(e PathElement, m Matrix) PathElement {
	switch el := e.(type) {
	case MoveTo:
		return MoveTo{Point: m.TransformPoint(el.Point)}
	case LineTo:
		return LineTo{Point: m.TransformPoint(el.Point)}
	case QuadTo:
		return QuadTo{Control: m.TransformPoint(el.Control), Point: m.TransformPoint(el.Point)}
	case CubicTo:
		return CubicTo{
			Control1: m.TransformPoint(el.Control1),
			Control2: m.TransformPoint(el.Control2),
			Point:    m.TransformPoint(el.Point),
		}
	}
	return e
}

// Flatten returns an equivalent path made only of MoveTo, LineTo, QuadTo,
// CubicTo and Close commands. Backends that do not understand arcs draw
// the flattened path.
func (p *Path) Flatten() *Path {
	out := &Path{elements: make([]PathElement, 0, len(p.elements)), start: p.start, current: p.current, rule: p.rule}
	var cur, start Point
	for _, e := range p.elements {
		switch el := e.(type) {
		case MoveTo:
			cur, start = el.Point, el.Point
			out.elements = append(out.elements, el)
		case LineTo:
			cur = el.Point
			out.elements = append(out.elements, el)
		case QuadTo:
			cur = el.Point
			out.elements = append(out.elements, el)
		case CubicTo:
			cur = el.Point
			out.elements = append(out.elements, el)
		case ArcTo:
			for _, c := range arcCubics(el) {
				out.elements = append(out.elements, c)
			}
			cur = arcEnd(el)
		case TangentArcTo:
			out.elements = append(out.elements, flattenTangentArc(cur, el)...)
			cur = tangentEnd(cur, el)
		case Close:
			cur = start
			out.elements = append(out.elements, el)
		}
	}
	return out
}

// Bounds returns the bounding box of every point of the flattened path,
// control points included. An empty path has an empty Rect.
func (p *Path) Bounds() Rect {
	flat := p.Flatten()
	first := true
	var r Rect
	add := func(pt Point) {
		if first {
			r = Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y}
			first = false
			return
		}
		r.Left = math.Min(r.Left, pt.X)
		r.Top = math.Min(r.Top, pt.Y)
		r.Right = math.Max(r.Right, pt.X)
		r.Bottom = math.Max(r.Bottom, pt.Y)
	}
	for _, e := range flat.elements {
		switch el := e.(type) {
		case MoveTo:
			add(el.Point)
		case LineTo:
			add(el.Point)
		case QuadTo:
			add(el.Control)
			add(el.Point)
		case CubicTo:
			add(el.Control1)
			add(el.Control2)
			add(el.Point)
		}
	}
	return r
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func ellipsePoint(c Point, rx, ry, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: c.X + rx*cos, Y: c.Y + ry*sin}
}

func arcEnd(a ArcTo) Point {
	return ellipsePoint(a.Oval.Center(), a.Oval.Width()/2, a.Oval.Height()/2, radians(a.StartAngle+a.SweepAngle))
}

// arcCubics approximates an oval arc with cubic Beziers of at most 90 degrees each.
func arcCubics(a ArcTo) []CubicTo {
	c := a.Oval.Center()
	rx, ry := a.Oval.Width()/2, a.Oval.Height()/2
	start := radians(a.StartAngle)
	sweep := radians(a.SweepAngle)
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	out := make([]CubicTo, 0, n)
	a1 := start
	for i := 0; i < n; i++ {
		a2 := a1 + step
		s1, c1 := math.Sincos(a1)
		s2, c2 := math.Sincos(a2)
		p0 := Point{X: c.X + rx*c1, Y: c.Y + ry*s1}
		p3 := Point{X: c.X + rx*c2, Y: c.Y + ry*s2}
		out = append(out, CubicTo{
			Control1: Point{X: p0.X - k*rx*s1, Y: p0.Y + k*ry*c1},
			Control2: Point{X: p3.X + k*rx*s2, Y: p3.Y - k*ry*c2},
			Point:    p3,
		})
		a1 = a2
	}
	return out
}

type tangentGeom struct {
	t1, t2     Point
	center     Point
	start, end float64 // angles about center, radians
	ccw        bool
}

// tangentArc computes the circle of radius r tangent to (p0,p1) and
// (p1,p2). ok is false when the arc degenerates to a line to p1.
func tangentArc(p0, p1, p2 Point, r float64) (tangentGeom, bool) {
	if r == 0 || p0 == p1 || p1 == p2 {
		return tangentGeom{}, false
	}
	v1 := p0.Sub(p1).Normalize()
	v2 := p2.Sub(p1).Normalize()
	cross := v1.Cross(v2)
	if math.Abs(cross) < 1e-9 {
		return tangentGeom{}, false
	}
	cosTheta := math.Max(-1, math.Min(1, v1.Dot(v2)))
	half := math.Acos(cosTheta) / 2
	dist := r / math.Tan(half)
	t1 := p1.Add(v1.Mul(dist))
	t2 := p1.Add(v2.Mul(dist))
	bisector := v1.Add(v2).Normalize()
	center := p1.Add(bisector.Mul(r / math.Sin(half)))
	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	a2 := math.Atan2(t2.Y-center.Y, t2.X-center.X)
	return tangentGeom{t1: t1, t2: t2, center: center, start: a1, end: a2, ccw: cross > 0}, true
}

func tangentEnd(cur Point, t TangentArcTo) Point {
	if g, ok := tangentArc(cur, t.P1, t.P2, t.Radius); ok {
		return g.t2
	}
	return t.P1
}

func flattenTangentArc(cur Point, t TangentArcTo) []PathElement {
	g, ok := tangentArc(cur, t.P1, t.P2, t.Radius)
	if !ok {
		return []PathElement{LineTo{Point: t.P1}}
	}
	out := []PathElement{LineTo{Point: g.t1}}
	sweep := g.end - g.start
	if g.ccw {
		for sweep > 0 {
			sweep -= 2 * math.Pi
		}
	} else {
		for sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	oval := Rect{Left: g.center.X - t.Radius, Top: g.center.Y - t.Radius, Right: g.center.X + t.Radius, Bottom: g.center.Y + t.Radius}
	for _, c := range arcCubics(ArcTo{Oval: oval, StartAngle: degrees(g.start), SweepAngle: degrees(sweep)}) {
		out = append(out, c)
	}
	return out
}
