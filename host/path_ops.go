package host

import "github.com/gogpu/canvas"

// BeginPath discards the current path of a context, or empties a path.
func (r *Runtime) BeginPath(t Target, h Handle) Handle {
	if t == TargetContext {
		return r.withContext(h, func(c *canvas.Context) { c.BeginPath() })
	}
	return r.withPath(t, h, func(p *canvas.Path) { p.Reset() })
}

// MoveTo starts a new subpath at (x, y).
func (r *Runtime) MoveTo(t Target, h Handle, x, y float64) Handle {
	return r.withPath(t, h, func(p *canvas.Path) { p.MoveTo(x, y) })
}

// LineTo adds a line to (x, y).
func (r *Runtime) LineTo(t Target, h Handle, x, y float64) Handle {
	return r.withPath(t, h, func(p *canvas.Path) { p.LineTo(x, y) })
}

// BezierCurveTo adds a cubic Bezier curve.
func (r *Runtime) BezierCurveTo(t Target, h Handle, c1x, c1y, c2x, c2y, x, y float64) Handle {
	return r.withPath(t, h, func(p *canvas.Path) { p.CubicTo(c1x, c1y, c2x, c2y, x, y) })
}

// QuadraticCurveTo adds a quadratic Bezier curve.
func (r *Runtime) QuadraticCurveTo(t Target, h Handle, cx, cy, x, y float64) Handle {
	return r.withPath(t, h, func(p *canvas.Path) { p.QuadraticTo(cx, cy, x, y) })
}

// Arc adds a circular arc.
func (r *Runtime) Arc(t Target, h Handle, x, y, radius, start, end float64, anticlockwise bool) Handle {
	return r.withPath(t, h, func(p *canvas.Path) { p.Arc(x, y, radius, start, end, anticlockwise) })
}

// ArcTo adds an arc tangent to two lines.
func (r *Runtime) ArcTo(t Target, h Handle, x1, y1, x2, y2, radius float64) Handle {
	return r.withPath(t, h, func(p *canvas.Path) { p.ArcToTangent(x1, y1, x2, y2, radius) })
}

// Ellipse adds an elliptical arc.
func (r *Runtime) Ellipse(t Target, h Handle, x, y, rx, ry, rotation, start, end float64, anticlockwise bool) Handle {
	return r.withPath(t, h, func(p *canvas.Path) {
		p.Ellipse(x, y, rx, ry, rotation, start, end, anticlockwise)
	})
}

// Rect adds a closed rectangle.
func (r *Runtime) Rect(t Target, h Handle, x, y, w, ht float64) Handle {
	return r.withPath(t, h, func(p *canvas.Path) { p.Rect(x, y, w, ht) })
}

// ClosePath closes the current subpath.
func (r *Runtime) ClosePath(t Target, h Handle) Handle {
	return r.withPath(t, h, func(p *canvas.Path) { p.Close() })
}

// AddPath appends the path behind src to the path behind dst, transformed
// by the matrix behind m when m is live.
func (r *Runtime) AddPath(dst, src, m Handle) Handle {
	from, ok := get(r.paths, "path", src)
	if !ok {
		return dst
	}
	var mp *canvas.Matrix
	if mat, ok := r.matrices.Get(m); ok {
		mp = &mat
	}
	return r.withPath(TargetPath, dst, func(p *canvas.Path) { p.AddPath(from, mp) })
}

// SetFillRule sets the fill rule recorded on a path.
func (r *Runtime) SetFillRule(path Handle, rule string) Handle {
	return r.withPath(TargetPath, path, func(p *canvas.Path) { p.SetFillRule(canvas.ParseFillRule(rule)) })
}

// PathBounds returns the bounds of a path as left, top, right, bottom.
func (r *Runtime) PathBounds(t Target, h Handle) [4]float64 {
	p, ok := r.pathOf(t, h)
	if !ok {
		return [4]float64{}
	}
	b := p.Bounds()
	return [4]float64{b.Left, b.Top, b.Right, b.Bottom}
}
