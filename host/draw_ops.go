package host

import "github.com/gogpu/canvas"

// Fill fills the current path of ctx with rule ("nonzero" or "evenodd").
func (r *Runtime) Fill(ctx Handle, rule string) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.FillWithRule(canvas.ParseFillRule(rule)) })
}

// FillPath fills the path behind path with rule.
func (r *Runtime) FillPath(ctx, path Handle, rule string) Handle {
	p, ok := get(r.paths, "path", path)
	if !ok {
		return ctx
	}
	return r.withContext(ctx, func(c *canvas.Context) { c.FillPathWithRule(p, canvas.ParseFillRule(rule)) })
}

// Stroke strokes the current path of ctx.
func (r *Runtime) Stroke(ctx Handle) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.Stroke() })
}

// StrokePath strokes the path behind path.
func (r *Runtime) StrokePath(ctx, path Handle) Handle {
	p, ok := get(r.paths, "path", path)
	if !ok {
		return ctx
	}
	return r.withContext(ctx, func(c *canvas.Context) { c.StrokePath(p) })
}

// Clip intersects the clip region of ctx with its current path.
func (r *Runtime) Clip(ctx Handle, rule string) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.ClipWithRule(canvas.ParseFillRule(rule)) })
}

// ClipPath intersects the clip region of ctx with the path behind path.
func (r *Runtime) ClipPath(ctx, path Handle, rule string) Handle {
	p, ok := get(r.paths, "path", path)
	if !ok {
		return ctx
	}
	// the context records the rule on the path it clips with
	p = p.Clone()
	return r.withContext(ctx, func(c *canvas.Context) { c.ClipPath(p, canvas.ParseFillRule(rule)) })
}

// FillRect fills a rectangle.
func (r *Runtime) FillRect(ctx Handle, x, y, w, h float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.FillRect(x, y, w, h) })
}

// StrokeRect strokes a rectangle.
func (r *Runtime) StrokeRect(ctx Handle, x, y, w, h float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.StrokeRect(x, y, w, h) })
}

// ClearRect makes a rectangle transparent black.
func (r *Runtime) ClearRect(ctx Handle, x, y, w, h float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.ClearRect(x, y, w, h) })
}

// ClearCanvas paints the whole surface with the configured clear color.
func (r *Runtime) ClearCanvas(ctx Handle) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.ClearCanvas() })
}

// Save pushes the drawing state.
func (r *Runtime) Save(ctx Handle) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.Save() })
}

// Restore pops the drawing state.
func (r *Runtime) Restore(ctx Handle) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.Restore() })
}

// Scale scales the current transform.
func (r *Runtime) Scale(ctx Handle, x, y float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.Scale(x, y) })
}

// Rotate rotates the current transform by angle radians.
func (r *Runtime) Rotate(ctx Handle, angle float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.Rotate(angle) })
}

// Translate translates the current transform.
func (r *Runtime) Translate(ctx Handle, x, y float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.Translate(x, y) })
}

// Transform multiplies the current transform by the canvas matrix
// (a, b, c, d, e, f).
func (r *Runtime) Transform(ctx Handle, a, b, c, d, e, f float64) Handle {
	return r.withContext(ctx, func(cx *canvas.Context) { cx.Transform(a, b, c, d, e, f) })
}

// SetTransform replaces the current transform.
func (r *Runtime) SetTransform(ctx Handle, a, b, c, d, e, f float64) Handle {
	return r.withContext(ctx, func(cx *canvas.Context) { cx.SetTransform(a, b, c, d, e, f) })
}

// SetTransformMatrix replaces the current transform with the matrix
// behind m.
func (r *Runtime) SetTransformMatrix(ctx, m Handle) Handle {
	mat, ok := get(r.matrices, "matrix", m)
	if !ok {
		return ctx
	}
	return r.withContext(ctx, func(c *canvas.Context) { c.SetTransformMatrix(mat) })
}

// ResetTransform sets the identity transform.
func (r *Runtime) ResetTransform(ctx Handle) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.ResetTransform() })
}

// GetTransform returns a new matrix handle holding the current
// transform, or Null when ctx is not live.
func (r *Runtime) GetTransform(ctx Handle) Handle {
	c, ok := r.context(ctx)
	if !ok {
		return Null
	}
	return r.matrices.Insert(c.GetTransform())
}

// CreateMatrix returns a matrix handle for the canvas matrix
// (a, b, c, d, e, f).
func (r *Runtime) CreateMatrix(a, b, c, d, e, f float64) Handle {
	return r.matrices.Insert(canvas.FromCanvas(a, b, c, d, e, f))
}

// CreateIdentityMatrix returns a handle for the identity matrix.
func (r *Runtime) CreateIdentityMatrix() Handle {
	return r.matrices.Insert(canvas.Identity())
}

// Matrix returns the canvas components (a, b, c, d, e, f) of the matrix
// behind m.
func (r *Runtime) Matrix(m Handle) ([6]float64, bool) {
	mat, ok := get(r.matrices, "matrix", m)
	if !ok {
		return [6]float64{}, false
	}
	return mat.Canvas(), true
}

// SetMatrix replaces the matrix behind m.
func (r *Runtime) SetMatrix(m Handle, v [6]float64) Handle {
	if !r.matrices.Replace(m, canvas.FromCanvas(v[0], v[1], v[2], v[3], v[4], v[5])) {
		stale("matrix", m)
	}
	return m
}

// MultiplyMatrix replaces the matrix behind m with m * other.
func (r *Runtime) MultiplyMatrix(m, other Handle) Handle {
	a, ok := get(r.matrices, "matrix", m)
	if !ok {
		return m
	}
	if b, ok := get(r.matrices, "matrix", other); ok {
		r.matrices.Replace(m, a.Multiply(b))
	}
	return m
}

// InvertMatrix replaces the matrix behind m with its inverse. A singular
// matrix is left unchanged.
func (r *Runtime) InvertMatrix(m Handle) Handle {
	if a, ok := get(r.matrices, "matrix", m); ok {
		if inv, ok := a.Invert(); ok {
			r.matrices.Replace(m, inv)
		}
	}
	return m
}

// ReleaseMatrix frees the matrix behind m.
func (r *Runtime) ReleaseMatrix(m Handle) bool {
	_, ok := r.matrices.Remove(m)
	return ok
}
