package canvas

// snapshot is one entry of the state stack. saveCount is the backend save
// count before the matching backend Save, so restoring to it undoes every
// transform and clip change made since.
type snapshot struct {
	saveCount int

	fill, stroke   *Paint
	path           *Path
	font           Font
	lineDashOffset float64
	shadow         Shadow
	smoothing      Smoothing
	deviceScale    float64
	textAlign      TextAlign
	direction      Direction
}

// Save pushes the drawing state and saves the backend transform and clip.
func (c *Context) Save() {
	count := c.surface.SaveCount()
	c.surface.Save()
	c.states = append(c.states, snapshot{
		saveCount:      count,
		fill:           c.fill.Clone(),
		stroke:         c.stroke.Clone(),
		path:           c.path.Clone(),
		font:           c.font,
		lineDashOffset: c.lineDashOffset,
		shadow:         c.shadow,
		smoothing:      c.smoothing,
		deviceScale:    c.deviceScale,
		textAlign:      c.textAlign,
		direction:      c.direction,
	})
}

// Restore pops the most recent Save: the backend returns to the recorded
// save count and every state field is overwritten with the saved value.
// Restore without a matching Save does nothing.
func (c *Context) Restore() {
	if len(c.states) == 0 {
		Logger().Debug("canvas: restore without save")
		return
	}
	s := c.states[len(c.states)-1]
	c.states[len(c.states)-1] = snapshot{}
	c.states = c.states[:len(c.states)-1]

	c.surface.RestoreToCount(s.saveCount)

	c.fill = s.fill
	c.stroke = s.stroke
	c.path = s.path
	c.font = s.font
	c.lineDashOffset = s.lineDashOffset
	c.shadow = s.shadow
	c.smoothing = s.smoothing
	c.deviceScale = s.deviceScale
	c.textAlign = s.textAlign
	c.direction = s.direction
}

// SaveDepth returns the number of unmatched Save calls.
func (c *Context) SaveDepth() int { return len(c.states) }

// Scale scales the current transform.
func (c *Context) Scale(x, y float64) {
	if allFinite(x, y) {
		c.concat(Scale(x, y))
	}
}

// Rotate rotates the current transform by angle radians.
func (c *Context) Rotate(angle float64) {
	if allFinite(angle) {
		c.concat(Rotate(angle))
	}
}

// Translate translates the current transform.
func (c *Context) Translate(x, y float64) {
	if allFinite(x, y) {
		c.concat(Translate(x, y))
	}
}

// Transform multiplies the current transform by the matrix given in
// DOMMatrix order.
func (c *Context) Transform(a, b, cc, d, e, f float64) {
	if allFinite(a, b, cc, d, e, f) {
		c.concat(FromCanvas(a, b, cc, d, e, f))
	}
}

// SetTransform replaces the current transform with the matrix given in
// DOMMatrix order.
func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	if allFinite(a, b, cc, d, e, f) {
		c.SetTransformMatrix(FromCanvas(a, b, cc, d, e, f))
	}
}

// SetTransformMatrix replaces the current transform.
func (c *Context) SetTransformMatrix(m Matrix) {
	if m.IsFinite() {
		c.surface.SetMatrix(c.base().Multiply(m))
	}
}

// ResetTransform restores the identity transform.
func (c *Context) ResetTransform() {
	c.surface.SetMatrix(c.base())
}

// GetTransform returns the current transform in CSS pixel space.
func (c *Context) GetTransform() Matrix {
	inv, _ := c.base().Invert()
	return inv.Multiply(c.surface.Matrix())
}

func (c *Context) concat(m Matrix) {
	c.surface.SetMatrix(c.surface.Matrix().Multiply(m))
}
