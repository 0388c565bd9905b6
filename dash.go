package canvas

import "math"

// Dash is a stroke dash pattern: alternating dash and gap lengths in user
// units, starting Offset units into the pattern.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash builds a dash pattern as setLineDash does. An odd number of
// lengths is repeated to make the pattern even. It returns nil, meaning a
// solid line, when lengths is empty or sums to zero, and ok=false when any
// length is negative or not finite, in which case the caller keeps its
// previous pattern.
func NewDash(lengths []float64, offset float64) (d *Dash, ok bool) {
	sum := 0.0
	for _, l := range lengths {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, false
		}
		sum += l
	}
	if len(lengths) == 0 || sum == 0 {
		return nil, true
	}
	arr := make([]float64, 0, 2*len(lengths))
	arr = append(arr, lengths...)
	if len(lengths)%2 == 1 {
		arr = append(arr, lengths...)
	}
	return &Dash{Array: arr, Offset: offset}, true
}

// WithOffset returns a copy of d starting offset units into the pattern.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	c := d.Clone()
	c.Offset = offset
	return c
}

// Clone returns a deep copy of d.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arr := make([]float64, len(d.Array))
	copy(arr, d.Array)
	return &Dash{Array: arr, Offset: d.Offset}
}

// PatternLength returns the length of one repetition of the pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	total := 0.0
	for _, l := range d.Array {
		total += l
	}
	return total
}

// Scaled returns the pattern with every length multiplied by s, for
// stroking in device space.
func (d *Dash) Scaled(s float64) *Dash {
	if d == nil {
		return nil
	}
	c := d.Clone()
	for i := range c.Array {
		c.Array[i] *= s
	}
	c.Offset *= s
	return c
}
