// Package pathdata parses SVG path data ("M10 10 h 20 a5 5 0 0 1 5 5 z")
// into canvas paths.
//
// All commands of the SVG path grammar are supported in absolute and
// relative form, including implicit repeats and the compact flag syntax
// of elliptical arcs. Arcs are converted to center form and appended with
// Path.Ellipse.
package pathdata

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/gogpu/canvas"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("invalid path data")

// SyntaxError reports the byte offset at which parsing stopped.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pathdata: %s at offset %d", e.Msg, e.Offset)
}

// Unwrap returns ErrSyntax.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parse parses d. On a syntax error it returns the path built up to the
// last complete command together with a *SyntaxError, as SVG renderers
// draw a path up to its first error.
func Parse(d string) (*canvas.Path, error) {
	p := &parser{buf: []byte(d), path: canvas.NewPath()}
	err := p.parse()
	return p.path, err
}

// MustParse is like Parse but panics on a syntax error.
func MustParse(d string) *canvas.Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

type parser struct {
	buf  []byte
	pos  int
	path *canvas.Path

	// last control point of the previous command, for S and T
	ctrl    canvas.Point
	prevCmd byte
}

func (p *parser) fail(msg string) error {
	return &SyntaxError{Offset: p.pos, Msg: msg}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (p *parser) skipSpace() {
	for p.pos < len(p.buf) && isSpace(p.buf[p.pos]) {
		p.pos++
	}
}

// skipSeparator skips whitespace with at most one comma.
func (p *parser) skipSeparator() {
	p.skipSpace()
	if p.pos < len(p.buf) && p.buf[p.pos] == ',' {
		p.pos++
		p.skipSpace()
	}
}

// startsNumber reports whether a number follows the current position.
func (p *parser) startsNumber() bool {
	if p.pos >= len(p.buf) {
		return false
	}
	c := p.buf[p.pos]
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func (p *parser) number() (float64, error) {
	p.skipSeparator()
	f, n := strconv.ParseFloat(p.buf[p.pos:])
	if n == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, p.fail("expected number")
	}
	p.pos += n
	return f, nil
}

func (p *parser) numbers(dst []float64) error {
	for i := range dst {
		f, err := p.number()
		if err != nil {
			return err
		}
		dst[i] = f
	}
	return nil
}

func (p *parser) flag() (bool, error) {
	p.skipSeparator()
	if p.pos < len(p.buf) {
		switch p.buf[p.pos] {
		case '0':
			p.pos++
			return false, nil
		case '1':
			p.pos++
			return true, nil
		}
	}
	return false, p.fail("expected flag")
}

func (p *parser) parse() error {
	p.skipSpace()
	first := true
	for p.pos < len(p.buf) {
		cmd := p.buf[p.pos]
		if first && cmd != 'M' && cmd != 'm' {
			return p.fail("path data must start with a moveto")
		}
		first = false
		p.pos++
		if err := p.command(cmd); err != nil {
			return err
		}
		p.skipSpace()
	}
	return nil
}

// command parses cmd and its argument groups, repeating while more
// numbers follow.
func (p *parser) command(cmd byte) error {
	var args [7]float64
	if cmd == 'Z' || cmd == 'z' {
		p.path.Close()
		p.prevCmd = cmd
		return nil
	}
	for {
		var err error
		switch cmd {
		case 'M', 'm', 'L', 'l', 'T', 't':
			err = p.numbers(args[:2])
		case 'H', 'h', 'V', 'v':
			err = p.numbers(args[:1])
		case 'C', 'c':
			err = p.numbers(args[:6])
		case 'S', 's', 'Q', 'q':
			err = p.numbers(args[:4])
		case 'A', 'a':
			err = p.arcArgs(&args)
		default:
			p.pos--
			return p.fail(fmt.Sprintf("unknown command %q", cmd))
		}
		if err != nil {
			return err
		}
		p.apply(cmd, args[:])

		// a moveto followed by coordinates continues as lineto
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
		p.skipSeparator()
		if !p.startsNumber() {
			return nil
		}
	}
}

func (p *parser) arcArgs(args *[7]float64) error {
	if err := p.numbers(args[:3]); err != nil {
		return err
	}
	for i := 3; i < 5; i++ {
		f, err := p.flag()
		if err != nil {
			return err
		}
		args[i] = 0
		if f {
			args[i] = 1
		}
	}
	return p.numbers(args[5:7])
}

func (p *parser) apply(cmd byte, a []float64) {
	cur := p.path.CurrentPoint()
	rel := cmd >= 'a'
	abs := func(x, y float64) canvas.Point {
		if rel {
			return canvas.Pt(cur.X+x, cur.Y+y)
		}
		return canvas.Pt(x, y)
	}
	ctrl := cur
	switch cmd {
	case 'M', 'm':
		pt := abs(a[0], a[1])
		p.path.MoveTo(pt.X, pt.Y)
	case 'L', 'l':
		pt := abs(a[0], a[1])
		p.path.LineTo(pt.X, pt.Y)
	case 'H', 'h':
		x := a[0]
		if rel {
			x += cur.X
		}
		p.path.LineTo(x, cur.Y)
	case 'V', 'v':
		y := a[0]
		if rel {
			y += cur.Y
		}
		p.path.LineTo(cur.X, y)
	case 'C', 'c':
		c1, c2, end := abs(a[0], a[1]), abs(a[2], a[3]), abs(a[4], a[5])
		p.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		ctrl = c2
	case 'S', 's':
		c1 := p.reflect(cur, "CcSs")
		c2, end := abs(a[0], a[1]), abs(a[2], a[3])
		p.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		ctrl = c2
	case 'Q', 'q':
		c, end := abs(a[0], a[1]), abs(a[2], a[3])
		p.path.QuadraticTo(c.X, c.Y, end.X, end.Y)
		ctrl = c
	case 'T', 't':
		c := p.reflect(cur, "QqTt")
		end := abs(a[0], a[1])
		p.path.QuadraticTo(c.X, c.Y, end.X, end.Y)
		ctrl = c
	case 'A', 'a':
		end := abs(a[5], a[6])
		p.arc(cur, a[0], a[1], a[2], a[3] != 0, a[4] != 0, end)
	}
	p.ctrl = ctrl
	p.prevCmd = cmd
}

// reflect returns the reflection of the previous control point about cur
// when the previous command is one of prev, and cur otherwise.
func (p *parser) reflect(cur canvas.Point, prev string) canvas.Point {
	for i := range len(prev) {
		if p.prevCmd == prev[i] {
			return canvas.Pt(2*cur.X-p.ctrl.X, 2*cur.Y-p.ctrl.Y)
		}
	}
	return cur
}

// arc appends an SVG endpoint arc from start to end.
func (p *parser) arc(start canvas.Point, rx, ry, rotDeg float64, large, sweep bool, end canvas.Point) {
	if start == end {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.path.LineTo(end.X, end.Y)
		return
	}
	cx, cy, rx, ry, theta, delta := arcCenter(start, end, rx, ry, rotDeg*math.Pi/180, large, sweep)
	p.path.Ellipse(cx, cy, rx, ry, rotDeg*math.Pi/180, theta, theta+delta, !sweep)
}

// arcCenter converts an endpoint arc to center form. It returns the
// center, the radii scaled up if they cannot span the endpoints, the
// start angle and the signed sweep in radians.
func arcCenter(p1, p2 canvas.Point, rx, ry, rot float64, large, sweep bool) (cx, cy, rxOut, ryOut, theta, delta float64) {
	sin, cos := math.Sincos(rot)
	dx, dy := (p1.X-p2.X)/2, (p1.Y-p2.Y)/2
	x1p := cos*dx + sin*dy
	y1p := -sin*dx + cos*dy

	if l := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); l > 1 {
		s := math.Sqrt(l)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := math.Sqrt(max(num/den, 0))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx = cos*cxp - sin*cyp + (p1.X+p2.X)/2
	cy = sin*cxp + cos*cyp + (p1.Y+p2.Y)/2

	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta = math.Atan2(uy, ux)
	delta = math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	return cx, cy, rx, ry, theta, delta
}
