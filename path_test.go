package canvas

import (
	"math"
	"testing"
)

func TestPathImplicitMoveTo(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
		first PathElement
	}{
		{"line", func(p *Path) { p.LineTo(5, 5) }, MoveTo{Point: Pt(0, 0)}},
		{"quad", func(p *Path) { p.QuadraticTo(1, 1, 5, 5) }, MoveTo{Point: Pt(0, 0)}},
		{"cubic", func(p *Path) { p.CubicTo(1, 1, 2, 2, 5, 5) }, MoveTo{Point: Pt(0, 0)}},
		{"tangent arc", func(p *Path) { p.ArcToTangent(3, 4, 10, 10, 2) }, MoveTo{Point: Pt(3, 4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			if p.Len() == 0 {
				t.Fatal("path is empty")
			}
			if got := p.Elements()[0]; got != tt.first {
				t.Errorf("first element = %#v, want %#v", got, tt.first)
			}
		})
	}
}

func TestPathMoveAfterClose(t *testing.T) {
	p := NewPath()
	p.MoveTo(2, 3)
	p.LineTo(8, 3)
	p.Close()
	p.LineTo(8, 9)

	want := []PathElement{
		MoveTo{Point: Pt(2, 3)},
		LineTo{Point: Pt(8, 3)},
		Close{},
		MoveTo{Point: Pt(2, 3)},
		LineTo{Point: Pt(8, 9)},
	}
	assertElements(t, p, want)
}

func TestPathCloseNoOp(t *testing.T) {
	p := NewPath()
	p.Close()
	if !p.IsEmpty() {
		t.Errorf("Close on empty path added %d elements", p.Len())
	}
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Close()
	p.Close()
	if got := p.Len(); got != 3 {
		t.Errorf("Len() after double Close = %d, want 3", got)
	}
	if got := p.CurrentPoint(); got != Pt(1, 1) {
		t.Errorf("CurrentPoint() after Close = %v, want (1, 1)", got)
	}
}

func TestPathRect(t *testing.T) {
	p := NewPath()
	p.Rect(1, 2, 3, 4)
	want := []PathElement{
		MoveTo{Point: Pt(1, 2)},
		LineTo{Point: Pt(4, 2)},
		LineTo{Point: Pt(4, 6)},
		LineTo{Point: Pt(1, 6)},
		Close{},
	}
	assertElements(t, p, want)
}

func TestArcToOvalConnects(t *testing.T) {
	oval := Rect{Left: 0, Top: 0, Right: 20, Bottom: 20}

	p := NewPath()
	p.ArcToOval(oval, 0, 90, false)
	if _, ok := p.Elements()[0].(MoveTo); !ok {
		t.Errorf("arc on empty path starts with %T, want MoveTo", p.Elements()[0])
	}

	p = NewPath()
	p.MoveTo(0, 0)
	p.ArcToOval(oval, 0, 90, false)
	if l, ok := p.Elements()[1].(LineTo); !ok || l.Point != Pt(20, 10) {
		t.Errorf("element 1 = %#v, want LineTo(20, 10)", p.Elements()[1])
	}
	assertPoint(t, "end", p.CurrentPoint(), Pt(10, 20))

	p = NewPath()
	p.MoveTo(0, 0)
	p.ArcToOval(oval, 0, 90, true)
	if m, ok := p.Elements()[1].(MoveTo); !ok || m.Point != Pt(20, 10) {
		t.Errorf("forced element 1 = %#v, want MoveTo(20, 10)", p.Elements()[1])
	}

	p = NewPath()
	p.MoveTo(20, 10)
	p.ArcToOval(oval, 0, 0, false)
	if got := p.Len(); got != 1 {
		t.Errorf("zero sweep from start point added %d elements, want 0", got-1)
	}
}

func TestArcToTangent(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.ArcToTangent(10, 0, 10, 10, 5)
	if _, ok := p.Elements()[1].(TangentArcTo); !ok {
		t.Fatalf("element 1 = %T, want TangentArcTo", p.Elements()[1])
	}
	assertPoint(t, "end", p.CurrentPoint(), Pt(10, 5))

	flat := p.Flatten()
	if l, ok := flat.Elements()[1].(LineTo); !ok {
		t.Errorf("flattened element 1 = %T, want LineTo", flat.Elements()[1])
	} else {
		assertPoint(t, "tangent point", l.Point, Pt(5, 0))
	}
	last := flat.Elements()[flat.Len()-1].(CubicTo)
	assertPoint(t, "flattened end", last.Point, Pt(10, 5))
	// the arc bulges towards the corner, staying inside the square
	b := flat.Bounds()
	if b.Right > 10+1e-9 || b.Top < -1e-9 {
		t.Errorf("Bounds() = %v, want inside the corner", b)
	}
}

func TestArcToTangentDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		x1, y1     float64
		x2, y2, r  float64
		wantLen    int
		wantLastPt Point
	}{
		{"zero radius", 10, 0, 10, 10, 0, 2, Pt(10, 0)},
		{"collinear", 10, 0, 20, 0, 5, 2, Pt(10, 0)},
		{"negative radius", 10, 0, 10, 10, -1, 1, Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			p.MoveTo(0, 0)
			p.ArcToTangent(tt.x1, tt.y1, tt.x2, tt.y2, tt.r)
			if p.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", p.Len(), tt.wantLen)
			}
			if p.CurrentPoint() != tt.wantLastPt {
				t.Errorf("CurrentPoint() = %v, want %v", p.CurrentPoint(), tt.wantLastPt)
			}
		})
	}
}

func TestPathCloneIndependent(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.SetFillRule(EvenOdd)
	c := p.Clone()
	c.LineTo(5, 5)
	if p.Len() != 1 {
		t.Errorf("original Len() = %d, want 1", p.Len())
	}
	if c.FillRule() != EvenOdd {
		t.Errorf("clone FillRule() = %v, want evenodd", c.FillRule())
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.Rect(0, 0, 1, 1)
	p.ArcToOval(Rect{Right: 2, Bottom: 2}, 0, 90, true)

	scaled := p.Transform(Scale(2, 3))
	if _, ok := scaled.Elements()[6].(ArcTo); !ok {
		t.Errorf("arc under scale became %T, want ArcTo", scaled.Elements()[6])
	}
	assertPoint(t, "scaled current", scaled.CurrentPoint(), Pt(2, 6))

	rotated := p.Transform(Rotate(math.Pi / 2))
	for _, e := range rotated.Elements() {
		if _, ok := e.(ArcTo); ok {
			t.Fatal("arc survived a rotation")
		}
	}
	assertPoint(t, "rotated current", rotated.CurrentPoint(), Pt(-2, 1))

	if id := p.Transform(Identity()); id.Len() != p.Len() {
		t.Errorf("identity transform Len() = %d, want %d", id.Len(), p.Len())
	}
}

func TestPathAddPath(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0)
	b := NewPath()
	b.Rect(1, 1, 2, 2)
	b.SetFillRule(EvenOdd)

	m := Translate(10, 0)
	a.AddPath(b, &m)
	if got := a.Len(); got != 6 {
		t.Fatalf("Len() = %d, want 6", got)
	}
	if mv := a.Elements()[1].(MoveTo); mv.Point != Pt(11, 1) {
		t.Errorf("added MoveTo = %v, want (11, 1)", mv.Point)
	}
	if a.FillRule() != NonZero {
		t.Errorf("FillRule() = %v, want nonzero", a.FillRule())
	}
	a.AddPath(nil, nil)
	if a.Len() != 6 {
		t.Errorf("AddPath(nil) changed the path")
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	if !p.Bounds().IsEmpty() {
		t.Errorf("empty path Bounds() = %v, want empty", p.Bounds())
	}
	p.Arc(50, 50, 10, 0, 2*math.Pi, false)
	b := p.Bounds()
	want := Rect{Left: 40, Top: 40, Right: 60, Bottom: 60}
	if math.Abs(b.Left-want.Left) > 0.01 || math.Abs(b.Right-want.Right) > 0.01 ||
		math.Abs(b.Top-want.Top) > 0.01 || math.Abs(b.Bottom-want.Bottom) > 0.01 {
		t.Errorf("Bounds() = %v, want %v", b, want)
	}
}

func TestPathReset(t *testing.T) {
	p := NewPath()
	p.SetFillRule(EvenOdd)
	p.Rect(0, 0, 1, 1)
	p.Reset()
	if !p.IsEmpty() || p.HasCurrentPoint() {
		t.Error("Reset() left elements behind")
	}
	if p.FillRule() != EvenOdd {
		t.Errorf("FillRule() after Reset = %v, want evenodd", p.FillRule())
	}
}

func assertElements(t *testing.T, p *Path, want []PathElement) {
	t.Helper()
	got := p.Elements()
	if len(got) != len(want) {
		t.Fatalf("Elements() = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func assertPoint(t *testing.T, name string, got, want Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
