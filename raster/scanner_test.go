package raster

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
)

var testBounds = image.Rect(0, 0, 10, 10)

func rectPath(x, y, w, h float64) *canvas.Path {
	p := canvas.NewPath()
	p.Rect(x, y, w, h)
	return p
}

func TestFillMaskSquare(t *testing.T) {
	m := fillMask(testBounds, rectPath(2, 2, 4, 4), canvas.NonZero, canvas.Identity())
	if m == nil {
		t.Fatal("fillMask() = nil")
	}
	tests := []struct {
		x, y int
		want byte
	}{
		{2, 2, 255},
		{5, 5, 255},
		{1, 3, 0},
		{6, 3, 0},
		{3, 6, 0},
		{3, 1, 0},
	}
	for _, tt := range tests {
		if got := alphaAt(m, tt.x, tt.y); got != tt.want {
			t.Errorf("coverage at (%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFillMaskPartialPixel(t *testing.T) {
	m := fillMask(testBounds, rectPath(0, 0, 0.5, 1), canvas.NonZero, canvas.Identity())
	if got := alphaAt(m, 0, 0); got != 128 {
		t.Errorf("half covered pixel = %d, want 128", got)
	}
}

func TestFillMaskRules(t *testing.T) {
	p := rectPath(0, 0, 10, 10)
	p.Rect(3, 3, 4, 4)

	tests := []struct {
		rule   canvas.FillRule
		center byte
	}{
		{canvas.NonZero, 255},
		{canvas.EvenOdd, 0},
	}
	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			m := fillMask(testBounds, p, tt.rule, canvas.Identity())
			if got := alphaAt(m, 5, 5); got != tt.center {
				t.Errorf("center coverage = %d, want %d", got, tt.center)
			}
			if got := alphaAt(m, 1, 1); got != 255 {
				t.Errorf("ring coverage = %d, want 255", got)
			}
		})
	}
}

func TestFillMaskTransform(t *testing.T) {
	m := fillMask(testBounds, rectPath(1, 1, 2, 2), canvas.NonZero, canvas.Scale(2, 2))
	if got := alphaAt(m, 5, 5); got != 255 {
		t.Errorf("coverage at (5, 5) = %d, want 255", got)
	}
	if got := alphaAt(m, 6, 6); got != 0 {
		t.Errorf("coverage at (6, 6) = %d, want 0", got)
	}
}

func TestFillMaskClipsToBounds(t *testing.T) {
	m := fillMask(testBounds, rectPath(-5, -5, 30, 30), canvas.NonZero, canvas.Identity())
	if m == nil {
		t.Fatal("fillMask() = nil")
	}
	if m.Rect != testBounds {
		t.Errorf("mask bounds = %v, want %v", m.Rect, testBounds)
	}
	if fillMask(testBounds, rectPath(20, 20, 5, 5), canvas.NonZero, canvas.Identity()) != nil {
		t.Error("off-surface fill produced a mask")
	}
	if fillMask(testBounds, rectPath(1, 1, 5, 5), canvas.NonZero, canvas.Scale(0, 1)) != nil {
		t.Error("degenerate matrix produced a mask")
	}
}

func strokeLine(t *testing.T, paint *canvas.Paint, x0, x1 float64) *image.Alpha {
	t.Helper()
	p := canvas.NewPath()
	p.MoveTo(x0, 5)
	p.LineTo(x1, 5)
	m := strokeMask(image.Rect(0, 0, 20, 10), p, paint, canvas.Identity())
	if m == nil {
		t.Fatal("strokeMask() = nil")
	}
	return m
}

func TestStrokeMaskWidth(t *testing.T) {
	paint := canvas.NewPaint(canvas.Black)
	paint.LineWidth = 2
	m := strokeLine(t, paint, 2, 8)

	for _, y := range []int{4, 5} {
		if got := alphaAt(m, 5, y); got < 250 {
			t.Errorf("coverage at (5, %d) = %d, want full", y, got)
		}
	}
	for _, y := range []int{2, 7} {
		if got := alphaAt(m, 5, y); got != 0 {
			t.Errorf("coverage at (5, %d) = %d, want 0", y, got)
		}
	}
}

func TestStrokeMaskCaps(t *testing.T) {
	tests := []struct {
		lineCap canvas.LineCap
		covered bool
	}{
		{canvas.LineCapButt, false},
		{canvas.LineCapSquare, true},
	}
	for _, tt := range tests {
		t.Run(tt.lineCap.String(), func(t *testing.T) {
			paint := canvas.NewPaint(canvas.Black)
			paint.LineWidth = 2
			paint.LineCap = tt.lineCap
			m := strokeLine(t, paint, 2, 8)
			got := alphaAt(m, 1, 5)
			if tt.covered && got < 200 {
				t.Errorf("coverage before the start = %d, want covered", got)
			}
			if !tt.covered && got > 10 {
				t.Errorf("coverage before the start = %d, want empty", got)
			}
		})
	}
}

func TestStrokeMaskDash(t *testing.T) {
	paint := canvas.NewPaint(canvas.Black)
	paint.LineWidth = 2
	dash, ok := canvas.NewDash([]float64{2, 2}, 0)
	if !ok {
		t.Fatal("NewDash() rejected [2 2]")
	}
	paint.Dash = dash
	m := strokeLine(t, paint, 0, 12)

	if got := alphaAt(m, 1, 5); got < 200 {
		t.Errorf("coverage inside the first dash = %d, want covered", got)
	}
	if got := alphaAt(m, 3, 5); got > 30 {
		t.Errorf("coverage inside the first gap = %d, want empty", got)
	}
	if got := alphaAt(m, 5, 5); got < 200 {
		t.Errorf("coverage inside the second dash = %d, want covered", got)
	}
}

func TestStrokeMaskZeroWidth(t *testing.T) {
	paint := canvas.NewPaint(canvas.Black)
	paint.LineWidth = 0
	if strokeMask(testBounds, rectPath(1, 1, 5, 5), paint, canvas.Identity()) != nil {
		t.Error("zero width stroke produced a mask")
	}
}

func TestScannerGrowsMask(t *testing.T) {
	sc := NewScanner(testBounds)
	sc.SetWinding(true)
	square := func(x, y int) {
		sc.Start(toFixed(canvas.Pt(float64(x), float64(y)), 1))
		sc.Line(toFixed(canvas.Pt(float64(x+1), float64(y)), 1))
		sc.Line(toFixed(canvas.Pt(float64(x+1), float64(y+1)), 1))
		sc.Line(toFixed(canvas.Pt(float64(x), float64(y+1)), 1))
		sc.Line(toFixed(canvas.Pt(float64(x), float64(y)), 1))
		sc.Draw()
	}
	square(1, 1)
	square(7, 8)

	m := sc.Mask()
	if want := image.Rect(1, 1, 8, 9); m.Rect != want {
		t.Fatalf("mask bounds = %v, want %v", m.Rect, want)
	}
	if alphaAt(m, 1, 1) != 255 || alphaAt(m, 7, 8) != 255 {
		t.Errorf("coverage = %d, %d, want 255, 255", alphaAt(m, 1, 1), alphaAt(m, 7, 8))
	}
	if ext := sc.GetPathExtent(); ext.Min != fixed.P(1, 1) || ext.Max != fixed.P(8, 9) {
		t.Errorf("GetPathExtent() = %v, want (1,1)-(8,9)", ext)
	}
}

func TestAddSpan(t *testing.T) {
	row := make([]float32, 4)
	addSpan(row, 0.5, 2.25)
	want := []float32{0.5 / subScanlines, 1.0 / subScanlines, 0.25 / subScanlines, 0}
	for i := range want {
		if d := row[i] - want[i]; d > 1e-6 || d < -1e-6 {
			t.Errorf("row[%d] = %v, want %v", i, row[i], want[i])
		}
	}
	addSpan(row, 3, 9)
	if d := row[3] - 1.0/subScanlines; d > 1e-6 || d < -1e-6 {
		t.Errorf("clamped row[3] = %v, want %v", row[3], 1.0/subScanlines)
	}
}
