package canvas

import (
	"errors"
	"math"
	"testing"
)

// stubSurface is a Surface that only tracks the transform and save count.
type stubSurface struct {
	w, h   int
	scale  float64
	matrix Matrix
	saves  []Matrix
	draws  int
}

func (s *stubSurface) Width() int         { return s.w }
func (s *stubSurface) Height() int        { return s.h }
func (s *stubSurface) Scale() float64     { return s.scale }
func (s *stubSurface) SaveCount() int     { return len(s.saves) + 1 }
func (s *stubSurface) Save()              { s.saves = append(s.saves, s.matrix) }
func (s *stubSurface) Matrix() Matrix     { return s.matrix }
func (s *stubSurface) SetMatrix(m Matrix) { s.matrix = m }
func (s *stubSurface) RestoreToCount(n int) {
	for len(s.saves)+1 > max(n, 1) {
		s.matrix = s.saves[len(s.saves)-1]
		s.saves = s.saves[:len(s.saves)-1]
	}
}
func (s *stubSurface) ClipPath(*Path, FillRule)                 {}
func (s *stubSurface) DrawPath(*Path, *Paint, PaintStyle)       { s.draws++ }
func (s *stubSurface) DrawImageRect(*Image, Rect, Rect, *Paint) { s.draws++ }
func (s *stubSurface) DrawText(string, float64, float64, Font, Direction, *Paint, PaintStyle) {
	s.draws++
}
func (s *stubSurface) MeasureText(text string, f Font, _ Direction) float64 {
	return float64(len(text)) * f.Size
}
func (s *stubSurface) ReadPixels(_, _, _, _ int, _ []byte) bool { return false }
func (s *stubSurface) WritePixels(*Image, int, int)             {}
func (s *stubSurface) Clear(RGBA)                               {}
func (s *stubSurface) Flush()                                   {}

// stubProvider creates stub surfaces and encodes only PNG.
type stubProvider struct {
	createErr error
}

func (p stubProvider) Create(w, h int, scale float64) (Surface, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	return &stubSurface{w: w, h: h, scale: scale}, nil
}

func (p stubProvider) Resize(_ Surface, w, h int, scale float64) (Surface, error) {
	return p.Create(w, h, scale)
}

func (stubProvider) Flush(Surface) {}

func (stubProvider) SnapshotPixels(s Surface) []byte {
	return make([]byte, s.Width()*s.Height()*4)
}

func (stubProvider) Encode(_ Surface, f ImageFormat, _ int) ([]byte, error) {
	if f != FormatPNG {
		return nil, ErrUnsupportedFormat
	}
	return []byte("png"), nil
}

func newStubContext(t *testing.T, opts ...ContextOption) (*Context, *stubSurface) {
	t.Helper()
	ctx, err := New(stubProvider{}, 10, 10, 2, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return ctx, ctx.Surface().(*stubSurface)
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		scale float64
	}{
		{"zero width", 0, 10, 1},
		{"negative height", 10, -1, 1},
		{"zero scale", 10, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(stubProvider{}, tt.w, tt.h, tt.scale); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("New() error = %v, want ErrInvalidSize", err)
			}
		})
	}
	boom := errors.New("boom")
	if _, err := New(stubProvider{createErr: boom}, 1, 1, 1); !errors.Is(err, boom) {
		t.Errorf("New() error = %v, want provider error", err)
	}
}

func TestDefaultConfigApplied(t *testing.T) {
	ctx, s := newStubContext(t)
	if s.matrix != Scale(2, 2) {
		t.Errorf("surface matrix = %+v, want scale(2)", s.matrix)
	}
	if got := ctx.GetTransform(); got != Identity() {
		t.Errorf("GetTransform() = %+v, want identity", got)
	}
	if ctx.LineWidth() != 1 || ctx.MiterLimit() != 10 || ctx.GlobalAlpha() != 1 {
		t.Errorf("line defaults = %v, %v, %v", ctx.LineWidth(), ctx.MiterLimit(), ctx.GlobalAlpha())
	}
	if ctx.Font() != DefaultFontValue() {
		t.Errorf("Font() = %+v, want default", ctx.Font())
	}
	if ctx.FillStyle() != Solid(Black) {
		t.Errorf("FillStyle() = %+v, want black", ctx.FillStyle())
	}
	if got := ctx.FillPaint().FilterQuality; got != FilterLow {
		t.Errorf("FilterQuality = %v, want low", got)
	}
}

func TestWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FillColor = White
	cfg.LineWidth = 3
	cfg.Font = "bold 20px serif"
	cfg.SmoothingEnabled = false
	cfg.Capabilities = Capabilities{}

	ctx, _ := newStubContext(t, WithConfig(cfg))
	if ctx.FillStyle() != Solid(White) {
		t.Errorf("FillStyle() = %+v, want white", ctx.FillStyle())
	}
	if ctx.LineWidth() != 3 {
		t.Errorf("LineWidth() = %v, want 3", ctx.LineWidth())
	}
	if ctx.Font().Weight != 700 || ctx.Font().Size != 20 {
		t.Errorf("Font() = %+v, want bold 20px", ctx.Font())
	}
	if got := ctx.StrokePaint().FilterQuality; got != FilterNone {
		t.Errorf("FilterQuality = %v, want none", got)
	}

	ctx.SetMiterLimit(3)
	if ctx.MiterLimit() != 10 {
		t.Errorf("MiterLimit() = %v with capability off, want 10", ctx.MiterLimit())
	}
	ctx.SetDirection(DirectionRTL)
	if ctx.Direction() != DirectionLTR {
		t.Error("SetDirection() applied with capability off")
	}
	img, _ := NewImage(1, 1, make([]byte, 4))
	pat, _ := NewPattern(img, Repeat)
	ctx.SetFillStyle(pat)
	if ctx.FillStyle() != Solid(White) {
		t.Error("SetFillStyle(pattern) applied with capability off")
	}
}

func TestSettersIgnoreInvalid(t *testing.T) {
	ctx, _ := newStubContext(t)
	ctx.SetLineWidth(0)
	ctx.SetLineWidth(-2)
	ctx.SetMiterLimit(0)
	ctx.SetGlobalAlpha(1.5)
	ctx.SetGlobalAlpha(-0.1)
	ctx.SetShadowBlur(-1)
	ctx.SetLineDash([]float64{1, -1})
	ctx.SetFillStyle(nil)

	if ctx.LineWidth() != 1 || ctx.MiterLimit() != 10 || ctx.GlobalAlpha() != 1 {
		t.Errorf("invalid values applied: width %v, miter %v, alpha %v", ctx.LineWidth(), ctx.MiterLimit(), ctx.GlobalAlpha())
	}
	if ctx.Shadow().Blur != 0 {
		t.Errorf("Shadow().Blur = %v, want 0", ctx.Shadow().Blur)
	}
	if len(ctx.LineDash()) != 0 {
		t.Errorf("LineDash() = %v, want solid", ctx.LineDash())
	}
	if ctx.FillStyle() == nil {
		t.Error("SetFillStyle(nil) cleared the brush")
	}
}

func TestLineDashOffsetFollowsPattern(t *testing.T) {
	ctx, _ := newStubContext(t)
	ctx.SetLineDashOffset(3)
	ctx.SetLineDash([]float64{4})
	if got := ctx.LineDash(); len(got) != 2 {
		t.Errorf("LineDash() = %v, want the odd pattern doubled", got)
	}
	if got := ctx.StrokePaint().Dash.Offset; got != 3 {
		t.Errorf("dash offset = %v, want 3", got)
	}
	ctx.SetLineDashOffset(5)
	if got := ctx.StrokePaint().Dash.Offset; got != 5 {
		t.Errorf("dash offset = %v, want 5", got)
	}
	ctx.SetLineDash(nil)
	if ctx.StrokePaint().Dash != nil {
		t.Error("SetLineDash(nil) kept the dash")
	}
}

func TestImageSmoothing(t *testing.T) {
	ctx, _ := newStubContext(t)
	ctx.SetImageSmoothingQuality(FilterHigh)
	if got := ctx.FillPaint().FilterQuality; got != FilterHigh {
		t.Errorf("FilterQuality = %v, want high", got)
	}
	ctx.SetImageSmoothingEnabled(false)
	if got := ctx.Smoothing().Filter(); got != FilterNone {
		t.Errorf("Filter() = %v, want none", got)
	}
	ctx.SetImageSmoothingEnabled(true)
	ctx.SetImageSmoothingQuality(FilterNone)
	if got := ctx.Smoothing().Quality; got != FilterLow {
		t.Errorf("Quality = %v, want low", got)
	}
}

func TestSetDeviceScaleKeepsUserTransform(t *testing.T) {
	ctx, s := newStubContext(t)
	ctx.Translate(3, 4)
	ctx.SetDeviceScale(3)
	if got := ctx.GetTransform(); got != Translate(3, 4) {
		t.Errorf("GetTransform() = %+v, want translate(3, 4)", got)
	}
	if got := s.matrix; got != Scale(3, 3).Multiply(Translate(3, 4)) {
		t.Errorf("surface matrix = %+v", got)
	}
	ctx.SetDeviceScale(0)
	if ctx.DeviceScale() != 3 {
		t.Errorf("DeviceScale() = %v, want 3", ctx.DeviceScale())
	}
}

func TestTransformCalls(t *testing.T) {
	ctx, _ := newStubContext(t)
	ctx.Transform(2, 0, 0, 2, 5, 6)
	if got := ctx.GetTransform(); got != FromCanvas(2, 0, 0, 2, 5, 6) {
		t.Errorf("GetTransform() = %+v", got)
	}
	ctx.Scale(math.NaN(), 1)
	if got := ctx.GetTransform(); got != FromCanvas(2, 0, 0, 2, 5, 6) {
		t.Error("Scale(NaN) changed the transform")
	}
	ctx.SetTransform(1, 0, 0, 1, 7, 8)
	if got := ctx.GetTransform(); got != Translate(7, 8) {
		t.Errorf("GetTransform() after SetTransform = %+v", got)
	}
	ctx.ResetTransform()
	if got := ctx.GetTransform(); got != Identity() {
		t.Errorf("GetTransform() after ResetTransform = %+v", got)
	}
}

func TestSaveRestoreState(t *testing.T) {
	ctx, s := newStubContext(t)
	ctx.SetFillColor(White)
	ctx.SetLineWidth(4)
	ctx.SetTextAlign(TextAlignCenter)
	ctx.MoveTo(1, 1)

	ctx.Save()
	if s.SaveCount() != 2 || ctx.SaveDepth() != 1 {
		t.Fatalf("SaveCount() = %d, SaveDepth() = %d", s.SaveCount(), ctx.SaveDepth())
	}
	ctx.SetFillColor(Black)
	ctx.SetLineWidth(9)
	ctx.SetTextAlign(TextAlignRight)
	ctx.Rotate(1)
	ctx.LineTo(5, 5)
	ctx.SetShadowColor(Black)
	ctx.Restore()

	if ctx.FillStyle() != Solid(White) || ctx.LineWidth() != 4 || ctx.TextAlign() != TextAlignCenter {
		t.Errorf("state not restored: fill %v, width %v, align %v", ctx.FillStyle(), ctx.LineWidth(), ctx.TextAlign())
	}
	if ctx.Path().Len() != 1 {
		t.Errorf("Path().Len() = %d, want 1", ctx.Path().Len())
	}
	if ctx.GetTransform() != Identity() {
		t.Errorf("GetTransform() = %+v, want identity", ctx.GetTransform())
	}
	if ctx.Shadow().Color != Transparent {
		t.Error("shadow color not restored")
	}
	if s.SaveCount() != 1 {
		t.Errorf("SaveCount() = %d, want 1", s.SaveCount())
	}

	// unbalanced restore is a no-op
	ctx.Restore()
	if ctx.LineWidth() != 4 || s.SaveCount() != 1 {
		t.Error("Restore() without Save changed the state")
	}
}
