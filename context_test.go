package canvas_test

import (
	"math"
	"testing"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/recording"
)

func newRecording(t *testing.T, scale float64) (*canvas.Context, *recording.Surface) {
	t.Helper()
	ctx, err := canvas.New(recording.NewProvider(), 100, 100, scale)
	if err != nil {
		t.Fatal(err)
	}
	s := ctx.Surface().(*recording.Surface)
	s.Reset()
	return ctx, s
}

func drawPaths(s *recording.Surface) []recording.DrawPathCommand {
	var out []recording.DrawPathCommand
	for _, c := range s.Filter(recording.CmdDrawPath) {
		out = append(out, c.(recording.DrawPathCommand))
	}
	return out
}

func TestFillTriangle(t *testing.T) {
	ctx, s := newRecording(t, 1)
	ctx.BeginPath()
	ctx.MoveTo(10, 10)
	ctx.LineTo(50, 10)
	ctx.LineTo(30, 40)
	ctx.ClosePath()
	ctx.Fill()

	paths := drawPaths(s)
	if len(paths) != 1 {
		t.Fatalf("recorded %d paths, want 1", len(paths))
	}
	dp := paths[0]
	if dp.Path.Len() != 4 || dp.Style != canvas.StyleFill || dp.Path.FillRule() != canvas.NonZero {
		t.Errorf("recorded %s", dp)
	}
	if dp.Paint.Brush != canvas.Solid(canvas.Black) {
		t.Errorf("brush = %v, want black", dp.Paint.Brush)
	}
}

func TestFillRectDegenerate(t *testing.T) {
	ctx, s := newRecording(t, 1)
	ctx.FillRect(0, 0, 0, 10)
	if got := len(drawPaths(s)); got != 1 {
		t.Errorf("FillRect(0, 0, 0, 10) recorded %d paths, want 1", got)
	}
	s.Reset()
	ctx.FillRect(0, 0, 0, 0)
	ctx.StrokeRect(0, 0, 0, 0)
	ctx.FillRect(math.NaN(), 0, 5, 5)
	if got := len(drawPaths(s)); got != 0 {
		t.Errorf("empty rects recorded %d paths, want 0", got)
	}
}

func TestFillRectKeepsCurrentPath(t *testing.T) {
	ctx, _ := newRecording(t, 1)
	ctx.MoveTo(1, 1)
	ctx.LineTo(2, 2)
	ctx.FillRect(0, 0, 5, 5)
	ctx.StrokeRect(0, 0, 5, 5)
	if ctx.Path().Len() != 2 {
		t.Errorf("Path().Len() = %d, want 2", ctx.Path().Len())
	}
}

func TestGradientFillWithRule(t *testing.T) {
	ctx, s := newRecording(t, 1)
	g, err := canvas.NewLinearGradient(0, 0, 100, 0, []canvas.ColorStop{{Offset: 0, Color: canvas.Black}, {Offset: 1, Color: canvas.White}})
	if err != nil {
		t.Fatal(err)
	}
	ctx.SetFillStyle(g)
	ctx.Rect(0, 0, 10, 10)
	ctx.Rect(2, 2, 6, 6)
	ctx.FillWithRule(canvas.EvenOdd)

	dp := drawPaths(s)[0]
	if dp.Path.FillRule() != canvas.EvenOdd {
		t.Errorf("fill rule = %v, want evenodd", dp.Path.FillRule())
	}
	if dp.Paint.Brush != canvas.Brush(g) {
		t.Errorf("brush = %T, want the gradient", dp.Paint.Brush)
	}
}

func TestShadowAttachedOnce(t *testing.T) {
	ctx, s := newRecording(t, 2)
	ctx.SetShadowColor(canvas.RGBA{A: 0.5})
	ctx.SetShadowBlur(4)
	ctx.SetShadowOffsetX(5)
	ctx.FillRect(0, 0, 10, 10)
	ctx.ClearRect(0, 0, 10, 10)

	paths := drawPaths(s)
	if len(paths) != 2 {
		t.Fatalf("recorded %d paths, want 2", len(paths))
	}
	f := paths[0].Paint.ImageFilter
	if f == nil {
		t.Fatal("fill has no shadow filter")
	}
	if f.Sigma != 4 || f.OffsetX != 10 || f.OffsetY != 0 {
		t.Errorf("shadow filter = %+v, want sigma 4 offset (10, 0)", f)
	}
	if paths[1].Paint.ImageFilter != nil || paths[1].Paint.Blend != canvas.BlendClear {
		t.Errorf("clearRect recorded %s", paths[1])
	}
	if ctx.FillPaint().ImageFilter != nil {
		t.Error("shadow filter left on the fill paint")
	}
}

func TestTextAlign(t *testing.T) {
	tests := []struct {
		align canvas.TextAlign
		wantX float64
	}{
		{canvas.TextAlignLeft, 100},
		{canvas.TextAlignRight, 80},
		{canvas.TextAlignCenter, 90},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			ctx, s := newRecording(t, 1)
			ctx.SetTextAlign(tt.align)
			ctx.FillText("abcd", 100, 50)
			cmds := s.Filter(recording.CmdDrawText)
			if len(cmds) != 1 {
				t.Fatalf("recorded %d texts, want 1", len(cmds))
			}
			if got := cmds[0].(recording.DrawTextCommand).X; got != tt.wantX {
				t.Errorf("x = %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestMeasureText(t *testing.T) {
	ctx, _ := newRecording(t, 1)
	ctx.SetFont("20px serif")
	if got := ctx.MeasureText("abc").Width; got != 30 {
		t.Errorf("MeasureText().Width = %v, want 30", got)
	}
	if got := ctx.MeasureText("").Width; got != 0 {
		t.Errorf("MeasureText(\"\").Width = %v, want 0", got)
	}
}

func TestTextShadowDrawnFirst(t *testing.T) {
	ctx, s := newRecording(t, 2)
	ctx.SetShadowColor(canvas.RGB(1, 0, 0))
	ctx.SetShadowOffsetY(3)
	ctx.SetShadowBlur(2)
	ctx.StrokeText("hi", 0, 0)

	texts := s.Filter(recording.CmdDrawText)
	if len(texts) != 2 {
		t.Fatalf("recorded %d texts, want 2:\n%s", len(texts), s.Dump())
	}
	shadow := texts[0].(recording.DrawTextCommand)
	text := texts[1].(recording.DrawTextCommand)
	if shadow.Paint.Brush != canvas.Solid(canvas.RGB(1, 0, 0)) || shadow.Paint.MaskBlur != 2 {
		t.Errorf("shadow paint = %+v", shadow.Paint)
	}
	if want := canvas.Translate(0, 6).Multiply(canvas.Scale(2, 2)); shadow.Matrix != want {
		t.Errorf("shadow matrix = %+v, want %+v", shadow.Matrix, want)
	}
	if text.Matrix != canvas.Scale(2, 2) || text.Paint.MaskBlur != 0 {
		t.Errorf("text drawn with matrix %+v, blur %v", text.Matrix, text.Paint.MaskBlur)
	}
	if text.Style != canvas.StyleStroke {
		t.Errorf("style = %v, want stroke", text.Style)
	}
}

func TestClipRestored(t *testing.T) {
	ctx, s := newRecording(t, 1)
	ctx.Save()
	ctx.Rect(0, 0, 5, 5)
	ctx.ClipWithRule(canvas.EvenOdd)
	ctx.Restore()

	clips := s.Filter(recording.CmdClip)
	if len(clips) != 1 || clips[0].(recording.ClipCommand).Rule != canvas.EvenOdd {
		t.Fatalf("clips = %v", clips)
	}
	restores := s.Filter(recording.CmdRestoreToCount)
	if len(restores) != 1 || restores[0].(recording.RestoreToCountCommand).Count != 1 {
		t.Errorf("restores = %v, want one to count 1", restores)
	}
}

func TestNestedSaveRestore(t *testing.T) {
	ctx, s := newRecording(t, 1)
	for i := 0; i < 3; i++ {
		ctx.Save()
		ctx.Translate(1, 0)
	}
	if s.SaveCount() != 4 {
		t.Fatalf("SaveCount() = %d, want 4", s.SaveCount())
	}
	ctx.Restore()
	if got := ctx.GetTransform(); got != canvas.Translate(2, 0) {
		t.Errorf("GetTransform() = %+v, want translate(2, 0)", got)
	}
	ctx.Restore()
	ctx.Restore()
	ctx.Restore()
	if s.SaveCount() != 1 || ctx.GetTransform() != canvas.Identity() {
		t.Errorf("SaveCount() = %d, GetTransform() = %+v", s.SaveCount(), ctx.GetTransform())
	}
}

func TestPutImageDataDirty(t *testing.T) {
	ctx, s := newRecording(t, 1)
	data := canvas.NewImageData(4, 4)
	for i := range data.Data {
		data.Data[i] = byte(i)
	}
	ctx.PutImageDataDirty(data, 10, 20, 1, 1, 2, 2)
	ctx.PutImageDataDirty(data, 0, 0, 0, 0, -1, -1)

	writes := s.Filter(recording.CmdWritePixels)
	if len(writes) != 2 {
		t.Fatalf("recorded %d writes, want 2", len(writes))
	}
	w := writes[0].(recording.WritePixelsCommand)
	if w.X != 11 || w.Y != 21 {
		t.Errorf("dirty write at (%d, %d), want (11, 21)", w.X, w.Y)
	}
	img := s.Images().Get(w.Image)
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("dirty image %dx%d, want 2x2", img.Width, img.Height)
	}
	// row 1, column 1 of the source
	if img.Pix[0] != 20 {
		t.Errorf("first dirty byte = %d, want 20", img.Pix[0])
	}
	full := s.Images().Get(writes[1].(recording.WritePixelsCommand).Image)
	if full.Width != 4 || full.Height != 4 {
		t.Errorf("full write %dx%d, want 4x4", full.Width, full.Height)
	}
}

func TestGetImageDataWhiteOnRecording(t *testing.T) {
	ctx, _ := newRecording(t, 1)
	d := ctx.GetImageData(0, 0, 3, 3)
	for i, b := range d.Data {
		if b != 0xff {
			t.Fatalf("Data[%d] = %d, want 255", i, b)
		}
	}
}

func TestDrawImageRecorded(t *testing.T) {
	ctx, s := newRecording(t, 1)
	img, _ := canvas.NewImage(2, 2, make([]byte, 16))
	ctx.SetGlobalAlpha(0.5)
	ctx.SetImageSmoothingEnabled(false)
	ctx.DrawImageScaled(img, 5, 5, 20, 20)

	cmds := s.Filter(recording.CmdDrawImage)
	if len(cmds) != 1 {
		t.Fatalf("recorded %d images, want 1", len(cmds))
	}
	di := cmds[0].(recording.DrawImageCommand)
	if di.Dst != canvas.RectXYWH(5, 5, 20, 20) {
		t.Errorf("Dst = %v", di.Dst)
	}
	if di.Paint.Alpha != 0.5 || di.Paint.FilterQuality != canvas.FilterNone {
		t.Errorf("paint alpha %v filter %v", di.Paint.Alpha, di.Paint.FilterQuality)
	}
}

func TestToDataURLOnRecording(t *testing.T) {
	ctx, _ := newRecording(t, 1)
	got := ctx.ToDataURL("image/jpeg", -1)
	if want := "data:image/jpeg;base64,"; len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("ToDataURL() = %q, want prefix %q", got, want)
	}
}

func TestResizeResetsState(t *testing.T) {
	ctx, _ := newRecording(t, 2)
	ctx.SetLineWidth(7)
	ctx.Save()
	ctx.MoveTo(1, 1)
	if err := ctx.Resize(50, 40); err != nil {
		t.Fatal(err)
	}
	if ctx.LineWidth() != 1 || ctx.SaveDepth() != 0 || !ctx.Path().IsEmpty() {
		t.Error("Resize() kept drawing state")
	}
	s := ctx.Surface().(*recording.Surface)
	if s.Width() != 50 || s.Height() != 40 || s.Matrix() != canvas.Scale(2, 2) {
		t.Errorf("surface %dx%d matrix %+v", s.Width(), s.Height(), s.Matrix())
	}
}
