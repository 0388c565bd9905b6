package recording

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/canvas"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdSave, "Save"},
		{CmdRestoreToCount, "RestoreToCount"},
		{CmdSetMatrix, "SetMatrix"},
		{CmdClip, "Clip"},
		{CmdDrawPath, "DrawPath"},
		{CmdDrawImage, "DrawImage"},
		{CmdDrawText, "DrawText"},
		{CmdWritePixels, "WritePixels"},
		{CmdClear, "Clear"},
		{CmdFlush, "Flush"},
		{CommandType(254), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSurfaceSaveCount(t *testing.T) {
	s := NewSurface(10, 10, 1)
	if got := s.SaveCount(); got != 1 {
		t.Fatalf("SaveCount() = %d, want 1", got)
	}
	s.SetMatrix(canvas.Translate(1, 2))
	s.Save()
	s.SetMatrix(canvas.Scale(3, 3))
	s.Save()
	if got := s.SaveCount(); got != 3 {
		t.Fatalf("SaveCount() = %d, want 3", got)
	}

	s.RestoreToCount(1)
	if got := s.SaveCount(); got != 1 {
		t.Errorf("SaveCount() after RestoreToCount(1) = %d, want 1", got)
	}
	if got := s.Matrix(); got != canvas.Translate(1, 2) {
		t.Errorf("Matrix() = %v, want translate(1, 2)", got)
	}

	s.RestoreToCount(0)
	if got := s.SaveCount(); got != 1 {
		t.Errorf("SaveCount() after RestoreToCount(0) = %d, want 1", got)
	}
}

func TestSurfaceRecordsClones(t *testing.T) {
	s := NewSurface(10, 10, 1)
	p := canvas.NewPath()
	p.Rect(0, 0, 5, 5)
	paint := canvas.NewPaint(canvas.Black)
	s.DrawPath(p, paint, canvas.StyleFill)

	p.LineTo(9, 9)
	paint.Alpha = 0.5

	cmds := s.Filter(CmdDrawPath)
	if len(cmds) != 1 {
		t.Fatalf("len(Filter(DrawPath)) = %d, want 1", len(cmds))
	}
	dp := cmds[0].(DrawPathCommand)
	if dp.Path.Len() != 5 {
		t.Errorf("recorded path has %d elements, want 5", dp.Path.Len())
	}
	if dp.Paint.Alpha != 1 {
		t.Errorf("recorded paint alpha = %v, want 1", dp.Paint.Alpha)
	}
}

func TestImagePoolDeduplicates(t *testing.T) {
	s := NewSurface(10, 10, 1)
	img, err := canvas.NewImage(1, 1, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	s.DrawImageRect(img, img.Bounds(), img.Bounds(), canvas.NewPaint(canvas.Black))
	s.WritePixels(img, 0, 0)
	if got := s.Images().Len(); got != 1 {
		t.Errorf("Images().Len() = %d, want 1", got)
	}
	img.Pix[0] = 99
	if got := s.Images().Get(0).Pix[0]; got != 1 {
		t.Errorf("pooled pixel = %d, want 1", got)
	}
	if s.Images().Get(5) != nil {
		t.Error("Get(5) returned an image, want nil")
	}
}

func TestMeasureText(t *testing.T) {
	s := NewSurface(10, 10, 1)
	f := canvas.DefaultFontValue()
	if got, want := s.MeasureText("héllo", f, canvas.DirectionLTR), 25.0; got != want {
		t.Errorf("MeasureText() = %v, want %v", got, want)
	}
}

func TestReadPixels(t *testing.T) {
	s := NewSurface(2, 2, 1)
	buf := make([]byte, 16)
	if s.ReadPixels(0, 0, 2, 2, buf) {
		t.Error("ReadPixels() = true, want false")
	}
}

func TestDump(t *testing.T) {
	s := NewSurface(10, 10, 1)
	s.Save()
	s.Clear(canvas.White)
	s.Flush()
	got := s.Dump()
	for _, want := range []string{"Save count=2", "Clear 0xffffffff", "Flush"} {
		if !strings.Contains(got, want) {
			t.Errorf("Dump() = %q, missing %q", got, want)
		}
	}
	s.Reset()
	if len(s.Commands()) != 0 {
		t.Errorf("len(Commands()) after Reset = %d, want 0", len(s.Commands()))
	}
}

func TestProvider(t *testing.T) {
	if !canvas.IsSurfaceProviderRegistered(Name) {
		t.Fatalf("provider %q not registered", Name)
	}
	p, err := canvas.NewSurfaceProvider(Name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Create(0, 10, 1); !errors.Is(err, canvas.ErrInvalidSize) {
		t.Errorf("Create(0, 10) error = %v, want ErrInvalidSize", err)
	}

	s, err := p.Create(4, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	s.Clear(canvas.Black)
	if got := len(p.SnapshotPixels(s)); got != 8*6*4 {
		t.Errorf("len(SnapshotPixels()) = %d, want %d", got, 8*6*4)
	}

	r, err := p.Resize(s, 8, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	if r.Width() != 8 || r.Height() != 8 {
		t.Errorf("resized to %dx%d, want 8x8", r.Width(), r.Height())
	}
	if got := len(r.(*Surface).Filter(CmdClear)); got != 1 {
		t.Errorf("resized surface has %d Clear commands, want 1", got)
	}

	data, err := p.Encode(r, canvas.FormatPNG, 92)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Clear") {
		t.Errorf("Encode() = %q, want command dump", data)
	}
}

func TestContextOnRecording(t *testing.T) {
	ctx, err := canvas.New(NewProvider(), 20, 20, 2)
	if err != nil {
		t.Fatal(err)
	}
	s := ctx.Surface().(*Surface)
	s.Reset()

	ctx.Save()
	ctx.Translate(5, 5)
	ctx.FillRect(0, 0, 4, 4)
	ctx.Restore()

	want := []CommandType{CmdSave, CmdSetMatrix, CmdDrawPath, CmdRestoreToCount}
	cmds := s.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("recorded %d commands, want %d:\n%s", len(cmds), len(want), s.Dump())
	}
	for i, c := range cmds {
		if c.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, c.Type(), want[i])
		}
	}
	dp := cmds[2].(DrawPathCommand)
	if got, want := dp.Matrix, canvas.Scale(2, 2).Multiply(canvas.Translate(5, 5)); got != want {
		t.Errorf("draw matrix = %v, want %v", got, want)
	}
	if got := s.Matrix(); got != canvas.Scale(2, 2) {
		t.Errorf("matrix after Restore = %v, want scale(2)", got)
	}
}
