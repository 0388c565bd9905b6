package canvas

import (
	"errors"
	"math"
	"testing"
)

func TestRectPath(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		w, h    float64
		ok      bool
		wantLen int
		first   Point
	}{
		{"normal", 1, 2, 3, 4, true, 5, Pt(1, 2)},
		{"negative width is a line", 10, 0, -4, 2, true, 3, Pt(10, 0)},
		{"negative height is a line", 10, 10, 5, -7, true, 3, Pt(10, 10)},
		{"both negative", 10, 10, -5, -5, false, 0, Point{}},
		{"negative and zero", 10, 10, -5, 0, false, 0, Point{}},
		{"zero width is a line", 0, 0, 0, 10, true, 3, Pt(0, 0)},
		{"zero height is a line", 5, 5, 10, 0, true, 3, Pt(5, 5)},
		{"both zero", 0, 0, 0, 0, false, 0, Point{}},
		{"NaN", math.NaN(), 0, 1, 1, false, 0, Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := rectPath(tt.x, tt.y, tt.w, tt.h)
			if ok != tt.ok {
				t.Fatalf("rectPath() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if p.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", p.Len(), tt.wantLen)
			}
			if got := p.Elements()[0].(MoveTo).Point; got != tt.first {
				t.Errorf("start = %v, want %v", got, tt.first)
			}
		})
	}
}

func TestImageRects(t *testing.T) {
	img := &Image{Width: 10, Height: 10, Pix: make([]byte, 400)}
	tests := []struct {
		name          string
		src, dst      Rect
		ok            bool
		wantSrc, want Rect
	}{
		{"inside", RectXYWH(0, 0, 10, 10), RectXYWH(0, 0, 20, 20), true, RectXYWH(0, 0, 10, 10), RectXYWH(0, 0, 20, 20)},
		{"clipped right", RectXYWH(5, 0, 10, 10), RectXYWH(0, 0, 20, 20), true, RectXYWH(5, 0, 5, 10), RectXYWH(0, 0, 10, 20)},
		{"clipped left", RectXYWH(-5, 0, 10, 10), RectXYWH(0, 0, 10, 10), true, RectXYWH(0, 0, 5, 10), RectXYWH(5, 0, 5, 10)},
		{"flipped source", RectXYWH(10, 10, -10, -10), RectXYWH(0, 0, 10, 10), true, RectXYWH(0, 0, 10, 10), RectXYWH(0, 0, 10, 10)},
		{"outside", RectXYWH(20, 20, 5, 5), RectXYWH(0, 0, 5, 5), false, Rect{}, Rect{}},
		{"empty destination", RectXYWH(0, 0, 5, 5), RectXYWH(0, 0, 0, 5), false, Rect{}, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst, ok := imageRects(img, tt.src, tt.dst)
			if ok != tt.ok {
				t.Fatalf("imageRects() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if src != tt.wantSrc || dst != tt.want {
				t.Errorf("imageRects() = %v, %v, want %v, %v", src, dst, tt.wantSrc, tt.want)
			}
		})
	}
}

func TestDropShadowDeviceSpace(t *testing.T) {
	ctx, _ := newStubContext(t)
	ctx.SetShadowBlur(8)
	ctx.SetShadowOffsetX(3)
	ctx.SetShadowOffsetY(-1)
	ctx.SetShadowColor(Black)

	got := *ctx.dropShadow()
	want := DropShadow{OffsetX: 6, OffsetY: -2, Sigma: 8, Color: Black}
	if got != want {
		t.Errorf("dropShadow() = %+v, want %+v", got, want)
	}
}

func TestShadowActive(t *testing.T) {
	tests := []struct {
		name string
		s    Shadow
		want bool
	}{
		{"default", Shadow{}, false},
		{"color only", Shadow{Color: Black}, false},
		{"blurred", Shadow{Color: Black, Blur: 1}, true},
		{"offset", Shadow{Color: Black, OffsetY: 1}, true},
		{"transparent color", Shadow{Color: Transparent, Blur: 4, OffsetX: 2}, false},
	}
	for _, tt := range tests {
		if got := tt.s.active(); got != tt.want {
			t.Errorf("%s: active() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestExportWithProvider(t *testing.T) {
	ctx, _ := newStubContext(t)
	if got, want := ctx.ToDataURL("image/png", 50), "data:image/png;base64,cG5n"; got != want {
		t.Errorf("ToDataURL(png) = %q, want %q", got, want)
	}
	if got, want := ctx.ToDataURL("image/webp", 200), "data:image/png;base64,cG5n"; got != want {
		t.Errorf("ToDataURL(webp) = %q, want png fallback %q", got, want)
	}
	if got := len(ctx.ToData()); got != 10*10*4 {
		t.Errorf("len(ToData()) = %d, want %d", got, 10*10*4)
	}

	ctx.Translate(1, 1)
	ctx.Save()
	if err := ctx.Resize(30, 20); err != nil {
		t.Fatal(err)
	}
	if ctx.Width() != 30 || ctx.Height() != 20 {
		t.Errorf("size after Resize = %dx%d, want 30x20", ctx.Width(), ctx.Height())
	}
	if ctx.SaveDepth() != 0 || ctx.GetTransform() != Identity() {
		t.Error("Resize() kept the state stack or transform")
	}
	if err := ctx.Resize(0, 5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 5) error = %v, want ErrInvalidSize", err)
	}
}

func TestExportWithoutProvider(t *testing.T) {
	ctx := NewForSurface(&stubSurface{w: 2, h: 3, scale: 2})
	if got := ctx.ToDataURL("image/png", 92); got != "data:," {
		t.Errorf("ToDataURL() = %q, want data:,", got)
	}
	data := ctx.ToData()
	if len(data) != 4*6*4 {
		t.Fatalf("len(ToData()) = %d, want %d", len(data), 4*6*4)
	}
	for i, b := range data {
		if b != 0xff {
			t.Fatalf("ToData()[%d] = %d, want 255", i, b)
		}
	}
	if err := ctx.Resize(5, 5); !errors.Is(err, ErrNoProvider) {
		t.Errorf("Resize() error = %v, want ErrNoProvider", err)
	}
}

func TestGetImageDataUnreadable(t *testing.T) {
	ctx, _ := newStubContext(t)
	d := ctx.GetImageData(0, 0, 2, 2)
	if d.Width != 2 || len(d.Data) != 16 || d.Data[0] != 0xff || d.Data[3] != 0xff {
		t.Errorf("GetImageData() = %+v, want opaque white", d)
	}
	if d := ctx.GetImageData(0, 0, 0, 5); d.Width != 0 || len(d.Data) != 0 {
		t.Errorf("GetImageData(w=0) = %+v, want empty", d)
	}
}

func TestImageDataSizeLimit(t *testing.T) {
	ctx, _ := newStubContext(t)
	tests := []struct {
		name string
		w, h int
	}{
		{"overflowing product", math.MaxInt / 2, 3},
		{"over the limit", MaxImageDataBytes / 4, 2},
		{"huge height", 1, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := ctx.GetImageData(0, 0, tt.w, tt.h); d.Width != 0 || len(d.Data) != 0 {
				t.Errorf("GetImageData(%d, %d) = %dx%d, want empty", tt.w, tt.h, d.Width, d.Height)
			}
			if d := NewImageData(tt.w, tt.h); d.Width != 0 || len(d.Data) != 0 {
				t.Errorf("NewImageData(%d, %d) = %dx%d, want empty", tt.w, tt.h, d.Width, d.Height)
			}
		})
	}
	if n, ok := pixelBytes(MaxImageDataBytes/4, 1); !ok || n != MaxImageDataBytes {
		t.Errorf("pixelBytes(limit) = %d, %v, want %d, true", n, ok, MaxImageDataBytes)
	}
}

type failingDecoder struct{}

func (failingDecoder) Decode([]byte) (*Image, error) { return nil, ErrInvalidImage }

func TestDrawImageBytesFailure(t *testing.T) {
	ctx, s := newStubContext(t)
	ctx.DrawImageBytes([]byte("x"), 0, 0)

	ctx, s = newStubContext(t, WithImageDecoder(failingDecoder{}))
	ctx.DrawImageBytes([]byte("x"), 0, 0)
	ctx.DrawImagePixels([]byte{1, 2, 3}, 1, 1, 0, 0)
	if s.draws != 0 {
		t.Errorf("draws = %d, want 0", s.draws)
	}
	ctx.DrawImagePixels([]byte{1, 2, 3, 4}, 1, 1, 0, 0)
	if s.draws != 1 {
		t.Errorf("draws = %d, want 1", s.draws)
	}
}
