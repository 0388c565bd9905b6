package canvas

import (
	"image/color"
	"math"
	"testing"
)

func TestARGBRoundTrip(t *testing.T) {
	tests := []uint32{0xff000000, 0xffffffff, 0x80ff0000, 0x00000000, 0x12345678}
	for _, v := range tests {
		if got := ARGB(v).ARGB(); got != v {
			t.Errorf("ARGB(%#08x).ARGB() = %#08x", v, got)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"#f00", 0xffff0000, true},
		{"#f008", 0x88ff0000, true},
		{"#00ff00", 0xff00ff00, true},
		{"#0000ff80", 0x800000ff, true},
		{"rgb(255, 128, 0)", 0xffff8000, true},
		{"rgba(0, 0, 255, 0.5)", 0x800000ff, true},
		{"rgb(100% 0% 0%)", 0xffff0000, true},
		{"  Red ", 0xffff0000, true},
		{"transparent", 0x00000000, true},
		{"cornflowerblue", 0xff6495ed, true},
		{"#12345", 0, false},
		{"rgb(1, 2)", 0, false},
		{"notacolor", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got.ARGB() != tt.want {
				t.Errorf("ParseColor(%q) = %#08x, want %#08x", tt.in, got.ARGB(), tt.want)
			}
		})
	}
}

func TestPremultiplied(t *testing.T) {
	got := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}.Premultiplied()
	want := color.RGBA{R: 128, G: 64, B: 0, A: 128}
	if got != want {
		t.Errorf("Premultiplied() = %v, want %v", got, want)
	}
	if got := (RGBA{R: 2, G: -1, B: math.NaN(), A: 1}).Premultiplied(); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Premultiplied() of out-of-range color = %v", got)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, A: 51})
	if got.R != 1 || got.A != 0.2 {
		t.Errorf("FromColor() = %+v, want red at alpha 0.2", got)
	}
}

func TestColorLerp(t *testing.T) {
	red, blue := RGB(1, 0, 0), RGB(0, 0, 1)
	mid := red.Lerp(blue, 0.5)
	if mid.R != 0.5 || mid.B != 0.5 || mid.A != 1 {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
	// a transparent end contributes no color
	half := red.Lerp(Transparent, 0.5)
	if half.R != 1 || half.A != 0.5 {
		t.Errorf("Lerp to transparent = %+v, want red at alpha 0.5", half)
	}
	if got := Transparent.Lerp(Transparent, 0.3); got != Transparent {
		t.Errorf("Lerp of transparent colors = %+v", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6).WithAlpha(0.25)
	if c.A != 0.25 || c.R != 0.2 {
		t.Errorf("WithAlpha() = %+v", c)
	}
	if !c.WithAlpha(0).IsTransparent() {
		t.Error("WithAlpha(0).IsTransparent() = false")
	}
}
