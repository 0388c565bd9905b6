package canvas

import "testing"

func TestParseFont(t *testing.T) {
	tests := []struct {
		in   string
		want Font
	}{
		{"", Font{Weight: 400, Size: 10, Family: "sans-serif"}},
		{"serif", Font{Weight: 400, Size: 10, Family: "serif"}},
		{"12px serif", Font{Weight: 400, Size: 12, Family: "serif"}},
		{"bold 12px serif", Font{Weight: 700, Size: 12, Family: "serif"}},
		{"italic 12px serif", Font{Style: FontStyleItalic, Weight: 400, Size: 12, Family: "serif"}},
		{"oblique 300 9.5px mono", Font{Style: FontStyleOblique, Weight: 300, Size: 9.5, Family: "mono"}},
		{"italic small-caps bold 16px Arial", Font{Style: FontStyleItalic, Weight: 700, Size: 16, Family: "Arial"}},
		{"italic small-caps bold 16px Times New Roman", Font{Style: FontStyleItalic, Weight: 700, Size: 16, Family: "Times New Roman"}},
		{"bolder 8px 'GoMono'", Font{Weight: 800, Size: 8, Family: "GoMono"}},
		{"lighter 8px x", Font{Weight: 300, Size: 8, Family: "x"}},
		{"1200 8px x", Font{Weight: 400, Size: 8, Family: "x"}},
		{"-5px serif", Font{Weight: 400, Size: 10, Family: "serif"}},
		{"large serif", Font{Weight: 400, Size: 10, Family: "serif"}},
		{"a b c d e f", Font{Weight: 400, Size: 10, Family: "sans-serif"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFont(tt.in); got != tt.want {
				t.Errorf("ParseFont(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFontString(t *testing.T) {
	tests := []struct {
		f    Font
		want string
	}{
		{DefaultFontValue(), "10px sans-serif"},
		{Font{Style: FontStyleItalic, Weight: 700, Size: 12, Family: "serif"}, "italic 700 12px serif"},
		{Font{Weight: 400, Size: 9.5, Family: "monospace"}, "9.5px monospace"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Font.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFontStringParses(t *testing.T) {
	f := Font{Style: FontStyleOblique, Weight: 600, Size: 14, Family: "serif"}
	if got := ParseFont(f.String()); got != f {
		t.Errorf("ParseFont(%q) = %+v, want %+v", f.String(), got, f)
	}
}
