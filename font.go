package canvas

import (
	"strconv"
	"strings"
)

// Font defaults applied when a font string is missing a component.
const (
	DefaultFont       = "10px sans-serif"
	DefaultFontSize   = 10.0
	DefaultFontFamily = "sans-serif"
	DefaultFontWeight = 400
)

// FontStyle is the slant of a font.
type FontStyle uint8

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

func (s FontStyle) String() string {
	switch s {
	case FontStyleItalic:
		return "italic"
	case FontStyleOblique:
		return "oblique"
	default:
		return "normal"
	}
}

// Font is a parsed CSS font shorthand. Size is in CSS pixels.
type Font struct {
	Style  FontStyle
	Weight int
	Size   float64
	Family string
}

// DefaultFontValue returns the font "10px sans-serif".
func DefaultFontValue() Font {
	return Font{Weight: DefaultFontWeight, Size: DefaultFontSize, Family: DefaultFontFamily}
}

// String formats f as a CSS font shorthand.
func (f Font) String() string {
	var b strings.Builder
	if f.Style != FontStyleNormal {
		b.WriteString(f.Style.String())
		b.WriteByte(' ')
	}
	if f.Weight != DefaultFontWeight {
		b.WriteString(strconv.Itoa(f.Weight))
		b.WriteByte(' ')
	}
	b.WriteString(strconv.FormatFloat(f.Size, 'f', -1, 64))
	b.WriteString("px ")
	b.WriteString(f.Family)
	return b.String()
}

// ParseFont parses a CSS font shorthand such as "italic bold 12px serif".
// It never fails: tokens are classified by content and position, and
// anything unrecognised falls back to the defaults of "10px sans-serif".
//
// Token layouts by count:
//
//	5: style variant weight size family
//	4: style weight size family
//	3: weight size family
//	2: size family
//	1: family
//
// With more than five tokens, everything after the size token is the
// family name.
func ParseFont(s string) Font {
	f := DefaultFontValue()
	tokens := strings.Fields(s)
	switch len(tokens) {
	case 0:
		return f
	case 1:
		f.Family = familyOf(tokens)
	case 2:
		f.Size = parseFontSize(tokens[0])
		f.Family = familyOf(tokens[1:])
	case 3:
		f.Style, f.Weight = styleOrWeight(tokens[0])
		f.Size = parseFontSize(tokens[1])
		f.Family = familyOf(tokens[2:])
	case 4:
		f.Style = parseFontStyle(tokens[0])
		f.Weight = parseFontWeight(tokens[1])
		f.Size = parseFontSize(tokens[2])
		f.Family = familyOf(tokens[3:])
	case 5:
		f.Style = parseFontStyle(tokens[0])
		f.Weight = parseFontWeight(tokens[2])
		f.Size = parseFontSize(tokens[3])
		f.Family = familyOf(tokens[4:])
	default:
		sizeAt := -1
		for i, t := range tokens {
			if isFontSize(t) {
				sizeAt = i
				break
			}
		}
		if sizeAt < 0 || sizeAt == len(tokens)-1 {
			return f
		}
		for _, t := range tokens[:sizeAt] {
			switch {
			case isFontStyle(t) && t != "normal":
				f.Style = parseFontStyle(t)
			case isFontWeight(t):
				f.Weight = parseFontWeight(t)
			}
		}
		f.Size = parseFontSize(tokens[sizeAt])
		f.Family = familyOf(tokens[sizeAt+1:])
	}
	return f
}

// styleOrWeight classifies the first of three tokens, which is usually a
// weight but may be a style.
func styleOrWeight(t string) (FontStyle, int) {
	if !isFontWeight(t) && isFontStyle(t) {
		return parseFontStyle(t), DefaultFontWeight
	}
	return FontStyleNormal, parseFontWeight(t)
}

func familyOf(tokens []string) string {
	fam := strings.Join(tokens, " ")
	fam = strings.Trim(fam, `"'`)
	if fam == "" {
		return DefaultFontFamily
	}
	return fam
}

var weightTokens = []string{"normal", "bold", "bolder", "lighter", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

func isFontWeight(t string) bool {
	for _, w := range weightTokens {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}

func isFontStyle(t string) bool {
	return t == "normal" || t == "italic" || t == "oblique"
}

func isFontSize(t string) bool {
	return strings.Contains(t, "px")
}

func parseFontStyle(t string) FontStyle {
	switch t {
	case "italic":
		return FontStyleItalic
	case "oblique":
		return FontStyleOblique
	default:
		return FontStyleNormal
	}
}

func parseFontWeight(t string) int {
	if !isFontWeight(t) {
		return DefaultFontWeight
	}
	switch t {
	case "normal":
		return 400
	case "bold":
		return 700
	case "bolder":
		return 800
	case "lighter":
		return 300
	}
	w, err := strconv.Atoi(t)
	if err != nil || w < 1 || w > 1000 {
		return DefaultFontWeight
	}
	return w
}

func parseFontSize(t string) float64 {
	if !isFontSize(t) {
		return DefaultFontSize
	}
	v, err := strconv.ParseFloat(strings.Replace(t, "px", "", 1), 64)
	if err != nil || v <= 0 {
		return DefaultFontSize
	}
	return v
}
