package canvas

// Canvas enumerations arrive from hosts as free-form strings. Each Parse
// function maps the recognised canvas keywords to a closed enum and every
// other input to the documented default, so drawing code never compares
// strings.

// FillRule selects how a path's interior is computed.
type FillRule uint8

const (
	// NonZero fills areas with a non-zero winding number. Default.
	NonZero FillRule = iota
	// EvenOdd fills areas crossed an odd number of times.
	EvenOdd
)

// ParseFillRule maps "evenodd" to EvenOdd and anything else to NonZero.
func ParseFillRule(s string) FillRule {
	if s == "evenodd" {
		return EvenOdd
	}
	return NonZero
}

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// LineCap is the shape drawn at the ends of open stroked subpaths.
type LineCap uint8

const (
	// LineCapButt ends the stroke flush with the end point. Default.
	LineCapButt LineCap = iota
	// LineCapRound adds a half circle.
	LineCapRound
	// LineCapSquare adds a half square.
	LineCapSquare
)

// ParseLineCap maps "round" and "square"; anything else is LineCapButt.
func ParseLineCap(s string) LineCap {
	switch s {
	case "round":
		return LineCapRound
	case "square":
		return LineCapSquare
	default:
		return LineCapButt
	}
}

func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin is the shape drawn where two stroked segments meet.
type LineJoin uint8

const (
	// LineJoinMiter extends the outer edges until they meet. Default.
	LineJoinMiter LineJoin = iota
	// LineJoinRound rounds the corner.
	LineJoinRound
	// LineJoinBevel cuts the corner.
	LineJoinBevel
)

// ParseLineJoin maps "round" and "bevel"; anything else is LineJoinMiter.
func ParseLineJoin(s string) LineJoin {
	switch s {
	case "round":
		return LineJoinRound
	case "bevel":
		return LineJoinBevel
	default:
		return LineJoinMiter
	}
}

func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// BlendMode is a globalCompositeOperation value.
type BlendMode uint8

// Porter-Duff operators, in canvas naming.
const (
	BlendSourceOver BlendMode = iota
	BlendSourceIn
	BlendSourceOut
	BlendSourceAtop
	BlendDestinationOver
	BlendDestinationIn
	BlendDestinationOut
	BlendDestinationAtop
	BlendLighter
	BlendCopy
	BlendXor
	BlendClear
)

// Separable and non-separable blend modes.
const (
	BlendMultiply BlendMode = iota + 16
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendNames = map[BlendMode]string{
	BlendSourceOver:      "source-over",
	BlendSourceIn:        "source-in",
	BlendSourceOut:       "source-out",
	BlendSourceAtop:      "source-atop",
	BlendDestinationOver: "destination-over",
	BlendDestinationIn:   "destination-in",
	BlendDestinationOut:  "destination-out",
	BlendDestinationAtop: "destination-atop",
	BlendLighter:         "lighter",
	BlendCopy:            "copy",
	BlendXor:             "xor",
	BlendClear:           "clear",
	BlendMultiply:        "multiply",
	BlendScreen:          "screen",
	BlendOverlay:         "overlay",
	BlendDarken:          "darken",
	BlendLighten:         "lighten",
	BlendColorDodge:      "color-dodge",
	BlendColorBurn:       "color-burn",
	BlendHardLight:       "hard-light",
	BlendSoftLight:       "soft-light",
	BlendDifference:      "difference",
	BlendExclusion:       "exclusion",
	BlendHue:             "hue",
	BlendSaturation:      "saturation",
	BlendColor:           "color",
	BlendLuminosity:      "luminosity",
}

var blendByName = func() map[string]BlendMode {
	m := make(map[string]BlendMode, len(blendNames))
	for mode, name := range blendNames {
		m[name] = mode
	}
	return m
}()

// ParseBlendMode maps a globalCompositeOperation keyword to its mode.
// Unknown keywords yield BlendSourceOver.
func ParseBlendMode(s string) BlendMode {
	if m, ok := blendByName[s]; ok {
		return m
	}
	return BlendSourceOver
}

func (m BlendMode) String() string {
	if s, ok := blendNames[m]; ok {
		return s
	}
	return "source-over"
}

// FilterQuality selects the sampling filter used for images.
type FilterQuality uint8

const (
	FilterNone FilterQuality = iota
	FilterLow
	FilterMedium
	FilterHigh
)

// ParseSmoothingQuality maps "medium" and "high"; anything else is FilterLow.
func ParseSmoothingQuality(s string) FilterQuality {
	switch s {
	case "high":
		return FilterHigh
	case "medium":
		return FilterMedium
	default:
		return FilterLow
	}
}

func (q FilterQuality) String() string {
	switch q {
	case FilterNone:
		return "none"
	case FilterMedium:
		return "medium"
	case FilterHigh:
		return "high"
	default:
		return "low"
	}
}

// TextAlign is the horizontal anchor of fillText and strokeText.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
)

// ParseTextAlign maps "right" and "center"; anything else is TextAlignLeft.
func ParseTextAlign(s string) TextAlign {
	switch s {
	case "right":
		return TextAlignRight
	case "center":
		return TextAlignCenter
	default:
		return TextAlignLeft
	}
}

func (a TextAlign) String() string {
	switch a {
	case TextAlignRight:
		return "right"
	case TextAlignCenter:
		return "center"
	default:
		return "left"
	}
}

// Direction is the base text direction handed to the shaper.
type Direction uint8

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// ParseDirection maps "rtl"; anything else, including "inherit", is DirectionLTR.
func ParseDirection(s string) Direction {
	if s == "rtl" {
		return DirectionRTL
	}
	return DirectionLTR
}

func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// Repetition controls how a pattern tiles.
type Repetition uint8

const (
	Repeat Repetition = iota
	RepeatX
	RepeatY
	NoRepeat
)

// ParseRepetition maps the createPattern keywords; anything else, including
// the empty string, is Repeat.
func ParseRepetition(s string) Repetition {
	switch s {
	case "repeat-x":
		return RepeatX
	case "repeat-y":
		return RepeatY
	case "no-repeat":
		return NoRepeat
	default:
		return Repeat
	}
}

func (r Repetition) String() string {
	switch r {
	case RepeatX:
		return "repeat-x"
	case RepeatY:
		return "repeat-y"
	case NoRepeat:
		return "no-repeat"
	default:
		return "repeat"
	}
}

// ImageFormat is an encoded output format for toDataURL and surface export.
type ImageFormat uint8

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
	FormatWebP
	FormatGIF
	FormatHEIF
	FormatBMP
	FormatTIFF
)

// ParseImageFormat accepts a MIME type ("image/jpeg") or a bare name
// ("jpg"). Unknown values yield FormatPNG.
func ParseImageFormat(s string) ImageFormat {
	if len(s) > 6 && s[:6] == "image/" {
		s = s[6:]
	}
	switch s {
	case "jpg", "jpeg":
		return FormatJPEG
	case "webp":
		return FormatWebP
	case "gif":
		return FormatGIF
	case "heif", "heic":
		return FormatHEIF
	case "bmp":
		return FormatBMP
	case "tiff", "tif":
		return FormatTIFF
	default:
		return FormatPNG
	}
}

// MIMEType returns the canonical MIME type of f.
func (f ImageFormat) MIMEType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	case FormatGIF:
		return "image/gif"
	case FormatHEIF:
		return "image/heif"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "image/png"
	}
}

func (f ImageFormat) String() string { return f.MIMEType() }
