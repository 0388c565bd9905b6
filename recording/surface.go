package recording

import (
	"strings"
	"unicode/utf8"

	"github.com/gogpu/canvas"
)

// AdvanceRatio is the advance width of every character as a fraction of
// the font size. Recorded text has no real font, so widths are
// deterministic: MeasureText returns runes * size * AdvanceRatio.
const AdvanceRatio = 0.5

// Surface is a canvas.Surface that records commands. It tracks the save
// count and transform exactly as a rasterizing surface would so that a
// Context cannot tell the difference.
type Surface struct {
	width, height int
	scale         float64

	matrix canvas.Matrix
	saves  []canvas.Matrix

	commands []Command
	images   *ImagePool
}

var _ canvas.Surface = (*Surface)(nil)

// NewSurface returns an empty recording surface.
func NewSurface(width, height int, scale float64) *Surface {
	return &Surface{
		width:  width,
		height: height,
		scale:  scale,
		matrix: canvas.Identity(),
		images: newImagePool(),
	}
}

// Width implements canvas.Surface.
func (s *Surface) Width() int { return s.width }

// Height implements canvas.Surface.
func (s *Surface) Height() int { return s.height }

// Scale implements canvas.Surface.
func (s *Surface) Scale() float64 { return s.scale }

// Commands returns the recorded commands in order.
func (s *Surface) Commands() []Command { return s.commands }

// Images returns the pool holding recorded images.
func (s *Surface) Images() *ImagePool { return s.images }

// Reset discards recorded commands. The transform and save stack are
// kept.
func (s *Surface) Reset() {
	s.commands = s.commands[:0]
}

// Filter returns the recorded commands of type t.
func (s *Surface) Filter(t CommandType) []Command {
	var out []Command
	for _, c := range s.commands {
		if c.Type() == t {
			out = append(out, c)
		}
	}
	return out
}

// Dump returns one line per recorded command.
func (s *Surface) Dump() string {
	var b strings.Builder
	for _, c := range s.commands {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *Surface) record(c Command) { s.commands = append(s.commands, c) }

// SaveCount implements canvas.Backend.
func (s *Surface) SaveCount() int { return len(s.saves) + 1 }

// Save implements canvas.Backend.
func (s *Surface) Save() {
	s.saves = append(s.saves, s.matrix)
	s.record(SaveCommand{Count: s.SaveCount()})
}

// RestoreToCount implements canvas.Backend.
func (s *Surface) RestoreToCount(count int) {
	count = max(count, 1)
	for len(s.saves)+1 > count {
		s.matrix = s.saves[len(s.saves)-1]
		s.saves = s.saves[:len(s.saves)-1]
	}
	s.record(RestoreToCountCommand{Count: count})
}

// Matrix implements canvas.Backend.
func (s *Surface) Matrix() canvas.Matrix { return s.matrix }

// SetMatrix implements canvas.Backend.
func (s *Surface) SetMatrix(m canvas.Matrix) {
	s.matrix = m
	s.record(SetMatrixCommand{Matrix: m})
}

// ClipPath implements canvas.Backend.
func (s *Surface) ClipPath(path *canvas.Path, rule canvas.FillRule) {
	s.record(ClipCommand{Path: path.Clone(), Rule: rule, Matrix: s.matrix})
}

// DrawPath implements canvas.Backend.
func (s *Surface) DrawPath(path *canvas.Path, paint *canvas.Paint, style canvas.PaintStyle) {
	s.record(DrawPathCommand{Path: path.Clone(), Paint: paint.Clone(), Style: style, Matrix: s.matrix})
}

// DrawImageRect implements canvas.Backend.
func (s *Surface) DrawImageRect(img *canvas.Image, src, dst canvas.Rect, paint *canvas.Paint) {
	s.record(DrawImageCommand{Image: s.images.Add(img), Src: src, Dst: dst, Paint: paint.Clone(), Matrix: s.matrix})
}

// DrawText implements canvas.Backend.
func (s *Surface) DrawText(text string, x, y float64, font canvas.Font, dir canvas.Direction, paint *canvas.Paint, style canvas.PaintStyle) {
	s.record(DrawTextCommand{
		Text:      text,
		X:         x,
		Y:         y,
		Font:      font,
		Direction: dir,
		Paint:     paint.Clone(),
		Style:     style,
		Matrix:    s.matrix,
	})
}

// MeasureText implements canvas.Backend.
func (s *Surface) MeasureText(text string, font canvas.Font, _ canvas.Direction) float64 {
	return float64(utf8.RuneCountInString(text)) * font.Size * AdvanceRatio
}

// ReadPixels implements canvas.Backend. A recording has no pixels.
func (s *Surface) ReadPixels(_, _, _, _ int, _ []byte) bool { return false }

// WritePixels implements canvas.Backend.
func (s *Surface) WritePixels(img *canvas.Image, x, y int) {
	s.record(WritePixelsCommand{Image: s.images.Add(img), X: x, Y: y})
}

// Clear implements canvas.Backend.
func (s *Surface) Clear(c canvas.RGBA) { s.record(ClearCommand{Color: c}) }

// Flush implements canvas.Backend.
func (s *Surface) Flush() { s.record(FlushCommand{}) }
