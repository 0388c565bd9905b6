package raster

import (
	"image"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
)

// maxCoord bounds fixed-point input so rasterx arithmetic cannot overflow.
const maxCoord = 1 << 24

// Scanner accumulates anti-aliased coverage into an alpha mask. It
// implements rasterx.Scanner, so rasterx fillers and dashers can drive
// it, and supports both the nonzero and evenodd fill rules.
//
// Contours are not closed implicitly: rasterx strokers emit outline
// fragments that only form closed boundaries together, and fillers close
// their own subpaths. Incoming points are mapped through the scanner's
// transform before they are rasterized.
//
// The mask is allocated on the first Draw and sized to the drawn extent;
// later draws outside it grow the mask.
type Scanner struct {
	bounds   image.Rectangle
	clip     image.Rectangle
	toDevice canvas.Matrix
	evenOdd  bool

	edges     []edge
	pen       canvas.Point
	extent    fixed.Rectangle26_6
	hasExtent bool

	cov  coverage
	mask *image.Alpha
}

var _ rasterx.Scanner = (*Scanner)(nil)

// NewScanner returns a scanner for a device of the given bounds.
func NewScanner(bounds image.Rectangle) *Scanner {
	return &Scanner{bounds: bounds, clip: bounds, toDevice: canvas.Identity()}
}

// SetTransform sets the matrix applied to incoming points.
func (s *Scanner) SetTransform(m canvas.Matrix) { s.toDevice = m }

// Mask returns the accumulated coverage, or nil when nothing was drawn.
func (s *Scanner) Mask() *image.Alpha { return s.mask }

// Start implements rasterx.Scanner.
func (s *Scanner) Start(a fixed.Point26_6) { s.pen = s.point(a) }

// Line implements rasterx.Scanner.
func (s *Scanner) Line(b fixed.Point26_6) {
	p := s.point(b)
	if e, ok := newEdge(s.pen.X, s.pen.Y, p.X, p.Y); ok {
		s.edges = append(s.edges, e)
	}
	s.pen = p
}

// Draw implements rasterx.Scanner. It rasterizes the pending edges into
// the mask and discards them.
func (s *Scanner) Draw() {
	defer func() { s.edges = s.edges[:0] }()
	if len(s.edges) == 0 {
		return
	}
	area := s.edgeBounds().Intersect(s.clip)
	if area.Empty() {
		return
	}
	s.grow(area)
	m := s.mask
	s.cov.fill(s.edges, area, s.evenOdd, func(y int, row []float32) {
		o := m.PixOffset(area.Min.X, y)
		dst := m.Pix[o : o+len(row)]
		for i, c := range row {
			if c <= 0 {
				continue
			}
			v := int(c*255+0.5) + int(dst[i])
			dst[i] = uint8(min(v, 255))
		}
	})
}

// GetPathExtent implements rasterx.Scanner. The extent is in the
// incoming fixed-point space.
func (s *Scanner) GetPathExtent() fixed.Rectangle26_6 { return s.extent }

// SetBounds implements rasterx.Scanner.
func (s *Scanner) SetBounds(width, height int) {
	s.clip = image.Rect(0, 0, width, height).Intersect(s.bounds)
}

// SetColor implements rasterx.Scanner. A scanner only produces
// coverage, so the color is ignored.
func (s *Scanner) SetColor(any) {}

// SetWinding implements rasterx.Scanner.
func (s *Scanner) SetWinding(useNonZeroWinding bool) { s.evenOdd = !useNonZeroWinding }

// Clear implements rasterx.Scanner. Pending edges are dropped; the
// mask is kept.
func (s *Scanner) Clear() {
	s.edges = s.edges[:0]
	s.extent = fixed.Rectangle26_6{}
	s.hasExtent = false
}

// SetClip implements rasterx.Scanner. An empty rect removes the clip.
func (s *Scanner) SetClip(rect image.Rectangle) {
	if rect.Empty() {
		s.clip = s.bounds
		return
	}
	s.clip = rect.Intersect(s.bounds)
}

func (s *Scanner) point(p fixed.Point26_6) canvas.Point {
	if !s.hasExtent {
		s.extent = fixed.Rectangle26_6{Min: p, Max: p}
		s.hasExtent = true
	} else {
		s.extent.Min.X = min(s.extent.Min.X, p.X)
		s.extent.Min.Y = min(s.extent.Min.Y, p.Y)
		s.extent.Max.X = max(s.extent.Max.X, p.X)
		s.extent.Max.Y = max(s.extent.Max.Y, p.Y)
	}
	return s.toDevice.TransformPoint(canvas.Pt(float64(p.X)/64, float64(p.Y)/64))
}

func (s *Scanner) edgeBounds() image.Rectangle {
	e := s.edges[0]
	minX, maxX := e.x0, e.x0
	minY, maxY := e.y0, e.y1
	for i := range s.edges {
		e := &s.edges[i]
		x1 := e.xAt(e.y1)
		minX = min(minX, e.x0, x1)
		maxX = max(maxX, e.x0, x1)
		minY = min(minY, e.y0)
		maxY = max(maxY, e.y1)
	}
	return image.Rect(floorInt(minX), floorInt(minY), ceilInt(maxX), ceilInt(maxY))
}

// grow makes sure the mask covers r.
func (s *Scanner) grow(r image.Rectangle) {
	if s.mask == nil {
		s.mask = image.NewAlpha(r)
		return
	}
	if r.In(s.mask.Rect) {
		return
	}
	m := image.NewAlpha(s.mask.Rect.Union(r))
	old := s.mask
	for y := old.Rect.Min.Y; y < old.Rect.Max.Y; y++ {
		copy(m.Pix[m.PixOffset(old.Rect.Min.X, y):], old.Pix[old.PixOffset(old.Rect.Min.X, y):old.PixOffset(old.Rect.Max.X, y)])
	}
	s.mask = m
}
