package raster

import (
	"cmp"
	"image"
	"math"
	"slices"
)

// subScanlines is the number of vertical samples per pixel row.
// Horizontal coverage is computed exactly along each sample line.
const subScanlines = 16

// edge is a non-horizontal line segment in device space with y0 < y1.
type edge struct {
	x0, y0 float64
	y1     float64
	dxdy   float64 // x step per unit y
	dir    int     // +1 downwards, -1 upwards in the original contour
}

func newEdge(x0, y0, x1, y1 float64) (edge, bool) {
	if y0 == y1 || math.IsNaN(y0) || math.IsNaN(y1) {
		return edge{}, false
	}
	dir := 1
	if y0 > y1 {
		dir = -1
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	return edge{x0: x0, y0: y0, y1: y1, dxdy: (x1 - x0) / (y1 - y0), dir: dir}, true
}

func (e *edge) xAt(y float64) float64 { return e.x0 + (y-e.y0)*e.dxdy }

type crossing struct {
	x   float64
	dir int
}

// coverage rasterizes edges into rows of float coverage and hands every
// non-empty row to emit. Rows outside clip are skipped.
type coverage struct {
	active    []int
	crossings []crossing
	row       []float32
}

func (c *coverage) fill(edges []edge, clip image.Rectangle, evenOdd bool, emit func(y int, row []float32)) {
	if len(edges) == 0 || clip.Empty() {
		return
	}
	slices.SortFunc(edges, func(a, b edge) int { return cmp.Compare(a.y0, b.y0) })

	top, bottom := edges[0].y0, edges[0].y1
	for i := range edges {
		bottom = max(bottom, edges[i].y1)
	}
	y0 := max(int(math.Floor(top)), clip.Min.Y)
	y1 := min(int(math.Ceil(bottom)), clip.Max.Y)
	if y0 >= y1 {
		return
	}

	width := clip.Dx()
	if cap(c.row) < width {
		c.row = make([]float32, width)
	}
	row := c.row[:width]
	c.active = c.active[:0]
	next := 0
	minX := float64(clip.Min.X)

	for py := y0; py < y1; py++ {
		clear(row)
		hit := false
		for k := 0; k < subScanlines; k++ {
			sy := float64(py) + (float64(k)+0.5)/subScanlines
			for next < len(edges) && edges[next].y0 <= sy {
				c.active = append(c.active, next)
				next++
			}
			keep := c.active[:0]
			for _, i := range c.active {
				if edges[i].y1 > sy {
					keep = append(keep, i)
				}
			}
			c.active = keep
			if len(c.active) < 2 {
				continue
			}

			c.crossings = c.crossings[:0]
			for _, i := range c.active {
				e := &edges[i]
				if e.y0 <= sy {
					c.crossings = append(c.crossings, crossing{x: e.xAt(sy) - minX, dir: e.dir})
				}
			}
			slices.SortFunc(c.crossings, func(a, b crossing) int { return cmp.Compare(a.x, b.x) })

			winding := 0
			for i := 0; i+1 < len(c.crossings); i++ {
				if evenOdd {
					winding ^= 1
				} else {
					winding += c.crossings[i].dir
				}
				if winding != 0 {
					addSpan(row, c.crossings[i].x, c.crossings[i+1].x)
					hit = true
				}
			}
		}
		if hit {
			emit(py, row)
		}
	}
}

// addSpan adds one sub-scanline's worth of coverage for [xa, xb).
func addSpan(row []float32, xa, xb float64) {
	w := float64(len(row))
	xa = min(max(xa, 0), w)
	xb = min(max(xb, 0), w)
	if xb <= xa {
		return
	}
	const weight = 1.0 / subScanlines
	ia, ib := int(xa), int(xb)
	if ia == ib {
		row[ia] += float32((xb - xa) * weight)
		return
	}
	row[ia] += float32((float64(ia+1) - xa) * weight)
	for i := ia + 1; i < ib; i++ {
		row[i] += weight
	}
	if ib < len(row) {
		row[ib] += float32((xb - float64(ib)) * weight)
	}
}
