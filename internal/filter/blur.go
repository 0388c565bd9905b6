package filter

import (
	"image"
	"sync"
)

type floatBuffer struct{ data []float32 }

var bufferPool = sync.Pool{
	New: func() any { return &floatBuffer{} },
}

func getBuffer(n int) *floatBuffer {
	b := bufferPool.Get().(*floatBuffer)
	if cap(b.data) < n {
		b.data = make([]float32, n)
	}
	b.data = b.data[:n]
	clear(b.data)
	return b
}

// BlurAlpha returns a Gaussian-blurred copy of m. The result's bounds grow
// by the kernel radius on every side so nothing is cut off.
func BlurAlpha(m *image.Alpha, sigma float64) *image.Alpha {
	half := KernelRadius(sigma)
	if half == 0 {
		out := image.NewAlpha(m.Rect)
		copy(out.Pix, m.Pix)
		return out
	}
	k := CachedGaussianKernel(sigma)
	src := m.Rect
	dst := src.Inset(-half)
	w, h := dst.Dx(), dst.Dy()

	// horizontal pass over the source rows into tmp (dst columns, src rows)
	tmpBuf := getBuffer(w * src.Dy())
	defer bufferPool.Put(tmpBuf)
	tmp := tmpBuf.data
	for y := 0; y < src.Dy(); y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+src.Dx()]
		out := tmp[y*w : (y+1)*w]
		for x, v := range row {
			if v == 0 {
				continue
			}
			fv := float32(v)
			// source x maps to dst x+half; taps spread over [x, x+2*half]
			for i, kv := range k {
				out[x+i] += fv * kv
			}
		}
	}

	// vertical pass from tmp into the result
	res := image.NewAlpha(dst)
	acc := getBuffer(w * h)
	defer bufferPool.Put(acc)
	col := acc.data
	for y := 0; y < src.Dy(); y++ {
		in := tmp[y*w : (y+1)*w]
		for i, kv := range k {
			out := col[(y+i)*w : (y+i+1)*w]
			for x, v := range in {
				if v != 0 {
					out[x] += v * kv
				}
			}
		}
	}
	for i, v := range col {
		switch {
		case v >= 255:
			res.Pix[i] = 255
		case v > 0:
			res.Pix[i] = uint8(v + 0.5)
		}
	}
	return res
}

// Shadow returns the shadow mask of m: blurred by sigma and moved by
// (dx, dy) device pixels. Offsets are rounded to whole pixels.
func Shadow(m *image.Alpha, sigma, dx, dy float64) *image.Alpha {
	out := BlurAlpha(m, sigma)
	off := image.Pt(round(dx), round(dy))
	out.Rect = out.Rect.Add(off)
	return out
}

// AlphaOf extracts the alpha channel of the premultiplied image img.
func AlphaOf(img *image.RGBA) *image.Alpha {
	m := image.NewAlpha(img.Rect)
	for y := 0; y < img.Rect.Dy(); y++ {
		src := img.Pix[y*img.Stride:]
		dst := m.Pix[y*m.Stride:]
		for x := 0; x < img.Rect.Dx(); x++ {
			dst[x] = src[x*4+3]
		}
	}
	return m
}

func round(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
