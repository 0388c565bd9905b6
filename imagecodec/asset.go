package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/canvas"
)

// ErrNoImage is the message Err reports after an operation on an asset
// with nothing loaded.
const ErrNoImage = "No Image loaded"

// Asset holds a decoded bitmap in straight (non-premultiplied) RGBA.
// The zero value is an empty asset ready to load. Operations report
// failure through Err rather than returning errors, and each operation
// clears the previous message. An Asset is safe for concurrent use.
type Asset struct {
	mu  sync.Mutex
	img *image.NRGBA
	err string
}

// NewAsset returns an empty asset.
func NewAsset() *Asset { return &Asset{} }

// AssetFromImage returns an asset holding a straight-alpha copy of img.
func AssetFromImage(img image.Image) *Asset {
	return &Asset{img: toNRGBA(img)}
}

// Err returns the message of the last failed operation, or "" if the last
// operation succeeded.
func (a *Asset) Err() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// IsEmpty reports whether nothing is loaded.
func (a *Asset) IsEmpty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.img == nil
}

// Width returns the bitmap width, or 0 when empty.
func (a *Asset) Width() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.img == nil {
		return 0
	}
	return a.img.Rect.Dx()
}

// Height returns the bitmap height, or 0 when empty.
func (a *Asset) Height() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.img == nil {
		return 0
	}
	return a.img.Rect.Dy()
}

// LoadFile replaces the bitmap with the decoded contents of the file at
// path. On failure the asset is left empty.
func (a *Asset) LoadFile(path string) bool {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.img = nil
		a.err = err.Error()
		return false
	}
	return a.LoadBytes(data)
}

// LoadBytes replaces the bitmap with the decoded data. On failure the
// asset is left empty.
func (a *Asset) LoadBytes(data []byte) bool {
	img, err := decode(data)
	a.mu.Lock()
	defer a.mu.Unlock()
	a.img = nil
	if err != nil {
		a.err = err.Error()
		return false
	}
	a.img = toNRGBA(img)
	a.err = ""
	return true
}

// Scale resizes the bitmap to exactly width x height with a bilinear
// filter. Non-positive sizes leave it unchanged.
func (a *Asset) Scale(width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.ready() || width <= 0 || height <= 0 {
		return
	}
	if a.img.Rect.Dx() == width && a.img.Rect.Dy() == height {
		return
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Rect, a.img, a.img.Rect, xdraw.Src, nil)
	a.img = dst
}

// FlipX mirrors the bitmap horizontally in place.
func (a *Asset) FlipX() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ready() {
		flipX(a.img)
	}
}

// FlipY mirrors the bitmap vertically in place.
func (a *Asset) FlipY() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ready() {
		flipY(a.img)
	}
}

// FlippedX returns a horizontally mirrored copy, or nil when empty.
func (a *Asset) FlippedX() *Asset {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.ready() {
		return nil
	}
	c := cloneNRGBA(a.img)
	flipX(c)
	return &Asset{img: c}
}

// FlippedY returns a vertically mirrored copy, or nil when empty.
func (a *Asset) FlippedY() *Asset {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.ready() {
		return nil
	}
	c := cloneNRGBA(a.img)
	flipY(c)
	return &Asset{img: c}
}

// Bytes returns a copy of the pixels as straight RGBA8 rows of Width*4
// bytes, or nil when empty.
func (a *Asset) Bytes() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.ready() {
		return nil
	}
	return bytes.Clone(a.img.Pix)
}

// Image returns the bitmap as a premultiplied canvas image, or nil when
// empty.
func (a *Asset) Image() *canvas.Image {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.ready() {
		return nil
	}
	return canvas.ImageFromGo(a.img)
}

// Save encodes the bitmap in format and writes it to path.
func (a *Asset) Save(path string, format OutputFormat) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.ready() {
		return false
	}
	data, err := encode(a.img, format)
	if err == nil {
		err = os.WriteFile(filepath.Clean(path), data, 0o644)
	}
	if err != nil {
		a.err = err.Error()
		return false
	}
	return true
}

// Encode returns the bitmap encoded in format.
func (a *Asset) Encode(format OutputFormat) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.ready() {
		return nil, fmt.Errorf("imagecodec: %s", ErrNoImage)
	}
	data, err := encode(a.img, format)
	if err != nil {
		a.err = err.Error()
	}
	return data, err
}

// ready clears the error and reports whether an image is loaded, setting
// the empty-asset message when it is not. a.mu must be held.
func (a *Asset) ready() bool {
	a.err = ""
	if a.img == nil {
		a.err = ErrNoImage
		return false
	}
	return true
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == n.Rect.Dx()*4 {
		return cloneNRGBA(n)
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst
}

func cloneNRGBA(img *image.NRGBA) *image.NRGBA {
	return &image.NRGBA{Pix: bytes.Clone(img.Pix), Stride: img.Stride, Rect: img.Rect}
}

func flipX(img *image.NRGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			lp, rp := row[l*4:l*4+4], row[r*4:r*4+4]
			for i := range 4 {
				lp[i], rp[i] = rp[i], lp[i]
			}
		}
	}
}

func flipY(img *image.NRGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	tmp := make([]byte, w*4)
	for t, b := 0, h-1; t < b; t, b = t+1, b-1 {
		top := img.Pix[t*img.Stride : t*img.Stride+w*4]
		bot := img.Pix[b*img.Stride : b*img.Stride+w*4]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}
