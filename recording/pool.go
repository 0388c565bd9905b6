package recording

import "github.com/gogpu/canvas"

// ImageRef is a reference to an image in an ImagePool.
type ImageRef uint32

// ImagePool stores the images referenced by commands. Adding the same
// *canvas.Image twice returns the same reference; the pixels are copied
// once so later changes by the caller do not alter the recording.
//
// ImagePool is not safe for concurrent use.
type ImagePool struct {
	images []*canvas.Image
	refs   map[*canvas.Image]ImageRef
}

func newImagePool() *ImagePool {
	return &ImagePool{refs: make(map[*canvas.Image]ImageRef)}
}

// Add stores img and returns its reference.
func (p *ImagePool) Add(img *canvas.Image) ImageRef {
	if ref, ok := p.refs[img]; ok {
		return ref
	}
	cp := &canvas.Image{Width: img.Width, Height: img.Height, Pix: append([]byte(nil), img.Pix...)}
	// #nosec G115 -- pool size is bounded by available memory
	ref := ImageRef(uint32(len(p.images)))
	p.images = append(p.images, cp)
	p.refs[img] = ref
	return ref
}

// Get returns the image for ref, or nil when ref is out of range.
func (p *ImagePool) Get(ref ImageRef) *canvas.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// Len returns the number of pooled images.
func (p *ImagePool) Len() int { return len(p.images) }
