package host

import (
	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/imagecodec"
)

func (r *Runtime) assetImage(asset Handle) *canvas.Image {
	a, ok := get(r.assets, "asset", asset)
	if !ok {
		return nil
	}
	return a.Image()
}

// DrawImage draws the image behind asset at its natural size.
func (r *Runtime) DrawImage(ctx, asset Handle, dx, dy float64) Handle {
	img := r.assetImage(asset)
	if img == nil {
		return ctx
	}
	return r.withContext(ctx, func(c *canvas.Context) { c.DrawImage(img, dx, dy) })
}

// DrawImageScaled draws the image behind asset into (dx, dy, dw, dh).
func (r *Runtime) DrawImageScaled(ctx, asset Handle, dx, dy, dw, dh float64) Handle {
	img := r.assetImage(asset)
	if img == nil {
		return ctx
	}
	return r.withContext(ctx, func(c *canvas.Context) { c.DrawImageScaled(img, dx, dy, dw, dh) })
}

// DrawImageRect draws the source rectangle of the image behind asset
// into the destination rectangle.
func (r *Runtime) DrawImageRect(ctx, asset Handle, sx, sy, sw, sh, dx, dy, dw, dh float64) Handle {
	img := r.assetImage(asset)
	if img == nil {
		return ctx
	}
	return r.withContext(ctx, func(c *canvas.Context) { c.DrawImageRect(img, sx, sy, sw, sh, dx, dy, dw, dh) })
}

// DrawImageEncoded decodes PNG, JPEG, GIF, BMP, TIFF or WebP data and
// draws it at (dx, dy).
func (r *Runtime) DrawImageEncoded(ctx Handle, data []byte, dx, dy float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.DrawImageBytes(data, dx, dy) })
}

// DrawImagePixels draws a width x height premultiplied RGBA buffer at
// (dx, dy).
func (r *Runtime) DrawImagePixels(ctx Handle, pix []byte, width, height int, dx, dy float64) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.DrawImagePixels(pix, width, height, dx, dy) })
}

// DrawImagePixelsRect draws the source rectangle of a premultiplied RGBA
// buffer into the destination rectangle.
func (r *Runtime) DrawImagePixelsRect(ctx Handle, pix []byte, width, height int, sx, sy, sw, sh, dx, dy, dw, dh float64) Handle {
	img, err := canvas.NewImage(width, height, pix)
	if err != nil {
		canvas.Logger().Debug("host: invalid image pixels", "err", err)
		return ctx
	}
	return r.withContext(ctx, func(c *canvas.Context) { c.DrawImageRect(img, sx, sy, sw, sh, dx, dy, dw, dh) })
}

// PutImageData writes width x height premultiplied RGBA pixels at device
// pixel (x, y).
func (r *Runtime) PutImageData(ctx Handle, data []byte, width, height, x, y int) Handle {
	d := &canvas.ImageData{Width: width, Height: height, Data: data}
	return r.withContext(ctx, func(c *canvas.Context) { c.PutImageData(d, x, y) })
}

// PutImageDataDirty writes the dirty rectangle of the pixels.
func (r *Runtime) PutImageDataDirty(ctx Handle, data []byte, width, height, x, y, dirtyX, dirtyY, dirtyW, dirtyH int) Handle {
	d := &canvas.ImageData{Width: width, Height: height, Data: data}
	return r.withContext(ctx, func(c *canvas.Context) { c.PutImageDataDirty(d, x, y, dirtyX, dirtyY, dirtyW, dirtyH) })
}

// GetImageData reads the device rectangle (x, y, w, h) as premultiplied
// RGBA. It returns nil when ctx is not live.
func (r *Runtime) GetImageData(ctx Handle, x, y, w, h int) []byte {
	c, ok := r.context(ctx)
	if !ok {
		return nil
	}
	return c.GetImageData(x, y, w, h).Data
}

// CreateImageData returns w x h transparent black pixels.
func (r *Runtime) CreateImageData(w, h int) []byte {
	return canvas.NewImageData(w, h).Data
}

// Flush submits pending drawing.
func (r *Runtime) Flush(ctx Handle) Handle {
	return r.withContext(ctx, func(c *canvas.Context) { c.Flush() })
}

// Resize replaces the surface of ctx. Invalid sizes are ignored.
func (r *Runtime) Resize(ctx Handle, width, height int) Handle {
	return r.withContext(ctx, func(c *canvas.Context) {
		if err := c.Resize(width, height); err != nil {
			canvas.Logger().Debug("host: resize ignored", "err", err)
		}
	})
}

// ToData returns the surface pixels as premultiplied RGBA.
func (r *Runtime) ToData(ctx Handle) []byte {
	c, ok := r.context(ctx)
	if !ok {
		return nil
	}
	return c.ToData()
}

// ToDataURL encodes the surface as a data URL.
func (r *Runtime) ToDataURL(ctx Handle, mime string, quality int) string {
	c, ok := r.context(ctx)
	if !ok {
		return "data:,"
	}
	return c.ToDataURL(mime, quality)
}

// CreateImageAsset returns an empty image asset.
func (r *Runtime) CreateImageAsset() Handle { return r.assets.Insert(imagecodec.NewAsset()) }

// CreateImageAssetFromContext returns an asset holding a snapshot of the
// surface of ctx, or Null when ctx is not live.
func (r *Runtime) CreateImageAssetFromContext(ctx Handle) Handle {
	c, ok := r.context(ctx)
	if !ok {
		return Null
	}
	s := c.Surface()
	w := int(float64(s.Width()) * s.Scale())
	h := int(float64(s.Height()) * s.Scale())
	img, err := canvas.NewImage(w, h, c.ToData())
	if err != nil {
		canvas.Logger().Debug("host: snapshot failed", "err", err)
		return Null
	}
	return r.assets.Insert(imagecodec.AssetFromImage(img.RGBA()))
}

// ImageAsset returns the asset behind h.
func (r *Runtime) ImageAsset(h Handle) (*imagecodec.Asset, bool) { return r.assets.Get(h) }

// ReleaseImageAsset frees the asset behind h.
func (r *Runtime) ReleaseImageAsset(h Handle) bool {
	_, ok := r.assets.Remove(h)
	return ok
}

func (r *Runtime) withAsset(h Handle, fn func(a *imagecodec.Asset)) Handle {
	if a, ok := get(r.assets, "asset", h); ok {
		fn(a)
	}
	return h
}

// ImageAssetLoadFile loads an encoded image file into the asset.
func (r *Runtime) ImageAssetLoadFile(h Handle, path string) bool {
	ok := false
	r.withAsset(h, func(a *imagecodec.Asset) { ok = a.LoadFile(path) })
	return ok
}

// ImageAssetLoadBytes loads encoded image data into the asset.
func (r *Runtime) ImageAssetLoadBytes(h Handle, data []byte) bool {
	ok := false
	r.withAsset(h, func(a *imagecodec.Asset) { ok = a.LoadBytes(data) })
	return ok
}

// ImageAssetSize returns the asset's width and height.
func (r *Runtime) ImageAssetSize(h Handle) (width, height int) {
	r.withAsset(h, func(a *imagecodec.Asset) { width, height = a.Width(), a.Height() })
	return width, height
}

// ImageAssetScale resizes the asset.
func (r *Runtime) ImageAssetScale(h Handle, width, height int) Handle {
	return r.withAsset(h, func(a *imagecodec.Asset) { a.Scale(width, height) })
}

// ImageAssetFlipX mirrors the asset horizontally in place.
func (r *Runtime) ImageAssetFlipX(h Handle) Handle {
	return r.withAsset(h, func(a *imagecodec.Asset) { a.FlipX() })
}

// ImageAssetFlipY mirrors the asset vertically in place.
func (r *Runtime) ImageAssetFlipY(h Handle) Handle {
	return r.withAsset(h, func(a *imagecodec.Asset) { a.FlipY() })
}

// ImageAssetFlippedX returns a new asset mirrored horizontally, or Null.
func (r *Runtime) ImageAssetFlippedX(h Handle) Handle {
	out := Null
	r.withAsset(h, func(a *imagecodec.Asset) {
		if c := a.FlippedX(); c != nil {
			out = r.assets.Insert(c)
		}
	})
	return out
}

// ImageAssetFlippedY returns a new asset mirrored vertically, or Null.
func (r *Runtime) ImageAssetFlippedY(h Handle) Handle {
	out := Null
	r.withAsset(h, func(a *imagecodec.Asset) {
		if c := a.FlippedY(); c != nil {
			out = r.assets.Insert(c)
		}
	})
	return out
}

// ImageAssetBytes returns the asset pixels as straight RGBA.
func (r *Runtime) ImageAssetBytes(h Handle) []byte {
	var b []byte
	r.withAsset(h, func(a *imagecodec.Asset) { b = a.Bytes() })
	return b
}

// ImageAssetSave writes the asset to path. format is 0 JPG, 1 PNG, 2 ICO,
// 3 BMP or 4 TIFF; other values write JPG.
func (r *Runtime) ImageAssetSave(h Handle, path string, format uint32) bool {
	ok := false
	r.withAsset(h, func(a *imagecodec.Asset) { ok = a.Save(path, imagecodec.OutputFormat(format)) })
	return ok
}

// ImageAssetError returns the asset's last error message.
func (r *Runtime) ImageAssetError(h Handle) string {
	var s string
	r.withAsset(h, func(a *imagecodec.Asset) { s = a.Err() })
	return s
}
