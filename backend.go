package canvas

// Backend is the vector graphics engine a Context draws through. It owns
// the transform and clip stack and rasterizes paths, images and text.
//
// Save and RestoreToCount follow the counted-save model: SaveCount starts
// at 1, every Save increments it, and RestoreToCount(n) pops saves until
// the count is n (counts below 1 are treated as 1).
//
// Drawing methods are best effort and never report errors.
type Backend interface {
	SaveCount() int
	Save()
	RestoreToCount(count int)

	// Matrix returns the current transform, device space included.
	Matrix() Matrix
	SetMatrix(m Matrix)

	// ClipPath intersects the clip with path using rule, anti-aliased.
	ClipPath(path *Path, rule FillRule)

	// DrawPath fills or strokes path. Fills use path's own fill rule.
	DrawPath(path *Path, paint *Paint, style PaintStyle)
	// DrawImageRect draws the src rectangle of img into dst.
	DrawImageRect(img *Image, src, dst Rect, paint *Paint)
	// DrawText draws a run of text with its alphabetic baseline starting
	// at (x, y).
	DrawText(text string, x, y float64, font Font, dir Direction, paint *Paint, style PaintStyle)
	// MeasureText returns the advance width of text in user units.
	MeasureText(text string, font Font, dir Direction) float64

	// ReadPixels copies the device rectangle (x, y, w, h) into dst as
	// premultiplied RGBA. It reports false when nothing could be read;
	// pixels outside the surface are left untouched in dst.
	ReadPixels(x, y, w, h int, dst []byte) bool
	// WritePixels replaces device pixels at (x, y) with img, ignoring the
	// transform, clip and blending.
	WritePixels(img *Image, x, y int)

	// Clear fills every pixel with c, ignoring the clip.
	Clear(c RGBA)
	// Flush submits pending work.
	Flush()
}

// Surface is a Backend with a fixed pixel size.
type Surface interface {
	Backend

	Width() int
	Height() int
	// Scale is the device pixel ratio the surface was created with.
	Scale() float64
}

// SurfaceProvider creates and exports surfaces. A Context never creates
// pixel storage itself.
type SurfaceProvider interface {
	// Create returns a surface of width x height CSS pixels at scale
	// device pixels per CSS pixel.
	Create(width, height int, scale float64) (Surface, error)
	// Resize returns a surface of the new size holding the old pixels at
	// the origin. The old surface must not be used afterwards.
	Resize(s Surface, width, height int, scale float64) (Surface, error)
	Flush(s Surface)
	// SnapshotPixels returns a copy of the premultiplied RGBA pixels.
	SnapshotPixels(s Surface) []byte
	// Encode exports the surface. quality is 0..100 for lossy formats.
	Encode(s Surface, format ImageFormat, quality int) ([]byte, error)
}
