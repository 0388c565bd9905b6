// Package canvas implements the drawing core of an HTML5 Canvas 2D
// context.
//
// # Overview
//
// A Context owns the canvas drawing state (styles, line settings, shadow,
// smoothing, font, clip and transform) and translates canvas calls into
// operations on a Surface. Surfaces come from a SurfaceProvider registered
// by name; the raster package provides a software rasterizer and the
// recording package captures the command stream for inspection.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/canvas"
//		_ "github.com/gogpu/canvas/raster"
//	)
//
//	p, _ := canvas.NewSurfaceProvider("raster")
//	ctx, _ := canvas.New(p, 300, 150, 1)
//
//	ctx.SetFillStyle(canvas.Solid(canvas.RGB(1, 0, 0)))
//	ctx.BeginPath()
//	ctx.Arc(150, 75, 50, 0, 2*math.Pi, false)
//	ctx.Fill()
//
//	url := ctx.ToDataURL("image/png", 92)
//
// # Coordinate System
//
// The origin is the top-left corner, x grows right and y grows down.
// Angles are in radians and grow clockwise on screen. The device scale
// multiplies every transform so that the same drawing code serves high
// density surfaces.
//
// # Packages
//
//   - raster: software surfaces backed by premultiplied RGBA pixels
//   - recording: surfaces that record commands instead of pixels
//   - pathdata: SVG path data parsing into a Path
//   - imagecodec: image decoding, resizing and encoding
//   - textcodec: WHATWG text encoders and decoders
//   - host: a handle-based runtime over all of the above
package canvas
