// Package raster is the CPU backend for canvas contexts.
//
// A Surface rasterizes into a premultiplied *image.RGBA. Paths are fed
// to srwiley/rasterx fillers and dashers, whose output drives this
// package's coverage Scanner; the scanner supports the nonzero and
// evenodd fill rules and produces an anti-aliased alpha mask. Masks are
// composited with the canvas blend modes, through the clip mask of the
// current state.
//
// Text is shaped with go-text/typesetting and drawn from sfnt glyph
// outlines. The Go fonts are built in; more can be added to a
// FontLibrary.
//
// Importing the package registers the provider under the name "raster":
//
//	import _ "github.com/gogpu/canvas/raster"
//
//	provider, err := canvas.NewSurfaceProvider("raster")
package raster
