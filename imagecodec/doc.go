// Package imagecodec decodes encoded images for a canvas and implements the
// image asset object: a loaded bitmap that can be scaled, flipped, read
// back as RGBA bytes and saved in several formats.
//
// Decoder plugs into a context so that DrawImageBytes accepts PNG, JPEG,
// GIF, BMP, TIFF and WebP data:
//
//	ctx, err := canvas.New(raster.NewProvider(), 300, 150, 1,
//	    canvas.WithImageDecoder(imagecodec.Decoder{}))
//
// Asset follows an error-string convention instead of returning errors
// from every call, so that handle-based hosts can poll Err after an
// operation:
//
//	var a imagecodec.Asset
//	if !a.LoadFile("photo.jpg") {
//	    log.Println(a.Err())
//	}
//	a.Scale(64, 64)
//	a.Save("thumb.png", imagecodec.PNG)
package imagecodec
