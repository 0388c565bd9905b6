package imagecodec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// OutputFormat selects the encoding used by Asset.Save.
type OutputFormat uint32

// Output formats. Unknown values encode as JPG.
const (
	JPG OutputFormat = iota
	PNG
	ICO
	BMP
	TIFF
)

// JPEGQuality is the quality used for JPG output.
const JPEGQuality = 75

// maxIconSize is the largest edge an ICO directory entry can describe.
const maxIconSize = 256

// ErrIconTooLarge is returned when saving an image wider or taller than
// 256 pixels as ICO.
var ErrIconTooLarge = errors.New("imagecodec: icon larger than 256x256")

var formatNames = map[OutputFormat]string{
	JPG:  "jpg",
	PNG:  "png",
	ICO:  "ico",
	BMP:  "bmp",
	TIFF: "tiff",
}

// String returns the lower-case format name.
func (f OutputFormat) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return formatNames[JPG]
}

// ParseOutputFormat maps a name or file extension ("png", ".jpeg",
// "TIFF") to a format. Unknown names map to JPG.
func ParseOutputFormat(s string) OutputFormat {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "png":
		return PNG
	case "ico":
		return ICO
	case "bmp":
		return BMP
	case "tif", "tiff":
		return TIFF
	default:
		return JPG
	}
}

func encode(img image.Image, format OutputFormat) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case PNG:
		err = png.Encode(&buf, img)
	case ICO:
		err = encodeICO(&buf, img)
	case BMP:
		err = bmp.Encode(&buf, img)
	case TIFF:
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("imagecodec: encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// icoHeader and icoEntry are the little-endian ICONDIR and ICONDIRENTRY
// records. A single entry points at a PNG payload.
type icoHeader struct {
	Reserved, Type, Count uint16
}

type icoEntry struct {
	Width, Height, Colors, Reserved uint8
	Planes, BitCount                uint16
	Size, Offset                    uint32
}

func encodeICO(buf *bytes.Buffer, img image.Image) error {
	b := img.Bounds()
	if b.Dx() > maxIconSize || b.Dy() > maxIconSize {
		return fmt.Errorf("%dx%d: %w", b.Dx(), b.Dy(), ErrIconTooLarge)
	}
	var payload bytes.Buffer
	if err := png.Encode(&payload, img); err != nil {
		return err
	}
	// 256 is stored as 0.
	entry := icoEntry{
		Width:    uint8(b.Dx() % maxIconSize),
		Height:   uint8(b.Dy() % maxIconSize),
		Planes:   1,
		BitCount: 32,
		Size:     uint32(payload.Len()),
		Offset:   uint32(binary.Size(icoHeader{}) + binary.Size(icoEntry{})),
	}
	if err := binary.Write(buf, binary.LittleEndian, icoHeader{Type: 1, Count: 1}); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.LittleEndian, entry); err != nil {
		return err
	}
	_, err := buf.Write(payload.Bytes())
	return err
}
