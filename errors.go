package canvas

import "errors"

// Errors returned by creation operations. Per-draw operations never fail.
var (
	// ErrInvalidSize is returned when a surface is requested with a
	// non-positive width, height or scale.
	ErrInvalidSize = errors.New("invalid surface size")

	// ErrInvalidGradient is returned for gradients with non-finite
	// geometry, negative radii or out-of-range stops.
	ErrInvalidGradient = errors.New("invalid gradient")

	// ErrInvalidPattern is returned when a pattern has no image.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidImage is returned for pixel buffers that do not match
	// their declared size.
	ErrInvalidImage = errors.New("invalid image")

	// ErrUnknownProvider is returned when no surface provider is
	// registered under the requested name.
	ErrUnknownProvider = errors.New("unknown surface provider")

	// ErrUnsupportedFormat is returned by providers that cannot encode
	// the requested image format.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrNoProvider is returned by Resize on a Context created with
	// NewForSurface.
	ErrNoProvider = errors.New("context has no surface provider")
)
