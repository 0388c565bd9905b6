// Package blend implements the canvas compositing operators and blend
// modes on premultiplied 8-bit pixels.
//
// Porter-Duff operators follow "Compositing Digital Images" (1984); the
// separable and non-separable modes follow W3C Compositing and Blending
// Level 1.
package blend

// Mode is a compositing operator or blend mode.
type Mode uint8

const (
	// Porter-Duff operators.
	ModeClear           Mode = iota // 0
	ModeSource                      // S
	ModeDestination                 // D
	ModeSourceOver                  // S + D*(1-Sa)
	ModeDestinationOver             // S*(1-Da) + D
	ModeSourceIn                    // S*Da
	ModeDestinationIn               // D*Sa
	ModeSourceOut                   // S*(1-Da)
	ModeDestinationOut              // D*(1-Sa)
	ModeSourceAtop                  // S*Da + D*(1-Sa)
	ModeDestinationAtop             // S*(1-Da) + D*Sa
	ModeXor                         // S*(1-Da) + D*(1-Sa)
	ModePlus                        // min(S+D, 1)

	// Separable blend modes.
	ModeMultiply
	ModeScreen
	ModeOverlay
	ModeDarken
	ModeLighten
	ModeColorDodge
	ModeColorBurn
	ModeHardLight
	ModeSoftLight
	ModeDifference
	ModeExclusion

	// Non-separable blend modes.
	ModeHue
	ModeSaturation
	ModeColor
	ModeLuminosity
)

// Func composites a premultiplied source pixel onto a premultiplied
// destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

var funcs = [...]Func{
	ModeClear:           clearOp,
	ModeSource:          source,
	ModeDestination:     destination,
	ModeSourceOver:      sourceOver,
	ModeDestinationOver: destinationOver,
	ModeSourceIn:        sourceIn,
	ModeDestinationIn:   destinationIn,
	ModeSourceOut:       sourceOut,
	ModeDestinationOut:  destinationOut,
	ModeSourceAtop:      sourceAtop,
	ModeDestinationAtop: destinationAtop,
	ModeXor:             xor,
	ModePlus:            plus,
	ModeMultiply:        separable(multiplyChan),
	ModeScreen:          separable(screenChan),
	ModeOverlay:         separable(overlayChan),
	ModeDarken:          separable(darkenChan),
	ModeLighten:         separable(lightenChan),
	ModeColorDodge:      separable(colorDodgeChan),
	ModeColorBurn:       separable(colorBurnChan),
	ModeHardLight:       separable(hardLightChan),
	ModeSoftLight:       separable(softLightChan),
	ModeDifference:      separable(differenceChan),
	ModeExclusion:       separable(exclusionChan),
	ModeHue:             nonSeparable(hue),
	ModeSaturation:      nonSeparable(saturation),
	ModeColor:           nonSeparable(color),
	ModeLuminosity:      nonSeparable(luminosity),
}

// Get returns the function for mode, or source-over for unknown modes.
func Get(mode Mode) Func {
	if int(mode) < len(funcs) {
		return funcs[mode]
	}
	return sourceOver
}

// Bounded reports whether mode leaves the destination untouched where
// the source is transparent. Unbounded operators (source-in, copy, ...)
// also affect pixels outside the drawn shape.
func Bounded(mode Mode) bool {
	switch mode {
	case ModeClear, ModeSource, ModeSourceIn, ModeDestinationIn, ModeSourceOut, ModeDestinationAtop:
		return false
	}
	return true
}

// Span composites one source color over a row of destination pixels.
// cov holds the per-pixel coverage; the result is interpolated between
// the destination and the fully composited pixel by coverage.
func Span(dst []byte, cov []byte, sr, sg, sb, sa byte, fn Func) {
	for i, c := range cov {
		if c == 0 {
			continue
		}
		p := dst[i*4 : i*4+4 : i*4+4]
		r, g, b, a := fn(sr, sg, sb, sa, p[0], p[1], p[2], p[3])
		if c == 255 {
			p[0], p[1], p[2], p[3] = r, g, b, a
			continue
		}
		p[0] = lerp(p[0], r, c)
		p[1] = lerp(p[1], g, c)
		p[2] = lerp(p[2], b, c)
		p[3] = lerp(p[3], a, c)
	}
}

// Pixel composites one source pixel with coverage onto dst[0:4].
func Pixel(dst []byte, sr, sg, sb, sa, cov byte, fn Func) {
	if cov == 0 {
		return
	}
	r, g, b, a := fn(sr, sg, sb, sa, dst[0], dst[1], dst[2], dst[3])
	if cov == 255 {
		dst[0], dst[1], dst[2], dst[3] = r, g, b, a
		return
	}
	dst[0] = lerp(dst[0], r, cov)
	dst[1] = lerp(dst[1], g, cov)
	dst[2] = lerp(dst[2], b, cov)
	dst[3] = lerp(dst[3], a, cov)
}
