package blend

// div255 divides x by 255 exactly for x in [0, 65535], using Alvy Ray
// Smith's shift formula.
func div255(x uint32) uint32 {
	x++
	return (x + x>>8) >> 8
}

func mul(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

func inv(x byte) byte { return 255 - x }

func add(a, b byte) byte {
	if s := uint32(a) + uint32(b); s < 255 {
		return byte(s)
	}
	return 255
}

// lerp moves from a towards b by t/255.
func lerp(a, b, t byte) byte {
	if b >= a {
		return a + mul(b-a, t)
	}
	return a - mul(a-b, t)
}

// unpremul recovers a straight channel value.
func unpremul(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}

// Mul returns a*b/255, rounded.
func Mul(a, b byte) byte { return mul(a, b) }
