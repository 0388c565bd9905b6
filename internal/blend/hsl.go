package blend

import "math"

// rgb is a straight color with components in [0, 1].
type rgb struct{ r, g, b float64 }

func lum(c rgb) float64 { return 0.3*c.r + 0.59*c.g + 0.11*c.b }

func sat(c rgb) float64 {
	return max(c.r, c.g, c.b) - min(c.r, c.g, c.b)
}

func clipColor(c rgb) rgb {
	l := lum(c)
	n := min(c.r, c.g, c.b)
	x := max(c.r, c.g, c.b)
	if n < 0 {
		c = rgb{l + (c.r-l)*l/(l-n), l + (c.g-l)*l/(l-n), l + (c.b-l)*l/(l-n)}
	}
	if x > 1 {
		c = rgb{l + (c.r-l)*(1-l)/(x-l), l + (c.g-l)*(1-l)/(x-l), l + (c.b-l)*(1-l)/(x-l)}
	}
	return c
}

func setLum(c rgb, l float64) rgb {
	d := l - lum(c)
	return clipColor(rgb{c.r + d, c.g + d, c.b + d})
}

func setSat(c rgb, s float64) rgb {
	ch := [3]*float64{&c.r, &c.g, &c.b}
	// order the channel pointers min, mid, max
	if *ch[0] > *ch[1] {
		ch[0], ch[1] = ch[1], ch[0]
	}
	if *ch[1] > *ch[2] {
		ch[1], ch[2] = ch[2], ch[1]
	}
	if *ch[0] > *ch[1] {
		ch[0], ch[1] = ch[1], ch[0]
	}
	lo, mid, hi := *ch[0], *ch[1], *ch[2]
	if hi > lo {
		*ch[1] = (mid - lo) * s / (hi - lo)
		*ch[2] = s
	} else {
		*ch[1], *ch[2] = 0, 0
	}
	*ch[0] = 0
	return c
}

func hue(s, b rgb) rgb        { return setLum(setSat(s, sat(b)), lum(b)) }
func saturation(s, b rgb) rgb { return setLum(setSat(b, sat(s)), lum(b)) }
func color(s, b rgb) rgb      { return setLum(s, lum(b)) }
func luminosity(s, b rgb) rgb { return setLum(b, lum(s)) }

// nonSeparable lifts a whole-color blend to a premultiplied Func using
// the same compositing formula as separable.
func nonSeparable(fn func(s, b rgb) rgb) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}
		straight := func(r, g, b, a byte) rgb {
			k := 1 / float64(a)
			return rgb{float64(r) * k, float64(g) * k, float64(b) * k}
		}
		out := fn(straight(sr, sg, sb, sa), straight(dr, dg, db, da))
		both := float64(sa) * float64(da) / 255
		mix := func(s, d byte, v float64) byte {
			base := add(mul(d, inv(sa)), mul(s, inv(da)))
			return add(base, byte(math.Round(math.Max(0, math.Min(1, v))*both)))
		}
		return mix(sr, dr, out.r), mix(sg, dg, out.g), mix(sb, db, out.b), add(sa, mul(da, inv(sa)))
	}
}
