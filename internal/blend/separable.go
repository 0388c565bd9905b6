package blend

import "math"

// separable lifts a per-channel blend B(Cs, Cb) on straight colors to a
// premultiplied Func:
//
//	Co = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cs, Cb)
//	Ao = Sa + Da*(1 - Sa)
func separable(blendChan func(s, d byte) byte) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}
		both := mul(sa, da)
		mix := func(s, d byte) byte {
			b := blendChan(unpremul(s, sa), unpremul(d, da))
			return add(add(mul(d, inv(sa)), mul(s, inv(da))), mul(both, b))
		}
		return mix(sr, dr), mix(sg, dg), mix(sb, db), add(sa, mul(da, inv(sa)))
	}
}

func multiplyChan(s, d byte) byte { return mul(s, d) }

func screenChan(s, d byte) byte { return inv(mul(inv(s), inv(d))) }

func overlayChan(s, d byte) byte { return hardLightChan(d, s) }

func darkenChan(s, d byte) byte { return min(s, d) }

func lightenChan(s, d byte) byte { return max(s, d) }

func colorDodgeChan(s, d byte) byte {
	switch {
	case d == 0:
		return 0
	case s == 255:
		return 255
	}
	return byte(min(255, uint32(d)*255/uint32(inv(s))))
}

func colorBurnChan(s, d byte) byte {
	switch {
	case d == 255:
		return 255
	case s == 0:
		return 0
	}
	return inv(byte(min(255, uint32(inv(d))*255/uint32(s))))
}

func hardLightChan(s, d byte) byte {
	if s < 128 {
		return byte(min(255, 2*uint32(mul(s, d))))
	}
	return screenChan(byte(2*uint32(s)-255), d)
}

func softLightChan(s, d byte) byte {
	cs := float64(s) / 255
	cb := float64(d) / 255
	var r float64
	if cs <= 0.5 {
		r = cb - (1-2*cs)*cb*(1-cb)
	} else {
		dx := math.Sqrt(cb)
		if cb <= 0.25 {
			dx = ((16*cb-12)*cb + 4) * cb
		}
		r = cb + (2*cs-1)*(dx-cb)
	}
	return byte(math.Round(math.Max(0, math.Min(1, r)) * 255))
}

func differenceChan(s, d byte) byte {
	if s > d {
		return s - d
	}
	return d - s
}

func exclusionChan(s, d byte) byte {
	return byte(uint32(s) + uint32(d) - 2*uint32(mul(s, d)))
}
