package blend

func clearOp(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func source(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func destination(_, _, _, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	k := inv(sa)
	return add(sr, mul(dr, k)), add(sg, mul(dg, k)), add(sb, mul(db, k)), add(sa, mul(da, k))
}

func destinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sourceOver(dr, dg, db, da, sr, sg, sb, sa)
}

func sourceIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mul(sr, da), mul(sg, da), mul(sb, da), mul(sa, da)
}

func destinationIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mul(dr, sa), mul(dg, sa), mul(db, sa), mul(da, sa)
}

func sourceOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	k := inv(da)
	return mul(sr, k), mul(sg, k), mul(sb, k), mul(sa, k)
}

func destinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	k := inv(sa)
	return mul(dr, k), mul(dg, k), mul(db, k), mul(da, k)
}

// sourceAtop keeps the destination alpha.
func sourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	k := inv(sa)
	return add(mul(sr, da), mul(dr, k)),
		add(mul(sg, da), mul(dg, k)),
		add(mul(sb, da), mul(db, k)),
		da
}

// destinationAtop keeps the source alpha.
func destinationAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	k := inv(da)
	return add(mul(sr, k), mul(dr, sa)),
		add(mul(sg, k), mul(dg, sa)),
		add(mul(sb, k), mul(db, sa)),
		sa
}

func xor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	ks, kd := inv(da), inv(sa)
	return add(mul(sr, ks), mul(dr, kd)),
		add(mul(sg, ks), mul(dg, kd)),
		add(mul(sb, ks), mul(db, kd)),
		add(mul(sa, ks), mul(da, kd))
}

// plus is the canvas "lighter" operator.
func plus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return add(sr, dr), add(sg, dg), add(sb, db), add(sa, da)
}
