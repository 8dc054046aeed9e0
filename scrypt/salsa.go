package scrypt

// salsaCoreXor computes dst = Salsa20/8(dst ^ src) across the four lanes of
// a group, with both halves in internal (diagonal) order.
//
// In the diagonal interleave every lane holds one full column of the 4x4
// state, so a column half-round is four chained xor-rotate-add steps on the
// lane's own registers. The exchange between half-rounds lines up each
// lane's registers with one full row; a second exchange restores column
// order at the end of the double round.
func salsaCoreXor(dst, src *half) {
	for k := range dst {
		dst[k] = dst[k].xor(src[k])
	}
	x := *dst

	for i := 0; i < 4; i++ {
		// column half-round
		x[1] = x[1].xor(x[0].add(x[3]).rotl(7))
		x[2] = x[2].xor(x[1].add(x[0]).rotl(9))
		x[3] = x[3].xor(x[2].add(x[1]).rotl(13))
		x[0] = x[0].xor(x[3].add(x[2]).rotl(18))

		salsaExchange(&x)

		// row half-round, same chain on the exchanged registers
		x[1] = x[1].xor(x[0].add(x[3]).rotl(7))
		x[2] = x[2].xor(x[1].add(x[0]).rotl(9))
		x[3] = x[3].xor(x[2].add(x[1]).rotl(13))
		x[0] = x[0].xor(x[3].add(x[2]).rotl(18))

		salsaExchange(&x)
	}

	for k := range dst {
		dst[k] = dst[k].add(x[k])
	}
}

// salsaExchange trades registers with sibling lanes so that the next
// half-round's dependencies line up without leaving registers. Register 0
// (the diagonal itself) stays put. Self-inverse.
func salsaExchange(x *half) {
	x[1], x[3] = shfl(x[3], 1), shfl(x[1], 3)
	x[2] = shfl(x[2], 2)
}
