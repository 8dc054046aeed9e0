package scrypt

// chachaCoreXor computes dst = ChaCha20/8(dst ^ src) across the four lanes
// of a group, with both halves in internal (column) order.
//
// Each lane holds one column of the 4x4 state, so the column half-round is
// a whole quarter-round on the lane's own registers. Diagonalizing rotates
// registers 1..3 among the lanes before the diagonal half-round; the inverse
// rotation restores column order at the end of the double round.
func chachaCoreXor(dst, src *half) {
	for k := range dst {
		dst[k] = dst[k].xor(src[k])
	}
	x := *dst

	for i := 0; i < 4; i++ {
		chachaQuarter(&x)

		x[1] = shfl(x[1], 1)
		x[2] = shfl(x[2], 2)
		x[3] = shfl(x[3], 3)

		chachaQuarter(&x)

		x[1] = shfl(x[1], 3)
		x[2] = shfl(x[2], 2)
		x[3] = shfl(x[3], 1)
	}

	for k := range dst {
		dst[k] = dst[k].add(x[k])
	}
}

func chachaQuarter(x *half) {
	x[0] = x[0].add(x[1])
	x[3] = x[3].xor(x[0]).rotl(16)
	x[2] = x[2].add(x[3])
	x[1] = x[1].xor(x[2]).rotl(12)
	x[0] = x[0].add(x[1])
	x[3] = x[3].xor(x[0]).rotl(8)
	x[2] = x[2].add(x[3])
	x[1] = x[1].xor(x[2]).rotl(7)
}
