package scrypt

// External order is the caller's flat layout: 32 sequential words per unit,
// b in words 0..15 and bx in words 16..31. Internal order is per-lane,
// matched to the shuffle graph of the active mixing permutation:
//
//   - Salsa: lane l, register k holds half-word 4*((k+l)&3) + l, a diagonal
//     interleave (each lane owns one word of every row of the 4x4 state).
//   - ChaCha: lane l, register k holds half-word 4*k + l, plain column order.
//
// Every component that touches lane state applies the same table; mixing a
// state loaded under the wrong table corrupts results silently.

// loadKeys reads unit's 32 words from external into internal order.
func loadKeys(buf []uint32, unit int, variant Variant) (b, bx half) {
	base := unit * UnitWords
	switch variant {
	case Salsa:
		for k := 0; k < 4; k++ {
			for l := 0; l < LanesPerUnit; l++ {
				w := 4*((k+l)&3) + l
				b[k][l] = buf[base+w]
				bx[k][l] = buf[base+HalfWords+w]
			}
		}
	case ChaCha:
		for k := 0; k < 4; k++ {
			for l := 0; l < LanesPerUnit; l++ {
				w := 4*k + l
				b[k][l] = buf[base+w]
				bx[k][l] = buf[base+HalfWords+w]
			}
		}
	}
	return
}

// storeKeys is the exact inverse of loadKeys.
func storeKeys(b, bx *half, buf []uint32, unit int, variant Variant) {
	base := unit * UnitWords
	switch variant {
	case Salsa:
		for k := 0; k < 4; k++ {
			for l := 0; l < LanesPerUnit; l++ {
				w := 4*((k+l)&3) + l
				buf[base+w] = b[k][l]
				buf[base+HalfWords+w] = bx[k][l]
			}
		}
	case ChaCha:
		for k := 0; k < 4; k++ {
			for l := 0; l < LanesPerUnit; l++ {
				w := 4*k + l
				buf[base+w] = b[k][l]
				buf[base+HalfWords+w] = bx[k][l]
			}
		}
	}
}
