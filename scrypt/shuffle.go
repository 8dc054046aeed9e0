package scrypt

import "math/bits"

// vec is one 32-bit register as seen across the four lanes of a processing
// group, indexed by lane. The group's whole state is register-major: four
// vecs per half, so lane l holds (b[0][l], b[1][l], b[2][l], b[3][l]).
type vec [LanesPerUnit]uint32

// half is one 512-bit half of a work unit in per-lane internal order.
type half [4]vec

// shfl exchanges a register within the quad: lane l reads the value held by
// lane (l+off)&3. Pure data movement between current register values, no
// memory involved, so there is no aliasing hazard.
func shfl(v vec, off int) vec {
	return vec{v[off&3], v[(off+1)&3], v[(off+2)&3], v[(off+3)&3]}
}

// broadcast returns lane src's value as seen by every lane of the group.
func broadcast(v vec, src int) uint32 {
	return v[src&3]
}

func (a vec) add(b vec) vec {
	for l := range a {
		a[l] += b[l]
	}
	return a
}

func (a vec) xor(b vec) vec {
	for l := range a {
		a[l] ^= b[l]
	}
	return a
}

func (a vec) rotl(k int) vec {
	for l := range a {
		a[l] = bits.RotateLeft32(a[l], k)
	}
	return a
}
