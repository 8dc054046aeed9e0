package utils

import "math/bits"

func PreviousPowerOfTwo(x uint64) int {
	if x == 0 {
		return 0
	}
	return 1 << (64 - bits.LeadingZeros64(x) - 1)
}

func IsPowerOfTwo(x uint64) bool {
	return x > 0 && x&(x-1) == 0
}
