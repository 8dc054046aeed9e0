// Package scrypt implements the scrypt ROMix memory-hard loop as a
// cooperative four-lane computation, the way the GPU kernels split one
// 1024-bit work unit across the four threads of a quad.
//
// Each work unit owns 32 little-endian 32-bit words in the caller's flat
// buffers (two 512-bit halves b and bx) and a private region of N iteration
// slots inside a published scratch buffer. A processing group of four lanes
// holds the unit's state as register vectors and communicates exclusively
// through lane shuffles; groups never communicate with each other.
//
// The package performs no runtime validation: N must be a power of two and
// the scratch regions must be large enough, or the output is silently wrong.
// Callers that need those checks add them around this core (see the kdf
// package).
package scrypt

const (
	// LanesPerUnit cooperating lanes that jointly hold one work unit
	LanesPerUnit = 4

	// UnitWords 32-bit words per work unit, both halves
	UnitWords = 32

	// HalfWords words per 512-bit half
	HalfWords = UnitWords / 2

	// SlotWords scratchpad words occupied by one iteration snapshot
	SlotWords = UnitWords
)

// Variant selects the inner mixing permutation. Fixed for an entire run.
type Variant int

const (
	// Salsa scrypt BlockMix over the Salsa20/8 core
	Salsa = Variant(iota)
	// ChaCha scrypt-jane BlockMix over the ChaCha20/8 core
	ChaCha
)

func (v Variant) String() string {
	switch v {
	case Salsa:
		return "salsa"
	case ChaCha:
		return "chacha"
	}
	return "unknown"
}

// CacheMode selects the backing store for second-phase scratch reads.
// A throughput choice only: every mode returns bit-identical data.
type CacheMode int

const (
	// CacheNone direct indexed loads from the scratch region
	CacheNone = CacheMode(iota)
	// CacheLinear 1-D texel view over the scratch region
	CacheLinear
	// CacheTiled 2-D tiled texel view with a fixed row width
	CacheTiled
)

func (m CacheMode) String() string {
	switch m {
	case CacheNone:
		return "none"
	case CacheLinear:
		return "linear"
	case CacheTiled:
		return "tiled"
	}
	return "unknown"
}
