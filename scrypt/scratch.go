package scrypt

// tileWidth fixed row width of the 2-D tiled view, in 128-bit texels.
// Keeps per-row addresses inside hardware addressing limits.
const tileWidth = 32768

// scratchReader is the pluggable second-phase read path over one warp's
// scratch region. read4 returns the four words starting at a 128-bit
// aligned word offset; every implementation returns bit-identical data for
// the same offset, only access latency differs.
type scratchReader interface {
	read4(off uint32) [4]uint32
}

// directPath indexes the scratch words directly.
type directPath struct {
	mem []uint32
}

func (p directPath) read4(off uint32) [4]uint32 {
	return [4]uint32(p.mem[off : off+4])
}

// linearPath addresses the region as a 1-D run of 128-bit texels.
type linearPath struct {
	mem    []uint32
	texels uint32
}

func bindLinear(mem []uint32) linearPath {
	return linearPath{mem: mem, texels: uint32(len(mem) / 4)}
}

func (p linearPath) read4(off uint32) [4]uint32 {
	t := (off >> 2) % p.texels
	return [4]uint32(p.mem[t<<2 : t<<2+4])
}

// tiledPath addresses the region as a 2-D grid of 128-bit texels with the
// row width capped at tileWidth.
type tiledPath struct {
	mem                  []uint32
	width, height, pitch uint32
}

// bindTiled rebalances the requested geometry, preserving the texel count,
// towards rows of exactly tileWidth. The width never exceeds tileWidth:
// regions smaller than one full row degrade to a single shorter row, and
// texel counts that are an odd multiple of the tile width settle on the
// widest halving below it.
func bindTiled(mem []uint32, width, height uint32) tiledPath {
	for width > tileWidth {
		width >>= 1
		height <<= 1
	}
	for width<<1 <= tileWidth && height > 1 {
		width <<= 1
		height >>= 1
	}
	return tiledPath{mem: mem, width: width, height: height, pitch: width}
}

func (p tiledPath) read4(off uint32) [4]uint32 {
	t := (off >> 2) % (p.width * p.height)
	x := t % p.width
	y := t / p.width
	base := (y*p.pitch + x) << 2
	return [4]uint32(p.mem[base : base+4])
}

// scratchStore writes the group state to the slot at base as eight 128-bit
// lane writes, each lane contributing its own registers, wrapped modulo the
// region size. An under-sized region therefore overlaps slots and corrupts
// hashes instead of faulting.
func scratchStore(mem []uint32, base uint32, b, bx *half) {
	n := uint32(len(mem))
	for l := 0; l < LanesPerUnit; l++ {
		off := (base + uint32(l*4)) % n
		mem[off+0] = b[0][l]
		mem[off+1] = b[1][l]
		mem[off+2] = b[2][l]
		mem[off+3] = b[3][l]

		off = (base + uint32(HalfWords+l*4)) % n
		mem[off+0] = bx[0][l]
		mem[off+1] = bx[1][l]
		mem[off+2] = bx[2][l]
		mem[off+3] = bx[3][l]
	}
}

// scratchLoad reads a full slot back through the active read path.
func scratchLoad(rd scratchReader, size, base uint32, b, bx *half) {
	for l := 0; l < LanesPerUnit; l++ {
		q := rd.read4((base + uint32(l*4)) % size)
		for k := range b {
			b[k][l] = q[k]
		}
		q = rd.read4((base + uint32(HalfWords+l*4)) % size)
		for k := range bx {
			bx[k][l] = q[k]
		}
	}
}

// scratchXor folds a slot into the group state through the active read path.
func scratchXor(rd scratchReader, size, base uint32, b, bx *half) {
	for l := 0; l < LanesPerUnit; l++ {
		q := rd.read4((base + uint32(l*4)) % size)
		for k := range b {
			b[k][l] ^= q[k]
		}
		q = rd.read4((base + uint32(HalfWords+l*4)) % size)
		for k := range bx {
			bx[k][l] ^= q[k]
		}
	}
}
