package scrypt

// blockMix applies one scrypt BlockMix iteration to a group's state:
// b = Core8(b ^ bx), then bx = Core8(bx ^ b), with the core picked by the
// variant. Bit-for-bit the reference BlockMix with r=1.
func blockMix(b, bx *half, variant Variant) {
	if variant == ChaCha {
		chachaCoreXor(b, bx)
		chachaCoreXor(bx, b)
		return
	}
	salsaCoreXor(b, bx)
	salsaCoreXor(bx, b)
}

// launchContext carries the constants published for a run: iteration count,
// variant, scratch table and bound read paths. Immutable during a launch.
type launchContext struct {
	variant       Variant
	n             uint32
	groupsPerWarp int
	regions       [][]uint32
	readers       []scratchReader
}

// slot returns the warp region owning unit and the word offset of the
// unit's iteration slot i inside it.
func (lc *launchContext) slot(unit int, i uint32) (mem []uint32, base uint32) {
	mem = lc.regions[unit/lc.groupsPerWarp]
	inWarp := uint32(unit % lc.groupsPerWarp)
	return mem, (inWarp*lc.n + i) * SlotWords % uint32(len(mem))
}

// fillRange is the first-phase kernel body for one work unit: the
// sequential fill over iterations [begin, end).
//
// Slot 0 takes the unit's initial state straight from the input buffer;
// slot i >= 1 takes the state after i mixes. A launch starting past zero
// recovers the running state from the slot written by the previous
// iteration, which is the only read that crosses an iteration boundary.
func (lc *launchContext) fillRange(unit int, input []uint32, begin, end uint32) {
	var b, bx half

	if begin == 0 {
		b, bx = loadKeys(input, unit, lc.variant)
		mem, base := lc.slot(unit, 0)
		scratchStore(mem, base, &b, &bx)
		begin = 1
	} else {
		mem, base := lc.slot(unit, begin-1)
		scratchLoad(directPath{mem: mem}, uint32(len(mem)), base, &b, &bx)
	}

	for i := begin; i < end; i++ {
		blockMix(&b, &bx, lc.variant)
		mem, base := lc.slot(unit, i)
		scratchStore(mem, base, &b, &bx)
	}
}

// mixRange is the second-phase kernel body for one work unit: the
// pseudorandom read-xor-mix over iterations [begin, end).
//
// The very first iteration seeds from the last fill-phase slot plus one
// mix; later launches recover the running state from the output buffer,
// which doubles as hand-off storage between batches. The slot index for
// each iteration is the first bx word, broadcast from the group's first
// lane and masked with n-1.
func (lc *launchContext) mixRange(unit int, output []uint32, begin, end uint32) {
	var b, bx half

	warp := unit / lc.groupsPerWarp
	mem := lc.regions[warp]
	rd := lc.readers[warp]
	size := uint32(len(mem))

	if begin == 0 {
		_, base := lc.slot(unit, lc.n-1)
		scratchLoad(rd, size, base, &b, &bx)
		blockMix(&b, &bx, lc.variant)
	} else {
		b, bx = loadKeys(output, unit, lc.variant)
	}

	mask := lc.n - 1
	for i := begin; i < end; i++ {
		j := broadcast(bx[0], 0) & mask
		_, base := lc.slot(unit, j)
		scratchXor(rd, size, base, &b, &bx)
		blockMix(&b, &bx, lc.variant)
	}

	storeKeys(&b, &bx, output, unit, lc.variant)
}
