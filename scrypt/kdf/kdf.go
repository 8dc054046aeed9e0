// Package kdf wraps the scrypt core with the PBKDF2-HMAC-SHA256 pre- and
// post-processing that turns raw ROMix states into derived keys, for the
// fixed r=1 geometry the core supports. It is also where the core's
// documented preconditions become checked errors: N is validated here, at
// the boundary, so the core itself stays branch-free.
package kdf

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/pbkdf2"

	"github.com/hwf452/CudaMiner/scrypt"
	"github.com/hwf452/CudaMiner/utils"
)

// blockBytes bytes per work-unit block (32 little-endian words)
const blockBytes = scrypt.UnitWords * 4

var (
	ErrInvalidN = errors.New("kdf: N must be a power of two greater than 1")
	ErrRun      = errors.New("kdf: device run failed")
)

// Key derives keyLen bytes from password and salt with cost parameter N,
// equivalent to scrypt with r=1, p=1 under the Salsa variant.
func Key(password, salt []byte, n, keyLen int) ([]byte, error) {
	keys, err := KeyBatch([][]byte{password}, salt, n, keyLen)
	if err != nil {
		return nil, err
	}
	return keys[0], nil
}

// KeyBatch derives one key per password through a single batched run, all
// work units sharing the salt and cost parameter. This is the shape the
// mining drivers use: thousands of independent units per launch.
func KeyBatch(passwords [][]byte, salt []byte, n, keyLen int) ([][]byte, error) {
	if n <= 1 || !utils.IsPowerOfTwo(uint64(n)) {
		return nil, ErrInvalidN
	}

	units := len(passwords)
	if units == 0 {
		return nil, nil
	}

	input := make([]uint32, units*scrypt.UnitWords)
	output := make([]uint32, units*scrypt.UnitWords)
	blocks := make([][]byte, units)

	for i, password := range passwords {
		block := pbkdf2.Key(password, salt, 1, blockBytes, sha256.New)
		blocks[i] = block
		for w := 0; w < scrypt.UnitWords; w++ {
			input[i*scrypt.UnitWords+w] = binary.LittleEndian.Uint32(block[w*4:])
		}
	}

	engine := scrypt.NewEngine()
	defer engine.Close()
	engine.SetScratchRegions([][]uint32{make([]uint32, units*n*scrypt.SlotWords)})

	cfg := scrypt.Config{
		Variant:        scrypt.Salsa,
		N:              uint32(n),
		Grid:           units,
		Block:          scrypt.LanesPerUnit,
		GroupsPerBatch: units,
		Benchmark:      true,
	}
	if !engine.Run(cfg, nil, input, output) {
		return nil, ErrRun
	}

	keys := make([][]byte, units)
	for i, password := range passwords {
		block := blocks[i]
		for w := 0; w < scrypt.UnitWords; w++ {
			binary.LittleEndian.PutUint32(block[w*4:], output[i*scrypt.UnitWords+w])
		}
		keys[i] = pbkdf2.Key(password, block, 1, keyLen, sha256.New)
	}
	return keys, nil
}
