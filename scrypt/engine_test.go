package scrypt_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/hwf452/CudaMiner/scrypt"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
)

func assertEqual(t *testing.T, actual, expected any, msgAndArgs ...any) {
	if !reflect.DeepEqual(actual, expected) {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sactual: %v expected: %v", message, actual, expected)
	}
}

func assertTrue(t *testing.T, ok bool, msgAndArgs ...any) {
	if !ok {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sexpected true", message)
	}
}

func assertFalse(t *testing.T, ok bool, msgAndArgs ...any) {
	if ok {
		message := ""
		if len(msgAndArgs) > 0 {
			message = fmt.Sprint(msgAndArgs...) + ": "
		}
		t.Errorf("%sexpected false", message)
	}
}

func patternInput(units int) []uint32 {
	buf := make([]uint32, units*scrypt.UnitWords)
	for i := range buf {
		buf[i] = uint32(i)*2654435761 + 0x9e3779b9
	}
	return buf
}

func engineConfig(units int, n uint32) scrypt.Config {
	return scrypt.Config{
		Variant:        scrypt.Salsa,
		N:              n,
		Grid:           units,
		Block:          scrypt.LanesPerUnit,
		GroupsPerBatch: units,
		Benchmark:      true,
	}
}

func freshRun(t *testing.T, units int, n uint32, cfg scrypt.Config, input []uint32) []uint32 {
	t.Helper()
	engine := scrypt.NewEngine()
	defer engine.Close()
	engine.SetScratchRegions([][]uint32{make([]uint32, uint32(units)*n*scrypt.SlotWords)})
	output := make([]uint32, len(input))
	assertTrue(t, engine.Run(cfg, nil, input, output), "fresh run")
	return output
}

func TestEngine(t *testing.T) {
	spec.Run(t, "Engine", func(t *testing.T, when spec.G, it spec.S) {
		const units = 2
		const n = uint32(16)
		input := patternInput(units)

		it("fails when no scratch has been published", func() {
			engine := scrypt.NewEngine()
			defer engine.Close()

			output := make([]uint32, len(input))
			assertFalse(t, engine.Run(engineConfig(units, n), nil, input, output))
		})

		it("latches a fault until a fresh stream is supplied", func() {
			engine := scrypt.NewEngine()
			defer engine.Close()

			output := make([]uint32, len(input))
			assertFalse(t, engine.Run(engineConfig(units, n), nil, input, output))

			// publishing scratch does not clear the stream's sticky error
			engine.SetScratchRegions([][]uint32{make([]uint32, units*int(n)*scrypt.SlotWords)})
			assertFalse(t, engine.Run(engineConfig(units, n), nil, input, output))

			stream := scrypt.NewStream()
			defer stream.Close()
			assertTrue(t, engine.Run(engineConfig(units, n), stream, input, output))
			assertEqual(t, output, freshRun(t, units, n, engineConfig(units, n), input))
		})

		it("republishes launch constants when N changes", func() {
			engine := scrypt.NewEngine()
			defer engine.Close()
			engine.SetScratchRegions([][]uint32{make([]uint32, units*64*scrypt.SlotWords)})

			output := make([]uint32, len(input))
			assertTrue(t, engine.Run(engineConfig(units, 16), nil, input, output))

			assertTrue(t, engine.Run(engineConfig(units, 64), nil, input, output))
			assertEqual(t, output, freshRun(t, units, 64, engineConfig(units, 64), input))
		})

		it("rebinds the read path when the cache mode changes", func() {
			engine := scrypt.NewEngine()
			defer engine.Close()
			engine.SetScratchRegions([][]uint32{make([]uint32, uint32(units)*n*scrypt.SlotWords)})

			direct := make([]uint32, len(input))
			assertTrue(t, engine.Run(engineConfig(units, n), nil, input, direct))

			tiledConfig := engineConfig(units, n)
			tiledConfig.Cache = scrypt.CacheTiled
			tiled := make([]uint32, len(input))
			assertTrue(t, engine.Run(tiledConfig, nil, input, tiled))
			assertEqual(t, tiled, direct)

			linearConfig := engineConfig(units, n)
			linearConfig.Cache = scrypt.CacheLinear
			linear := make([]uint32, len(input))
			assertTrue(t, engine.Run(linearConfig, nil, input, linear))
			assertEqual(t, linear, direct)
		})

		it("reuses the output buffer across second-phase batches", func() {
			batched := engineConfig(units, n)
			batched.Batch = 3
			assertEqual(t,
				freshRun(t, units, n, batched, input),
				freshRun(t, units, n, engineConfig(units, n), input))
		})
	}, spec.Report(report.Terminal{}), spec.Random())
}
