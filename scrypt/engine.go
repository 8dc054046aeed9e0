package scrypt

import (
	"fmt"
	"sync"
	"time"

	"github.com/hwf452/CudaMiner/utils"
)

// launchYield how long the issuing thread sleeps after each interactive
// sync so the host display pipeline gets a turn.
const launchYield = 10 * time.Millisecond

// Stream serializes asynchronous kernel launches onto a single executor
// goroutine, the way work is enqueued on a device stream. Faults inside
// enqueued work latch into a sticky error observed only at Sync or Err;
// there is no per-launch attribution.
type Stream struct {
	work chan func()
	wg   sync.WaitGroup

	mu  sync.Mutex
	err error
}

func NewStream() *Stream {
	s := &Stream{work: make(chan func())}
	s.wg.Add(1)
	go s.loop()
	return s
}

func (s *Stream) loop() {
	defer s.wg.Done()
	for fn := range s.work {
		s.exec(fn)
	}
}

func (s *Stream) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			if s.err == nil {
				s.err = fmt.Errorf("stream fault: %v", r)
			}
			s.mu.Unlock()
		}
	}()
	fn()
}

// Enqueue submits work to the stream and returns without waiting for it.
func (s *Stream) Enqueue(fn func()) {
	s.work <- fn
}

// Sync blocks until all previously enqueued work has executed.
func (s *Stream) Sync() {
	done := make(chan struct{})
	s.work <- func() { close(done) }
	<-done
}

// Err polls the sticky asynchronous error state.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Stream) Close() {
	close(s.work)
	s.wg.Wait()
}

// Config is the complete launch configuration for one run. It is an
// explicit value rather than process-wide state so that engines driving
// different devices can run concurrently.
type Config struct {
	// Variant inner mixing permutation, fixed for the whole run
	Variant Variant
	// N iteration count; must be a power of two (index masking uses N-1)
	N uint32
	// Grid, Block launch shape; Grid*Block/LanesPerUnit work units run
	Grid, Block int
	// GroupsPerBatch work units sharing one scratch region ("warp")
	GroupsPerBatch int
	// Batch iterations per kernel launch; 0 means all of N at once
	Batch uint32
	// Device identifier, used for log attribution only
	Device int
	// Interactive syncs and yields between launches; Benchmark overrides
	// it and issues launches back-to-back
	Interactive bool
	Benchmark   bool
	// Cache read path for the second phase
	Cache CacheMode
}

// Engine drives the two-phase kernel sequence for one device. The scratch
// table and the launch constants are published to it once and republished
// only when they change. Not safe for concurrent Run calls.
type Engine struct {
	regions [][]uint32
	readers []scratchReader
	bound   CacheMode

	publishedN       uint32
	publishedVariant Variant
	published        bool

	stream *Stream
}

func NewEngine() *Engine {
	return &Engine{}
}

// SetScratchRegions publishes the per-warp scratch base table. Must be
// called before any launch and again whenever the allocation changes.
// Region lengths must be multiples of SlotWords.
func (e *Engine) SetScratchRegions(regions [][]uint32) {
	e.regions = regions
	e.bindDirect()
}

// BindLinearCache activates the 1-D texel read path over every published
// region.
func (e *Engine) BindLinearCache() {
	e.readers = make([]scratchReader, len(e.regions))
	for i, mem := range e.regions {
		e.readers[i] = bindLinear(mem)
	}
	e.bound = CacheLinear
}

// BindTiledCache activates the 2-D tiled read path over every published
// region, rebalancing each region's geometry to the fixed tile width.
func (e *Engine) BindTiledCache() {
	e.readers = make([]scratchReader, len(e.regions))
	for i, mem := range e.regions {
		e.readers[i] = bindTiled(mem, uint32(len(mem)/4), 1)
	}
	e.bound = CacheTiled
}

// UnbindCaches restores direct reads.
func (e *Engine) UnbindCaches() {
	e.bindDirect()
}

func (e *Engine) bindDirect() {
	e.readers = make([]scratchReader, len(e.regions))
	for i, mem := range e.regions {
		e.readers[i] = directPath{mem: mem}
	}
	e.bound = CacheNone
}

func (e *Engine) publish(cfg *Config) {
	if !e.published || e.publishedN != cfg.N || e.publishedVariant != cfg.Variant {
		utils.Noticef("scrypt", "device %d publishing launch constants: N=%d variant=%s", cfg.Device, cfg.N, cfg.Variant)
		e.publishedN = cfg.N
		e.publishedVariant = cfg.Variant
		e.published = true
	}
	if e.bound != cfg.Cache {
		switch cfg.Cache {
		case CacheLinear:
			e.BindLinearCache()
		case CacheTiled:
			e.BindTiledCache()
		default:
			e.UnbindCaches()
		}
	}
}

// Run issues the first-phase kernels across successive iteration
// sub-ranges, then the second-phase kernels the same way, and reports
// overall success. input supplies the initial 32 words of every work unit;
// output receives the final mixed states and doubles as hand-off storage
// between second-phase batches. On false the output holds no usable
// result and the whole run must be retried or abandoned.
func (e *Engine) Run(cfg Config, stream *Stream, input, output []uint32) bool {
	if stream == nil {
		if e.stream == nil {
			e.stream = NewStream()
		}
		stream = e.stream
	}

	e.publish(&cfg)

	lc := &launchContext{
		variant:       cfg.Variant,
		n:             cfg.N,
		groupsPerWarp: cfg.GroupsPerBatch,
		regions:       e.regions,
		readers:       e.readers,
	}

	units := cfg.Grid * cfg.Block / LanesPerUnit
	batch := cfg.Batch
	if batch == 0 || batch > cfg.N {
		batch = cfg.N
	}

	start := time.Now()

	launch := func(body func(unit int)) {
		if cfg.Interactive && !cfg.Benchmark {
			stream.Sync()
			time.Sleep(launchYield)
		}
		stream.Enqueue(func() {
			if err := utils.SplitWork(0, uint64(units), func(workIndex uint64, _ int) (err error) {
				// illegal accesses from a misconfigured shape surface here
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("kernel fault: %v", r)
					}
				}()
				body(int(workIndex))
				return nil
			}, nil); err != nil {
				panic(err)
			}
		})
	}

	for pos := uint32(0); pos < cfg.N; pos += batch {
		begin, end := pos, min(pos+batch, cfg.N)
		launch(func(unit int) { lc.fillRange(unit, input, begin, end) })
	}
	for pos := uint32(0); pos < cfg.N; pos += batch {
		begin, end := pos, min(pos+batch, cfg.N)
		launch(func(unit int) { lc.mixRange(unit, output, begin, end) })
	}

	stream.Sync()
	if err := stream.Err(); err != nil {
		utils.Errorf("scrypt", "device %d run failed: %s", cfg.Device, err)
		return false
	}

	if utils.IsLogLevelDebug() {
		utils.Debugf("scrypt", "%s", newRunReport(&cfg, units, time.Since(start)))
	}
	return true
}

// Close releases the engine's internal stream, if one was created.
func (e *Engine) Close() {
	if e.stream != nil {
		e.stream.Close()
		e.stream = nil
	}
}
