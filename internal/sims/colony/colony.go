package colony

import (
	"fmt"

	"go.uber.org/zap"

	"colony/internal/core"
	"colony/pkg/rng"
)

// WorkersPerBase is how many workers SpawnWorkers tries to put around each base.
const WorkersPerBase = 2

// World owns the grid and drives the three generation phases over it.
type World struct {
	cfg  Config
	grid *core.Grid
	rng  rng.Source
	log  *zap.Logger

	draws int
}

// Stats counts the occupants of each kind.
type Stats struct {
	Empty   int
	Bases   int
	Trees   int
	Workers int
}

// New returns an empty world of the given size using default settings.
func New(size int) *World {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty world seeded from cfg.Seed.
func NewWithConfig(cfg Config) *World {
	return NewWithSource(cfg, rng.NewRNG(cfg.Seed))
}

// NewWithSource returns an empty world drawing randomness from src.
func NewWithSource(cfg Config, src rng.Source) *World {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	return &World{
		cfg:  cfg,
		grid: core.NewGrid(cfg.Size),
		rng:  src,
		log:  zap.NewNop(),
	}
}

// SetLogger replaces the logger. A nil logger disables logging.
func (w *World) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	w.log = l
}

// Name returns the generator identifier.
func (w *World) Name() string { return "colony" }

// Size returns the side length of the grid.
func (w *World) Size() int { return w.grid.Size() }

// Grid returns a copy of the current grid.
func (w *World) Grid() *core.Grid { return w.grid.Clone() }

// Cell reads a single slot.
func (w *World) Cell(p core.Position) (core.Cell, bool) { return w.grid.Get(p) }

// Place overwrites a single slot. Out-of-range positions are ignored.
func (w *World) Place(p core.Position, c core.Cell) { w.grid.Set(p, c) }

// Draws returns how many positions base placement has sampled so far.
func (w *World) Draws() int { return w.draws }

// Render draws the grid as text.
func (w *World) Render() string { return w.grid.Render() }

// Stats counts every occupant kind currently on the grid.
func (w *World) Stats() Stats {
	return Stats{
		Empty:   w.grid.Count(core.CellEmpty),
		Bases:   w.grid.Count(core.CellBase),
		Trees:   w.grid.Count(core.CellTree),
		Workers: w.grid.Count(core.CellWorker),
	}
}

// Reset empties the grid and reseeds the world's random source. A zero seed
// falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = rng.NewRNG(effective)
	w.grid.Reset()
	w.draws = 0
}

// Initialize runs the generation phases in order: bases, trees, then workers.
// Trees and workers are skipped when the bases cannot be placed.
func (w *World) Initialize(bases int) error {
	if err := w.SpawnBases(bases); err != nil {
		return fmt.Errorf("spawn bases: %w", err)
	}
	w.SpawnTrees()
	w.SpawnWorkers()
	st := w.Stats()
	w.log.Debug("world initialized",
		zap.Int("size", w.Size()),
		zap.Int("bases", st.Bases),
		zap.Int("trees", st.Trees),
		zap.Int("workers", st.Workers))
	return nil
}

// MaxBases is the largest number of mutually non-adjacent bases a size x size
// grid can hold.
func MaxBases(size int) int {
	if size <= 0 {
		return 0
	}
	half := (size + 1) / 2
	return half * half
}

// SpawnBases places count bases by rejection sampling. Each base must have an
// all-empty 3x3 neighbourhood, so no two bases touch, even diagonally. Every
// base gets at most MaxAttempts draws; on failure the bases placed by this
// call are removed again and a *CapacityError is returned.
func (w *World) SpawnBases(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	size := w.grid.Size()
	if count > MaxBases(size) {
		err := &CapacityError{Size: size, Requested: count}
		w.log.Warn("base count exceeds grid capacity", zap.Error(err))
		return err
	}

	placed := make([]core.Position, 0, count)
	for len(placed) < count {
		p, attempts, ok := w.sampleBase()
		if !ok {
			for _, q := range placed {
				w.grid.Set(q, core.CellEmpty)
			}
			err := &CapacityError{Size: size, Requested: count, Placed: len(placed), Attempts: attempts}
			w.log.Warn("base placement exhausted", zap.Error(err))
			return err
		}
		w.grid.Set(p, core.CellBase)
		placed = append(placed, p)
		w.log.Debug("base placed", zap.Stringer("pos", p), zap.Int("attempts", attempts))
	}
	return nil
}

func (w *World) sampleBase() (core.Position, int, bool) {
	size := w.grid.Size()
	for attempt := 1; attempt <= w.cfg.MaxAttempts; attempt++ {
		p := core.Pos(uint(w.rng.IntN(size)), uint(w.rng.IntN(size)))
		w.draws++
		if w.isGoodForBase(p) {
			return p, attempt, true
		}
	}
	return core.Position{}, w.cfg.MaxAttempts, false
}

func (w *World) isGoodForBase(p core.Position) bool {
	return w.grid.All(p, true, func(c core.Cell) bool { return c == core.CellEmpty })
}

// SpawnTrees scans the grid once, y then x ascending, and plants a tree
// wherever the 3x3 neighbourhood holds only empty slots or trees. Trees are
// committed during the scan, so later checks see earlier trees.
func (w *World) SpawnTrees() {
	size := uint(w.grid.Size())
	planted := 0
	for y := uint(0); y < size; y++ {
		for x := uint(0); x < size; x++ {
			p := core.Pos(x, y)
			if w.isGoodForTree(p) {
				w.grid.Set(p, core.CellTree)
				planted++
			}
		}
	}
	w.log.Debug("trees planted", zap.Int("count", planted))
}

func (w *World) isGoodForTree(p core.Position) bool {
	return w.grid.All(p, true, func(c core.Cell) bool {
		return c == core.CellEmpty || c == core.CellTree
	})
}

// SpawnWorkers puts up to WorkersPerBase workers on distinct cells around
// each base, chosen uniformly at random. Workers overwrite whatever was there,
// trees included.
func (w *World) SpawnWorkers() {
	spawned := 0
	for _, base := range w.grid.PositionsOf(core.CellBase) {
		candidates := w.grid.Neighbors(base, false)
		for _, p := range rng.Sample(w.rng, candidates, WorkersPerBase) {
			w.grid.Set(p, core.CellWorker)
			spawned++
		}
	}
	w.log.Debug("workers spawned", zap.Int("count", spawned))
}
