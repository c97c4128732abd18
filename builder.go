package tileworld

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// DefaultBuildBudget is the wall time one Builder.Step may spend filling
// cells: half a frame at 60 TPS.
const DefaultBuildBudget = 8 * time.Millisecond

// TileSource generates the record placed in each cell during a build.
type TileSource interface {
	TileAt(x, y int) (TileRecord, error)
}

// FloorSource fills a grid with random floor tiles tinted with a gradient
// that brightens towards the bottom-right of the grid.
type FloorSource struct {
	tileset       *Tileset
	rng           *rand.Rand
	width, height int
}

// NewFloorSource returns a FloorSource for a width x height grid.
func NewFloorSource(ts *Tileset, rng *rand.Rand, width, height int) *FloorSource {
	return &FloorSource{tileset: ts, rng: rng, width: max(width, 1), height: max(height, 1)}
}

// TileAt picks a random floor kind and tints it for cell (x, y).
func (s *FloorSource) TileAt(x, y int) (TileRecord, error) {
	rec, err := s.tileset.Record(RandomFloor(s.rng))
	if err != nil {
		return TileRecord{}, err
	}
	fx := float64(x) / float64(s.width)
	fy := float64(y) / float64(s.height)
	rec.Tint = ColorFrom255(
		float64(s.rng.IntN(35))+220*fx,
		float64(s.rng.IntN(35))+220*fy,
		float64(s.rng.IntN(35))+220*fx*fy,
	)
	return rec, nil
}

// Builder fills a TileGrid a slice at a time so that building a large grid
// never stalls the frame loop. Each Step works row-major from where the
// previous one stopped until its time budget is spent.
//
// A Builder can be abandoned at any point: cells past its progress are simply
// left empty.
type Builder struct {
	source TileSource
	budget time.Duration
	now    func() time.Time

	progress int // index of the next cell to fill
	total    int
	done     bool
	steps    int

	startedAt time.Time
	elapsed   time.Duration // wall time from first step to completion
}

// NewBuilder creates a builder that draws records from source and spends at
// most budget per Step. A zero budget still fills one cell per Step.
func NewBuilder(source TileSource, budget time.Duration) *Builder {
	return &Builder{
		source: source,
		budget: max(budget, 0),
		now:    time.Now,
	}
}

// Step fills cells of grid, starting at the builder's progress, until the
// budget is used up or the grid is full. At least one cell is filled per call
// while any remain. finished is true only on the call that fills the last
// cell. An error from the TileSource aborts the step; progress stays at the
// failing cell.
func (b *Builder) Step(grid *TileGrid) (finished bool, err error) {
	b.total = grid.CellCount()
	if b.done {
		return false, nil
	}
	start := b.now()
	if b.steps == 0 {
		b.startedAt = start
	}
	b.steps++

	width := grid.Width()
	for b.progress < b.total {
		x, y := b.progress%width, b.progress/width
		rec, err := b.source.TileAt(x, y)
		if err != nil {
			return false, fmt.Errorf("build cell (%d,%d): %w", x, y, err)
		}
		if err := grid.Insert(x, y, rec); err != nil {
			return false, err
		}
		b.progress++

		if b.now().Sub(start) >= b.budget {
			break
		}
	}

	if b.progress >= b.total {
		b.done = true
		b.elapsed = b.now().Sub(b.startedAt)
		return true, nil
	}
	return false, nil
}

// Progress returns the number of cells filled so far.
func (b *Builder) Progress() int {
	return b.progress
}

// Done reports whether every cell has been filled.
func (b *Builder) Done() bool {
	return b.done
}

// Steps returns how many times Step has run.
func (b *Builder) Steps() int {
	return b.steps
}

// Elapsed returns the wall time the whole build took. Zero until done.
func (b *Builder) Elapsed() time.Duration {
	return b.elapsed
}

// Percent returns build completion in [0, 1] for a loading indicator.
func (b *Builder) Percent() float64 {
	if b.total == 0 {
		if b.done {
			return 1
		}
		return 0
	}
	return clamp01(float64(b.progress) / float64(b.total))
}

// Describe returns a one-line summary for debug dumps.
func (b *Builder) Describe() string {
	return fmt.Sprintf("Builder{progress: %d/%d (%d%%), steps: %d, budget: %v, done: %t}",
		b.progress, b.total, int(b.Percent()*100), b.steps, b.budget, b.done)
}
