package tileworld

import (
	"fmt"
	"time"
)

// CompositeCache keeps a Canvas holding the tiles of the most recently
// rendered window. The canvas is repainted only when the window changes or a
// rebuild is forced, so panning inside one cell window costs nothing.
type CompositeCache struct {
	canvas Canvas

	last     Window // window currently painted on the canvas
	rendered bool   // false until the first rebuild, and after Invalidate

	rebuilds  int
	lastStats RebuildStats
}

// RebuildStats describes the work done by one rebuild.
type RebuildStats struct {
	Window   Window
	Cells    int // cells visited
	Tiles    int // records painted
	Duration time.Duration
}

// NewCompositeCache binds a cache to canvas. The canvas must be at least as
// large as the grid's pixel extent; it is never resized afterwards.
func NewCompositeCache(grid *TileGrid, canvas Canvas) (*CompositeCache, error) {
	w, h := canvas.Size()
	if w < grid.PixelWidth() || h < grid.PixelHeight() {
		return nil, fmt.Errorf("composite canvas %dx%d smaller than grid extent %dx%d",
			w, h, grid.PixelWidth(), grid.PixelHeight())
	}
	return &CompositeCache{canvas: canvas}, nil
}

// Canvas returns the canvas the cache paints into.
func (c *CompositeCache) Canvas() Canvas {
	return c.canvas
}

// RebuildIfNeeded repaints the canvas with the window seen from cell
// (originX, originY) by a viewportW x viewportH pixel viewport. When that
// window equals the last rendered one and force is false the canvas is left
// untouched. A rebuild clears the canvas first, so the result holds exactly
// the current window's cells. Reports whether a rebuild happened.
func (c *CompositeCache) RebuildIfNeeded(grid *TileGrid, originX, originY, viewportW, viewportH int, force bool) bool {
	w := grid.WindowAt(originX, originY, viewportW, viewportH)
	if c.rendered && !force && w == c.last {
		return false
	}

	start := time.Now()
	c.canvas.Clear()

	stats := RebuildStats{Window: w}
	cur := grid.Cursor(w)
	for cur.Next() {
		px, py := grid.CellToPixel(cur.X(), cur.Y())
		for _, rec := range cur.Cell() {
			c.canvas.DrawTile(rec, px, py)
			stats.Tiles++
		}
		stats.Cells++
	}
	stats.Duration = time.Since(start)

	c.last = w
	c.rendered = true
	c.rebuilds++
	c.lastStats = stats
	return true
}

// Invalidate forgets the last rendered window so the next RebuildIfNeeded
// repaints regardless of origin.
func (c *CompositeCache) Invalidate() {
	c.rendered = false
}

// LastWindow returns the window currently on the canvas. ok is false before
// the first rebuild.
func (c *CompositeCache) LastWindow() (w Window, ok bool) {
	return c.last, c.rendered
}

// Rebuilds returns how many times the canvas has been repainted.
func (c *CompositeCache) Rebuilds() int {
	return c.rebuilds
}

// LastStats returns the stats of the most recent rebuild.
func (c *CompositeCache) LastStats() RebuildStats {
	return c.lastStats
}

// Describe returns a one-line summary for debug dumps.
func (c *CompositeCache) Describe() string {
	w, h := c.canvas.Size()
	last := "none"
	if c.rendered {
		last = c.last.String()
	}
	return fmt.Sprintf("CompositeCache{canvas: %dx%d, window: %s, rebuilds: %d, lastTiles: %d, lastTook: %v}",
		w, h, last, c.rebuilds, c.lastStats.Tiles, c.lastStats.Duration)
}
