package tileworld

import "fmt"

// Cell is the stack of tile records at one grid coordinate. Records paint in
// slice order, so the last inserted record is on top.
type Cell []TileRecord

// TileGrid is a fixed-size row-major matrix of cells. Its dimensions are set
// at construction and never change. Reads outside the grid return an empty
// cell; writes outside the grid return ErrOutOfBounds and change nothing.
type TileGrid struct {
	cells  []Cell // row-major, len = width * height
	width  int    // in cells
	height int    // in cells

	tileWidth  int // pixel size of one cell
	tileHeight int

	// Cells edited through Replace since the last consumeDirty, as an
	// inclusive bounding box. Only meaningful when dirty is true.
	dirty            bool
	dirtyX0, dirtyY0 int
	dirtyX1, dirtyY1 int
}

// NewTileGrid creates an empty grid of width x height cells, each
// tileWidth x tileHeight pixels. Non-positive dimensions produce an empty grid.
func NewTileGrid(width, height, tileWidth, tileHeight int) *TileGrid {
	width = max(width, 0)
	height = max(height, 0)
	return &TileGrid{
		cells:      make([]Cell, width*height),
		width:      width,
		height:     height,
		tileWidth:  max(tileWidth, 1),
		tileHeight: max(tileHeight, 1),
	}
}

// Width returns the grid width in cells.
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *TileGrid) Height() int { return g.height }

// TileWidth returns the pixel width of one cell.
func (g *TileGrid) TileWidth() int { return g.tileWidth }

// TileHeight returns the pixel height of one cell.
func (g *TileGrid) TileHeight() int { return g.tileHeight }

// PixelWidth returns the full pixel extent of the grid horizontally.
func (g *TileGrid) PixelWidth() int { return g.width * g.tileWidth }

// PixelHeight returns the full pixel extent of the grid vertically.
func (g *TileGrid) PixelHeight() int { return g.height * g.tileHeight }

// CellCount returns width * height.
func (g *TileGrid) CellCount() int { return len(g.cells) }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the records at (x, y), or nil when out of bounds or empty.
// The returned slice aliases grid storage and must not be modified.
func (g *TileGrid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y*g.width+x]
}

// Insert appends rec on top of the cell at (x, y).
func (g *TileGrid) Insert(x, y int, rec TileRecord) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("insert (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	i := y*g.width + x
	g.cells[i] = append(g.cells[i], rec)
	return nil
}

// Replace swaps the whole stack at (x, y) for recs and marks the cell dirty
// so a composite showing it is repainted. Passing no records clears the cell.
func (g *TileGrid) Replace(x, y int, recs ...TileRecord) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("replace (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	i := y*g.width + x
	g.cells[i] = append(g.cells[i][:0], recs...)
	g.markDirty(x, y)
	return nil
}

func (g *TileGrid) markDirty(x, y int) {
	if !g.dirty {
		g.dirty = true
		g.dirtyX0, g.dirtyY0, g.dirtyX1, g.dirtyY1 = x, y, x, y
		return
	}
	g.dirtyX0 = min(g.dirtyX0, x)
	g.dirtyY0 = min(g.dirtyY0, y)
	g.dirtyX1 = max(g.dirtyX1, x)
	g.dirtyY1 = max(g.dirtyY1, y)
}

// consumeDirty reports whether any cell edited since the previous call lies
// inside w, and clears the dirty state.
func (g *TileGrid) consumeDirty(w Window) bool {
	if !g.dirty {
		return false
	}
	g.dirty = false
	return g.dirtyX0 < w.X1 && g.dirtyX1 >= w.X0 &&
		g.dirtyY0 < w.Y1 && g.dirtyY1 >= w.Y0
}

func (g *TileGrid) clearDirty() {
	g.dirty = false
}

// CellToPixel returns the top-left pixel of cell (x, y).
func (g *TileGrid) CellToPixel(x, y int) (px, py int) {
	return x * g.tileWidth, y * g.tileHeight
}

// PixelToCell returns the cell containing pixel (px, py). Division floors, so
// negative pixels map to negative cells.
func (g *TileGrid) PixelToCell(px, py int) (x, y int) {
	return floorDiv(px, g.tileWidth), floorDiv(py, g.tileHeight)
}

// Describe returns a one-line summary for debug dumps.
func (g *TileGrid) Describe() string {
	filled := 0
	for _, c := range g.cells {
		if len(c) > 0 {
			filled++
		}
	}
	return fmt.Sprintf("TileGrid{cells: %dx%d, tile: %dx%d, pixels: %dx%d, filled: %d}",
		g.width, g.height, g.tileWidth, g.tileHeight, g.PixelWidth(), g.PixelHeight(), filled)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
