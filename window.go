package tileworld

import (
	"fmt"
	"iter"
)

// Window is a half-open rectangle of cells [X0, X1) x [Y0, Y1), already
// clipped to the grid. Two windows are equal when their rectangles match,
// which makes Window usable directly as a cache key.
type Window struct {
	X0, Y0 int
	X1, Y1 int
}

// Empty reports whether the window covers no cells.
func (w Window) Empty() bool {
	return w.X1 <= w.X0 || w.Y1 <= w.Y0
}

// Cols returns the number of columns in the window.
func (w Window) Cols() int { return max(w.X1-w.X0, 0) }

// Rows returns the number of rows in the window.
func (w Window) Rows() int { return max(w.Y1-w.Y0, 0) }

// Len returns the number of cells in the window.
func (w Window) Len() int { return w.Cols() * w.Rows() }

// Contains reports whether cell (x, y) lies inside the window.
func (w Window) Contains(x, y int) bool {
	return x >= w.X0 && x < w.X1 && y >= w.Y0 && y < w.Y1
}

func (w Window) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", w.X0, w.Y0, w.X1, w.Y1)
}

// WindowAt returns the window a viewport of viewportW x viewportH pixels sees
// when its top-left corner sits in cell (originX, originY). The window spans
// ceil(viewportW/tileWidth)+1 columns and ceil(viewportH/tileHeight)+1 rows so
// a viewport that is not cell-aligned is still fully covered, then is clipped
// to the grid.
func (g *TileGrid) WindowAt(originX, originY, viewportW, viewportH int) Window {
	cols := ceilDiv(max(viewportW, 0), g.tileWidth) + 1
	rows := ceilDiv(max(viewportH, 0), g.tileHeight) + 1

	w := Window{
		X0: clampInt(originX, 0, g.width),
		Y0: clampInt(originY, 0, g.height),
		X1: clampInt(originX+cols, 0, g.width),
		Y1: clampInt(originY+rows, 0, g.height),
	}
	if w.Empty() {
		return Window{X0: w.X0, Y0: w.Y0, X1: w.X0, Y1: w.Y0}
	}
	return w
}

// VisibleWindow returns a cursor over the cells of WindowAt(originX, originY,
// viewportW, viewportH) in row-major order. Empty cells are visited too.
//
// The cursor produces cells on demand and holds no copy of the rectangle.
// It is finite and single-use; call VisibleWindow again to start over.
func (g *TileGrid) VisibleWindow(originX, originY, viewportW, viewportH int) WindowCursor {
	return g.Cursor(g.WindowAt(originX, originY, viewportW, viewportH))
}

// Cursor returns a fresh cursor over w.
func (g *TileGrid) Cursor(w Window) WindowCursor {
	return WindowCursor{grid: g, win: w}
}

// VisibleCells is VisibleWindow as a range-over-func sequence. Every call to
// the returned function walks the window from its origin again.
func (g *TileGrid) VisibleCells(originX, originY, viewportW, viewportH int) iter.Seq2[CellPos, Cell] {
	w := g.WindowAt(originX, originY, viewportW, viewportH)
	return func(yield func(CellPos, Cell) bool) {
		cur := g.Cursor(w)
		for cur.Next() {
			if !yield(cur.Pos(), cur.Cell()) {
				return
			}
		}
	}
}

// CellPos is a cell coordinate.
type CellPos struct {
	X, Y int
}

// WindowCursor walks a Window one cell at a time:
//
//	cur := grid.VisibleWindow(cx, cy, 1280, 720)
//	for cur.Next() {
//		paint(cur.X(), cur.Y(), cur.Cell())
//	}
type WindowCursor struct {
	grid    *TileGrid
	win     Window
	x, y    int
	started bool
	done    bool
}

// Next advances to the next cell and reports whether there is one.
func (c *WindowCursor) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		if c.win.Empty() {
			c.done = true
			return false
		}
		c.x, c.y = c.win.X0, c.win.Y0
		return true
	}
	c.x++
	if c.x >= c.win.X1 {
		c.x = c.win.X0
		c.y++
	}
	if c.y >= c.win.Y1 {
		c.done = true
		return false
	}
	return true
}

// X returns the column of the current cell.
func (c *WindowCursor) X() int { return c.x }

// Y returns the row of the current cell.
func (c *WindowCursor) Y() int { return c.y }

// Pos returns the coordinate of the current cell.
func (c *WindowCursor) Pos() CellPos { return CellPos{c.x, c.y} }

// Cell returns the records of the current cell.
func (c *WindowCursor) Cell() Cell {
	return c.grid.Cell(c.x, c.y)
}

// Window returns the rectangle the cursor walks.
func (c *WindowCursor) Window() Window { return c.win }

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
