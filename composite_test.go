package tileworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	Kind TileKind
	X, Y int
}

// recordingCanvas is a Canvas that remembers what was painted since the
// last Clear.
type recordingCanvas struct {
	w, h   int
	clears int
	draws  []drawCall
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{w: w, h: h}
}

func (c *recordingCanvas) Clear() {
	c.clears++
	c.draws = c.draws[:0]
}

func (c *recordingCanvas) DrawTile(rec TileRecord, x, y int) {
	c.draws = append(c.draws, drawCall{Kind: rec.Kind, X: x, Y: y})
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }

func filledGrid(t testing.TB, w, h, tile int) *TileGrid {
	t.Helper()
	g := NewTileGrid(w, h, tile, tile)
	for y := range h {
		for x := range w {
			require.NoError(t, g.Insert(x, y, solid(TileFloorNormal)))
		}
	}
	return g
}

func TestCompositeCacheCanvasTooSmall(t *testing.T) {
	g := NewTileGrid(10, 10, 10, 10)
	_, err := NewCompositeCache(g, newRecordingCanvas(99, 100))
	assert.Error(t, err)

	_, err = NewCompositeCache(g, newRecordingCanvas(100, 100))
	assert.NoError(t, err)
}

func TestCompositeCacheFirstRebuild(t *testing.T) {
	g := filledGrid(t, 10, 10, 10)
	require.NoError(t, g.Insert(1, 1, solid(TileHeroRest0)))
	canvas := newRecordingCanvas(100, 100)
	c, err := NewCompositeCache(g, canvas)
	require.NoError(t, err)

	_, ok := c.LastWindow()
	assert.False(t, ok)

	assert.True(t, c.RebuildIfNeeded(g, 0, 0, 20, 20, false))
	assert.Equal(t, 1, c.Rebuilds())
	assert.Equal(t, 1, canvas.clears)

	// 3x3 window, one cell with two records.
	require.Len(t, canvas.draws, 10)
	assert.Equal(t, drawCall{TileFloorNormal, 0, 0}, canvas.draws[0])
	assert.Equal(t, drawCall{TileFloorNormal, 10, 10}, canvas.draws[4])
	assert.Equal(t, drawCall{TileHeroRest0, 10, 10}, canvas.draws[5])
	assert.Equal(t, drawCall{TileFloorNormal, 20, 20}, canvas.draws[9])

	st := c.LastStats()
	assert.Equal(t, Window{0, 0, 3, 3}, st.Window)
	assert.Equal(t, 9, st.Cells)
	assert.Equal(t, 10, st.Tiles)
}

func TestCompositeCacheSkipsUnchangedWindow(t *testing.T) {
	g := filledGrid(t, 10, 10, 10)
	canvas := newRecordingCanvas(100, 100)
	c, err := NewCompositeCache(g, canvas)
	require.NoError(t, err)

	require.True(t, c.RebuildIfNeeded(g, 2, 2, 30, 30, false))
	for range 5 {
		assert.False(t, c.RebuildIfNeeded(g, 2, 2, 30, 30, false))
	}
	assert.Equal(t, 1, c.Rebuilds())
	assert.Equal(t, 1, canvas.clears)
}

func TestCompositeCacheRebuildsOnCellChange(t *testing.T) {
	g := filledGrid(t, 10, 10, 10)
	canvas := newRecordingCanvas(100, 100)
	c, err := NewCompositeCache(g, canvas)
	require.NoError(t, err)

	require.True(t, c.RebuildIfNeeded(g, 0, 0, 30, 30, false))
	assert.True(t, c.RebuildIfNeeded(g, 1, 0, 30, 30, false))
	assert.Equal(t, 2, c.Rebuilds())

	w, ok := c.LastWindow()
	require.True(t, ok)
	assert.Equal(t, Window{1, 0, 5, 4}, w)
	for _, d := range canvas.draws {
		assert.GreaterOrEqual(t, d.X, 10, "canvas holds only the current window")
	}
}

func TestCompositeCacheForce(t *testing.T) {
	g := filledGrid(t, 4, 4, 10)
	c, err := NewCompositeCache(g, newRecordingCanvas(40, 40))
	require.NoError(t, err)

	require.True(t, c.RebuildIfNeeded(g, 0, 0, 40, 40, false))
	assert.True(t, c.RebuildIfNeeded(g, 0, 0, 40, 40, true))
	assert.Equal(t, 2, c.Rebuilds())

	c.Invalidate()
	assert.True(t, c.RebuildIfNeeded(g, 0, 0, 40, 40, false))
	assert.Equal(t, 3, c.Rebuilds())
}

func TestCompositeCacheViewportResize(t *testing.T) {
	g := filledGrid(t, 20, 20, 10)
	c, err := NewCompositeCache(g, newRecordingCanvas(200, 200))
	require.NoError(t, err)

	require.True(t, c.RebuildIfNeeded(g, 0, 0, 30, 30, false))
	assert.True(t, c.RebuildIfNeeded(g, 0, 0, 60, 30, false), "a wider viewport sees more cells")
	assert.False(t, c.RebuildIfNeeded(g, 0, 0, 51, 30, false), "same cell span")
}

func TestCompositeCacheClippedOrigins(t *testing.T) {
	g := filledGrid(t, 4, 4, 10)
	canvas := newRecordingCanvas(40, 40)
	c, err := NewCompositeCache(g, canvas)
	require.NoError(t, err)

	require.True(t, c.RebuildIfNeeded(g, 10, 10, 20, 20, false))
	assert.Empty(t, canvas.draws)
	assert.False(t, c.RebuildIfNeeded(g, 11, 11, 20, 20, false), "both origins clip to the same empty window")
}

func BenchmarkCompositeCacheUnchanged(b *testing.B) {
	g := filledGrid(b, 200, 100, 32)
	c, err := NewCompositeCache(g, newRecordingCanvas(g.PixelWidth(), g.PixelHeight()))
	require.NoError(b, err)
	c.RebuildIfNeeded(g, 50, 20, 1280, 720, false)

	b.ReportAllocs()
	for b.Loop() {
		c.RebuildIfNeeded(g, 50, 20, 1280, 720, false)
	}
}

func BenchmarkWindowCursor(b *testing.B) {
	g := filledGrid(b, 200, 100, 32)

	b.ReportAllocs()
	for b.Loop() {
		n := 0
		cur := g.VisibleWindow(50, 20, 1280, 720)
		for cur.Next() {
			n += len(cur.Cell())
		}
		if n == 0 {
			b.Fatal("empty window")
		}
	}
}
