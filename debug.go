package tileworld

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-tick timing for a tick that repainted the composite.
// Only populated when Scene.debug is true.
type debugStats struct {
	moveTime   time.Duration // leader update, follow and scroll
	renderTime time.Duration // window check and repaint
	rebuilt    bool
}

// debugf prints a prefixed line to stderr in debug mode.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[tileworld] "+format+"\n", args...)
}

// debugLog prints timing and rebuild stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	rs := s.cache.LastStats()
	_, _ = fmt.Fprintf(os.Stderr,
		"[tileworld] tick %d | move: %v | render: %v | total: %v\n",
		s.tick, stats.moveTime, stats.renderTime, stats.moveTime+stats.renderTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[tileworld] rebuild %d: window %s | cells: %d | tiles: %d | paint: %v\n",
		s.cache.Rebuilds(), rs.Window, rs.Cells, rs.Tiles, rs.Duration)
}

// debugCheckCamera panics if the camera escaped its bounds.
func debugCheckCamera(c *Camera) {
	x, y := c.Pos()
	if x < c.minX || x > c.maxX || y < c.minY || y > c.maxY {
		panic(fmt.Sprintf("tileworld debug: camera at %dx%d outside bounds (%d,%d)-(%d,%d)",
			x, y, c.minX, c.minY, c.maxX, c.maxY))
	}
}
