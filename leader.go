package tileworld

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Leader is the object the camera follows, typically the player avatar.
// Its position is in screen pixels, not world pixels: the camera scrolls the
// world under it and hands back the delta through Reposition.
type Leader interface {
	// Update advances the leader by one tick.
	Update()
	// Position returns the on-screen pixel position.
	Position() (x, y float64)
	// Walking reports whether the leader moved this tick.
	Walking() bool
	// Reposition shifts the on-screen position by (-dx, -dy) after the
	// camera moved by (dx, dy).
	Reposition(dx, dy int)
}

// leaderDrawer is implemented by leaders that draw themselves on top of the
// world.
type leaderDrawer interface {
	Draw(screen *ebiten.Image)
}

// DefaultWalkVelocity is how many pixels a Walker covers per tick.
const DefaultWalkVelocity = 12

// Walker is a screen-space leader moved by directional input. It is the
// building block for input-driven and scripted leaders.
type Walker struct {
	X, Y     float64
	Velocity float64

	// Sprite, when set, is drawn at the walker's position.
	Sprite *TileRecord

	maxX, maxY float64
	walking    bool
	facing     Vec2
}

// NewWalker creates a walker centered in a screenW x screenH screen. It is
// kept inside the screen with room for one tileSize sprite.
func NewWalker(screenW, screenH, tileSize int) *Walker {
	return &Walker{
		X:        float64(screenW / 2),
		Y:        float64(screenH / 2),
		Velocity: DefaultWalkVelocity,
		maxX:     float64(max(screenW-tileSize, 0)),
		maxY:     float64(max(screenH-tileSize, 0)),
		facing:   Vec2{0, 1},
	}
}

// Step applies one tick of directional input. A nil dir means no input: the
// walker stops. Each axis of dir is rounded to -1, 0 or 1.
func (w *Walker) Step(dir *Vec2) {
	if dir == nil {
		w.walking = false
		return
	}
	w.walking = true
	w.facing = *dir
	w.X = math.Max(0, math.Min(w.X+math.Round(dir.X)*w.Velocity, w.maxX))
	w.Y = math.Max(0, math.Min(w.Y+math.Round(dir.Y)*w.Velocity, w.maxY))
}

// Position returns the on-screen position.
func (w *Walker) Position() (x, y float64) {
	return w.X, w.Y
}

// Walking reports whether the last Step had input.
func (w *Walker) Walking() bool {
	return w.walking
}

// Facing returns the last non-nil direction given to Step.
func (w *Walker) Facing() Vec2 {
	return w.facing
}

// Reposition moves the walker opposite to a camera delta so it stays put
// relative to the world.
func (w *Walker) Reposition(dx, dy int) {
	w.X -= float64(dx)
	w.Y -= float64(dy)
}

// Draw paints Sprite at the walker's position.
func (w *Walker) Draw(screen *ebiten.Image) {
	if w.Sprite == nil {
		return
	}
	drawTile(screen, *w.Sprite, w.X, w.Y, BlendNormal)
}

// Describe returns a one-line summary for debug dumps.
func (w *Walker) Describe() string {
	return fmt.Sprintf("Walker{pos: %.0fx%.0f, walking: %t, facing: %v}", w.X, w.Y, w.walking, w.facing)
}
