package tileworld

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultFollowSpeed is the number of ticks an eased follow takes to reach
// its target.
const DefaultFollowSpeed = 30

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is a viewport-sized window onto the composite surface. Its position
// is the top-left pixel of the viewport on the surface and always lies within
// [min, max] on both axes.
type Camera struct {
	x, y       int
	minX, minY int
	maxX, maxY int

	viewportW, viewportH int

	// Follow state. A follow is active while progress < followSpeed.
	followSpeed        int
	progress           int
	targetX, targetY   float64 // total delta the current follow applies
	appliedX, appliedY int     // delta requested so far by the current follow

	scrollTween *scrollAnim
}

// NewCamera creates a camera for a viewportW x viewportH viewport over a
// surface of extentW x extentH pixels, positioned at (0, 0). The camera can
// travel until the viewport's far edge meets the surface's far edge.
func NewCamera(viewportW, viewportH, extentW, extentH int) *Camera {
	c := &Camera{
		viewportW:   viewportW,
		viewportH:   viewportH,
		followSpeed: DefaultFollowSpeed,
	}
	c.progress = c.followSpeed
	c.SetBounds(0, 0, max(extentW-viewportW, 0), max(extentH-viewportH, 0))
	return c
}

// SetBounds replaces the clamping bounds and re-clamps the current position.
func (c *Camera) SetBounds(minX, minY, maxX, maxY int) {
	c.minX, c.minY = minX, minY
	c.maxX, c.maxY = max(maxX, minX), max(maxY, minY)
	c.MoveTo(c.x, c.y)
}

// Bounds returns the clamping bounds.
func (c *Camera) Bounds() (minX, minY, maxX, maxY int) {
	return c.minX, c.minY, c.maxX, c.maxY
}

// SetFollowSpeed sets how many ticks a follow takes. Values below 1 are
// raised to 1. Any follow in progress is finished.
func (c *Camera) SetFollowSpeed(ticks int) {
	c.followSpeed = max(ticks, 1)
	c.progress = c.followSpeed
}

// FollowSpeed returns the number of ticks a follow takes.
func (c *Camera) FollowSpeed() int {
	return c.followSpeed
}

// Pos returns the camera position, the top-left pixel of the viewport.
func (c *Camera) Pos() (x, y int) {
	return c.x, c.y
}

// ViewportSize returns the viewport size in pixels.
func (c *Camera) ViewportSize() (w, h int) {
	return c.viewportW, c.viewportH
}

// MoveTo moves the camera to (x, y), clamping each axis to its bounds, and
// returns the delta actually applied. Callers use the delta to keep a
// followed object anchored on screen while the world scrolls.
func (c *Camera) MoveTo(x, y int) (dx, dy int) {
	ox, oy := c.x, c.y
	c.x = clampInt(x, c.minX, c.maxX)
	c.y = clampInt(y, c.minY, c.maxY)
	return c.x - ox, c.y - oy
}

// MoveBy moves the camera relative to its position. delta is rounded to whole
// pixels. A nil delta means no directional input this tick and is a no-op.
func (c *Camera) MoveBy(delta *Vec2) (dx, dy int) {
	if delta == nil {
		return 0, 0
	}
	return c.MoveTo(c.x+int(math.Round(delta.X)), c.y+int(math.Round(delta.Y)))
}

// StartFollowing aims the camera at a leader drawn at screen position
// (leaderX, leaderY). Horizontally the leader is kept between one and two
// thirds of the viewport; vertically it is pulled towards the middle. If the
// leader is already inside the margins the follow completes immediately.
// A follow already in progress is replaced and continues from the camera's
// current position.
func (c *Camera) StartFollowing(leaderX, leaderY float64) {
	marginX := float64(c.viewportW / 3)
	marginY := float64(c.viewportH / 2)

	switch {
	case leaderX < marginX:
		c.targetX = -(marginX - leaderX)
	case leaderX > 2*marginX:
		c.targetX = leaderX - 2*marginX
	default:
		c.targetX = 0
	}

	switch {
	case leaderY < marginY:
		c.targetY = -(marginY - leaderY)
	case leaderY > marginY:
		c.targetY = leaderY - marginY
	default:
		c.targetY = 0
	}

	c.appliedX, c.appliedY = 0, 0
	if c.targetX == 0 && c.targetY == 0 {
		c.progress = c.followSpeed
		return
	}
	c.progress = 0
	c.scrollTween = nil
}

// Following reports whether an eased follow is still in progress.
func (c *Camera) Following() bool {
	return c.progress < c.followSpeed
}

// FollowProgress returns the current follow tick in [0, FollowSpeed].
func (c *Camera) FollowProgress() int {
	return c.progress
}

// FollowTarget returns the total delta of the current follow.
func (c *Camera) FollowTarget() (dx, dy float64) {
	return c.targetX, c.targetY
}

// followEase returns the fraction of the follow completed after t ticks,
// following a sine ease-out.
func (c *Camera) followEase(t int) float64 {
	return float64(ease.OutSine(float32(t), 0, 1, float32(c.followSpeed)))
}

// AdvanceFollow moves the camera one tick along the current follow and
// returns the delta applied. It returns (0, 0) once the follow is complete.
//
// The per-tick step is the rounded change in eased progress, so the sum of
// the steps over a whole follow equals the rounded target exactly.
func (c *Camera) AdvanceFollow() (dx, dy int) {
	if !c.Following() {
		return 0, 0
	}

	c.progress++
	e := c.followEase(c.progress)
	wantX := int(math.Round(e * c.targetX))
	wantY := int(math.Round(e * c.targetY))

	stepX, stepY := wantX-c.appliedX, wantY-c.appliedY
	c.appliedX, c.appliedY = wantX, wantY
	return c.MoveTo(c.x+stepX, c.y+stepY)
}

// ScrollTo animates the camera to pixel position (x, y) over duration seconds
// with the given easing. Any follow in progress is finished.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.progress = c.followSpeed
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.x), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.y), float32(y), duration, easeFn),
	}
}

// ScrollToCell scrolls so cell (cellX, cellY) of a grid with the given tile
// size ends up in the middle of the viewport.
func (c *Camera) ScrollToCell(cellX, cellY, tileW, tileH int, duration float32, easeFn ease.TweenFunc) {
	x := float64(cellX*tileW+tileW/2) - float64(c.viewportW)/2
	y := float64(cellY*tileH+tileH/2) - float64(c.viewportH)/2
	c.ScrollTo(x, y, duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is running.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// UpdateScroll advances a running ScrollTo by dt seconds and returns the
// clamped delta applied.
func (c *Camera) UpdateScroll(dt float32) (dx, dy int) {
	st := c.scrollTween
	if st == nil {
		return 0, 0
	}
	nx, ny := c.x, c.y
	if !st.doneX {
		val, done := st.tweenX.Update(dt)
		nx = int(math.Round(float64(val)))
		st.doneX = done
	}
	if !st.doneY {
		val, done := st.tweenY.Update(dt)
		ny = int(math.Round(float64(val)))
		st.doneY = done
	}
	if st.doneX && st.doneY {
		c.scrollTween = nil
	}
	return c.MoveTo(nx, ny)
}

// Describe returns a one-line summary for debug dumps.
func (c *Camera) Describe() string {
	return fmt.Sprintf("Camera{pos: %dx%d, bounds: (%d,%d)-(%d,%d), viewport: %dx%d, follow: %d/%d, target: %.0fx%.0f, scrolling: %t}",
		c.x, c.y, c.minX, c.minY, c.maxX, c.maxY, c.viewportW, c.viewportH,
		c.progress, c.followSpeed, c.targetX, c.targetY, c.Scrolling())
}
