package tileworld

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneOptions supplies the collaborators of a Scene. Every field is
// optional.
type SceneOptions struct {
	// Tileset provides tile records. Defaults to the simple-mood tileset
	// without a sheet image, which paints tinted solid blocks.
	Tileset *Tileset
	// Source generates the record of each cell. Defaults to a FloorSource
	// over Tileset seeded from Config.Seed.
	Source TileSource
	// Canvas receives the composite. Defaults to a Surface sized to the grid.
	Canvas Canvas
	// Leader is followed by the camera. Without one the camera stays where
	// the build left it.
	Leader Leader
	// Sink receives world events.
	Sink EventSink
}

// Scene owns everything one tick touches: the grid, its builder, the
// composite cache, the camera and the leader. It is driven by calling Update
// and Draw once per frame, from a single goroutine.
type Scene struct {
	cfg Config

	grid    *TileGrid
	tileset *Tileset
	builder *Builder
	cache   *CompositeCache
	camera  *Camera
	leader  Leader
	sink    EventSink

	ready bool
	tick  int
	debug bool

	wasFollowing bool
	hud          hud

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewScene validates cfg and assembles a Scene. The grid starts empty; it
// is filled over the following Update calls.
func NewScene(cfg Config, opts SceneOptions) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := NewTileGrid(cfg.GridWidth, cfg.GridHeight, cfg.TileWidth, cfg.TileHeight)

	ts := opts.Tileset
	if ts == nil {
		ts = NewSimpleMoodTileset(nil)
	}
	src := opts.Source
	if src == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		src = NewFloorSource(ts, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), cfg.GridWidth, cfg.GridHeight)
	}
	canvas := opts.Canvas
	if canvas == nil {
		canvas = NewSurface(grid.PixelWidth(), grid.PixelHeight())
	}
	cache, err := NewCompositeCache(grid, canvas)
	if err != nil {
		return nil, err
	}

	cam := NewCamera(cfg.ViewportWidth, cfg.ViewportHeight, grid.PixelWidth(), grid.PixelHeight())
	cam.SetFollowSpeed(cfg.FollowSpeed)

	s := &Scene{
		cfg:           cfg,
		grid:          grid,
		tileset:       ts,
		builder:       NewBuilder(src, cfg.BuildBudget()),
		cache:         cache,
		camera:        cam,
		leader:        opts.Leader,
		sink:          opts.Sink,
		debug:         cfg.Debug,
		ScreenshotDir: cfg.ScreenshotDir,
	}
	s.debugf("initializing %dx%d=%d tiles, each %dx%d, total %dx%d pixels",
		grid.Width(), grid.Height(), grid.CellCount(),
		grid.TileWidth(), grid.TileHeight(), grid.PixelWidth(), grid.PixelHeight())
	return s, nil
}

// Update runs one tick. While the grid is building it runs one builder
// step; afterwards it moves the leader, lets the camera follow it and
// repaints the composite if the visible window changed. An error means the
// tile configuration is broken and the game should stop.
func (s *Scene) Update() error {
	s.tick++
	if !s.ready {
		return s.updateBuild()
	}

	var stats debugStats
	t0 := time.Now()

	if s.leader != nil {
		s.leader.Update()
		if s.leader.Walking() {
			s.camera.StartFollowing(s.leader.Position())
		}
	}

	dx, dy := s.camera.AdvanceFollow()
	sx, sy := s.camera.UpdateScroll(tickSeconds())
	if s.leader != nil {
		s.leader.Reposition(dx+sx, dy+sy)
	}
	s.trackFollow()
	if s.debug {
		debugCheckCamera(s.camera)
	}
	stats.moveTime = time.Since(t0)

	t0 = time.Now()
	stats.rebuilt = s.render(false)
	stats.renderTime = time.Since(t0)
	if stats.rebuilt {
		s.debugLog(stats)
	}
	return nil
}

func (s *Scene) updateBuild() error {
	t0 := time.Now()
	finished, err := s.builder.Step(s.grid)
	if err != nil {
		return err
	}
	s.debugf("build step %d: %d/%d = %d%% in %v",
		s.builder.Steps(), s.builder.Progress(), s.grid.CellCount(),
		int(s.builder.Percent()*100), time.Since(t0))

	if !finished {
		s.emit(Event{Type: EventBuildProgress, Progress: s.builder.Progress(), Total: s.grid.CellCount()})
		return nil
	}
	s.finishBuild()
	return nil
}

// finishBuild runs once, on the tick the builder fills the last cell.
func (s *Scene) finishBuild() {
	s.ready = true
	s.emit(Event{Type: EventBuildComplete, Progress: s.builder.Progress(), Total: s.grid.CellCount()})
	s.debugf("build complete in %v over %d steps", s.builder.Elapsed(), s.builder.Steps())

	// Nothing has been rendered yet, so the first paint is forced. It shows
	// every edit made during the build.
	s.renderAt(0, 0, true)
	s.grid.clearDirty()

	s.camera.MoveTo(s.cfg.CameraStartX, s.cfg.CameraStartY)
	s.render(false)
	s.debugf("%s", s.camera.Describe())
}

// render repaints the composite for the camera's current cell if needed.
// Edits to cells inside the painted window force a repaint.
func (s *Scene) render(force bool) bool {
	if last, ok := s.cache.LastWindow(); ok && s.grid.consumeDirty(last) {
		force = true
	}
	cx, cy := s.grid.PixelToCell(s.camera.Pos())
	return s.renderAt(cx, cy, force)
}

func (s *Scene) renderAt(cx, cy int, force bool) bool {
	if !s.cache.RebuildIfNeeded(s.grid, cx, cy, s.cfg.ViewportWidth, s.cfg.ViewportHeight, force) {
		return false
	}
	st := s.cache.LastStats()
	s.emit(Event{Type: EventWindowRebuilt, Window: st.Window})
	return true
}

func (s *Scene) trackFollow() {
	following := s.camera.Following()
	x, y := s.camera.Pos()
	switch {
	case following && !s.wasFollowing:
		s.emit(Event{Type: EventFollowStarted, X: x, Y: y})
		s.debugf("follow started at %dx%d", x, y)
	case !following && s.wasFollowing:
		s.emit(Event{Type: EventFollowArrived, X: x, Y: y})
		s.debugf("follow arrived at %dx%d", x, y)
	}
	s.wasFollowing = following
}

func (s *Scene) emit(e Event) {
	if s.sink == nil {
		return
	}
	e.Tick = s.tick
	s.sink.Emit(e)
}

// Draw presents the scene: a loading bar while building, otherwise the
// viewport-sized crop of the composite at the camera position with the
// leader on top.
func (s *Scene) Draw(screen *ebiten.Image) {
	if !s.ready {
		s.hud.drawLoading(screen, s.builder.Percent(), s.cfg.ViewportWidth, s.cfg.ViewportHeight)
	} else {
		if surf, ok := s.cache.Canvas().(*Surface); ok {
			x, y := s.camera.Pos()
			screen.DrawImage(surf.View(x, y, s.cfg.ViewportWidth, s.cfg.ViewportHeight), nil)
		}
		if d, ok := s.leader.(leaderDrawer); ok {
			d.Draw(screen)
		}
	}
	if s.debug {
		s.hud.drawDebug(screen, s.debugLines())
	}
	s.flushScreenshots(screen)
}

// Layout returns the fixed viewport size.
func (s *Scene) Layout(_, _ int) (int, int) {
	return s.cfg.ViewportWidth, s.cfg.ViewportHeight
}

// Surface returns the composite canvas the presentation layer crops from.
func (s *Scene) Surface() Canvas {
	return s.cache.Canvas()
}

// Source returns the top-left pixel of the composite the viewport shows,
// which is the camera position.
func (s *Scene) Source() (x, y int) {
	return s.camera.Pos()
}

// Ready reports whether the grid has been fully built.
func (s *Scene) Ready() bool { return s.ready }

// Tick returns the number of Update calls so far.
func (s *Scene) Tick() int { return s.tick }

// Config returns the configuration the scene was built from.
func (s *Scene) Config() Config { return s.cfg }

// Grid returns the tile grid.
func (s *Scene) Grid() *TileGrid { return s.grid }

// Tileset returns the tileset tiles are drawn from.
func (s *Scene) Tileset() *Tileset { return s.tileset }

// Camera returns the camera.
func (s *Scene) Camera() *Camera { return s.camera }

// Cache returns the composite cache.
func (s *Scene) Cache() *CompositeCache { return s.cache }

// Builder returns the grid builder.
func (s *Scene) Builder() *Builder { return s.builder }

// Leader returns the leader, or nil.
func (s *Scene) Leader() Leader { return s.leader }

// SetLeader replaces the leader the camera follows.
func (s *Scene) SetLeader(l Leader) { s.leader = l }

// SetEventSink sets the optional event sink.
func (s *Scene) SetEventSink(sink EventSink) { s.sink = sink }

// SetDebugMode enables or disables debug mode. When enabled, camera bounds
// are checked every tick, progress and rebuilds are logged to stderr and a
// text overlay is drawn.
func (s *Scene) SetDebugMode(enabled bool) { s.debug = enabled }

// DebugMode reports whether debug mode is on.
func (s *Scene) DebugMode() bool { return s.debug }

// Describe returns a multi-line dump of the scene's state.
func (s *Scene) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scene{tick: %d, ready: %t}\n", s.tick, s.ready)
	fmt.Fprintf(&b, "  %s\n", s.grid.Describe())
	fmt.Fprintf(&b, "  %s\n", s.builder.Describe())
	fmt.Fprintf(&b, "  %s\n", s.cache.Describe())
	fmt.Fprintf(&b, "  %s\n", s.camera.Describe())
	if d, ok := s.leader.(interface{ Describe() string }); ok {
		fmt.Fprintf(&b, "  %s\n", d.Describe())
	}
	return b.String()
}

func (s *Scene) debugLines() []string {
	lines := []string{fmt.Sprintf("%.0ffps", ebiten.ActualFPS())}
	if s.leader != nil {
		x, y := s.leader.Position()
		lines = append(lines, fmt.Sprintf("Leader: %.0fx%.0f walking=%t", x, y, s.leader.Walking()))
	}
	if s.ready {
		x, y := s.camera.Pos()
		lines = append(lines, fmt.Sprintf("Camera: %dx%d", x, y))
		if w, ok := s.cache.LastWindow(); ok {
			lines = append(lines, fmt.Sprintf("Window: %s rebuilds=%d", w, s.cache.Rebuilds()))
		}
	}
	return lines
}

// tickSeconds returns the duration of one tick at the current TPS.
func tickSeconds() float32 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return float32(1.0 / float64(tps))
}
