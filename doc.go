// Package tileworld renders a large, procedurally built 2D tile world for
// [Ebitengine] and scrolls a viewport across it, following a leader sprite.
//
// # Quick start
//
// [Run] opens a window and game loop around a [Scene]:
//
//	scene, err := tileworld.NewScene(tileworld.DefaultConfig(), tileworld.SceneOptions{
//		Tileset: tileworld.NewSimpleMoodTileset(sheet),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	tileworld.Run(scene, tileworld.RunConfig{Title: "Tiles"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update], [Scene.Draw] and [Scene.Layout] directly.
//
// # Building
//
// A [TileGrid] is filled cell by cell by a [Builder] pulling records from a
// [TileSource]. Each Scene tick runs one builder step bounded by a time
// budget, so a large world loads over several frames behind a progress bar
// instead of blocking. [FloorSource] is the stock source: random floor tiles
// with a tint gradient across the grid.
//
// # Windows and the composite
//
// Only cells near the viewport are painted. [TileGrid.WindowAt] turns a
// camera cell and a viewport size into a [Window], a half-open cell rectangle
// clipped to the grid, and a [WindowCursor] walks it row-major:
//
//	cur := grid.VisibleWindow(cx, cy, 1280, 720)
//	for cur.Next() {
//		for _, rec := range cur.Cell() {
//			// ...
//		}
//	}
//
// [CompositeCache] paints the window into a [Canvas] (normally a grid-sized
// [Surface]) and skips the repaint while the window stays the same. Drawing
// the frame is then a single crop of the surface at the camera position.
//
// # Camera
//
// [Camera] keeps its position inside bounds derived from the world size and
// the viewport. When the leader leaves the centre band of the screen,
// [Camera.StartFollowing] plans a scroll that brings it back, eased with an
// out-sine curve over [Camera.FollowSpeed] ticks. [Camera.ScrollTo] runs a
// timed scroll with any [gween] easing function.
//
// # Events
//
// A Scene reports build progress, repaints and follow transitions to an
// [EventSink]. [EventLog] records them in memory; the ecs sub-module
// forwards them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tileworld
