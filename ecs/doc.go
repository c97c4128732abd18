// Package ecs bridges tileworld scene events into a [Donburi] world.
//
// [NewDonburiSink] returns a [tileworld.EventSink] that publishes each event
// as a typed Donburi event. Subscribe to [WorldEventType] and call its
// ProcessEvents from your systems:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
//	ecs.WorldEventType.Subscribe(world, func(w donburi.World, e tileworld.Event) {
//		if e.Type == tileworld.EventBuildComplete {
//			// ...
//		}
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
