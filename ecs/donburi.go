// Package ecs provides ECS adapters for tileworld.
package ecs

import (
	"github.com/phanxgames/tileworld"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WorldEventType is the Donburi event type for tileworld scene events.
// Subscribe to it in your ECS systems to react to build progress, repaints
// and camera follows.
var WorldEventType = events.NewEventType[tileworld.Event]()

type donburiSink struct {
	world donburi.World
	only  map[tileworld.EventType]bool
}

// NewDonburiSink creates an EventSink that publishes every scene event to
// WorldEventType in world. Events are queued until ProcessEvents runs.
func NewDonburiSink(world donburi.World) tileworld.EventSink {
	return &donburiSink{world: world}
}

// NewFilteredDonburiSink is like NewDonburiSink but forwards only the given
// event types.
func NewFilteredDonburiSink(world donburi.World, types ...tileworld.EventType) tileworld.EventSink {
	only := make(map[tileworld.EventType]bool, len(types))
	for _, t := range types {
		only[t] = true
	}
	return &donburiSink{world: world, only: only}
}

func (s *donburiSink) Emit(event tileworld.Event) {
	if s.only != nil && !s.only[event.Type] {
		return
	}
	WorldEventType.Publish(s.world, event)
}
