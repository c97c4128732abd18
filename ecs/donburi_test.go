package ecs

import (
	"testing"

	"github.com/phanxgames/tileworld"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Emit(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []tileworld.Event
	WorldEventType.Subscribe(world, func(w donburi.World, e tileworld.Event) {
		received = append(received, e)
	})

	sink.Emit(tileworld.Event{Type: tileworld.EventBuildProgress, Tick: 3, Progress: 40, Total: 100})
	sink.Emit(tileworld.Event{
		Type:   tileworld.EventWindowRebuilt,
		Tick:   7,
		Window: tileworld.Window{X0: 1, Y0: 2, X1: 5, Y1: 6},
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	WorldEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != tileworld.EventBuildProgress || e.Progress != 40 || e.Total != 100 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Window.Len() != 16 || e.Tick != 7 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	var _ tileworld.EventSink = NewDonburiSink(donburi.NewWorld())
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	WorldEventType.Subscribe(world, func(w donburi.World, e tileworld.Event) { count1++ })
	WorldEventType.Subscribe(world, func(w donburi.World, e tileworld.Event) { count2++ })

	sink.Emit(tileworld.Event{Type: tileworld.EventFollowStarted})
	WorldEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("subscriber counts = %d, %d; want 1, 1", count1, count2)
	}
}

func TestFilteredDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewFilteredDonburiSink(world, tileworld.EventBuildComplete)

	var got []tileworld.EventType
	WorldEventType.Subscribe(world, func(w donburi.World, e tileworld.Event) {
		got = append(got, e.Type)
	})

	sink.Emit(tileworld.Event{Type: tileworld.EventBuildProgress})
	sink.Emit(tileworld.Event{Type: tileworld.EventBuildComplete})
	sink.Emit(tileworld.Event{Type: tileworld.EventWindowRebuilt})
	WorldEventType.ProcessEvents(world)

	if len(got) != 1 || got[0] != tileworld.EventBuildComplete {
		t.Errorf("got %v, want [build_complete]", got)
	}
}
