package tileworld

import (
	"fmt"
	"strings"
)

// EventSink is the interface for optional event forwarding. When set on a
// Scene, world events are passed to it as they happen.
type EventSink interface {
	Emit(event Event)
}

// EventType identifies a kind of world event.
type EventType uint8

const (
	EventBuildProgress EventType = iota // a build step finished without completing the grid
	EventBuildComplete                  // the last cell was filled
	EventWindowRebuilt                  // the composite was repainted for a new window
	EventFollowStarted                  // the camera began an eased follow
	EventFollowArrived                  // an eased follow reached its target
)

var eventTypeNames = [...]string{
	EventBuildProgress: "build_progress",
	EventBuildComplete: "build_complete",
	EventWindowRebuilt: "window_rebuilt",
	EventFollowStarted: "follow_started",
	EventFollowArrived: "follow_arrived",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event carries the data of one world event. Which fields are set depends on
// Type: builds fill Progress/Total, rebuilds fill Window, follows fill X/Y
// with the camera position.
type Event struct {
	Type     EventType
	Tick     int
	Progress int
	Total    int
	Window   Window
	X, Y     int
}

// String formats the event as a fixed-width log line.
//
//	[T=042] window_rebuilt   (12,8)-(53,32)
func (e Event) String() string {
	var detail string
	switch e.Type {
	case EventBuildProgress, EventBuildComplete:
		detail = fmt.Sprintf("%d/%d", e.Progress, e.Total)
	case EventWindowRebuilt:
		detail = e.Window.String()
	default:
		detail = fmt.Sprintf("camera %dx%d", e.X, e.Y)
	}
	return fmt.Sprintf("[T=%03d] %-16s %s", e.Tick, e.Type, detail)
}

// EventLog is an in-memory EventSink. It is unbounded and meant for headless
// runs and tests.
type EventLog struct {
	entries []Event
}

// NewEventLog creates an empty EventLog.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Emit records event.
func (l *EventLog) Emit(event Event) {
	l.entries = append(l.entries, event)
}

// Entries returns every recorded event in order.
func (l *EventLog) Entries() []Event {
	return l.entries
}

// Count returns how many events of type t were recorded.
func (l *EventLog) Count(t EventType) int {
	n := 0
	for _, e := range l.entries {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Last returns the most recent event of type t.
func (l *EventLog) Last(t EventType) (Event, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Type == t {
			return l.entries[i], true
		}
	}
	return Event{}, false
}

// String renders the whole log, one event per line.
func (l *EventLog) String() string {
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
