package tileworld

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLog(t *testing.T) {
	log := NewEventLog()
	log.Emit(Event{Type: EventBuildProgress, Tick: 1, Progress: 10, Total: 20})
	log.Emit(Event{Type: EventBuildProgress, Tick: 2, Progress: 20, Total: 20})
	log.Emit(Event{Type: EventWindowRebuilt, Tick: 2, Window: Window{0, 0, 3, 3}})

	assert.Len(t, log.Entries(), 3)
	assert.Equal(t, 2, log.Count(EventBuildProgress))
	assert.Equal(t, 0, log.Count(EventFollowArrived))

	last, ok := log.Last(EventBuildProgress)
	require.True(t, ok)
	assert.Equal(t, 2, last.Tick)

	_, ok = log.Last(EventFollowStarted)
	assert.False(t, ok)

	lines := strings.Split(strings.TrimSpace(log.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[T=002] window_rebuilt   (0,0)-(3,3)", lines[2])
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "[T=007] build_progress   5/9",
		Event{Type: EventBuildProgress, Tick: 7, Progress: 5, Total: 9}.String())
	assert.Equal(t, "[T=120] follow_arrived   camera 64x32",
		Event{Type: EventFollowArrived, Tick: 120, X: 64, Y: 32}.String())
	assert.Equal(t, "unknown", EventType(42).String())
}
