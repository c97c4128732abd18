package tileworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLeaderScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "walk", "dx": 1, "dy": 0, "frames": 2},
			{"action": "wait", "frames": 3},
			{"action": "place", "x": 10, "y": 20}
		]
	}`)

	l, err := LoadLeaderScript(data, NewWalker(100, 100, 10))
	require.NoError(t, err)
	require.Len(t, l.steps, 3)
	assert.Equal(t, scriptStep{Action: "walk", DX: 1, Frames: 2}, l.steps[0])
	assert.Equal(t, scriptStep{Action: "wait", Frames: 3}, l.steps[1])
	assert.Equal(t, scriptStep{Action: "place", X: 10, Y: 20}, l.steps[2])
}

func TestLoadLeaderScriptErrors(t *testing.T) {
	tests := map[string]string{
		"invalid json":   `not json`,
		"empty script":   `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "fly"}]}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadLeaderScript([]byte(data), NewWalker(100, 100, 10))
			assert.ErrorContains(t, err, "parse leader script")
		})
	}
}

func TestScriptedLeaderPlayback(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "walk", "dx": 1, "dy": 0, "frames": 2},
		{"action": "wait", "frames": 2},
		{"action": "place", "x": 10, "y": 20}
	]}`)
	w := NewWalker(100, 100, 10) // starts at (50,50), 12 px per tick
	l, err := LoadLeaderScript(data, w)
	require.NoError(t, err)

	l.Update()
	assert.True(t, l.Walking())
	assert.Equal(t, 62.0, l.X)
	l.Update()
	assert.Equal(t, 74.0, l.X)

	l.Update()
	l.Update()
	assert.False(t, l.Walking())
	assert.Equal(t, 74.0, l.X)
	assert.False(t, l.Done(), "place step still pending")

	l.Update()
	x, y := l.Position()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
	assert.True(t, l.Done())

	l.Update()
	assert.False(t, l.Walking(), "a finished script stands still")
}

func TestScriptedLeaderIsLeader(t *testing.T) {
	l, err := LoadLeaderScript([]byte(`{"steps": [{"action": "wait"}]}`), NewWalker(10, 10, 1))
	require.NoError(t, err)
	var _ Leader = l
}
