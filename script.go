package tileworld

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a leader script.
type scriptStep struct {
	Action string  `json:"action"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// leaderScript is the top-level JSON structure for a leader script.
type leaderScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptedLeader is a Leader that replays a JSON script of moves instead of
// reading input. It drives headless runs and tests:
//
//	{"steps": [
//		{"action": "walk", "dx": 1, "dy": 0, "frames": 20},
//		{"action": "wait", "frames": 10},
//		{"action": "place", "x": 40, "y": 360}
//	]}
//
// "walk" steps the walker in direction (dx, dy) for frames ticks, "wait"
// stands still for frames ticks and "place" moves the walker instantly and
// takes one tick.
type ScriptedLeader struct {
	*Walker

	steps     []scriptStep
	cursor    int
	remaining int // ticks left in the current step
	done      bool
}

// LoadLeaderScript parses a JSON script and binds it to w.
func LoadLeaderScript(jsonData []byte, w *Walker) (*ScriptedLeader, error) {
	var script leaderScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse leader script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse leader script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "walk", "wait", "place":
		default:
			return nil, fmt.Errorf("parse leader script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptedLeader{Walker: w, steps: script.Steps}, nil
}

// Done reports whether every step has been played.
func (l *ScriptedLeader) Done() bool {
	return l.done
}

// Update plays one tick of the script.
func (l *ScriptedLeader) Update() {
	if l.done {
		l.Step(nil)
		return
	}
	st := &l.steps[l.cursor]
	if l.remaining == 0 {
		l.remaining = max(st.Frames, 1)
	}

	switch st.Action {
	case "walk":
		l.Step(&Vec2{X: st.DX, Y: st.DY})
	case "wait":
		l.Step(nil)
	case "place":
		l.X, l.Y = st.X, st.Y
		l.Step(nil)
	}

	l.remaining--
	if l.remaining == 0 {
		l.cursor++
		if l.cursor >= len(l.steps) {
			l.done = true
		}
	}
}
