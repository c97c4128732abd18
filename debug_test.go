package tileworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugCheckCameraInBounds(t *testing.T) {
	cam := NewCamera(100, 100, 400, 400)
	cam.MoveTo(150, 300)
	assert.NotPanics(t, func() { debugCheckCamera(cam) })
}

func TestDebugCheckCameraOutOfBounds(t *testing.T) {
	cam := NewCamera(100, 100, 400, 400)
	cam.x = 301
	assert.Panics(t, func() { debugCheckCamera(cam) })
}

func TestSceneDebugMode(t *testing.T) {
	s, _, _ := newTestScene(t, testConfig(t), SceneOptions{})
	assert.False(t, s.DebugMode(), "follows the config default")

	s.SetDebugMode(true)
	assert.True(t, s.DebugMode())

	buildAll(t, s)
	assert.GreaterOrEqual(t, len(s.debugLines()), 3, "fps, camera and window")
}
