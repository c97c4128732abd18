package tileworld

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-build", "after-build"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeLabel(tt.in), "sanitizeLabel(%q)", tt.in)
	}
}

func TestScreenshotPath(t *testing.T) {
	got := screenshotPath("shots", "20260101_120000", "tick 42")
	assert.Equal(t, filepath.Join("shots", "20260101_120000_tick_42.png"), got)
}

func TestScreenshotQueue(t *testing.T) {
	s, _, _ := newTestScene(t, testConfig(t), SceneOptions{})
	s.Screenshot("a")
	s.Screenshot("b")
	assert.Equal(t, 2, s.PendingScreenshots())
	assert.Equal(t, []string{"a", "b"}, s.screenshotQueue)
}

func TestScreenshotDirFromConfig(t *testing.T) {
	cfg := testConfig(t)
	s, _, _ := newTestScene(t, cfg, SceneOptions{})
	assert.Equal(t, cfg.ScreenshotDir, s.ScreenshotDir)
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		100, 50, 0, 200, // partial alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0,      // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	assert.Equal(t, []byte{127, 63, 0, 200}, img.Pix[0:4])
	assert.Equal(t, []byte{10, 20, 30, 255}, img.Pix[4:8])
	assert.Equal(t, []byte{0, 0, 0, 0}, img.Pix[8:12])
	assert.Equal(t, byte(100), pixels[0], "input is not modified")
}
