package tileworld

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8*time.Millisecond, cfg.BuildBudget())
	assert.Equal(t, 30, cfg.FollowSpeed)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"world.json": {Data: []byte(`{"gridWidth": 64, "gridHeight": 48, "seed": 42, "debug": true}`)},
	}
	cfg, err := LoadConfig(fsys, "world.json")
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.GridWidth)
	assert.Equal(t, 48, cfg.GridHeight)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 1280, cfg.ViewportWidth, "missing fields keep defaults")
	assert.Equal(t, "screenshots", cfg.ScreenshotDir)
}

func TestLoadConfigErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.json":     {Data: []byte(`{"tileWidth": `)},
		"invalid.json": {Data: []byte(`{"tileWidth": 0}`)},
		"budget.json":  {Data: []byte(`{"buildBudgetMillis": -1}`)},
	}

	_, err := LoadConfig(fsys, "missing.json")
	assert.ErrorContains(t, err, "failed to read missing.json")

	_, err = LoadConfig(fsys, "bad.json")
	assert.ErrorContains(t, err, "failed to parse bad.json")

	_, err = LoadConfig(fsys, "invalid.json")
	assert.ErrorContains(t, err, "tileWidth must be positive")

	_, err = LoadConfig(fsys, "budget.json")
	assert.ErrorContains(t, err, "buildBudgetMillis")
}

func TestZeroBudgetIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BuildBudgetMillis = 0
	assert.NoError(t, cfg.Validate())
}
