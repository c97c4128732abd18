package tileworld

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"time"
)

// Config holds the constants a Scene is built from. It is read once at
// construction; changing it afterwards has no effect on a running Scene.
type Config struct {
	ViewportWidth  int `json:"viewportWidth"`
	ViewportHeight int `json:"viewportHeight"`

	TileWidth  int `json:"tileWidth"`
	TileHeight int `json:"tileHeight"`

	GridWidth  int `json:"gridWidth"`  // in cells
	GridHeight int `json:"gridHeight"` // in cells

	// FollowSpeed is the number of ticks an eased camera follow takes.
	FollowSpeed int `json:"followSpeed"`
	// BuildBudgetMillis is the per-tick wall time spent building the grid.
	BuildBudgetMillis int `json:"buildBudgetMillis"`

	// CameraStartX and CameraStartY position the camera once the build
	// completes. They are clamped to the camera bounds.
	CameraStartX int `json:"cameraStartX"`
	CameraStartY int `json:"cameraStartY"`

	// Seed seeds tile generation. Zero picks a time-based seed.
	Seed uint64 `json:"seed"`

	ScreenshotDir string `json:"screenshotDir"`
	Debug         bool   `json:"debug"`
}

// DefaultConfig returns a 200x100 grid of 32px tiles viewed through a
// 1280x720 viewport.
func DefaultConfig() Config {
	return Config{
		ViewportWidth:     1280,
		ViewportHeight:    720,
		TileWidth:         32,
		TileHeight:        32,
		GridWidth:         200,
		GridHeight:        100,
		FollowSpeed:       DefaultFollowSpeed,
		BuildBudgetMillis: int(DefaultBuildBudget / time.Millisecond),
		CameraStartX:      1800,
		CameraStartY:      1200,
		ScreenshotDir:     "screenshots",
	}
}

// BuildBudget returns BuildBudgetMillis as a duration.
func (c Config) BuildBudget() time.Duration {
	return time.Duration(c.BuildBudgetMillis) * time.Millisecond
}

// Validate reports the first field holding an unusable value.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"viewportWidth", c.ViewportWidth},
		{"viewportHeight", c.ViewportHeight},
		{"tileWidth", c.TileWidth},
		{"tileHeight", c.TileHeight},
		{"gridWidth", c.GridWidth},
		{"gridHeight", c.GridHeight},
		{"followSpeed", c.FollowSpeed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", p.name, p.value)
		}
	}
	if c.BuildBudgetMillis < 0 {
		return fmt.Errorf("config: buildBudgetMillis must not be negative, got %d", c.BuildBudgetMillis)
	}
	return nil
}

// LoadConfig reads the JSON file name from fsys on top of DefaultConfig and
// validates the result. Fields missing from the file keep their defaults.
func LoadConfig(fsys fs.FS, name string) (Config, error) {
	cfg := DefaultConfig()

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}
