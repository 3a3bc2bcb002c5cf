package renderer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config contains the tunable render parameters
type Config struct {
	Width        int     `json:"width"`         // Image width in pixels
	Height       int     `json:"height"`        // Image height in pixels
	SampleCount  int     `json:"sample_count"`  // Rays per material lobe per bounce
	MaxDepth     int     `json:"max_depth"`     // Bounce budget handed to every camera ray
	Cells        int     `json:"cells"`         // Requested tile count; the grid is round(sqrt(Cells)) per side
	IntensityMin float64 `json:"intensity_min"` // Lower clamp applied to intensity at pixel write
	IntensityMax float64 `json:"intensity_max"` // Upper clamp applied to intensity at pixel write
	Seed         int64   `json:"seed"`          // Seeds the generator that seeds every tile
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       500,
		SampleCount:  32,
		MaxDepth:     2,
		Cells:        16,
		IntensityMin: 0,
		IntensityMax: 1,
		Seed:         1,
	}
}

// LoadConfig reads a JSON config file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the config can drive a render
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.SampleCount <= 0 {
		errs = append(errs, fmt.Errorf("sample count must be positive, got %d", c.SampleCount))
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth))
	}
	if c.Cells <= 0 {
		errs = append(errs, fmt.Errorf("cell count must be positive, got %d", c.Cells))
	}
	if c.IntensityMin > c.IntensityMax {
		errs = append(errs, fmt.Errorf("intensity range is empty: [%g, %g]", c.IntensityMin, c.IntensityMax))
	}
	return errors.Join(errs...)
}
