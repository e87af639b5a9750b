package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/topology"
)

// ErrInvalidConfig is returned by Validate for settings the game cannot run with
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	Seed                int64         `json:"seed"` // 0 picks a fresh seed every run
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	InjectionCount      int           `json:"injection_count"`
	WithPatterns        bool          `json:"with_patterns"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               30,
		Height:              30,
		FrameRate:           100 * time.Millisecond,
		Seed:                0,
		MaxGenerations:      0, // run until interrupted
		AutoRestart:         false,
		StagnationThreshold: 5,
		InjectionCount:      3,
		WithPatterns:        false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid settings in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the settings the game cannot recover from
func (c Config) Validate() error {
	if _, err := topology.NewDimensions(c.Width, c.Height); err != nil {
		return errors.Wrap(err, "[Validate] bad board size")
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame_rate: %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max_generations: %d", c.MaxGenerations)
	}
	if c.StagnationThreshold < 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold must be positive: %d", c.StagnationThreshold)
	}
	if c.InjectionCount < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative injection_count: %d", c.InjectionCount)
	}
	return nil
}
