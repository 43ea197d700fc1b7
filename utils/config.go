package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	RendererTerminal = "terminal"
	RendererConsole  = "console"
	RendererWindow   = "window"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation
type Config struct {
	WindowSize          int           `json:"window_size"`
	SideLength          int           `json:"side_length"`
	LiveProbability     float64       `json:"live_probability"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	InjectionCount      int           `json:"injection_count"`
	Seed                uint64        `json:"seed"`
	Renderer            string        `json:"renderer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		WindowSize:          1000,
		SideLength:          100,
		LiveProbability:     0.15,
		FrameRate:           40 * time.Millisecond, // 25 FPS
		AutoRestart:         false,
		StagnationThreshold: 5,
		UseParallel:         false,
		UseMemoryPool:       true,
		MaxGenerations:      0,
		InjectionCount:      0,
		Seed:                0,
		Renderer:            RendererTerminal,
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

	return config, nil
}

// Validate checks the driver level settings. Grid geometry and density are
// validated by the engine when the universe is built.
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTerminal, RendererConsole, RendererWindow:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown renderer: %q", c.Renderer)
	}
	if c.FrameRate <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must be positive: %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 || c.InjectionCount < 0 || c.StagnationThreshold < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] counters must not be negative")
	}
	return nil
}

// TicksPerSecond converts the frame rate into a tick rate for frame based renderers
func (c Config) TicksPerSecond() int {
	if c.FrameRate <= 0 {
		return 1
	}
	return max(1, int(time.Second/c.FrameRate))
}
