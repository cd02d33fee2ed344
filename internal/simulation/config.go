// Package simulation provides configuration and process-wide control for the
// organism simulation. Settings are loaded from a JSON file over built-in
// defaults, then optionally overridden from the environment.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all simulation settings
type Config struct {
	Board      BoardConfig      `json:"board"`
	Turn       TurnConfig       `json:"turn"`
	Ability    AbilityConfig    `json:"ability"`
	Population PopulationConfig `json:"population"`
	Log        LogConfig        `json:"log"`
}

// BoardConfig defines the board dimensions
type BoardConfig struct {
	Width    int  `json:"width"`
	Height   int  `json:"height"`
	Diagonal bool `json:"diagonal"` // Eight neighbours instead of four
	TileSize int  `json:"tile_size"`
}

// TurnConfig defines turn pacing
type TurnConfig struct {
	PollIntervalMS int `json:"poll_interval_ms"` // How often a waiting player checks for input
	TickDelayMS    int `json:"tick_delay_ms"`    // Pause between ticks
}

// AbilityConfig defines the player's special ability
type AbilityConfig struct {
	DurationTicks int `json:"duration_ticks"` // Active window, and cooldown after it
}

// PopulationConfig defines the starting organisms
type PopulationConfig struct {
	Strays int   `json:"strays"`
	Seed   int64 `json:"seed"`
}

// LogConfig defines logging output
type LogConfig struct {
	Level string `json:"level"` // logrus level name
}

// DefaultConfig returns the settings used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			Width:    20,
			Height:   15,
			Diagonal: false,
			TileSize: 32,
		},
		Turn: TurnConfig{
			PollIntervalMS: 100,
			TickDelayMS:    50,
		},
		Ability: AbilityConfig{
			DurationTicks: 5,
		},
		Population: PopulationConfig{
			Strays: 12,
			Seed:   1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	return config, nil
}

// Environment variables read by ApplyEnv
const (
	EnvLogLevel     = "LIFEGRID_LOG_LEVEL"
	EnvPollInterval = "LIFEGRID_POLL_INTERVAL_MS"
	EnvTickDelay    = "LIFEGRID_TICK_DELAY_MS"
	EnvStrays       = "LIFEGRID_STRAYS"
	EnvSeed         = "LIFEGRID_SEED"
)

// ApplyEnv loads envFile (if it exists) into the process environment and
// applies any LIFEGRID_* overrides to c. Variables already set in the
// environment win over the file.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{EnvPollInterval, &c.Turn.PollIntervalMS},
		{EnvTickDelay, &c.Turn.TickDelayMS},
		{EnvStrays, &c.Population.Strays},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", e.key, err)
		}
		*e.dst = n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Population.Seed = n
	}
	return nil
}

// PollInterval returns the player input poll interval
func (c *Config) PollInterval() time.Duration {
	if c.Turn.PollIntervalMS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.Turn.PollIntervalMS) * time.Millisecond
}

// TickDelay returns the pause between ticks
func (c *Config) TickDelay() time.Duration {
	if c.Turn.TickDelayMS < 0 {
		return 0
	}
	return time.Duration(c.Turn.TickDelayMS) * time.Millisecond
}
