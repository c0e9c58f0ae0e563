package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/pamsum/swap"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config is the full pamsum configuration.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Swap    SwapConfig    `toml:"swap"`
	Splotch SplotchConfig `toml:"splotch"`
	Runs    RunsConfig    `toml:"runs"`
	Store   StoreConfig   `toml:"store"`
}

// LogConfig selects the log level: debug, info, warn, error or fatal.
type LogConfig struct {
	Level string `toml:"level"`
}

// SwapConfig holds default swap parameters for new randomized runs.
type SwapConfig struct {
	Iterations          int `toml:"iterations"`
	TargetSwaps         int `toml:"target_swaps"`
	MaxTriesWithoutSwap int `toml:"max_tries_without_swap"`
}

// SplotchConfig holds default splotch parameters.
type SplotchConfig struct {
	Workers int `toml:"workers"`
}

// RunsConfig controls how a grid view computes its runs.
type RunsConfig struct {
	// Workers bounds concurrently computed runs.
	Workers int `toml:"workers"`
	// Seed is the parent seed from which per-run seeds are derived; 0 means the default seed.
	Seed int64 `toml:"seed"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Driver string `toml:"driver"`
	Path   string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	procs := runtime.GOMAXPROCS(0)
	return Config{
		Log: LogConfig{Level: "info"},
		Swap: SwapConfig{
			Iterations:          swap.DefaultIterations,
			MaxTriesWithoutSwap: swap.DefaultMaxTriesWithoutSwap,
		},
		Splotch: SplotchConfig{Workers: procs},
		Runs:    RunsConfig{Workers: procs},
		Store:   StoreConfig{Driver: DriverMemory},
	}
}

// Load reads and validates the TOML file at path over Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over Default and validates the result.
// Unknown keys are rejected.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config.Parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config.Parse: unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q", c.Log.Level))
	}
	if c.Swap.Iterations < 0 {
		errs = append(errs, fmt.Errorf("swap.iterations %d < 0", c.Swap.Iterations))
	}
	if c.Swap.TargetSwaps < 0 {
		errs = append(errs, fmt.Errorf("swap.target_swaps %d < 0", c.Swap.TargetSwaps))
	}
	if c.Swap.MaxTriesWithoutSwap <= 0 {
		errs = append(errs, fmt.Errorf("swap.max_tries_without_swap %d <= 0", c.Swap.MaxTriesWithoutSwap))
	}
	if c.Splotch.Workers <= 0 {
		errs = append(errs, fmt.Errorf("splotch.workers %d <= 0", c.Splotch.Workers))
	}
	if c.Runs.Workers <= 0 {
		errs = append(errs, fmt.Errorf("runs.workers %d <= 0", c.Runs.Workers))
	}
	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Store.Path == "" {
			errs = append(errs, errors.New("store.path is required for sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver %q", c.Store.Driver))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// NewLogger returns a logger writing to w at the configured level, with
// timestamps. An unparsable level falls back to info.
func (c Config) NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
