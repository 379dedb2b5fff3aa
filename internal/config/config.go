// SPDX-License-Identifier: MIT

// Package config loads lvstride CLI settings from defaults, an optional
// YAML file and LVSTRIDE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Defaults.
const (
	DefaultLogLevel       = "info"
	DefaultApplyOp        = "abs"
	DefaultRingCapacity   = 3
	DefaultGenKind        = "path"
	DefaultGenVertices    = 6
	DefaultGenProbability = 0.3
	DefaultGenSeed        = int64(1)
	DefaultOutputColor    = true
	DefaultOutputMetrics  = false
)

var (
	// ErrInvalidLogLevel is returned for a log level outside debug|info|warn|error.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrInvalidCapacity is returned for a non-positive ring capacity.
	ErrInvalidCapacity = errors.New("config: ring capacity must be positive")

	// ErrInvalidVertices is returned for a negative generator size.
	ErrInvalidVertices = errors.New("config: vertex count must be nonnegative")

	// ErrInvalidProbability is returned for a probability outside [0, 1].
	ErrInvalidProbability = errors.New("config: probability out of range")
)

// Config is the top-level configuration.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Apply  ApplyConfig  `mapstructure:"apply"`
	Ring   RingConfig   `mapstructure:"ring"`
	Gen    GenConfig    `mapstructure:"gen"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ApplyConfig holds defaults for the apply command.
type ApplyConfig struct {
	Op string `mapstructure:"op"`
}

// RingConfig holds defaults for the ring command.
type RingConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// GenConfig holds defaults for the gen command.
type GenConfig struct {
	Kind        string  `mapstructure:"kind"`
	Vertices    int     `mapstructure:"vertices"`
	Probability float64 `mapstructure:"probability"`
	Seed        int64   `mapstructure:"seed"`
}

// OutputConfig holds rendering switches.
type OutputConfig struct {
	Color   bool `mapstructure:"color"`
	Metrics bool `mapstructure:"metrics"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks value domains.
func (c *Config) Validate() error {
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	if c.Ring.Capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.Ring.Capacity)
	}
	if c.Gen.Vertices < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVertices, c.Gen.Vertices)
	}
	if !(c.Gen.Probability >= 0 && c.Gen.Probability <= 1) {
		return fmt.Errorf("%w: %g", ErrInvalidProbability, c.Gen.Probability)
	}
	return nil
}

// SlogLevel maps Log.Level to a slog level. Call after Validate.
func (c *Config) SlogLevel() slog.Level {
	return logLevels[strings.ToLower(c.Log.Level)]
}
