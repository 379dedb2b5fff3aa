// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".lvstride"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix.
const envPrefix = "LVSTRIDE"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Option customizes Load.
type Option func(*viper.Viper) error

// WithFlag binds a command-line flag to a config key. A flag the user set
// overrides env, file and defaults; an unset flag is ignored. A nil flag is
// a no-op.
func WithFlag(key string, flag *pflag.Flag) Option {
	return func(v *viper.Viper) error {
		if flag == nil {
			return nil
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
		return nil
	}
}

// Load reads configuration from flags, env vars, file and defaults, in that
// order of precedence.
// If configPath is non-empty it is used as the explicit config file path;
// otherwise .lvstride.yaml is searched in CWD and $HOME. A missing searched
// file is not an error.
func Load(configPath string, opts ...Option) (*Config, error) {
	v := New()
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	if configPath != "" {
		// An explicit path must exist.
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return Decode(v)
}

// New returns a viper instance with defaults and env binding applied.
func New() *viper.Viper {
	v := viper.New()
	applyDefaults(v)
	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()
	return v
}

// Decode unmarshals and validates v.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)

	v.SetDefault("apply.op", DefaultApplyOp)

	v.SetDefault("ring.capacity", DefaultRingCapacity)

	v.SetDefault("gen.kind", DefaultGenKind)
	v.SetDefault("gen.vertices", DefaultGenVertices)
	v.SetDefault("gen.probability", DefaultGenProbability)
	v.SetDefault("gen.seed", DefaultGenSeed)

	v.SetDefault("output.color", DefaultOutputColor)
	v.SetDefault("output.metrics", DefaultOutputMetrics)
}
