// Package config loads the lineage configuration with Viper. The
// defaults make the library usable with no config file at all; a TOML
// file or LINEAGE_* environment variables override them.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/arbores/lineage/errors"
)

// Config is the lineage configuration.
type Config struct {
	Extract ExtractConfig `mapstructure:"extract"`
	Log     LogConfig     `mapstructure:"log"`
}

// ExtractConfig configures an extraction pass.
type ExtractConfig struct {
	// PlaceFormat is the fallback place field format applied when a
	// document declares none of its own.
	PlaceFormat string `mapstructure:"place_format"`
	// Workers is the number of concurrent per-record workers. Values
	// below 1 mean single-threaded extraction.
	Workers int `mapstructure:"workers"`
	// KeepSources carries source records into the output aggregate.
	KeepSources bool `mapstructure:"keep_sources"`
	// KeepMedia carries multimedia records into the output aggregate.
	KeepMedia bool `mapstructure:"keep_media"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

var globalConfig *Config

// Load reads the configuration from the default locations, caching the
// result for subsequent calls.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := viper.New()
	SetDefaults(v)

	v.SetConfigName("lineage")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "lineage"))
	}
	v.SetEnvPrefix("LINEAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine; defaults apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	return &config, nil
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Extraction defaults
	v.SetDefault("extract.place_format", "Town, County, Region, Country")
	v.SetDefault("extract.workers", 1)
	v.SetDefault("extract.keep_sources", true)
	v.SetDefault("extract.keep_media", true)

	// Logging defaults
	v.SetDefault("log.json", false)
}

// Default returns the built-in configuration without touching the
// filesystem or environment.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		// Defaults always unmarshal; a failure here is a programming error.
		panic(err)
	}
	return &config
}
