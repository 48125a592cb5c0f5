// Package config loads the process-level configuration (Moshaf options,
// data directory, log level) from YAML via viper, the same stack the
// recitation-bot manifest in the pack wires up for its own bot config.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/obadx/quran-transcript/moshaf"
)

// Config is the top-level process configuration: the Moshaf recitation
// options plus the handful of CLI/runtime knobs that are not part of the
// phonetizer's own domain (spec §3.1 MoshafConfig, plus ambient settings).
type Config struct {
	Moshaf   moshaf.Config `mapstructure:",squash"`
	DataDir  string        `mapstructure:"data_dir"`
	LogLevel string        `mapstructure:"log_level"`
}

// Default returns the canonical Hafs-an-Asim configuration with a local
// data directory and info-level logging.
func Default() Config {
	return Config{
		Moshaf:   moshaf.Default(),
		DataDir:  "./data",
		LogLevel: "info",
	}
}

// Load reads configuration from path (YAML) if it exists, falling back to
// Default() for any field the file does not set, and lets TAJWEED_-prefixed
// environment variables override individual keys.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("TAJWEED")
	v.AutomaticEnv()

	cfg := Default()
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("madd_aared_len", cfg.Moshaf.MaddAaredLen)
	v.SetDefault("madd_monfasel_len", cfg.Moshaf.MaddMonfaselLen)
	v.SetDefault("madd_mottasel_len", cfg.Moshaf.MaddMottaselLen)
	v.SetDefault("madd_mottasel_waqf", cfg.Moshaf.MaddMottaselWaqf)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshalling: %w", err)
	}

	return cfg, nil
}
