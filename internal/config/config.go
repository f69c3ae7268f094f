// Package config loads tool configuration with viper: built-in defaults,
// overridden by an optional oxossi.yaml (working directory or explicit
// path), overridden by OXOSSI_* environment variables. Command-line flags
// override all of these at the cmd layer.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the resolved settings for one invocation.
type Config struct {
	// Gazetteer is the place→captaincy data file.
	Gazetteer string `mapstructure:"gazetteer"`
	// DateConfig is the JSON century/part/regex table for date analysis.
	DateConfig string `mapstructure:"date_config"`
	// NamesConfig is the JSON name dictionaries file.
	NamesConfig string `mapstructure:"names_config"`
	// ThemesConfig is the JSON theme keyword groups file.
	ThemesConfig string `mapstructure:"themes_config"`
	// CachePath is the bbolt database caching extracted PDF text.
	// Empty disables caching.
	CachePath string `mapstructure:"cache_path"`
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// Load resolves the configuration. file may be empty, in which case
// oxossi.yaml is looked up in the working directory and is optional.
func Load(file string) (Config, error) {
	v := viper.New()
	v.SetDefault("gazetteer", "data/capitanias.csv")
	v.SetDefault("date_config", "data/date_config.json")
	v.SetDefault("names_config", "data/names.json")
	v.SetDefault("themes_config", "data/themes.json")
	v.SetDefault("cache_path", ".oxossi/cache.db")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("OXOSSI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("oxossi")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
			// No config file is fine; defaults and env apply.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
