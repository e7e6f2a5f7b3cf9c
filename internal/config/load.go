package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/zjrosen/glint/internal/log"
)

// FindConfigFile returns the first config file found in the lookup
// order: ./.glint/config.yaml, then ~/.config/glint/config.yaml.
// Returns "" when no config file exists.
func FindConfigFile() string {
	candidates := []string{filepath.Join(".glint", "config.yaml")}
	if dir := UserConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads configuration from the standard lookup locations, layered
// over Defaults(). A missing config file is not an error.
func Load() (Config, error) {
	return LoadFrom(FindConfigFile())
}

// LoadFrom reads configuration from an explicit path layered over
// Defaults(). An empty path returns the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	// Custom key delimiter "::" allows dotted keys like "syntax.keyword"
	// in the theme.colors map without viper treating them as nested paths.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Debug(log.CatConfig, "Loaded config", "path", path)
	return cfg, nil
}
