// Package config handles loading, defaulting, and validation of the
// ls-telsite TOML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level configuration, mirroring the TOML sections.
type Config struct {
	Catalog CatalogConfig `toml:"catalog" json:"catalog"`
	Display DisplayConfig `toml:"display" json:"display"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

type CatalogConfig struct {
	// ObsCodesPath points at a local copy of the full MPC observatory-code
	// table. Empty selects the embedded snapshot.
	ObsCodesPath string `toml:"obscodes_path" json:"obscodes_path"`
}

type DisplayConfig struct {
	// Separator joins sexagesimal fields. Single character; empty means
	// one space.
	Separator string `toml:"separator" json:"separator"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level"`
}

// Default returns a Config populated with sane defaults. Values here are
// used whenever the TOML file omits a field.
func Default() Config {
	return Config{
		Display: DisplayConfig{Separator: " "},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the TOML file at path, layers it on top of the defaults, and
// validates the result. A missing file is not an error; the defaults
// apply.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if len(cfg.Display.Separator) > 1 {
		return fmt.Errorf("display.separator must be a single character, got %q", cfg.Display.Separator)
	}
	switch cfg.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q not one of debug, info, warn, error", cfg.Logging.Level)
	}
	if p := cfg.Catalog.ObsCodesPath; p != "" {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("catalog.obscodes_path: %w", err)
		}
	}
	return nil
}
