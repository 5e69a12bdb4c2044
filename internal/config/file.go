package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the user config directory.
const AppName = "clipcraft"

// Load builds the runtime config: defaults, then the config file (see
// [Path]), then environment overrides. A missing config file is not an
// error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		cfg := DefaultConfig()
		if err := applyEnv(&cfg, os.LookupEnv); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}
	return LoadFrom(path)
}

// Path returns the config file location: $CLIPCRAFT_CONFIG when set,
// otherwise config.yaml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return expandHome(p), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, "config.yaml"), nil
}

// LoadFrom reads the config at path on top of the defaults and applies
// environment overrides. The decoder is chosen by extension: .toml for
// TOML, anything else is YAML.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.Source = path
	case os.IsNotExist(err):
		// defaults only
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	cfg.LogFile = expandHome(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", displayName(path, cfg.Source), err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func displayName(path, source string) string {
	if source == "" {
		return "(defaults)"
	}
	return path
}
