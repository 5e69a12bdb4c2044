// Package config holds runtime configuration: defaults, the optional config
// file, environment overrides and validation.
//
// The command line itself is reserved for the edit grammar, so nothing here
// is set from flags.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [Load] (file and environment), and passed by pointer to the
// packages that need it.
type Config struct {
	// External tools.
	FFmpegPath string `yaml:"ffmpeg" toml:"ffmpeg"` // Default: "ffmpeg".
	FFplayPath string `yaml:"ffplay" toml:"ffplay"` // Default: "ffplay". Used for --preview.

	// Behavior.
	Execute        bool `yaml:"execute" toml:"execute"`                   // Default: false. Run the command after confirmation.
	EmitOutputPath bool `yaml:"emit_output_path" toml:"emit_output_path"` // Default: true. Append the output path to the command.
	CheckPaths     bool `yaml:"check_paths" toml:"check_paths"`           // Default: false. Require merge inputs to exist.

	// Display and logging.
	Verbose   bool      `yaml:"verbose" toml:"verbose"`
	ColorMode ColorMode `yaml:"color" toml:"color"` // Default: "auto".
	LogFile   string    `yaml:"log_file" toml:"log_file"`

	// Source is the config file that was loaded, empty when defaults only.
	Source string `yaml:"-" toml:"-"`
}

// DefaultConfig returns the built-in defaults. Execution stays off until
// enabled in the config file or with CLIPCRAFT_EXECUTE.
func DefaultConfig() Config {
	return Config{
		FFmpegPath:     "ffmpeg",
		FFplayPath:     "ffplay",
		Execute:        false,
		EmitOutputPath: true,
		CheckPaths:     false,
		Verbose:        false,
		ColorMode:      ColorAuto,
	}
}

// Validate checks enum fields and required tool paths, normalizing the
// color mode to lower case.
func (c *Config) Validate() error {
	c.ColorMode = ColorMode(strings.ToLower(strings.TrimSpace(string(c.ColorMode))))
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	case "":
		c.ColorMode = ColorAuto
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if strings.TrimSpace(c.FFmpegPath) == "" {
		return errors.New("ffmpeg path must not be empty")
	}
	if strings.TrimSpace(c.FFplayPath) == "" {
		return errors.New("ffplay path must not be empty")
	}
	return nil
}
