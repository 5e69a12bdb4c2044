package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables read by [Load]. They override the config file.
const (
	EnvConfig  = "CLIPCRAFT_CONFIG"
	EnvFFmpeg  = "CLIPCRAFT_FFMPEG"
	EnvFFplay  = "CLIPCRAFT_FFPLAY"
	EnvExecute = "CLIPCRAFT_EXECUTE"
	EnvVerbose = "CLIPCRAFT_VERBOSE"
	EnvLog     = "CLIPCRAFT_LOG"
	EnvColor   = "CLIPCRAFT_COLOR"
)

// lookupFunc matches os.LookupEnv so tests can supply a fixed environment.
type lookupFunc func(key string) (string, bool)

// applyEnv copies set environment variables into cfg. Boolean variables
// accept the strconv.ParseBool forms.
func applyEnv(cfg *Config, lookup lookupFunc) error {
	if v, ok := lookup(EnvFFmpeg); ok && v != "" {
		cfg.FFmpegPath = v
	}
	if v, ok := lookup(EnvFFplay); ok && v != "" {
		cfg.FFplayPath = v
	}
	if v, ok := lookup(EnvLog); ok && v != "" {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		cfg.ColorMode = ColorMode(v)
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvExecute, &cfg.Execute},
		{EnvVerbose, &cfg.Verbose},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s must be a boolean (got %q)", b.key, v)
		}
		*b.dst = parsed
	}
	return nil
}
