// Package term resolves the configured color mode to a termenv color
// profile shared by the logger and the display package.
//
// [Configure] runs once during startup. Until then, and whenever colors
// are off, the profile is termenv.Ascii and [Paint] returns text unchanged.
package term

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/backmassage/clipcraft/internal/config"
)

// Color is an ANSI palette index.
type Color string

// Bright palette entries used for log levels.
const (
	Red     Color = "9"
	Green   Color = "10"
	Yellow  Color = "11"
	Blue    Color = "12"
	Magenta Color = "13"
	Cyan    Color = "14"
)

var (
	mu      sync.RWMutex
	profile = termenv.Ascii
)

// Configure sets the shared profile from mode, detecting the terminal on
// stdout in auto mode.
func Configure(mode config.ColorMode) {
	p := Resolve(mode, os.Stdout, os.Getenv)
	mu.Lock()
	profile = p
	mu.Unlock()
}

// Profile returns the configured profile.
func Profile() termenv.Profile {
	mu.RLock()
	defer mu.RUnlock()
	return profile
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return Profile() != termenv.Ascii }

// Paint renders s bold in color c, or returns s as is when colors are off.
func Paint(c Color, s string) string {
	p := Profile()
	if p == termenv.Ascii {
		return s
	}
	return p.String(s).Foreground(p.Color(string(c))).Bold().String()
}

// Resolve picks the profile for mode. Auto mode colors only a terminal
// and honors NO_COLOR (https://no-color.org) and TERM=dumb.
func Resolve(mode config.ColorMode, out *os.File, getenv func(string) string) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.ANSI256
	case config.ColorNever:
		return termenv.Ascii
	}
	if !IsTerminal(out) || getenv("NO_COLOR") != "" || strings.EqualFold(getenv("TERM"), "dumb") {
		return termenv.Ascii
	}
	return termenv.ANSI256
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
