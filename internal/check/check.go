// Package check validates that the external tools a command needs are
// available before it is run.
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrInvocationNotFound is returned by CheckInvocation when the binary is
// not on PATH.
var ErrInvocationNotFound = errors.New("invocation not found on PATH")

// CheckInvocation verifies that name resolves to an executable, either as
// a path or through PATH.
func CheckInvocation(name string) error {
	if name == "" {
		return fmt.Errorf("empty invocation: %w", ErrInvocationNotFound)
	}
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s: %w", name, ErrInvocationNotFound)
	}
	return nil
}

// ToolVersion runs "<name> -version" and returns the first line of its
// output, e.g. "ffmpeg version 6.1.1".
func ToolVersion(name string) (string, error) {
	out, err := exec.Command(name, "-hide_banner", "-version").Output()
	if err != nil {
		return "", fmt.Errorf("%s -version: %w", name, err)
	}
	return firstLine(string(out)), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
