package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/backmassage/clipcraft/internal/config"
)

func newTestLogger(t *testing.T, verbose bool) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.Verbose = verbose
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { l.Close() })
	var out, errOut bytes.Buffer
	l.SetOutput(&out, &errOut)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l, &out, &errOut
}

func TestNewLogger_NoFile(t *testing.T) {
	l, out, _ := newTestLogger(t, false)
	l.Info("test message")
	if got, want := out.String(), "2026-01-02 03:04:05 [INFO] test message\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "nested", "clipcraft.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
}

func TestErrorGoesToErrWriter(t *testing.T) {
	l, out, errOut := newTestLogger(t, false)
	l.Error("boom %d", 7)
	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[ERROR] boom 7") {
		t.Errorf("stderr: %q", errOut.String())
	}
}

func TestDebugRequiresVerbose(t *testing.T) {
	l, out, _ := newTestLogger(t, false)
	l.Debug("hidden")
	if out.Len() != 0 {
		t.Errorf("Debug without verbose wrote %q", out.String())
	}

	l, out, _ = newTestLogger(t, true)
	l.Debug("shown")
	if !strings.Contains(out.String(), "[DEBUG] shown") {
		t.Errorf("Debug with verbose wrote %q", out.String())
	}
}

func TestLevels(t *testing.T) {
	l, out, _ := newTestLogger(t, false)
	l.Success("ok")
	l.Warn("careful")
	for _, want := range []string{"[SUCCESS] ok", "[WARN] careful"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output %q missing %q", out.String(), want)
		}
	}
}
