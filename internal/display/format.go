package display

import (
	"fmt"
	"strings"

	"github.com/backmassage/clipcraft/internal/planner"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatBitrateLabel returns a short label for bitrate in kbps (e.g. "1200 kbps").
func FormatBitrateLabel(kbps int64) string {
	if kbps < 1000 {
		return fmt.Sprintf("%d kbps", kbps)
	}
	return fmt.Sprintf("%.1f Mbps", float64(kbps)/1000)
}

// FormatRate summarizes a rate control, e.g. "crf 25, maxrate 3.0 Mbps, bufsize 6.0 Mbps".
func FormatRate(rc planner.RateControl) string {
	return fmt.Sprintf("crf %d, maxrate %s, bufsize %s",
		rc.CRF,
		FormatBitrateLabel(int64(rc.MaxRate*1000)),
		FormatBitrateLabel(int64(rc.BufSize*1000)))
}

// shellSpecial are the characters that make an argument need quoting when
// pasted into a POSIX shell.
const shellSpecial = " \t\n'\"\\$`*?[]{}()<>|&;#~!"

// QuoteArg single-quotes arg when a shell would otherwise split or expand it.
func QuoteArg(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, shellSpecial) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// CommandLine renders invocation and args as one shell-pasteable line.
func CommandLine(invocation string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, QuoteArg(invocation))
	for _, a := range args {
		parts = append(parts, QuoteArg(a))
	}
	return strings.Join(parts, " ")
}
