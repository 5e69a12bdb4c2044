package pipeline

import (
	"time"

	"github.com/backmassage/clipcraft/internal/ffmpeg"
)

// Outcome is how a run ended.
type Outcome int

const (
	OutcomeRejected Outcome = iota // Tokens failed to parse or compile.
	OutcomeDeclined                // The confirmation answer was not "Y".
	OutcomeDryRun                  // Confirmed, but execution is disabled.
	OutcomeExecuted                // The command ran and exited 0.
	OutcomeFailed                  // The tool was missing or exited non-zero.
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeDeclined:
		return "declined"
	case OutcomeDryRun:
		return "dry-run"
	case OutcomeExecuted:
		return "executed"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Result describes a finished run.
type Result struct {
	Outcome Outcome
	Command *ffmpeg.Command // nil when rejected.
	Err     error           // Parse, compile, check or execution error.

	Elapsed     time.Duration
	OutputBytes int64 // Size of the output file after a successful run, 0 if unknown.
}

// ExitCode maps the outcome to a process exit status. Rejected and
// declined runs are not failures.
func (r Result) ExitCode() int {
	if r.Outcome == OutcomeFailed {
		return 1
	}
	return 0
}
