package ffmpeg

import (
	"errors"
	"strconv"

	"github.com/backmassage/clipcraft/internal/config"
	"github.com/backmassage/clipcraft/internal/edit"
	"github.com/backmassage/clipcraft/internal/planner"
)

// Tools names the binaries a command may invoke and whether the output
// path is appended.
type Tools struct {
	FFmpeg         string
	FFplay         string
	EmitOutputPath bool
}

// DefaultTools uses ffmpeg and ffplay from PATH and appends the output path.
func DefaultTools() Tools {
	return Tools{FFmpeg: "ffmpeg", FFplay: "ffplay", EmitOutputPath: true}
}

// ToolsFromConfig reads the tool settings out of cfg.
func ToolsFromConfig(cfg *config.Config) Tools {
	return Tools{
		FFmpeg:         cfg.FFmpegPath,
		FFplay:         cfg.FFplayPath,
		EmitOutputPath: cfg.EmitOutputPath,
	}
}

// Plan folds ops into a planner.Plan. Every operation list produced by
// edit.Parse plans; only a foreign edit.Op implementation yields a
// *CompileError.
func Plan(ops []edit.Op) (*planner.Plan, error) {
	plan, err := planner.BuildPlan(ops)
	if err != nil {
		var ue *planner.UnrecognizedOpError
		if errors.As(err, &ue) {
			return nil, &CompileError{Op: ue.Op.String(), Err: err}
		}
		return nil, err
	}
	return plan, nil
}

// Compile plans ops and builds the command for them.
func Compile(ops []edit.Op, tools Tools) (*Command, error) {
	plan, err := Plan(ops)
	if err != nil {
		return nil, err
	}
	return Build(plan, tools), nil
}

// Build lays out the argument list for plan: merge inputs, then the
// filter, rate-control and mapping groups, then the output path.
func Build(plan *planner.Plan, tools Tools) *Command {
	cmd := &Command{Invocation: tools.FFmpeg}
	if plan.Execution == edit.ExecPreview {
		cmd.Invocation = tools.FFplay
	}

	args := make([]string, 0, 2*len(plan.Inputs)+16)

	// --- Inputs ---
	for _, in := range plan.Inputs {
		args = append(args, "-i", in)
	}

	// --- Filters ---
	if vf := planner.JoinFilters(plan.Filters); vf != "" {
		args = append(args, "-vf", vf)
	}

	// --- Rate control ---
	if plan.Rate != nil {
		args = appendRate(args, plan.Rate)
	}

	// --- Stream maps ---
	args = append(args, plan.MapOpts...)

	// --- Output ---
	if tools.EmitOutputPath && plan.OutputPath != "" {
		args = append(args, plan.OutputPath)
	}

	cmd.Args = args
	return cmd
}

// appendRate adds -crf, -maxrate and -bufsize; rates are in megabits.
func appendRate(args []string, rc *planner.RateControl) []string {
	return append(args,
		"-crf", strconv.Itoa(rc.CRF),
		"-maxrate", formatMbit(rc.MaxRate),
		"-bufsize", formatMbit(rc.BufSize),
	)
}

func formatMbit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "M"
}
