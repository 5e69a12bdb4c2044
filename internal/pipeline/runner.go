package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/backmassage/clipcraft/internal/check"
	"github.com/backmassage/clipcraft/internal/config"
	"github.com/backmassage/clipcraft/internal/display"
	"github.com/backmassage/clipcraft/internal/edit"
	"github.com/backmassage/clipcraft/internal/ffmpeg"
	"github.com/backmassage/clipcraft/internal/logging"
)

// stderrTailLines is how much of a failed run's stderr is logged.
const stderrTailLines = 20

// Streams are the standard streams of a run. Out receives the preview,
// the prompt and the tool's stdout; Err receives the tool's live stderr
// in verbose mode.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Run parses tokens (program name first), compiles them, previews the
// command and asks for confirmation, then runs it when cfg.Execute is set.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, tokens []string, s Streams) Result {
	// --- Parse ---
	var opts []edit.Option
	if cfg.CheckPaths {
		opts = append(opts, edit.WithPathCheck(statPath))
	}
	ops, err := edit.Parse(tokens, opts...)
	if err != nil {
		fmt.Fprintf(s.Out, "%#v\n", err)
		return Result{Outcome: OutcomeRejected, Err: err}
	}
	log.Debug("Operations: %s", edit.Describe(ops))

	// --- Compile ---
	plan, err := ffmpeg.Plan(ops)
	if err != nil {
		fmt.Fprintf(s.Out, "%#v\n", err)
		return Result{Outcome: OutcomeRejected, Err: err}
	}
	if plan.Rate != nil {
		log.Debug("Rate control: %s", display.FormatRate(*plan.Rate))
	}
	if plan.OutputPath == "" {
		log.Warn("No output path given")
	}
	cmd := ffmpeg.Build(plan, ffmpeg.ToolsFromConfig(cfg))
	res := Result{Command: cmd}

	// --- Confirm ---
	display.PrintPreview(s.Out, cmd.Invocation, cmd.Args)
	if !confirmed(s.In) {
		fmt.Fprintln(s.Out, "Exiting...")
		res.Outcome = OutcomeDeclined
		return res
	}

	if !cfg.Execute {
		log.Info("Execution is disabled; set execute: true in the config file or %s=1 to run it", config.EnvExecute)
		res.Outcome = OutcomeDryRun
		return res
	}

	// --- Execute ---
	if err := check.CheckInvocation(cmd.Invocation); err != nil {
		log.Error("%v", err)
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}
	if log.Verbose() {
		if v, err := check.ToolVersion(cmd.Invocation); err == nil {
			log.Debug("Using %s", v)
		}
	}

	execOpts := ffmpeg.ExecOptions{Stdout: s.Out}
	if log.Verbose() {
		execOpts.Tee = s.Err
	}

	start := time.Now()
	er := ffmpeg.Execute(ctx, cmd, execOpts)
	res.Elapsed = time.Since(start)

	if er.Err != nil {
		res.Outcome = OutcomeFailed
		res.Err = er.Err
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			return res
		}
		log.Error("%s failed: %v", cmd.Invocation, er.Err)
		logStderr(log, er.Stderr)
		if hint := ffmpeg.Diagnose(er.Stderr); hint != "" {
			log.Warn("Hint: %s", hint)
		}
		return res
	}

	res.Outcome = OutcomeExecuted
	secs := int(res.Elapsed.Seconds())
	if plan.Execution == edit.ExecDefault && plan.OutputPath != "" {
		if fi, err := os.Stat(plan.OutputPath); err == nil {
			res.OutputBytes = fi.Size()
			log.Success("Wrote %s (%s) in %ds", plan.OutputPath, display.FormatBytes(fi.Size()), secs)
			return res
		}
	}
	log.Success("%s finished in %ds", cmd.Invocation, secs)
	return res
}

// confirmed reads one line from in and reports whether it is exactly "Y".
// A line ending (\n or \r\n) is not part of the answer.
func confirmed(in io.Reader) bool {
	if in == nil {
		return false
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line == "Y"
}

// statPath rejects merge inputs that do not exist.
func statPath(path string) error {
	_, err := os.Stat(path)
	return err
}

func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Error("Last output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > stderrTailLines {
		start = len(lines) - stderrTailLines
	}
	for _, l := range lines[start:] {
		log.Error("  %s", l)
	}
}
