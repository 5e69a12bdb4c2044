package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// ExecOptions controls where a running command's output goes.
type ExecOptions struct {
	Stdout io.Writer // nil discards.
	// Tee copies stderr to this writer while it is captured; nil captures
	// silently.
	Tee io.Writer
}

// ExecResult holds the outcome of a single invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// Execute runs cmd and waits for it. Stderr is always captured for
// [Diagnose]; with opts.Tee set it is also streamed live.
func Execute(ctx context.Context, cmd *Command, opts ExecOptions) ExecResult {
	c := exec.CommandContext(ctx, cmd.Invocation, cmd.Args...)
	c.Stdout = opts.Stdout

	var stderrBuf bytes.Buffer
	if opts.Tee != nil {
		c.Stderr = io.MultiWriter(&stderrBuf, opts.Tee)
	} else {
		c.Stderr = &stderrBuf
	}

	err := c.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
