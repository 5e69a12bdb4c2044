// Command clipcraft turns a short edit description into an ffmpeg (or
// ffplay) command, previews it and runs it after confirmation.
//
//	clipcraft [--resize W:H] [--quality Q] [--preview] [--merge P1 P2 ...] <outpath>
//
// Settings come from the config file and CLIPCRAFT_* environment
// variables; the command line is reserved for the edit itself.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/clipcraft/internal/config"
	"github.com/backmassage/clipcraft/internal/display"
	"github.com/backmassage/clipcraft/internal/logging"
	"github.com/backmassage/clipcraft/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	code := 0
	root := newRootCmd(&code)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "clipcraft: %v\n", err)
		return 1
	}
	return code
}

// newRootCmd builds the single clipcraft command. Flag parsing is off so
// every token reaches the edit parser untouched; code receives the exit
// status of the run.
func newRootCmd(code *int) *cobra.Command {
	return &cobra.Command{
		Use:   "clipcraft [--resize W:H] [--quality Q] [--preview] [--merge P1 P2 ...] <outpath>",
		Short: "Compile video edits into an ffmpeg command",

		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,

		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := execute(cmd, args)
			*code = c
			return err
		},
	}
}

func execute(cmd *cobra.Command, args []string) (int, error) {
	// Bootstrap: no logger yet, so errors are returned to run.
	cfg, err := config.Load()
	if err != nil {
		return 1, err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return 1, err
	}
	defer log.Close()

	if cfg.Verbose {
		display.PrintBanner(cmd.ErrOrStderr())
		log.Debug("clipcraft %s (%s)", version, commit)
		if cfg.Source != "" {
			log.Debug("Config: %s", cfg.Source)
		}
	}

	// Cancel a running tool on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens := append([]string{programName()}, args...)
	streams := pipeline.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
	res := pipeline.Run(ctx, &cfg, log, tokens, streams)
	return res.ExitCode(), nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "clipcraft"
}
