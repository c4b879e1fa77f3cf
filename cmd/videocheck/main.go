// Command videocheck is the CLI entrypoint for the video folder report
// generator.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or the scan pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/videocheck/internal/check"
	"github.com/backmassage/videocheck/internal/config"
	"github.com/backmassage/videocheck/internal/display"
	"github.com/backmassage/videocheck/internal/logging"
	"github.com/backmassage/videocheck/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file
	// capture.
	cfg := config.DefaultConfig()
	if err := config.LoadEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "videocheck: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "videocheck: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "videocheck: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "videocheck: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()
	log.Debug(cfg.Verbose, "videocheck v%s (%s)", version, commit)

	// Phase 2: Diagnostics mode exits before any scan work.
	if cfg.CheckOnly {
		check.RunCheck(log)
		return 0
	}

	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Run the pipeline with SIGINT/SIGTERM cancellation. An
	// interrupted or aborted run writes no report files.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := pipeline.Run(ctx, &cfg, log); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
