// Command webpify is the CLI entrypoint for the batch WebP converter.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or converts every PNG/JPEG in the target directory
// to a lossy WebP sibling, in parallel across logical cores.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/webpify/internal/check"
	"github.com/backmassage/webpify/internal/config"
	"github.com/backmassage/webpify/internal/display"
	"github.com/backmassage/webpify/internal/logging"
	"github.com/backmassage/webpify/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "webpify: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "webpify: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webpify: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		log.Error("Directory not found: %s", cfg.InputDir)
		return 1
	}

	log.Info("=== webpify v%s (%s) ===", version, commit)
	log.Info("Dir: %s", inputAbs)
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be written")
	}
	log.Info("")

	// Phase 3: Run the batch. The first failed conversion aborts the run
	// with no sentinel or summary; outputs already written stay on disk.
	stats := pipeline.Run(&cfg, log)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// absPath returns the absolute, symlink-resolved path for display.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
