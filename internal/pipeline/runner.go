package pipeline

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/backmassage/webpify/internal/config"
	"github.com/backmassage/webpify/internal/display"
	"github.com/backmassage/webpify/internal/naming"
)

// Logger is the minimal logging interface needed by Run.
// Defined here (rather than importing the logging package) so that the
// runner's output can be asserted against with a mock logger in tests.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Run is the top-level batch entry point. It discovers images, builds the
// task list, warns about destination collisions, fans the tasks out to the
// worker pool, and reports completions in arrival order. The first failed
// conversion aborts the run: no "Done!" sentinel, no summary, and outputs
// already written stay on disk.
func Run(cfg *config.Config, log Logger) RunStats {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		log.Error("Image discovery failed: %v", err)
		stats.Failed++
		return stats
	}

	if len(files) == 0 {
		log.Info("No images found to convert.")
		return stats
	}

	tasks := BuildTasks(files)
	stats.Total = len(tasks)

	// Two sources with the same stem (photo.png + photo.jpg) derive the same
	// destination. Flagged, not resolved: both run and the last writer wins.
	for _, col := range naming.DetectCollisions(files) {
		log.Warn("Destination collision: %s claimed by %s",
			filepath.Base(col.Dest), joinBasenames(col.Sources))
	}

	tasks = filterExisting(cfg, log, tasks, &stats)
	if len(tasks) == 0 {
		log.Info("No images need converting.")
		logSummary(cfg, log, &stats)
		return stats
	}

	if cfg.DryRun {
		for _, task := range tasks {
			log.Info("[DRY] Would convert: %s -> %s",
				filepath.Base(task.Source), filepath.Base(task.Dest))
			stats.Converted++
		}
		logSummary(cfg, log, &stats)
		return stats
	}

	workers := PoolSize(runtime.NumCPU(), len(tasks))
	log.Info("Converting %d images using %d workers...", len(tasks), workers)

	if !drain(cfg, log, dispatch(tasks, workers), len(tasks), &stats) {
		return stats
	}

	log.Success("Done!")
	logSummary(cfg, log, &stats)
	return stats
}

// drain collects results in completion order, printing the 1-indexed running
// counter per arrival. Returns false on the first failed result. Reporting
// stops at the failure, but dispatched work does not: the channel is received
// from until it closes, so every task has run to completion and no worker is
// killed mid-write when the process exits.
func drain(cfg *config.Config, log Logger, results <-chan Result, total int, stats *RunStats) bool {
	i := 0
	for res := range results {
		if res.Err != nil {
			log.Error("Conversion failed: %v", res.Err)
			stats.Failed++
			for range results {
			}
			return false
		}
		i++
		stats.Converted++
		stats.TotalInputBytes += res.InBytes
		stats.TotalOutputBytes += res.OutBytes
		log.Info("[%d/%d] Converted: %s", i, total, res.Name)
		log.Debug(cfg.Verbose, "  %dx%d | %s -> %s",
			res.Width, res.Height,
			display.FormatBytes(res.InBytes), display.FormatBytes(res.OutBytes))
	}
	return true
}

// filterExisting drops tasks whose destination already exists when
// --skip-existing is set. The default is to overwrite.
func filterExisting(cfg *config.Config, log Logger, tasks []Task, stats *RunStats) []Task {
	if !cfg.SkipExisting {
		return tasks
	}
	kept := tasks[:0]
	for _, task := range tasks {
		if _, err := os.Stat(task.Dest); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(task.Dest))
			stats.Skipped++
			continue
		}
		kept = append(kept, task)
	}
	return kept
}

func logSummary(cfg *config.Config, log Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Converted %d, skipped %d of %d images", stats.Converted, stats.Skipped, stats.Total)

	if cfg.DryRun {
		log.Info("Space saved: n/a (dry run)")
		return
	}
	if stats.TotalInputBytes == 0 {
		return
	}

	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Success("Space saved: %s (input %s -> output %s)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	} else {
		log.Warn("Space saved: %s (overall output is larger)",
			display.FormatBytesWithSign(saved))
	}
}

func joinBasenames(paths []string) string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	return strings.Join(names, ", ")
}
