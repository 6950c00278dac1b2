package pipeline

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/backmassage/webpify/internal/convert"
)

// defaultCores is used when the logical core count cannot be determined.
const defaultCores = 4

// PoolSize returns the worker count for a batch: min(cores, tasks), with
// cores falling back to 4 when not detectable. Zero tasks means zero
// workers; at least one worker is allocated whenever there is work.
func PoolSize(cores, tasks int) int {
	if tasks <= 0 {
		return 0
	}
	if cores <= 0 {
		cores = defaultCores
	}
	return min(cores, tasks)
}

// Result is the completion signal one worker sends back per task.
type Result struct {
	Name     string // source basename, for progress reporting
	Width    int
	Height   int
	InBytes  int64
	OutBytes int64
	Err      error
}

// dispatch fans tasks out to a fixed pool of workers and returns the channel
// results arrive on, in completion order. The results channel is buffered to
// len(tasks) so workers never block on send. The channel is closed once
// every task has completed; the coordinator relies on that close to know all
// dispatched work is finished even when it stops reporting after a failure.
func dispatch(tasks []Task, workers int) <-chan Result {
	taskCh := make(chan Task)
	results := make(chan Result, len(tasks))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskCh {
				results <- runTask(task)
			}
		}()
	}

	go func() {
		for _, task := range tasks {
			taskCh <- task
		}
		close(taskCh)
		wg.Wait()
		close(results)
	}()

	return results
}

// runTask converts one file and gathers the numbers the coordinator reports.
func runTask(task Task) Result {
	res := Result{Name: filepath.Base(task.Source)}

	bounds, err := convert.File(task.Source, task.Dest)
	if err != nil {
		res.Err = err
		return res
	}
	res.Width = bounds.Dx()
	res.Height = bounds.Dy()

	if fi, err := os.Stat(task.Source); err == nil {
		res.InBytes = fi.Size()
	}
	if fi, err := os.Stat(task.Dest); err == nil {
		res.OutBytes = fi.Size()
	}
	return res
}
