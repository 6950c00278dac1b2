package pipeline

import (
	"github.com/backmassage/webpify/internal/naming"
)

// Task is an immutable pairing of a source image and its derived WebP
// destination.
type Task struct {
	Source string
	Dest   string
}

// BuildTasks maps discovered files to conversion tasks. Purely deterministic,
// no I/O; the full list is materialized before dispatch.
func BuildTasks(files []string) []Task {
	tasks := make([]Task, 0, len(files))
	for _, f := range files {
		tasks = append(tasks, Task{Source: f, Dest: naming.DestinationPath(f)})
	}
	return tasks
}
