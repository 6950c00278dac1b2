package pipeline

import (
	"testing"
)

func TestPoolSize(t *testing.T) {
	tests := []struct {
		name  string
		cores int
		tasks int
		want  int
	}{
		{"fewer tasks than cores", 8, 3, 3},
		{"more tasks than cores", 4, 100, 4},
		{"equal", 4, 4, 4},
		{"single task", 16, 1, 1},
		{"zero tasks means zero workers", 8, 0, 0},
		{"negative tasks", 8, -1, 0},
		{"undetectable cores defaults to 4", 0, 10, 4},
		{"negative cores defaults to 4", -1, 2, 2},
		{"undetectable cores, few tasks", 0, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PoolSize(tt.cores, tt.tasks)
			if got != tt.want {
				t.Errorf("PoolSize(%d, %d) = %d, want %d", tt.cores, tt.tasks, got, tt.want)
			}
		})
	}
}

func TestPoolSize_AtLeastOneWorkerWhenWork(t *testing.T) {
	for cores := -1; cores <= 8; cores++ {
		for tasks := 1; tasks <= 8; tasks++ {
			if got := PoolSize(cores, tasks); got < 1 {
				t.Errorf("PoolSize(%d, %d) = %d, want >= 1", cores, tasks, got)
			}
		}
	}
}
