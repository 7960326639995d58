package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type countJob struct {
	id   int
	fail bool

	mu   *sync.Mutex
	seen map[int]bool
}

type countResult struct {
	id  int
	err error
}

func (r *countResult) Err() error { return r.err }

func (j *countJob) Execute(_ context.Context) Result {
	j.mu.Lock()
	j.seen[j.id] = true
	j.mu.Unlock()

	if j.fail {
		return &countResult{id: j.id, err: errors.New("job failed")}
	}
	return &countResult{id: j.id}
}

func TestPool_ProcessesAllJobs(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[int]bool)

	jobs := make([]Job, 10)
	for i := range jobs {
		jobs[i] = &countJob{id: i, mu: &mu, seen: seen}
	}

	results := NewPool(3).Process(context.Background(), jobs)

	if len(results) != 10 {
		t.Fatalf("Expected 10 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Err() != nil {
			t.Errorf("Expected no error, got %v", r.Err())
		}
	}
	if len(seen) != 10 {
		t.Errorf("Expected all 10 jobs executed, got %d", len(seen))
	}
}

func TestPool_ReportsJobErrors(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[int]bool)

	jobs := []Job{
		&countJob{id: 0, mu: &mu, seen: seen},
		&countJob{id: 1, fail: true, mu: &mu, seen: seen},
		&countJob{id: 2, mu: &mu, seen: seen},
	}

	results := NewPool(2).Process(context.Background(), jobs)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	failed := 0
	for _, r := range results {
		if r.Err() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("Expected exactly 1 failed job, got %d", failed)
	}
}

func TestPool_CancelledContextSkipsJobs(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[int]bool)

	jobs := make([]Job, 5)
	for i := range jobs {
		jobs[i] = &countJob{id: i, mu: &mu, seen: seen}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := NewPool(2).Process(ctx, jobs)
	if len(results) != 0 {
		t.Errorf("Expected no results with a cancelled context, got %d", len(results))
	}
}

func TestPool_ClampsWorkerCount(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[int]bool)

	jobs := []Job{&countJob{id: 0, mu: &mu, seen: seen}}

	results := NewPool(0).Process(context.Background(), jobs)
	if len(results) != 1 {
		t.Errorf("Expected the pool to fall back to one worker, got %d results", len(results))
	}
}
