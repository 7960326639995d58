// Package worker provides the bounded-concurrency pool used by batch
// document processing.
package worker

import (
	"context"
	"sync"
)

// Job is one unit of batch work
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job
type Result interface {
	Err() error
}

// Pool executes jobs with a fixed number of workers and preserves no
// ordering guarantees between results
type Pool struct {
	workers int
}

// NewPool creates a pool with the given worker count (minimum 1)
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Process runs all jobs and returns their results once every job has
// finished or the context is cancelled. Jobs not yet started when the
// context ends are skipped.
func (p *Pool) Process(ctx context.Context, jobs []Job) []Result {
	jobCh := make(chan Job)
	resultCh := make(chan Result, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				select {
				case <-ctx.Done():
					return
				default:
				}
				resultCh <- job.Execute(ctx)
			}
		}()
	}

feed:
	for _, job := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case jobCh <- job:
		}
	}
	close(jobCh)

	wg.Wait()
	close(resultCh)

	results := make([]Result, 0, len(jobs))
	for r := range resultCh {
		results = append(results, r)
	}
	return results
}
