package concurrent

import (
	"context"
	"sync"
)

type JobFunc[T any, G any] func(ctx context.Context, job T) G

// WorkerPool runs JobFunc over queued jobs with a fixed number of goroutines.
// results arrive in completion order, not submission order.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(ctx context.Context, jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		if ctx.Err() != nil {
			// drain remaining jobs without running them
			continue
		}
		wp.results <- jobFunc(ctx, job)
	}
}

func (wp *WorkerPool[T, G]) Start(ctx context.Context, jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, jobFunc)
	}
}

// Wait block until every worker exited, then close the results channel. call Close first.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// AddJob queue a job, returns ctx.Err() if ctx is done before the job could be queued.
func (wp *WorkerPool[T, G]) AddJob(ctx context.Context, job T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case wp.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (wp *WorkerPool[T, G]) CollectResults() <-chan G {
	return wp.results
}

// Close stop accepting jobs, workers exit once the queue is drained.
func (wp *WorkerPool[T, G]) Close() {
	wp.closeOnce.Do(func() {
		close(wp.jobQueue)
	})
}
