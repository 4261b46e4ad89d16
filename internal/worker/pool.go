package worker

import (
	"context"
	"sync"

	"github.com/osse101/QuestBot_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers. Jobs run with ctx.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			if err := job.Process(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue adds a job without blocking. It returns false when the queue is
// full or the pool is stopping.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop stops the workers and waits for them to finish. Queued jobs that
// have not started are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}
