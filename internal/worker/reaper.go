package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/QuestBot_Go/internal/logger"
	"github.com/osse101/QuestBot_Go/internal/metrics"
)

// SessionEvictor is the part of the session registry the reaper drives
type SessionEvictor interface {
	IdleSince(cutoff time.Time) []int64
	EvictIdle(ctx context.Context, playerID int64, cutoff time.Time) (bool, error)
}

// ReaperConfig controls idle eviction. A zero IdleTimeout disables it.
type ReaperConfig struct {
	IdleTimeout   time.Duration
	SweepInterval time.Duration
	Workers       int
	QueueSize     int
}

// IdleSessionReaper periodically ends sessions that have been idle longer
// than the configured timeout, saving each player on the way out.
type IdleSessionReaper struct {
	sessions SessionEvictor
	cfg      ReaperConfig
	pool     *Pool
	now      func() time.Time

	mu      sync.Mutex
	pending map[int64]struct{}

	quit     chan struct{}
	quitOnce sync.Once
	wg       sync.WaitGroup
}

// NewIdleSessionReaper creates a reaper over sessions
func NewIdleSessionReaper(sessions SessionEvictor, cfg ReaperConfig) *IdleSessionReaper {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultReaperWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultReaperQueueSize
	}
	r := &IdleSessionReaper{
		sessions: sessions,
		cfg:      cfg,
		pool:     NewPool(cfg.Workers, cfg.QueueSize),
		now:      time.Now,
		pending:  make(map[int64]struct{}),
		quit:     make(chan struct{}),
	}
	return r
}

// Enabled reports whether the reaper will run
func (r *IdleSessionReaper) Enabled() bool {
	return r.cfg.IdleTimeout > 0 && r.cfg.SweepInterval > 0
}

// Start begins sweeping every SweepInterval until Shutdown
func (r *IdleSessionReaper) Start(ctx context.Context) {
	log := logger.FromContext(ctx)
	if !r.Enabled() {
		log.Info(LogMsgReaperDisabled)
		return
	}

	r.pool.Start(ctx)
	r.wg.Add(1)
	go r.loop(ctx)

	log.Info(LogMsgReaperStarted, "idle_timeout", r.cfg.IdleTimeout, "interval", r.cfg.SweepInterval)
}

func (r *IdleSessionReaper) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Sweep(ctx)
		case <-r.quit:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Sweep queues every idle session for eviction and returns how many were
// queued. Sessions already queued are skipped.
func (r *IdleSessionReaper) Sweep(ctx context.Context) int {
	cutoff := r.now().Add(-r.cfg.IdleTimeout)
	idle := r.sessions.IdleSince(cutoff)

	queued := 0
	for _, id := range idle {
		if !r.markPending(id) {
			continue
		}
		if !r.pool.Enqueue(r.evictJob(id, cutoff)) {
			r.clearPending(id)
			logger.FromContext(ctx).Warn(LogMsgEvictionQueueFull, "player_id", id)
			continue
		}
		queued++
	}

	if len(idle) > 0 {
		logger.FromContext(ctx).Debug(LogMsgReaperSweep, "idle", len(idle), "queued", queued)
	}
	return queued
}

func (r *IdleSessionReaper) evictJob(playerID int64, cutoff time.Time) Job {
	return JobFunc(func(ctx context.Context) error {
		defer r.clearPending(playerID)

		ctx = logger.WithPlayerID(ctx, playerID)
		evicted, err := r.sessions.EvictIdle(ctx, playerID, cutoff)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgEvictionFailed, "error", err)
			return err
		}
		if evicted {
			metrics.SessionsEvicted.Inc()
			logger.FromContext(ctx).Info(LogMsgSessionEvicted, "idle_timeout", r.cfg.IdleTimeout)
		}
		return nil
	})
}

func (r *IdleSessionReaper) markPending(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pending[id]; ok {
		return false
	}
	r.pending[id] = struct{}{}
	return true
}

func (r *IdleSessionReaper) clearPending(id int64) {
	r.mu.Lock()
	delete(r.pending, id)
	r.mu.Unlock()
}

// Shutdown stops sweeping and waits for in-flight evictions, or for ctx
func (r *IdleSessionReaper) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx).With("worker", ReaperWorkerName)
	log.Info(LogMsgWorkerStopping)

	r.quitOnce.Do(func() { close(r.quit) })

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		r.pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWorkerStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWorkerStopTimeout)
		return ctx.Err()
	}
}
