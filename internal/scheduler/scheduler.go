// Package scheduler feeds a worker pool on fixed intervals.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/nt-jambaa/toktok-mini-game/internal/logger"
	"github.com/nt-jambaa/toktok-mini-game/internal/metrics"
	"github.com/nt-jambaa/toktok-mini-game/internal/worker"
)

// LogMsgTickSkipped is logged when a tick fires while the previous run is still queued
const LogMsgTickSkipped = "Scheduled job still pending, skipping tick"

// Scheduler owns one ticker goroutine per scheduled job
type Scheduler struct {
	pool *worker.Pool
	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// ScheduleOption tweaks a single Schedule call
type ScheduleOption func(*schedule)

type schedule struct {
	immediate bool
}

// Immediately runs the job once at registration instead of waiting a full interval
func Immediately() ScheduleOption {
	return func(s *schedule) { s.immediate = true }
}

// New creates a scheduler submitting to pool
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule runs job every interval. A tick that finds the pool busy is dropped,
// so a slow job never builds a backlog.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job, opts ...ScheduleOption) {
	var cfg schedule
	for _, opt := range opts {
		opt(&cfg)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if cfg.immediate {
			s.submit(job, interval)
		}
		for {
			select {
			case <-ticker.C:
				s.submit(job, interval)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) submit(job worker.Job, interval time.Duration) {
	if s.pool.TryEnqueue(job) {
		return
	}
	metrics.PollsSkipped.Inc()
	logger.FromContext(context.Background()).Debug(LogMsgTickSkipped, "interval", interval)
}

// Stop ends every schedule and waits for the ticker goroutines. Safe to call twice.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
