package bootstrap

import (
	"log/slog"
	"time"

	"github.com/nt-jambaa/toktok-mini-game/internal/farm"
	"github.com/nt-jambaa/toktok-mini-game/internal/scheduler"
	"github.com/nt-jambaa/toktok-mini-game/internal/worker"
)

// StartDriver starts the poll loop: a single-worker pool fed by a ticker.
// The caller stops the scheduler before the pool.
func StartDriver(svc farm.Service, mode *farm.ModeSwitch, interval time.Duration) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(PollWorkers, PollQueueSize, worker.WithJobTimeout(PollTimeout))
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(interval, farm.NewPollJob(svc, mode), scheduler.Immediately())

	slog.Info(LogMsgDriverStarted, "interval", interval, "mode", mode.Mode())
	return pool, sched
}
