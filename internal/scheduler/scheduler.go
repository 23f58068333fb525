package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"github.com/mvilela/lumo/internal/jobs"
	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/worker"
)

// Scheduler submits the daily maintenance jobs at the day boundary.
type Scheduler struct {
	scheduler *gocron.Scheduler
	pool      *worker.Pool
	rollover  *jobs.RolloverJob
	retention *jobs.RetentionJob
	log       *logger.Logger
}

// New creates a Scheduler that submits jobs to the given pool.
func New(pool *worker.Pool, rollover *jobs.RolloverJob, retention *jobs.RetentionJob) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		pool:      pool,
		rollover:  rollover,
		retention: retention,
		log:       logger.Default().WithPrefix("scheduler"),
	}
}

// Start registers the recurring jobs and begins running them in the
// background. The rollover runs just after midnight; retention runs once a
// day as well.
func (s *Scheduler) Start() {
	if _, err := s.scheduler.Every(1).Day().At("00:05").Do(func() {
		s.pool.Submit(s.rollover)
	}); err != nil {
		s.log.Error("failed to schedule challenge rollover: %v", err)
	}
	if _, err := s.scheduler.Every(1).Day().At("03:00").Do(func() {
		s.pool.Submit(s.retention)
	}); err != nil {
		s.log.Error("failed to schedule activity retention: %v", err)
	}
	s.scheduler.StartAsync()
	s.log.Info("daily maintenance jobs scheduled")
}

// Stop terminates the scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}
