package services

import (
	"context"
	"fmt"

	"github.com/mvilela/lumo/internal/clock"
	"github.com/mvilela/lumo/internal/errors"
	"github.com/mvilela/lumo/internal/events"
	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
)

// StreakService tracks daily-activity continuity. A streak continues when
// activity lands on consecutive calendar days and resets after a gap.
type StreakService interface {
	RecordDailyActivity(ctx context.Context) error
}

type streakService struct {
	lock         *StatsLock
	stats        repository.StatsRepository
	progress     ProgressService
	clk          clock.Clock
	dispatcher   *events.Dispatcher
	baseStreakXP int
}

// NewStreakService creates a new StreakService. baseStreakXP scales the XP
// granted when the streak grows: day n pays baseStreakXP*n.
func NewStreakService(lock *StatsLock, stats repository.StatsRepository, progress ProgressService, clk clock.Clock, dispatcher *events.Dispatcher, baseStreakXP int) StreakService {
	return &streakService{
		lock:         lock,
		stats:        stats,
		progress:     progress,
		clk:          clk,
		dispatcher:   dispatcher,
		baseStreakXP: baseStreakXP,
	}
}

func (s *streakService) RecordDailyActivity(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("streak")

	s.lock.Lock()
	streak, increased, err := s.advance(ctx)
	s.lock.Unlock()
	if err != nil {
		return err
	}
	if !increased {
		return nil
	}

	log.Info("streak increased to %d", streak)

	amount := s.baseStreakXP * streak
	desc := fmt.Sprintf("Streak day %d", streak)
	if _, err := s.progress.AwardXP(ctx, amount, models.SourceStreak, desc, nil); err != nil {
		return err
	}

	stats, err := s.progress.Stats(ctx)
	if err != nil {
		return err
	}
	s.dispatcher.Publish(ctx, events.Event{Type: events.StreakIncreased, Count: streak, Stats: stats})
	return nil
}

// advance applies the day-rollover state machine and reports the resulting
// streak length and whether it strictly increased. Callers must hold the
// stats lock.
func (s *streakService) advance(ctx context.Context) (int, bool, error) {
	stats, err := loadOrSeedStats(ctx, s.stats)
	if err != nil {
		return 0, false, err
	}

	today := clock.StartOfDay(s.clk.Now())
	prevStreak := stats.CurrentStreak

	switch {
	case stats.LastActiveDate != nil && clock.SameDay(*stats.LastActiveDate, today):
		// Already counted today.
		return stats.CurrentStreak, false, nil
	case stats.LastActiveDate != nil && clock.DaysBetween(*stats.LastActiveDate, today) == 1:
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestStreak {
			stats.LongestStreak = stats.CurrentStreak
		}
	default:
		// Gap, or first activity ever.
		stats.CurrentStreak = 1
		stats.StreakStartDate = &today
		if stats.LongestStreak < 1 {
			stats.LongestStreak = 1
		}
	}
	stats.LastActiveDate = &today

	if err := s.stats.Update(ctx, *stats); err != nil {
		return 0, false, errors.NewInternalError(err)
	}
	return stats.CurrentStreak, stats.CurrentStreak > prevStreak, nil
}
