package services

import (
	"context"
	"sync"

	"github.com/mvilela/lumo/internal/catalog"
	"github.com/mvilela/lumo/internal/clock"
	"github.com/mvilela/lumo/internal/errors"
	"github.com/mvilela/lumo/internal/events"
	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
)

// StatsLock serializes every read-modify-write of the singleton user stats
// row. All services that mutate user stats share one instance.
type StatsLock struct {
	sync.Mutex
}

// NewStatsLock creates the shared stats lock.
func NewStatsLock() *StatsLock {
	return &StatsLock{}
}

// ProgressService is the XP ledger. It is the only component that mutates
// the XP and level counters, and every award leaves an audit transaction.
type ProgressService interface {
	AwardXP(ctx context.Context, amount int, source models.XPSource, description string, relatedID *int64) (*models.AwardResult, error)
	Stats(ctx context.Context) (*models.UserStats, error)
	RecentTransactions(ctx context.Context, limit int) ([]models.XPTransaction, error)
}

type progressService struct {
	lock       *StatsLock
	stats      repository.StatsRepository
	txns       repository.TransactionRepository
	activities repository.ActivityRepository
	clk        clock.Clock
	dispatcher *events.Dispatcher
}

// NewProgressService creates a new ProgressService.
func NewProgressService(lock *StatsLock, stats repository.StatsRepository, txns repository.TransactionRepository, activities repository.ActivityRepository, clk clock.Clock, dispatcher *events.Dispatcher) ProgressService {
	return &progressService{
		lock:       lock,
		stats:      stats,
		txns:       txns,
		activities: activities,
		clk:        clk,
		dispatcher: dispatcher,
	}
}

func (s *progressService) AwardXP(ctx context.Context, amount int, source models.XPSource, description string, relatedID *int64) (*models.AwardResult, error) {
	s.lock.Lock()
	result, stats, err := s.awardXP(ctx, amount, source, description, relatedID)
	s.lock.Unlock()
	if err != nil {
		return nil, err
	}

	// Threshold checks run outside the lock so subscribers can award freely.
	s.dispatcher.Publish(ctx, events.Event{Type: events.XPAwarded, Count: stats.TotalXP, Stats: stats})
	return result, nil
}

// awardXP applies one award as a single logical unit. Callers must hold the
// stats lock. Returns the award result and the post-award stats snapshot.
func (s *progressService) awardXP(ctx context.Context, amount int, source models.XPSource, description string, relatedID *int64) (*models.AwardResult, *models.UserStats, error) {
	log := logger.FromContext(ctx).WithPrefix("progress")

	if amount < 0 {
		amount = 0
	}

	stats, err := s.loadOrInitStats(ctx)
	if err != nil {
		return nil, nil, err
	}

	txn := models.XPTransaction{
		Amount:      amount,
		Source:      source,
		Description: description,
		RelatedID:   relatedID,
	}
	if _, err := s.txns.Insert(ctx, txn); err != nil {
		return nil, nil, errors.NewInternalError(err)
	}

	oldLevel := stats.Level
	stats.TotalXP += amount
	stats.CurrentXP += amount
	stats.Level = catalog.LevelForXP(stats.TotalXP)
	stats.LevelTitle = catalog.TitleForXP(stats.TotalXP)

	if err := s.stats.Update(ctx, *stats); err != nil {
		return nil, nil, errors.NewInternalError(err)
	}

	if err := s.bumpDailyXP(ctx, amount); err != nil {
		// Daily accounting is best effort; the ledger already holds the truth.
		log.Warn("failed to record daily xp: %v", err)
	}

	result := &models.AwardResult{
		XPAwarded: amount,
		LeveledUp: stats.Level > oldLevel,
		NewLevel:  stats.Level,
	}
	if result.LeveledUp {
		log.Info("level up: %d -> %d (%s), total_xp=%d", oldLevel, stats.Level, stats.LevelTitle, stats.TotalXP)
	} else {
		log.Debug("awarded %d xp from %s, total_xp=%d", amount, source, stats.TotalXP)
	}
	return result, stats, nil
}

// loadOrInitStats returns the singleton stats row, creating it with defaults
// when missing. Callers must hold the stats lock.
func (s *progressService) loadOrInitStats(ctx context.Context) (*models.UserStats, error) {
	return loadOrSeedStats(ctx, s.stats)
}

// loadOrSeedStats lazily initializes the singleton user stats row. Callers
// must hold the stats lock.
func loadOrSeedStats(ctx context.Context, repo repository.StatsRepository) (*models.UserStats, error) {
	stats, err := repo.Get(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if stats != nil {
		return stats, nil
	}

	logger.FromContext(ctx).WithPrefix("progress").Info("initializing user stats")
	fresh := models.UserStats{
		ID:              models.UserStatsID,
		Level:           catalog.LevelForXP(0),
		LevelTitle:      catalog.TitleForXP(0),
		EarnedBadges:    []string{},
		UnlockedAvatars: []string{},
		UnlockedBanners: []string{},
	}
	if err := repo.Insert(ctx, fresh); err != nil {
		return nil, errors.NewInternalError(err)
	}
	return &fresh, nil
}

func (s *progressService) bumpDailyXP(ctx context.Context, amount int) error {
	if amount == 0 {
		return nil
	}
	today := clock.StartOfDay(s.clk.Now())
	activity, err := s.activities.GetByDate(ctx, today)
	if err != nil {
		return err
	}
	if activity == nil {
		_, err := s.activities.Insert(ctx, models.DailyActivity{Date: today, XPEarned: amount})
		return err
	}
	activity.XPEarned += amount
	return s.activities.Update(ctx, *activity)
}

func (s *progressService) Stats(ctx context.Context) (*models.UserStats, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.loadOrInitStats(ctx)
}

func (s *progressService) RecentTransactions(ctx context.Context, limit int) ([]models.XPTransaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	txns, err := s.txns.Recent(ctx, limit)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return txns, nil
}
