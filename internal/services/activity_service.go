package services

import (
	"context"

	"github.com/mvilela/lumo/internal/clock"
	"github.com/mvilela/lumo/internal/errors"
	"github.com/mvilela/lumo/internal/events"
	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
)

// ActivityService is the single ingestion point for discrete activity
// events. One Record call bumps the lifetime totals and today's counters,
// keeps the streak alive, and fans the event out to badges and challenges.
type ActivityService interface {
	Record(ctx context.Context, activity models.ActivityType, count int) error
	DailyHistory(ctx context.Context, days int) ([]models.DailyActivity, error)
	Cleanup(ctx context.Context, retentionDays int) (int64, error)
}

// Flat XP paid per occurrence of an activity. Reviews are rewarded by the
// review service; streak and challenge XP come from their own engines.
var activityXP = map[models.ActivityType]struct {
	amount int
	source models.XPSource
}{
	models.ActivityJournalEntry:     {20, models.SourceJournal},
	models.ActivityChatConversation: {15, models.SourceChat},
	models.ActivityLetterWritten:    {30, models.SourceLetter},
	models.ActivityLetterOpened:     {10, models.SourceLetter},
}

var activityEvents = map[models.ActivityType]events.Type{
	models.ActivityItemReviewed:     events.ItemReviewed,
	models.ActivityWordLearned:      events.WordLearned,
	models.ActivityWordMastered:     events.WordMastered,
	models.ActivityJournalEntry:     events.JournalWritten,
	models.ActivityChatMessage:      events.ChatActivity,
	models.ActivityChatConversation: events.ChatActivity,
	models.ActivityLetterWritten:    events.LetterActivity,
	models.ActivityLetterOpened:     events.LetterActivity,
}

type activityService struct {
	lock       *StatsLock
	stats      repository.StatsRepository
	activities repository.ActivityRepository
	progress   ProgressService
	streak     StreakService
	challenges ChallengeService
	clk        clock.Clock
	dispatcher *events.Dispatcher
}

// NewActivityService creates a new ActivityService.
func NewActivityService(lock *StatsLock, stats repository.StatsRepository, activities repository.ActivityRepository, progress ProgressService, streak StreakService, challenges ChallengeService, clk clock.Clock, dispatcher *events.Dispatcher) ActivityService {
	return &activityService{
		lock:       lock,
		stats:      stats,
		activities: activities,
		progress:   progress,
		streak:     streak,
		challenges: challenges,
		clk:        clk,
		dispatcher: dispatcher,
	}
}

func (s *activityService) Record(ctx context.Context, activity models.ActivityType, count int) error {
	log := logger.FromContext(ctx).WithPrefix("activity")

	if count <= 0 {
		return nil
	}
	log.Debug("recording activity: type=%s, count=%d", activity, count)

	if err := s.applyCounters(ctx, activity, count); err != nil {
		return err
	}

	if err := s.streak.RecordDailyActivity(ctx); err != nil {
		return err
	}

	if reward, ok := activityXP[activity]; ok {
		if _, err := s.progress.AwardXP(ctx, reward.amount*count, reward.source, string(activity), nil); err != nil {
			return err
		}
	}

	if evType, ok := activityEvents[activity]; ok {
		stats, err := s.progress.Stats(ctx)
		if err != nil {
			return err
		}
		s.dispatcher.Publish(ctx, events.Event{Type: evType, Count: count, Stats: stats})
	}

	return s.challenges.UpdateProgressForActivity(ctx, activity, count)
}

// applyCounters bumps the lifetime totals on user stats and today's daily
// activity row under the stats lock.
func (s *activityService) applyCounters(ctx context.Context, activity models.ActivityType, count int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	stats, err := loadOrSeedStats(ctx, s.stats)
	if err != nil {
		return err
	}

	switch activity {
	case models.ActivityWordLearned:
		stats.WordsLearned += count
	case models.ActivityWordMastered:
		stats.WordsMastered += count
	case models.ActivityJournalEntry:
		stats.JournalEntries += count
	case models.ActivityJournalWords:
		stats.JournalWords += count
	case models.ActivityChatMessage:
		stats.ChatMessages += count
	case models.ActivityChatConversation:
		stats.ChatConversations += count
	case models.ActivityLetterWritten:
		stats.LettersWritten += count
	case models.ActivityLetterOpened:
		stats.LettersOpened += count
	case models.ActivityCommitmentKept:
		stats.CommitmentsKept += count
	}
	if err := s.stats.Update(ctx, *stats); err != nil {
		return errors.NewInternalError(err)
	}

	today := clock.StartOfDay(s.clk.Now())
	daily, err := s.activities.GetByDate(ctx, today)
	if err != nil {
		return errors.NewInternalError(err)
	}
	created := daily == nil
	if created {
		daily = &models.DailyActivity{Date: today}
	}

	switch activity {
	case models.ActivityItemReviewed:
		daily.ItemsReviewed += count
	case models.ActivityWordLearned:
		daily.ItemsLearned += count
	case models.ActivityJournalEntry:
		daily.JournalEntries += count
	case models.ActivityJournalWords:
		daily.JournalWords += count
	case models.ActivityChatMessage:
		daily.ChatMessages += count
	case models.ActivityLetterWritten:
		daily.LettersWritten += count
	case models.ActivityLetterOpened:
		daily.LettersOpened += count
	case models.ActivityActiveTime:
		daily.ActiveTimeSeconds += count
	}

	if created {
		if _, err := s.activities.Insert(ctx, *daily); err != nil {
			return errors.NewInternalError(err)
		}
		return nil
	}
	if err := s.activities.Update(ctx, *daily); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *activityService) DailyHistory(ctx context.Context, days int) ([]models.DailyActivity, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	history, err := s.activities.Recent(ctx, days)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return history, nil
}

func (s *activityService) Cleanup(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := clock.StartOfDay(s.clk.Now()).AddDate(0, 0, -retentionDays)
	n, err := s.activities.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.NewInternalError(err)
	}
	return n, nil
}
