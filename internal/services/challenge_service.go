package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/mvilela/lumo/internal/catalog"
	"github.com/mvilela/lumo/internal/clock"
	"github.com/mvilela/lumo/internal/errors"
	"github.com/mvilela/lumo/internal/events"
	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
)

// ChallengeService generates a bounded set of daily challenges and tracks
// their completion. Generation is idempotent per calendar day.
type ChallengeService interface {
	EnsureTodaysChallenges(ctx context.Context) ([]models.DailyChallenge, error)
	UpdateProgressForActivity(ctx context.Context, activity models.ActivityType, count int) error
	IncrementProgress(ctx context.Context, id int64, amount int) (*models.DailyChallenge, error)
	CompleteChallenge(ctx context.Context, id int64) (*models.DailyChallenge, error)
}

// Neglect thresholds: a category under its threshold is a candidate for the
// day's primary challenge.
const (
	neglectWordsThreshold        = 10
	neglectJournalThreshold      = 5
	neglectConversationThreshold = 3

	streakRewardBase = 20
	streakRewardStep = 5
	streakRewardCap  = 60

	earlyBirdHour = 9
	nightOwlHour  = 21
)

type challengeService struct {
	lock       *StatsLock
	challenges repository.ChallengeRepository
	progress   ProgressService
	clk        clock.Clock
	dispatcher *events.Dispatcher
}

// NewChallengeService creates a new ChallengeService.
func NewChallengeService(lock *StatsLock, challenges repository.ChallengeRepository, progress ProgressService, clk clock.Clock, dispatcher *events.Dispatcher) ChallengeService {
	return &challengeService{
		lock:       lock,
		challenges: challenges,
		progress:   progress,
		clk:        clk,
		dispatcher: dispatcher,
	}
}

func (s *challengeService) EnsureTodaysChallenges(ctx context.Context) ([]models.DailyChallenge, error) {
	log := logger.FromContext(ctx).WithPrefix("challenges")

	now := s.clk.Now()
	today := clock.StartOfDay(now)

	existing, err := s.challenges.ForDate(ctx, today)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	stats, err := s.progress.Stats(ctx)
	if err != nil {
		return nil, err
	}

	templates := pickTemplates(stats, now.Hour())
	log.Info("generating %d challenges for %s", len(templates), today.Format("2006-01-02"))

	var generated []models.DailyChallenge
	for _, tmpl := range templates {
		quote := randomQuote(tmpl.Type)
		ch := models.DailyChallenge{
			Type:        tmpl.Type,
			Title:       tmpl.Title,
			Description: tmpl.Description,
			Quote:       quote.Text,
			QuoteAuthor: quote.Author,
			Requirement: tmpl.Requirement,
			XPReward:    tmpl.XPReward,
			Date:        today,
		}
		id, err := s.challenges.Insert(ctx, ch)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		ch.ID = id
		generated = append(generated, ch)
	}
	return generated, nil
}

// pickTemplates applies the generation priority rule, capped at
// MaxDailyChallenges.
func pickTemplates(stats *models.UserStats, hour int) []catalog.ChallengeTemplate {
	var out []catalog.ChallengeTemplate

	// 1. The single most-neglected category, else a harder vocabulary goal.
	out = append(out, neglectPick(stats))

	// 2. Streak maintenance, reward scaled by streak length.
	if stats.CurrentStreak > 0 {
		tmpl := catalog.Templates[models.ChallengeStreak]
		reward := streakRewardBase + streakRewardStep*stats.CurrentStreak
		if reward > streakRewardCap {
			reward = streakRewardCap
		}
		tmpl.XPReward = reward
		out = append(out, tmpl)
	}

	// 3. Time-of-day challenge.
	if hour < earlyBirdHour {
		out = append(out, catalog.Templates[models.ChallengeEarlyBird])
	} else if hour >= nightOwlHour {
		out = append(out, catalog.Templates[models.ChallengeNightOwl])
	}

	// 4. Bonus variety challenge, first condition that holds.
	if len(out) < models.MaxDailyChallenges {
		out = append(out, varietyPick(stats))
	}

	if len(out) > models.MaxDailyChallenges {
		out = out[:models.MaxDailyChallenges]
	}
	return out
}

func neglectPick(stats *models.UserStats) catalog.ChallengeTemplate {
	type candidate struct {
		tmpl  models.ChallengeType
		ratio float64
	}
	candidates := []candidate{
		{models.ChallengeVocabulary, float64(stats.WordsLearned) / neglectWordsThreshold},
		{models.ChallengeJournaling, float64(stats.JournalEntries) / neglectJournalThreshold},
		{models.ChallengeChat, float64(stats.ChatConversations) / neglectConversationThreshold},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.ratio < best.ratio {
			best = c
		}
	}
	if best.ratio >= 1 {
		return catalog.HarderVocabulary
	}
	return catalog.Templates[best.tmpl]
}

func varietyPick(stats *models.UserStats) catalog.ChallengeTemplate {
	switch {
	case stats.JournalEntries >= 3:
		return catalog.Templates[models.ChallengeLongJournal]
	case stats.ChatConversations >= 2:
		return catalog.Templates[models.ChallengeDeepChat]
	case stats.LettersWritten == 0:
		return catalog.Templates[models.ChallengeFutureLetter]
	default:
		return catalog.Templates[models.ChallengeQuoteReflection]
	}
}

func randomQuote(t models.ChallengeType) catalog.Quote {
	pool := catalog.Quotes[t]
	if len(pool) == 0 {
		return catalog.Quote{}
	}
	return pool[rand.Intn(len(pool))]
}

// challengeTypesFor maps an activity event to the challenge types it can
// advance. The streak challenge counts any activity.
func challengeTypesFor(activity models.ActivityType, hour int) []models.ChallengeType {
	types := []models.ChallengeType{models.ChallengeStreak}
	switch activity {
	case models.ActivityItemReviewed:
		types = append(types, models.ChallengeVocabulary)
		if hour < earlyBirdHour {
			types = append(types, models.ChallengeEarlyBird)
		}
		if hour >= nightOwlHour {
			types = append(types, models.ChallengeNightOwl)
		}
	case models.ActivityJournalEntry:
		types = append(types, models.ChallengeJournaling, models.ChallengeQuoteReflection)
	case models.ActivityJournalWords:
		types = append(types, models.ChallengeLongJournal)
	case models.ActivityChatMessage:
		types = append(types, models.ChallengeChat, models.ChallengeDeepChat)
	case models.ActivityLetterWritten:
		types = append(types, models.ChallengeFutureLetter)
	}
	return types
}

func (s *challengeService) UpdateProgressForActivity(ctx context.Context, activity models.ActivityType, count int) error {
	if count <= 0 {
		return nil
	}

	now := s.clk.Now()
	today, err := s.challenges.ForDate(ctx, clock.StartOfDay(now))
	if err != nil {
		return errors.NewInternalError(err)
	}

	matched := map[models.ChallengeType]bool{}
	for _, t := range challengeTypesFor(activity, now.Hour()) {
		matched[t] = true
	}

	for _, ch := range today {
		if ch.IsCompleted || !matched[ch.Type] {
			continue
		}
		if _, err := s.IncrementProgress(ctx, ch.ID, count); err != nil {
			return err
		}
	}
	return nil
}

func (s *challengeService) IncrementProgress(ctx context.Context, id int64, amount int) (*models.DailyChallenge, error) {
	log := logger.FromContext(ctx).WithPrefix("challenges")

	// Progress accumulation and the one-time completion transition run under
	// the stats lock so concurrent increments neither lose counts nor pay the
	// reward twice.
	s.lock.Lock()
	ch, completed, err := s.advance(ctx, id, amount)
	s.lock.Unlock()
	if err != nil {
		return nil, err
	}
	if ch == nil {
		log.Debug("progress for unknown challenge %d ignored", id)
		return nil, nil
	}

	if completed {
		log.Info("challenge completed: %s (%s)", ch.Title, ch.Type)
		relatedID := ch.ID
		if _, err := s.progress.AwardXP(ctx, ch.XPReward, models.SourceChallenge, fmt.Sprintf("Challenge completed: %s", ch.Title), &relatedID); err != nil {
			return nil, err
		}
		stats, err := s.progress.Stats(ctx)
		if err != nil {
			return nil, err
		}
		s.dispatcher.Publish(ctx, events.Event{Type: events.ChallengeDone, Count: 1, Stats: stats})
	}
	return ch, nil
}

// advance adds amount to the challenge's progress, clamps it, and flips the
// completed flag when the requirement is reached. It reports whether this
// call made the completion transition. Callers must hold the stats lock.
func (s *challengeService) advance(ctx context.Context, id int64, amount int) (*models.DailyChallenge, bool, error) {
	ch, err := s.challenges.Get(ctx, id)
	if err != nil {
		return nil, false, errors.NewInternalError(err)
	}
	if ch == nil {
		return nil, false, nil
	}
	if ch.IsCompleted {
		// Completed challenges are frozen.
		return ch, false, nil
	}
	if amount < 0 {
		amount = 0
	}

	ch.Progress += amount
	if ch.Progress > ch.Requirement {
		ch.Progress = ch.Requirement
	}

	completed := ch.Progress >= ch.Requirement
	if completed {
		now := s.clk.Now()
		ch.IsCompleted = true
		ch.CompletedAt = &now
	}
	if err := s.challenges.Update(ctx, *ch); err != nil {
		return nil, false, errors.NewInternalError(err)
	}
	return ch, completed, nil
}

func (s *challengeService) CompleteChallenge(ctx context.Context, id int64) (*models.DailyChallenge, error) {
	ch, err := s.challenges.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if ch == nil || ch.IsCompleted {
		return ch, nil
	}
	return s.IncrementProgress(ctx, id, ch.Requirement-ch.Progress)
}
