package services

import (
	"context"
	"fmt"

	"github.com/mvilela/lumo/internal/catalog"
	"github.com/mvilela/lumo/internal/clock"
	"github.com/mvilela/lumo/internal/errors"
	"github.com/mvilela/lumo/internal/events"
	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
)

// BadgeService owns achievement definitions, per-badge progress, and the
// one-time unlock transition. Unknown badge ids are benign no-ops.
type BadgeService interface {
	List(ctx context.Context) ([]models.Badge, error)
	UpdateProgress(ctx context.Context, badgeID string, progress int) (*models.Badge, error)
	Award(ctx context.Context, badgeID string) (*models.Badge, error)
	Seed(ctx context.Context) error
	RegisterHandlers(d *events.Dispatcher)
}

type badgeService struct {
	lock       *StatsLock
	badges     repository.BadgeRepository
	stats      repository.StatsRepository
	challenges repository.ChallengeRepository
	progress   ProgressService
	clk        clock.Clock
}

// NewBadgeService creates a new BadgeService.
func NewBadgeService(lock *StatsLock, badges repository.BadgeRepository, stats repository.StatsRepository, challenges repository.ChallengeRepository, progress ProgressService, clk clock.Clock) BadgeService {
	return &badgeService{
		lock:       lock,
		badges:     badges,
		stats:      stats,
		challenges: challenges,
		progress:   progress,
		clk:        clk,
	}
}

func (s *badgeService) List(ctx context.Context) ([]models.Badge, error) {
	badges, err := s.badges.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return badges, nil
}

func (s *badgeService) UpdateProgress(ctx context.Context, badgeID string, progress int) (*models.Badge, error) {
	log := logger.FromContext(ctx).WithPrefix("badges")

	s.lock.Lock()
	badge, err := s.applyProgress(ctx, badgeID, progress)
	s.lock.Unlock()
	if err != nil {
		return nil, err
	}
	if badge == nil {
		log.Debug("progress update for unknown badge %q ignored", badgeID)
		return nil, nil
	}

	if !badge.IsEarned && badge.Progress >= badge.Requirement {
		return s.Award(ctx, badgeID)
	}
	return badge, nil
}

// applyProgress clamps and stores the new progress value. Callers must hold
// the stats lock.
func (s *badgeService) applyProgress(ctx context.Context, badgeID string, progress int) (*models.Badge, error) {
	badge, err := s.badges.Get(ctx, badgeID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if badge == nil || badge.IsEarned {
		return badge, nil
	}

	if progress < 0 {
		progress = 0
	}
	if progress > badge.Requirement {
		progress = badge.Requirement
	}
	if progress != badge.Progress {
		badge.Progress = progress
		if err := s.badges.Update(ctx, *badge); err != nil {
			return nil, errors.NewInternalError(err)
		}
	}
	return badge, nil
}

func (s *badgeService) Award(ctx context.Context, badgeID string) (*models.Badge, error) {
	log := logger.FromContext(ctx).WithPrefix("badges")

	// The earned flag flips under the stats lock so concurrent awards agree
	// on a single winner. Only the winner pays the reward.
	s.lock.Lock()
	badge, earned, err := s.earn(ctx, badgeID)
	s.lock.Unlock()
	if err != nil {
		return nil, err
	}
	if badge == nil {
		log.Debug("award for unknown badge %q ignored", badgeID)
		return nil, nil
	}
	if !earned {
		// Earning is terminal; re-awarding pays nothing.
		log.Debug("badge %s already earned", badgeID)
		return badge, nil
	}
	log.Info("badge earned: %s (%s)", badge.ID, badge.Name)

	if _, err := s.progress.AwardXP(ctx, badge.XPReward, models.SourceBadge, fmt.Sprintf("Badge earned: %s", badge.Name), nil); err != nil {
		return nil, err
	}

	if err := s.mergeUnlocks(ctx, badge); err != nil {
		return nil, err
	}
	return badge, nil
}

// earn performs the one-time unearned-to-earned transition. It reports
// whether this call made the transition. Callers must hold the stats lock.
func (s *badgeService) earn(ctx context.Context, badgeID string) (*models.Badge, bool, error) {
	badge, err := s.badges.Get(ctx, badgeID)
	if err != nil {
		return nil, false, errors.NewInternalError(err)
	}
	if badge == nil {
		return nil, false, nil
	}
	if badge.IsEarned {
		return badge, false, nil
	}

	now := s.clk.Now()
	badge.IsEarned = true
	badge.EarnedAt = &now
	badge.Progress = badge.Requirement
	if err := s.badges.Update(ctx, *badge); err != nil {
		return nil, false, errors.NewInternalError(err)
	}
	return badge, true, nil
}

// mergeUnlocks records the earned badge id and any cosmetic unlocks on the
// user stats row.
func (s *badgeService) mergeUnlocks(ctx context.Context, badge *models.Badge) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	stats, err := s.stats.Get(ctx)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if stats == nil {
		// AwardXP initialized the row a moment ago; a miss here is a real fault.
		return errors.NewInternalError(fmt.Errorf("user stats missing after award"))
	}

	stats.EarnedBadges = appendUnique(stats.EarnedBadges, badge.ID)
	if badge.AvatarUnlock != "" {
		stats.UnlockedAvatars = appendUnique(stats.UnlockedAvatars, badge.AvatarUnlock)
	}
	if badge.BannerUnlock != "" {
		stats.UnlockedBanners = appendUnique(stats.UnlockedBanners, badge.BannerUnlock)
	}
	if err := s.stats.Update(ctx, *stats); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func appendUnique(in []string, v string) []string {
	for _, s := range in {
		if s == v {
			return in
		}
	}
	return append(in, v)
}

// Seed populates the badge catalog on first run. Idempotent.
func (s *badgeService) Seed(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("badges")

	n, err := s.badges.Count(ctx)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if n > 0 {
		log.Debug("badge catalog already seeded (%d badges)", n)
		return nil
	}

	for _, b := range catalog.Badges {
		if err := s.badges.Insert(ctx, b); err != nil {
			return errors.NewInternalError(err)
		}
	}
	log.Info("seeded badge catalog with %d badges", len(catalog.Badges))
	return nil
}

// RegisterHandlers subscribes badge threshold checks to the domain events
// that can move their counters.
func (s *badgeService) RegisterHandlers(d *events.Dispatcher) {
	counters := map[events.Type]func(ev events.Event) (models.BadgeCategory, int){
		events.WordLearned:     func(ev events.Event) (models.BadgeCategory, int) { return models.BadgeWords, ev.Stats.WordsLearned },
		events.WordMastered:    func(ev events.Event) (models.BadgeCategory, int) { return models.BadgeMastery, ev.Stats.WordsMastered },
		events.JournalWritten:  func(ev events.Event) (models.BadgeCategory, int) { return models.BadgeJournal, ev.Stats.JournalEntries },
		events.ChatActivity:    func(ev events.Event) (models.BadgeCategory, int) { return models.BadgeChat, ev.Stats.ChatMessages },
		events.LetterActivity:  func(ev events.Event) (models.BadgeCategory, int) { return models.BadgeLetters, ev.Stats.LettersWritten },
		events.StreakIncreased: func(ev events.Event) (models.BadgeCategory, int) { return models.BadgeStreak, ev.Count },
		events.XPAwarded:       func(ev events.Event) (models.BadgeCategory, int) { return models.BadgeXP, ev.Stats.TotalXP },
	}
	for t, counter := range counters {
		counter := counter
		d.Subscribe(t, func(ctx context.Context, ev events.Event) {
			if ev.Stats == nil {
				return
			}
			category, value := counter(ev)
			s.advanceCategory(ctx, category, value)
		})
	}
	d.Subscribe(events.ChallengeDone, func(ctx context.Context, ev events.Event) {
		n, err := s.challenges.CountCompleted(ctx)
		if err != nil {
			logger.FromContext(ctx).WithPrefix("badges").Warn("failed to count completed challenges: %v", err)
			return
		}
		s.advanceCategory(ctx, models.BadgeChallenges, n)
	})
}

// advanceCategory moves every unearned badge of a category to the counter's
// current value, awarding any that cross their requirement.
func (s *badgeService) advanceCategory(ctx context.Context, category models.BadgeCategory, value int) {
	log := logger.FromContext(ctx).WithPrefix("badges")

	badges, err := s.badges.List(ctx)
	if err != nil {
		log.Warn("failed to list badges for %s check: %v", category, err)
		return
	}
	for _, b := range badges {
		if b.Category != category || b.IsEarned {
			continue
		}
		if _, err := s.UpdateProgress(ctx, b.ID, value); err != nil {
			log.Warn("failed to advance badge %s: %v", b.ID, err)
		}
	}
}
