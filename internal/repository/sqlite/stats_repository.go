package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Get(ctx context.Context) (*models.UserStats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")

	var s models.UserStats
	var lastActive, streakStart sql.NullTime
	var earned, avatars, banners string
	err := r.db.QueryRowContext(ctx, `
SELECT id, total_xp, current_xp, level, level_title, current_streak, longest_streak,
       last_active_date, streak_start_date,
       words_learned, words_mastered, journal_entries, journal_words,
       chat_conversations, chat_messages, letters_written, letters_opened, commitments_kept,
       earned_badges, unlocked_avatars, unlocked_banners, updated_at
FROM user_stats
WHERE id = ?
`, models.UserStatsID).Scan(&s.ID, &s.TotalXP, &s.CurrentXP, &s.Level, &s.LevelTitle,
		&s.CurrentStreak, &s.LongestStreak, &lastActive, &streakStart,
		&s.WordsLearned, &s.WordsMastered, &s.JournalEntries, &s.JournalWords,
		&s.ChatConversations, &s.ChatMessages, &s.LettersWritten, &s.LettersOpened, &s.CommitmentsKept,
		&earned, &avatars, &banners, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("user stats row missing")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user stats: %v", err)
		return nil, err
	}
	if lastActive.Valid {
		s.LastActiveDate = &lastActive.Time
	}
	if streakStart.Valid {
		s.StreakStartDate = &streakStart.Time
	}
	s.EarnedBadges = decodeStrings(earned)
	s.UnlockedAvatars = decodeStrings(avatars)
	s.UnlockedBanners = decodeStrings(banners)
	return &s, nil
}

func (r *statsRepository) Insert(ctx context.Context, s models.UserStats) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("inserting user stats row")

	_, err := r.db.ExecContext(ctx, `
INSERT INTO user_stats (id, total_xp, current_xp, level, level_title, current_streak, longest_streak,
                        last_active_date, streak_start_date,
                        words_learned, words_mastered, journal_entries, journal_words,
                        chat_conversations, chat_messages, letters_written, letters_opened, commitments_kept,
                        earned_badges, unlocked_avatars, unlocked_banners, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
`, models.UserStatsID, s.TotalXP, s.CurrentXP, s.Level, s.LevelTitle, s.CurrentStreak, s.LongestStreak,
		s.LastActiveDate, s.StreakStartDate,
		s.WordsLearned, s.WordsMastered, s.JournalEntries, s.JournalWords,
		s.ChatConversations, s.ChatMessages, s.LettersWritten, s.LettersOpened, s.CommitmentsKept,
		encodeStrings(s.EarnedBadges), encodeStrings(s.UnlockedAvatars), encodeStrings(s.UnlockedBanners))
	if err != nil {
		log.Error("failed to insert user stats: %v", err)
	}
	return err
}

func (r *statsRepository) Update(ctx context.Context, s models.UserStats) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("updating user stats: total_xp=%d, level=%d, streak=%d", s.TotalXP, s.Level, s.CurrentStreak)

	_, err := r.db.ExecContext(ctx, `
UPDATE user_stats
SET total_xp = ?, current_xp = ?, level = ?, level_title = ?,
    current_streak = ?, longest_streak = ?, last_active_date = ?, streak_start_date = ?,
    words_learned = ?, words_mastered = ?, journal_entries = ?, journal_words = ?,
    chat_conversations = ?, chat_messages = ?, letters_written = ?, letters_opened = ?, commitments_kept = ?,
    earned_badges = ?, unlocked_avatars = ?, unlocked_banners = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, s.TotalXP, s.CurrentXP, s.Level, s.LevelTitle,
		s.CurrentStreak, s.LongestStreak, s.LastActiveDate, s.StreakStartDate,
		s.WordsLearned, s.WordsMastered, s.JournalEntries, s.JournalWords,
		s.ChatConversations, s.ChatMessages, s.LettersWritten, s.LettersOpened, s.CommitmentsKept,
		encodeStrings(s.EarnedBadges), encodeStrings(s.UnlockedAvatars), encodeStrings(s.UnlockedBanners),
		models.UserStatsID)
	if err != nil {
		log.Error("failed to update user stats: %v", err)
	}
	return err
}
