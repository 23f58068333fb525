package models

import "time"

// ChallengeType is the activity category a daily challenge counts toward.
type ChallengeType string

const (
	ChallengeVocabulary      ChallengeType = "vocabulary"
	ChallengeJournaling      ChallengeType = "journaling"
	ChallengeChat            ChallengeType = "chat"
	ChallengeStreak          ChallengeType = "streak"
	ChallengeEarlyBird       ChallengeType = "early_bird"
	ChallengeNightOwl        ChallengeType = "night_owl"
	ChallengeLongJournal     ChallengeType = "long_journal"
	ChallengeDeepChat        ChallengeType = "deep_conversation"
	ChallengeFutureLetter    ChallengeType = "future_letter"
	ChallengeQuoteReflection ChallengeType = "quote_reflection"
)

// DailyChallenge is a day-scoped task. Progress is monotonically
// non-decreasing and clamped at Requirement; once completed the record is
// frozen and its reward is never paid again.
type DailyChallenge struct {
	ID          int64         `json:"id"`
	Type        ChallengeType `json:"type"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Quote       string        `json:"quote"`
	QuoteAuthor string        `json:"quote_author"`
	Requirement int           `json:"requirement"`
	Progress    int           `json:"progress"`
	XPReward    int           `json:"xp_reward"`
	IsCompleted bool          `json:"is_completed"`
	CompletedAt *time.Time    `json:"completed_at"`
	Date        time.Time     `json:"date"`
	CreatedAt   time.Time     `json:"created_at"`
}

// MaxDailyChallenges caps how many live challenges a single day may have.
const MaxDailyChallenges = 3
