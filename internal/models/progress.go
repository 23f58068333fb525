package models

import "time"

// XPSource is the enumerated reason an XP transaction was recorded.
type XPSource string

const (
	SourceReview    XPSource = "review"
	SourceStreak    XPSource = "streak"
	SourceBadge     XPSource = "badge"
	SourceChallenge XPSource = "challenge"
	SourceJournal   XPSource = "journal"
	SourceChat      XPSource = "chat"
	SourceLetter    XPSource = "letter"
	SourceManual    XPSource = "manual"
)

// XPTransaction is an immutable append-only ledger entry. Amount is never
// negative; rows are never mutated or deleted.
type XPTransaction struct {
	ID          int64     `json:"id"`
	Amount      int       `json:"amount"`
	Source      XPSource  `json:"source"`
	Description string    `json:"description"`
	RelatedID   *int64    `json:"related_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserStats is the singleton progress aggregate (one row, fixed id).
// Invariants: TotalXP is non-decreasing, LongestStreak >= CurrentStreak, and
// Level/LevelTitle are pure functions of TotalXP.
type UserStats struct {
	ID                int64      `json:"id"`
	TotalXP           int        `json:"total_xp"`
	CurrentXP         int        `json:"current_xp"`
	Level             int        `json:"level"`
	LevelTitle        string     `json:"level_title"`
	CurrentStreak     int        `json:"current_streak"`
	LongestStreak     int        `json:"longest_streak"`
	LastActiveDate    *time.Time `json:"last_active_date"`
	StreakStartDate   *time.Time `json:"streak_start_date"`
	WordsLearned      int        `json:"words_learned"`
	WordsMastered     int        `json:"words_mastered"`
	JournalEntries    int        `json:"journal_entries"`
	JournalWords      int        `json:"journal_words"`
	ChatConversations int        `json:"chat_conversations"`
	ChatMessages      int        `json:"chat_messages"`
	LettersWritten    int        `json:"letters_written"`
	LettersOpened     int        `json:"letters_opened"`
	CommitmentsKept   int        `json:"commitments_kept"`
	EarnedBadges      []string   `json:"earned_badges"`
	UnlockedAvatars   []string   `json:"unlocked_avatars"`
	UnlockedBanners   []string   `json:"unlocked_banners"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// UserStatsID is the fixed primary key of the singleton row.
const UserStatsID int64 = 1

// AwardResult reports the outcome of a single XP award.
type AwardResult struct {
	XPAwarded int  `json:"xp_awarded"`
	LeveledUp bool `json:"leveled_up"`
	NewLevel  int  `json:"new_level"`
}
