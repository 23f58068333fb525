package models

import "time"

// ActivityType enumerates the discrete activity events the engine ingests.
type ActivityType string

const (
	ActivityItemReviewed     ActivityType = "item_reviewed"
	ActivityWordLearned      ActivityType = "word_learned"
	ActivityWordMastered     ActivityType = "word_mastered"
	ActivityJournalEntry     ActivityType = "journal_entry"
	ActivityJournalWords     ActivityType = "journal_words"
	ActivityChatMessage      ActivityType = "chat_message"
	ActivityChatConversation ActivityType = "chat_conversation"
	ActivityLetterWritten    ActivityType = "letter_written"
	ActivityLetterOpened     ActivityType = "letter_opened"
	ActivityCommitmentKept   ActivityType = "commitment_kept"
	ActivityActiveTime       ActivityType = "active_time"
)

// DailyActivity accumulates same-day counters, one row per calendar day.
// Created lazily on the first activity of a day.
type DailyActivity struct {
	ID                int64     `json:"id"`
	Date              time.Time `json:"date"`
	ItemsReviewed     int       `json:"items_reviewed"`
	ItemsLearned      int       `json:"items_learned"`
	JournalEntries    int       `json:"journal_entries"`
	JournalWords      int       `json:"journal_words"`
	ChatMessages      int       `json:"chat_messages"`
	LettersWritten    int       `json:"letters_written"`
	LettersOpened     int       `json:"letters_opened"`
	ActiveTimeSeconds int       `json:"active_time_seconds"`
	XPEarned          int       `json:"xp_earned"`
	CreatedAt         time.Time `json:"created_at"`
}
