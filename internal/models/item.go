package models

import "time"

// ItemStatus tracks where a learning item sits in its review lifecycle.
type ItemStatus string

const (
	StatusNew       ItemStatus = "new"
	StatusLearning  ItemStatus = "learning"
	StatusReviewing ItemStatus = "reviewing"
	StatusMastered  ItemStatus = "mastered"
)

// LearningItem is a piece of content under spaced repetition. The payload
// (word, quote, proverb) is opaque to the scheduler.
type LearningItem struct {
	ID             int64      `json:"id"`
	Content        string     `json:"content"`
	ContentType    string     `json:"content_type"`
	ReviewCount    int        `json:"review_count"`
	CorrectCount   int        `json:"correct_count"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	NextReviewAt   time.Time  `json:"next_review_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	Status         ItemStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DefaultEaseFactor and DefaultIntervalDays are the scheduling state a fresh
// item starts with.
const (
	DefaultEaseFactor   = 2.5
	DefaultIntervalDays = 1
	MinEaseFactor       = 1.3
)

// ItemFilter narrows item listings.
type ItemFilter struct {
	Status      ItemStatus
	ContentType string
	Limit       int
	Offset      int
}
