package models

import "time"

// BadgeCategory groups badges by the counter they track.
type BadgeCategory string

const (
	BadgeStreak     BadgeCategory = "streak"
	BadgeWords      BadgeCategory = "words"
	BadgeMastery    BadgeCategory = "mastery"
	BadgeJournal    BadgeCategory = "journal"
	BadgeChat       BadgeCategory = "chat"
	BadgeLetters    BadgeCategory = "letters"
	BadgeXP         BadgeCategory = "xp"
	BadgeChallenges BadgeCategory = "challenges"
)

// BadgeTier orders badges within a category.
type BadgeTier string

const (
	TierBronze BadgeTier = "bronze"
	TierSilver BadgeTier = "silver"
	TierGold   BadgeTier = "gold"
)

// Badge is a catalog entry plus earned state. Catalog fields are seeded once
// and never change; Progress/IsEarned/EarnedAt are the mutable part, and the
// earned transition is write-once.
type Badge struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Category     BadgeCategory `json:"category"`
	Tier         BadgeTier     `json:"tier"`
	Requirement  int           `json:"requirement"`
	Progress     int           `json:"progress"`
	IsEarned     bool          `json:"is_earned"`
	EarnedAt     *time.Time    `json:"earned_at"`
	XPReward     int           `json:"xp_reward"`
	AvatarUnlock string        `json:"avatar_unlock,omitempty"`
	BannerUnlock string        `json:"banner_unlock,omitempty"`
}
