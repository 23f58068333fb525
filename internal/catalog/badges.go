package catalog

import "github.com/mvilela/lumo/internal/models"

// Badges is the seed catalog. Seeded once at first run; earned state lives on
// the stored rows, not here.
var Badges = []models.Badge{
	{
		ID:          "week_streak",
		Name:        "One Week Wonder",
		Description: "Stay active for 7 days in a row",
		Category:    models.BadgeStreak,
		Tier:        models.TierBronze,
		Requirement: 7,
		XPReward:    100,
	},
	{
		ID:           "month_streak",
		Name:         "Monthly Devotee",
		Description:  "Stay active for 30 days in a row",
		Category:     models.BadgeStreak,
		Tier:         models.TierSilver,
		Requirement:  30,
		XPReward:     500,
		AvatarUnlock: "avatar_flame",
	},
	{
		ID:           "quarter_streak",
		Name:         "Season of Discipline",
		Description:  "Stay active for 90 days in a row",
		Category:     models.BadgeStreak,
		Tier:         models.TierGold,
		Requirement:  90,
		XPReward:     2000,
		BannerUnlock: "banner_aurora",
	},
	{
		ID:          "words_10",
		Name:        "First Steps",
		Description: "Learn 10 words",
		Category:    models.BadgeWords,
		Tier:        models.TierBronze,
		Requirement: 10,
		XPReward:    50,
	},
	{
		ID:          "words_50",
		Name:        "Word Collector",
		Description: "Learn 50 words",
		Category:    models.BadgeWords,
		Tier:        models.TierSilver,
		Requirement: 50,
		XPReward:    250,
	},
	{
		ID:           "words_200",
		Name:         "Lexicon Builder",
		Description:  "Learn 200 words",
		Category:     models.BadgeWords,
		Tier:         models.TierGold,
		Requirement:  200,
		XPReward:     1000,
		AvatarUnlock: "avatar_owl",
	},
	{
		ID:          "mastery_25",
		Name:        "Deep Roots",
		Description: "Master 25 words",
		Category:    models.BadgeMastery,
		Tier:        models.TierSilver,
		Requirement: 25,
		XPReward:    400,
	},
	{
		ID:          "journal_5",
		Name:        "Dear Diary",
		Description: "Write 5 journal entries",
		Category:    models.BadgeJournal,
		Tier:        models.TierBronze,
		Requirement: 5,
		XPReward:    50,
	},
	{
		ID:          "journal_25",
		Name:        "Steady Pen",
		Description: "Write 25 journal entries",
		Category:    models.BadgeJournal,
		Tier:        models.TierSilver,
		Requirement: 25,
		XPReward:    250,
	},
	{
		ID:           "journal_100",
		Name:         "Chronicler",
		Description:  "Write 100 journal entries",
		Category:     models.BadgeJournal,
		Tier:         models.TierGold,
		Requirement:  100,
		XPReward:     1000,
		BannerUnlock: "banner_parchment",
	},
	{
		ID:          "chat_100",
		Name:        "Conversationalist",
		Description: "Send 100 chat messages",
		Category:    models.BadgeChat,
		Tier:        models.TierBronze,
		Requirement: 100,
		XPReward:    100,
	},
	{
		ID:          "letters_5",
		Name:        "Time Capsule",
		Description: "Write 5 letters to your future self",
		Category:    models.BadgeLetters,
		Tier:        models.TierBronze,
		Requirement: 5,
		XPReward:    150,
	},
	{
		ID:          "xp_5000",
		Name:        "Five Thousand Strong",
		Description: "Earn 5000 total XP",
		Category:    models.BadgeXP,
		Tier:        models.TierSilver,
		Requirement: 5000,
		XPReward:    0,
	},
	{
		ID:          "challenges_20",
		Name:        "Up For Anything",
		Description: "Complete 20 daily challenges",
		Category:    models.BadgeChallenges,
		Tier:        models.TierSilver,
		Requirement: 20,
		XPReward:    300,
	},
}
