package catalog

import "github.com/mvilela/lumo/internal/models"

// ChallengeTemplate is the static shape a generated daily challenge takes.
type ChallengeTemplate struct {
	Type        models.ChallengeType
	Title       string
	Description string
	Requirement int
	XPReward    int
}

// Templates holds one template per challenge type. The requirement and
// reward of the streak challenge are scaled at generation time.
var Templates = map[models.ChallengeType]ChallengeTemplate{
	models.ChallengeVocabulary: {
		Type:        models.ChallengeVocabulary,
		Title:       "Word Explorer",
		Description: "Review 5 words today",
		Requirement: 5,
		XPReward:    30,
	},
	models.ChallengeJournaling: {
		Type:        models.ChallengeJournaling,
		Title:       "Put It In Writing",
		Description: "Write a journal entry today",
		Requirement: 1,
		XPReward:    40,
	},
	models.ChallengeChat: {
		Type:        models.ChallengeChat,
		Title:       "Talk It Out",
		Description: "Send 5 chat messages today",
		Requirement: 5,
		XPReward:    25,
	},
	models.ChallengeStreak: {
		Type:        models.ChallengeStreak,
		Title:       "Keep The Flame",
		Description: "Stay active to keep your streak alive",
		Requirement: 1,
		XPReward:    20,
	},
	models.ChallengeEarlyBird: {
		Type:        models.ChallengeEarlyBird,
		Title:       "Early Bird",
		Description: "Finish a review session before the day gets busy",
		Requirement: 3,
		XPReward:    35,
	},
	models.ChallengeNightOwl: {
		Type:        models.ChallengeNightOwl,
		Title:       "Night Owl",
		Description: "Wind down with a few reviews tonight",
		Requirement: 3,
		XPReward:    35,
	},
	models.ChallengeLongJournal: {
		Type:        models.ChallengeLongJournal,
		Title:       "Go Deeper",
		Description: "Write at least 200 words in your journal",
		Requirement: 200,
		XPReward:    60,
	},
	models.ChallengeDeepChat: {
		Type:        models.ChallengeDeepChat,
		Title:       "Real Talk",
		Description: "Have a conversation of at least 10 messages",
		Requirement: 10,
		XPReward:    50,
	},
	models.ChallengeFutureLetter: {
		Type:        models.ChallengeFutureLetter,
		Title:       "Dear Future Me",
		Description: "Write a letter to your future self",
		Requirement: 1,
		XPReward:    70,
	},
	models.ChallengeQuoteReflection: {
		Type:        models.ChallengeQuoteReflection,
		Title:       "Pause And Reflect",
		Description: "Reflect on today's quote in your journal",
		Requirement: 1,
		XPReward:    45,
	},
}

// HarderVocabulary is generated when no category is neglected.
var HarderVocabulary = ChallengeTemplate{
	Type:        models.ChallengeVocabulary,
	Title:       "Word Marathon",
	Description: "Review 15 words today",
	Requirement: 15,
	XPReward:    80,
}

// Quote is an inspirational quote attached to a generated challenge.
// Cosmetic only.
type Quote struct {
	Text   string
	Author string
}

// Quotes are per-type pools a generated challenge draws from at random.
var Quotes = map[models.ChallengeType][]Quote{
	models.ChallengeVocabulary: {
		{Text: "The limits of my language mean the limits of my world.", Author: "Ludwig Wittgenstein"},
		{Text: "A word after a word after a word is power.", Author: "Margaret Atwood"},
		{Text: "Words are, of course, the most powerful drug used by mankind.", Author: "Rudyard Kipling"},
	},
	models.ChallengeJournaling: {
		{Text: "Fill your paper with the breathings of your heart.", Author: "William Wordsworth"},
		{Text: "Journal writing is a voyage to the interior.", Author: "Christina Baldwin"},
		{Text: "I can shake off everything as I write.", Author: "Anne Frank"},
	},
	models.ChallengeChat: {
		{Text: "The most important thing in communication is hearing what isn't said.", Author: "Peter Drucker"},
		{Text: "Conversation is the laboratory and workshop of the student.", Author: "Ralph Waldo Emerson"},
	},
	models.ChallengeStreak: {
		{Text: "We are what we repeatedly do.", Author: "Will Durant"},
		{Text: "Small disciplines repeated with consistency lead to great achievements.", Author: "John C. Maxwell"},
	},
	models.ChallengeEarlyBird: {
		{Text: "The morning has gold in its mouth.", Author: "Benjamin Franklin"},
	},
	models.ChallengeNightOwl: {
		{Text: "The darker the night, the brighter the stars.", Author: "Fyodor Dostoevsky"},
	},
	models.ChallengeLongJournal: {
		{Text: "There is no greater agony than bearing an untold story inside you.", Author: "Maya Angelou"},
	},
	models.ChallengeDeepChat: {
		{Text: "Honest conversation is the highway to the heart.", Author: "Anonymous"},
	},
	models.ChallengeFutureLetter: {
		{Text: "The best way to predict the future is to create it.", Author: "Peter Drucker"},
	},
	models.ChallengeQuoteReflection: {
		{Text: "Knowing yourself is the beginning of all wisdom.", Author: "Aristotle"},
	},
}
