package srs

import (
	"math"
	"time"

	"github.com/mvilela/lumo/internal/models"
)

// Quality grades on the 0..5 SM-2 scale. 3 and above count as correct recall.
const (
	QualityBlackout = 0
	QualityWrong    = 1
	QualityFamiliar = 2
	QualityHard     = 3
	QualityGood     = 4
	QualityPerfect  = 5
)

// CorrectThreshold is the lowest quality treated as a correct recall.
const CorrectThreshold = 3

// Apply updates an item's scheduling state for one review using an SM-2
// variant. quality is clamped into [0,5]. The returned item has its counters,
// ease factor, interval, status, and due date advanced; the input is not
// mutated.
func Apply(item models.LearningItem, quality int, now time.Time) models.LearningItem {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	q := float64(quality)
	ef := item.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < models.MinEaseFactor {
		ef = models.MinEaseFactor
	}

	correct := quality >= CorrectThreshold

	interval := 1
	if correct {
		switch item.ReviewCount {
		case 0:
			interval = 1
		case 1:
			interval = 6
		default:
			interval = int(math.Round(float64(item.IntervalDays) * ef))
		}
	}
	if interval < 1 {
		interval = 1
	}

	// Status is decided on the pre-update counters.
	switch {
	case !correct:
		item.Status = models.StatusLearning
	case item.ReviewCount >= 5 && item.CorrectCount >= 4:
		item.Status = models.StatusMastered
	case item.ReviewCount >= 2:
		item.Status = models.StatusReviewing
	default:
		item.Status = models.StatusLearning
	}

	item.EaseFactor = ef
	item.IntervalDays = interval
	item.ReviewCount++
	if correct {
		item.CorrectCount++
	}
	item.NextReviewAt = now.Add(time.Duration(interval) * 24 * time.Hour)
	reviewedAt := now
	item.LastReviewedAt = &reviewedAt
	return item
}
