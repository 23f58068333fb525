package repository

import (
	"context"
	"time"

	"github.com/mvilela/lumo/internal/models"
)

// ItemRepository handles learning item data access.
type ItemRepository interface {
	Get(ctx context.Context, id int64) (*models.LearningItem, error)
	List(ctx context.Context, filter models.ItemFilter) ([]models.LearningItem, error)
	Insert(ctx context.Context, item models.LearningItem) (int64, error)
	Update(ctx context.Context, item models.LearningItem) error
	Delete(ctx context.Context, id int64) error
	Due(ctx context.Context, before time.Time, limit int) ([]models.LearningItem, error)
}

// TransactionRepository appends to and reads the XP audit trail.
// Rows are never updated or deleted.
type TransactionRepository interface {
	Insert(ctx context.Context, txn models.XPTransaction) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.XPTransaction, error)
}

// StatsRepository handles the singleton user stats row.
type StatsRepository interface {
	Get(ctx context.Context) (*models.UserStats, error)
	Insert(ctx context.Context, stats models.UserStats) error
	Update(ctx context.Context, stats models.UserStats) error
}

// BadgeRepository handles badge catalog and earned state.
type BadgeRepository interface {
	Get(ctx context.Context, id string) (*models.Badge, error)
	List(ctx context.Context) ([]models.Badge, error)
	Insert(ctx context.Context, badge models.Badge) error
	Update(ctx context.Context, badge models.Badge) error
	Count(ctx context.Context) (int, error)
}

// ChallengeRepository handles daily challenge records.
type ChallengeRepository interface {
	Get(ctx context.Context, id int64) (*models.DailyChallenge, error)
	ForDate(ctx context.Context, date time.Time) ([]models.DailyChallenge, error)
	Insert(ctx context.Context, ch models.DailyChallenge) (int64, error)
	Update(ctx context.Context, ch models.DailyChallenge) error
	CountCompleted(ctx context.Context) (int, error)
}

// ActivityRepository handles per-day activity accumulators.
type ActivityRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*models.DailyActivity, error)
	Insert(ctx context.Context, a models.DailyActivity) (int64, error)
	Update(ctx context.Context, a models.DailyActivity) error
	Recent(ctx context.Context, days int) ([]models.DailyActivity, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
