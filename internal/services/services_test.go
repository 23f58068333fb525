package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mvilela/lumo/internal/clock"
	"github.com/mvilela/lumo/internal/db"
	"github.com/mvilela/lumo/internal/events"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
	"github.com/mvilela/lumo/internal/repository/sqlite"
	"github.com/mvilela/lumo/internal/services"
	"github.com/mvilela/lumo/internal/testutil"
)

const (
	testXPPerReview  = 10
	testBaseStreakXP = 10
)

// fixture wires the full service graph over an in-memory database, with a
// controllable clock. Mirrors the wiring in cmd/server.
type fixture struct {
	db         *db.DB
	clk        *clock.Fixed
	dispatcher *events.Dispatcher

	items      repository.ItemRepository
	txns       repository.TransactionRepository
	stats      repository.StatsRepository
	badgeRepo  repository.BadgeRepository
	chRepo     repository.ChallengeRepository
	activities repository.ActivityRepository

	progress   services.ProgressService
	streak     services.StreakService
	badges     services.BadgeService
	challenges services.ChallengeService
	activity   services.ActivityService
	review     services.ReviewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		db:         testutil.NewTestDB(t),
		clk:        &clock.Fixed{Current: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)},
		dispatcher: events.NewDispatcher(),
	}
	t.Cleanup(func() {
		require.NoError(t, f.db.Close())
	})

	f.items = sqlite.NewItemRepository(f.db.DB)
	f.txns = sqlite.NewTransactionRepository(f.db.DB)
	f.stats = sqlite.NewStatsRepository(f.db.DB)
	f.badgeRepo = sqlite.NewBadgeRepository(f.db.DB)
	f.chRepo = sqlite.NewChallengeRepository(f.db.DB)
	f.activities = sqlite.NewActivityRepository(f.db.DB)

	lock := services.NewStatsLock()
	f.progress = services.NewProgressService(lock, f.stats, f.txns, f.activities, f.clk, f.dispatcher)
	f.streak = services.NewStreakService(lock, f.stats, f.progress, f.clk, f.dispatcher, testBaseStreakXP)
	f.challenges = services.NewChallengeService(lock, f.chRepo, f.progress, f.clk, f.dispatcher)
	f.badges = services.NewBadgeService(lock, f.badgeRepo, f.stats, f.chRepo, f.progress, f.clk)
	f.activity = services.NewActivityService(lock, f.stats, f.activities, f.progress, f.streak, f.challenges, f.clk, f.dispatcher)
	f.review = services.NewReviewService(f.items, f.progress, f.activity, f.clk, testXPPerReview)

	f.badges.RegisterHandlers(f.dispatcher)
	return f
}

// seedStats initializes the singleton stats row and applies a mutation to it,
// so tests can start from a non-trivial history.
func seedStats(t *testing.T, f *fixture, mutate func(*models.UserStats)) {
	t.Helper()
	ctx := context.Background()

	stats, err := f.progress.Stats(ctx)
	require.NoError(t, err)
	mutate(stats)
	require.NoError(t, f.stats.Update(ctx, *stats))
}
