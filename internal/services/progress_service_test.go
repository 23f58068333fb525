package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvilela/lumo/internal/models"
)

func TestAwardXP_FirstAward(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.progress.AwardXP(ctx, 100, models.SourceManual, "welcome bonus", nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 100, result.XPAwarded)
	assert.False(t, result.LeveledUp)
	assert.Equal(t, 1, result.NewLevel)

	stats, err := f.progress.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, stats.TotalXP)
	assert.Equal(t, 100, stats.CurrentXP)
	assert.Equal(t, 1, stats.Level)
	assert.Equal(t, "Novice", stats.LevelTitle)
}

func TestAwardXP_AppendsLedgerEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	itemID := int64(3)

	_, err := f.progress.AwardXP(ctx, 10, models.SourceReview, "Reviewed \"serendipity\"", &itemID)
	require.NoError(t, err)
	_, err = f.progress.AwardXP(ctx, 30, models.SourceStreak, "Streak day 3", nil)
	require.NoError(t, err)

	txns, err := f.progress.RecentTransactions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, models.SourceStreak, txns[0].Source)
	assert.Equal(t, 30, txns[0].Amount)
	assert.Equal(t, models.SourceReview, txns[1].Source)
	require.NotNil(t, txns[1].RelatedID)
	assert.Equal(t, itemID, *txns[1].RelatedID)
}

func TestAwardXP_NegativeAmountClampedToZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.progress.AwardXP(ctx, 500, models.SourceManual, "seed", nil)
	require.NoError(t, err)

	result, err := f.progress.AwardXP(ctx, -200, models.SourceManual, "bogus penalty", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.XPAwarded)

	stats, err := f.progress.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500, stats.TotalXP, "total XP never decreases")

	// The zero-amount attempt still leaves an audit row.
	txns, err := f.progress.RecentTransactions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, 0, txns[0].Amount)
}

func TestAwardXP_LevelUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.progress.AwardXP(ctx, 499, models.SourceManual, "almost there", nil)
	require.NoError(t, err)
	assert.False(t, result.LeveledUp)
	assert.Equal(t, 1, result.NewLevel)

	result, err = f.progress.AwardXP(ctx, 1, models.SourceManual, "the last point", nil)
	require.NoError(t, err)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 2, result.NewLevel)

	stats, err := f.progress.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Level)
	assert.Equal(t, "Apprentice", stats.LevelTitle)
}

func TestAwardXP_LevelIsPureFunctionOfTotalXP(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.progress.AwardXP(ctx, 5200, models.SourceManual, "bulk import", nil)
	require.NoError(t, err)

	stats, err := f.progress.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Level, "5200 XP sits between the level 5 and 6 thresholds")
	assert.Equal(t, "Expert", stats.LevelTitle)
}

func TestStats_LazyInit(t *testing.T) {
	f := newFixture(t)

	stats, err := f.progress.Stats(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, models.UserStatsID, stats.ID)
	assert.Equal(t, 0, stats.TotalXP)
	assert.Equal(t, 1, stats.Level)
	assert.Equal(t, "Novice", stats.LevelTitle)
	assert.Empty(t, stats.EarnedBadges)
}

func TestAwardXP_RecordsDailyXP(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.progress.AwardXP(ctx, 40, models.SourceManual, "morning", nil)
	require.NoError(t, err)
	_, err = f.progress.AwardXP(ctx, 25, models.SourceManual, "evening", nil)
	require.NoError(t, err)

	daily, err := f.activities.GetByDate(ctx, f.clk.Now())
	require.NoError(t, err)
	require.NotNil(t, daily)
	assert.Equal(t, 65, daily.XPEarned)
}

func TestRecentTransactions_DefaultLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.progress.AwardXP(ctx, 10, models.SourceManual, "tick", nil)
		require.NoError(t, err)
	}

	txns, err := f.progress.RecentTransactions(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, txns, 3)

	txns, err = f.progress.RecentTransactions(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}
