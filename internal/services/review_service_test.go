package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/srs"
)

func TestCreateItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.review.CreateItem(ctx, "serendipity", "")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Positive(t, item.ID)
	assert.Equal(t, "word", item.ContentType, "content type defaults to word")
	assert.Equal(t, models.StatusNew, item.Status)
	assert.InDelta(t, models.DefaultEaseFactor, item.EaseFactor, 1e-9)
	assert.True(t, item.NextReviewAt.Equal(f.clk.Now()), "new items are due immediately")
}

func TestCreateItem_EmptyContent(t *testing.T) {
	f := newFixture(t)

	item, err := f.review.CreateItem(context.Background(), "", "word")
	assert.Error(t, err)
	assert.Nil(t, item)
}

func TestRecordReview_UnknownItem(t *testing.T) {
	f := newFixture(t)

	item, err := f.review.RecordReview(context.Background(), 424242, srs.QualityGood)
	require.NoError(t, err)
	assert.Nil(t, item)

	stats, err := f.progress.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalXP, "no reward for a phantom review")
}

func TestRecordReview_FirstReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.review.CreateItem(ctx, "serendipity", "word")
	require.NoError(t, err)

	updated, err := f.review.RecordReview(ctx, item.ID, srs.QualityGood)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.ReviewCount)
	assert.Equal(t, 1, updated.CorrectCount)
	assert.Equal(t, 1, updated.IntervalDays)

	stats, err := f.progress.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.WordsLearned, "the first review learns the word")
	assert.Equal(t, 1, stats.CurrentStreak)
	// 10 review XP plus 10 streak XP for day one.
	assert.Equal(t, 20, stats.TotalXP)

	daily, err := f.activities.GetByDate(ctx, f.clk.Now())
	require.NoError(t, err)
	require.NotNil(t, daily)
	assert.Equal(t, 1, daily.ItemsReviewed)
	assert.Equal(t, 1, daily.ItemsLearned)
}

func TestRecordReview_RepeatReviewDoesNotRelearn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.review.CreateItem(ctx, "serendipity", "word")
	require.NoError(t, err)

	_, err = f.review.RecordReview(ctx, item.ID, srs.QualityGood)
	require.NoError(t, err)
	_, err = f.review.RecordReview(ctx, item.ID, srs.QualityGood)
	require.NoError(t, err)

	stats, err := f.progress.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.WordsLearned)

	daily, err := f.activities.GetByDate(ctx, f.clk.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, daily.ItemsReviewed)
	assert.Equal(t, 1, daily.ItemsLearned)
}

func TestRecordReview_MasteryTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.review.CreateItem(ctx, "serendipity", "word")
	require.NoError(t, err)

	// Six correct reviews in a row cross the mastery bar on the last one.
	var updated *models.LearningItem
	for i := 0; i < 6; i++ {
		updated, err = f.review.RecordReview(ctx, item.ID, srs.QualityGood)
		require.NoError(t, err)
		require.NotNil(t, updated)
	}
	assert.Equal(t, models.StatusMastered, updated.Status)

	stats, err := f.progress.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.WordsMastered)

	// Further reviews of a mastered item do not master it again.
	_, err = f.review.RecordReview(ctx, item.ID, srs.QualityGood)
	require.NoError(t, err)

	stats, err = f.progress.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.WordsMastered)
}

func TestRecordReview_AppendsLedgerEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.review.CreateItem(ctx, "serendipity", "word")
	require.NoError(t, err)

	_, err = f.review.RecordReview(ctx, item.ID, srs.QualityHard)
	require.NoError(t, err)

	txns, err := f.progress.RecentTransactions(ctx, 10)
	require.NoError(t, err)

	var reviewTxn *models.XPTransaction
	for i := range txns {
		if txns[i].Source == models.SourceReview {
			reviewTxn = &txns[i]
		}
	}
	require.NotNil(t, reviewTxn)
	assert.Equal(t, testXPPerReview, reviewTxn.Amount)
	require.NotNil(t, reviewTxn.RelatedID)
	assert.Equal(t, item.ID, *reviewTxn.RelatedID)
}

func TestDueItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	due, err := f.review.CreateItem(ctx, "due now", "word")
	require.NoError(t, err)

	later, err := f.review.CreateItem(ctx, "due later", "word")
	require.NoError(t, err)
	_, err = f.review.RecordReview(ctx, later.ID, srs.QualityGood)
	require.NoError(t, err)

	items, err := f.review.DueItems(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 1, "reviewed items are pushed past now")
	assert.Equal(t, due.ID, items[0].ID)
}

func TestListAndDeleteItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.review.CreateItem(ctx, "alpha", "word")
	require.NoError(t, err)
	_, err = f.review.CreateItem(ctx, "stay hungry", "quote")
	require.NoError(t, err)

	items, err := f.review.ListItems(ctx, models.ItemFilter{ContentType: "quote"})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, f.review.DeleteItem(ctx, first.ID))

	items, err = f.review.ListItems(ctx, models.ItemFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRecordReview_SchedulesWithFixedClock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.review.CreateItem(ctx, "serendipity", "word")
	require.NoError(t, err)

	updated, err := f.review.RecordReview(ctx, item.ID, srs.QualityPerfect)
	require.NoError(t, err)
	assert.True(t, updated.NextReviewAt.Equal(f.clk.Now().Add(24*time.Hour)))

	f.clk.Advance(24 * time.Hour)
	updated, err = f.review.RecordReview(ctx, item.ID, srs.QualityPerfect)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.IntervalDays)
	assert.True(t, updated.NextReviewAt.Equal(f.clk.Now().Add(6*24*time.Hour)))
}
