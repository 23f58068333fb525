package services

import (
	"context"
	"fmt"

	"github.com/mvilela/lumo/internal/errors"
	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
	"github.com/mvilela/lumo/internal/srs"

	"github.com/mvilela/lumo/internal/clock"
)

// ReviewService owns the spaced-repetition schedule of the learning catalog.
type ReviewService interface {
	CreateItem(ctx context.Context, content, contentType string) (*models.LearningItem, error)
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.LearningItem, error)
	DeleteItem(ctx context.Context, id int64) error
	RecordReview(ctx context.Context, itemID int64, quality int) (*models.LearningItem, error)
	DueItems(ctx context.Context, limit int) ([]models.LearningItem, error)
}

type reviewService struct {
	items       repository.ItemRepository
	progress    ProgressService
	activity    ActivityService
	clk         clock.Clock
	xpPerReview int
}

// NewReviewService creates a new ReviewService. xpPerReview is granted for
// every completed review.
func NewReviewService(items repository.ItemRepository, progress ProgressService, activity ActivityService, clk clock.Clock, xpPerReview int) ReviewService {
	return &reviewService{
		items:       items,
		progress:    progress,
		activity:    activity,
		clk:         clk,
		xpPerReview: xpPerReview,
	}
}

func (s *reviewService) CreateItem(ctx context.Context, content, contentType string) (*models.LearningItem, error) {
	if content == "" {
		return nil, errors.NewValidationError("content", "must not be empty")
	}
	if contentType == "" {
		contentType = "word"
	}

	item := models.LearningItem{
		Content:      content,
		ContentType:  contentType,
		EaseFactor:   models.DefaultEaseFactor,
		IntervalDays: models.DefaultIntervalDays,
		NextReviewAt: s.clk.Now(),
		Status:       models.StatusNew,
	}
	id, err := s.items.Insert(ctx, item)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	item.ID = id
	return &item, nil
}

func (s *reviewService) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.LearningItem, error) {
	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return items, nil
}

func (s *reviewService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *reviewService) RecordReview(ctx context.Context, itemID int64, quality int) (*models.LearningItem, error) {
	log := logger.FromContext(ctx).WithPrefix("review")

	item, err := s.items.Get(ctx, itemID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if item == nil {
		// Callers probe optimistically; an unknown item is a no-op.
		log.Debug("review for unknown item %d ignored", itemID)
		return nil, nil
	}

	prev := *item
	updated := srs.Apply(*item, quality, s.clk.Now())
	if err := s.items.Update(ctx, updated); err != nil {
		return nil, errors.NewInternalError(err)
	}
	log.Debug("item %d reviewed: quality=%d, interval=%d, ease=%.2f, status=%s",
		itemID, quality, updated.IntervalDays, updated.EaseFactor, updated.Status)

	relatedID := updated.ID
	desc := fmt.Sprintf("Reviewed %q", updated.Content)
	if _, err := s.progress.AwardXP(ctx, s.xpPerReview, models.SourceReview, desc, &relatedID); err != nil {
		return nil, err
	}

	// A completed review is itself an activity event.
	if err := s.activity.Record(ctx, models.ActivityItemReviewed, 1); err != nil {
		return nil, err
	}
	if prev.ReviewCount == 0 {
		if err := s.activity.Record(ctx, models.ActivityWordLearned, 1); err != nil {
			return nil, err
		}
	}
	if updated.Status == models.StatusMastered && prev.Status != models.StatusMastered {
		if err := s.activity.Record(ctx, models.ActivityWordMastered, 1); err != nil {
			return nil, err
		}
	}
	return &updated, nil
}

func (s *reviewService) DueItems(ctx context.Context, limit int) ([]models.LearningItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	items, err := s.items.Due(ctx, s.clk.Now(), limit)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return items, nil
}
