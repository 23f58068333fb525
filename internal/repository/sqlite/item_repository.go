package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository implementation
func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, content, content_type, review_count, correct_count, ease_factor, interval_days, next_review_at, last_reviewed_at, status, created_at`

func scanItem(row interface{ Scan(...any) error }) (*models.LearningItem, error) {
	var it models.LearningItem
	var lastReviewed sql.NullTime
	err := row.Scan(&it.ID, &it.Content, &it.ContentType, &it.ReviewCount, &it.CorrectCount,
		&it.EaseFactor, &it.IntervalDays, &it.NextReviewAt, &lastReviewed, &it.Status, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	if lastReviewed.Valid {
		it.LastReviewedAt = &lastReviewed.Time
	}
	return &it, nil
}

func (r *itemRepository) Get(ctx context.Context, id int64) (*models.LearningItem, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")

	it, err := scanItem(r.db.QueryRowContext(ctx, `
SELECT `+itemColumns+`
FROM learning_items
WHERE id = ?
`, id))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("item not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get item: %v", err)
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) List(ctx context.Context, filter models.ItemFilter) ([]models.LearningItem, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")

	query := sqlBuilder.Select(itemColumns).From("learning_items").OrderBy("created_at DESC")
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.ContentType != "" {
		query = query.Where(squirrel.Eq{"content_type": filter.ContentType})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list items: %v", err)
		return nil, err
	}
	defer rows.Close()

	var items []models.LearningItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			log.Error("failed to scan item row: %v", err)
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func (r *itemRepository) Insert(ctx context.Context, it models.LearningItem) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("inserting item: content_type=%s", it.ContentType)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO learning_items (content, content_type, review_count, correct_count, ease_factor, interval_days, next_review_at, last_reviewed_at, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, it.Content, it.ContentType, it.ReviewCount, it.CorrectCount, it.EaseFactor, it.IntervalDays, it.NextReviewAt, it.LastReviewedAt, it.Status)
	if err != nil {
		log.Error("failed to insert item: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.Debug("item inserted: id=%d", id)
	return id, nil
}

func (r *itemRepository) Update(ctx context.Context, it models.LearningItem) error {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("updating item: id=%d, interval=%d, ease=%.2f, status=%s", it.ID, it.IntervalDays, it.EaseFactor, it.Status)

	_, err := r.db.ExecContext(ctx, `
UPDATE learning_items
SET review_count = ?, correct_count = ?, ease_factor = ?, interval_days = ?, next_review_at = ?, last_reviewed_at = ?, status = ?
WHERE id = ?
`, it.ReviewCount, it.CorrectCount, it.EaseFactor, it.IntervalDays, it.NextReviewAt, it.LastReviewedAt, it.Status, it.ID)
	if err != nil {
		log.Error("failed to update item: %v", err)
	}
	return err
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("deleting item: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM learning_items WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete item: %v", err)
	}
	return err
}

func (r *itemRepository) Due(ctx context.Context, before time.Time, limit int) ([]models.LearningItem, error) {
	log := logger.FromContext(ctx).WithPrefix("item_repo")
	log.Debug("fetching due items: before=%s, limit=%d", before.Format(time.RFC3339), limit)

	rows, err := r.db.QueryContext(ctx, `
SELECT `+itemColumns+`
FROM learning_items
WHERE next_review_at <= ? AND status != ?
ORDER BY next_review_at ASC
LIMIT ?
`, before, models.StatusMastered, limit)
	if err != nil {
		log.Error("failed to query due items: %v", err)
		return nil, err
	}
	defer rows.Close()

	var items []models.LearningItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			log.Error("failed to scan due item row: %v", err)
			return nil, err
		}
		items = append(items, *it)
	}
	log.Debug("found %d due items", len(items))
	return items, rows.Err()
}
