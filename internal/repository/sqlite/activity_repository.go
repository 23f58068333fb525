package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
)

type activityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new ActivityRepository implementation
func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

const activityColumns = `id, date, items_reviewed, items_learned, journal_entries, journal_words, chat_messages, letters_written, letters_opened, active_time_seconds, xp_earned, created_at`

func scanActivity(row interface{ Scan(...any) error }) (*models.DailyActivity, error) {
	var a models.DailyActivity
	err := row.Scan(&a.ID, &a.Date, &a.ItemsReviewed, &a.ItemsLearned, &a.JournalEntries, &a.JournalWords,
		&a.ChatMessages, &a.LettersWritten, &a.LettersOpened, &a.ActiveTimeSeconds, &a.XPEarned, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepository) GetByDate(ctx context.Context, date time.Time) (*models.DailyActivity, error) {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")
	day := date.Format("2006-01-02")

	a, err := scanActivity(r.db.QueryRowContext(ctx, `
SELECT `+activityColumns+`
FROM daily_activities
WHERE date = ?
`, day))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no activity record for %s", day)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get daily activity: %v", err)
		return nil, err
	}
	return a, nil
}

func (r *activityRepository) Insert(ctx context.Context, a models.DailyActivity) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")
	log.Debug("creating daily activity for %s", a.Date.Format("2006-01-02"))

	res, err := r.db.ExecContext(ctx, `
INSERT INTO daily_activities (date, items_reviewed, items_learned, journal_entries, journal_words, chat_messages, letters_written, letters_opened, active_time_seconds, xp_earned)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, a.Date.Format("2006-01-02"), a.ItemsReviewed, a.ItemsLearned, a.JournalEntries, a.JournalWords,
		a.ChatMessages, a.LettersWritten, a.LettersOpened, a.ActiveTimeSeconds, a.XPEarned)
	if err != nil {
		log.Error("failed to insert daily activity: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *activityRepository) Update(ctx context.Context, a models.DailyActivity) error {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")

	_, err := r.db.ExecContext(ctx, `
UPDATE daily_activities
SET items_reviewed = ?, items_learned = ?, journal_entries = ?, journal_words = ?,
    chat_messages = ?, letters_written = ?, letters_opened = ?, active_time_seconds = ?, xp_earned = ?
WHERE id = ?
`, a.ItemsReviewed, a.ItemsLearned, a.JournalEntries, a.JournalWords,
		a.ChatMessages, a.LettersWritten, a.LettersOpened, a.ActiveTimeSeconds, a.XPEarned, a.ID)
	if err != nil {
		log.Error("failed to update daily activity: %v", err)
	}
	return err
}

func (r *activityRepository) Recent(ctx context.Context, days int) ([]models.DailyActivity, error) {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT `+activityColumns+`
FROM daily_activities
ORDER BY date DESC
LIMIT ?
`, days)
	if err != nil {
		log.Error("failed to query daily activities: %v", err)
		return nil, err
	}
	defer rows.Close()

	var activities []models.DailyActivity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			log.Error("failed to scan daily activity row: %v", err)
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}

func (r *activityRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")

	res, err := r.db.ExecContext(ctx, `DELETE FROM daily_activities WHERE date < ?`, cutoff.Format("2006-01-02"))
	if err != nil {
		log.Error("failed to prune daily activities: %v", err)
		return 0, err
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		log.Info("pruned %d old daily activity records", n)
	}
	return n, nil
}
