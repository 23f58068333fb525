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

type challengeRepository struct {
	db *sql.DB
}

// NewChallengeRepository creates a new ChallengeRepository implementation
func NewChallengeRepository(db *sql.DB) repository.ChallengeRepository {
	return &challengeRepository{db: db}
}

const challengeColumns = `id, type, title, description, quote, quote_author, requirement, progress, xp_reward, is_completed, completed_at, date, created_at`

func scanChallenge(row interface{ Scan(...any) error }) (*models.DailyChallenge, error) {
	var c models.DailyChallenge
	var completedAt sql.NullTime
	err := row.Scan(&c.ID, &c.Type, &c.Title, &c.Description, &c.Quote, &c.QuoteAuthor,
		&c.Requirement, &c.Progress, &c.XPReward, &c.IsCompleted, &completedAt, &c.Date, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		c.CompletedAt = &completedAt.Time
	}
	return &c, nil
}

func (r *challengeRepository) Get(ctx context.Context, id int64) (*models.DailyChallenge, error) {
	log := logger.FromContext(ctx).WithPrefix("challenge_repo")

	c, err := scanChallenge(r.db.QueryRowContext(ctx, `
SELECT `+challengeColumns+`
FROM daily_challenges
WHERE id = ?
`, id))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("challenge not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get challenge: %v", err)
		return nil, err
	}
	return c, nil
}

func (r *challengeRepository) ForDate(ctx context.Context, date time.Time) ([]models.DailyChallenge, error) {
	log := logger.FromContext(ctx).WithPrefix("challenge_repo")
	day := date.Format("2006-01-02")
	log.Debug("fetching challenges for %s", day)

	rows, err := r.db.QueryContext(ctx, `
SELECT `+challengeColumns+`
FROM daily_challenges
WHERE date = ?
ORDER BY id
`, day)
	if err != nil {
		log.Error("failed to query challenges: %v", err)
		return nil, err
	}
	defer rows.Close()

	var challenges []models.DailyChallenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			log.Error("failed to scan challenge row: %v", err)
			return nil, err
		}
		challenges = append(challenges, *c)
	}
	log.Debug("found %d challenges for %s", len(challenges), day)
	return challenges, rows.Err()
}

func (r *challengeRepository) Insert(ctx context.Context, c models.DailyChallenge) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("challenge_repo")
	log.Debug("inserting challenge: type=%s, requirement=%d", c.Type, c.Requirement)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO daily_challenges (type, title, description, quote, quote_author, requirement, progress, xp_reward, is_completed, completed_at, date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, c.Type, c.Title, c.Description, c.Quote, c.QuoteAuthor, c.Requirement, c.Progress, c.XPReward, c.IsCompleted, c.CompletedAt, c.Date.Format("2006-01-02"))
	if err != nil {
		log.Error("failed to insert challenge: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *challengeRepository) Update(ctx context.Context, c models.DailyChallenge) error {
	log := logger.FromContext(ctx).WithPrefix("challenge_repo")
	log.Debug("updating challenge: id=%d, progress=%d/%d, completed=%v", c.ID, c.Progress, c.Requirement, c.IsCompleted)

	_, err := r.db.ExecContext(ctx, `
UPDATE daily_challenges
SET progress = ?, is_completed = ?, completed_at = ?
WHERE id = ?
`, c.Progress, c.IsCompleted, c.CompletedAt, c.ID)
	if err != nil {
		log.Error("failed to update challenge: %v", err)
	}
	return err
}

func (r *challengeRepository) CountCompleted(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_challenges WHERE is_completed = 1`).Scan(&n)
	return n, err
}
