package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
)

type badgeRepository struct {
	db *sql.DB
}

// NewBadgeRepository creates a new BadgeRepository implementation
func NewBadgeRepository(db *sql.DB) repository.BadgeRepository {
	return &badgeRepository{db: db}
}

const badgeColumns = `id, name, description, category, tier, requirement, progress, is_earned, earned_at, xp_reward, avatar_unlock, banner_unlock`

func scanBadge(row interface{ Scan(...any) error }) (*models.Badge, error) {
	var b models.Badge
	var earnedAt sql.NullTime
	err := row.Scan(&b.ID, &b.Name, &b.Description, &b.Category, &b.Tier,
		&b.Requirement, &b.Progress, &b.IsEarned, &earnedAt, &b.XPReward, &b.AvatarUnlock, &b.BannerUnlock)
	if err != nil {
		return nil, err
	}
	if earnedAt.Valid {
		b.EarnedAt = &earnedAt.Time
	}
	return &b, nil
}

func (r *badgeRepository) Get(ctx context.Context, id string) (*models.Badge, error) {
	log := logger.FromContext(ctx).WithPrefix("badge_repo")

	b, err := scanBadge(r.db.QueryRowContext(ctx, `
SELECT `+badgeColumns+`
FROM badges
WHERE id = ?
`, id))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("badge not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get badge: %v", err)
		return nil, err
	}
	return b, nil
}

func (r *badgeRepository) List(ctx context.Context) ([]models.Badge, error) {
	log := logger.FromContext(ctx).WithPrefix("badge_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT `+badgeColumns+`
FROM badges
ORDER BY category, requirement
`)
	if err != nil {
		log.Error("failed to list badges: %v", err)
		return nil, err
	}
	defer rows.Close()

	var badges []models.Badge
	for rows.Next() {
		b, err := scanBadge(rows)
		if err != nil {
			log.Error("failed to scan badge row: %v", err)
			return nil, err
		}
		badges = append(badges, *b)
	}
	return badges, rows.Err()
}

func (r *badgeRepository) Insert(ctx context.Context, b models.Badge) error {
	log := logger.FromContext(ctx).WithPrefix("badge_repo")
	log.Debug("inserting badge: id=%s", b.ID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO badges (id, name, description, category, tier, requirement, progress, is_earned, earned_at, xp_reward, avatar_unlock, banner_unlock)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, b.ID, b.Name, b.Description, b.Category, b.Tier, b.Requirement, b.Progress, b.IsEarned, b.EarnedAt, b.XPReward, b.AvatarUnlock, b.BannerUnlock)
	if err != nil {
		log.Error("failed to insert badge: %v", err)
	}
	return err
}

func (r *badgeRepository) Update(ctx context.Context, b models.Badge) error {
	log := logger.FromContext(ctx).WithPrefix("badge_repo")
	log.Debug("updating badge: id=%s, progress=%d/%d, earned=%v", b.ID, b.Progress, b.Requirement, b.IsEarned)

	_, err := r.db.ExecContext(ctx, `
UPDATE badges
SET progress = ?, is_earned = ?, earned_at = ?
WHERE id = ?
`, b.Progress, b.IsEarned, b.EarnedAt, b.ID)
	if err != nil {
		log.Error("failed to update badge: %v", err)
	}
	return err
}

func (r *badgeRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM badges`).Scan(&n)
	return n, err
}
