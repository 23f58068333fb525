package sqlite

import (
	"context"
	"database/sql"

	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/models"
	"github.com/mvilela/lumo/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository implementation
func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Insert(ctx context.Context, txn models.XPTransaction) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("txn_repo")
	log.Debug("appending xp transaction: amount=%d, source=%s", txn.Amount, txn.Source)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO xp_transactions (amount, source, description, related_id)
VALUES (?, ?, ?, ?)
`, txn.Amount, txn.Source, txn.Description, txn.RelatedID)
	if err != nil {
		log.Error("failed to append xp transaction: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *transactionRepository) Recent(ctx context.Context, limit int) ([]models.XPTransaction, error) {
	log := logger.FromContext(ctx).WithPrefix("txn_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, amount, source, description, related_id, created_at
FROM xp_transactions
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		log.Error("failed to query xp transactions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var txns []models.XPTransaction
	for rows.Next() {
		var t models.XPTransaction
		var related sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Amount, &t.Source, &t.Description, &related, &t.CreatedAt); err != nil {
			log.Error("failed to scan xp transaction row: %v", err)
			return nil, err
		}
		if related.Valid {
			t.RelatedID = &related.Int64
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
