package results

import (
	"context"
	"fmt"
	"time"

	"exambot/core/logger"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// PostgresStore persists quiz results in the quiz_results table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Record inserts a finished quiz result.
func (p *PostgresStore) Record(ctx context.Context, r Result) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	const q = `
		INSERT INTO quiz_results (user_id, username, total, correct, wrong, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := p.db.ExecContext(ctx, q, r.UserID, r.Username, r.Total, r.Correct, r.Wrong, r.CreatedAt); err != nil {
		return fmt.Errorf("results: insert: %w", err)
	}
	logger.Results.LogAttrs(ctx, slog.LevelDebug, "results.record",
		slog.Int64("user_id", r.UserID),
		slog.Int("correct", r.Correct),
		slog.Int("quiz_total", r.Total),
	)
	return nil
}

// Top returns each user's best result, ordered best-first.
func (p *PostgresStore) Top(ctx context.Context, limit int) ([]Result, error) {
	const q = `
		SELECT user_id, username, total, correct, wrong, created_at
		FROM (
			SELECT *, ROW_NUMBER() OVER (
				PARTITION BY user_id
				ORDER BY correct * 100.0 / GREATEST(total, 1) DESC, correct DESC, created_at ASC
			) AS rnk
			FROM quiz_results
		) ranked
		WHERE rnk = 1
		ORDER BY correct * 100.0 / GREATEST(total, 1) DESC, correct DESC, created_at ASC
		LIMIT $1`
	var out []Result
	if err := p.db.SelectContext(ctx, &out, q, limit); err != nil {
		return nil, fmt.Errorf("results: top: %w", err)
	}
	return out, nil
}
