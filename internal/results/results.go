package results

import (
	"context"
	"time"
)

// Result is one completed knowledge check.
type Result struct {
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	Total     int       `db:"total"`
	Correct   int       `db:"correct"`
	Wrong     int       `db:"wrong"`
	CreatedAt time.Time `db:"created_at"`
}

// Percentage returns the correct-answer share in whole percent.
func (r Result) Percentage() int {
	if r.Total <= 0 {
		return 0
	}
	return r.Correct * 100 / r.Total
}

// Store persists quiz results and serves the leaderboard.
// Top returns each user's best result, ordered best-first.
type Store interface {
	Record(ctx context.Context, r Result) error
	Top(ctx context.Context, limit int) ([]Result, error)
}

// betterThan ranks results for the leaderboard: higher percentage wins,
// then more correct answers, then the earlier achievement.
func betterThan(a, b Result) bool {
	if a.Percentage() != b.Percentage() {
		return a.Percentage() > b.Percentage()
	}
	if a.Correct != b.Correct {
		return a.Correct > b.Correct
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
