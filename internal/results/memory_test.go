package results

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 100, Result{Total: 5, Correct: 5}.Percentage())
	assert.Equal(t, 40, Result{Total: 5, Correct: 2}.Percentage())
	assert.Equal(t, 0, Result{Total: 0, Correct: 0}.Percentage())
}

func TestMemoryStoreKeepsBestPerUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Record(ctx, Result{UserID: 1, Username: "alice", Total: 5, Correct: 2}))
	require.NoError(t, s.Record(ctx, Result{UserID: 1, Username: "alice", Total: 5, Correct: 4}))
	require.NoError(t, s.Record(ctx, Result{UserID: 1, Username: "alice", Total: 5, Correct: 3}))

	top, err := s.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 4, top[0].Correct)
}

func TestMemoryStoreTopOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Record(ctx, Result{UserID: 1, Username: "alice", Total: 5, Correct: 3, CreatedAt: base}))
	require.NoError(t, s.Record(ctx, Result{UserID: 2, Username: "bob", Total: 5, Correct: 5, CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, s.Record(ctx, Result{UserID: 3, Username: "carol", Total: 3, Correct: 3, CreatedAt: base.Add(2 * time.Hour)}))

	top, err := s.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 3)

	// bob and carol both score 100%, bob has more correct answers.
	assert.Equal(t, "bob", top[0].Username)
	assert.Equal(t, "carol", top[1].Username)
	assert.Equal(t, "alice", top[2].Username)
}

func TestMemoryStoreTopLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for i := int64(1); i <= 5; i++ {
		require.NoError(t, s.Record(ctx, Result{UserID: i, Total: 5, Correct: int(i % 5)}))
	}

	top, err := s.Top(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, top, 3)
}

func TestMemoryStoreEmptyTop(t *testing.T) {
	top, err := NewMemoryStore().Top(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}
