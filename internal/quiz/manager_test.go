package quiz

import (
	"os"
	"sort"
	"testing"

	"exambot/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.InitLogger(nil)
	os.Exit(m.Run())
}

func newTestManager(size int) *Manager {
	m := NewManager(size)
	// Deterministic order for assertions.
	m.shuffle = func([]int) {}
	return m
}

func allExist(int) bool { return true }

func TestStartEmptyPool(t *testing.T) {
	m := newTestManager(5)
	_, err := m.Start(1, nil)
	assert.ErrorIs(t, err, ErrEmptyPool)
	assert.False(t, m.Active(1))
}

func TestStartTruncatesToSize(t *testing.T) {
	m := newTestManager(5)
	total, err := m.Start(1, []int{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestStartSmallPoolTakesAll(t *testing.T) {
	m := newTestManager(5)
	total, err := m.Start(1, []int{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestStartSelectsDistinctIDs(t *testing.T) {
	m := NewManager(5)
	pool := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	_, err := m.Start(1, pool)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		id, prog, err := m.Current(1, allExist)
		require.NoError(t, err)
		assert.Equal(t, i+1, prog.Position)
		assert.Equal(t, 5, prog.Total)
		assert.False(t, seen[id], "id %d selected twice", id)
		seen[id] = true
		assert.Contains(t, pool, id)
		_, err = m.Answer(1, true)
		require.NoError(t, err)
	}
}

func TestStartReplacesSession(t *testing.T) {
	m := newTestManager(5)
	_, err := m.Start(1, []int{1, 2, 3})
	require.NoError(t, err)
	_, err = m.Answer(1, true)
	require.NoError(t, err)

	_, err = m.Start(1, []int{7, 8})
	require.NoError(t, err)

	id, prog, err := m.Current(1, allExist)
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Equal(t, Progress{Position: 1, Total: 2}, prog)
}

func TestThreeQuestionRun(t *testing.T) {
	m := newTestManager(5)
	_, err := m.Start(42, []int{11, 12, 13})
	require.NoError(t, err)

	summary, err := m.Answer(42, true)
	require.NoError(t, err)
	assert.Nil(t, summary)

	summary, err = m.Answer(42, false)
	require.NoError(t, err)
	assert.Nil(t, summary)

	summary, err = m.Answer(42, true)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, Summary{Total: 3, Correct: 2, Wrong: 1}, *summary)

	// Finishing removes the session.
	_, _, err = m.Current(42, allExist)
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = m.Answer(42, true)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCurrentSkipsRemovedIDs(t *testing.T) {
	m := newTestManager(5)
	_, err := m.Start(1, []int{1, 2, 3})
	require.NoError(t, err)

	id, prog, err := m.Current(1, func(id int) bool { return id != 1 })
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, Progress{Position: 2, Total: 3}, prog)
}

func TestCurrentDrainedSessionRemoved(t *testing.T) {
	m := newTestManager(5)
	_, err := m.Start(1, []int{1, 2, 3})
	require.NoError(t, err)

	_, _, err = m.Current(1, func(int) bool { return false })
	assert.ErrorIs(t, err, ErrNoSession)
	assert.False(t, m.Active(1))
}

func TestCancelIdempotent(t *testing.T) {
	m := newTestManager(5)
	_, err := m.Start(1, []int{1, 2})
	require.NoError(t, err)

	assert.True(t, m.Cancel(1))
	assert.False(t, m.Cancel(1))
	assert.False(t, m.Active(1))
}

func TestSessionsIsolatedPerUser(t *testing.T) {
	m := newTestManager(5)
	_, err := m.Start(1, []int{1, 2})
	require.NoError(t, err)
	_, err = m.Start(2, []int{3, 4})
	require.NoError(t, err)

	m.Cancel(1)
	assert.False(t, m.Active(1))
	assert.True(t, m.Active(2))

	id, _, err := m.Current(2, allExist)
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestShuffleUniformEnough(t *testing.T) {
	// With a real shuffle the first selected id should vary across runs.
	firsts := make(map[int]bool)
	for range 200 {
		m := NewManager(5)
		_, err := m.Start(1, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
		require.NoError(t, err)
		id, _, err := m.Current(1, allExist)
		require.NoError(t, err)
		firsts[id] = true
	}
	keys := make([]int, 0, len(firsts))
	for k := range firsts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	assert.Greater(t, len(keys), 3, "shuffle produced too few distinct first picks: %v", keys)
}
