package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRecordEmpty(t *testing.T) {
	_, ok := NextRecord(nil, 1)
	assert.False(t, ok)
}

func TestNextRecordSingle(t *testing.T) {
	records := []Record{{ID: 4}}
	next, ok := NextRecord(records, 4)
	require.True(t, ok)
	assert.Equal(t, 4, next.ID)
}

func TestNextRecordUnknownStartsAtSmallest(t *testing.T) {
	records := []Record{{ID: 2}, {ID: 5}, {ID: 8}}
	next, ok := NextRecord(records, 99)
	require.True(t, ok)
	assert.Equal(t, 2, next.ID)
}

func TestNextRecordFullCycle(t *testing.T) {
	records := []Record{{ID: 1}, {ID: 3}, {ID: 7}, {ID: 9}}

	// From any starting id, |records| steps visit every record exactly
	// once and return to the start.
	for _, start := range records {
		visited := make(map[int]int)
		cur := start.ID
		for range records {
			next, ok := NextRecord(records, cur)
			require.True(t, ok)
			visited[next.ID]++
			cur = next.ID
		}
		assert.Equal(t, start.ID, cur, "cycle from %d did not close", start.ID)
		assert.Len(t, visited, len(records))
		for id, n := range visited {
			assert.Equal(t, 1, n, "id %d visited %d times", id, n)
		}
	}
}
