package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"exambot/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.InitLogger(nil)
	os.Exit(m.Run())
}

func writeContentDir(t *testing.T, questions, tasks string) *Store {
	t.Helper()
	dir := t.TempDir()
	if questions != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "questions.txt"), []byte(questions), 0o644))
	}
	if tasks != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.txt"), []byte(tasks), 0o644))
	}
	return NewStore(Options{Dir: dir, QuestionsFile: "questions.txt", TasksFile: "tasks.txt"})
}

func TestLoadParsesAndSorts(t *testing.T) {
	s := writeContentDir(t,
		"3|Third question|Third answer\n1|First question|First answer\n2|Second|With | pipe inside answer\n",
		"1|Task one|Solution one\n",
	)
	require.NoError(t, s.Load(context.Background()))

	qs := s.Questions()
	require.Len(t, qs, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{qs[0].ID, qs[1].ID, qs[2].ID})
	assert.Equal(t, "First question", qs[0].Prompt)
	assert.Equal(t, "With | pipe inside answer", qs[1].Answer)

	ts := s.Tasks()
	require.Len(t, ts, 1)
	assert.Equal(t, "Task one", ts[0].Prompt)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	s := writeContentDir(t,
		"1|Good|Answer\n\nnot-a-record\n2|missing answer field\nx|bad id|answer\n3|Also good|Answer\n",
		"",
	)
	require.NoError(t, s.Load(context.Background()))

	qs := s.Questions()
	require.Len(t, qs, 2)
	assert.Equal(t, 1, qs[0].ID)
	assert.Equal(t, 3, qs[1].ID)
}

func TestLoadMissingFilesNonFatal(t *testing.T) {
	s := NewStore(Options{Dir: t.TempDir(), QuestionsFile: "questions.txt", TasksFile: "tasks.txt"})
	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, s.Questions())
	assert.Empty(t, s.Tasks())
}

func TestLoadReplacesSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.txt")
	require.NoError(t, os.WriteFile(path, []byte("1|One|A\n2|Two|B\n"), 0o644))

	s := NewStore(Options{Dir: dir, QuestionsFile: "questions.txt", TasksFile: "tasks.txt"})
	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Questions(), 2)

	require.NoError(t, os.WriteFile(path, []byte("5|Five|E\n"), 0o644))
	require.NoError(t, s.Load(context.Background()))

	qs := s.Questions()
	require.Len(t, qs, 1)
	assert.Equal(t, 5, qs[0].ID)
}

func TestLookupByID(t *testing.T) {
	s := writeContentDir(t, "1|One|A\n5|Five|E\n9|Nine|I\n", "2|Task|Sol\n")
	require.NoError(t, s.Load(context.Background()))

	q, ok := s.Question(5)
	require.True(t, ok)
	assert.Equal(t, "Five", q.Prompt)

	_, ok = s.Question(4)
	assert.False(t, ok)

	task, ok := s.Task(2)
	require.True(t, ok)
	assert.Equal(t, "Sol", task.Answer)
}

func TestStoreCyclicNavigation(t *testing.T) {
	s := writeContentDir(t, "1|One|A\n3|Three|C\n7|Seven|G\n", "")
	require.NoError(t, s.Load(context.Background()))

	next, ok := s.NextQuestion(3)
	require.True(t, ok)
	assert.Equal(t, 7, next.ID)

	// Wrap from the largest id back to the smallest.
	next, ok = s.NextQuestion(7)
	require.True(t, ok)
	assert.Equal(t, 1, next.ID)

	// Unknown current id starts from the beginning.
	next, ok = s.NextQuestion(100)
	require.True(t, ok)
	assert.Equal(t, 1, next.ID)

	_, ok = s.NextTask(1)
	assert.False(t, ok)
}

func TestLoadRecordWithImageMarker(t *testing.T) {
	s := writeContentDir(t, "5|What is X?|img:tables/t5.png Answer text\n", "")
	require.NoError(t, s.Load(context.Background()))

	rec, ok := s.Question(5)
	require.True(t, ok)
	assert.Equal(t, "What is X?", rec.Prompt)
	assert.Equal(t, "img:tables/t5.png Answer text", rec.Answer)

	text, images := SplitMedia(rec.Answer)
	assert.Equal(t, "Answer text", text)
	assert.Equal(t, []string{"tables/t5.png"}, images)
}

func TestAssetPath(t *testing.T) {
	s := NewStore(Options{Dir: "/data/content"})
	assert.Equal(t, filepath.Join("/data/content", "tables/table_01.png"), s.AssetPath("tables/table_01.png"))
}
