package bot

import (
	"testing"

	"exambot/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsListKeyboardLayout(t *testing.T) {
	records := []content.Record{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 7}, {ID: 9}}
	markup := questionsListKeyboard(records)

	// Five buttons two per row plus the back row.
	require.Len(t, markup.InlineKeyboard, 4)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Len(t, markup.InlineKeyboard[1], 2)
	assert.Len(t, markup.InlineKeyboard[2], 1)
	assert.Len(t, markup.InlineKeyboard[3], 1)

	assert.Equal(t, "Question 1", markup.InlineKeyboard[0][0].Text)
	assert.Contains(t, markup.InlineKeyboard[0][0].Data, "1")
	assert.Equal(t, "Question 9", markup.InlineKeyboard[2][0].Text)
	assert.Equal(t, "⬅️ Back", markup.InlineKeyboard[3][0].Text)
}

func TestQuestionActionsKeyboardHidesAnswerButton(t *testing.T) {
	before := questionActionsKeyboard(5, true)
	require.Len(t, before.InlineKeyboard, 3)
	assert.Equal(t, "✅ Show answer", before.InlineKeyboard[0][0].Text)

	after := questionActionsKeyboard(5, false)
	require.Len(t, after.InlineKeyboard, 2)
	assert.Equal(t, "➡️ Next question", after.InlineKeyboard[0][0].Text)
}

func TestTaskActionsKeyboardHidesAnswerButton(t *testing.T) {
	before := taskActionsKeyboard(2, true)
	require.Len(t, before.InlineKeyboard, 3)
	assert.Equal(t, "✅ Show solution", before.InlineKeyboard[0][0].Text)

	after := taskActionsKeyboard(2, false)
	require.Len(t, after.InlineKeyboard, 2)
}

func TestQuizGradeKeyboard(t *testing.T) {
	markup := quizGradeKeyboard()
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Len(t, markup.InlineKeyboard[1], 1)
}
