package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStartPayload(t *testing.T) {
	tests := []struct {
		payload string
		want    Link
	}{
		{"", Link{Kind: LinkMainMenu}},
		{"  ", Link{Kind: LinkMainMenu}},
		{"mgmt_questions", Link{Kind: LinkQuestionsMenu}},
		{"mgmt_tasks", Link{Kind: LinkTasksMenu}},
		{"question_3", Link{Kind: LinkQuestion, ID: 3}},
		{"task_12", Link{Kind: LinkTask, ID: 12}},
		{"question_", Link{Kind: LinkMainMenu}},
		{"question_abc", Link{Kind: LinkMainMenu}},
		{"task_x", Link{Kind: LinkMainMenu}},
		{"something_else", Link{Kind: LinkMainMenu}},
		{"QUESTION_3", Link{Kind: LinkMainMenu}},
	}
	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStartPayload(tt.payload))
		})
	}
}
