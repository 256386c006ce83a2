package bot

import (
	"strconv"
	"strings"
)

// LinkKind identifies the destination of a /start deep link.
type LinkKind int

const (
	// LinkMainMenu is the default destination, also used for any payload
	// that does not match the contract.
	LinkMainMenu LinkKind = iota
	// LinkQuestionsMenu opens the theory questions menu.
	LinkQuestionsMenu
	// LinkTasksMenu opens the practice tasks menu.
	LinkTasksMenu
	// LinkQuestion opens a specific question by id.
	LinkQuestion
	// LinkTask opens a specific task by id.
	LinkTask
)

// Link is a decoded /start payload.
type Link struct {
	Kind LinkKind
	ID   int
}

// ParseStartPayload decodes the deep-link payload of a /start command.
// Recognized forms: "", "mgmt_questions", "mgmt_tasks", "question_<id>",
// "task_<id>". Anything else resolves to the main menu.
func ParseStartPayload(payload string) Link {
	payload = strings.TrimSpace(payload)
	switch payload {
	case "":
		return Link{Kind: LinkMainMenu}
	case "mgmt_questions":
		return Link{Kind: LinkQuestionsMenu}
	case "mgmt_tasks":
		return Link{Kind: LinkTasksMenu}
	}
	if raw, ok := strings.CutPrefix(payload, "question_"); ok {
		if id, err := strconv.Atoi(raw); err == nil {
			return Link{Kind: LinkQuestion, ID: id}
		}
	}
	if raw, ok := strings.CutPrefix(payload, "task_"); ok {
		if id, err := strconv.Atoi(raw); err == nil {
			return Link{Kind: LinkTask, ID: id}
		}
	}
	return Link{Kind: LinkMainMenu}
}
