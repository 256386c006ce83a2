package bot

import (
	"fmt"
	"os"

	"exambot/core/logger"
	"exambot/core/telegram/callbacks"
	"exambot/core/telegram/helpers"
	"exambot/internal/content"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// sendChunked delivers text in segments under the configured message limit.
func (a *App) sendChunked(c tele.Context, text string) error {
	for _, seg := range content.Chunks(text, a.cfg.Content.MaxMessageLen) {
		if err := helpers.SendText(c, seg); err != nil {
			return err
		}
	}
	return nil
}

// sendImages resolves image paths against the content root and sends each
// photo that exists on disk. A missing file produces a notice, not an error.
func (a *App) sendImages(c tele.Context, images []string) {
	for _, rel := range images {
		path := a.store.AssetPath(rel)
		if _, err := os.Stat(path); err != nil {
			logger.Content.Warn("image missing",
				slog.String("event", "image_missing"),
				slog.String("path", path),
			)
			_ = helpers.SendText(c, textImageMissing)
			continue
		}
		_ = helpers.SendPhotoFile(c, path)
	}
}

// sendRecordBody sends header + body (stripped of image markers), then the
// extracted images, then the action keyboard.
func (a *App) sendRecordBody(c tele.Context, header, raw string, markup *tele.ReplyMarkup) error {
	text, images := content.SplitMedia(raw)
	full := header
	if text != "" {
		full = header + "\n\n" + text
	}
	if err := a.sendChunked(c, full); err != nil {
		return err
	}
	a.sendImages(c, images)
	return helpers.SendKeyboard(c, textChooseAction, markup)
}

func (a *App) sendQuestion(c tele.Context, rec content.Record) error {
	return a.sendRecordBody(c, fmt.Sprintf("Question %d:", rec.ID), rec.Prompt,
		questionActionsKeyboard(rec.ID, true))
}

func (a *App) sendQuestionAnswer(c tele.Context, rec content.Record) error {
	return a.sendRecordBody(c, fmt.Sprintf("Answer to question %d:", rec.ID), rec.Answer,
		questionActionsKeyboard(rec.ID, false))
}

func (a *App) sendTask(c tele.Context, rec content.Record) error {
	return a.sendRecordBody(c, fmt.Sprintf("Task %d:", rec.ID), rec.Prompt,
		taskActionsKeyboard(rec.ID, true))
}

func (a *App) sendTaskAnswer(c tele.Context, rec content.Record) error {
	return a.sendRecordBody(c, fmt.Sprintf("Solution to task %d:", rec.ID), rec.Answer,
		taskActionsKeyboard(rec.ID, false))
}

// Menu navigation edits the current message in place.

func (a *App) cbManagementMenu(c tele.Context) error {
	return helpers.EditOrSend(c, textManagementMenu, managementKeyboard())
}

func (a *App) cbStaffSection(c tele.Context) error {
	return helpers.EditOrSend(c, textStaffEmpty, mainMenuKeyboard())
}

func (a *App) cbQuestionsMenu(c tele.Context) error {
	return helpers.EditOrSend(c, textQuestionsMenu, questionsMenuKeyboard())
}

func (a *App) cbTasksMenu(c tele.Context) error {
	return helpers.EditOrSend(c, textTasksMenu, tasksMenuKeyboard())
}

func (a *App) cbQuestionsList(c tele.Context) error {
	qs := a.store.Questions()
	if len(qs) == 0 {
		return helpers.SendText(c, textNoQuestions)
	}
	return helpers.EditOrSend(c, textQuestionsList, questionsListKeyboard(qs))
}

func (a *App) cbTasksList(c tele.Context) error {
	ts := a.store.Tasks()
	if len(ts) == 0 {
		return helpers.SendText(c, textNoTasks)
	}
	return helpers.EditOrSend(c, textTasksList, tasksListKeyboard(ts))
}

func (a *App) cbQuestionOpen(c tele.Context) error {
	id, err := callbacks.PayloadInt(c)
	if err != nil {
		return helpers.SendText(c, textRecordNotFound)
	}
	rec, ok := a.store.Question(id)
	if !ok {
		return helpers.SendText(c, textRecordNotFound)
	}
	return a.sendQuestion(c, rec)
}

func (a *App) cbQuestionAnswer(c tele.Context) error {
	id, err := callbacks.PayloadInt(c)
	if err != nil {
		return helpers.SendText(c, textRecordNotFound)
	}
	rec, ok := a.store.Question(id)
	if !ok {
		return helpers.SendText(c, textRecordNotFound)
	}
	return a.sendQuestionAnswer(c, rec)
}

func (a *App) cbQuestionNext(c tele.Context) error {
	// A bad payload falls through to the first question.
	id, _ := callbacks.PayloadInt(c)
	rec, ok := a.store.NextQuestion(id)
	if !ok {
		return helpers.SendText(c, textNoQuestions)
	}
	return a.sendQuestion(c, rec)
}

func (a *App) cbTaskOpen(c tele.Context) error {
	id, err := callbacks.PayloadInt(c)
	if err != nil {
		return helpers.SendText(c, textRecordNotFound)
	}
	rec, ok := a.store.Task(id)
	if !ok {
		return helpers.SendText(c, textRecordNotFound)
	}
	return a.sendTask(c, rec)
}

func (a *App) cbTaskAnswer(c tele.Context) error {
	id, err := callbacks.PayloadInt(c)
	if err != nil {
		return helpers.SendText(c, textRecordNotFound)
	}
	rec, ok := a.store.Task(id)
	if !ok {
		return helpers.SendText(c, textRecordNotFound)
	}
	return a.sendTaskAnswer(c, rec)
}

func (a *App) cbTaskNext(c tele.Context) error {
	id, _ := callbacks.PayloadInt(c)
	rec, ok := a.store.NextTask(id)
	if !ok {
		return helpers.SendText(c, textNoTasks)
	}
	return a.sendTask(c, rec)
}
