package bot

import (
	"fmt"
	"strings"

	"exambot/core/logger"
	"exambot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// handleStart serves /start and its deep links. The reply keyboard with the
// Menu button is installed first so it is present regardless of destination.
func (a *App) handleStart(c tele.Context) error {
	if err := helpers.SendKeyboard(c, textMenuHint, menuReplyKeyboard()); err != nil {
		return err
	}

	payload := ""
	if m := c.Message(); m != nil {
		payload = m.Payload
	}

	link := ParseStartPayload(payload)
	switch link.Kind {
	case LinkQuestionsMenu:
		return helpers.SendKeyboard(c, textQuestionsMenu, questionsMenuKeyboard())
	case LinkTasksMenu:
		return helpers.SendKeyboard(c, textTasksMenu, tasksMenuKeyboard())
	case LinkQuestion:
		if rec, ok := a.store.Question(link.ID); ok {
			return a.sendQuestion(c, rec)
		}
	case LinkTask:
		if rec, ok := a.store.Task(link.ID); ok {
			return a.sendTask(c, rec)
		}
	}
	return helpers.SendKeyboard(c, textMainMenu, mainMenuKeyboard())
}

func (a *App) handleHelp(c tele.Context) error {
	return helpers.SendText(c, textHelp)
}

// handleText serves plain messages: the Menu reply button opens the main
// menu, everything else gets a short hint.
func (a *App) handleText(c tele.Context) error {
	if strings.EqualFold(strings.TrimSpace(c.Text()), textMenuButton) {
		return helpers.SendKeyboard(c, textMainMenu, mainMenuKeyboard())
	}
	return helpers.SendText(c, textUnknownText)
}

func (a *App) handleTop(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	top, err := a.results.Top(ctx, 10)
	if err != nil {
		logger.Results.LogAttrs(ctx, slog.LevelError, "results.top",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return helpers.SendText(c, textTopEmpty)
	}
	if len(top) == 0 {
		return helpers.SendText(c, textTopEmpty)
	}

	var b strings.Builder
	b.WriteString(textTopHeader)
	for i, r := range top {
		fmt.Fprintf(&b, "\n%d. %s — %d/%d (%d%%)", i+1, r.Username, r.Correct, r.Total, r.Percentage())
	}
	return helpers.SendText(c, b.String())
}

// handleReload re-runs the content load. Registered admin-only and hidden.
func (a *App) handleReload(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	if err := a.store.Load(ctx); err != nil {
		logger.Content.LogAttrs(ctx, slog.LevelError, "content.reload",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return helpers.SendText(c, "Reload failed, see logs.")
	}
	return helpers.SendText(c, fmt.Sprintf("Content reloaded: %d questions, %d tasks.",
		len(a.store.Questions()), len(a.store.Tasks())))
}
