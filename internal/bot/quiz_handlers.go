package bot

import (
	"errors"
	"fmt"

	"exambot/core/logger"
	"exambot/core/telegram/helpers"
	"exambot/internal/content"
	"exambot/internal/quiz"
	"exambot/internal/results"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

func (a *App) questionExists(id int) bool {
	_, ok := a.store.Question(id)
	return ok
}

func (a *App) cbQuizStart(c tele.Context) error {
	qs := a.store.Questions()
	ids := make([]int, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}

	if _, err := a.quizzes.Start(c.Sender().ID, ids); err != nil {
		if errors.Is(err, quiz.ErrEmptyPool) {
			return helpers.SendText(c, textQuizNoPool)
		}
		return err
	}

	if err := helpers.SendText(c, textQuizIntro); err != nil {
		return err
	}
	return a.sendQuizQuestion(c)
}

// sendQuizQuestion presents the question at the session cursor.
func (a *App) sendQuizQuestion(c tele.Context) error {
	userID := c.Sender().ID
	id, prog, err := a.quizzes.Current(userID, a.questionExists)
	if err != nil {
		return helpers.SendText(c, textQuizNotFound)
	}
	rec, ok := a.store.Question(id)
	if !ok {
		return helpers.SendText(c, textQuizNotFound)
	}

	text, images := content.SplitMedia(rec.Prompt)
	header := fmt.Sprintf("🧪 Knowledge check\nQuestion %d of %d\n\nQuestion %d:",
		prog.Position, prog.Total, id)
	full := header
	if text != "" {
		full = header + "\n\n" + text
	}
	if err := a.sendChunked(c, full); err != nil {
		return err
	}
	a.sendImages(c, images)
	return helpers.SendKeyboard(c, textQuizPrompt, quizQuestionKeyboard(id))
}

// cbQuizShow reveals the answer of the current quiz question and asks the
// user to grade themselves.
func (a *App) cbQuizShow(c tele.Context) error {
	userID := c.Sender().ID
	id, prog, err := a.quizzes.Current(userID, a.questionExists)
	if err != nil {
		return helpers.SendText(c, textQuizNotFound)
	}
	rec, ok := a.store.Question(id)
	if !ok {
		return helpers.SendText(c, textQuizNotFound)
	}

	text, images := content.SplitMedia(rec.Answer)
	header := fmt.Sprintf("Answer to quiz question %d of %d (question %d):",
		prog.Position, prog.Total, id)
	full := header
	if text != "" {
		full = header + "\n\n" + text
	}
	if err := a.sendChunked(c, full); err != nil {
		return err
	}
	a.sendImages(c, images)
	return helpers.SendKeyboard(c, textQuizGrade, quizGradeKeyboard())
}

func (a *App) cbQuizRight(c tele.Context) error {
	return a.registerQuizAnswer(c, true)
}

func (a *App) cbQuizWrong(c tele.Context) error {
	return a.registerQuizAnswer(c, false)
}

func (a *App) registerQuizAnswer(c tele.Context, correct bool) error {
	summary, err := a.quizzes.Answer(c.Sender().ID, correct)
	if err != nil {
		return helpers.SendText(c, textQuizNotFound)
	}
	if summary != nil {
		return a.finishQuiz(c, summary)
	}
	return a.sendQuizQuestion(c)
}

func (a *App) finishQuiz(c tele.Context, s *quiz.Summary) error {
	ctx := helpers.BuildContext(c)
	if user := c.Sender(); user != nil && a.results != nil {
		r := results.Result{
			UserID:   user.ID,
			Username: displayName(user),
			Total:    s.Total,
			Correct:  s.Correct,
			Wrong:    s.Wrong,
		}
		if err := a.results.Record(ctx, r); err != nil {
			logger.Results.LogAttrs(ctx, slog.LevelError, "results.record",
				slog.String("status", "fail"),
				slog.Int64("user_id", user.ID),
				slog.String("err", err.Error()),
			)
		}
	}
	return helpers.SendText(c, fmt.Sprintf(
		"Quiz finished ✅\nCorrect answers: %d\nWrong: %d", s.Correct, s.Wrong))
}

func (a *App) cbQuizCancel(c tele.Context) error {
	a.quizzes.Cancel(c.Sender().ID)
	return helpers.SendText(c, textQuizCancelled)
}

func displayName(u *tele.User) string {
	if u.Username != "" {
		return "@" + u.Username
	}
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	if name != "" {
		return name
	}
	return fmt.Sprintf("user %d", u.ID)
}
