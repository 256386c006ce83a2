package bot

import (
	"fmt"
	"strconv"

	"exambot/core/telegram/keyboard"
	"exambot/internal/content"

	tele "gopkg.in/telebot.v4"
)

// Callback uniques. Record ids travel in the payload part of the callback
// data, never in the unique itself.
const (
	cbSectionManagement = "section_mgmt"
	cbSectionStaff      = "section_staff"
	cbQuestionsMenu     = "mgmt_questions"
	cbTasksMenu         = "mgmt_tasks"
	cbBackManagement    = "back_mgmt"

	cbQuestionsList  = "questions_list"
	cbQuestionOpen   = "q_open"
	cbQuestionAnswer = "q_answer"
	cbQuestionNext   = "q_next"

	cbTasksList  = "tasks_list"
	cbTaskOpen   = "task_open"
	cbTaskAnswer = "task_answer"
	cbTaskNext   = "task_next"

	cbQuizStart  = "quiz_start"
	cbQuizShow   = "quiz_show"
	cbQuizRight  = "quiz_right"
	cbQuizWrong  = "quiz_wrong"
	cbQuizCancel = "quiz_cancel"
)

const listButtonsPerRow = 2

func menuReplyKeyboard() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{textMenuButton})
}

func mainMenuKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🧠 Management", Unique: cbSectionManagement},
		{Text: "📁 Staff management", Unique: cbSectionStaff},
	})
}

func managementKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "❓ Questions (theory)", Unique: cbQuestionsMenu},
		{Text: "📊 Tasks (practice)", Unique: cbTasksMenu},
	})
}

func questionsMenuKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "📋 Question list", Unique: cbQuestionsList},
		{Text: "🧪 Knowledge check (5 questions)", Unique: cbQuizStart},
		{Text: "⬅️ Back", Unique: cbBackManagement},
	})
}

func tasksMenuKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "📋 Task list", Unique: cbTasksList},
		{Text: "⬅️ Back", Unique: cbBackManagement},
	})
}

// listKeyboard lays out one button per record, two per row, with a back row.
func listKeyboard(records []content.Record, label, openUnique, backUnique string) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(records))
	for _, r := range records {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   fmt.Sprintf("%s %d", label, r.ID),
			Unique: openUnique,
			Data:   strconv.Itoa(r.ID),
		})
	}

	markup := keyboard.InlineButtonsNPerRow(buttons, listButtonsPerRow)
	back := keyboard.InlineButtonsRows([]keyboard.InlineBtn{{Text: "⬅️ Back", Unique: backUnique}})
	markup.InlineKeyboard = append(markup.InlineKeyboard, back.InlineKeyboard...)
	return markup
}

func questionsListKeyboard(records []content.Record) *tele.ReplyMarkup {
	return listKeyboard(records, "Question", cbQuestionOpen, cbQuestionsMenu)
}

func tasksListKeyboard(records []content.Record) *tele.ReplyMarkup {
	return listKeyboard(records, "Task", cbTaskOpen, cbTasksMenu)
}

// recordActionsKeyboard builds the per-record action keyboard. The
// show-answer button disappears once the answer has been shown.
func recordActionsKeyboard(id int, showAnswer bool, answerUnique, nextUnique, listUnique, answerLabel, nextLabel, listLabel string) *tele.ReplyMarkup {
	payload := strconv.Itoa(id)
	var rows [][]keyboard.InlineBtn
	if showAnswer {
		rows = append(rows, []keyboard.InlineBtn{{Text: answerLabel, Unique: answerUnique, Data: payload}})
	}
	rows = append(rows,
		[]keyboard.InlineBtn{{Text: nextLabel, Unique: nextUnique, Data: payload}},
		[]keyboard.InlineBtn{{Text: listLabel, Unique: listUnique}},
	)
	return keyboard.InlineButtonsRows(rows...)
}

func questionActionsKeyboard(id int, showAnswer bool) *tele.ReplyMarkup {
	return recordActionsKeyboard(id, showAnswer,
		cbQuestionAnswer, cbQuestionNext, cbQuestionsList,
		"✅ Show answer", "➡️ Next question", "⬅️ To question list")
}

func taskActionsKeyboard(id int, showAnswer bool) *tele.ReplyMarkup {
	return recordActionsKeyboard(id, showAnswer,
		cbTaskAnswer, cbTaskNext, cbTasksList,
		"✅ Show solution", "➡️ Next task", "⬅️ To task list")
}

func quizQuestionKeyboard(id int) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "✅ Show answer", Unique: cbQuizShow, Data: strconv.Itoa(id)}},
		[]keyboard.InlineBtn{{Text: "❌ Finish quiz", Unique: cbQuizCancel}},
	)
}

func quizGradeKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: "✅ I was right", Unique: cbQuizRight},
			{Text: "❌ I was wrong", Unique: cbQuizWrong},
		},
		[]keyboard.InlineBtn{{Text: "❌ Finish quiz", Unique: cbQuizCancel}},
	)
}
