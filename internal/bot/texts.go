package bot

const (
	textMenuButton = "Menu"

	textMenuHint = "Menu button is below 👇"
	textMainMenu = "Hi! Pick a section:"

	textManagementMenu = "Management section. Pick a direction:"
	textStaffEmpty     = "The staff management section is empty for now 🙂"

	textQuestionsMenu = "Theory questions. What do you need?"
	textTasksMenu     = "Practice tasks. What do you need?"

	textQuestionsList  = "Questions:"
	textTasksList      = "Tasks:"
	textNoQuestions    = "There are no questions yet."
	textNoTasks        = "There are no tasks yet."
	textChooseAction   = "Choose an action:"
	textImageMissing   = "An attached image could not be found."
	textUnknownText    = "Use the Menu button below or /start."
	textUnknownAction  = "Unsupported action"
	textAdminOnly      = "This command is available to the administrator only."
	textRecordNotFound = "Record not found"

	textQuizIntro = "Starting a knowledge check 🧪\n" +
		"You will be shown up to 5 questions.\n" +
		"Answer on your own, then press \"Show answer\" and grade yourself."
	textQuizPrompt    = "When you are ready, press \"Show answer\"."
	textQuizGrade     = "Grade your answer:"
	textQuizNotFound  = "No quiz in progress. Start a new one."
	textQuizCancelled = "Quiz cancelled."
	textQuizNoPool    = "No questions available for a quiz yet."

	textTopEmpty  = "No quiz results yet. Be the first: run a knowledge check!"
	textTopHeader = "🏆 Best quiz results:"

	textHelp = "This bot serves exam preparation content.\n\n" +
		"/start — open the main menu\n" +
		"/top — best quiz results\n" +
		"/help — this message\n\n" +
		"Browse theory questions and practice tasks via the menu, " +
		"or run a 5-question knowledge check and grade yourself."
)
