package bot

import (
	coreconfig "exambot/core/config"
	tg "exambot/core/telegram"
	"exambot/core/telegram/commands"
	"exambot/core/telegram/helpers"
	"exambot/core/telegram/router"
	"exambot/core/telegram/sender"
	"exambot/internal/content"
	"exambot/internal/quiz"
	"exambot/internal/results"

	tele "gopkg.in/telebot.v4"
)

// App wires the content store, quiz manager and results store into a
// runnable Telegram bot.
type App struct {
	cfg     *coreconfig.Config
	store   *content.Store
	quizzes *quiz.Manager
	results results.Store
}

// New assembles the bot application.
func New(cfg *coreconfig.Config, store *content.Store, quizzes *quiz.Manager, res results.Store) *App {
	return &App{
		cfg:     cfg,
		store:   store,
		quizzes: quizzes,
		results: res,
	}
}

func (a *App) buildRegistry() *tg.Registry {
	reg := tg.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Open the main menu",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handleHelp,
		Description: "How to use the bot",
	})
	reg.RegisterCommand("/top", commands.Command{
		Handler:     a.handleTop,
		Description: "Best quiz results",
	})
	reg.RegisterCommand("/reload", commands.Command{
		Handler:     a.handleReload,
		Description: "Reload content files from disk",
		AdminOnly:   true,
		Hidden:      true,
	})

	reg.SetTextFallback(a.handleText)

	cbs := map[string]tele.HandlerFunc{
		cbSectionManagement: a.cbManagementMenu,
		cbSectionStaff:      a.cbStaffSection,
		cbQuestionsMenu:     a.cbQuestionsMenu,
		cbTasksMenu:         a.cbTasksMenu,
		cbBackManagement:    a.cbManagementMenu,

		cbQuestionsList:  a.cbQuestionsList,
		cbQuestionOpen:   a.cbQuestionOpen,
		cbQuestionAnswer: a.cbQuestionAnswer,
		cbQuestionNext:   a.cbQuestionNext,

		cbTasksList:  a.cbTasksList,
		cbTaskOpen:   a.cbTaskOpen,
		cbTaskAnswer: a.cbTaskAnswer,
		cbTaskNext:   a.cbTaskNext,

		cbQuizStart:  a.cbQuizStart,
		cbQuizShow:   a.cbQuizShow,
		cbQuizRight:  a.cbQuizRight,
		cbQuizWrong:  a.cbQuizWrong,
		cbQuizCancel: a.cbQuizCancel,
	}
	for key, h := range cbs {
		_ = reg.RegisterCallback(key, h)
	}
	return reg
}

// TelegramRunOptions builds the runtime configuration consumed by the core
// Telegram runner.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg := a.buildRegistry()

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
		OnAdminReject: func(c tele.Context) error {
			return helpers.SendText(c, textAdminOnly)
		},
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{})...)

	return tg.RunOptions{
		Config:   a.cfg,
		Registry: reg,
		// A single worker keeps multi-part sends (chunked texts, images,
		// trailing keyboards) in order.
		DispatcherOptions: sender.Options{Workers: 1},
		Middlewares:       tg.DefaultMiddlewares(a.cfg, nil),
		Routes:            routes,
	}, nil
}
