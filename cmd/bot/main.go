package main

import (
	"context"
	"log"

	"exambot/core/bootstrap"
	"exambot/core/cmd"
	coreconfig "exambot/core/config"
	"exambot/internal/bot"
	"exambot/internal/content"
	"exambot/internal/quiz"
	"exambot/internal/results"
)

type appConfig struct {
	core *coreconfig.Config
}

func (c *appConfig) CoreConfig() *coreconfig.Config { return c.core }

func main() {
	err := cmd.Run(cmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (cmd.ConfigCarrier, error) {
			cfg, err := coreconfig.Load(path)
			if err != nil {
				return nil, err
			}
			return &appConfig{core: cfg}, nil
		},
		Bootstrap: func(carrier cmd.ConfigCarrier) (cmd.TelegramApp, error) {
			cfg := carrier.CoreConfig()

			infra, err := bootstrap.Run(bootstrap.Options{Config: cfg})
			if err != nil {
				return nil, err
			}

			store := content.NewStore(content.Options{
				Dir:           cfg.Content.Dir,
				QuestionsFile: cfg.Content.QuestionsFile,
				TasksFile:     cfg.Content.TasksFile,
			})
			if err := store.Load(context.Background()); err != nil {
				return nil, err
			}

			var resStore results.Store
			if infra.DB != nil {
				resStore = results.NewPostgresStore(infra.DB)
			} else {
				resStore = results.NewMemoryStore()
			}

			return bot.New(cfg, store, quiz.NewManager(cfg.Quiz.Size), resStore), nil
		},
	})
	if err != nil {
		log.Fatalf("bot: %v", err)
	}
}
