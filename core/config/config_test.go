package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
		Content:  ContentConfig{Dir: "./data"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, expected %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
	if cfg.Content.QuestionsFile != defaultQuestionsFile {
		t.Fatalf("questions_file = %q", cfg.Content.QuestionsFile)
	}
	if cfg.Content.TasksFile != defaultTasksFile {
		t.Fatalf("tasks_file = %q", cfg.Content.TasksFile)
	}
	if cfg.Content.MaxMessageLen != defaultMaxMessageLen {
		t.Fatalf("max_message_len = %d", cfg.Content.MaxMessageLen)
	}
	if cfg.Quiz.Size != defaultQuizSize {
		t.Fatalf("quiz.size = %d", cfg.Quiz.Size)
	}
}

func TestNormalizeMissingToken(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.Token = ""
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestNormalizeMissingContentDir(t *testing.T) {
	cfg := validConfig()
	cfg.Content.Dir = "  "
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for empty content.dir")
	}
}

func TestNormalizeRunModeAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "Polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q", cfg.Telegram.RunMode)
	}
}

func TestNormalizeInvalidRunMode(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "carrier-pigeon"
	err := Normalize(cfg)
	if err == nil {
		t.Fatal("expected error for invalid run_mode")
	}
	if !strings.Contains(err.Error(), "run_mode") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalizeWebhookRequirements(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook mode without url")
	}

	cfg = validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	cfg.Webhook = WebhookConfig{URL: "https://bot.example.com/hook", Listen: "0.0.0.0", Port: 8443}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize webhook: %v", err)
	}
}

func TestNormalizeExcludeUpdates(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{" Callback ", "message"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != UpdateCallback {
		t.Fatalf("exclude[0] = %q", cfg.RateLimit.ExcludeUpdates[0])
	}

	cfg = validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"inline_query"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unsupported update type")
	}
}

func TestDatabaseEnabled(t *testing.T) {
	var db DatabaseConfig
	if db.Enabled() {
		t.Fatal("empty host should disable database")
	}
	db.Host = " "
	if db.Enabled() {
		t.Fatal("blank host should disable database")
	}
	db.Host = "localhost"
	if !db.Enabled() {
		t.Fatal("host set should enable database")
	}
}
