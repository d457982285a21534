// Package config loads AIRO's runtime configuration from defaults, an optional
// YAML file, an optional .env file and AIRO_* environment variables.
package config

import (
	"errors"
	"time"
)

// ErrConfiguration wraps every error Load returns.
var ErrConfiguration = errors.New("configuration error")

// Config holds all application settings.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Database  DatabaseConfig  `mapstructure:"database"`
	History   HistoryConfig   `mapstructure:"history"`
	Retention RetentionConfig `mapstructure:"retention"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the gateway settings.
type TelegramConfig struct {
	Token              string        `mapstructure:"token"                validate:"required"`
	DropPendingUpdates bool          `mapstructure:"drop_pending_updates"`
	TypingInterval     time.Duration `mapstructure:"typing_interval"      validate:"min=1s,max=1m"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"      validate:"min=1s,max=5m"`
}

// LLMConfig selects and configures the generation backend.
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"    validate:"required,oneof=gemini openai"`
	APIKey      string        `mapstructure:"api_key"     validate:"required"`
	Model       string        `mapstructure:"model"       validate:"required"`
	BaseURL     string        `mapstructure:"base_url"    validate:"omitempty,url"`
	Temperature float32       `mapstructure:"temperature" validate:"min=0,max=2"`
	Timeout     time.Duration `mapstructure:"timeout"     validate:"min=1s,max=2m"`

	// BreakerFailures consecutive failures stop generation calls for BreakerCooldown.
	BreakerFailures int           `mapstructure:"breaker_failures" validate:"min=1,max=100"`
	BreakerCooldown time.Duration `mapstructure:"breaker_cooldown" validate:"min=1s,max=10m"`
}

// DatabaseConfig points at the SQLite file.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// HistoryConfig bounds the context window fed to the prompt and shown by /history.
type HistoryConfig struct {
	MaxAge  time.Duration `mapstructure:"max_age"  validate:"min=1m"`
	MaxRows int           `mapstructure:"max_rows" validate:"min=1,max=100"`
}

// RetentionConfig sets how long exchanges are kept.
type RetentionConfig struct {
	MaxAge time.Duration `mapstructure:"max_age" validate:"min=1h"`
}

// SchedulerConfig maps task names to their schedule.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig describes one scheduled task. Schedule is a cron expression with an
// optional leading seconds field.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}
