package config

import "time"

// Defaults applied when neither the config file nor the environment sets a key.
const (
	DefaultLogLevel = "info"

	DefaultTypingInterval = 4 * time.Second
	DefaultRequestTimeout = 30 * time.Second

	DefaultLLMProvider    = "gemini"
	DefaultGeminiModel    = "gemini-1.5-flash"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultLLMTemperature = 0.9
	DefaultLLMTimeout     = 20 * time.Second

	DefaultBreakerFailures = 5
	DefaultBreakerCooldown = 30 * time.Second

	DefaultDBPath = "airo.db"

	DefaultHistoryMaxAge  = 10 * time.Minute
	DefaultHistoryMaxRows = 10

	DefaultRetentionMaxAge = 48 * time.Hour

	DefaultConfigPath = "./config.yaml"
	DefaultEnvFile    = ".env"
)

// defaultModels picks llm.model when it is left empty, per provider.
var defaultModels = map[string]string{
	"gemini": DefaultGeminiModel,
	"openai": DefaultOpenAIModel,
}

// Names of the scheduled tasks known to the task registry.
const (
	TaskRetentionSweep = "retention_sweep"
	TaskSQLMaintenance = "sql_maintenance"
)

const envPrefix = "AIRO"

// defaults lists every key Load knows about. Env vars only override keys viper
// has seen, so secrets have empty defaults too.
var defaults = map[string]any{
	"log.level": DefaultLogLevel,
	"log.json":  false,

	"telegram.token":                "",
	"telegram.drop_pending_updates": true,
	"telegram.typing_interval":      DefaultTypingInterval,
	"telegram.request_timeout":      DefaultRequestTimeout,

	"llm.provider":    DefaultLLMProvider,
	"llm.api_key":     "",
	"llm.model":       "",
	"llm.base_url":    "",
	"llm.temperature": DefaultLLMTemperature,
	"llm.timeout":     DefaultLLMTimeout,

	"llm.breaker_failures": DefaultBreakerFailures,
	"llm.breaker_cooldown": DefaultBreakerCooldown,

	"database.path": DefaultDBPath,

	"history.max_age":  DefaultHistoryMaxAge,
	"history.max_rows": DefaultHistoryMaxRows,

	"retention.max_age": DefaultRetentionMaxAge,

	"scheduler.tasks." + TaskRetentionSweep + ".enabled":  true,
	"scheduler.tasks." + TaskRetentionSweep + ".schedule": "0 0 * * * *",
	"scheduler.tasks." + TaskSQLMaintenance + ".enabled":  true,
	"scheduler.tasks." + TaskSQLMaintenance + ".schedule": "0 30 3 * * 0",
}
