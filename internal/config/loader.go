package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type loadOptions struct {
	envFile        string
	skipValidation bool
}

// Option customises Load.
type Option func(*loadOptions)

// WithEnvFile loads variables from path instead of ./.env. An empty path skips
// dotenv loading entirely.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) { o.envFile = path }
}

// SkipValidation returns the merged configuration without checking it. Offline
// commands use it because they need neither the bot token nor the API key.
func SkipValidation() Option {
	return func(o *loadOptions) { o.skipValidation = true }
}

// Load builds the configuration in this order of precedence, highest first:
//  1. AIRO_* environment variables (AIRO_LLM_API_KEY, AIRO_TELEGRAM_TOKEN, ...)
//  2. variables from the .env file, which never override the real environment
//  3. the YAML file at configPath
//  4. built-in defaults
//
// A missing YAML or .env file is not an error. Every returned error wraps
// ErrConfiguration.
func Load(configPath string, opts ...Option) (*Config, error) {
	o := loadOptions{envFile: DefaultEnvFile}
	for _, opt := range opts {
		opt(&o)
	}

	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: failed to load env file %s: %w", ErrConfiguration, o.envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: failed to read config file %s: %w", ErrConfiguration, configPath, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %w", ErrConfiguration, err)
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultModels[cfg.LLM.Provider]
	}

	if o.skipValidation {
		return cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return cfg, nil
}

// Validate checks the struct tags of cfg.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

// Summary returns the non-secret settings as slog key/value pairs.
func (c *Config) Summary() []any {
	return []any{
		"log_level", c.Log.Level,
		"llm_provider", c.LLM.Provider,
		"llm_model", c.LLM.Model,
		"llm_timeout", c.LLM.Timeout,
		"db_path", c.Database.Path,
		"history_max_age", c.History.MaxAge,
		"history_max_rows", c.History.MaxRows,
		"retention_max_age", c.Retention.MaxAge,
	}
}
