package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/youngmea/airo/internal/config"
	"github.com/youngmea/airo/internal/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "airo",
		Short:         "AIRO, a multilingual Telegram companion bot",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", config.DefaultConfigPath, "Path to configuration file (optional)")
	cmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "Path to .env file (optional, empty to skip)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newPruneCmd())

	return cmd
}

// loadConfig reads the configuration named by the persistent flags and sets up
// the default logger from it. Failures are logged before being returned.
func loadConfig(cmd *cobra.Command, opts ...config.Option) (*config.Config, *slog.Logger, error) {
	configPath, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	opts = append([]config.Option{config.WithEnvFile(envFile)}, opts...)
	cfg, err := config.Load(configPath, opts...)
	if err != nil {
		slog.Error("Failed to load configuration", "path", configPath, "error", err)
		return nil, nil, err
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	log.Info("Configuration loaded", cfg.Summary()...)
	return cfg, log, nil
}
