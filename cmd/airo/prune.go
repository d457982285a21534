package main

import (
	"github.com/spf13/cobra"

	"github.com/youngmea/airo/internal/bot/tasks"
	"github.com/youngmea/airo/internal/config"
	"github.com/youngmea/airo/internal/database"
)

func newPruneCmd() *cobra.Command {
	var maxAge string

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete exchanges older than the retention age and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd, config.SkipValidation())
			if err != nil {
				return err
			}
			if maxAge != "" {
				d, err := parseAge(maxAge)
				if err != nil {
					return err
				}
				cfg.Retention.MaxAge = d
			}

			db, err := database.NewDB(cfg.Database.Path)
			if err != nil {
				log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
				return err
			}
			defer database.CloseDB(db)

			deps := tasks.TaskDeps{Logger: log, Store: database.NewStore(db, log), Config: cfg}
			return tasks.NewRetentionSweepTask(deps)(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&maxAge, "max-age", "", "Override retention.max_age (e.g. 48h)")
	return cmd
}
