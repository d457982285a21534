package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youngmea/airo/internal/config"
	"github.com/youngmea/airo/internal/database"
	"github.com/youngmea/airo/internal/export"
)

func newExportCmd() *cobra.Command {
	var outPath, dbPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored conversation log to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd, config.SkipValidation())
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = cfg.Database.Path
			}

			db, err := database.OpenReadOnly(dbPath)
			if err != nil {
				log.Error("Failed to open database", "path", dbPath, "error", err)
				return err
			}
			defer database.CloseDB(db)

			n, err := export.ExportJSON(cmd.Context(), database.NewStore(db, log), outPath)
			if err != nil {
				log.Error("Export failed", "path", outPath, "error", err)
				return fmt.Errorf("export failed: %w", err)
			}

			log.Info("Export completed", "path", outPath, "records", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "airo_dataset.json", "Output JSON file")
	cmd.Flags().StringVar(&dbPath, "db", "", "Database path (defaults to database.path from the config)")
	return cmd
}
