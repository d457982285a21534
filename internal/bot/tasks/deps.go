// Package tasks implements the scheduled maintenance jobs for AIRO: the
// conversation retention sweep and SQLite housekeeping.
package tasks

import (
	"log/slog"

	"github.com/youngmea/airo/internal/config"
	"github.com/youngmea/airo/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
}
