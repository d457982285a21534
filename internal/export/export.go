// Package export dumps the conversation log to a flat JSON file.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/youngmea/airo/internal/database"
)

// TimestampLayout is the layout used for the timestamp field.
const TimestampLayout = "2006-01-02 15:04:05"

// Source is the part of the store the exporter reads.
type Source interface {
	AllExchanges(ctx context.Context) ([]database.Exchange, error)
}

// Record is one exported exchange.
type Record struct {
	UserID    int64  `json:"user_id"`
	Prompt    string `json:"prompt"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Language  string `json:"language"`
}

// Records converts exchanges into export records, keeping their order.
func Records(exchanges []database.Exchange) []Record {
	records := make([]Record, 0, len(exchanges))
	for _, ex := range exchanges {
		records = append(records, Record{
			UserID:    ex.UserID,
			Prompt:    ex.Message,
			Response:  ex.Response,
			Timestamp: ex.CreatedAt.UTC().Format(TimestampLayout),
			Language:  string(ex.Language),
		})
	}
	return records
}

// ExportJSON writes every exchange in src to outPath as a JSON array and returns
// the number of records written. The file is written next to outPath under a
// temporary name and renamed into place, so outPath is either the complete
// export or untouched.
func ExportJSON(ctx context.Context, src Source, outPath string) (int, error) {
	exchanges, err := src.AllExchanges(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read exchanges: %w", err)
	}
	records := Records(exchanges)

	tmp, err := os.CreateTemp(filepath.Dir(outPath), "."+filepath.Base(outPath)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary export file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err = enc.Encode(records); err != nil {
		return 0, fmt.Errorf("failed to encode export: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return 0, fmt.Errorf("failed to flush export: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close export: %w", err)
	}
	if err = os.Rename(tmpName, outPath); err != nil {
		return 0, fmt.Errorf("failed to move export into place: %w", err)
	}

	return len(records), nil
}
