package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/youngmea/airo/internal/classify"
)

// Store defines the conversation ledger operations.
// Every method is a single statement, so each append or upsert is atomic on its own
// and no transaction spans a whole exchange.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// AppendExchange inserts one exchange and stamps it with the server time.
	AppendExchange(ctx context.Context, exchange *Exchange) error

	// RecentHistory returns the user's exchanges not older than maxAge, newest
	// first, at most maxRows of them.
	RecentHistory(ctx context.Context, userID int64, maxAge time.Duration, maxRows int) ([]Exchange, error)

	// GetProfileLanguage returns the last language stored for the user, or the
	// default language when there is no profile yet.
	GetProfileLanguage(ctx context.Context, userID int64) (classify.Language, error)

	// UpsertProfile records lang as the user's current language.
	UpsertProfile(ctx context.Context, userID int64, lang classify.Language) error

	// PruneOlderThan irreversibly deletes exchanges older than maxAge and reports
	// how many rows were removed.
	PruneOlderThan(ctx context.Context, maxAge time.Duration) (int64, error)

	// AllExchanges returns the whole log in insertion order (used by export).
	AllExchanges(ctx context.Context) ([]Exchange, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
	now    func() time.Time
}

// StoreOption configures the store returned by NewStore.
type StoreOption func(*sqlxStore)

// WithClock overrides the clock used for server-assigned timestamps and age cutoffs.
func WithClock(now func() time.Time) StoreOption {
	return func(s *sqlxStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates a new Store implementation backed by sqlx.
func NewStore(db *sqlx.DB, logger *slog.Logger, opts ...StoreOption) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func isContextErr(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// AppendExchange inserts a new exchange row.
func (s *sqlxStore) AppendExchange(ctx context.Context, exchange *Exchange) error {
	if exchange == nil {
		return fmt.Errorf("cannot save nil exchange")
	}
	if exchange.UserID == 0 {
		return fmt.Errorf("exchange must have a non-zero user_id")
	}
	if !exchange.Language.Valid() {
		return fmt.Errorf("exchange has unknown language %q", exchange.Language)
	}
	if !exchange.Emotion.Valid() {
		return fmt.Errorf("exchange has unknown emotion %q", exchange.Emotion)
	}

	exchange.CreatedAt = NewUnixTime(s.now())

	query := `
        INSERT INTO exchanges (user_id, message, response, language, emotion, created_at)
        VALUES (:user_id, :message, :response, :language, :emotion, :created_at);
    `

	result, err := s.db.NamedExecContext(ctx, query, exchange)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving exchange", "user_id", exchange.UserID, "error", err)
		return fmt.Errorf("failed to save exchange for user %d: %w", exchange.UserID, err)
	}

	if id, err := result.LastInsertId(); err == nil {
		exchange.ID = id
	} else {
		s.logger.WarnContext(ctx, "Could not retrieve last insert ID after saving exchange",
			"user_id", exchange.UserID, "error", err)
	}

	s.logger.DebugContext(ctx, "Exchange saved successfully",
		"user_id", exchange.UserID, "exchange_id", exchange.ID, "language", exchange.Language, "emotion", exchange.Emotion)
	return nil
}

// RecentHistory retrieves the user's recent exchanges, newest first.
func (s *sqlxStore) RecentHistory(ctx context.Context, userID int64, maxAge time.Duration, maxRows int) ([]Exchange, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user_id cannot be zero")
	}
	if maxRows <= 0 {
		return []Exchange{}, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cutoff := NewUnixTime(s.now().Add(-maxAge))
	query := `
        SELECT id, user_id, message, response, language, emotion, created_at
        FROM exchanges
        WHERE user_id = ? AND created_at >= ?
        ORDER BY created_at DESC, id DESC
        LIMIT ?;
    `

	exchanges := []Exchange{}
	err := s.db.SelectContext(ctx, &exchanges, query, userID, cutoff, maxRows)

	switch {
	case isContextErr(err):
		s.logger.WarnContext(ctx, "Context timeout or cancellation while fetching history",
			"user_id", userID, "error", err)
		return nil, err

	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting recent history", "user_id", userID, "max_rows", maxRows, "error", err)
		return nil, fmt.Errorf("failed to get recent history for user %d: %w", userID, err)
	}

	s.logger.DebugContext(ctx, "Fetched recent history", "user_id", userID, "count", len(exchanges))
	return exchanges, nil
}

// GetProfileLanguage retrieves the stored language of a user.
func (s *sqlxStore) GetProfileLanguage(ctx context.Context, userID int64) (classify.Language, error) {
	if userID == 0 {
		return classify.DefaultLanguage, fmt.Errorf("user_id cannot be zero")
	}

	var lang string
	err := s.db.GetContext(ctx, &lang, `SELECT language FROM user_profiles WHERE user_id = ?`, userID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.logger.DebugContext(ctx, "No user profile found", "user_id", userID)
		return classify.DefaultLanguage, nil

	case isContextErr(err):
		s.logger.WarnContext(ctx, "Context timeout or cancellation while fetching user profile",
			"user_id", userID, "error", err)
		return classify.DefaultLanguage, err

	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting user profile", "user_id", userID, "error", err)
		return classify.DefaultLanguage, fmt.Errorf("failed to get user profile for user ID %d: %w", userID, err)
	}

	return classify.ParseLanguage(lang), nil
}

// UpsertProfile inserts or overwrites the user's profile row.
func (s *sqlxStore) UpsertProfile(ctx context.Context, userID int64, lang classify.Language) error {
	if userID == 0 {
		return fmt.Errorf("user_id cannot be zero")
	}
	if !lang.Valid() {
		return fmt.Errorf("profile has unknown language %q", lang)
	}

	now := NewUnixTime(s.now())
	profile := UserProfile{UserID: userID, Language: lang, CreatedAt: now, UpdatedAt: now}

	query := `
        INSERT INTO user_profiles (user_id, language, created_at, updated_at)
        VALUES (:user_id, :language, :created_at, :updated_at)
        ON CONFLICT (user_id) DO UPDATE SET
            language = excluded.language,
            updated_at = excluded.updated_at;
    `

	if _, err := s.db.NamedExecContext(ctx, query, profile); err != nil {
		s.logger.ErrorContext(ctx, "Error saving user profile", "user_id", userID, "error", err)
		return fmt.Errorf("failed to save user profile for user ID %d: %w", userID, err)
	}

	s.logger.DebugContext(ctx, "User profile saved successfully", "user_id", userID, "language", lang)
	return nil
}

// PruneOlderThan deletes exchanges whose timestamp is before now-maxAge.
func (s *sqlxStore) PruneOlderThan(ctx context.Context, maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		return 0, fmt.Errorf("retention age must be positive, got %s", maxAge)
	}

	cutoff := NewUnixTime(s.now().Add(-maxAge))
	result, err := s.db.ExecContext(ctx, `DELETE FROM exchanges WHERE created_at < ?`, cutoff)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error pruning old exchanges", "cutoff", cutoff.Time, "error", err)
		return 0, fmt.Errorf("failed to prune exchanges older than %s: %w", maxAge, err)
	}

	count, _ := result.RowsAffected()
	s.logger.InfoContext(ctx, "Pruned old exchanges", "cutoff", cutoff.Time, "count", count)
	return count, nil
}

// AllExchanges reads the entire exchange log.
func (s *sqlxStore) AllExchanges(ctx context.Context) ([]Exchange, error) {
	exchanges := []Exchange{}
	query := `
        SELECT id, user_id, message, response, language, emotion, created_at
        FROM exchanges
        ORDER BY id ASC;
    `
	if err := s.db.SelectContext(ctx, &exchanges, query); err != nil {
		s.logger.ErrorContext(ctx, "Error reading exchange log", "error", err)
		return nil, fmt.Errorf("failed to read exchange log: %w", err)
	}
	return exchanges, nil
}

// RunSQLMaintenance executes a VACUUM command on the SQLite database.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	// VACUUM must run outside a transaction in SQLite
	_, err := s.db.ExecContext(ctx, "VACUUM;")

	switch {
	case isContextErr(err):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)

	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed successfully")
	return nil
}
