package database

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/youngmea/airo/internal/classify"
)

// UnixTime stores a time as whole unix seconds in an INTEGER column, which keeps
// range comparisons in SQLite exact and driver independent.
type UnixTime struct {
	time.Time
}

// NewUnixTime truncates t to the second and converts it to UTC.
func NewUnixTime(t time.Time) UnixTime {
	return UnixTime{Time: time.Unix(t.Unix(), 0).UTC()}
}

// Scan implements sql.Scanner.
func (u *UnixTime) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		u.Time = time.Unix(v, 0).UTC()
	case nil:
		u.Time = time.Time{}
	default:
		return fmt.Errorf("cannot scan %T into UnixTime", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (u UnixTime) Value() (driver.Value, error) {
	return u.Unix(), nil
}

// Exchange is one user message paired with the bot's reply. Exchanges are
// append-only: they are written once and only ever removed by the retention sweep.
type Exchange struct {
	ID        int64             `db:"id"`
	UserID    int64             `db:"user_id"`
	Message   string            `db:"message"`
	Response  string            `db:"response"`
	Language  classify.Language `db:"language"`
	Emotion   classify.Emotion  `db:"emotion"`
	CreatedAt UnixTime          `db:"created_at"`
}

// UserProfile keeps the last language detected for a user. It is overwritten on
// every inbound message and never deleted.
type UserProfile struct {
	UserID    int64             `db:"user_id"`
	Language  classify.Language `db:"language"`
	CreatedAt UnixTime          `db:"created_at"`
	UpdatedAt UnixTime          `db:"updated_at"`
}
