package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youngmea/airo/internal/classify"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newTestStore(t *testing.T) (Store, *fakeClock, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airo.db")
	db, err := NewDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { CloseDB(db) })

	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return NewStore(db, nil, WithClock(clock.Now)), clock, path
}

func appendAt(t *testing.T, s Store, clock *fakeClock, at time.Time, userID int64, msg string) *Exchange {
	t.Helper()
	clock.Set(at)
	ex := &Exchange{
		UserID:   userID,
		Message:  msg,
		Response: "re: " + msg,
		Language: classify.English,
		Emotion:  classify.Neutral,
	}
	require.NoError(t, s.AppendExchange(context.Background(), ex))
	return ex
}

func TestAppendExchangeRoundTrip(t *testing.T) {
	s, clock, _ := newTestStore(t)
	ctx := context.Background()

	ex := &Exchange{
		UserID:   42,
		Message:  "Salom, qalaysan?",
		Response: "Yaxshi, rahmat!",
		Language: classify.Uzbek,
		Emotion:  classify.Funny,
	}
	require.NoError(t, s.AppendExchange(ctx, ex))
	assert.NotZero(t, ex.ID)
	assert.True(t, ex.CreatedAt.Equal(clock.Now()))

	got, err := s.RecentHistory(ctx, 42, time.Hour, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ex.ID, got[0].ID)
	assert.Equal(t, "Salom, qalaysan?", got[0].Message)
	assert.Equal(t, "Yaxshi, rahmat!", got[0].Response)
	assert.Equal(t, classify.Uzbek, got[0].Language)
	assert.Equal(t, classify.Funny, got[0].Emotion)
	assert.Equal(t, clock.Now().Unix(), got[0].CreatedAt.Unix())
}

func TestAppendExchangeRejectsInvalid(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		ex   *Exchange
	}{
		{name: "nil", ex: nil},
		{name: "zero user", ex: &Exchange{Language: classify.English, Emotion: classify.Neutral}},
		{name: "bad language", ex: &Exchange{UserID: 1, Language: "de", Emotion: classify.Neutral}},
		{name: "bad emotion", ex: &Exchange{UserID: 1, Language: classify.English, Emotion: "angry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, s.AppendExchange(ctx, tt.ex))
		})
	}

	all, err := s.AllExchanges(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecentHistory(t *testing.T) {
	s, clock, _ := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	appendAt(t, s, clock, base.Add(-72*time.Hour), 7, "too old")
	appendAt(t, s, clock, base.Add(-3*time.Minute), 7, "first")
	appendAt(t, s, clock, base.Add(-2*time.Minute), 7, "second")
	appendAt(t, s, clock, base.Add(-2*time.Minute), 7, "same second")
	appendAt(t, s, clock, base.Add(-1*time.Minute), 8, "other user")
	appendAt(t, s, clock, base.Add(-1*time.Minute), 7, "third")
	clock.Set(base)

	t.Run("newest first within age", func(t *testing.T) {
		got, err := s.RecentHistory(ctx, 7, 24*time.Hour, 10)
		require.NoError(t, err)
		var msgs []string
		for _, ex := range got {
			msgs = append(msgs, ex.Message)
		}
		assert.Equal(t, []string{"third", "same second", "second", "first"}, msgs)
	})

	t.Run("row cap", func(t *testing.T) {
		got, err := s.RecentHistory(ctx, 7, 24*time.Hour, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "third", got[0].Message)
		assert.Equal(t, "same second", got[1].Message)
	})

	t.Run("non-positive cap", func(t *testing.T) {
		got, err := s.RecentHistory(ctx, 7, 24*time.Hour, 0)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		got, err := s.RecentHistory(ctx, 999, 24*time.Hour, 10)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("zero user", func(t *testing.T) {
		_, err := s.RecentHistory(ctx, 0, 24*time.Hour, 10)
		assert.Error(t, err)
	})
}

func TestProfileLanguage(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	lang, err := s.GetProfileLanguage(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, classify.Uzbek, lang, "missing profile falls back to default")

	require.NoError(t, s.UpsertProfile(ctx, 5, classify.Russian))
	lang, err = s.GetProfileLanguage(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, classify.Russian, lang)

	require.NoError(t, s.UpsertProfile(ctx, 5, classify.English))
	lang, err = s.GetProfileLanguage(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, classify.English, lang)

	assert.Error(t, s.UpsertProfile(ctx, 5, "fr"))
	assert.Error(t, s.UpsertProfile(ctx, 0, classify.English))
}

func TestPruneOlderThan(t *testing.T) {
	s, clock, _ := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	appendAt(t, s, clock, base.Add(-72*time.Hour), 1, "three days")
	appendAt(t, s, clock, base.Add(-24*time.Hour), 1, "one day")
	appendAt(t, s, clock, base.Add(-time.Minute), 2, "fresh")
	clock.Set(base)

	removed, err := s.PruneOlderThan(ctx, 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	all, err := s.AllExchanges(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "one day", all[0].Message)
	assert.Equal(t, "fresh", all[1].Message)

	removed, err = s.PruneOlderThan(ctx, 48*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)

	_, err = s.PruneOlderThan(ctx, 0)
	assert.Error(t, err)
}

func TestAllExchangesInsertionOrder(t *testing.T) {
	s, clock, _ := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	appendAt(t, s, clock, base, 3, "a")
	appendAt(t, s, clock, base.Add(-time.Hour), 4, "b")
	appendAt(t, s, clock, base.Add(time.Hour), 3, "c")

	all, err := s.AllExchanges(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Message)
	assert.Equal(t, "b", all[1].Message)
	assert.Equal(t, "c", all[2].Message)
}

func TestReopenKeepsData(t *testing.T) {
	s, clock, path := newTestStore(t)
	appendAt(t, s, clock, clock.Now(), 9, "persisted")

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer CloseDB(ro)

	all, err := NewStore(ro, nil).AllExchanges(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "persisted", all[0].Message)
}

func TestOpenReadOnlyMissingFile(t *testing.T) {
	_, err := OpenReadOnly(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}

func TestRunSQLMaintenance(t *testing.T) {
	s, _, _ := newTestStore(t)
	require.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, s.RunSQLMaintenance(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, s.RunSQLMaintenance(ctx))
}

func TestExtractDBNameFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "airo.db", want: "airo.db"},
		{in: "file:airo.db?_pragma=busy_timeout(5000)", want: "airo.db"},
		{in: "file:my%20bot.db", want: "my bot.db"},
	}
	for _, tt := range tests {
		if got := ExtractDBNameFromPath(tt.in); got != tt.want {
			t.Errorf("ExtractDBNameFromPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
