package bot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youngmea/airo/internal/bot/tasks"
	"github.com/youngmea/airo/internal/config"
	"github.com/youngmea/airo/internal/database"
	"github.com/youngmea/airo/internal/logger"
)

func noopTask(context.Context) error { return nil }

func TestSchedulerSchedulesEnabledKnownTasks(t *testing.T) {
	cfg := &config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		"retention_sweep": {Enabled: true, Schedule: "0 0 * * * *"},
		"sql_maintenance": {Enabled: false, Schedule: "0 30 3 * * 0"},
		"unknown":         {Enabled: true, Schedule: "0 0 * * * *"},
		"bad_schedule":    {Enabled: true, Schedule: "not a cron"},
	}}
	taskMap := map[string]tasks.ScheduledTaskFunc{
		"retention_sweep": noopTask,
		"sql_maintenance": noopTask,
		"bad_schedule":    noopTask,
	}

	s, err := NewScheduler(logger.Discard(), cfg, taskMap)
	require.NoError(t, err)

	require.NoError(t, s.Start())
	assert.Error(t, s.Start(), "second start must fail")
	assert.Equal(t, []string{"retention_sweep"}, s.Jobs())

	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop(), "stopping twice is a no-op")
}

func TestSchedulerWithoutTasks(t *testing.T) {
	s, err := NewScheduler(logger.Discard(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, s.Start())
	assert.Empty(t, s.Jobs())
	require.NoError(t, s.Stop())
}

// fakeAPI answers every Bot API method and records the method names.
type fakeAPI struct {
	mu      sync.Mutex
	methods []string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	f.mu.Lock()
	f.methods = append(f.methods, method)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if method == "getUpdates" {
		time.Sleep(10 * time.Millisecond)
		_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
		return
	}
	_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
}

func (f *fakeAPI) called(method string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.methods {
		if m == method {
			return true
		}
	}
	return false
}

func TestRunPreparesAndStopsOnCancel(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	tg, err := tgbot.New("123:test-token", tgbot.WithServerURL(srv.URL), tgbot.WithSkipGetMe())
	require.NoError(t, err)

	db, err := database.NewDB(filepath.Join(t.TempDir(), "airo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseDB(db) })
	store := database.NewStore(db, logger.Discard())

	cfg := &config.Config{}
	cfg.Telegram.DropPendingUpdates = true

	sched, err := NewScheduler(logger.Discard(), &cfg.Scheduler, nil)
	require.NoError(t, err)

	menus := map[string][]models.BotCommand{"": {{Command: "help", Description: "Show help"}}}
	b := NewBot(logger.Discard(), cfg, store, tg, sched, menus)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, b.Run(ctx))
	assert.True(t, api.called("deleteWebhook"))
	assert.True(t, api.called("setMyCommands"))
	assert.True(t, api.called("getUpdates"))
}
