package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAge(t *testing.T) {
	d, err := parseAge("48h")
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, d)

	for _, bad := range []string{"", "soon", "0s", "-1h"} {
		_, err := parseAge(bad)
		assert.Error(t, err, bad)
	}
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "export", "prune"}, names)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestServeFailsWithoutSecrets(t *testing.T) {
	t.Setenv("AIRO_TELEGRAM_TOKEN", "")
	t.Setenv("AIRO_LLM_API_KEY", "")

	root := newRootCmd()
	root.SetArgs([]string{"serve", "--config", "", "--env-file", ""})
	root.SetOut(&bytes.Buffer{})

	assert.Error(t, root.ExecuteContext(context.Background()))
}

func TestPruneThenExport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "airo.db")
	out := filepath.Join(dir, "export.json")
	t.Setenv("AIRO_DATABASE_PATH", dbPath)
	t.Setenv("AIRO_LOG_LEVEL", "error")

	prune := newRootCmd()
	prune.SetArgs([]string{"prune", "--config", "", "--env-file", "", "--max-age", "1h"})
	require.NoError(t, prune.ExecuteContext(context.Background()))

	exp := newRootCmd()
	exp.SetArgs([]string{"export", "--config", "", "--env-file", "", "--out", out})
	require.NoError(t, exp.ExecuteContext(context.Background()))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(raw, &records))
	assert.Empty(t, records)
}

func TestExportMissingDatabase(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AIRO_LOG_LEVEL", "error")

	exp := newRootCmd()
	exp.SetArgs([]string{"export", "--config", "", "--env-file", "", "--db", filepath.Join(dir, "nope.db"), "--out", filepath.Join(dir, "x.json")})
	assert.Error(t, exp.ExecuteContext(context.Background()))
}
