package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lessonq/internal/queue"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
db: /tmp/lessonq-test.db
quota: 3
backfill: skip_yesterday
sweep_minutes: 10
levels:
  intermediate:
    start: 121
    end: 180
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/lessonq-test.db", cfg.DB)
	assert.Equal(t, 3, cfg.Quota)
	assert.Equal(t, queue.BackfillSkipYesterday, cfg.BackfillPolicy())
	assert.Equal(t, 10, cfg.SweepMinutes)

	r, ok := cfg.Catalog().Range("intermediate")
	require.True(t, ok)
	assert.Equal(t, 121, r.Start)
	assert.Equal(t, 180, r.End)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"quota": 3, "backfill": "include_yesterday"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Quota)
	assert.Equal(t, queue.BackfillIncludeYesterday, cfg.BackfillPolicy())
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "config.toml", `quota = 3`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, queue.MinQuota, cfg.Quota)
	assert.Equal(t, queue.BackfillIncludeYesterday, cfg.BackfillPolicy())
	_, ok := cfg.Catalog().Range("beginner")
	assert.True(t, ok, "empty levels should fall back to the built-in catalog")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LQ_QUOTA", "3")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Quota)
}

func TestLoad_RejectsInvalidPolicyAndRanges(t *testing.T) {
	_, err := Load(writeFile(t, "bad.yaml", `backfill: sometimes`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad2.yaml", "levels:\n  broken:\n    start: 50\n    end: 10\n"))
	assert.Error(t, err)
}
