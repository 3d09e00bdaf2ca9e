package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no skillhatch.yaml or
// .env from the repository is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.Store.DSN)
	assert.Empty(t, cfg.Store.Fixtures)
	assert.Equal(t, 1, cfg.User.ID)
	assert.Equal(t, 75, cfg.Skills.AdvancedThreshold)
	assert.Equal(t, 35, cfg.Skills.IntermediateThreshold)
	assert.Equal(t, 1, cfg.Streak.GraceDays)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
user:
  id: 2
skills:
  advanced_threshold: 80
  intermediate_threshold: 40
streak:
  grace_days: 0
`), 0o600))

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.User.ID)
	assert.Equal(t, 80, cfg.LevelPolicy().AdvancedThreshold)
	assert.Equal(t, 40, cfg.LevelPolicy().IntermediateThreshold)
	assert.Equal(t, 0, cfg.StreakPolicy().GraceDays)
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skillhatch.yaml"), []byte("logging:\n  level: debug\n"), 0o600))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(Options{File: "/nonexistent/skillhatch.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "skillhatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  dsn: /tmp/from-file.db\n"), 0o600))
	t.Setenv("SKILLHATCH_STORE_DSN", "/tmp/from-env.db")
	t.Setenv("SKILLHATCH_STREAK_GRACE_DAYS", "2")

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.Store.DSN)
	assert.Equal(t, 2, cfg.Streak.GraceDays)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SKILLHATCH_USER_ID=7\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SKILLHATCH_USER_ID") })

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.User.ID)
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	isolate(t)

	_, err := Load(Options{EnvFile: "missing.env"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading env file missing.env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   string
	}{
		{"empty dsn", func(c *Config) { c.Store.DSN = "" }, "store.dsn is required"},
		{"zero user", func(c *Config) { c.User.ID = 0 }, "user.id must be positive"},
		{"thresholds out of order", func(c *Config) { c.Skills.IntermediateThreshold = 90 }, "skills:"},
		{"negative grace", func(c *Config) { c.Streak.GraceDays = -1 }, "streak.grace_days must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.NoError(t, Default().Validate())
}
