package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearPortalEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_PATH", "LISTEN_ADDR", "LOG_LEVEL", "ENV",
		"SESSION_TTL", "SESSION_COOKIE_NAME", "ADMIN_EMAIL", "ADMIN_PASSWORD",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearPortalEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "portal.sqlite", cfg.DBPath)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "portal_session", cfg.SessionCookieName)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearPortalEnv(t)
	t.Setenv("DB_PATH", "/data/members.sqlite")
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_COOKIE_NAME", "sid")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/data/members.sqlite", cfg.DBPath)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "sid", cfg.SessionCookieName)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadFromEnv_InvalidSessionTTL(t *testing.T) {
	clearPortalEnv(t)

	t.Setenv("SESSION_TTL", "soon")
	_, err := LoadFromEnv()
	assert.Error(t, err)

	t.Setenv("SESSION_TTL", "-1h")
	_, err = LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnv_AdminSeedPair(t *testing.T) {
	clearPortalEnv(t)
	t.Setenv("ADMIN_EMAIL", "Root@Example.com")
	t.Setenv("ADMIN_PASSWORD", "changeme1")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", cfg.AdminEmail)
	assert.Equal(t, "changeme1", cfg.AdminPassword)

	// One without the other disables seeding with a warning.
	clearPortalEnv(t)
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	cfg, err = LoadFromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.AdminEmail)
	assert.NotEmpty(t, cfg.Warnings)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %q", tt.level)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearPortalEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n\nDB_PATH=/tmp/from-dotenv.sqlite\nLISTEN_ADDR=\":7070\"\nIGNORED LINE\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// Pre-set values win over the .env file.
	t.Setenv("LISTEN_ADDR", ":6060")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "/tmp/from-dotenv.sqlite", os.Getenv("DB_PATH"))
	assert.Equal(t, ":6060", os.Getenv("LISTEN_ADDR"))

	// A missing file is not an error.
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
