package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_PASSWORD", "JWT_SECRET", "TELEGRAM_TOKEN", "ADMIN_TELEGRAM_CHAT_ID"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

const minimal = `
[database]
dbname = "scheduling"

[auth]
jwt_secret = "file-secret"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 9, cfg.Scheduler.SummaryHour)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.ReminderInterval())
	assert.Equal(t, time.Hour, cfg.Scheduler.ReminderLead())
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PASSWORD", "pg-pass")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("ADMIN_TELEGRAM_CHAT_ID", "-100500")

	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, "pg-pass", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, int64(-100500), cfg.Telegram.AdminChatID)
	assert.Contains(t, cfg.Database.DSN(), "password=pg-pass")
}

func TestLoad_InvalidAdminChatID(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_TELEGRAM_CHAT_ID", "not-a-number")

	_, err := Load(writeConfig(t, minimal))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no secret", "[database]\ndbname = \"x\"\n"},
		{"no dbname", "[auth]\njwt_secret = \"s\"\n"},
		{"port out of range", minimal + "\n[server]\nhttp_port = 70000\n"},
		{"lead below interval", minimal + "\n[scheduler]\nreminder_interval_minutes = 30\nreminder_lead_minutes = 10\n"},
		{"summary hour", minimal + "\n[scheduler]\nsummary_hour = 24\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
