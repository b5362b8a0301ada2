package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "fsid", cfg.Tracking.SessionCookie)
	assert.Equal(t, 0, cfg.Scheduler.RetentionDays)
	assert.True(t, cfg.Gemini.PadPhrases)
	assert.False(t, cfg.Storage.Enabled())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_HOST", "db")
	t.Setenv("ADMIN_ALLOWED_EMAILS", "a@example.com,b@example.com")
	t.Setenv("SCHEDULER_RETENTION_DAYS", "90")
	t.Setenv("S3_BUCKET", "media")
	t.Setenv("S3_ACCESS_KEY_ID", "key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Contains(t, cfg.Database.DSN(), "host=db ")
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.Admin.AllowedEmails)
	assert.Equal(t, 90, cfg.Scheduler.RetentionDays)
	assert.True(t, cfg.Storage.Enabled())
}

func TestLoadConfigFrom_EnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "funnel.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_SITE_NAME=Deals Daily\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("APP_SITE_NAME") })

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "Deals Daily", cfg.App.SiteName)

	_, err = LoadConfigFrom(filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("production needs a JWT secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("negative retention", func(t *testing.T) {
		t.Setenv("SCHEDULER_RETENTION_DAYS", "-1")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "SCHEDULER_RETENTION_DAYS")
	})

	t.Run("empty queue", func(t *testing.T) {
		t.Setenv("TRACKING_QUEUE_SIZE", "0")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "TRACKING_QUEUE_SIZE")
	})
}
