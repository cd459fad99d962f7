package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ketchup/internal/config"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Parse(nil)
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, time.Hour, cfg.Server.CacheMaxAge)
		assert.Equal(t, "$.fn.ketchup.messages", cfg.JSTarget)
		assert.Empty(t, cfg.MessagesFile)
		assert.False(t, cfg.SkipArityCheck)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "production", cfg.Log.Sentry.Environment)
		assert.Equal(t, slog.LevelWarn, cfg.Log.Sentry.MinLevel)
	})

	t.Run("reads prefixed variables", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.Parse([]string{
			"KETCHUP_SERVER_ADDR=127.0.0.1:9000",
			"KETCHUP_SERVER_CACHE_MAX_AGE=5m",
			"KETCHUP_MESSAGES_FILE=/etc/ketchup/de.yaml",
			"KETCHUP_JS_TARGET=window.messages",
			"KETCHUP_SKIP_ARITY_CHECK=true",
			"KETCHUP_LOG_LEVEL=debug",
			"KETCHUP_LOG_FORMAT=text",
			"KETCHUP_SENTRY_DSN=https://key@example.com/1",
			"KETCHUP_SENTRY_MIN_LEVEL=ERROR",
			"SERVER_ADDR=:1",
		})
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
		assert.Equal(t, 5*time.Minute, cfg.Server.CacheMaxAge)
		assert.Equal(t, "/etc/ketchup/de.yaml", cfg.MessagesFile)
		assert.Equal(t, "window.messages", cfg.JSTarget)
		assert.True(t, cfg.SkipArityCheck)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, "https://key@example.com/1", cfg.Log.Sentry.DSN)
		assert.Equal(t, slog.LevelError, cfg.Log.Sentry.MinLevel)
	})

	t.Run("rejects invalid duration", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse([]string{"KETCHUP_SERVER_READ_TIMEOUT=soon"})
		require.Error(t, err)
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse([]string{"KETCHUP_LOG_LEVEL=chatty"})
		require.Error(t, err)
	})

	t.Run("rejects negative cache age", func(t *testing.T) {
		t.Parallel()
		_, err := config.Parse([]string{"KETCHUP_SERVER_CACHE_MAX_AGE=-1s"})
		require.Error(t, err)
	})
}
