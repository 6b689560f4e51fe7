package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Run("uses defaults when environment is empty", func(t *testing.T) {
		cfg := NewConfig()

		assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
		assert.Equal(t, "warn", cfg.Database.LogLevel)
		assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
		assert.Equal(t, int32(8189), cfg.HTTP.Port)
		assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
		assert.Equal(t, DefaultWindowTitle, cfg.Window.Title)
		assert.Empty(t, cfg.Security.CSRFSecret)
		assert.False(t, cfg.Security.SecureCookies)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("DATABASE_PATH", "/tmp/books.db")
		t.Setenv("PORT", "9000")
		t.Setenv("CSRF_SECRET", "s3cret")
		t.Setenv("SECURE_COOKIES", "true")
		t.Setenv("STATUS_MESSAGE", "Nama: Tester")

		cfg := NewConfig()

		assert.Equal(t, "/tmp/books.db", cfg.Database.Path)
		assert.Equal(t, int32(9000), cfg.HTTP.Port)
		assert.Equal(t, "s3cret", cfg.Security.CSRFSecret)
		assert.True(t, cfg.Security.SecureCookies)
		assert.Equal(t, "Nama: Tester", cfg.Window.StatusMessage)
	})
}
