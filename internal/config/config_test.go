package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
		assert.Equal(t, DefaultServiceName, cfg.ServiceName)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DATABASE_PATH", "/srv/items.db")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/srv/items.db", cfg.DatabasePath)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("empty database path rejected", func(t *testing.T) {
		t.Setenv("DATABASE_PATH", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_PATH")
	})
}
