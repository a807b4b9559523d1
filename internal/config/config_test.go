package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scroom/internal/config"
)

var keys = []string{
	"PORT", "DB_DSN", "JWT_SECRET", "JWT_TTL", "REDIS_URL",
	"RATE_LIMIT", "RATE_WINDOW", "CORS_ORIGINS", "MIGRATIONS_AUTO",
}

func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		}
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetAll(t)

	cfg := config.LoadConfig()

	assert.Equal(t, ":8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.True(t, cfg.MigrationsAuto)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "1234")
	t.Setenv("DB_DSN", "my-dsn-string")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_WINDOW", "10s")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("MIGRATIONS_AUTO", "false")

	cfg := config.LoadConfig()

	assert.Equal(t, ":1234", cfg.ServerPort)
	assert.Equal(t, "my-dsn-string", cfg.DatabaseDSN)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.RateWindow)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.MigrationsAuto)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "many")
	t.Setenv("JWT_TTL", "forever")
	t.Setenv("MIGRATIONS_AUTO", "maybe")

	cfg := config.LoadConfig()

	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.MigrationsAuto)
}
