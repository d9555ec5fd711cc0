package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/chat")
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15, cfg.AccessExpiryMin)
	assert.Equal(t, 15*time.Minute, cfg.ApplicationTTL)
	assert.Equal(t, 72*time.Hour, cfg.RollbackTTL)
	assert.Equal(t, time.Minute, cfg.ApplicationSweepInterval)
	assert.Equal(t, time.Hour, cfg.RollbackSweepInterval)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/chat")
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "30")
	t.Setenv("APPLICATION_TTL", "5m")
	t.Setenv("ROLLBACK_TTL", "24h")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30, cfg.AccessExpiryMin)
	assert.Equal(t, 5*time.Minute, cfg.ApplicationTTL)
	assert.Equal(t, 24*time.Hour, cfg.RollbackTTL)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/chat")
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "not-a-number")
	t.Setenv("APPLICATION_TTL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 15, cfg.AccessExpiryMin)
	assert.Equal(t, 15*time.Minute, cfg.ApplicationTTL)
}
