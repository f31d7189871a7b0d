package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0.7, cfg.Matching.ConfidenceThreshold)
	assert.Empty(t, cfg.Matching.Keywords)
	assert.False(t, cfg.Auth.Enabled)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 300, cfg.Server.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.Server.RateLimitWindow)
	assert.Equal(t, 50, cfg.Worker.BatchSize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MATCH_KEYWORDS", "run, ride ,, swim")
	t.Setenv("MATCH_CONFIDENCE_THRESHOLD", "0.5")
	t.Setenv("PROGRESS_WORKER_INTERVAL", "30s")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("RATE_LIMIT_REQUESTS", "0")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"run", "ride", "swim"}, cfg.Matching.Keywords)
	assert.Equal(t, 0.5, cfg.Matching.ConfidenceThreshold)
	assert.Equal(t, 30*time.Second, cfg.Worker.Interval)
	assert.True(t, cfg.Auth.Enabled)
	assert.Zero(t, cfg.Server.RateLimitRequests)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("MATCH_CONFIDENCE_THRESHOLD", "high")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0.7, cfg.Matching.ConfidenceThreshold)
}
