package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("development defaults", func(t *testing.T) {
		cfg := FromEnv()
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Minute, cfg.PlanCacheTTL)
		assert.Equal(t, 10, cfg.Redis.PoolSize)
		assert.NotEmpty(t, cfg.JWTSigningKey)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("BELEGPLAN_ADDR", ":9090")
		t.Setenv("DATABASE_URL", "postgres://localhost/belegplan")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		t.Setenv("PLAN_CACHE_TTL", "30s")
		t.Setenv("REDIS_POOL_SIZE", "25")
		t.Setenv("JWT_SIGNING_KEY", "prod-key")

		cfg := FromEnv()
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "postgres://localhost/belegplan", cfg.DatabaseURL)
		assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
		assert.Equal(t, 30*time.Second, cfg.PlanCacheTTL)
		assert.Equal(t, 25, cfg.Redis.PoolSize)
		assert.Equal(t, "prod-key", cfg.JWTSigningKey)
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		t.Setenv("PLAN_CACHE_TTL", "soon")
		t.Setenv("REDIS_POOL_SIZE", "many")

		cfg := FromEnv()
		assert.Equal(t, 5*time.Minute, cfg.PlanCacheTTL)
		assert.Equal(t, 10, cfg.Redis.PoolSize)
	})
}
