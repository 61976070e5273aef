package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/contacts?sslmode=disable")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.RequireAuth)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://app.example.com ,")
	t.Setenv("RATE_LIMIT_AUTH_BURST", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.True(t, cfg.RequireAuth)
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 3, cfg.AuthRateBurst)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_TTL", "soon")
	t.Setenv("REQUIRE_AUTH", "maybe")
	t.Setenv("RATE_LIMIT_RPS", "fast")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.RequireAuth)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	_, err := Load()
	require.EqualError(t, err, "DATABASE_URL is required")

	t.Setenv("DATABASE_URL", "postgres://localhost/contacts")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	require.EqualError(t, err, "JWT_SECRET is required")
}
