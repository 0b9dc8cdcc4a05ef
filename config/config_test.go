package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("CART_TTL", "")
	t.Setenv("DB_RETRY_ATTEMPTS", "")
	t.Setenv("CART_ENFORCE_SINGLE_RESTAURANT", "")

	cfg := Load(":8081")

	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, 7*24*time.Hour, cfg.CartTTL)
	assert.Equal(t, 3, cfg.DBRetry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.DBRetry.BaseDelay)
	assert.False(t, cfg.EnforceSingleRestaurantCart)
	assert.Equal(t, "usd", cfg.Payment.Currency)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("CART_TTL", "2h")
	t.Setenv("DB_RETRY_ATTEMPTS", "5")
	t.Setenv("CART_ENFORCE_SINGLE_RESTAURANT", "true")
	t.Setenv("ORDER_CACHE_TTL", "not-a-duration")

	cfg := Load(":8081")

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Hour, cfg.CartTTL)
	assert.Equal(t, 5, cfg.DBRetry.MaxAttempts)
	assert.True(t, cfg.EnforceSingleRestaurantCart)
	assert.Equal(t, 5*time.Minute, cfg.OrderCacheTTL)
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "lunch")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "marketplace")
	t.Setenv("DB_SSLMODE", "")

	assert.Equal(t, "host=db port=5432 user=lunch password=secret dbname=marketplace sslmode=disable", PostgresDSN())
}
