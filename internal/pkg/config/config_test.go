//go:build unit

package config_test

import (
	"os"
	"testing"

	"tour-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "booking")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "booking")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_x")
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 30, cfg.Booking.MaxDays)
		assert.Equal(t, "usd", cfg.Payment.Currency)
		assert.False(t, cfg.Kafka.Enabled())
	})

	t.Run("rejects a non-positive booking length", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("MAX_BOOKING_DAYS", "0")

		_, err := config.LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "MAX_BOOKING_DAYS must be at least 1, got 0")
	})

	t.Run("missing required value", func(t *testing.T) {
		setRequiredEnv(t)
		require.NoError(t, os.Unsetenv("JWT_SECRET"))

		_, err := config.LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to process env config")
	})
}
