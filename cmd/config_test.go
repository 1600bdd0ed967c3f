package cmd_test

import (
	"testing"
	"time"

	"orderbot/cmd"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("COMMERCE_CLIENT_ID", "id")
	t.Setenv("COMMERCE_CLIENT_SECRET", "secret")
	t.Setenv("GEOCODER_API_KEY", "key")
	t.Setenv("MESSENGER_TOKEN", "123:abc")
}

func TestConfig_Defaults(t *testing.T) {
	requiredEnv(t)

	cfg, err := env.ParseAs[cmd.Config]()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 15*time.Second, cfg.CollaboratorTimeout)
	assert.Equal(t, time.Hour, cfg.ReminderDelay)
	assert.Equal(t, "*/30 * * * * *", cfg.ReminderSchedule)
	assert.Equal(t, 50, cfg.ReminderBatch)
	assert.InDelta(t, 25.0, cfg.MessengerRateLimit, 0)
}

func TestConfig_Overrides(t *testing.T) {
	requiredEnv(t)
	t.Setenv("REMINDER_DELAY", "90m")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := env.ParseAs[cmd.Config]()

	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.ReminderDelay)
	assert.Equal(t, "host=db port=5432 user=postgres password=pw dbname=orderbot sslmode=disable", cfg.DSN())
}

func TestConfig_MissingRequired(t *testing.T) {
	t.Setenv("COMMERCE_CLIENT_ID", "id")

	_, err := env.ParseAs[cmd.Config]()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "MESSENGER_TOKEN")
}
