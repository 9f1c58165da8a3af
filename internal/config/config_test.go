package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv выставляет минимальный набор переменных для успешной загрузки
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_FROM_NUMBER", "+1234567890")
	t.Setenv("SOS_RECIPIENTS", "+911234567890,+919876543210")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.HTTPHost)
	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"+911234567890", "+919876543210"}, cfg.Recipients)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("SOS_RECIPIENTS", " +15550001 , ,+15550002,")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"+15550001", "+15550002"}, cfg.Recipients)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"account sid", "TWILIO_ACCOUNT_SID"},
		{"auth token", "TWILIO_AUTH_TOKEN"},
		{"from number", "TWILIO_FROM_NUMBER"},
		{"recipients", "SOS_RECIPIENTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, "")

			cfg, err := LoadConfig()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrMissingEnv)
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestValidate_RecipientsOnlySeparators(t *testing.T) {
	cfg := &Config{
		TwilioAccountSID: "AC123",
		TwilioAuthToken:  "secret",
		TwilioFromNumber: "+1234567890",
		Recipients:       splitList(" , ,"),
	}

	assert.ErrorIs(t, cfg.Validate(), ErrMissingEnv)
}
