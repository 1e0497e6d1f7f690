package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:             "development",
		JWTSecret:       DevJWTSecret,
		JWTTTLHours:     720,
		PaymentProvider: "stripe",
	}
}

func TestValidate_DevDefaultsOK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_ProductionRejectsDevSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := validConfig()
	cfg.PaymentProvider = "paypal"
	assert.Error(t, cfg.Validate())
}

func TestValidate_NonPositiveTTL(t *testing.T) {
	cfg := validConfig()
	cfg.JWTTTLHours = 0
	assert.Error(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PAYMENT_PROVIDER", "")
	t.Setenv("CORS_ORIGINS", "https://nvpwelfare.in, http://localhost:3000,")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, DevJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 720, cfg.JWTTTLHours)
	assert.Equal(t, "INR", cfg.PaymentCurrency)
	assert.Equal(t, []string{"https://nvpwelfare.in", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxies)
}
