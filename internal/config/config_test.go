package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Purchase.AuthorizationTimeout)
	assert.True(t, cfg.Purchase.JournalEnabled)
	assert.False(t, cfg.Purchase.ReconcileAutoRetry)
	assert.Equal(t, 30*time.Second, cfg.Purchase.CreditTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Purchase.CapturedGrace)
	assert.Equal(t, 5*time.Minute, cfg.Worker.ReconcileInterval)
	assert.Equal(t, time.Minute, cfg.Worker.SweepInterval)
	assert.Equal(t, 30*time.Minute, cfg.Worker.DialogueIdleTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Empty(t, cfg.Purchase.CatalogFile)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://backend.example.com")
	t.Setenv("GATEWAY_PUBLISHABLE_KEY", "pk_test_123")
	t.Setenv("AUTHORIZATION_TIMEOUT", "12s")
	t.Setenv("RECONCILE_AUTO_RETRY", "true")
	t.Setenv("CREDIT_TIMEOUT", "45s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://backend.example.com", cfg.Backend.URL)
	assert.Equal(t, "pk_test_123", cfg.Gateway.PublishableKey)
	assert.Equal(t, 12*time.Second, cfg.Purchase.AuthorizationTimeout)
	assert.True(t, cfg.Purchase.ReconcileAutoRetry)
	assert.Equal(t, 45*time.Second, cfg.Purchase.CreditTimeout)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("GATEWAY_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
