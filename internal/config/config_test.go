package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 10, cfg.Listing.PageSize)
	assert.Equal(t, 20.0, cfg.Billing.VATRate)
	assert.Equal(t, 30, cfg.Billing.DevisValiditeJrs)
	assert.Equal(t, time.Duration(0), cfg.Store.Latency)
	assert.NotEmpty(t, cfg.Export.Dir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("VAT_RATE", "5.5")
	t.Setenv("STORE_LATENCY_MS", "150")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 25, cfg.Listing.PageSize)
	assert.Equal(t, 5.5, cfg.Billing.VATRate)
	assert.Equal(t, 150*time.Millisecond, cfg.Store.Latency)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("VAT_RATE", "250")

	_, err := Load()

	assert.Error(t, err)
}
