package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, 1500*time.Millisecond, cfg.Session.LoginDelay)
	assert.Equal(t, "admin@a.com", cfg.Auth.AdminEmail)
	assert.Equal(t, "operator@a.com", cfg.Auth.OperatorEmail)
	assert.InDelta(t, 0.18, cfg.Billing.TaxRate, 1e-9)
	assert.Equal(t, 100, cfg.Stock.ThresholdMB)
	assert.Equal(t, 60, cfg.Stock.ThresholdALP)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, []string{"123 Industrial Estate, Mundra Port", "Gujarat, India - 370421"}, cfg.Billing.AddressLines())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("SESSION_LOGIN_DELAY", "250")
	v.Set("HTTP_PORT", "9090")
	v.Set("SESSION_TTL", "2h")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.LoginDelay)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
}

func TestFromViper_BackendInvalido(t *testing.T) {
	v := viper.New()
	v.Set("SESSION_BACKEND", "sqlite")

	_, err := fromViper(v)
	assert.Error(t, err, "un backend desconocido debe rechazarse")
}
