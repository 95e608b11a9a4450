package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MERCADOPAGO_MOCK", "true")
	t.Setenv("PAYMENT_SELECTION_TIMEOUT", "10m")
	t.Setenv("CHALLENGES_TABLE", "ch_table")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.True(t, cfg.Payment.GatewayMock)
	assert.Equal(t, 10*time.Minute, cfg.Payment.SelectionTimeout)
	assert.Equal(t, time.Minute, cfg.Payment.SweepInterval)
	assert.Equal(t, "ch_table", cfg.Tables.Challenges)
	assert.Equal(t, "BRL", cfg.Payment.Currency)
	assert.Equal(t, 60*time.Second, cfg.Realtime.PongWait)
	assert.Equal(t, 54*time.Second, cfg.Realtime.PingPeriod())
	assert.False(t, cfg.Redis.Enabled())
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Store:       StoreConfig{Driver: "dynamodb"},
			JWT:         JWTConfig{Secret: "x"},
			Payment:     PaymentConfig{SelectionTimeout: time.Minute, SweepInterval: time.Second, WebhookSecret: "w"},
			MercadoPago: MercadoPagoConfig{AccessToken: "TEST-123"},
			Realtime:    RealtimeConfig{PongWait: time.Minute},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown driver", func(c *Config) { c.Store.Driver = "sql" }, true},
		{"missing jwt secret", func(c *Config) { c.JWT.Secret = "" }, true},
		{"missing access token", func(c *Config) { c.MercadoPago.AccessToken = "" }, true},
		{"mock skips gateway secrets", func(c *Config) {
			c.Payment.GatewayMock = true
			c.MercadoPago.AccessToken = ""
			c.Payment.WebhookSecret = ""
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(&c)
			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
