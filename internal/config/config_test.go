package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "https://gdghack-2.onrender.com", cfg.Gateway.BaseURL)
	assert.Equal(t, 15*24*time.Hour, cfg.TokenTTL())
	assert.Zero(t, cfg.GatewayTimeout())
	assert.Empty(t, cfg.Storage.Bucket)

	assert.EqualError(t, cfg.Validate(), "auth jwt secret is required")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MENTORHUB_AUTH_JWTSECRET", "s3cret")
	t.Setenv("MENTORHUB_DATABASE_DRIVER", "mongo")
	t.Setenv("MENTORHUB_DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("MENTORHUB_GATEWAY_TIMEOUTSECONDS", "30")
	t.Setenv("MENTORHUB_SERVER_ALLOWEDORIGINS", "http://a.test,http://b.test")
	t.Setenv("MENTORHUB_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, 30*time.Second, cfg.GatewayTimeout())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var c Config
		c.Auth.JWTSecret = "x"
		c.Auth.TokenTTLMinutes = 60
		c.Gateway.BaseURL = "http://gw"
		c.Database.Driver = DriverSQLite
		c.Database.Path = "data/test.db"
		c.Log.Level = "info"
		return c
	}
	require.NoError(t, base().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }},
		{"mongo without uri", func(c *Config) { c.Database.Driver = DriverMongo }},
		{"negative timeout", func(c *Config) { c.Gateway.TimeoutSeconds = -1 }},
		{"zero ttl", func(c *Config) { c.Auth.TokenTTLMinutes = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
