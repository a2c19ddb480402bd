package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/internal/config"
)

func testConfig(t *testing.T) config.Config {
	var cfg config.Config
	cfg.Auth.JWTSecret = "secret"
	cfg.Auth.TokenTTLMinutes = 60
	cfg.Gateway.BaseURL = "http://127.0.0.1:1"
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "app.db")
	cfg.Log.Level = "info"
	return cfg
}

func TestNew_WiresSQLiteStack(t *testing.T) {
	logger, _ := test.NewNullLogger()

	a, err := New(context.Background(), testConfig(t), logger)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close(context.Background())) })

	assert.Nil(t, a.Images)

	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := testConfig(t)
	cfg.Database.Driver = "cassandra"

	_, err := New(context.Background(), cfg, logger)
	assert.Error(t, err)
}
