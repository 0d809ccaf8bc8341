package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Issuer:               "clinic-test",
		SessionTTL:           time.Hour,
		NumKeys:              1,
		DatabaseDriver:       "sqlite",
		DatabaseFile:         filepath.Join(dir, "clinic.db"),
		PepperFile:           filepath.Join(dir, "clinic.pepper"),
		CookieName:           "token",
		AllowedOrigins:       []string{"http://localhost:5173"},
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
		HousekeepingSchedule: "",
	}
}

func TestNewServesReadiness(t *testing.T) {
	cfg := testConfig(t)
	t.Cleanup(func() { cryptox.SetPepperPath("") })

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	_, err = os.Stat(cfg.PepperFile)
	require.NoError(t, err, "pepper file should be generated on first start")

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseDriver = "mysql"
	t.Cleanup(func() { cryptox.SetPepperPath("") })

	_, err := New(cfg)
	require.ErrorContains(t, err, "unknown database driver")
}

func TestNewRequiresPostgresURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseDriver = "postgres"
	t.Cleanup(func() { cryptox.SetPepperPath("") })

	_, err := New(cfg)
	require.ErrorContains(t, err, "DATABASE_URL")
}

func TestInitKeysFromPEM(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "signing.pem")
	require.NoError(t, os.WriteFile(path, pemKey, 0o600))

	cfg := testConfig(t)
	cfg.SigningKeyFile = path

	logger := slogx.Discard()

	km, err := InitKeys(cfg, logger)
	require.NoError(t, err)
	require.Equal(t, 1, km.NumSigners())

	again, err := InitKeys(cfg, logger)
	require.NoError(t, err)
	require.Equal(t, km.GetSigner().KID(), again.GetSigner().KID(), "kid should be stable for the same key")

	cfg.SigningKeyFile = filepath.Join(t.TempDir(), "missing.pem")
	_, err = InitKeys(cfg, logger)
	require.Error(t, err)
}
