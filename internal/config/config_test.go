package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/wedplan/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Loader{LookupEnv: envOf(nil)}.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Auth.IdleTimeout)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.MaxAge)
	assert.Equal(t, models.DefaultProjectName, cfg.Project.Name)
	assert.Equal(t, models.DefaultCurrency, cfg.Project.Currency)

	driver, dsn := cfg.DataSource()
	assert.Equal(t, DriverSQLite, driver)
	assert.Equal(t, "./data/wedplan.db", dsn)
}

func TestPrecedence(t *testing.T) {
	file := writeFile(t, "wedplan.yaml", `
server:
  addr: ":9000"
  dashboard_timeout: 5s
db:
  path: /var/lib/wedplan/file.db
log:
  level: warn
project:
  currency: EUR
`)
	dotenv := writeFile(t, ".env", "DB_PATH=/from/dotenv.db\nWEDPLAN_LOG_LEVEL=debug\nWEDPLAN_ADDR=:7000\n")

	l := Loader{
		EnvFile:   dotenv,
		LookupEnv: envOf(map[string]string{"WEDPLAN_ADDR": ":6000"}),
	}
	cfg, err := l.Load(file)
	require.NoError(t, err)

	assert.Equal(t, ":6000", cfg.Server.Addr, "process env beats .env")
	assert.Equal(t, "/from/dotenv.db", cfg.DB.Path, ".env beats file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5*time.Second, cfg.Server.DashboardTimeout, "file beats defaults")
	assert.Equal(t, "EUR", cfg.Project.Currency)
}

func TestSessionDurationsFromEnv(t *testing.T) {
	cfg, err := Loader{LookupEnv: envOf(map[string]string{
		"WEDPLAN_IDLE_TIMEOUT":    "30m",
		"WEDPLAN_SESSION_MAX_AGE": "168h",
		"WEDPLAN_WARN_BEFORE":     "2m",
	})}.Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Auth.IdleTimeout)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.MaxAge)
	assert.Equal(t, 2*time.Minute, cfg.Auth.WarnBefore)
}

func TestMissingEnvFileIsIgnored(t *testing.T) {
	l := Loader{EnvFile: filepath.Join(t.TempDir(), "missing.env"), LookupEnv: envOf(nil)}
	_, err := l.Load("")
	require.NoError(t, err)
}

func TestUnknownFieldRejected(t *testing.T) {
	file := writeFile(t, "wedplan.yaml", "server:\n  adress: \":9000\"\n")
	_, err := Loader{LookupEnv: envOf(nil)}.Load(file)
	require.Error(t, err)
}

func TestEmptyFile(t *testing.T) {
	file := writeFile(t, "wedplan.yaml", "")
	cfg, err := Loader{LookupEnv: envOf(nil)}.Load(file)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestSecretsFallBackToKeyring(t *testing.T) {
	keyring := map[string]string{"password_hash": "from-keyring", "token_secret": "keyring-secret"}
	l := Loader{
		LookupEnv:    envOf(map[string]string{"WEDPLAN_TOKEN_SECRET": "env-secret"}),
		LookupSecret: envOf(keyring),
	}
	cfg, err := l.Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-keyring", cfg.Auth.PasswordHash)
	assert.Equal(t, "env-secret", cfg.Auth.TokenSecret)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"WEDPLAN_DB_DRIVER": "mysql"}},
		{name: "postgres without dsn", env: map[string]string{"WEDPLAN_DB_DRIVER": "postgres"}},
		{name: "bad duration", env: map[string]string{"WEDPLAN_IDLE_TIMEOUT": "soon"}},
		{name: "idle beyond max age", env: map[string]string{"WEDPLAN_IDLE_TIMEOUT": "48h", "WEDPLAN_SESSION_MAX_AGE": "24h"}},
		{name: "bad currency", env: map[string]string{"WEDPLAN_CURRENCY": "zloty"}},
		{name: "bad warn duration", env: map[string]string{"WEDPLAN_WARN_BEFORE": "early"}},
		{name: "warning after idle expiry", env: map[string]string{"WEDPLAN_WARN_BEFORE": "20m"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Loader{LookupEnv: envOf(tt.env)}.Load("")
			assert.Error(t, err)
		})
	}
}

func TestPostgresDataSource(t *testing.T) {
	cfg, err := Loader{LookupEnv: envOf(map[string]string{
		"WEDPLAN_DB_DRIVER": "postgres",
		"WEDPLAN_DB_DSN":    "postgres://localhost/wedplan",
	})}.Load("")
	require.NoError(t, err)

	driver, dsn := cfg.DataSource()
	assert.Equal(t, DriverPostgres, driver)
	assert.Equal(t, "postgres://localhost/wedplan", dsn)
}
