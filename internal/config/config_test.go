package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
user = "dlx"
password = "secret"
dbname = "bookings"

[pricing]
package_service_ids = ["classic-island-package", "sunset-package"]
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, time.Hour, cfg.Wizard.SessionTTL())
	assert.Equal(t, 8*time.Hour, cfg.Admin.TokenTTL())
	assert.Equal(t, "EUR", cfg.Documents.Currency)
	assert.Equal(t, []string{"classic-island-package", "sunset-package"}, cfg.Pricing.PackageServiceIDs)
	assert.Equal(t, "host=db port=5432 user=dlx password=secret dbname=bookings sslmode=disable", cfg.Database.DSN())
}

func TestLoad_ExplicitValues(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "bookings"
sslmode = "require"

[redis]
enabled = true
addr = "redis:6379"

[wizard]
session_ttl_minutes = 15

[rate_limit]
enabled = true
requests_per_second = 0.5
burst = 3
trust_proxy_headers = true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 15*time.Minute, cfg.Wizard.SessionTTL())
	assert.Equal(t, 0.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.TrustProxyHeaders)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[database\nhost ="))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[server]\nhttp_port = 8080\n"))
	assert.ErrorContains(t, err, "database host and dbname are required")

	_, err = Load(writeConfig(t, "[server]\nhttp_port = 70000\n[database]\nhost = \"db\"\ndbname = \"b\"\n"))
	assert.ErrorContains(t, err, "invalid http_port")
}
