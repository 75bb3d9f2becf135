package config

import (
	"os"
	"path/filepath"
	"testing"

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
	t.Setenv("PORT", "")
	path := writeConfig(t, `
[server]
http_port = 8081

[logs]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_PostgresSection(t *testing.T) {
	t.Setenv("PORT", "")
	path := writeConfig(t, `
[storage]
driver = "postgres"

[database]
host = "db"
port = 5433
user = "booking"
password = "secret"
dbname = "courts"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5433 user=booking password=secret dbname=courts sslmode=disable", cfg.Database.DSN())
}

func TestLoad_PortFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PORT", "")

	cases := map[string]string{
		"unknown driver": "[storage]\ndriver = \"sqlite\"\n",
		"bad port":       "[server]\nhttp_port = 70000\n",
		"bad level":      "[logs]\nlevel = \"verbose\"\n",
		"events no url":  "[events]\nenabled = true\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
