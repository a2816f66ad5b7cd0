package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
auth:
  admin_password: secret
absence:
  annual_quota: 28
storage:
  backend: json
  data_dir: /var/lib/vacation-hub
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 9000, cfg.Server.Port)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "secret", cfg.Auth.AdminPassword)
	require.Equal(t, 28, cfg.Absence.AnnualQuota)
	require.Equal(t, "/var/lib/vacation-hub", cfg.Storage.DataDir)
	require.Equal(t, "0 7 * * 1", cfg.Report.Schedule)
	require.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("VACATION_HUB_SERVER_PORT", "9191")
	t.Setenv("VACATION_HUB_AUTH_ADMIN_PASSWORD", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9191, cfg.Server.Port)
	require.Equal(t, "from-env", cfg.Auth.AdminPassword)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidBackend(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: sheets\n")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "storage.backend")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(c *Config) {}},
		{name: "bad port", modify: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "negative quota", modify: func(c *Config) { c.Absence.AnnualQuota = -1 }, wantErr: true},
		{name: "json without data dir", modify: func(c *Config) { c.Storage.DataDir = "" }, wantErr: true},
		{name: "postgres backend", modify: func(c *Config) { c.Storage.Backend = "postgres" }},
		{
			name: "postgres without db name",
			modify: func(c *Config) {
				c.Storage.Backend = "postgres"
				c.Postgres.DBName = ""
			},
			wantErr: true,
		},
		{name: "report without schedule", modify: func(c *Config) { c.Report.Schedule = "" }, wantErr: true},
		{
			name: "disabled report without schedule",
			modify: func(c *Config) {
				c.Report.Enabled = false
				c.Report.Schedule = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDurationHelpers(t *testing.T) {
	s := ServerConfig{ShutdownTimeout: "nonsense"}
	require.Equal(t, 5*time.Second, s.GetShutdownTimeout())

	p := PostgresConfig{QueryTimeout: "750ms"}
	require.Equal(t, 750*time.Millisecond, p.GetQueryTimeout())
	require.Equal(t, 10*time.Second, p.GetMigrateTimeout())
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)

	require.Error(t, WriteDefault(path), "existing file must not be overwritten")
}
