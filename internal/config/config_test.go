package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
user = "moto"
password = "secret"
dbname = "agenda"

[logs]
level = "debug"

[auth]
jwt_secret = "from-file"

[app]
timezone = "America/Sao_Paulo"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "host=db port=5432 user=moto password=secret dbname=agenda sslmode=disable", cfg.Database.DSN())
	assert.False(t, cfg.WhatsApp.Enabled)

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("WHATSAPP_ENABLED", "true")

	cfg, err := Load(writeConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.True(t, cfg.WhatsApp.Enabled)
	assert.Equal(t, "./data", cfg.WhatsApp.DataDir)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "[auth]\njwt_secret = \"\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "[auth]\njwt_secret = \"x\"\n[app]\ntimezone = \"Mars/Base\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}
