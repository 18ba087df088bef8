package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, "require", cfg.DB.SSLMode)
	assert.Equal(t, "Indian/Comoro", cfg.DB.TimeZone)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "269", cfg.Contact.WhatsAppCountryCode)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoad_EnvFileAndEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nDB_HOST=db.example.co\nDB_NAME=postgres\nREDIS_ENABLED=false\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("AUTH_JWT_SECRET", "anon-secret")
	t.Setenv("APP_ENV", "production")

	cfg, err := load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, "db.example.co", cfg.DB.Host)
	assert.Equal(t, "postgres", cfg.DB.Name)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "anon-secret", cfg.Auth.JWTSecret)
}
