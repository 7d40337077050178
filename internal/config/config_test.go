package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "SERVER_PORT", "SESSION_TTL", "DEV_HOST_SUFFIXES", "RESERVED_SUBDOMAINS", "STORAGE_DRIVER"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.AppEnv)
	assert.Equal(t, 10000, cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"replit.dev", "localhost"}, cfg.DevHostSuffixes)
	assert.Equal(t, []string{"www"}, cfg.ReservedSubdomains)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}

func TestIsProduction_OnlyKnownEnvironmentsOptOut(t *testing.T) {
	tests := []struct {
		appEnv     string
		production bool
	}{
		{appEnv: "", production: true},
		{appEnv: "production", production: true},
		{appEnv: "Production", production: true},
		{appEnv: "PROD", production: true},
		{appEnv: "prd", production: true},
		{appEnv: "development", production: false},
		{appEnv: " Development ", production: false},
		{appEnv: "STAGING", production: false},
		{appEnv: "test", production: false},
	}

	for _, tt := range tests {
		t.Run(tt.appEnv, func(t *testing.T) {
			cfg := &Config{AppEnv: tt.appEnv}
			assert.Equal(t, tt.production, cfg.IsProduction())
		})
	}
}

func TestLoad_NormalizesAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", " Development ")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("RESERVED_SUBDOMAINS", " WWW, api ,,")
	t.Setenv("ALLOW_REGISTRATION", "false")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"www", "api"}, cfg.ReservedSubdomains)
	assert.False(t, cfg.AllowRegistration)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("SESSION_TTL", "a day")
	t.Setenv("DEV_HOST_SUFFIXES", " , ")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"replit.dev", "localhost"}, cfg.DevHostSuffixes)
}
