package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/internal/tenancy"
)

func tenancyOptions(cfg *config.Config) tenancy.Options {
	return tenancy.Options{
		Production:      cfg.IsProduction(),
		Development:     cfg.IsDevelopment(),
		DevHostSuffixes: cfg.DevHostSuffixes,
		ReservedLabels:  cfg.ReservedSubdomains,
	}
}

func TestTenantHeader_IgnoredUnlessEnvironmentConfirmed(t *testing.T) {
	for _, appEnv := range []string{"", "Production", "PROD"} {
		t.Run("APP_ENV="+appEnv, func(t *testing.T) {
			t.Setenv("APP_ENV", appEnv)
			cfg, err := config.Load()
			require.NoError(t, err)

			opts := tenancyOptions(cfg)
			d := opts.Derive("acme.example.com", "victim")

			assert.False(t, opts.HeaderTrusted("acme.example.com"))
			assert.False(t, opts.HeaderTrusted("localhost"))
			assert.Equal(t, tenancy.SourceHost, d.Source)
			assert.Equal(t, "acme", d.Subdomain)
		})
	}
}

func TestTenantHeader_HonoredInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	cfg, err := config.Load()
	require.NoError(t, err)

	d := tenancyOptions(cfg).Derive("acme.example.com", "globex")

	assert.Equal(t, tenancy.SourceHeader, d.Source)
	assert.Equal(t, "globex", d.Subdomain)
}
