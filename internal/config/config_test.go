package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"davisbacon/internal/model"
	"davisbacon/internal/scenario"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("API_ENV", "")

	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Server.Port)
	assert.Equal(t, time.Hour, c.Server.CacheTTL)
	assert.False(t, c.Production())
	assert.Len(t, c.Sources, 5)
	assert.Equal(t, []string{
		"home_price", "construction_cost_share", "labor_share",
		"wage_premium", "mortgage_rate", "mortgage_term_years",
	}, c.ParameterNames())

	base, err := c.BaseParams()
	require.NoError(t, err)
	assert.Equal(t, 665_298.0, base.HomePrice())
	assert.Equal(t, model.DefaultLaborShare, base.LaborShare())
	rate, ok := base.MortgageRate()
	assert.True(t, ok)
	assert.Equal(t, 0.07, rate)
	assert.Equal(t, 30, base.MortgageTermYears())

	cat, err := c.Catalog()
	require.NoError(t, err)
	assert.Equal(t, scenario.Default().Names(), cat.Names())
}

func TestLoad_EmptyPathIsDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Contains(t, c.Parameters, "home_price")
}

func TestLoad_OverlaysFile(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("API_ENV", "")

	path := writeConfig(t, `
server:
  port: "9090"
  cache_ttl: 10m
parameters:
  labor_share:
    default: 0.30
    min: 0.25
    max: 0.50
    step: 0.05
scenarios:
  - name: Union Town
    labor_share: 0.45
    wage_premium: 0.30
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Server.Port)
	assert.Equal(t, 10*time.Minute, c.Server.CacheTTL)
	// Untouched keys keep their defaults.
	assert.Equal(t, "development", c.Server.Env)
	assert.Equal(t, 0.644, c.Parameters["construction_cost_share"].Default)
	assert.Equal(t, 0.30, c.Parameters["labor_share"].Default)

	base, err := c.BaseParams()
	require.NoError(t, err)
	assert.Equal(t, 0.30, base.LaborShare())

	cat, err := c.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"Union Town"}, cat.Names())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "7000")
	t.Setenv("API_ENV", "production")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7000", c.Server.Port)
	assert.True(t, c.Production())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "unknown parameter",
			body: "parameters:\n  lot_size: {default: 1, min: 0, max: 2}\n",
			want: "unknown parameter",
		},
		{
			name: "slider wider than model range",
			body: "parameters:\n  labor_share: {default: 0.4, min: 0.10, max: 0.55}\n",
			want: "outside valid range",
		},
		{
			name: "default outside slider",
			body: "parameters:\n  labor_share: {default: 0.50, min: 0.30, max: 0.45}\n",
			want: "labor_share.default",
		},
		{
			name: "min above max",
			body: "parameters:\n  wage_premium: {default: 0.1, min: 0.3, max: 0.2}\n",
			want: "must be below max",
		},
		{
			name: "fractional term",
			body: "parameters:\n  mortgage_term_years: {default: 22.5, min: 15, max: 30}\n",
			want: "whole number",
		},
		{
			name: "unknown citation",
			body: "parameters:\n  labor_share: {default: 0.4, min: 0.25, max: 0.55, citation: blog}\n",
			want: "unknown source",
		},
		{
			name: "duplicate scenarios",
			body: "scenarios:\n  - {name: A, labor_share: 0.4, wage_premium: 0.1}\n  - {name: A, labor_share: 0.4, wage_premium: 0.2}\n",
			want: "scenarios invalid",
		},
		{
			name: "scenario out of range",
			body: "scenarios:\n  - {name: A, labor_share: 0.9, wage_premium: 0.1}\n",
			want: "scenarios invalid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadUnchecked_DoesNotValidate(t *testing.T) {
	path := writeConfig(t, "parameters:\n  lot_size: {default: 1, min: 0, max: 2}\n")
	c, err := LoadUnchecked(path)
	require.NoError(t, err)
	assert.Contains(t, c.Parameters, "lot_size")
	assert.Error(t, c.Validate())
}

func TestMerge_ServerZeroValuesKeepBase(t *testing.T) {
	base := &Config{Server: ServerConfig{Port: "8080", RateLimitRPS: 20, AllowedOrigins: []string{"*"}}}
	out := Merge(base, &Config{Server: ServerConfig{Env: "production"}})

	assert.Equal(t, "8080", out.Server.Port)
	assert.Equal(t, 20.0, out.Server.RateLimitRPS)
	assert.Equal(t, []string{"*"}, out.Server.AllowedOrigins)
	assert.Equal(t, "production", out.Server.Env)
}
