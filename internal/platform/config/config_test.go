package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/club")
	t.Setenv("IS_PRODUCTION", "false")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/club", cfg.DatabaseURL)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Empty(t, cfg.APIKeys)
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()

	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("API_KEYS", "bank-import:k-1, payroll:k-2")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, map[string]string{"k-1": "bank-import", "k-2": "payroll"}, cfg.APIKeys)
}

func TestParseAPIKeys_Invalid(t *testing.T) {
	for _, raw := range []string{"nokey", ":k", "p:"} {
		_, err := parseAPIKeys(raw)
		assert.Error(t, err, raw)
	}
}
