package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME_MINUTES", "DB_CONN_MAX_IDLE_MINUTES",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "crewforge", cfg.User)
	assert.Equal(t, "crewforge", cfg.Database)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
}

func TestLoadConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_MAX_OPEN_CONNS", "40")
	t.Setenv("DB_CONN_MAX_LIFETIME_MINUTES", "5")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 6432, cfg.Port)
	assert.Equal(t, 40, cfg.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
}

func TestLoadConfigFromEnvRejectsBadPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	_, err := LoadConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestIntEnvOrDefaultIgnoresGarbage(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "many")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxIdleConns)
}
