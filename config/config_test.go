package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENABLE_JOBS", "")

	cfg := Load()

	assert.Equal(t, "8002", cfg.Port)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Empty(t, cfg.JWTSecret)
	assert.True(t, cfg.EnableJobs)
}

func TestValidate_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.ErrorIs(t, Load().Validate(), ErrMissingJWTSecret)

	t.Setenv("JWT_SECRET", "s3cret")
	assert.NoError(t, Load().Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "cz")
	t.Setenv("ENABLE_JOBS", "off")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 6543, cfg.DBPort)
	assert.False(t, cfg.EnableJobs)
	assert.Contains(t, cfg.DSN(), "host=db port=6543")
	assert.Contains(t, cfg.DSN(), "dbname=cz")
}

func TestLoad_BadPortFallsBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	assert.Equal(t, 5432, Load().DBPort)
}
