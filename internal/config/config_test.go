package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/campus")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoadMissingRequired(t *testing.T) {
	tcases := []string{"DATABASE_URL", "REDIS_URL", "JWT_SECRET"}
	for _, missing := range tcases {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(missing, "")

			_, err := Load()
			assert.ErrorContains(t, err, missing)
		})
	}
}

func TestLoadTokenTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)

	t.Setenv("TOKEN_TTL", "soon")
	_, err = Load()
	assert.Error(t, err)
}
