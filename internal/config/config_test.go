package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "http://localhost:5173", cfg.PublicBaseURL)
	assert.Equal(t, "models", cfg.StorageBucket)
	assert.False(t, cfg.StorageUseSSL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADMIN_TOKEN", "s3cret")
	t.Setenv("PUBLIC_BASE_URL", "https://view.example.com")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "s3cret", cfg.AdminToken)
	assert.Equal(t, "https://view.example.com", cfg.PublicBaseURL)
	assert.True(t, cfg.StorageUseSSL)
	assert.True(t, cfg.IsProduction())
}

func TestValidateRequiresAdminToken(t *testing.T) {
	cfg := Load()
	cfg.AdminToken = ""
	assert.Error(t, cfg.Validate())

	cfg.AdminToken = "s3cret"
	require.NoError(t, cfg.Validate())

	cfg.DatabaseURL = ""
	assert.Error(t, cfg.Validate())
}
