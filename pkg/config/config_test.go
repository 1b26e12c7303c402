package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.HTTPAddr)
	assert.Equal(t, "db.json", cfg.StorePath)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.Production())
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:5173")
	assert.Empty(t, cfg.ForceSoldOutIDs)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://matexshoes.example,https://api.matexshoes.example")
	t.Setenv("FORCE_SOLD_OUT_IDS", "8,12,13")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.True(t, cfg.Production())
	assert.Equal(t, []string{"https://matexshoes.example", "https://api.matexshoes.example"}, cfg.AllowedOrigins)
	assert.Equal(t, []int64{8, 12, 13}, cfg.ForceSoldOutIDs)
}
