package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PRODUCTION", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "secret", cfg.CookieSecret)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "./public", cfg.PublicDir)
	assert.False(t, cfg.SessionStrict)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PRODUCTION", "1")
	t.Setenv("PORT", "7000")
	t.Setenv("COOKIE_SECRET", "hunter2")
	t.Setenv("DATA_DIR", "/var/lib/photofeed")
	t.Setenv("SESSION_STRICT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "hunter2", cfg.CookieSecret)
	assert.Equal(t, "/var/lib/photofeed", cfg.DataDir)
	assert.True(t, cfg.SessionStrict)
}
