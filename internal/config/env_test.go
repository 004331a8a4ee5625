package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skirmish/internal/config"
)

func TestParseEnv_Defaults(t *testing.T) {
	var cfg config.ServerEnv
	require.NoError(t, config.ParseEnv(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("BATTLED_ADDR", ":9999")
	t.Setenv("BATTLED_MAX_ROUNDS", "250")

	var cfg config.ServerEnv
	require.NoError(t, config.ParseEnv(&cfg))
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 250, cfg.MaxRounds)
}

func TestParseEnv_BadValue(t *testing.T) {
	t.Setenv("BATTLED_MAX_ROUNDS", "not-a-number")

	var cfg config.ServerEnv
	err := config.ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
