package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("DISCORD_APP_ID", "app-456")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.Discord.Token)
	assert.Equal(t, "app-456", cfg.Discord.AppID)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, "claude-sonnet-4-0", cfg.Anthropic.Model)
	assert.Equal(t, 1024, cfg.Anthropic.MaxTokens)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("DISCORD_APP_ID", "app-456")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ANTHROPIC_MODEL", "claude-opus-4-1")
	t.Setenv("ANTHROPIC_MAX_TOKENS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "claude-opus-4-1", cfg.Anthropic.Model)
	assert.Equal(t, 1024, cfg.Anthropic.MaxTokens, "bad int falls back to the default")
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "app-456")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	_, err := Load()
	assert.ErrorContains(t, err, "DISCORD_TOKEN")

	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err = Load()
	assert.ErrorContains(t, err, "ANTHROPIC_API_KEY")
}
