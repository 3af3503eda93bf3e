package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MODEL_PROVIDER", "BEDROCK_MODEL_ID", "MAX_TOKENS", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "bedrock", cfg.ModelProvider)
	assert.Equal(t, "anthropic.claude-3-haiku-20240307-v1:0", cfg.BedrockModelID)
	assert.Equal(t, 500, cfg.MaxTokens)
	assert.False(t, cfg.Debug)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MODEL_PROVIDER", "openai")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("MAX_TOKENS", "256")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "openai", cfg.ModelProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 256, cfg.MaxTokens)
	assert.True(t, cfg.Debug)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("MAX_TOKENS", "lots")
	t.Setenv("DEBUG", "maybe")

	cfg := Load()
	assert.Equal(t, 500, cfg.MaxTokens)
	assert.False(t, cfg.Debug)
}
