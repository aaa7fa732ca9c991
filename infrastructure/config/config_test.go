package config

import (
	"testing"
	"time"

	apperrors "narad-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.EnableCORS)
	assert.Equal(t, 0.7, cfg.Generation.Temperature)
	assert.Equal(t, 2000, cfg.Generation.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, 20, cfg.Generation.MinEnhancementLength)
	assert.Equal(t, 10000, cfg.Session.Capacity)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10, cfg.Session.HistoryWindow)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9000")
	t.Setenv("GENERATION_TEMPERATURE", "0.3")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ServerAddress)
	assert.Equal(t, 0.3, cfg.Generation.Temperature)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.False(t, cfg.EnableMetrics)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("GENERATION_MAX_TOKENS", "not-a-number")
	t.Setenv("SESSION_TTL", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2000, cfg.Generation.MaxTokens)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
}

func TestValidate(t *testing.T) {
	t.Run("production requires api key", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("GEMINI_API_KEY", "")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("development runs without api key", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "development")
		t.Setenv("GEMINI_API_KEY", "")

		_, err := LoadConfig()
		assert.NoError(t, err)
	})

	t.Run("nonpositive session capacity rejected", func(t *testing.T) {
		t.Setenv("SESSION_CAPACITY", "0")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}
