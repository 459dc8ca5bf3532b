package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"WEATHER_API_URL", "WEATHER_API_PORT", "WEATHER_API_LATENCY",
		"WEATHER_DB_PATH", "WEATHER_RATE_LIMIT", "WEATHER_LOG_FILE", "WEATHER_DEBUG",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 800*time.Millisecond, cfg.Latency)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, 10.0, cfg.RateLimit)
	assert.False(t, cfg.Debug)
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WEATHER_API_URL", "http://api.test:9000")
	t.Setenv("WEATHER_API_PORT", "9000")
	t.Setenv("WEATHER_API_LATENCY", "0s")
	t.Setenv("WEATHER_DB_PATH", "/tmp/favorites.db")
	t.Setenv("WEATHER_RATE_LIMIT", "0")
	t.Setenv("WEATHER_LOG_FILE", "dash.log")
	t.Setenv("WEATHER_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.test:9000", cfg.APIURL)
	assert.Equal(t, 9000, cfg.Port)
	assert.Zero(t, cfg.Latency)
	assert.Equal(t, "/tmp/favorites.db", cfg.DBPath)
	assert.Zero(t, cfg.RateLimit)
	assert.Equal(t, "dash.log", cfg.LogFile)
	assert.True(t, cfg.Debug)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"WEATHER_API_PORT", "abc"},
		{"WEATHER_API_PORT", "70000"},
		{"WEATHER_API_LATENCY", "soon"},
		{"WEATHER_API_LATENCY", "-1s"},
		{"WEATHER_RATE_LIMIT", "-2"},
		{"WEATHER_DEBUG", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
