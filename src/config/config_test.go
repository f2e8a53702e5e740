package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DEBUG", "LOG_LEVEL", "DATABASE_PATH", "ALLOWED_ORIGINS", "RATE_LIMIT_BURST", "WRITE_TIMEOUT"} {
		t.Setenv(key, "")
	}
	// Typed settings fall back on empty values, string settings keep them.
	t.Setenv("PORT", "5000")

	LoadConfig()
	require.NotNil(t, Cfg)

	assert.Equal(t, "5000", Cfg.Port)
	assert.False(t, Cfg.Debug)
	assert.Equal(t, 30, Cfg.RateLimitBurst)
	assert.Equal(t, 100*time.Millisecond, Cfg.RateLimitInterval)
	assert.Equal(t, time.Duration(0), Cfg.WriteTimeout)
	assert.Empty(t, Cfg.AllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DEBUG", "true")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DATABASE_PATH", "/tmp/x.db")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example,,")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("RATE_LIMIT_INTERVAL", "1s")

	LoadConfig()

	assert.Equal(t, "8081", Cfg.Port)
	assert.True(t, Cfg.Debug)
	assert.Equal(t, "debug", Cfg.LogLevel, "DEBUG forces the debug log level")
	assert.Equal(t, "/tmp/x.db", Cfg.DatabasePath)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, Cfg.AllowedOrigins)
	assert.Equal(t, 5, Cfg.RateLimitBurst)
	assert.Equal(t, time.Second, Cfg.RateLimitInterval)
}

func TestEnvParsers_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T)
	}{
		{
			name:  "int",
			value: "abc",
			check: func(t *testing.T) { assert.Equal(t, 7, getEnvAsInt("TEST_VALUE", 7)) },
		},
		{
			name:  "bool",
			value: "maybe",
			check: func(t *testing.T) { assert.True(t, getEnvAsBool("TEST_VALUE", true)) },
		},
		{
			name:  "duration",
			value: "soon",
			check: func(t *testing.T) { assert.Equal(t, time.Minute, getEnvAsDuration("TEST_VALUE", time.Minute)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_VALUE", tt.value)
			tt.check(t)
		})
	}
}

func TestLoadConfig_NonPositiveBurst(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "0")
	LoadConfig()
	assert.Equal(t, 30, Cfg.RateLimitBurst)
}
