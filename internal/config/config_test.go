package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "LOG_LEVEL", "ANALYZER_PROVIDER", "ANALYZER_RPS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, AnalyzerLocal, cfg.AnalyzerProvider)
	assert.InDelta(t, 2.0, cfg.AnalyzerRPS, 1e-9)
}

func TestLoadAnalyzerRPS(t *testing.T) {
	t.Setenv("ANALYZER_RPS", "0.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cfg.AnalyzerRPS, 1e-9)
}

func TestLoadAnalyzerRPSInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "fast"},
		{"zero", "0"},
		{"negative", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ANALYZER_RPS", tt.value)
			cfg, err := Load()
			require.NoError(t, err)
			assert.InDelta(t, 2.0, cfg.AnalyzerRPS, 1e-9, "bad values fall back to the default")
		})
	}
}

func TestLoadRemoteRequiresURL(t *testing.T) {
	t.Setenv("ANALYZER_PROVIDER", "remote")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANALYZER_URL")
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("ANALYZER_PROVIDER", "psychic")

	_, err := Load()
	require.Error(t, err)
}
