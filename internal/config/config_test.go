package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, 100, cfg.Analysis.HistogramBins)
	assert.Equal(t, 0.5, cfg.Analysis.HistogramAlpha)
	assert.True(t, filepath.IsAbs(cfg.Paths.DataDir))
	assert.True(t, filepath.IsAbs(cfg.Paths.OutputDir))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EXPRALIGN_LOGGING_LEVEL", "debug")
	t.Setenv("EXPRALIGN_ANALYSIS_HISTOGRAM_BINS", "50")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 50, cfg.Analysis.HistogramBins)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "analysis:\n  histogram_bins: 25\n  histogram_alpha: 0.7\nlogging:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Analysis.HistogramBins)
	assert.Equal(t, 0.7, cfg.Analysis.HistogramAlpha)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "console", cfg.Logging.Output)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0644))
	t.Setenv("EXPRALIGN_LOGGING_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "EXPRALIGN_LOGGING_LEVEL", "verbose"},
		{"bad output mode", "EXPRALIGN_LOGGING_OUTPUT", "syslog"},
		{"zero bins", "EXPRALIGN_ANALYSIS_HISTOGRAM_BINS", "0"},
		{"alpha above 1", "EXPRALIGN_ANALYSIS_HISTOGRAM_ALPHA", "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation")
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: ["), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
