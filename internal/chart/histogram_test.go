package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStdDevHistogram(t *testing.T) {
	std := map[string]float64{
		"BRCA1": 0.8,
		"TP53":  1.4,
		"EGFR":  2.1,
	}
	path := filepath.Join(t.TempDir(), "figures", "std_histogram.png")

	err := SaveStdDevHistogram(std, path, DefaultHistogramConfig())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveStdDevHistogram_ZeroBinsUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.png")
	err := SaveStdDevHistogram(map[string]float64{"G1": 1.0, "G2": 2.0}, path, HistogramConfig{Bins: 0, Alpha: 0.5})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestSaveStdDevHistogram_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.png")

	t.Run("empty series", func(t *testing.T) {
		err := SaveStdDevHistogram(nil, path, DefaultHistogramConfig())
		require.Error(t, err)
	})

	t.Run("alpha out of range", func(t *testing.T) {
		err := SaveStdDevHistogram(map[string]float64{"G1": 1.0}, path, HistogramConfig{Bins: 10, Alpha: 1.5})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "alpha")
	})
}
