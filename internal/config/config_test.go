package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.StrictOrder)
}

func TestLoadLayersFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "rate: 200\nretainer: 1000\nshow_intervals: true\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, cfg.Rate, 1e-9)
	assert.InDelta(t, 1000.0, cfg.Retainer, 1e-9)
	assert.True(t, cfg.ShowIntervals)
	assert.True(t, cfg.StrictOrder, "unset keys keep their defaults")
	assert.False(t, cfg.ShowDailyEarnings)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rate: -5\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "rate must not be negative")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config file")
}
