package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandram-Dutta/Hyena/internal/signal"
)

func TestLoadThresholds_MissingFileReturnsDefaults(t *testing.T) {
	th, err := LoadThresholds(filepath.Join(t.TempDir(), "hyena.yaml"))
	require.NoError(t, err)
	assert.Equal(t, signal.Defaults(), th)
}

func TestLoadThresholds_OverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hyena.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
thresholds:
  godFileReport: 20
  godFileError: 30
`), 0o644))

	th, err := LoadThresholds(path)
	require.NoError(t, err)
	assert.Equal(t, 20, th.GodFileReport)
	assert.Equal(t, 30, th.GodFileError)
	assert.Equal(t, signal.Defaults().BlastRadiusReport, th.BlastRadiusReport)
}

func TestLoadThresholds_MalformedYAMLIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hyena.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))

	_, err := LoadThresholds(path)
	assert.Error(t, err)
}
