package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "images", s.ImageDir)
	assert.Equal(t, "output", s.OutputDir)
	assert.Equal(t, "sample", s.Implementation)
	assert.Equal(t, uint16(100), s.MaxCandidates)
	assert.Equal(t, uint64(1<<30), s.ReferenceDatabaseMaxSize)
	assert.Equal(t, runtime.NumCPU(), s.Workers)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, 24*time.Hour, s.Log.RotationTime)
	assert.Equal(t, 7*24*time.Hour, s.Log.MaxAge)
	assert.Empty(t, s.ResultsDatabase)
	assert.NoError(t, s.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elft.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
image_dir = "/data/elft/images"
workers = 2
max_candidates = 20
results_database = "runs.db"

[log]
dir = "/var/log/elft"
level = "debug"
rotation_time = "1h"
`), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/elft/images", s.ImageDir)
	assert.Equal(t, "output", s.OutputDir)
	assert.Equal(t, 2, s.Workers)
	assert.Equal(t, uint16(20), s.MaxCandidates)
	assert.Equal(t, "runs.db", s.ResultsDatabase)
	assert.Equal(t, "/var/log/elft", s.Log.Dir)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, time.Hour, s.Log.RotationTime)
	assert.Equal(t, 7*24*time.Hour, s.Log.MaxAge)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elft.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_candidate = 5\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown keys")
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elft.toml")
	require.NoError(t, os.WriteFile(path, []byte("implementation = \"\"\n[log]\nlevel = \"loud\"\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "implementation is required")
	assert.ErrorContains(t, err, `unknown log level "loud"`)
}

func TestLoadConfigSetsGlobal(t *testing.T) {
	LoadDefaultConfig()
	require.NotNil(t, Config)
	Config.Workers = 1

	path := filepath.Join(t.TempDir(), "elft.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = 3\n"), 0644))
	require.NoError(t, LoadConfig(path))
	assert.Equal(t, 3, Config.Workers)

	assert.Error(t, LoadConfig(filepath.Join(t.TempDir(), "missing.toml")))
	assert.Equal(t, 3, Config.Workers)
}
