package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifill-labs/unifill-cli/internal/core/domain"
)

// TestConfigStore_LoadDefaults tests a missing file yields the defaults
func TestConfigStore_LoadDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

// TestConfigStore_SaveAndLoad tests the TOML round trip
func TestConfigStore_SaveAndLoad(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	want := domain.Config{
		Backend:            domain.BackendTextFull,
		Dataset:            domain.DatasetExtended,
		ResultsLimit:       50,
		SourcePath:         "/tmp/unicode_data.txt",
		SearchCommand:      "ugrep",
		EnableTextBackends: true,
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want.Normalised(), got)
}

// TestConfigStore_LoadClampsLimit tests over-limit values in the file
func TestConfigStore_LoadClampsLimit(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	content := "backend = \"table\"\nresults_limit = 99999\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.MaxResultsLimit, cfg.ResultsLimit)
}

// TestConfigStore_RejectsUnknownBackend tests invalid kinds fail loudly
func TestConfigStore_RejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	content := "backend = \"carrier-pigeon\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	_, err = store.Load()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestConfigStore_RejectsMalformedTOML tests parse errors surface
func TestConfigStore_RejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err = store.Load()
	assert.Error(t, err)
}
