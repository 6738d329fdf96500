package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisabledByDefault(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := New(Options{Dir: dir})
	require.NoError(t, err)
	defer cleanup()

	logger.Info("discarded")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file without debug")
}

func TestNewWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	opts := Options{Debug: true, Dir: dir}
	logger, cleanup, err := New(opts)
	require.NoError(t, err)

	logger.Debug("sequence started")
	cleanup()

	data, err := os.ReadFile(opts.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "sequence started")
}

func TestNewRotatesOversizedLog(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Debug: true, Dir: dir, MaxSize: 1}
	require.NoError(t, os.WriteFile(opts.Path(), make([]byte, 1<<20), 0o644))

	logger, cleanup, err := New(opts)
	require.NoError(t, err)
	logger.Info("fresh")
	cleanup()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2, "active file plus one backup")

	var backup os.FileInfo
	for _, e := range entries {
		if e.Name() != filepath.Base(opts.Path()) {
			backup, err = e.Info()
			require.NoError(t, err)
		}
	}
	require.NotNil(t, backup)
	assert.True(t, strings.HasPrefix(backup.Name(), "star-hauler-"))
	assert.EqualValues(t, 1<<20, backup.Size())

	data, err := os.ReadFile(opts.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "fresh")
	assert.Less(t, len(data), 1<<20)
}

func TestNewKeepsSmallLog(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Debug: true, Dir: dir}
	require.NoError(t, os.WriteFile(opts.Path(), []byte("previous\n"), 0o644))

	logger, cleanup, err := New(opts)
	require.NoError(t, err)
	logger.Info("appended")
	cleanup()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no backup below the size limit")

	data, err := os.ReadFile(opts.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "previous")
	assert.Contains(t, string(data), "appended")
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, 10, o.MaxSize)
	assert.Equal(t, 1, o.MaxBackups)
}

func TestOptionsPathDefaults(t *testing.T) {
	assert.Equal(t, filepath.Join("logs", "star-hauler.log"), Options{}.Path())
}
