package cleaner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/difftrim/internal/config"
	"github.com/aleister1102/difftrim/internal/errorwrapper"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCleaner(t *testing.T, cfg config.CleanerConfig) *Cleaner {
	t.Helper()
	c, err := NewCleanerBuilder().
		WithConfig(cfg).
		WithLogger(zerolog.Nop()).
		Build()
	require.NoError(t, err)
	return c
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestCleanerBuilder_RejectsEmptyLogsDir(t *testing.T) {
	_, err := NewCleanerBuilder().
		WithConfig(config.CleanerConfig{LogsDir: ""}).
		Build()

	assert.Error(t, err)
}

func TestCleaner_RemovesLogFilesAndArtifactDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "logs", "app.log"))
	writeFile(t, filepath.Join(root, "logs", "app.log.1"))
	writeFile(t, filepath.Join(root, "logs", "app.log.2026-01-15"))
	writeFile(t, filepath.Join(root, "logs", "notes.txt"))
	writeFile(t, filepath.Join(root, "tmp", "scratch.bin"))
	writeFile(t, filepath.Join(root, "src", ".cache", "entry"))
	writeFile(t, filepath.Join(root, "src", "main.go"))

	c := newCleaner(t, config.NewDefaultCleanerConfig())

	result, err := c.Clean(root)

	require.NoError(t, err)
	assert.Equal(t, 3, result.LogFilesRemoved)
	assert.Equal(t, 2, result.DirsRemoved)
	assert.Equal(t, 0, result.Failures)

	assert.FileExists(t, filepath.Join(root, "logs", "notes.txt"))
	assert.FileExists(t, filepath.Join(root, "src", "main.go"))
	assert.NoDirExists(t, filepath.Join(root, "tmp"))
	assert.NoDirExists(t, filepath.Join(root, "src", ".cache"))
}

func TestCleaner_MissingLogsDirIsNotFatal(t *testing.T) {
	root := t.TempDir()

	c := newCleaner(t, config.NewDefaultCleanerConfig())

	result, err := c.Clean(root)

	require.NoError(t, err)
	assert.Equal(t, 0, result.LogFilesRemoved)
	assert.Equal(t, 0, result.Failures)
}

func TestCleaner_MissingRoot(t *testing.T) {
	c := newCleaner(t, config.NewDefaultCleanerConfig())

	_, err := c.Clean(filepath.Join(t.TempDir(), "does-not-exist"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrNotFound))
}

func TestCleaner_CustomArtifactDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "index.js"))
	writeFile(t, filepath.Join(root, "tmp", "keep.me"))

	c := newCleaner(t, config.CleanerConfig{
		LogsDir:      "logs",
		ArtifactDirs: []string{"node_modules"},
	})

	result, err := c.Clean(root)

	require.NoError(t, err)
	assert.Equal(t, 1, result.DirsRemoved)
	assert.NoDirExists(t, filepath.Join(root, "node_modules"))
	assert.FileExists(t, filepath.Join(root, "tmp", "keep.me"))
}

func TestIsLogFile(t *testing.T) {
	assert.True(t, isLogFile("app.log"))
	assert.True(t, isLogFile("app.log.1"))
	assert.True(t, isLogFile("app.log.2026-01-15"))
	assert.False(t, isLogFile("logbook.txt"))
	assert.False(t, isLogFile("catalog"))
}
