package truncate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/difftrim/internal/config"
	"github.com/aleister1102/difftrim/internal/errorwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateFile_WritesTruncatedOutput(t *testing.T) {
	tempDir := t.TempDir()
	inputPath := filepath.Join(tempDir, "input.diff")
	outputPath := filepath.Join(tempDir, "output.diff")

	content := buildSection("big.har", 30) + buildSection("small.py", 2)
	require.NoError(t, os.WriteFile(inputPath, []byte(content), 0644))

	truncator := newTruncator(t, config.TruncateConfig{
		KeepLines:       10,
		MatchExtensions: []string{".har"},
	})

	stats, err := truncator.TruncateFile(inputPath, outputPath)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.SectionsTotal)
	assert.Equal(t, 1, stats.SectionsTruncated)
	assert.Equal(t, 20, stats.LinesRemoved)

	written, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), "... 20 lines omitted ...")
	assert.Contains(t, string(written), buildSection("small.py", 2))
}

func TestTruncateFile_EmptyInputProducesEmptyOutput(t *testing.T) {
	tempDir := t.TempDir()
	inputPath := filepath.Join(tempDir, "empty.diff")
	outputPath := filepath.Join(tempDir, "out.diff")
	require.NoError(t, os.WriteFile(inputPath, []byte{}, 0644))

	truncator := newTruncator(t, config.NewDefaultTruncateConfig())

	stats, err := truncator.TruncateFile(inputPath, outputPath)

	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)

	written, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestTruncateFile_MissingInput(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "out.diff")

	truncator := newTruncator(t, config.NewDefaultTruncateConfig())

	_, err := truncator.TruncateFile(filepath.Join(tempDir, "missing.diff"), outputPath)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrNotFound))

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr), "no output file should be created on failure")
}

func TestTruncateFile_OutputDirectoryIsCreated(t *testing.T) {
	tempDir := t.TempDir()
	inputPath := filepath.Join(tempDir, "input.diff")
	outputPath := filepath.Join(tempDir, "nested", "dir", "out.diff")
	require.NoError(t, os.WriteFile(inputPath, []byte(buildSection("a.go", 1)), 0644))

	truncator := newTruncator(t, config.NewDefaultTruncateConfig())

	_, err := truncator.TruncateFile(inputPath, outputPath)

	require.NoError(t, err)
	assert.FileExists(t, outputPath)
}
