package cleaner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/difftrim/internal/config"
	"github.com/aleister1102/difftrim/internal/errorwrapper"
	"github.com/rs/zerolog"
)

// CleanResult summarizes one cleanup run
type CleanResult struct {
	LogFilesRemoved int
	DirsRemoved     int
	Failures        int
}

// Cleaner removes development artifacts from a workspace: rotated log files
// and throwaway cache directories. Per-item failures are logged and counted,
// never fatal.
type Cleaner struct {
	cfg    config.CleanerConfig
	logger zerolog.Logger
}

// CleanerBuilder provides a fluent interface for creating a Cleaner
type CleanerBuilder struct {
	cfg    config.CleanerConfig
	logger zerolog.Logger
}

// NewCleanerBuilder creates a new builder
func NewCleanerBuilder() *CleanerBuilder {
	return &CleanerBuilder{
		cfg:    config.NewDefaultCleanerConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig sets the cleaner configuration
func (b *CleanerBuilder) WithConfig(cfg config.CleanerConfig) *CleanerBuilder {
	b.cfg = cfg
	return b
}

// WithLogger sets the logger
func (b *CleanerBuilder) WithLogger(logger zerolog.Logger) *CleanerBuilder {
	b.logger = logger
	return b
}

// Build creates a new Cleaner instance
func (b *CleanerBuilder) Build() (*Cleaner, error) {
	if b.cfg.LogsDir == "" {
		return nil, errorwrapper.NewValidationError("logs_dir", b.cfg.LogsDir, "logs directory cannot be empty")
	}

	return &Cleaner{
		cfg:    b.cfg,
		logger: b.logger.With().Str("component", "Cleaner").Logger(),
	}, nil
}

// Clean removes artifacts under root and returns a summary. The root must
// exist; everything below that is best-effort.
func (c *Cleaner) Clean(root string) (CleanResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return CleanResult{}, errorwrapper.NewNotFoundError(root, err)
		}
		return CleanResult{}, errorwrapper.NewIOError("stat", root, err)
	}
	if !info.IsDir() {
		return CleanResult{}, errorwrapper.NewValidationError("root", root, "is not a directory")
	}

	result := CleanResult{}
	c.removeLogFiles(filepath.Join(root, c.cfg.LogsDir), &result)
	c.removeArtifactDirs(root, &result)

	c.logger.Info().
		Int("log_files_removed", result.LogFilesRemoved).
		Int("dirs_removed", result.DirsRemoved).
		Int("failures", result.Failures).
		Msg("Cleanup completed")

	return result, nil
}

// removeLogFiles removes *.log and rotated *.log.* files from the logs directory
func (c *Cleaner) removeLogFiles(logsDir string, result *CleanResult) {
	entries, err := os.ReadDir(logsDir)
	if err != nil {
		if os.IsNotExist(err) {
			c.logger.Warn().Str("dir", logsDir).Msg("Logs directory does not exist, skipping")
			return
		}
		c.logger.Error().Err(err).Str("dir", logsDir).Msg("Failed to scan logs directory")
		result.Failures++
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !isLogFile(entry.Name()) {
			continue
		}

		path := filepath.Join(logsDir, entry.Name())
		if err := os.Remove(path); err != nil {
			c.logger.Error().Err(err).Str("path", path).Msg("Failed to remove log file")
			result.Failures++
			continue
		}

		c.logger.Debug().Str("path", path).Msg("Removed log file")
		result.LogFilesRemoved++
	}
}

// isLogFile matches foo.log and rotated variants like foo.log.1 or foo.log.2006-01-02
func isLogFile(name string) bool {
	return strings.HasSuffix(name, ".log") || strings.Contains(name, ".log.")
}

// removeArtifactDirs walks root and removes every directory whose base name
// is in the configured artifact list
func (c *Cleaner) removeArtifactDirs(root string, result *CleanResult) {
	targets := make(map[string]struct{}, len(c.cfg.ArtifactDirs))
	for _, dir := range c.cfg.ArtifactDirs {
		targets[dir] = struct{}{}
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Error().Err(err).Str("path", path).Msg("Failed to visit path")
			result.Failures++
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}

		if _, ok := targets[d.Name()]; !ok {
			return nil
		}

		if err := os.RemoveAll(path); err != nil {
			c.logger.Error().Err(err).Str("path", path).Msg("Failed to remove artifact directory")
			result.Failures++
			return filepath.SkipDir
		}

		c.logger.Debug().Str("path", path).Msg("Removed artifact directory")
		result.DirsRemoved++
		return filepath.SkipDir
	})
	if walkErr != nil {
		c.logger.Error().Err(walkErr).Str("root", root).Msg("Artifact directory walk failed")
		result.Failures++
	}
}
