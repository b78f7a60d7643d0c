package renamer

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/aleister1102/difftrim/internal/config"
	"github.com/aleister1102/difftrim/internal/errorwrapper"
	"github.com/rs/zerolog"
)

// timestampPattern matches filenames carrying a trailing timestamp in one of
// two shapes:
//  1. <desc>-YYYY-MM-DD-HH-MM-SS-AM|PM
//  2. <desc>-YYYY-MM-DD_-_HH-MM-SS(-AM|PM)
var timestampPattern = regexp.MustCompile(`(.+)-(\d{4}-\d+-\d+(?:-\d+-\d+-\d+-\w+|_-_\d+-\d+-\d+(?:-\w+)?))`)

// Rename is one pending rename of Plan
type Rename struct {
	Path    string // current full path
	NewName string // new base name in the same directory
}

// NewPath returns the destination path of the rename
func (r Rename) NewPath() string {
	return filepath.Join(filepath.Dir(r.Path), r.NewName)
}

// ApplyResult summarizes an executed plan
type ApplyResult struct {
	Renamed int
	Failed  int
}

// Renamer normalizes file names under a directory tree. Plan computes the
// pending renames without touching anything (dry run); Apply executes a plan.
type Renamer struct {
	cfg    config.RenamerConfig
	logger zerolog.Logger
}

// RenamerBuilder provides a fluent interface for creating a Renamer
type RenamerBuilder struct {
	cfg    config.RenamerConfig
	logger zerolog.Logger
}

// NewRenamerBuilder creates a new builder
func NewRenamerBuilder() *RenamerBuilder {
	return &RenamerBuilder{
		cfg:    config.NewDefaultRenamerConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig sets the renamer configuration
func (b *RenamerBuilder) WithConfig(cfg config.RenamerConfig) *RenamerBuilder {
	b.cfg = cfg
	return b
}

// WithLogger sets the logger
func (b *RenamerBuilder) WithLogger(logger zerolog.Logger) *RenamerBuilder {
	b.logger = logger
	return b
}

// Build creates a new Renamer instance
func (b *RenamerBuilder) Build() (*Renamer, error) {
	if !b.cfg.SanitizeNames && !b.cfg.MoveTimestamp {
		return nil, errorwrapper.NewValidationError("renamer_config", b.cfg, "at least one of sanitize_names or move_timestamp must be enabled")
	}

	return &Renamer{
		cfg:    b.cfg,
		logger: b.logger.With().Str("component", "Renamer").Logger(),
	}, nil
}

// Transform returns the normalized form of a file name
func (r *Renamer) Transform(name string) string {
	if r.cfg.MoveTimestamp {
		name = timestampPattern.ReplaceAllString(name, "${2}-${1}")
	}
	if r.cfg.SanitizeNames {
		name = Sanitize(name)
	}
	return name
}

// Plan walks root and returns every file whose name would change
func (r *Renamer) Plan(root string) ([]Rename, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorwrapper.NewNotFoundError(root, err)
		}
		return nil, errorwrapper.NewIOError("stat", root, err)
	}
	if !info.IsDir() {
		return nil, errorwrapper.NewValidationError("root", root, "is not a directory")
	}

	var plan []Rename
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		newName := r.Transform(d.Name())
		if newName != d.Name() && newName != "" {
			plan = append(plan, Rename{Path: path, NewName: newName})
		}
		return nil
	})
	if walkErr != nil {
		return nil, errorwrapper.WrapError(walkErr, "failed to walk directory: "+root)
	}

	r.logger.Debug().Str("root", root).Int("pending", len(plan)).Msg("Rename plan computed")
	return plan, nil
}

// Apply executes a plan. Renames that would clobber an existing file are
// counted as failures and skipped.
func (r *Renamer) Apply(plan []Rename) ApplyResult {
	result := ApplyResult{}

	for _, rename := range plan {
		newPath := rename.NewPath()

		if _, err := os.Stat(newPath); err == nil {
			r.logger.Error().Str("from", rename.Path).Str("to", newPath).Msg("Destination already exists, skipping")
			result.Failed++
			continue
		}

		if err := os.Rename(rename.Path, newPath); err != nil {
			r.logger.Error().Err(err).Str("from", rename.Path).Str("to", newPath).Msg("Failed to rename file")
			result.Failed++
			continue
		}

		r.logger.Debug().Str("from", rename.Path).Str("to", newPath).Msg("Renamed file")
		result.Renamed++
	}

	r.logger.Info().Int("renamed", result.Renamed).Int("failed", result.Failed).Msg("Rename plan applied")
	return result
}
