package filemanager

import (
	"os"
	"path/filepath"

	"github.com/aleister1102/difftrim/internal/errorwrapper"
	"github.com/rs/zerolog"
)

// FileWriter handles file writing operations
type FileWriter struct {
	logger zerolog.Logger
}

// NewFileWriter creates a new FileWriter instance
func NewFileWriter(logger zerolog.Logger) *FileWriter {
	return &FileWriter{
		logger: logger.With().Str("component", "FileWriter").Logger(),
	}
}

// WriteFile writes data to a file with the given options. With Atomic set,
// the data lands in a temp file in the destination directory and is renamed
// into place, so the target is either fully written or untouched.
func (fw *FileWriter) WriteFile(path string, data []byte, opts FileWriteOptions) error {
	if opts.Atomic {
		return fw.writeFileAtomic(path, data, opts)
	}
	return fw.writeFileDirect(path, data, opts)
}

func (fw *FileWriter) writeFileDirect(path string, data []byte, opts FileWriteOptions) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, opts.Permissions)
	if err != nil {
		return errorwrapper.NewIOError("create", path, err)
	}

	_, writeErr := file.Write(data)
	closeErr := file.Close()
	if writeErr != nil {
		return errorwrapper.NewIOError("write", path, writeErr)
	}
	if closeErr != nil {
		return errorwrapper.NewIOError("close", path, closeErr)
	}

	fw.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("File written successfully")
	return nil
}

func (fw *FileWriter) writeFileAtomic(path string, data []byte, opts FileWriteOptions) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errorwrapper.NewIOError("create", path, err)
	}
	tmpPath := tmpFile.Name()

	cleanup := func() {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
			fw.logger.Warn().Err(removeErr).Str("path", tmpPath).Msg("Failed to remove temp file")
		}
	}

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return errorwrapper.NewIOError("write", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		cleanup()
		return errorwrapper.NewIOError("close", path, err)
	}
	if err := os.Chmod(tmpPath, opts.Permissions); err != nil {
		cleanup()
		return errorwrapper.NewIOError("chmod", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return errorwrapper.NewIOError("rename", path, err)
	}

	fw.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("File written atomically")
	return nil
}
