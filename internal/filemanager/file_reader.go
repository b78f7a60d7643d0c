package filemanager

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/aleister1102/difftrim/internal/errorwrapper"
	"github.com/rs/zerolog"
)

// FileReader handles file reading operations
type FileReader struct {
	logger zerolog.Logger
}

// NewFileReader creates a new FileReader instance
func NewFileReader(logger zerolog.Logger) *FileReader {
	return &FileReader{
		logger: logger.With().Str("component", "FileReader").Logger(),
	}
}

// ReadFile reads a file with the given options. The content is returned
// byte-for-byte; no line trimming or normalization is applied.
func (fr *FileReader) ReadFile(path string, opts FileReadOptions) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorwrapper.NewNotFoundError(path, err)
		}
		return nil, errorwrapper.NewIOError("stat", path, err)
	}
	if info.IsDir() {
		return nil, errorwrapper.NewValidationError("path", path, "is a directory, not a file")
	}
	if opts.MaxSize > 0 && info.Size() > opts.MaxSize {
		return nil, errorwrapper.NewValidationError("path", path,
			fmt.Sprintf("file size %d exceeds limit %d", info.Size(), opts.MaxSize))
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorwrapper.NewNotFoundError(path, err)
		}
		return nil, errorwrapper.NewIOError("open", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fr.logger.Error().Err(closeErr).Str("path", path).Msg("Failed to close file after reading")
		}
	}()

	var reader io.Reader = file
	if opts.BufferSize > 0 {
		reader = bufio.NewReaderSize(file, opts.BufferSize)
	}
	if opts.MaxSize > 0 {
		reader = io.LimitReader(reader, opts.MaxSize)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, errorwrapper.NewIOError("read", path, err)
	}

	fr.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("File read successfully")
	return content, nil
}
