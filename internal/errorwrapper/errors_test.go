package errorwrapper

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	base := errors.New("disk full")

	wrapped := WrapError(base, "failed to write output")

	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "failed to write output")
}

func TestWrapError_NilError(t *testing.T) {
	wrapped := WrapError(nil, "context")

	assert.Contains(t, wrapped.Error(), "<nil>")
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("keep_lines", 0, "must be positive")

	assert.Contains(t, err.Error(), "keep_lines")
	assert.Contains(t, err.Error(), "must be positive")
}

func TestNotFoundError_MatchesSentinel(t *testing.T) {
	err := NewNotFoundError("/tmp/missing.diff", fs.ErrNotExist)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "/tmp/missing.diff")
}

func TestIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewIOError("write", "/out/result.diff", cause)

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "/out/result.diff")
}
