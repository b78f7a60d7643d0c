package logger

import (
	"path/filepath"
	"testing"

	"github.com/aleister1102/difftrim/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	cfg := config.NewDefaultLogConfig()

	log, err := New(cfg)

	require.NoError(t, err)
	log.Debug().Msg("smoke test")
}

func TestNew_FileLogger(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "difftrim.log")

	log, err := New(cfg)

	require.NoError(t, err)
	log.Info().Msg("written to file")
}

func TestLogLevelParser(t *testing.T) {
	parser := NewLogLevelParser()

	level, err := parser.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	level, err = parser.ParseLevel("not-a-level")
	assert.Error(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}

func TestLogFormatParser(t *testing.T) {
	parser := NewLogFormatParser()

	assert.Equal(t, FormatJSON, parser.ParseFormat("json"))
	assert.Equal(t, FormatConsole, parser.ParseFormat("console"))
	assert.Equal(t, FormatText, parser.ParseFormat("TEXT"))
	assert.Equal(t, FormatConsole, parser.ParseFormat("unknown"))
}

func TestLogFormatString(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "console", FormatConsole.String())
	assert.Equal(t, "text", FormatText.String())
}
