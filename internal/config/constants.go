package config

const (
	// Truncate Defaults
	DefaultTruncateKeepLines = 10

	// Cleaner Defaults
	DefaultCleanerLogsDir = "logs"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// DefaultCleanerArtifactDirs lists directory names removed by the cleaner
// when no override is configured.
var DefaultCleanerArtifactDirs = []string{"tmp", ".cache"}
