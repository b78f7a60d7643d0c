package config

// CleanerConfig defines configuration for workspace artifact cleanup
type CleanerConfig struct {
	ArtifactDirs []string `json:"artifact_dirs,omitempty" yaml:"artifact_dirs,omitempty"`
	LogsDir      string   `json:"logs_dir,omitempty" yaml:"logs_dir,omitempty"`
}

// NewDefaultCleanerConfig creates default cleaner configuration
func NewDefaultCleanerConfig() CleanerConfig {
	return CleanerConfig{
		ArtifactDirs: DefaultCleanerArtifactDirs,
		LogsDir:      DefaultCleanerLogsDir,
	}
}

// RenamerConfig defines configuration for filename normalization
type RenamerConfig struct {
	SanitizeNames bool `json:"sanitize_names" yaml:"sanitize_names"`
	MoveTimestamp bool `json:"move_timestamp" yaml:"move_timestamp"`
}

// NewDefaultRenamerConfig creates default renamer configuration
func NewDefaultRenamerConfig() RenamerConfig {
	return RenamerConfig{
		SanitizeNames: true,
		MoveTimestamp: true,
	}
}
