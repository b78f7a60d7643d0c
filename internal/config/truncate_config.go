package config

// TruncateConfig defines configuration for diff truncation.
//
// MatchExtensions narrows truncation to sections whose file extension is in
// the set. An empty set means every oversized section is truncated; the set
// is a filter, not an enable switch.
type TruncateConfig struct {
	KeepLines       int      `json:"keep_lines,omitempty" yaml:"keep_lines,omitempty" validate:"omitempty,min=1"`
	MatchExtensions []string `json:"match_extensions,omitempty" yaml:"match_extensions,omitempty"`
}

// NewDefaultTruncateConfig creates default truncate configuration
func NewDefaultTruncateConfig() TruncateConfig {
	return TruncateConfig{
		KeepLines:       DefaultTruncateKeepLines,
		MatchExtensions: []string{},
	}
}
