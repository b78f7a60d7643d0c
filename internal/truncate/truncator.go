package truncate

import (
	"fmt"
	"strings"

	"github.com/aleister1102/difftrim/internal/config"
	"github.com/rs/zerolog"
)

// Stats summarizes one truncation pass
type Stats struct {
	SectionsTotal     int
	SectionsTruncated int
	LinesRemoved      int
}

// Truncator shortens oversized file sections of a diff document
type Truncator struct {
	keepLines  int
	extensions map[string]struct{}
	logger     zerolog.Logger
}

// TruncatorBuilder provides a fluent interface for creating a Truncator
type TruncatorBuilder struct {
	cfg    config.TruncateConfig
	logger zerolog.Logger
}

// NewTruncatorBuilder creates a new builder
func NewTruncatorBuilder() *TruncatorBuilder {
	return &TruncatorBuilder{
		cfg:    config.NewDefaultTruncateConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig sets the truncation configuration
func (b *TruncatorBuilder) WithConfig(cfg config.TruncateConfig) *TruncatorBuilder {
	b.cfg = cfg
	return b
}

// WithLogger sets the logger
func (b *TruncatorBuilder) WithLogger(logger zerolog.Logger) *TruncatorBuilder {
	b.logger = logger
	return b
}

// Build creates a new Truncator instance
func (b *TruncatorBuilder) Build() (*Truncator, error) {
	if b.cfg.KeepLines <= 0 {
		return nil, fmt.Errorf("keep_lines must be positive, got %d", b.cfg.KeepLines)
	}

	extensions := make(map[string]struct{}, len(b.cfg.MatchExtensions))
	for _, ext := range b.cfg.MatchExtensions {
		extensions[strings.ToLower(ext)] = struct{}{}
	}

	return &Truncator{
		keepLines:  b.cfg.KeepLines,
		extensions: extensions,
		logger:     b.logger.With().Str("component", "Truncator").Logger(),
	}, nil
}

// Truncate transforms diff content in a single forward pass. Sections whose
// body exceeds the keep-lines threshold and whose extension matches the
// configured set (an empty set matches everything) are reduced to their
// header, the first keepLines body lines, and one elision marker. Everything
// else passes through byte-for-byte.
func (t *Truncator) Truncate(content string) (string, Stats) {
	doc := ParseDocument(content)

	stats := Stats{SectionsTotal: len(doc.Sections)}
	for i := range doc.Sections {
		removed := t.truncateSection(&doc.Sections[i])
		if removed > 0 {
			stats.SectionsTruncated++
			stats.LinesRemoved += removed
		}
	}

	return doc.Render(), stats
}

// truncateSection shortens one section in place and returns the number of
// lines removed, or 0 when the section is left untouched.
func (t *Truncator) truncateSection(section *Section) int {
	if section.FilePath == "" {
		if section.Header != "" {
			t.logger.Warn().Str("header", section.Header).Msg("Could not parse file path from section header, passing through")
		}
		return 0
	}

	if !t.matchesExtension(section.Extension()) {
		return 0
	}

	if len(section.Body) <= t.keepLines {
		return 0
	}

	// A previously truncated section ends with our own marker right after the
	// kept lines; shortening it again would only rewrite the marker forever.
	if len(section.Body) == t.keepLines+1 && isElisionMarker(section.Body[t.keepLines]) {
		return 0
	}

	removed := len(section.Body) - t.keepLines
	section.Body = append(section.Body[:t.keepLines:t.keepLines], elisionMarker(removed))

	t.logger.Debug().
		Str("file", section.FilePath).
		Int("lines_removed", removed).
		Msg("Truncated section")

	return removed
}

// matchesExtension reports whether a section extension is targeted. An empty
// configured set means truncation applies to every section.
func (t *Truncator) matchesExtension(ext string) bool {
	if len(t.extensions) == 0 {
		return true
	}
	_, ok := t.extensions[ext]
	return ok
}

const (
	elisionPrefix = "... "
	elisionSuffix = " lines omitted ..."
)

// elisionMarker formats the synthetic line inserted in place of removed content
func elisionMarker(omitted int) string {
	return fmt.Sprintf("%s%d%s", elisionPrefix, omitted, elisionSuffix)
}

// isElisionMarker recognizes lines produced by elisionMarker
func isElisionMarker(line string) bool {
	if !strings.HasPrefix(line, elisionPrefix) || !strings.HasSuffix(line, elisionSuffix) {
		return false
	}
	count := strings.TrimSuffix(strings.TrimPrefix(line, elisionPrefix), elisionSuffix)
	if count == "" {
		return false
	}
	for _, r := range count {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
