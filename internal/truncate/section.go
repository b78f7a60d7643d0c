package truncate

import (
	"path/filepath"
	"strings"
)

// headerPrefix marks the start of a per-file entry in a git diff.
const headerPrefix = "diff --git "

// Section is one file entry of a diff document: the "diff --git" header line
// and every line up to the next header or end of document. FilePath is the
// post-image path parsed from the header, or empty when the header cannot be
// parsed (such sections are always passed through untouched).
type Section struct {
	Header   string
	Body     []string
	FilePath string
}

// Extension returns the lowercased file extension of the section's path,
// including the leading dot. Empty when there is no parsed path.
func (s *Section) Extension() string {
	if s.FilePath == "" {
		return ""
	}
	return strings.ToLower(filepath.Ext(s.FilePath))
}

// Document is a parsed diff: lines preceding the first file header, the
// ordered file sections, and whether the input ended with a newline.
type Document struct {
	Preamble        []string
	Sections        []Section
	TrailingNewline bool
}

// ParseDocument splits diff content into sections on "diff --git" header
// lines. Content lines are preserved byte-for-byte; only line boundaries
// are interpreted.
func ParseDocument(content string) Document {
	if content == "" {
		return Document{}
	}

	trailingNewline := strings.HasSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	if trailingNewline {
		lines = lines[:len(lines)-1]
	}

	doc := Document{TrailingNewline: trailingNewline}
	current := -1

	for _, line := range lines {
		if strings.HasPrefix(line, headerPrefix) {
			doc.Sections = append(doc.Sections, Section{
				Header:   line,
				FilePath: parseHeaderPath(line),
			})
			current = len(doc.Sections) - 1
			continue
		}

		if current < 0 {
			doc.Preamble = append(doc.Preamble, line)
		} else {
			doc.Sections[current].Body = append(doc.Sections[current].Body, line)
		}
	}

	return doc
}

// parseHeaderPath extracts the post-image ("b/") path from a header line of
// the form "diff --git a/old b/new". Returns empty for anything it cannot
// parse unambiguously, including quoted paths.
func parseHeaderPath(header string) string {
	rest := strings.TrimPrefix(header, headerPrefix)
	if rest == header || strings.HasPrefix(rest, "\"") {
		return ""
	}

	idx := strings.LastIndex(rest, " b/")
	if idx < 0 {
		return ""
	}

	path := rest[idx+len(" b/"):]
	if path == "" {
		return ""
	}
	return path
}

// Render reassembles the document into diff text, restoring the input's
// final-newline convention.
func (d Document) Render() string {
	var lines []string
	lines = append(lines, d.Preamble...)
	for _, section := range d.Sections {
		lines = append(lines, section.Header)
		lines = append(lines, section.Body...)
	}

	if len(lines) == 0 {
		return ""
	}

	out := strings.Join(lines, "\n")
	if d.TrailingNewline {
		out += "\n"
	}
	return out
}
