package renamer

import (
	"regexp"
	"strings"
)

var (
	bracketPattern = regexp.MustCompile(`\[([^\]]+)\]`)
	nonAlnum       = regexp.MustCompile(`[^a-zA-Z0-9.\-_]`)
	hyphenRuns     = regexp.MustCompile(`-{2,}`)
)

// Sanitize normalizes a file name: spaces become hyphens, characters outside
// [a-zA-Z0-9.-_] are dropped, hyphen runs collapse, and the result is
// lowercased. Text inside square brackets keeps its case and internal
// hyphens and is reattached with a leading hyphen, so identifiers like
// "[AbC-123]" survive intact.
func Sanitize(name string) string {
	var b strings.Builder
	last := 0

	for _, m := range bracketPattern.FindAllStringSubmatchIndex(name, -1) {
		b.WriteString(sanitizePlain(name[last:m[0]]))
		b.WriteString("-[")
		b.WriteString(sanitizeBracket(name[m[2]:m[3]]))
		b.WriteString("]")
		last = m[1]
	}
	b.WriteString(sanitizePlain(name[last:]))

	return b.String()
}

// sanitizePlain handles text outside brackets
func sanitizePlain(text string) string {
	s := strings.ReplaceAll(text, " ", "-")
	s = nonAlnum.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.ToLower(s)
	return strings.Trim(s, "-")
}

// sanitizeBracket handles text inside brackets: characters are filtered but
// case and hyphens are preserved
func sanitizeBracket(text string) string {
	return nonAlnum.ReplaceAllString(text, "")
}
