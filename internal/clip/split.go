// Package clip splits pasted text into quoted source text and its trailing
// citation record, and provides system clipboard access.
package clip

import (
	"regexp"
	"strings"
)

// pagesField matches a standalone pages field inside the raw entry text.
// The leading boundary keeps fields such as numpages from matching; the
// tail consumes the comma and the rest of the line, never the next one,
// so removal leaves the record well formed.
var pagesField = regexp.MustCompile(`(?:^|[^A-Za-z0-9_])(pages\s*=\s*\{([^}]*)\},?[ \t]*\n?)`)

// Parts is the result of splitting a pasted string.
type Parts struct {
	// MainText is the quoted source text, trimmed.
	MainText string
	// RawEntry is the citation record text starting at the first line
	// that begins with '@'. Empty when the paste carried no record;
	// callers must treat that as "no structured citation found", not as
	// an error.
	RawEntry string
	// Page is the value of a pages field extracted from the record, or
	// "" when absent. The field is removed from RawEntry.
	Page string
}

// Split separates quoted text from the citation record that follows it.
func Split(text string) Parts {
	at := entryStart(text)
	if at < 0 {
		return Parts{MainText: strings.TrimSpace(text)}
	}

	parts := Parts{
		MainText: strings.TrimSpace(text[:at]),
		RawEntry: text[at:],
	}

	// Capture the page value before stripping the field; the splice keeps
	// the boundary byte the match consumed.
	if loc := pagesField.FindStringSubmatchIndex(parts.RawEntry); loc != nil {
		parts.Page = strings.TrimSpace(parts.RawEntry[loc[4]:loc[5]])
		parts.RawEntry = parts.RawEntry[:loc[2]] + parts.RawEntry[loc[3]:]
	}

	return parts
}

// entryStart returns the byte offset of the first line starting with '@',
// or -1 when no such line exists.
func entryStart(text string) int {
	if strings.HasPrefix(text, "@") {
		return 0
	}
	idx := strings.Index(text, "\n@")
	if idx < 0 {
		return -1
	}
	return idx + 1
}
