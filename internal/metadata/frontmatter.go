package metadata

import (
	"strings"

	"github.com/skalder/refnote/internal/bibtex"
)

const fence = "---"

// EncodeFrontmatter wraps the metadata block of an entry in --- fences for
// placement at the top of a note.
func EncodeFrontmatter(e *bibtex.Entry) string {
	return fence + "\n" + Encode(e) + fence + "\n"
}

// DecodeFrontmatter extracts the leading --- fenced block of a note body and
// decodes it. Returns (nil, nil) when the note has no frontmatter or the
// block holds no entry; the caller then tries the legacy fenced format.
func DecodeFrontmatter(body string) (*bibtex.Entry, error) {
	inner, ok := frontmatterBlock(body)
	if !ok {
		return nil, nil
	}
	return Decode(inner)
}

// frontmatterBlock returns the lines between the opening and closing ---
// fences, which must start on the very first line of the body.
func frontmatterBlock(body string) (string, bool) {
	lines := strings.Split(body, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != fence {
		return "", false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == fence {
			return strings.Join(lines[1:i], "\n"), true
		}
	}
	return "", false
}
