package bibtex

import "strings"

// ParseFenced extracts and parses the first ```bibtex fenced code block in a
// note body. This is the legacy reference-note format; notes written before
// the metadata header existed carry their entry this way. Returns nil (and
// no error) when the body has no such block.
func ParseFenced(body string) (*Entry, error) {
	lines := strings.Split(body, "\n")

	var inner []string
	inBlock := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !inBlock {
			if trimmed == "```bibtex" {
				inBlock = true
			}
			continue
		}
		if trimmed == "```" {
			return Parse(strings.Join(inner, "\n"))
		}
		inner = append(inner, line)
	}

	return nil, nil
}
