// Package metadata converts entries to and from the key:value header block
// stored at the top of a reference note.
package metadata

import (
	"fmt"
	"strings"

	"github.com/skalder/refnote/internal/bibtex"
)

// escaper rewrites the five special characters in a single pass, so a
// backslash produced by one rule is never reprocessed by another.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// Escape encodes a field value for a metadata line.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape. It walks the string left to right so that an
// escaped backslash is consumed before the character after it can be
// misread as part of another sequence (`\\n` is a backslash followed by
// "n", not a newline). Unknown escapes pass through untouched.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
			i++
		case '"':
			b.WriteByte('"')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Encode renders an entry as a metadata block: type and citekey first, then
// one line per present recognized field. Values are always quoted to avoid
// ambiguity with structural characters.
func Encode(e *bibtex.Entry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("type: %s\n", e.Type))
	b.WriteString(fmt.Sprintf("citekey: %s\n", e.CiteKey))
	for _, name := range bibtex.FieldOrder {
		if value, ok := e.Fields[name]; ok {
			b.WriteString(fmt.Sprintf("%s: \"%s\"\n", name, Escape(value)))
		}
	}

	return b.String()
}

// Decode parses a metadata block back into an entry. Lines without a colon
// are skipped, not errors. A block lacking a type or citekey line yields
// (nil, nil): the caller falls back to the legacy fenced-block format, so
// "no entry" is a designed outcome rather than a failure.
func Decode(block string) (*bibtex.Entry, error) {
	e := &bibtex.Entry{Fields: make(map[string]string)}

	for _, line := range strings.Split(block, "\n") {
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}
		key := strings.TrimSpace(line[:colon])
		value := unquote(strings.TrimSpace(line[colon+1:]))

		switch {
		case key == "type":
			e.Type = value
		case key == "citekey":
			e.CiteKey = value
		case bibtex.IsRecognizedField(key):
			e.Fields[key] = Unescape(value)
		}
	}

	if e.Type == "" || e.CiteKey == "" {
		return nil, nil
	}
	return e, nil
}

// unquote strips one layer of matching surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
