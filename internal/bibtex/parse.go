package bibtex

import (
	"errors"
	"strings"
)

// ErrMissingCiteKey is returned when the text contains no recognizable
// @type{key, header. Callers must not create any file on this condition.
var ErrMissingCiteKey = errors.New("no citation key found in entry")

// Parse parses a single citation record. The scanner accepts
// @type{key, field = {value}, field = "value", ...} with exactly one level
// of nested braces inside a value. Unrecognized fields are ignored, and a
// recognized field that never appears is simply absent, never an error.
func Parse(text string) (*Entry, error) {
	header, body, err := splitHeader(text)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		Type:    header.entryType,
		CiteKey: header.citeKey,
		Fields:  make(map[string]string),
	}

	for _, name := range FieldOrder {
		if value, ok := scanField(body, name); ok {
			e.Fields[name] = value
		}
	}

	return e, nil
}

type entryHeader struct {
	entryType string
	citeKey   string
}

// splitHeader locates the @type{key, header and returns it along with the
// remaining text (the field region).
func splitHeader(text string) (entryHeader, string, error) {
	at := strings.IndexByte(text, '@')
	if at < 0 {
		return entryHeader{}, "", ErrMissingCiteKey
	}

	// Entry type: the letters immediately after '@'. An absent type
	// (as in "@{Key,") falls back to misc.
	i := at + 1
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	entryType := strings.ToLower(text[at+1 : i])
	if entryType == "" {
		entryType = "misc"
	}

	// Skip whitespace up to the opening brace.
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	if i >= len(text) || text[i] != '{' {
		return entryHeader{}, "", ErrMissingCiteKey
	}
	i++

	comma := strings.IndexByte(text[i:], ',')
	if comma < 0 {
		return entryHeader{}, "", ErrMissingCiteKey
	}

	key := NormalizeCiteKey(text[i : i+comma])
	if key == "" {
		return entryHeader{}, "", ErrMissingCiteKey
	}

	return entryHeader{entryType: entryType, citeKey: key}, text[i+comma+1:], nil
}

// scanField finds the value of a named field in the field region.
// Brace-delimited values are tried first across the whole region, then
// quote-delimited ones; the first valid match wins.
func scanField(body string, name string) (string, bool) {
	if v, ok := scanDelimited(body, name, '{'); ok {
		return v, true
	}
	return scanDelimited(body, name, '"')
}

// scanDelimited scans for name = <value> where the value opens with the
// given delimiter.
func scanDelimited(body, name string, open byte) (string, bool) {
	for start := 0; start < len(body); {
		idx := indexFold(body[start:], name)
		if idx < 0 {
			return "", false
		}
		pos := start + idx
		start = pos + 1

		// The name must stand alone, not be a suffix of a longer word.
		if pos > 0 && isWordByte(body[pos-1]) {
			continue
		}
		i := pos + len(name)
		if i < len(body) && isWordByte(body[i]) {
			continue
		}

		for i < len(body) && isSpace(body[i]) {
			i++
		}
		if i >= len(body) || body[i] != '=' {
			continue
		}
		i++
		for i < len(body) && isSpace(body[i]) {
			i++
		}
		if i >= len(body) || body[i] != open {
			continue
		}

		var value string
		var ok bool
		if open == '{' {
			value, ok = braceValue(body, i)
		} else {
			value, ok = quoteValue(body, i)
		}
		if ok {
			return value, true
		}
	}
	return "", false
}

// braceValue reads a brace-delimited value starting at body[i] == '{'.
// One level of nested braces is kept verbatim in the value; deeper nesting
// is outside the supported grammar and fails the match.
func braceValue(body string, i int) (string, bool) {
	depth := 1
	for j := i + 1; j < len(body); j++ {
		switch body[j] {
		case '{':
			depth++
			if depth > 2 {
				return "", false
			}
		case '}':
			depth--
			if depth == 0 {
				return body[i+1 : j], true
			}
		}
	}
	return "", false
}

// quoteValue reads a double-quote-delimited value starting at body[i] == '"'.
func quoteValue(body string, i int) (string, bool) {
	end := strings.IndexByte(body[i+1:], '"')
	if end < 0 {
		return "", false
	}
	return body[i+1 : i+1+end], true
}

// indexFold returns the index of the first occurrence of name in s under
// ASCII case folding, or -1. Field names are lowercase ASCII, so the scan
// works on raw bytes and non-ASCII text in values never shifts offsets.
func indexFold(s, name string) int {
	for i := 0; i+len(name) <= len(s); i++ {
		if foldEqual(s[i:i+len(name)], name) {
			return i
		}
	}
	return -1
}

// foldEqual reports whether s matches a lowercase ASCII name, ignoring
// ASCII case in s.
func foldEqual(s, name string) bool {
	for i := 0; i < len(name); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != name[i] {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordByte(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
