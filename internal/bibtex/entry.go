// Package bibtex parses and serializes BibTeX-style citation entries.
//
// Only the subset emitted by citation export tools is supported: one entry
// per record, brace- or quote-delimited field values, and at most one level
// of nested braces inside a value.
package bibtex

import "strings"

// FieldOrder is the fixed set of recognized fields, in canonical
// serialization order.
var FieldOrder = []string{
	"author",
	"title",
	"year",
	"publisher",
	"journal",
	"volume",
	"number",
	"pages",
	"address",
	"edition",
	"booktitle",
	"editor",
	"doi",
	"isbn",
	"issn",
	"url",
	"note",
	"series",
	"chapter",
	"organization",
	"school",
	"institution",
	"howpublished",
	"month",
}

// recognizedFields indexes FieldOrder for membership checks.
var recognizedFields = func() map[string]bool {
	m := make(map[string]bool, len(FieldOrder))
	for _, f := range FieldOrder {
		m[f] = true
	}
	return m
}()

// Entry is a single parsed citation record.
type Entry struct {
	// Type is the lowercased entry type ("book", "article", ...).
	// Defaults to "misc" when the source record carries none.
	Type string
	// CiteKey is the normalized unique key (see NormalizeCiteKey).
	CiteKey string
	// Fields holds the recognized field values. Iterate via FieldOrder
	// for deterministic output.
	Fields map[string]string
}

// Field returns the value of a field, or "" if absent.
func (e *Entry) Field(name string) string {
	return e.Fields[name]
}

// Has reports whether a field is present.
func (e *Entry) Has(name string) bool {
	_, ok := e.Fields[name]
	return ok
}

// IsRecognizedField reports whether name is in the fixed field set.
func IsRecognizedField(name string) bool {
	return recognizedFields[name]
}

// NormalizeCiteKey normalizes a raw citation key to [A-Za-z0-9-]+:
// runs of other characters collapse to a single hyphen, and leading and
// trailing hyphens are trimmed.
func NormalizeCiteKey(raw string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
