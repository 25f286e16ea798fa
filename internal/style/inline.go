package style

import (
	"fmt"
	"strings"

	"github.com/skalder/refnote/internal/bibtex"
)

// PageLabel returns the page-unit label for a page reference: "pp." for a
// hyphen or en-dash range, "p." for a single page.
func PageLabel(page string) string {
	if strings.ContainsAny(page, "-–") {
		return "pp."
	}
	return "p."
}

// Inline renders an entry as an inline citation fragment. Entries whose
// author or year cannot be resolved fall back to the citekey form in every
// style.
func Inline(e *bibtex.Entry, page string, s Style) string {
	authorField := e.Field("author")
	year := strings.TrimSpace(e.Field("year"))

	if authorField == "" && year == "" {
		return keyCitation(e, page)
	}

	last := firstAuthorLast(authorField)
	if last == "" || year == "" {
		return keyCitation(e, page)
	}

	switch s {
	case APA:
		if page != "" {
			return fmt.Sprintf("(%s, %s, p. %s)", last, year, page)
		}
		return fmt.Sprintf("(%s, %s)", last, year)
	case Chicago:
		if page != "" {
			return fmt.Sprintf("(%s %s, %s)", last, year, page)
		}
		return fmt.Sprintf("(%s %s)", last, year)
	case MLA:
		// MLA parentheticals never carry a p./pp. label.
		if page != "" {
			return fmt.Sprintf("(%s %s)", last, page)
		}
		return fmt.Sprintf("(%s)", last)
	default:
		return keyCitation(e, page)
	}
}

// keyCitation is the citekey fallback form: "citekey" or
// "citekey, p./pp. page".
func keyCitation(e *bibtex.Entry, page string) string {
	if page == "" {
		return e.CiteKey
	}
	return fmt.Sprintf("%s, %s %s", e.CiteKey, PageLabel(page), page)
}

// firstAuthorLast derives the first author's last name from an author
// field, or "" when none can be found.
func firstAuthorLast(field string) string {
	authors := parseAuthors(field)
	if len(authors) == 0 {
		return ""
	}
	return authors[0].last
}
