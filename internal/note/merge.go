package note

import (
	"slices"
	"strings"
)

// UpsertCitation inserts a linkback line into the citations list of a
// reference note body. The operation is idempotent: a line already present
// verbatim leaves the body unchanged, and existing lines keep their order;
// a new line appends at the end of the list.
func UpsertCitation(body, line string) string {
	lines := strings.Split(body, "\n")

	h := findHeading(lines, CitationsHeading)
	if h < 0 {
		base := strings.TrimRight(body, "\n")
		if base == "" {
			return CitationsHeading + "\n" + line + "\n"
		}
		return base + "\n\n" + CitationsHeading + "\n" + line + "\n"
	}

	// The citations region runs from the heading to the next heading or
	// the end of the note.
	end := sectionEnd(lines, h+1, false)
	for i := h + 1; i < end; i++ {
		if strings.TrimSpace(lines[i]) == line {
			return body
		}
	}

	// Append inside the region, before any trailing blank lines, so the
	// spacing to whatever follows stays intact.
	insert := end
	for insert > h+1 && strings.TrimSpace(lines[insert-1]) == "" {
		insert--
	}
	lines = slices.Insert(lines, insert, line)
	return strings.Join(lines, "\n")
}

// ReplaceBibliography swaps the entire bibliography section body for the
// newly rendered list, or appends the section (preceded by a blank line)
// when the note has none. The section is always regenerated wholesale, so
// repeated application with the same rendered list is byte-stable. The
// section's closing boundary is the next heading, a horizontal rule, or
// the end of the note.
func ReplaceBibliography(body, rendered string) string {
	lines := strings.Split(body, "\n")

	h := findHeading(lines, BibliographyHeading)
	if h < 0 {
		base := strings.TrimRight(body, "\n")
		if base == "" {
			return BibliographyHeading + "\n\n" + rendered + "\n"
		}
		return base + "\n\n" + BibliographyHeading + "\n\n" + rendered + "\n"
	}

	end := sectionEnd(lines, h+1, true)

	out := make([]string, 0, len(lines))
	out = append(out, lines[:h+1]...)
	out = append(out, "")
	out = append(out, strings.Split(rendered, "\n")...)
	out = append(out, "")
	if end < len(lines) {
		out = append(out, lines[end:]...)
	}
	return strings.Join(out, "\n")
}
