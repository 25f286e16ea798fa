// Package note performs anchored section edits on markdown note bodies:
// the citations list of a reference note and the bibliography section of a
// content note. All operations compute the full new body in memory; the
// caller decides whether and where to write it.
package note

import "strings"

// CitationsHeading introduces the citation list in a reference note.
const CitationsHeading = "## Citations"

// BibliographyHeading introduces the bibliography section in a content note.
const BibliographyHeading = "## Bibliography"

// findHeading returns the index of the line equal to the given heading,
// or -1.
func findHeading(lines []string, heading string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == heading {
			return i
		}
	}
	return -1
}

// sectionEnd returns the index of the first boundary line at or after
// start: an ATX heading, or a horizontal rule when stopAtRule is set.
// Without a boundary the section runs to the end of the note.
func sectionEnd(lines []string, start int, stopAtRule bool) int {
	for i := start; i < len(lines); i++ {
		if isHeading(lines[i]) {
			return i
		}
		if stopAtRule && isRule(lines[i]) {
			return i
		}
	}
	return len(lines)
}

// isHeading reports whether a line is an ATX heading (one to six # followed
// by a space).
func isHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	return n >= 1 && n <= 6 && n < len(trimmed) && trimmed[n] == ' '
}

// isRule reports whether a line is a horizontal rule: three or more of the
// same marker character and nothing else.
func isRule(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	marker := trimmed[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != marker {
			return false
		}
	}
	return true
}
