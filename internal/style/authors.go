package style

import "strings"

// author is one parsed name from a BibTeX author field.
type author struct {
	first string
	last  string
}

// parseAuthors splits an author field on " and " and each name into
// first/last parts: "Last, First" when a comma is present, otherwise the
// final whitespace token is the last name.
func parseAuthors(field string) []author {
	if strings.TrimSpace(field) == "" {
		return nil
	}

	var out []author
	for _, name := range strings.Split(field, " and ") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if comma := strings.Index(name, ","); comma >= 0 {
			out = append(out, author{
				last:  strings.TrimSpace(name[:comma]),
				first: strings.TrimSpace(name[comma+1:]),
			})
			continue
		}
		tokens := strings.Fields(name)
		if len(tokens) == 1 {
			out = append(out, author{last: tokens[0]})
			continue
		}
		out = append(out, author{
			first: strings.Join(tokens[:len(tokens)-1], " "),
			last:  tokens[len(tokens)-1],
		})
	}
	return out
}

// lastFirst renders "Last, First" (or just "Last").
func lastFirst(a author) string {
	if a.first == "" {
		return a.last
	}
	return a.last + ", " + a.first
}

// firstLast renders "First Last" (or just "Last").
func firstLast(a author) string {
	if a.first == "" {
		return a.last
	}
	return a.first + " " + a.last
}

// initials abbreviates a first name to formal initials: "John Michael"
// becomes "J. M.".
func initials(first string) string {
	var parts []string
	for _, w := range strings.Fields(first) {
		r := []rune(w)
		parts = append(parts, string(r[0])+".")
	}
	return strings.Join(parts, " ")
}

// formal renders an APA-style name: "Last, F. M.".
func formal(a author) string {
	if a.first == "" {
		return a.last
	}
	return a.last + ", " + initials(a.first)
}

// mlaAuthors renders an MLA works-cited author list. Three or more authors
// collapse to the first author plus "et al.".
func mlaAuthors(authors []author) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return lastFirst(authors[0])
	case 2:
		return lastFirst(authors[0]) + ", and " + firstLast(authors[1])
	default:
		return lastFirst(authors[0]) + ", et al."
	}
}

// chicagoAuthors renders a Chicago bibliography author list. Up to three
// authors are listed in full; four or more collapse to the first author
// plus "et al.".
func chicagoAuthors(authors []author) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return lastFirst(authors[0])
	case 2:
		return lastFirst(authors[0]) + ", and " + firstLast(authors[1])
	case 3:
		return lastFirst(authors[0]) + ", " + firstLast(authors[1]) + ", and " + firstLast(authors[2])
	default:
		return lastFirst(authors[0]) + ", et al."
	}
}

// apaAuthors renders an APA reference author list: formal initials joined
// with an ampersand before the final name. Lists longer than twenty
// authors keep the first nineteen, an ellipsis, and the final author.
func apaAuthors(authors []author) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return formal(authors[0])
	}

	if len(authors) > 20 {
		names := make([]string, 0, 20)
		for _, a := range authors[:19] {
			names = append(names, formal(a))
		}
		return strings.Join(names, ", ") + ", . . . " + formal(authors[len(authors)-1])
	}

	names := make([]string, 0, len(authors))
	for _, a := range authors[:len(authors)-1] {
		names = append(names, formal(a))
	}
	return strings.Join(names, ", ") + ", & " + formal(authors[len(authors)-1])
}
