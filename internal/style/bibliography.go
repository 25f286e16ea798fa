package style

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/skalder/refnote/internal/bibtex"
)

// Result is the outcome of rendering a bibliography entry. When a
// narrative-style template cannot produce text for an entry, Text holds the
// unmodified canonical serialized entry and Fallback is true, so a batch
// never aborts on one bad record.
type Result struct {
	Text     string
	Fallback bool
}

// Bibliography renders an entry as a full bibliography entry in the given
// style. The latex style returns the canonical serialized entry text
// unchanged; callers wrap it in a fenced code block.
func Bibliography(e *bibtex.Entry, s Style) Result {
	if s == Latex {
		return Result{Text: bibtex.Serialize(e)}
	}

	text, err := narrative(e, s)
	if err != nil {
		return Result{Text: bibtex.Serialize(e), Fallback: true}
	}
	return Result{Text: text}
}

var errNothingToRender = errors.New("entry has no renderable fields")

// narrative dispatches on entry type and assembles the styled entry text.
func narrative(e *bibtex.Entry, s Style) (string, error) {
	if len(e.Fields) == 0 {
		return "", errNothingToRender
	}

	var text string
	switch e.Type {
	case "book":
		text = bookEntry(e, s)
	case "article":
		text = articleEntry(e, s)
	case "incollection", "inbook":
		text = chapterEntry(e, s)
	default:
		text = genericEntry(e, s)
	}

	text = tidy(text)
	if text == "" {
		return "", errNothingToRender
	}
	return text, nil
}

// bookEntry renders a book in the given narrative style.
func bookEntry(e *bibtex.Entry, s Style) string {
	authors := parseAuthors(e.Field("author"))
	title := e.Field("title")
	publisher := e.Field("publisher")
	address := e.Field("address")
	year := e.Field("year")
	edition := editionLabel(e.Field("edition"), s)

	switch s {
	case APA:
		titled := title
		if titled != "" && edition != "" {
			titled = fmt.Sprintf("%s (%s)", titled, edition)
		}
		return sentence(
			apaAuthors(authors),
			paren(year)+".",
			period(titled),
			period(publisher),
		)
	case Chicago:
		return sentence(
			period(chicagoAuthors(authors)),
			period(title),
			period(edition),
			period(commaJoin(colonJoin(address, publisher), year)),
		)
	default: // MLA
		return sentence(
			period(mlaAuthors(authors)),
			period(title),
			period(commaJoin(edition, publisher, year)),
		)
	}
}

// articleEntry renders a journal article in the given narrative style.
func articleEntry(e *bibtex.Entry, s Style) string {
	authors := parseAuthors(e.Field("author"))
	title := e.Field("title")
	journal := e.Field("journal")
	volume := e.Field("volume")
	number := e.Field("number")
	year := e.Field("year")
	pages := e.Field("pages")

	switch s {
	case APA:
		issue := journal
		if volume != "" {
			issue = commaJoin(issue, volume)
			if number != "" {
				issue += paren(number)
			}
		}
		return sentence(
			apaAuthors(authors),
			paren(year)+".",
			period(title),
			period(commaJoin(issue, pages)),
		)
	case Chicago:
		ref := journal
		if volume != "" {
			ref += " " + volume
		}
		if number != "" {
			ref = commaJoin(ref, "no. "+number)
		}
		if year != "" {
			ref += " " + paren(year)
		}
		if pages != "" {
			ref += ": " + pages
		}
		return sentence(
			period(chicagoAuthors(authors)),
			quoted(title),
			period(ref),
		)
	default: // MLA
		var numbered, paged string
		if volume != "" {
			numbered = "vol. " + volume
		}
		if number != "" {
			numbered = commaJoin(numbered, "no. "+number)
		}
		if pages != "" {
			paged = PageLabel(pages) + " " + pages
		}
		return sentence(
			period(mlaAuthors(authors)),
			quoted(title),
			period(commaJoin(journal, numbered, year, paged)),
		)
	}
}

// chapterEntry renders an incollection/inbook entry in the given narrative
// style.
func chapterEntry(e *bibtex.Entry, s Style) string {
	authors := parseAuthors(e.Field("author"))
	title := e.Field("title")
	booktitle := e.Field("booktitle")
	editor := e.Field("editor")
	publisher := e.Field("publisher")
	address := e.Field("address")
	year := e.Field("year")
	pages := e.Field("pages")

	switch s {
	case APA:
		container := booktitle
		if editor != "" {
			container = fmt.Sprintf("In %s (Ed.), %s", editor, booktitle)
		} else if booktitle != "" {
			container = "In " + booktitle
		}
		if container != "" && pages != "" {
			container += " " + paren("pp. "+pages)
		}
		return sentence(
			apaAuthors(authors),
			paren(year)+".",
			period(title),
			period(container),
			period(publisher),
		)
	case Chicago:
		container := booktitle
		if container != "" {
			container = "In " + container
		}
		if editor != "" {
			container = commaJoin(container, "edited by "+editor)
		}
		container = commaJoin(container, pages)
		return sentence(
			period(chicagoAuthors(authors)),
			quoted(title),
			period(container),
			period(commaJoin(colonJoin(address, publisher), year)),
		)
	default: // MLA
		container := booktitle
		if editor != "" {
			container = commaJoin(container, "edited by "+editor)
		}
		var paged string
		if pages != "" {
			paged = PageLabel(pages) + " " + pages
		}
		return sentence(
			period(mlaAuthors(authors)),
			quoted(title),
			period(commaJoin(container, publisher, year, paged)),
		)
	}
}

// genericEntry is the fallback template for every other entry type.
func genericEntry(e *bibtex.Entry, s Style) string {
	authors := parseAuthors(e.Field("author"))
	title := e.Field("title")
	year := e.Field("year")

	// The most specific publisher-like field wins.
	publisher := e.Field("publisher")
	for _, alt := range []string{"organization", "institution", "school", "howpublished"} {
		if publisher != "" {
			break
		}
		publisher = e.Field(alt)
	}

	switch s {
	case APA:
		return sentence(
			apaAuthors(authors),
			paren(year)+".",
			period(title),
			period(publisher),
		)
	case Chicago:
		return sentence(
			period(chicagoAuthors(authors)),
			period(title),
			period(commaJoin(publisher, year)),
		)
	default: // MLA
		return sentence(
			period(mlaAuthors(authors)),
			period(title),
			period(commaJoin(publisher, year)),
		)
	}
}

// editionLabel formats an edition field value. A numeric edition gets an
// ordinal suffix (with the 11/12/13 exception); the value "1" is suppressed
// in APA and Chicago; a non-numeric value passes through verbatim.
func editionLabel(value string, s Style) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return value + " ed."
	}
	if n == 1 && (s == APA || s == Chicago) {
		return ""
	}
	return ordinal(n) + " ed."
}

// ordinal renders 1 -> "1st", 2 -> "2nd", 11 -> "11th", and so on.
func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// sentence joins non-empty fragments with single spaces.
func sentence(fragments ...string) string {
	var kept []string
	for _, f := range fragments {
		if f != "" && f != "." && f != "()." {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// period appends a closing period to a non-empty fragment.
func period(s string) string {
	if s == "" {
		return ""
	}
	return s + "."
}

// quoted wraps a non-empty title in double quotes with the period inside.
func quoted(s string) string {
	if s == "" {
		return ""
	}
	return `"` + s + `."`
}

// paren wraps a non-empty value in parentheses.
func paren(s string) string {
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}

// commaJoin joins non-empty parts with ", ".
func commaJoin(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// colonJoin joins a place and publisher as "Place: Publisher".
func colonJoin(place, publisher string) string {
	if place == "" {
		return publisher
	}
	if publisher == "" {
		return place
	}
	return place + ": " + publisher
}

var (
	repeatedPeriods = regexp.MustCompile(`\.{2,}`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// tidy collapses repeated periods and whitespace runs left behind by
// missing fields.
func tidy(s string) string {
	s = repeatedPeriods.ReplaceAllString(s, ".")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
