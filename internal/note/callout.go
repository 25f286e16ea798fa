package note

import (
	"fmt"
	"strings"
)

// Callout builds the quote callout block inserted into a content note:
// a typed callout header, the quoted text with every line prefixed by "> ",
// and a linkback to the reference note carrying the inline citation and the
// block identifier anchor.
func Callout(calloutType, quote, refPath, inline, blockID string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("> [!%s]\n", calloutType))
	for _, line := range strings.Split(quote, "\n") {
		b.WriteString("> " + line + "\n")
	}
	b.WriteString(fmt.Sprintf("> [[%s|%s]] ^%s", refPath, inline, blockID))

	return b.String()
}

// CitationLine builds the fixed-format citation list line:
// "- [[<basename>#^<blockID>]]" with an optional " → p. <page>" tail.
func CitationLine(basename, blockID, page string) string {
	line := fmt.Sprintf("- [[%s#^%s]]", basename, blockID)
	if page != "" {
		line += " → p. " + page
	}
	return line
}

// AppendCallout appends a callout block to a content note body, separated
// by a blank line.
func AppendCallout(body, callout string) string {
	base := strings.TrimRight(body, "\n")
	if base == "" {
		return callout + "\n"
	}
	return base + "\n\n" + callout + "\n"
}
