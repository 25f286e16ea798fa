package note

import (
	"regexp"

	"github.com/skalder/refnote/internal/bibtex"
	"github.com/skalder/refnote/internal/metadata"
)

// NewReference builds the body of a fresh reference note: the entry's
// metadata frontmatter followed by a citations list holding the first
// linkback line.
func NewReference(e *bibtex.Entry, citationLine string) string {
	return metadata.EncodeFrontmatter(e) + "\n" + CitationsHeading + "\n" + citationLine + "\n"
}

// ExtractEntry pulls the entry out of a reference note body: the metadata
// frontmatter first, then the legacy fenced bibtex block. A body holding
// neither yields (nil, nil), which callers treat as "no entry found".
func ExtractEntry(body string) (*bibtex.Entry, error) {
	e, err := metadata.DecodeFrontmatter(body)
	if err != nil {
		return nil, err
	}
	if e != nil {
		return e, nil
	}
	return bibtex.ParseFenced(body)
}

// pipedLink matches [[target|label]] wikilinks; the target group excludes
// anchors and unlabeled links.
var pipedLink = regexp.MustCompile(`\[\[([^\]|#]+)\|`)

// RefLinks collects the distinct targets of piped wikilinks in a content
// note body, in first-seen order. Callout linkbacks use this form, so the
// result is the set of reference notes the body cites.
func RefLinks(body string) []string {
	seen := make(map[string]bool)
	var targets []string
	for _, m := range pipedLink.FindAllStringSubmatch(body, -1) {
		target := m[1]
		if seen[target] {
			continue
		}
		seen[target] = true
		targets = append(targets, target)
	}
	return targets
}
