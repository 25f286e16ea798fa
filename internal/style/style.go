// Package style renders entries as inline citations and bibliography
// entries in the supported bibliographic styles.
package style

import "fmt"

// Style selects both the inline-citation template and the
// bibliography-entry template.
type Style string

const (
	Latex   Style = "latex"
	MLA     Style = "mla"
	APA     Style = "apa"
	Chicago Style = "chicago"
)

// All lists the valid style names, for config validation and help text.
var All = []Style{Latex, MLA, APA, Chicago}

// Parse validates a style name from configuration.
func Parse(s string) (Style, error) {
	for _, v := range All {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown bibliography style: %s (valid: latex, mla, apa, chicago)", s)
}
