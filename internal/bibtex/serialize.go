package bibtex

import (
	"fmt"
	"strings"
)

// Serialize renders an entry in canonical form:
//
//	@type{key,
//	  author = {...},
//	  ...
//	}
//
// Fields are emitted in FieldOrder; absent fields are omitted, not emitted
// empty. The result carries no trailing newline.
func Serialize(e *Entry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", e.Type, e.CiteKey))
	for _, name := range FieldOrder {
		if value, ok := e.Fields[name]; ok {
			b.WriteString(fmt.Sprintf("  %s = {%s},\n", name, value))
		}
	}
	b.WriteString("}")

	return b.String()
}
