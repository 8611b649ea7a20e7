// Package query implements the list query grammar shared by the admin
// collections: free-text search terms and comma-separated ordering fields.
package query

import (
	"strings"
	"unicode"
)

// OrderField is one resolved ORDER BY term.
type OrderField struct {
	Column string
	Desc   bool
}

func (o OrderField) String() string {
	if o.Desc {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// SearchTerms splits a search parameter on whitespace and commas. Empty
// input yields no terms.
func SearchTerms(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// Ordering resolves a comma-separated ordering parameter ("-created_at,name")
// against the allowed fields, which map public names to columns. Unknown
// fields are dropped; when nothing valid remains def is returned.
func Ordering(raw string, allowed map[string]string, def []OrderField) []OrderField {
	var out []OrderField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		col, ok := allowed[name]
		if !ok {
			continue
		}
		out = append(out, OrderField{Column: col, Desc: desc})
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// EscapeLike escapes LIKE wildcards so a term matches literally.
func EscapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
