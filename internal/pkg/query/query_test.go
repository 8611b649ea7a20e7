package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchTerms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "single", raw: "river", want: []string{"river"}},
		{name: "whitespace and commas", raw: " river, survey  north ", want: []string{"river", "survey", "north"}},
		{name: "only separators", raw: " , ,", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchTerms(tt.raw)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrdering(t *testing.T) {
	allowed := map[string]string{
		"created_at": "geoform_projects.created_at",
		"name":       "geoform_projects.name",
	}
	def := []OrderField{{Column: "geoform_projects.created_at", Desc: true}}

	tests := []struct {
		name string
		raw  string
		want []OrderField
	}{
		{name: "empty uses default", raw: "", want: def},
		{name: "ascending", raw: "name", want: []OrderField{{Column: "geoform_projects.name"}}},
		{name: "descending", raw: "-created_at", want: []OrderField{{Column: "geoform_projects.created_at", Desc: true}}},
		{
			name: "multiple with spaces",
			raw:  "name, -created_at",
			want: []OrderField{{Column: "geoform_projects.name"}, {Column: "geoform_projects.created_at", Desc: true}},
		},
		{name: "unknown dropped", raw: "password,-name", want: []OrderField{{Column: "geoform_projects.name", Desc: true}}},
		{name: "all unknown uses default", raw: "is_deleted", want: def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ordering(tt.raw, allowed, def))
		})
	}
}

func TestOrderField_String(t *testing.T) {
	assert.Equal(t, "name ASC", OrderField{Column: "name"}.String())
	assert.Equal(t, "created_at DESC", OrderField{Column: "created_at", Desc: true}.String())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, EscapeLike(`c:\dir`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}
