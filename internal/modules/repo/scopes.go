package repo

import (
	"strings"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/pkg/query"
	"gorm.io/gorm"
)

// applySearch requires every term to match at least one of the columns,
// case-insensitively.
func applySearch(q *gorm.DB, terms []string, columns []string) *gorm.DB {
	for _, term := range terms {
		pattern := "%" + query.EscapeLike(term) + "%"
		ors := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			ors[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		q = q.Where("("+strings.Join(ors, " OR ")+")", args...)
	}
	return q
}

// applyOrdering orders by the given fields and then by tiebreak so that
// pages are stable.
func applyOrdering(q *gorm.DB, fields []query.OrderField, tiebreak string) *gorm.DB {
	for _, f := range fields {
		q = q.Order(f.String())
	}
	return q.Order(tiebreak)
}
