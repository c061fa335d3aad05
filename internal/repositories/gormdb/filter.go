package gormdb

import (
	"fmt"
	"slices"
	"strings"

	"gofund/internal/repositories"

	"gorm.io/gorm"
)

// ApplyFilter translates the backend-neutral filter into WHERE clauses.
// Plain values become equality predicates, wrapper values their operator.
func ApplyFilter(tx *gorm.DB, filter repositories.Filter) *gorm.DB {
	for field, value := range filter {
		if field == repositories.OrKey {
			if groups, ok := value.(repositories.Or); ok {
				tx = tx.Where(orClause(tx, groups))
			}
			continue
		}
		tx = applyPredicate(tx, field, value)
	}
	return tx
}

func applyPredicate(tx *gorm.DB, field string, value any) *gorm.DB {
	switch op := value.(type) {
	case repositories.Like:
		pattern := "%" + escapeLike(strings.ToLower(op.Value)) + "%"
		return tx.Where(fmt.Sprintf("LOWER(%s) LIKE ?", field), pattern)
	case repositories.In:
		return tx.Where(field+" IN ?", op.Values)
	case repositories.Ne:
		return tx.Where(field+" <> ?", op.Value)
	case repositories.Gt:
		return tx.Where(field+" > ?", op.Value)
	default:
		return tx.Where(map[string]interface{}{field: value})
	}
}

// escapeLike neutralizes LIKE wildcards so the search term matches literally.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

func orClause(tx *gorm.DB, groups repositories.Or) *gorm.DB {
	cond := tx.Session(&gorm.Session{NewDB: true})
	for i, group := range groups {
		sub := ApplyFilter(tx.Session(&gorm.Session{NewDB: true}), group)
		if i == 0 {
			cond = cond.Where(sub)
		} else {
			cond = cond.Or(sub)
		}
	}
	return cond
}

// applySort orders fields by name so multi-field sorts build the same SQL on
// every call.
func applySort(tx *gorm.DB, sort map[string]int) *gorm.DB {
	fields := make([]string, 0, len(sort))
	for field := range sort {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		if sort[field] < 0 {
			tx = tx.Order(field + " DESC")
		} else {
			tx = tx.Order(field + " ASC")
		}
	}
	return tx
}
