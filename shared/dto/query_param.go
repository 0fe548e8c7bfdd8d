package dto

import (
	"fmt"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// SortedBy returns query params ordering by column in the given direction.
func SortedBy(column, dir string) QueryParams {
	return QueryParams{SortBy: column, SortDir: dir}
}

// OrderClause renders the ORDER BY clause. The tie breaker column is always
// appended ascending so rows with equal sort keys come back in a stable order.
func (q QueryParams) OrderClause(tieBreaker string) string {
	dir := strings.ToUpper(q.SortDir)
	if dir != SortDirDesc {
		dir = SortDirAsc
	}

	switch {
	case q.SortBy == "" && tieBreaker == "":
		return ""
	case q.SortBy == "":
		return fmt.Sprintf("ORDER BY %s ASC", tieBreaker)
	case tieBreaker == "" || tieBreaker == q.SortBy:
		return fmt.Sprintf("ORDER BY %s %s", q.SortBy, dir)
	default:
		return fmt.Sprintf("ORDER BY %s %s, %s ASC", q.SortBy, dir, tieBreaker)
	}
}
