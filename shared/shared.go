package shared

import (
	"strings"

	"fitstudio/shared/dto"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the non empty parts with a colon.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			keys = append(keys, part)
		}
	}

	return strings.Join(keys, cacheKeySeparator)
}

// NormalizeEmail trims surrounding whitespace. Case is kept as given and
// matching is done case insensitively in queries.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
