package dto_test

import (
	"fitstudio/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_OrderClause(t *testing.T) {
	tests := []struct {
		name       string
		params     dto.QueryParams
		tieBreaker string
		expected   string
	}{
		{
			name:       "sort with tie breaker",
			params:     dto.SortedBy("fitness_classes.start_time", dto.SortDirAsc),
			tieBreaker: "fitness_classes.id",
			expected:   "ORDER BY fitness_classes.start_time ASC, fitness_classes.id ASC",
		},
		{
			name:       "descending sort keeps ascending tie breaker",
			params:     dto.SortedBy("booking_time", "desc"),
			tieBreaker: "id",
			expected:   "ORDER BY booking_time DESC, id ASC",
		},
		{
			name:       "unknown direction falls back to ascending",
			params:     dto.SortedBy("booking_time", "sideways"),
			tieBreaker: "",
			expected:   "ORDER BY booking_time ASC",
		},
		{
			name:       "tie breaker only",
			params:     dto.QueryParams{},
			tieBreaker: "id",
			expected:   "ORDER BY id ASC",
		},
		{
			name:       "same column is not repeated",
			params:     dto.SortedBy("id", dto.SortDirDesc),
			tieBreaker: "id",
			expected:   "ORDER BY id DESC",
		},
		{
			name:     "nothing to order by",
			params:   dto.QueryParams{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.OrderClause(tt.tieBreaker))
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "id", Value: int64(3), Operator: dto.FilterOperatorEq, Table: "fitness_classes"},
			wantWhere: "fitness_classes.id = :id",
			wantArgs:  map[string]any{"id": int64(3)},
		},
		{
			name:      "case insensitive equality",
			filter:    dto.Filter{Field: "client_email", Value: "A@X.com", Operator: dto.FilterOperatorEqFold, Table: "bookings"},
			wantWhere: "LOWER(bookings.client_email) = LOWER(:client_email)",
			wantArgs:  map[string]any{"client_email": "A@X.com"},
		},
		{
			name:      "strictly greater",
			filter:    dto.Filter{Field: "start_time", Value: now, Operator: dto.FilterOperatorGreater, ArgName: "now"},
			wantWhere: "start_time > :now",
			wantArgs:  map[string]any{"now": now},
		},
		{
			name:      "strictly less",
			filter:    dto.Filter{Field: "start_time", Value: now, Operator: dto.FilterOperatorLess},
			wantWhere: "start_time < :start_time",
			wantArgs:  map[string]any{"start_time": now},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "id", Value: []int{1, 2}, Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id_0, :id_1)",
			wantArgs:  map[string]any{"id_0": 1, "id_1": 2},
		},
		{
			name:      "in with empty slice",
			filter:    dto.Filter{Field: "id", Value: []int{}, Operator: dto.FilterOperatorIn},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull, Table: "bookings"},
			wantWhere: "bookings.deleted_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: 1, Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "class_id", Value: int64(1), Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "client_email", Value: "a@x.com", Operator: dto.FilterOperatorEqFold},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(class_id = :class_id AND LOWER(client_email) = LOWER(:client_email))", where)
	assert.Equal(t, map[string]any{"class_id": int64(1), "client_email": "a@x.com"}, args)

	nested := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: 1, Operator: "between"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "name", Value: "Yoga", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "name", ArgName: "alt", Value: "HIIT", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args = nested.GetWhereClause()
	assert.Equal(t, "((name = :name OR name = :alt))", where)
	assert.Equal(t, map[string]any{"name": "Yoga", "alt": "HIIT"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
