package shared_test

import (
	"fitstudio/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{name: "joins parts", parts: []string{"limiter", "10.0.0.1", "curl/8.0"}, expected: "limiter:10.0.0.1:curl/8.0"},
		{name: "skips blank parts", parts: []string{"limiter", " ", "10.0.0.1"}, expected: "limiter:10.0.0.1"},
		{name: "no parts", parts: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.parts...))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "Ana@Example.com", shared.NormalizeEmail("  Ana@Example.com\t"))
	assert.Equal(t, "", shared.NormalizeEmail("   "))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(7), "id", "fitness_classes")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(fitness_classes.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(7)}, args)
}
