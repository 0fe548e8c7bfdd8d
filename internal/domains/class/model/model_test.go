package model_test

import (
	"fitstudio/internal/domains/class/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClass_HasStarted(t *testing.T) {
	start := time.Date(2025, time.June, 10, 1, 30, 0, 0, time.UTC)
	class := model.Class{ID: 1, StartTime: start}

	assert.False(t, class.HasStarted(start.Add(-time.Second)))
	assert.True(t, class.HasStarted(start))
	assert.True(t, class.HasStarted(start.Add(time.Minute)))
}

func TestClass_IsZero(t *testing.T) {
	assert.True(t, model.Class{}.IsZero())
	assert.False(t, model.Class{ID: 3}.IsZero())
}
