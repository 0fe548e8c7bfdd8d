package dto_test

import (
	"fitstudio/internal/domains/class/model"
	"fitstudio/internal/domains/class/model/dto"
	"fitstudio/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useIST(t *testing.T) {
	t.Helper()

	prev := timezone.GetLocation()
	loc, err := timezone.LoadLocation("+05:30")
	require.NoError(t, err)

	timezone.SetLocation(loc)
	t.Cleanup(func() { timezone.SetLocation(prev) })
}

func TestClassResponse_FromModel(t *testing.T) {
	useIST(t)

	var res dto.ClassResponse
	res.FromModel(model.Class{
		ID:              1,
		Name:            "Yoga",
		StartTime:       time.Date(2025, time.June, 10, 1, 30, 0, 0, time.UTC),
		Instructor:      "Priya Sharma",
		TotalSlots:      15,
		AvailableSlots:  14,
		DurationMinutes: 60,
	})

	assert.Equal(t, dto.ClassResponse{
		ID:              1,
		Name:            "Yoga",
		DatetimeIST:     "2025-06-10T07:00:00+05:30",
		DatetimeUTC:     "2025-06-10T01:30:00Z",
		Instructor:      "Priya Sharma",
		AvailableSlots:  14,
		TotalSlots:      15,
		DurationMinutes: 60,
	}, res)
}

func TestClassResponse_FromModel_FollowsConfiguredTimezone(t *testing.T) {
	prev := timezone.GetLocation()
	loc, err := timezone.LoadLocation("-03:00")
	require.NoError(t, err)

	timezone.SetLocation(loc)
	t.Cleanup(func() { timezone.SetLocation(prev) })

	var res dto.ClassResponse
	res.FromModel(model.Class{ID: 1, StartTime: time.Date(2025, time.June, 10, 1, 30, 0, 0, time.UTC)})

	assert.Equal(t, "2025-06-09T22:30:00-03:00", res.DatetimeIST)
	assert.Equal(t, "2025-06-10T01:30:00Z", res.DatetimeUTC)
}

func TestFromModels_Empty(t *testing.T) {
	res := dto.FromModels(nil)

	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestSampleClass_ToModel(t *testing.T) {
	useIST(t)

	// 23:00 IST on June 9th is still June 9th locally even though UTC says 17:30.
	day := time.Date(2025, time.June, 9, 17, 30, 0, 0, time.UTC)

	classes := make([]model.Class, 0, len(dto.SampleClasses))
	for _, sample := range dto.SampleClasses {
		classes = append(classes, sample.ToModel(day))
	}

	require.Len(t, classes, 4)

	assert.Equal(t, time.Date(2025, time.June, 10, 1, 30, 0, 0, time.UTC), classes[0].StartTime)
	assert.Equal(t, time.Date(2025, time.June, 10, 13, 0, 0, 0, time.UTC), classes[1].StartTime)
	assert.Equal(t, time.Date(2025, time.June, 11, 2, 30, 0, 0, time.UTC), classes[2].StartTime)
	assert.Equal(t, time.Date(2025, time.June, 12, 1, 30, 0, 0, time.UTC), classes[3].StartTime)

	for _, class := range classes {
		assert.Equal(t, class.TotalSlots, class.AvailableSlots)
		assert.Positive(t, class.DurationMinutes)
		assert.True(t, class.StartTime.After(day))
	}

	assert.Equal(t, "Zumba", classes[1].Name)
	assert.Equal(t, "Rahul Verma", classes[1].Instructor)
	assert.Equal(t, 20, classes[1].TotalSlots)
	assert.Equal(t, 45, classes[1].DurationMinutes)
	assert.Equal(t, "Amit Singh", classes[2].Instructor)
	assert.Equal(t, 12, classes[2].TotalSlots)
}
