package dto

import (
	"fitstudio/internal/domains/class/model"
	"fitstudio/shared/constant"
	"fitstudio/shared/timezone"
	"time"
)

type ClassResponse struct {
	ID              int64  `json:"id"               example:"1"`
	Name            string `json:"name"             example:"Yoga"`
	DatetimeIST     string `json:"datetime_ist"     example:"2025-06-10T07:00:00+05:30"`
	DatetimeUTC     string `json:"datetime_utc"     example:"2025-06-10T01:30:00Z"`
	Instructor      string `json:"instructor"       example:"Priya Sharma"`
	AvailableSlots  int    `json:"available_slots"  example:"15"`
	TotalSlots      int    `json:"total_slots"      example:"15"`
	DurationMinutes int    `json:"duration_minutes" example:"60"`
}

func (r *ClassResponse) FromModel(class model.Class) {
	r.ID = class.ID
	r.Name = class.Name
	r.DatetimeIST = timezone.Format(class.StartTime, constant.DateFormat)
	r.DatetimeUTC = class.StartTime.UTC().Format(constant.DateFormat)
	r.Instructor = class.Instructor
	r.AvailableSlots = class.AvailableSlots
	r.TotalSlots = class.TotalSlots
	r.DurationMinutes = class.DurationMinutes
}

// FromModels never returns nil so an empty catalog renders as [].
func FromModels(classes []model.Class) []ClassResponse {
	res := make([]ClassResponse, len(classes))
	for i, class := range classes {
		res[i].FromModel(class)
	}

	return res
}

// SampleClass describes a seeded session by its wall-clock time in the
// display timezone, relative to the seeding day.
type SampleClass struct {
	Name            string
	Instructor      string
	DayOffset       int
	Hour            int
	Minute          int
	TotalSlots      int
	DurationMinutes int
}

func (s SampleClass) ToModel(day time.Time) model.Class {
	local := timezone.ToAppTime(day)

	return model.Class{
		Name:            s.Name,
		StartTime:       timezone.Date(local.Year(), local.Month(), local.Day()+s.DayOffset, s.Hour, s.Minute),
		Instructor:      s.Instructor,
		TotalSlots:      s.TotalSlots,
		AvailableSlots:  s.TotalSlots,
		DurationMinutes: s.DurationMinutes,
	}
}

var SampleClasses = []SampleClass{
	{Name: "Yoga", Instructor: "Priya Sharma", DayOffset: 1, Hour: 7, Minute: 0, TotalSlots: 15, DurationMinutes: 60},
	{Name: "Zumba", Instructor: "Rahul Verma", DayOffset: 1, Hour: 18, Minute: 30, TotalSlots: 20, DurationMinutes: 45},
	{Name: "HIIT", Instructor: "Amit Singh", DayOffset: 2, Hour: 8, Minute: 0, TotalSlots: 12, DurationMinutes: 30},
	{Name: "Yoga", Instructor: "Priya Sharma", DayOffset: 3, Hour: 7, Minute: 0, TotalSlots: 15, DurationMinutes: 60},
}
