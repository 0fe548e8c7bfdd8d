package model

import "time"

const (
	TableName  = "fitness_classes"
	EntityName = "class"

	FieldID              = "id"
	FieldName            = "name"
	FieldStartTime       = "start_time"
	FieldInstructor      = "instructor"
	FieldTotalSlots      = "total_slots"
	FieldAvailableSlots  = "available_slots"
	FieldDurationMinutes = "duration_minutes"
)

// Class is one scheduled session. StartTime is always UTC.
type Class struct {
	ID              int64     `db:"id"               insert:"-"`
	Name            string    `db:"name"`
	StartTime       time.Time `db:"start_time"`
	Instructor      string    `db:"instructor"`
	TotalSlots      int       `db:"total_slots"`
	AvailableSlots  int       `db:"available_slots"`
	DurationMinutes int       `db:"duration_minutes"`
}

// IsZero reports whether the class was not found.
func (c Class) IsZero() bool {
	return c.ID == 0
}

// HasStarted reports whether the class starts at or before now.
func (c Class) HasStarted(now time.Time) bool {
	return !c.StartTime.After(now)
}
