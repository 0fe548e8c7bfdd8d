package model

import (
	"fmt"
	classModel "fitstudio/internal/domains/class/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldClassID     = "class_id"
	FieldClientName  = "client_name"
	FieldClientEmail = "client_email"
	FieldBookingTime = "booking_time"
)

// Booking is an immutable ledger entry. BookingTime is always UTC.
type Booking struct {
	ID          string    `db:"id"`
	ClassID     int64     `db:"class_id"`
	ClientName  string    `db:"client_name"`
	ClientEmail string    `db:"client_email"`
	BookingTime time.Time `db:"booking_time"`
}

// BookingDetail is a booking joined with the class it reserves.
type BookingDetail struct {
	ID             string    `db:"id"`
	ClassID        int64     `db:"class_id"`
	ClassName      string    `db:"class_name"       column:"name"       table:"fitness_classes"`
	ClassStartTime time.Time `db:"class_start_time" column:"start_time" table:"fitness_classes"`
	ClientName     string    `db:"client_name"`
	ClientEmail    string    `db:"client_email"`
	BookingTime    time.Time `db:"booking_time"`
}

func (BookingDetail) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s ON %s.%s = %s.%s",
		classModel.TableName, classModel.TableName, classModel.FieldID, TableName, FieldClassID)
}
