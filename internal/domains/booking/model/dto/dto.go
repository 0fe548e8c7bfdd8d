package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fitstudio/internal/domains/booking/model"
	classModel "fitstudio/internal/domains/class/model"
	"fitstudio/shared/constant"
	"fitstudio/shared/timezone"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MessageBookingSuccessful = "Booking successful"

var errInvalidClassID = errors.New("class_id must be an integer")

// ClassID accepts a JSON number or a numeric string.
type ClassID int64

func (c *ClassID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = 0

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return errInvalidClassID
		}

		data = []byte(strings.TrimSpace(raw))
	}

	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errInvalidClassID
	}

	*c = ClassID(id)

	return nil
}

type CreateBookingRequest struct {
	ClassID     ClassID `json:"class_id"     validate:"gt=0"                            swaggertype:"integer" example:"1"`
	ClientName  string  `json:"client_name"  validate:"notblank,printable,max=100"      example:"Alice"`
	ClientEmail string  `json:"client_email" validate:"notblank,max=120,contact_email" example:"a@x.com"`
}

// Normalize trims the client fields.
func (r *CreateBookingRequest) Normalize() {
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.ClientEmail = strings.TrimSpace(r.ClientEmail)
}

func (r *CreateBookingRequest) ToModel(now time.Time) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		ClassID:     int64(r.ClassID),
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		BookingTime: now.UTC(),
	}
}

type CreateBookingResponse struct {
	Message          string `json:"message"            example:"Booking successful"`
	BookingID        string `json:"booking_id"         example:"9b2f6c1e-8a43-4c1c-9d0e-0f7f7d6f1a2b"`
	ClassName        string `json:"class_name"         example:"Yoga"`
	ClassDatetimeIST string `json:"class_datetime_ist" example:"2025-06-10T07:00:00+05:30"`
	AvailableSlots   int    `json:"available_slots"    example:"14"`
}

func (r *CreateBookingResponse) FromModel(booking model.Booking, class classModel.Class) {
	r.Message = MessageBookingSuccessful
	r.BookingID = booking.ID
	r.ClassName = class.Name
	r.ClassDatetimeIST = timezone.Format(class.StartTime, constant.DateFormat)
	r.AvailableSlots = class.AvailableSlots
}

type BookingDetailResponse struct {
	BookingID        string `json:"booking_id"         example:"9b2f6c1e-8a43-4c1c-9d0e-0f7f7d6f1a2b"`
	ClassID          int64  `json:"class_id"           example:"1"`
	ClassName        string `json:"class_name"         example:"Yoga"`
	ClassDatetimeIST string `json:"class_datetime_ist" example:"2025-06-10T07:00:00+05:30"`
	ClientName       string `json:"client_name"        example:"Alice"`
	ClientEmail      string `json:"client_email"       example:"a@x.com"`
	BookingTime      string `json:"booking_time"       example:"2025-06-09T10:15:00Z"`
}

func (r *BookingDetailResponse) FromModel(detail model.BookingDetail) {
	r.BookingID = detail.ID
	r.ClassID = detail.ClassID
	r.ClassName = detail.ClassName
	r.ClassDatetimeIST = timezone.Format(detail.ClassStartTime, constant.DateFormat)
	r.ClientName = detail.ClientName
	r.ClientEmail = detail.ClientEmail
	r.BookingTime = detail.BookingTime.UTC().Format(constant.DateFormat)
}

// FromDetails never returns nil so no match renders as [].
func FromDetails(details []model.BookingDetail) []BookingDetailResponse {
	res := make([]BookingDetailResponse, len(details))
	for i, detail := range details {
		res[i].FromModel(detail)
	}

	return res
}

// BookingCreatedEvent is published after a booking commits.
type BookingCreatedEvent struct {
	BookingID      string    `json:"booking_id"`
	ClassID        int64     `json:"class_id"`
	ClassName      string    `json:"class_name"`
	ClassStartTime time.Time `json:"class_start_time"`
	ClientName     string    `json:"client_name"`
	ClientEmail    string    `json:"client_email"`
	BookingTime    time.Time `json:"booking_time"`
	AvailableSlots int       `json:"available_slots"`
}

func (e *BookingCreatedEvent) FromModel(booking model.Booking, class classModel.Class) {
	e.BookingID = booking.ID
	e.ClassID = booking.ClassID
	e.ClassName = class.Name
	e.ClassStartTime = class.StartTime.UTC()
	e.ClientName = booking.ClientName
	e.ClientEmail = booking.ClientEmail
	e.BookingTime = booking.BookingTime
	e.AvailableSlots = class.AvailableSlots
}
