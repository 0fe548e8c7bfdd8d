package booking

import (
	"net/http"

	"fitstudio/infras/otel"
	"fitstudio/internal/domains/booking/model/dto"
	"fitstudio/internal/domains/booking/service"
	"fitstudio/shared/constant"
	"fitstudio/shared/failure"
	"fitstudio/shared/validator"
	"fitstudio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/book", handler.CreateBooking)
	router.Get("/bookings", handler.ListBookings)
}

// CreateBooking reserves one slot of a class.
// @Summary Book a class
// @Description Reserve one slot of an upcoming class. class_id may be a number or a numeric string.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking request"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Error "Missing or invalid fields"
// @Failure 404 {object} response.Error "Unknown class"
// @Failure 409 {object} response.Error "Class full or already started"
// @Failure 500 {object} response.Error
// @Router /book [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid booking request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to create booking")
		}

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("booking created " + res.BookingID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// ListBookings lists the bookings made with an email address.
// @Summary List bookings by email
// @Description Bookings are matched case insensitively and returned oldest first.
// @Tags Booking
// @Produce json
// @Param email query string true "Client email"
// @Success 200 {array} dto.BookingDetailResponse
// @Failure 400 {object} response.Error "Missing email"
// @Failure 500 {object} response.Error
// @Router /bookings [get]
func (handler *Handler) ListBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListBookings")
	defer scope.End()

	email := request.URL.Query().Get(constant.RequestParamEmail)

	res, err := handler.service.ListByEmail(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
