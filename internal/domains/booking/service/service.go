package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fitstudio/config"
	"fitstudio/infras/kafka"
	"fitstudio/infras/otel"
	"fitstudio/infras/postgres"
	"fitstudio/internal/domains/booking/model"
	"fitstudio/internal/domains/booking/model/dto"
	"fitstudio/internal/domains/booking/repository"
	classModel "fitstudio/internal/domains/class/model"
	classRepo "fitstudio/internal/domains/class/repository"
	"fitstudio/shared"
	"fitstudio/shared/clock"
	"fitstudio/shared/constant"
	gDto "fitstudio/shared/dto"
	"fitstudio/shared/failure"
	"fitstudio/shared/validator"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var (
	ErrClassNotFound       = failure.NotFound("class not found")
	ErrClassAlreadyStarted = failure.Conflict("class has already started")
	ErrNoSlotsAvailable    = failure.Conflict("no available slots for this class")
	ErrInvalidClient       = failure.BadRequestFromString("client_name and client_email are required")
	ErrEmailRequired       = failure.BadRequestFromString("email query parameter is required")
)

type Booking interface {
	// Book reserves one slot of a class for the client. The slot decrement
	// and the booking insert commit together or not at all.
	Book(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	// ListByEmail returns the bookings made with email, matched case
	// insensitively, oldest first.
	ListByEmail(ctx context.Context, email string) ([]dto.BookingDetailResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	classRepo  classRepo.Class
	transactor postgres.Transactor
	publisher  kafka.Client
	clock      clock.Clock
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	classRepo classRepo.Class,
	transactor postgres.Transactor,
	publisher kafka.Client,
	clk clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		classRepo:  classRepo,
		transactor: transactor,
		publisher:  publisher,
		clock:      clk,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) Book(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Book")
	defer func() {
		scope.TraceIfError(err)
		scope.End()
	}()

	req.Normalize()

	if req.ClientName == constant.Empty || req.ClientEmail == constant.Empty {
		return res, ErrInvalidClient
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	scope.SetAttribute("class_id", int64(req.ClassID))

	now := s.clock.Now()

	var (
		class   classModel.Class
		booking model.Booking
	)

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		locked, err := s.classRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(int64(req.ClassID), classModel.FieldID, classModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get class: %w", err)
		}

		if locked.IsZero() {
			return ErrClassNotFound
		}

		if locked.HasStarted(now) {
			return ErrClassAlreadyStarted
		}

		if locked.AvailableSlots <= 0 {
			return ErrNoSlotsAvailable
		}

		remaining, updated, err := s.classRepo.DecrementSlotTx(ctx, tx, locked.ID)
		if err != nil {
			return fmt.Errorf("failed to decrement available slots: %w", err)
		}

		if !updated {
			return ErrNoSlotsAvailable
		}

		locked.AvailableSlots = remaining

		created := req.ToModel(now)

		err = s.repo.InsertTx(ctx, tx, created)
		if errors.Is(err, repository.ErrUnknownClass) {
			return ErrClassNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		class, booking = locked, created

		return nil
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			log.Info().Int64("class_id", int64(req.ClassID)).Str("reason", fail.Message).Msg("booking rejected")

			return res, err //nolint:wrapcheck
		}

		log.Error().Err(err).Int64("class_id", int64(req.ClassID)).Msg("failed to book class")

		return res, fmt.Errorf("failed to book class: %w", err)
	}

	log.Info().
		Str("booking_id", booking.ID).
		Int64("class_id", class.ID).
		Int("available_slots", class.AvailableSlots).
		Msg("booking created")

	s.publishBookingCreated(ctx, booking, class)

	res.FromModel(booking, class)

	return res, nil
}

// publishBookingCreated runs after commit and never affects the booking.
// Delivery happens in the background; the publisher drains it on Close.
func (s *serviceImpl) publishBookingCreated(ctx context.Context, booking model.Booking, class classModel.Class) {
	var event dto.BookingCreatedEvent
	event.FromModel(booking, class)

	ctx, scope := s.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.created")

	s.publisher.SendMessagesAsync(ctx, s.cfg.Kafka.Topics.BookingCreated, func(err error) {
		defer scope.End()

		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to publish booking created event")
		}
	}, kafka.Message{
		Key:   strconv.FormatInt(event.ClassID, 10),
		Value: event,
	})
}

func (s *serviceImpl) ListByEmail(ctx context.Context, email string) (res []dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListByEmail")
	defer func() {
		scope.TraceIfError(err)
		scope.End()
	}()

	email = shared.NormalizeEmail(email)
	if email == constant.Empty {
		return nil, ErrEmailRequired
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldClientEmail,
				Value:    email,
				Operator: gDto.FilterOperatorEqFold,
				Table:    model.TableName,
			},
		},
	}

	details, err := s.repo.GetDetails(ctx, gDto.SortedBy(model.TableName+"."+model.FieldBookingTime, gDto.SortDirAsc), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by email")

		return nil, fmt.Errorf("failed to get bookings by email: %w", err)
	}

	return dto.FromDetails(details), nil
}
