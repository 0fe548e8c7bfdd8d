package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Class=MockClassService

import (
	"context"
	"fitstudio/infras/otel"
	"fitstudio/infras/postgres"
	"fitstudio/internal/domains/class/model"
	"fitstudio/internal/domains/class/model/dto"
	"fitstudio/internal/domains/class/repository"
	"fitstudio/shared/clock"
	"fitstudio/shared/constant"
	gDto "fitstudio/shared/dto"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Class interface {
	// ListUpcoming returns classes starting strictly after now, earliest first.
	ListUpcoming(ctx context.Context) ([]dto.ClassResponse, error)
	// SeedSampleClasses inserts the sample catalog unless classes already
	// exist. It returns the number of inserted classes.
	SeedSampleClasses(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo       repository.Class
	transactor postgres.Transactor
	clock      clock.Clock
	otel       otel.Otel
}

func New(repo repository.Class, transactor postgres.Transactor, clk clock.Clock, otel otel.Otel) Class {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		clock:      clk,
		otel:       otel,
	}
}

func (s *serviceImpl) ListUpcoming(ctx context.Context) (res []dto.ClassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".class.ListUpcoming")
	defer func() {
		scope.TraceIfError(err)
		scope.End()
	}()

	now := s.clock.Now()
	scope.SetAttribute("now", now)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "now",
				Field:    model.FieldStartTime,
				Value:    now,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}

	classes, err := s.repo.GetAll(ctx, gDto.SortedBy(model.TableName+"."+model.FieldStartTime, gDto.SortDirAsc), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming classes")

		return nil, fmt.Errorf("failed to get upcoming classes: %w", err)
	}

	return dto.FromModels(classes), nil
}

func (s *serviceImpl) SeedSampleClasses(ctx context.Context) (inserted int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".class.SeedSampleClasses")
	defer func() {
		scope.TraceIfError(err)
		scope.End()
	}()

	today := s.clock.Now()

	classes := make([]model.Class, 0, len(dto.SampleClasses))
	for _, sample := range dto.SampleClasses {
		classes = append(classes, sample.ToModel(today))
	}

	// The count and the insert share one transaction behind an advisory lock,
	// so concurrent starts against an empty table seed exactly once.
	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockSeedTx(ctx, tx); err != nil {
			return err
		}

		count, err := s.repo.CountTx(ctx, tx, gDto.FilterGroup{})
		if err != nil {
			return fmt.Errorf("failed to count classes: %w", err)
		}

		if count > 0 {
			log.Info().Int("classes", count).Msg("class catalog already seeded, skipping")

			return nil
		}

		if err := s.repo.InsertBulkTx(ctx, tx, classes); err != nil {
			return err
		}

		inserted = len(classes)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to seed sample classes")

		return 0, fmt.Errorf("failed to seed sample classes: %w", err)
	}

	if inserted > 0 {
		log.Info().Int("classes", inserted).Msg("seeded sample classes")
	}

	return inserted, nil
}
