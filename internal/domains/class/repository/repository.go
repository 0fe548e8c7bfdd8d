package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fitstudio/infras/otel"
	"fitstudio/infras/postgres"
	"fitstudio/internal/domains/class/model"
	"fitstudio/shared/constant"
	gDto "fitstudio/shared/dto"
	"fitstudio/shared/logger"
	gRepo "fitstudio/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const queryDecrementSlot = `UPDATE fitness_classes
SET available_slots = available_slots - 1
WHERE id = $1 AND available_slots > 0
RETURNING available_slots`

const queryLockSeed = `SELECT pg_advisory_xact_lock($1)`

// seedLockKey identifies the catalog seeding advisory lock.
const seedLockKey int64 = 0x66697473656564

type Class interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Class, error)
	CountTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int, error)
	// LockSeedTx serializes catalog seeding until sqltx ends.
	LockSeedTx(ctx context.Context, sqltx *sqlx.Tx) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Class) error
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Class, error)
	// DecrementSlotTx takes one slot from the class. updated is false when the
	// class had no slot left, in which case nothing changed. A rejected slot
	// check constraint is reported the same way.
	DecrementSlotTx(ctx context.Context, sqltx *sqlx.Tx, id int64) (remaining int, updated bool, err error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Class]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Class {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Class](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) DecrementSlotTx(ctx context.Context, sqltx *sqlx.Tx, id int64) (remaining int, updated bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".class.DecrementSlotTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryDecrementSlot)

	err = sqltx.QueryRowxContext(ctx, queryDecrementSlot, id).Scan(&remaining)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeCheckViolation {
		return 0, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, false, fmt.Errorf("failed to decrement available slots: %w", err)
	}

	return remaining, true, nil
}

func (r *repositoryImpl) LockSeedTx(ctx context.Context, sqltx *sqlx.Tx) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".class.LockSeedTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryLockSeed)

	_, err := sqltx.ExecContext(ctx, queryLockSeed, seedLockKey)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to acquire seed lock: %w", err)
	}

	return nil
}
