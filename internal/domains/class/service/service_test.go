package service_test

import (
	"context"
	"errors"
	"fitstudio/infras/otel/mocks"
	txMocks "fitstudio/infras/postgres/mocks"
	classMocks "fitstudio/internal/domains/class/mocks"
	"fitstudio/internal/domains/class/model"
	"fitstudio/internal/domains/class/service"
	"fitstudio/shared/clock"
	gDto "fitstudio/shared/dto"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)

func TestClassService_ListUpcoming(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := classMocks.NewMockClass(ctrl)
	mockTx := txMocks.NewMockTransactor(ctrl)
	svc := service.New(mockRepo, mockTx, clock.NewMockClock(now), mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantLen   int
		wantErr   bool
	}{
		{
			name: "returns upcoming classes in order",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gDto.SortedBy("fitness_classes.start_time", gDto.SortDirAsc), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Class, error) {
						where, args := filter.GetWhereClause()
						assert.Equal(t, "(fitness_classes.start_time > :now)", where)
						assert.Equal(t, now, args["now"])

						return []model.Class{
							{ID: 1, Name: "Yoga", StartTime: now.Add(time.Hour), TotalSlots: 15, AvailableSlots: 15, DurationMinutes: 60},
							{ID: 2, Name: "Zumba", StartTime: now.Add(2 * time.Hour), TotalSlots: 20, AvailableSlots: 3, DurationMinutes: 45},
						}, nil
					})
			},
			wantLen: 2,
		},
		{
			name: "no upcoming classes renders empty list",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ListUpcoming(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, res)
			assert.Len(t, res, tt.wantLen)
		})
	}
}

func TestClassService_SeedSampleClasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := classMocks.NewMockClass(ctrl)
	mockTx := txMocks.NewMockTransactor(ctrl)
	svc := service.New(mockRepo, mockTx, clock.NewMockClock(now), mocks.NewOtel())

	runInTx := func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
		return fn(nil)
	}

	tests := []struct {
		name         string
		setupMock    func()
		wantInserted int
		wantErr      bool
	}{
		{
			name: "empty catalog is seeded",
			setupMock: func() {
				gomock.InOrder(
					mockTx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx),
					mockRepo.EXPECT().LockSeedTx(gomock.Any(), gomock.Any()).Return(nil),
					mockRepo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil),
				)
				mockRepo.EXPECT().
					InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, classes []model.Class) error {
						require.Len(t, classes, 4)

						for _, class := range classes {
							assert.True(t, class.StartTime.After(now))
							assert.Equal(t, class.TotalSlots, class.AvailableSlots)
						}

						return nil
					})
			},
			wantInserted: 4,
		},
		{
			name: "existing catalog is left alone",
			setupMock: func() {
				mockTx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockRepo.EXPECT().LockSeedTx(gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(4, nil)
			},
			wantInserted: 0,
		},
		{
			name: "lock error",
			setupMock: func() {
				mockTx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockRepo.EXPECT().LockSeedTx(gomock.Any(), gomock.Any()).Return(errors.New("lock timeout"))
			},
			wantErr: true,
		},
		{
			name: "count error",
			setupMock: func() {
				mockTx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockRepo.EXPECT().LockSeedTx(gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockTx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mockRepo.EXPECT().LockSeedTx(gomock.Any(), gomock.Any()).Return(nil)
				mockRepo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
				mockRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("check violation"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			inserted, err := svc.SeedSampleClasses(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, inserted)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantInserted, inserted)
		})
	}
}

// catalogStore mimics the classes table under read committed isolation:
// inserts become visible on commit and the seed lock is held until the
// owning transaction ends.
type catalogStore struct {
	mu        sync.Mutex
	seedLock  sync.Mutex
	committed []model.Class
	pending   map[*sqlx.Tx][]model.Class
	locked    map[*sqlx.Tx]bool
}

func newCatalogStore() *catalogStore {
	return &catalogStore{
		pending: map[*sqlx.Tx][]model.Class{},
		locked:  map[*sqlx.Tx]bool{},
	}
}

func (c *catalogStore) WithinTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	tx := &sqlx.Tx{}

	err := fn(tx)

	c.mu.Lock()
	if err == nil {
		c.committed = append(c.committed, c.pending[tx]...)
	}

	delete(c.pending, tx)

	held := c.locked[tx]
	delete(c.locked, tx)
	c.mu.Unlock()

	if held {
		c.seedLock.Unlock()
	}

	return err
}

func (c *catalogStore) LockSeedTx(_ context.Context, tx *sqlx.Tx) error {
	c.seedLock.Lock()

	c.mu.Lock()
	c.locked[tx] = true
	c.mu.Unlock()

	return nil
}

func (c *catalogStore) CountTx(_ context.Context, _ *sqlx.Tx, _ gDto.FilterGroup) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.committed), nil
}

func (c *catalogStore) InsertBulkTx(_ context.Context, tx *sqlx.Tx, classes []model.Class) error {
	// widen the window between count and commit
	time.Sleep(5 * time.Millisecond)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending[tx] = append(c.pending[tx], classes...)

	return nil
}

func (c *catalogStore) GetAll(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.Class, error) {
	return nil, errors.New("not implemented")
}

func (c *catalogStore) GetForUpdateTx(context.Context, *sqlx.Tx, gDto.FilterGroup, ...string) (model.Class, error) {
	return model.Class{}, errors.New("not implemented")
}

func (c *catalogStore) DecrementSlotTx(context.Context, *sqlx.Tx, int64) (int, bool, error) {
	return 0, false, errors.New("not implemented")
}

func TestClassService_SeedSampleClasses_ConcurrentStarts(t *testing.T) {
	store := newCatalogStore()
	svc := service.New(store, store, clock.NewMockClock(now), mocks.NewOtel())

	const starts = 8

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted []int
	)

	for range starts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			n, err := svc.SeedSampleClasses(context.Background())
			assert.NoError(t, err)

			mu.Lock()
			inserted = append(inserted, n)
			mu.Unlock()
		}()
	}

	wg.Wait()

	total := 0
	for _, n := range inserted {
		total += n
	}

	assert.Len(t, inserted, starts)
	assert.Equal(t, 4, total)
	assert.Len(t, store.committed, 4)
}
