package repository_test

import (
	"context"
	"fitstudio/infras/otel/mocks"
	"fitstudio/infras/postgres"
	"fitstudio/shared"
	"fitstudio/shared/dto"
	"fitstudio/shared/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type session struct {
	ID       int64     `db:"id"        insert:"-"`
	Title    string    `db:"title"`
	StartsAt time.Time `db:"starts_at"`
}

type sessionDetail struct {
	ID       int64  `db:"id"`
	Title    string `db:"title"`
	RoomName string `db:"room_name" column:"name" table:"rooms"`
}

func (sessionDetail) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = sessions.room_id"
}

func newDB(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	return postgres.NewFromDB(sqlxDB), mock
}

func TestInsertColumnsSkipGenerated(t *testing.T) {
	conn, _ := newDB(t)

	repo := repository.NewRepository[session]("session", "sessions", "id", conn, mocks.NewOtel())

	assert.Equal(t, []string{"title", "starts_at"}, repo.InsertColumns)
}

func TestInsertTx(t *testing.T) {
	conn, mock := newDB(t)
	repo := repository.NewRepository[session]("session", "sessions", "id", conn, mocks.NewOtel())

	startsAt := time.Date(2025, time.June, 10, 1, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO sessions \(title, starts_at\) VALUES \(\$1, \$2\)`).
		WithArgs("Yoga", startsAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := conn.Write.Beginx()
	require.NoError(t, err)

	err = repo.InsertTx(context.Background(), tx, session{Title: "Yoga", StartsAt: startsAt})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBulkTxEmpty(t *testing.T) {
	conn, mock := newDB(t)
	repo := repository.NewRepository[session]("session", "sessions", "id", conn, mocks.NewOtel())

	mock.ExpectBegin()
	mock.ExpectRollback()

	tx, err := conn.Write.Beginx()
	require.NoError(t, err)

	err = repo.InsertBulkTx(context.Background(), tx, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllWithJoin(t *testing.T) {
	conn, mock := newDB(t)
	repo := repository.NewRepository[sessionDetail]("session_detail", "sessions", "id", conn, mocks.NewOtel())

	mock.ExpectPrepare(`SELECT sessions\.id, sessions\.title, rooms\.name AS room_name FROM sessions JOIN rooms ON rooms\.id = sessions\.room_id ` +
		`WHERE \(sessions\.id = \$1\) ORDER BY sessions\.id ASC`).
		ExpectQuery().
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "room_name"}).AddRow(int64(7), "Yoga", "Studio A"))

	details, err := repo.GetAll(
		context.Background(),
		dto.QueryParams{},
		shared.FilterByID(int64(7), "id", "sessions"),
	)

	require.NoError(t, err)
	assert.Equal(t, []sessionDetail{{ID: 7, Title: "Yoga", RoomName: "Studio A"}}, details)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetForUpdateTxRequiresFilter(t *testing.T) {
	conn, mock := newDB(t)
	repo := repository.NewRepository[session]("session", "sessions", "id", conn, mocks.NewOtel())

	mock.ExpectBegin()

	tx, err := conn.Write.Beginx()
	require.NoError(t, err)

	_, err = repo.GetForUpdateTx(context.Background(), tx, dto.FilterGroup{})
	assert.Error(t, err)
}

func TestGetForUpdateTxNoRows(t *testing.T) {
	conn, mock := newDB(t)
	repo := repository.NewRepository[session]("session", "sessions", "id", conn, mocks.NewOtel())

	mock.ExpectBegin()
	mock.ExpectPrepare(`SELECT sessions\.id, sessions\.title, sessions\.starts_at FROM sessions\s+WHERE \(sessions\.id = \$1\) FOR UPDATE`).
		ExpectQuery().
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "starts_at"}))

	tx, err := conn.Write.Beginx()
	require.NoError(t, err)

	got, err := repo.GetForUpdateTx(context.Background(), tx, shared.FilterByID(int64(99), "id", "sessions"))

	require.NoError(t, err)
	assert.Equal(t, session{}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountTx(t *testing.T) {
	conn, mock := newDB(t)
	repo := repository.NewRepository[session]("session", "sessions", "id", conn, mocks.NewOtel())

	mock.ExpectBegin()
	mock.ExpectPrepare(`SELECT COUNT\(sessions\.id\) FROM sessions`).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	tx, err := conn.Write.Beginx()
	require.NoError(t, err)

	count, err := repo.CountTx(context.Background(), tx, dto.FilterGroup{})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, 0, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
