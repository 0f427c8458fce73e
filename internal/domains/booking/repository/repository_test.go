package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passat/infras/otel/mocks"
	"passat/infras/postgres"
	"passat/internal/domains/booking/repository"
)

// newTestDB backs the repository with sqlmock so the generated SQL and its
// parameters can be asserted without a live database.
func newTestDB(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(false))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlx.BindDriver("sqlmock", sqlx.DOLLAR)

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	return &postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mock
}

// overlapClause is the predicate deciding room availability. The comparisons
// are strict on both ends, so back-to-back stays sharing a boundary day never
// overlap, and only planning and confirmed stays block; cancelled never does.
var overlapClause = regexp.QuoteMeta(
	"WHERE bookings.room_id = $1 " +
		"AND bookings.status IN ('planning', 'confirmed') " +
		"AND bookings.arrival_date < $2 " +
		"AND bookings.departure_date > $3 " +
		"AND bookings.id != $4",
)

func TestBookingRepository_CountOverlappingTx(t *testing.T) {
	arrival := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	departure := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		count int
	}{
		{
			name:  "identical range already booked",
			count: 1,
		},
		{
			name:  "room is free",
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newTestDB(t)
			repo := repository.New(conn, mocks.NewOtel())

			mock.ExpectBegin()
			mock.ExpectPrepare(overlapClause).
				ExpectQuery().
				WithArgs("room-1", departure, arrival, "").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			tx, err := repo.BeginSerializableTx(context.Background())
			require.NoError(t, err)

			count, err := repo.CountOverlappingTx(context.Background(), tx, "room-1", arrival, departure, "")

			require.NoError(t, err)
			assert.Equal(t, tt.count, count)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_CountOverlappingTx_ExcludesOwnBooking(t *testing.T) {
	arrival := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	departure := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	conn, mock := newTestDB(t)
	repo := repository.New(conn, mocks.NewOtel())

	// A stay being moved must not collide with itself.
	mock.ExpectBegin()
	mock.ExpectPrepare(overlapClause).
		ExpectQuery().
		WithArgs("room-1", departure, arrival, "booking-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	tx, err := repo.BeginSerializableTx(context.Background())
	require.NoError(t, err)

	count, err := repo.CountOverlappingTx(context.Background(), tx, "room-1", arrival, departure, "booking-1")

	require.NoError(t, err)
	assert.Equal(t, 0, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ListOverlapping(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	conn, mock := newTestDB(t)
	repo := repository.New(conn, mocks.NewOtel())

	clause := regexp.QuoteMeta(
		"WHERE bookings.status IN ('planning', 'confirmed') " +
			"AND bookings.arrival_date < $1 " +
			"AND bookings.departure_date > $2",
	)

	mock.ExpectPrepare(clause).
		ExpectQuery().
		WithArgs(to, from).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_number"}))

	bookings, err := repo.ListOverlapping(context.Background(), from, to)

	require.NoError(t, err)
	assert.Empty(t, bookings)

	assert.NoError(t, mock.ExpectationsWereMet())
}
