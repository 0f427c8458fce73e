package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passat/infras/otel/mocks"
	"passat/infras/postgres"
	"passat/internal/domains/room/repository"
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

func TestRoomRepository_ListAvailable(t *testing.T) {
	conn, mock := newTestDB(t)
	repo := repository.New(conn, mocks.NewOtel())

	arrival := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	departure := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	// The blocking subquery must skip bookings without a room (NOT IN over a
	// set containing NULL matches nothing), only consider planning and
	// confirmed stays, and compare the half-open range strictly on both ends
	// so a stay departing on the arrival day does not block.
	clause := regexp.QuoteMeta(
		"WHERE bookings.room_id IS NOT NULL " +
			"AND bookings.status IN ('planning', 'confirmed') " +
			"AND bookings.arrival_date < $1 " +
			"AND bookings.departure_date > $2",
	)

	columns := []string{
		"id", "number", "name", "room_type_id", "capacity", "active", "description",
		"room_type_name", "nightly_rate", "created_at", "modified_at", "created_by", "modified_by",
	}

	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(clause).
		ExpectQuery().
		WithArgs(departure, arrival).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("room-1", "101", "Seeblick", "type-1", 2, true, "",
				"Einzelzimmer Standard", "89.00", now, now, "test-user-id", "test-user-id"))

	rooms, err := repo.ListAvailable(context.Background(), arrival, departure)

	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].Number)
	assert.Equal(t, "Einzelzimmer Standard", rooms[0].RoomTypeName)
	assert.True(t, rooms[0].NightlyRate.Equal(decimal.RequireFromString("89.00")))

	assert.NoError(t, mock.ExpectationsWereMet())
}
