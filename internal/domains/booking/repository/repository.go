package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"passat/infras/otel"
	"passat/infras/postgres"
	"passat/internal/domains/booking/model"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	"passat/shared/logger"
	gRepo "passat/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	BeginSerializableTx(ctx context.Context) (*sqlx.Tx, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, arrival, departure time.Time, excludeBookingID string) (int, error)
	ListOverlapping(ctx context.Context, from, to time.Time) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) BeginSerializableTx(ctx context.Context) (*sqlx.Tx, error) {
	return repo.db.BeginSerializableTx(ctx)
}

// CountOverlappingTx counts the planning and confirmed bookings of a room
// whose half-open range [arrival_date, departure_date) intersects
// [arrival, departure). Back-to-back stays share a boundary day and do not
// count. Runs on the caller's transaction so the availability check and the
// subsequent insert observe the same snapshot.
func (repo *repositoryImpl) CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, arrival, departure time.Time, excludeBookingID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlappingTx")
	defer scope.End()

	query := `
		SELECT COUNT(*) FROM bookings
		WHERE bookings.room_id = :room_id
		  AND bookings.status IN ('planning', 'confirmed')
		  AND bookings.arrival_date < :departure
		  AND bookings.departure_date > :arrival
		  AND bookings.id != :exclude_id`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"room_id":    roomID,
		"arrival":    arrival,
		"departure":  departure,
		"exclude_id": excludeBookingID,
	}

	var count int

	prepare, err := tx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return count, nil
}

// ListOverlapping returns the planning and confirmed bookings intersecting
// [from, to), joined with customer and room, ordered by room number and
// arrival. The calendar view builds its weekly grid from this.
func (repo *repositoryImpl) ListOverlapping(ctx context.Context, from, to time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListOverlapping")
	defer scope.End()

	query := `
		SELECT bookings.id, bookings.booking_number, bookings.customer_id, bookings.room_id,
		       bookings.arrival_date, bookings.departure_date, bookings.check_in_time,
		       bookings.check_out_time, bookings.status, bookings.booking_kind, bookings.purpose,
		       bookings.participant_count, bookings.organizer_name, bookings.organizer_contact,
		       bookings.notes,
		       customers.first_name AS customer_first_name, customers.last_name AS customer_last_name,
		       rooms.number AS room_number, rooms.name AS room_name,
		       room_types.nightly_rate,
		       bookings.created_at, bookings.modified_at, bookings.created_by, bookings.modified_by
		FROM bookings
		LEFT JOIN customers ON customers.id = bookings.customer_id
		LEFT JOIN rooms ON rooms.id = bookings.room_id
		LEFT JOIN room_types ON room_types.id = rooms.room_type_id
		WHERE bookings.status IN ('planning', 'confirmed')
		  AND bookings.arrival_date < :to
		  AND bookings.departure_date > :from
		ORDER BY rooms.number ASC, bookings.arrival_date ASC`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"from": from,
		"to":   to,
	}

	var bookings []model.Booking

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &bookings, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list overlapping bookings: %w", err)
	}

	return bookings, nil
}
