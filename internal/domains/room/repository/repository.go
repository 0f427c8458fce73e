package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"passat/infras/otel"
	"passat/infras/postgres"
	"passat/internal/domains/room/model"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	"passat/shared/logger"
	gRepo "passat/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListAvailable(ctx context.Context, arrival, departure time.Time) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListAvailable returns every active room with no planning or confirmed
// booking overlapping the half-open range [arrival, departure).
func (repo *repositoryImpl) ListAvailable(ctx context.Context, arrival, departure time.Time) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListAvailable")
	defer scope.End()

	query := `
		SELECT rooms.id, rooms.number, rooms.name, rooms.room_type_id, rooms.capacity,
		       rooms.active, rooms.description,
		       room_types.name AS room_type_name, room_types.nightly_rate,
		       rooms.created_at, rooms.modified_at, rooms.created_by, rooms.modified_by
		FROM rooms
		LEFT JOIN room_types ON room_types.id = rooms.room_type_id
		WHERE rooms.active = true
		  AND rooms.id NOT IN (
			SELECT bookings.room_id FROM bookings
			WHERE bookings.room_id IS NOT NULL
			  AND bookings.status IN ('planning', 'confirmed')
			  AND bookings.arrival_date < :departure
			  AND bookings.departure_date > :arrival
		  )
		ORDER BY rooms.number ASC`

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"arrival":   arrival,
		"departure": departure,
	}

	var rooms []model.Room

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &rooms, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return rooms, nil
}
