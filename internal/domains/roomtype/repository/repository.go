package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"passat/infras/otel"
	"passat/infras/postgres"
	"passat/internal/domains/roomtype/model"
	gDto "passat/shared/dto"
	gRepo "passat/shared/repository"
)

type RoomType interface {
	Insert(ctx context.Context, model model.RoomType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomType]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
