package repository

//go:generate go run go.uber.org/mock/mockgen -source=./charge.go -destination=../mocks/charge_mock.go -package=mocks

import (
	"context"

	"passat/infras/otel"
	"passat/infras/postgres"
	"passat/internal/domains/booking/model"
	gDto "passat/shared/dto"
	gRepo "passat/shared/repository"
)

type OccupancyCharge interface {
	Insert(ctx context.Context, model model.OccupancyCharge) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.OccupancyCharge, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OccupancyCharge, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type chargeRepositoryImpl struct {
	gRepo.Repository[model.OccupancyCharge]
}

func NewOccupancyCharge(db *postgres.Connection, otel otel.Otel) OccupancyCharge {
	return &chargeRepositoryImpl{
		Repository: gRepo.NewRepository[model.OccupancyCharge](model.ChargeEntityName, model.ChargeTableName, model.FieldChargeID, db, otel),
	}
}
