package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"passat/infras/otel"
	"passat/infras/postgres"
	"passat/internal/domains/invoice/model"
	gDto "passat/shared/dto"
	gRepo "passat/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Invoice interface {
	Insert(ctx context.Context, model model.Invoice) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invoice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Invoice, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Invoice) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Invoice]
	db *postgres.Connection
}

func New(db *postgres.Connection, otel otel.Otel) Invoice {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Invoice](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
	}
}

func (repo *repositoryImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return repo.db.BeginSerializableTx(ctx)
}
