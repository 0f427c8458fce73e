package repository

//go:generate go run go.uber.org/mock/mockgen -source=./lineitem.go -destination=../mocks/lineitem_mock.go -package=mocks

import (
	"context"

	"passat/infras/otel"
	"passat/infras/postgres"
	"passat/internal/domains/invoice/model"
	gDto "passat/shared/dto"
	gRepo "passat/shared/repository"

	"github.com/jmoiron/sqlx"
)

type InvoiceLineItem interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.InvoiceLineItem, error)
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.InvoiceLineItem) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type lineItemRepositoryImpl struct {
	gRepo.Repository[model.InvoiceLineItem]
}

func NewInvoiceLineItem(db *postgres.Connection, otel otel.Otel) InvoiceLineItem {
	return &lineItemRepositoryImpl{
		Repository: gRepo.NewRepository[model.InvoiceLineItem](model.LineItemEntityName, model.LineItemTableName, model.FieldLineItemID, db, otel),
	}
}
