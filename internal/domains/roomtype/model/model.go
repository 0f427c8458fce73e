package model

import (
	"passat/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID          = "id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldNightlyRate = "nightly_rate"
	FieldDescription = "description"
)

const (
	CategorySingle = "single"
	CategoryDouble = "double"
	CategorySuite  = "suite"
)

type RoomType struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	NightlyRate decimal.Decimal `db:"nightly_rate"`
	Description string          `db:"description"`
	model.Metadata
}
