package model

import (
	"passat/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldNumber      = "number"
	FieldName        = "name"
	FieldRoomTypeID  = "room_type_id"
	FieldCapacity    = "capacity"
	FieldActive      = "active"
	FieldDescription = "description"
)

type Room struct {
	ID          string `db:"id"`
	Number      string `db:"number"`
	Name        string `db:"name"`
	RoomTypeID  string `db:"room_type_id"`
	Capacity    int    `db:"capacity"`
	Active      bool   `db:"active"`
	Description string `db:"description"`

	RoomTypeName string          `db:"room_type_name" table:"room_types" column:"name"`
	NightlyRate  decimal.Decimal `db:"nightly_rate"   table:"room_types"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "LEFT JOIN room_types ON room_types.id = rooms.room_type_id"
}
