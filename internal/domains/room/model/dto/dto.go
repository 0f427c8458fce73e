package dto

import (
	"passat/internal/domains/room/model"
	"passat/shared"
	gDto "passat/shared/dto"
	gModel "passat/shared/model"
	"passat/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	Number      string `json:"number"       validate:"required,max=10"`
	Name        string `json:"name"         validate:"required,max=100"`
	RoomTypeID  string `json:"room_type_id" validate:"required,uuid"`
	Capacity    int    `json:"capacity"     validate:"omitempty,min=1"`
	Active      *bool  `json:"active"       validate:"omitempty"`
	Description string `json:"description"  validate:"omitempty,max=1000"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	capacity := c.Capacity
	if capacity == 0 {
		capacity = 1
	}

	return model.Room{
		ID:          uuid.NewString(),
		Number:      c.Number,
		Name:        c.Name,
		RoomTypeID:  c.RoomTypeID,
		Capacity:    capacity,
		Active:      active,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number      string `db:"number"       json:"number"       validate:"omitempty,max=10"`
	Name        string `db:"name"         json:"name"         validate:"omitempty,max=100"`
	RoomTypeID  string `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid"`
	Capacity    *int   `db:"capacity"     json:"capacity"     validate:"omitempty,min=1"`
	Active      *bool  `db:"active"       json:"active"       validate:"omitempty"`
	Description string `db:"description"  json:"description"  validate:"omitempty,max=1000"`
}

type RoomResponse struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	Name         string          `json:"name"`
	RoomTypeID   string          `json:"room_type_id"`
	RoomTypeName string          `json:"room_type_name"`
	NightlyRate  decimal.Decimal `json:"nightly_rate"`
	Capacity     int             `json:"capacity"`
	Active       bool            `json:"active"`
	Description  string          `json:"description"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Name = model.Name
	r.RoomTypeID = model.RoomTypeID
	r.RoomTypeName = model.RoomTypeName
	r.NightlyRate = model.NightlyRate
	r.Capacity = model.Capacity
	r.Active = model.Active
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type RoomSearchResult struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name"`
}

type SearchRoomsResponse struct {
	Results []RoomSearchResult `json:"results"`
}

func (r *SearchRoomsResponse) FromModels(models []model.Room) {
	r.Results = make([]RoomSearchResult, len(models))
	for i, mod := range models {
		r.Results[i] = RoomSearchResult{
			ID:     mod.ID,
			Number: mod.Number,
			Name:   mod.Name,
		}
	}
}

type AvailableRoomResponse struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	Name         string          `json:"name"`
	RoomTypeName string          `json:"room_type_name"`
	NightlyRate  decimal.Decimal `json:"nightly_rate"`
	Capacity     int             `json:"capacity"`
}

type GetAvailableRoomsResponse struct {
	Arrival   string                  `json:"arrival"`
	Departure string                  `json:"departure"`
	Rooms     []AvailableRoomResponse `json:"rooms"`
}

func (r *GetAvailableRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]AvailableRoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i] = AvailableRoomResponse{
			ID:           mod.ID,
			Number:       mod.Number,
			Name:         mod.Name,
			RoomTypeName: mod.RoomTypeName,
			NightlyRate:  mod.NightlyRate,
			Capacity:     mod.Capacity,
		}
	}
}
