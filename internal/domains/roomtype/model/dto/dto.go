package dto

import (
	"passat/internal/domains/roomtype/model"
	"passat/shared"
	gDto "passat/shared/dto"
	gModel "passat/shared/model"
	"passat/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomTypeRequest struct {
	Name        string          `json:"name"         validate:"required,max=50"`
	Category    string          `json:"category"     validate:"required,oneof=single double suite"`
	NightlyRate decimal.Decimal `json:"nightly_rate" validate:"required"`
	Description string          `json:"description"  validate:"omitempty,max=1000"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Category:    c.Category,
		NightlyRate: c.NightlyRate,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name        string           `db:"name"         json:"name"         validate:"omitempty,max=50"`
	Category    string           `db:"category"     json:"category"     validate:"omitempty,oneof=single double suite"`
	NightlyRate *decimal.Decimal `db:"nightly_rate" json:"nightly_rate" validate:"omitempty"`
	Description string           `db:"description"  json:"description"  validate:"omitempty,max=1000"`
}

type RoomTypeResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	Description string          `json:"description"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.NightlyRate = model.NightlyRate
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
