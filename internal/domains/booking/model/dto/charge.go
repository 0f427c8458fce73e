package dto

import (
	"time"

	"passat/internal/domains/booking/model"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	gModel "passat/shared/model"
	"passat/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateChargeRequest struct {
	ChargeDate   string          `json:"charge_date"   validate:"omitempty,date"`
	Description  string          `json:"description"   validate:"required,max=255"`
	Quantity     int             `json:"quantity"      validate:"required,min=1"`
	UnitPrice    decimal.Decimal `json:"unit_price"    validate:"required"`
	DamageBefore string          `json:"damage_before" validate:"omitempty,max=1000"`
	DamageAfter  string          `json:"damage_after"  validate:"omitempty,max=1000"`
}

func (c *CreateChargeRequest) ToModel(user, bookingID string) model.OccupancyCharge {
	chargeDate := timezone.Now()
	if c.ChargeDate != constant.Empty {
		chargeDate, _ = time.Parse(constant.DateOnlyFormat, c.ChargeDate)
	}

	return model.OccupancyCharge{
		ID:           uuid.NewString(),
		BookingID:    bookingID,
		ChargeDate:   chargeDate,
		Description:  c.Description,
		Quantity:     c.Quantity,
		UnitPrice:    c.UnitPrice,
		Total:        c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity))),
		DamageBefore: c.DamageBefore,
		DamageAfter:  c.DamageAfter,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateChargeRequest struct {
	ChargeDate   string           `db:"charge_date"   json:"charge_date"   validate:"omitempty,date"`
	Description  string           `db:"description"   json:"description"   validate:"omitempty,max=255"`
	Quantity     *int             `db:"quantity"      json:"quantity"      validate:"omitempty,min=1"`
	UnitPrice    *decimal.Decimal `db:"unit_price"    json:"unit_price"    validate:"omitempty"`
	DamageBefore string           `db:"damage_before" json:"damage_before" validate:"omitempty,max=1000"`
	DamageAfter  string           `db:"damage_after"  json:"damage_after"  validate:"omitempty,max=1000"`
}

type ChargeResponse struct {
	ID           string          `json:"id"`
	BookingID    string          `json:"booking_id"`
	ChargeDate   string          `json:"charge_date"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Total        decimal.Decimal `json:"total"`
	DamageBefore string          `json:"damage_before"`
	DamageAfter  string          `json:"damage_after"`
	gDto.Metadata
}

func (r *ChargeResponse) FromModel(mod model.OccupancyCharge) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.ChargeDate = mod.ChargeDate.Format(constant.DateOnlyFormat)
	r.Description = mod.Description
	r.Quantity = mod.Quantity
	r.UnitPrice = mod.UnitPrice
	r.Total = mod.Total
	r.DamageBefore = mod.DamageBefore
	r.DamageAfter = mod.DamageAfter
	r.Metadata.FromModel(mod.Metadata)
}

type GetChargesResponse struct {
	Charges []ChargeResponse `json:"charges"`
}

func (r *GetChargesResponse) FromModels(models []model.OccupancyCharge) {
	r.Charges = make([]ChargeResponse, len(models))
	for i, mod := range models {
		r.Charges[i].FromModel(mod)
	}
}
