package model

import (
	"time"

	"passat/shared/model"

	"github.com/shopspring/decimal"
)

const (
	ChargeTableName  = "occupancy_charges"
	ChargeEntityName = "occupancy_charge"

	FieldChargeID          = "id"
	FieldChargeBookingID   = "booking_id"
	FieldChargeDate        = "charge_date"
	FieldChargeDescription = "description"
	FieldChargeQuantity    = "quantity"
	FieldChargeUnitPrice   = "unit_price"
	FieldChargeTotal       = "total"
)

// OccupancyCharge is an extra billable position attached to a booking,
// e.g. breakfast, parking or a projector rental. Total is always recomputed
// as quantity times unit price on save.
type OccupancyCharge struct {
	ID           string          `db:"id"`
	BookingID    string          `db:"booking_id"`
	ChargeDate   time.Time       `db:"charge_date"`
	Description  string          `db:"description"`
	Quantity     int             `db:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
	Total        decimal.Decimal `db:"total"`
	DamageBefore string          `db:"damage_before"`
	DamageAfter  string          `db:"damage_after"`
	model.Metadata
}
