package model

import (
	"time"

	"passat/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldBookingNumber    = "booking_number"
	FieldCustomerID       = "customer_id"
	FieldRoomID           = "room_id"
	FieldArrivalDate      = "arrival_date"
	FieldDepartureDate    = "departure_date"
	FieldCheckInTime      = "check_in_time"
	FieldCheckOutTime     = "check_out_time"
	FieldStatus           = "status"
	FieldBookingKind      = "booking_kind"
	FieldPurpose          = "purpose"
	FieldParticipantCount = "participant_count"
	FieldOrganizerName    = "organizer_name"
	FieldOrganizerContact = "organizer_contact"
	FieldNotes            = "notes"
)

const (
	StatusPlanning  = "planning"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

const (
	KindPrivate  = "private"
	KindBusiness = "business"
	KindEvent    = "event"
)

// DefaultCheckInTime and DefaultCheckOutTime fill the house times when a
// booking does not override them.
const (
	DefaultCheckInTime  = "14:00"
	DefaultCheckOutTime = "11:00"
)

type Booking struct {
	ID               string    `db:"id"`
	BookingNumber    string    `db:"booking_number"`
	CustomerID       string    `db:"customer_id"`
	RoomID           string    `db:"room_id"`
	ArrivalDate      time.Time `db:"arrival_date"`
	DepartureDate    time.Time `db:"departure_date"`
	CheckInTime      string    `db:"check_in_time"`
	CheckOutTime     string    `db:"check_out_time"`
	Status           string    `db:"status"`
	BookingKind      string    `db:"booking_kind"`
	Purpose          string    `db:"purpose"`
	ParticipantCount int       `db:"participant_count"`
	OrganizerName    string    `db:"organizer_name"`
	OrganizerContact string    `db:"organizer_contact"`
	Notes            string    `db:"notes"`

	CustomerFirstName string          `db:"customer_first_name" table:"customers" column:"first_name"`
	CustomerLastName  string          `db:"customer_last_name"  table:"customers" column:"last_name"`
	RoomNumber        string          `db:"room_number"         table:"rooms"     column:"number"`
	RoomName          string          `db:"room_name"           table:"rooms"     column:"name"`
	NightlyRate       decimal.Decimal `db:"nightly_rate"        table:"room_types"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return `LEFT JOIN customers ON customers.id = bookings.customer_id
		LEFT JOIN rooms ON rooms.id = bookings.room_id
		LEFT JOIN room_types ON room_types.id = rooms.room_type_id`
}

// Nights returns the billable night count of the stay. The departure day is
// exclusive, so a stay of [2026-03-01, 2026-03-04) bills three nights.
func (b *Booking) Nights() int {
	return int(b.DepartureDate.Sub(b.ArrivalDate).Hours() / 24)
}

// IsActive reports whether the booking blocks its room.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPlanning || b.Status == StatusConfirmed
}

// Covers reports whether the stay occupies the room on the given day.
// The range is half-open, so the departure day itself is free again.
func (b *Booking) Covers(day time.Time) bool {
	return !b.ArrivalDate.After(day) && b.DepartureDate.After(day)
}

func (b *Booking) CustomerFullName() string {
	return b.CustomerFirstName + " " + b.CustomerLastName
}
