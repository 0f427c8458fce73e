package dto

import (
	"time"

	"passat/internal/domains/booking/model"
	"passat/shared"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	gModel "passat/shared/model"
	"passat/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	CustomerID       string `json:"customer_id"       validate:"required,uuid"`
	RoomID           string `json:"room_id"           validate:"required,uuid"`
	ArrivalDate      string `json:"arrival_date"      validate:"required,date"`
	DepartureDate    string `json:"departure_date"    validate:"required,date"`
	CheckInTime      string `json:"check_in_time"     validate:"omitempty,clocktime"`
	CheckOutTime     string `json:"check_out_time"    validate:"omitempty,clocktime"`
	Status           string `json:"status"            validate:"omitempty,oneof=planning confirmed"`
	BookingKind      string `json:"booking_kind"      validate:"omitempty,oneof=private business event"`
	Purpose          string `json:"purpose"           validate:"omitempty,max=255"`
	ParticipantCount int    `json:"participant_count" validate:"omitempty,min=1"`
	OrganizerName    string `json:"organizer_name"    validate:"omitempty,max=100"`
	OrganizerContact string `json:"organizer_contact" validate:"omitempty,max=100"`
	Notes            string `json:"notes"             validate:"omitempty,max=2000"`
}

func (c *CreateBookingRequest) ToModel(user, bookingNumber string) model.Booking {
	arrival, _ := time.Parse(constant.DateOnlyFormat, c.ArrivalDate)
	departure, _ := time.Parse(constant.DateOnlyFormat, c.DepartureDate)

	status := c.Status
	if status == constant.Empty {
		status = model.StatusPlanning
	}

	kind := c.BookingKind
	if kind == constant.Empty {
		kind = model.KindPrivate
	}

	checkIn := c.CheckInTime
	if checkIn == constant.Empty {
		checkIn = model.DefaultCheckInTime
	}

	checkOut := c.CheckOutTime
	if checkOut == constant.Empty {
		checkOut = model.DefaultCheckOutTime
	}

	participants := c.ParticipantCount
	if participants == 0 {
		participants = 1
	}

	return model.Booking{
		ID:               uuid.NewString(),
		BookingNumber:    bookingNumber,
		CustomerID:       c.CustomerID,
		RoomID:           c.RoomID,
		ArrivalDate:      arrival,
		DepartureDate:    departure,
		CheckInTime:      checkIn,
		CheckOutTime:     checkOut,
		Status:           status,
		BookingKind:      kind,
		Purpose:          c.Purpose,
		ParticipantCount: participants,
		OrganizerName:    c.OrganizerName,
		OrganizerContact: c.OrganizerContact,
		Notes:            c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	CustomerID       string `db:"customer_id"       json:"customer_id"       validate:"omitempty,uuid"`
	RoomID           string `db:"room_id"           json:"room_id"           validate:"omitempty,uuid"`
	ArrivalDate      string `db:"arrival_date"      json:"arrival_date"      validate:"omitempty,date"`
	DepartureDate    string `db:"departure_date"    json:"departure_date"    validate:"omitempty,date"`
	CheckInTime      string `db:"check_in_time"     json:"check_in_time"     validate:"omitempty,clocktime"`
	CheckOutTime     string `db:"check_out_time"    json:"check_out_time"    validate:"omitempty,clocktime"`
	Status           string `db:"status"            json:"status"            validate:"omitempty,oneof=planning confirmed"`
	BookingKind      string `db:"booking_kind"      json:"booking_kind"      validate:"omitempty,oneof=private business event"`
	Purpose          string `db:"purpose"           json:"purpose"           validate:"omitempty,max=255"`
	ParticipantCount *int   `db:"participant_count" json:"participant_count" validate:"omitempty,min=1"`
	OrganizerName    string `db:"organizer_name"    json:"organizer_name"    validate:"omitempty,max=100"`
	OrganizerContact string `db:"organizer_contact" json:"organizer_contact" validate:"omitempty,max=100"`
	Notes            string `db:"notes"             json:"notes"             validate:"omitempty,max=2000"`
}

type BookingResponse struct {
	ID               string `json:"id"`
	BookingNumber    string `json:"booking_number"`
	CustomerID       string `json:"customer_id"`
	CustomerName     string `json:"customer_name"`
	RoomID           string `json:"room_id"`
	RoomNumber       string `json:"room_number"`
	RoomName         string `json:"room_name"`
	ArrivalDate      string `json:"arrival_date"`
	DepartureDate    string `json:"departure_date"`
	Nights           int    `json:"nights"`
	CheckInTime      string `json:"check_in_time"`
	CheckOutTime     string `json:"check_out_time"`
	Status           string `json:"status"`
	BookingKind      string `json:"booking_kind"`
	Purpose          string `json:"purpose"`
	ParticipantCount int    `json:"participant_count"`
	OrganizerName    string `json:"organizer_name"`
	OrganizerContact string `json:"organizer_contact"`
	Notes            string `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.BookingNumber = mod.BookingNumber
	r.CustomerID = mod.CustomerID
	r.CustomerName = mod.CustomerFullName()
	r.RoomID = mod.RoomID
	r.RoomNumber = mod.RoomNumber
	r.RoomName = mod.RoomName
	r.ArrivalDate = mod.ArrivalDate.Format(constant.DateOnlyFormat)
	r.DepartureDate = mod.DepartureDate.Format(constant.DateOnlyFormat)
	r.Nights = mod.Nights()
	r.CheckInTime = mod.CheckInTime
	r.CheckOutTime = mod.CheckOutTime
	r.Status = mod.Status
	r.BookingKind = mod.BookingKind
	r.Purpose = mod.Purpose
	r.ParticipantCount = mod.ParticipantCount
	r.OrganizerName = mod.OrganizerName
	r.OrganizerContact = mod.OrganizerContact
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type TotalPriceResponse struct {
	BookingID    string          `json:"booking_id"`
	Nights       int             `json:"nights"`
	NightlyRate  decimal.Decimal `json:"nightly_rate"`
	RoomTotal    decimal.Decimal `json:"room_total"`
	ChargesTotal decimal.Decimal `json:"charges_total"`
	Total        decimal.Decimal `json:"total"`
}

type CalendarEntry struct {
	BookingID     string `json:"booking_id"`
	BookingNumber string `json:"booking_number"`
	RoomID        string `json:"room_id"`
	RoomNumber    string `json:"room_number"`
	CustomerName  string `json:"customer_name"`
	Status        string `json:"status"`
	ArrivalDate   string `json:"arrival_date"`
	DepartureDate string `json:"departure_date"`
}

type CalendarDay struct {
	Date    string          `json:"date"`
	Entries []CalendarEntry `json:"entries"`
}

type CalendarResponse struct {
	WeekStart string        `json:"week_start"`
	WeekEnd   string        `json:"week_end"`
	Days      []CalendarDay `json:"days"`
}
