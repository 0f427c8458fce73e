package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"passat/internal/domains/booking/model"
	"passat/internal/domains/booking/model/dto"
)

func TestCreateBookingRequestToModel(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			CustomerID:    "customer-id",
			RoomID:        "room-id",
			ArrivalDate:   "2026-03-01",
			DepartureDate: "2026-03-04",
		}

		booking := req.ToModel("test-user", "BU-20260301-123")

		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, "BU-20260301-123", booking.BookingNumber)
		assert.Equal(t, model.StatusPlanning, booking.Status)
		assert.Equal(t, model.KindPrivate, booking.BookingKind)
		assert.Equal(t, model.DefaultCheckInTime, booking.CheckInTime)
		assert.Equal(t, model.DefaultCheckOutTime, booking.CheckOutTime)
		assert.Equal(t, 1, booking.ParticipantCount)
		assert.Equal(t, 3, booking.Nights())
		assert.Equal(t, "test-user", booking.CreatedBy)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			CustomerID:       "customer-id",
			RoomID:           "room-id",
			ArrivalDate:      "2026-03-01",
			DepartureDate:    "2026-03-04",
			CheckInTime:      "16:00",
			CheckOutTime:     "10:00",
			Status:           model.StatusConfirmed,
			BookingKind:      model.KindEvent,
			ParticipantCount: 25,
		}

		booking := req.ToModel("test-user", "BU-20260301-123")

		assert.Equal(t, "16:00", booking.CheckInTime)
		assert.Equal(t, "10:00", booking.CheckOutTime)
		assert.Equal(t, model.StatusConfirmed, booking.Status)
		assert.Equal(t, model.KindEvent, booking.BookingKind)
		assert.Equal(t, 25, booking.ParticipantCount)
	})
}
