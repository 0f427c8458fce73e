package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"passat/config"
	kafkaMocks "passat/infras/kafka/mocks"
	"passat/infras/otel/mocks"
	bookingMocks "passat/internal/domains/booking/mocks"
	"passat/internal/domains/booking/model"
	"passat/internal/domains/booking/model/dto"
	"passat/internal/domains/booking/service"
	cacheMocks "passat/shared/cache/mocks"
	"passat/shared/clock"
	"passat/shared/constant"
	"passat/shared/failure"
	gModel "passat/shared/model"
	"passat/shared/timezone"
)

// newTestTx hands out a transaction backed by sqlmock so the service can
// commit or roll back without a live database.
func newTestTx(t *testing.T) *sqlx.Tx {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(false))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	mock.MatchExpectationsInOrder(false)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectRollback()

	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	require.NoError(t, err)

	return tx
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockChargeRepo := bookingMocks.NewMockOccupancyCharge(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	fixed := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	svc := service.New(mockRepo, mockChargeRepo, cfg, mockCache, mockOtel, fixed, mockPublisher)

	validReq := dto.CreateBookingRequest{
		CustomerID:    "0d4e4c3a-9f3e-4a43-8b6a-2f2fb63a18c7",
		RoomID:        "5b6e7a71-33a4-4c5f-9a34-96f47a0cf6f0",
		ArrivalDate:   "2026-03-01",
		DepartureDate: "2026-03-04",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					BeginSerializableTx(gomock.Any()).
					DoAndReturn(func(context.Context) (*sqlx.Tx, error) { return newTestTx(t), nil })

				mockRepo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), validReq.RoomID, gomock.Any(), gomock.Any(), constant.Empty).
					Return(0, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					Publish(gomock.Any(), constant.KafkaTopicBookingEvents, gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "invalid arrival date",
			req: dto.CreateBookingRequest{
				CustomerID:    validReq.CustomerID,
				RoomID:        validReq.RoomID,
				ArrivalDate:   "01.03.2026",
				DepartureDate: "2026-03-04",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "departure not after arrival",
			req: dto.CreateBookingRequest{
				CustomerID:    validReq.CustomerID,
				RoomID:        validReq.RoomID,
				ArrivalDate:   "2026-03-04",
				DepartureDate: "2026-03-04",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "room not available",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					BeginSerializableTx(gomock.Any()).
					DoAndReturn(func(context.Context) (*sqlx.Tx, error) { return newTestTx(t), nil })

				mockRepo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), validReq.RoomID, gomock.Any(), gomock.Any(), constant.Empty).
					Return(1, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "booking number collision is redrawn",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					BeginSerializableTx(gomock.Any()).
					DoAndReturn(func(context.Context) (*sqlx.Tx, error) { return newTestTx(t), nil }).
					Times(2)

				mockRepo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), validReq.RoomID, gomock.Any(), gomock.Any(), constant.Empty).
					Return(0, nil).
					Times(2)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505", Constraint: "bookings_booking_number_key"})

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					Publish(gomock.Any(), constant.KafkaTopicBookingEvents, gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "number allocation exhausted",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					BeginSerializableTx(gomock.Any()).
					DoAndReturn(func(context.Context) (*sqlx.Tx, error) { return newTestTx(t), nil }).
					Times(5)

				mockRepo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), validReq.RoomID, gomock.Any(), gomock.Any(), constant.Empty).
					Return(0, nil).
					Times(5)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505", Constraint: "bookings_booking_number_key"}).
					Times(5)
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Regexp(t, `^BU-20260301-\d{3}$`, res.BookingNumber)
				assert.Equal(t, 3, res.Nights)
				assert.Equal(t, model.StatusPlanning, res.Status)
				assert.Equal(t, model.DefaultCheckInTime, res.CheckInTime)
				assert.Equal(t, model.DefaultCheckOutTime, res.CheckOutTime)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockChargeRepo := bookingMocks.NewMockOccupancyCharge(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	fixed := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	svc := service.New(mockRepo, mockChargeRepo, cfg, mockCache, mockOtel, fixed, mockPublisher)

	current := model.Booking{
		ID:            "test-id",
		BookingNumber: "BU-20260301-123",
		CustomerID:    "customer-id",
		RoomID:        "room-id",
		ArrivalDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:        model.StatusPlanning,
	}

	expectInvalidation := func() {
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "plain update without stay change",
			req:  dto.UpdateBookingRequest{Notes: "late arrival"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				expectInvalidation()
			},
			wantErr: false,
		},
		{
			name: "stay change re-checks availability",
			req:  dto.UpdateBookingRequest{DepartureDate: "2026-03-06"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				mockRepo.EXPECT().
					BeginSerializableTx(gomock.Any()).
					DoAndReturn(func(context.Context) (*sqlx.Tx, error) { return newTestTx(t), nil })

				mockRepo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), current.RoomID, gomock.Any(), gomock.Any(), current.ID).
					Return(0, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				expectInvalidation()
			},
			wantErr: false,
		},
		{
			name: "stay change into an occupied period",
			req:  dto.UpdateBookingRequest{DepartureDate: "2026-03-06"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				mockRepo.EXPECT().
					BeginSerializableTx(gomock.Any()).
					DoAndReturn(func(context.Context) (*sqlx.Tx, error) { return newTestTx(t), nil })

				mockRepo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), current.RoomID, gomock.Any(), gomock.Any(), current.ID).
					Return(1, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "cancelled booking cannot be modified",
			req:  dto.UpdateBookingRequest{Notes: "too late"},
			setupMock: func() {
				cancelled := current
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "departure moved before arrival",
			req:  dto.UpdateBookingRequest{DepartureDate: "2026-02-28"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, current.ID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockChargeRepo := bookingMocks.NewMockOccupancyCharge(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	fixed := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	svc := service.New(mockRepo, mockChargeRepo, cfg, mockCache, mockOtel, fixed, mockPublisher)

	booking := model.Booking{
		ID:            "test-id",
		BookingNumber: "BU-20260301-123",
		ArrivalDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:        model.StatusConfirmed,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful cancellation",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

						return nil
					})

				mockPublisher.EXPECT().
					Publish(gomock.Any(), constant.KafkaTopicBookingEvents, gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "already cancelled",
			setupMock: func() {
				cancelled := booking
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, booking.ID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_TotalPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockChargeRepo := bookingMocks.NewMockOccupancyCharge(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	fixed := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	svc := service.New(mockRepo, mockChargeRepo, cfg, mockCache, mockOtel, fixed, mockPublisher)

	booking := model.Booking{
		ID:            "test-id",
		RoomID:        "room-id",
		ArrivalDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:        model.StatusConfirmed,
		NightlyRate:   decimal.RequireFromString("129.00"),
	}

	charges := []model.OccupancyCharge{
		{ID: "charge-1", BookingID: booking.ID, Total: decimal.RequireFromString("15.00")},
		{ID: "charge-2", BookingID: booking.ID, Total: decimal.RequireFromString("15.00")},
	}

	t.Run("three nights plus two charges", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		mockChargeRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(charges, nil)

		res, err := svc.TotalPrice(context.Background(), booking.ID)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Nights)
		assert.True(t, res.RoomTotal.Equal(decimal.RequireFromString("387.00")), res.RoomTotal.String())
		assert.True(t, res.ChargesTotal.Equal(decimal.RequireFromString("30.00")), res.ChargesTotal.String())
		assert.True(t, res.Total.Equal(decimal.RequireFromString("417.00")), res.Total.String())
	})

	t.Run("booking without a room bills charges only", func(t *testing.T) {
		unassigned := booking
		unassigned.RoomID = constant.Empty

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(unassigned, nil)

		mockChargeRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(charges, nil)

		res, err := svc.TotalPrice(context.Background(), booking.ID)

		assert.NoError(t, err)
		assert.True(t, res.RoomTotal.IsZero())
		assert.True(t, res.Total.Equal(decimal.RequireFromString("30.00")), res.Total.String())
	})
}

func TestBookingService_Calendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockChargeRepo := bookingMocks.NewMockOccupancyCharge(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// A Wednesday; the containing week runs 2026-03-02 (Monday) through
	// 2026-03-08 (Sunday).
	fixed := clock.Fixed(time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC))

	svc := service.New(mockRepo, mockChargeRepo, cfg, mockCache, mockOtel, fixed, mockPublisher)

	booking := model.Booking{
		ID:            "test-id",
		BookingNumber: "BU-20260301-123",
		RoomID:        "room-id",
		RoomNumber:    "101",
		ArrivalDate:   time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Status:        model.StatusConfirmed,
	}

	t.Run("week resolves to monday and entries cover stay days", func(t *testing.T) {
		mockRepo.EXPECT().
			ListOverlapping(
				gomock.Any(),
				time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			).
			Return([]model.Booking{booking}, nil)

		res, err := svc.Calendar(context.Background(), "2026-03-04")

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-02", res.WeekStart)
		assert.Equal(t, "2026-03-08", res.WeekEnd)
		assert.Len(t, res.Days, 7)

		// Arrival day and the day after are occupied, the departure day is not.
		assert.Empty(t, res.Days[0].Entries)
		assert.Len(t, res.Days[1].Entries, 1)
		assert.Len(t, res.Days[2].Entries, 1)
		assert.Empty(t, res.Days[3].Entries)
		assert.Equal(t, booking.BookingNumber, res.Days[1].Entries[0].BookingNumber)
	})

	t.Run("date defaults to the current week", func(t *testing.T) {
		mockRepo.EXPECT().
			ListOverlapping(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{}, nil)

		res, err := svc.Calendar(context.Background(), constant.Empty)

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-02", res.WeekStart)
	})

	t.Run("default day follows the local date just after midnight", func(t *testing.T) {
		// Monday 2026-03-02 00:30 in Berlin is still Sunday in UTC; the
		// default week must start on the local Monday, not a week earlier.
		berlin := time.FixedZone("CET", 60*60)
		lateClock := clock.Fixed(time.Date(2026, 3, 2, 0, 30, 0, 0, berlin))

		lateSvc := service.New(mockRepo, mockChargeRepo, cfg, mockCache, mockOtel, lateClock, mockPublisher)

		mockRepo.EXPECT().
			ListOverlapping(
				gomock.Any(),
				time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			).
			Return([]model.Booking{}, nil)

		res, err := lateSvc.Calendar(context.Background(), constant.Empty)

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-02", res.WeekStart)
		assert.Equal(t, "2026-03-08", res.WeekEnd)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := svc.Calendar(context.Background(), "04.03.2026")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Charges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockChargeRepo := bookingMocks.NewMockOccupancyCharge(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	fixed := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	svc := service.New(mockRepo, mockChargeRepo, cfg, mockCache, mockOtel, fixed, mockPublisher)

	booking := model.Booking{
		ID:     "booking-id",
		Status: model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	expectInvalidation := func() {
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	t.Run("create charge", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		mockChargeRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, charge model.OccupancyCharge) error {
				assert.True(t, charge.Total.Equal(decimal.RequireFromString("30.00")), charge.Total.String())

				return nil
			})

		expectInvalidation()

		req := dto.CreateChargeRequest{
			Description: "Frühstück",
			Quantity:    2,
			UnitPrice:   decimal.RequireFromString("15.00"),
		}

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.CreateCharge(ctx, req, booking.ID)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("create charge with negative unit price", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		req := dto.CreateChargeRequest{
			Description: "Gutschrift",
			Quantity:    1,
			UnitPrice:   decimal.RequireFromString("-5.00"),
		}

		err := svc.CreateCharge(context.Background(), req, booking.ID)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("update charge recomputes the total", func(t *testing.T) {
		current := model.OccupancyCharge{
			ID:        "charge-id",
			BookingID: booking.ID,
			Quantity:  2,
			UnitPrice: decimal.RequireFromString("15.00"),
			Total:     decimal.RequireFromString("30.00"),
		}

		mockChargeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)

		mockChargeRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				total, ok := fields[model.FieldChargeTotal].(decimal.Decimal)
				require.True(t, ok)
				assert.True(t, total.Equal(decimal.RequireFromString("45.00")), total.String())

				return nil
			})

		expectInvalidation()

		quantity := 3

		req := dto.UpdateChargeRequest{Quantity: &quantity}

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.UpdateCharge(ctx, req, booking.ID, current.ID)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("update missing charge", func(t *testing.T) {
		mockChargeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.OccupancyCharge{}, nil)

		err := svc.UpdateCharge(context.Background(), dto.UpdateChargeRequest{}, booking.ID, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("delete missing charge", func(t *testing.T) {
		mockChargeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.DeleteCharge(context.Background(), booking.ID, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockChargeRepo := bookingMocks.NewMockOccupancyCharge(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	fixed := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	svc := service.New(mockRepo, mockChargeRepo, cfg, mockCache, mockOtel, fixed, mockPublisher)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, found in db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:            "test-id",
						ArrivalDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
						DepartureDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "test-id")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
