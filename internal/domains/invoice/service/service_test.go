package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"passat/config"
	kafkaMocks "passat/infras/kafka/mocks"
	"passat/infras/otel/mocks"
	s3Mocks "passat/infras/s3/mocks"
	bookingMocks "passat/internal/domains/booking/mocks"
	bookingDto "passat/internal/domains/booking/model/dto"
	invoiceMocks "passat/internal/domains/invoice/mocks"
	"passat/internal/domains/invoice/model"
	"passat/internal/domains/invoice/model/dto"
	"passat/internal/domains/invoice/service"
	cacheMocks "passat/shared/cache/mocks"
	"passat/shared/clock"
	"passat/shared/constant"
	"passat/shared/failure"
)

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

type invoiceServiceMocks struct {
	repo      *invoiceMocks.MockInvoice
	lineItems *invoiceMocks.MockInvoiceLineItem
	bookings  *bookingMocks.MockBookingService
	cache     *cacheMocks.MockRedisCache
	publisher *kafkaMocks.MockPublisher
	documents *s3Mocks.MockDocumentStore
}

func newInvoiceService(ctrl *gomock.Controller) (service.Invoice, invoiceServiceMocks) {
	deps := invoiceServiceMocks{
		repo:      invoiceMocks.NewMockInvoice(ctrl),
		lineItems: invoiceMocks.NewMockInvoiceLineItem(ctrl),
		bookings:  bookingMocks.NewMockBookingService(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: kafkaMocks.NewMockPublisher(ctrl),
		documents: s3Mocks.NewMockDocumentStore(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Billing.DueDays = 14

	fixed := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	svc := service.New(
		deps.repo,
		deps.lineItems,
		deps.bookings,
		cfg,
		deps.cache,
		mocks.NewOtel(),
		fixed,
		deps.publisher,
		deps.documents,
	)

	return svc, deps
}

func TestInvoiceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newInvoiceService(ctrl)

	bookingID := "bdbb48f8-1c8e-4a36-94b8-3d6a94f6ad47"

	booking := bookingDto.BookingResponse{
		ID:            bookingID,
		BookingNumber: "BU-20260301-123",
		CustomerName:  "Erika Mustermann",
		RoomID:        "room-id",
		RoomNumber:    "101",
		Nights:        3,
	}

	price := bookingDto.TotalPriceResponse{
		BookingID:    bookingID,
		Nights:       3,
		NightlyRate:  decimal.RequireFromString("129.00"),
		RoomTotal:    decimal.RequireFromString("387.00"),
		ChargesTotal: decimal.RequireFromString("30.00"),
		Total:        decimal.RequireFromString("417.00"),
	}

	charges := bookingDto.GetChargesResponse{
		Charges: []bookingDto.ChargeResponse{
			{
				ID:          "charge-id",
				BookingID:   bookingID,
				Description: "Frühstück",
				Quantity:    2,
				UnitPrice:   decimal.RequireFromString("15.00"),
				Total:       decimal.RequireFromString("30.00"),
			},
		},
	}

	expectBookingLookups := func() {
		deps.bookings.EXPECT().Get(gomock.Any(), bookingID).Return(booking, nil)
		deps.bookings.EXPECT().TotalPrice(gomock.Any(), bookingID).Return(price, nil)
		deps.bookings.EXPECT().GetCharges(gomock.Any(), bookingID).Return(charges, nil)
	}

	t.Run("line items are synthesized from the booking", func(t *testing.T) {
		expectBookingLookups()

		deps.repo.EXPECT().
			BeginTx(gomock.Any()).
			DoAndReturn(func(context.Context) (*sqlx.Tx, error) { return newTestTx(t), nil })

		deps.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, invoice model.Invoice) error {
				assert.Equal(t, model.StatusDraft, invoice.Status)
				assert.True(t, invoice.Total.Equal(decimal.RequireFromString("417.00")), invoice.Total.String())
				assert.Equal(t, "2026-03-01", invoice.IssueDate.Format(constant.DateOnlyFormat))
				assert.Equal(t, "2026-03-15", invoice.DueDate.Format(constant.DateOnlyFormat))

				return nil
			})

		deps.lineItems.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, lineItems []model.InvoiceLineItem) error {
				require.Len(t, lineItems, 2)

				assert.Equal(t, 1, lineItems[0].Position)
				assert.Equal(t, "Raum 101 - 3 Nächte", lineItems[0].Description)
				assert.Equal(t, 3, lineItems[0].Quantity)
				assert.True(t, lineItems[0].Total.Equal(decimal.RequireFromString("387.00")))

				assert.Equal(t, 2, lineItems[1].Position)
				assert.Equal(t, "Frühstück", lineItems[1].Description)
				assert.True(t, lineItems[1].Total.Equal(decimal.RequireFromString("30.00")))

				return nil
			})

		deps.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Create(context.Background(), dto.CreateInvoiceRequest{BookingID: bookingID})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Regexp(t, `^RE-20260301-\d{3}$`, res.InvoiceNumber)
		assert.Equal(t, model.StatusDraft, res.Status)
		assert.Equal(t, booking.BookingNumber, res.BookingNumber)
		assert.True(t, res.Total.Equal(decimal.RequireFromString("417.00")), res.Total.String())
		assert.Len(t, res.LineItems, 2)
	})

	t.Run("explicit due date wins over the default", func(t *testing.T) {
		expectBookingLookups()

		deps.repo.EXPECT().
			BeginTx(gomock.Any()).
			DoAndReturn(func(context.Context) (*sqlx.Tx, error) { return newTestTx(t), nil })

		deps.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, invoice model.Invoice) error {
				assert.Equal(t, "2026-04-01", invoice.DueDate.Format(constant.DateOnlyFormat))

				return nil
			})

		deps.lineItems.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		deps.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.Create(context.Background(), dto.CreateInvoiceRequest{
			BookingID: bookingID,
			DueDate:   "2026-04-01",
		})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("invalid due date", func(t *testing.T) {
		expectBookingLookups()

		_, err := svc.Create(context.Background(), dto.CreateInvoiceRequest{
			BookingID: bookingID,
			DueDate:   "01.04.2026",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("booking not found", func(t *testing.T) {
		deps.bookings.EXPECT().
			Get(gomock.Any(), bookingID).
			Return(bookingDto.BookingResponse{}, failure.NotFound("booking not found"))

		_, err := svc.Create(context.Background(), dto.CreateInvoiceRequest{BookingID: bookingID})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestInvoiceService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newInvoiceService(ctrl)

	invoice := model.Invoice{
		ID:            "invoice-id",
		InvoiceNumber: "RE-20260301-456",
		BookingID:     "booking-id",
		IssueDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:        model.StatusDraft,
		Total:         decimal.RequireFromString("417.00"),
	}

	lineItems := []model.InvoiceLineItem{
		{ID: "line-1", InvoiceID: invoice.ID, Position: 1, Description: "Raum 101 - 3 Nächte"},
	}

	expectLookup := func(status string) {
		found := invoice
		found.Status = status

		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(found, nil)

		deps.lineItems.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(lineItems, nil)
	}

	expectAsync := func() {
		deps.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		deps.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		deps.publisher.EXPECT().
			Publish(gomock.Any(), constant.KafkaTopicInvoiceEvents, gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name      string
		from      string
		to        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "draft to finalized archives the document",
			from: model.StatusDraft,
			to:   model.StatusFinalized,
			setupMock: func() {
				deps.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				deps.documents.EXPECT().
					StoreDocument(gomock.Any(), "invoices", invoice.InvoiceNumber+".pdf", constant.ContentTypePDF, gomock.Any()).
					Return("https://documents.example.com/invoices/"+invoice.InvoiceNumber+".pdf", nil).
					AnyTimes()

				expectAsync()
			},
			wantErr: false,
		},
		{
			name: "finalized to paid",
			from: model.StatusFinalized,
			to:   model.StatusPaid,
			setupMock: func() {
				deps.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				expectAsync()
			},
			wantErr: false,
		},
		{
			name:      "draft cannot jump straight to paid",
			from:      model.StatusDraft,
			to:        model.StatusPaid,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "paid back to finalized is rejected",
			from:      model.StatusPaid,
			to:        model.StatusFinalized,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "finalized stays finalized",
			from:      model.StatusFinalized,
			to:        model.StatusFinalized,
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectLookup(tt.from)
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, dto.UpdateInvoiceStatusRequest{Status: tt.to}, invoice.ID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInvoiceService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newInvoiceService(ctrl)

	invoice := model.Invoice{
		ID:            "invoice-id",
		InvoiceNumber: "RE-20260301-456",
		BookingID:     "booking-id",
		Status:        model.StatusFinalized,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "finalized invoice drops its archived document",
			setupMock: func() {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(invoice, nil)

				deps.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				deps.documents.EXPECT().
					DeleteDocument(gomock.Any(), "invoices", invoice.InvoiceNumber+".pdf").
					Return(nil)

				deps.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				deps.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "draft invoice has no archived document",
			setupMock: func() {
				draft := invoice
				draft.Status = model.StatusDraft

				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(draft, nil)

				deps.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				deps.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				deps.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "invoice not found",
			setupMock: func() {
				deps.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Invoice{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Delete(ctx, invoice.ID)

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

func TestInvoiceService_RenderPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newInvoiceService(ctrl)

	invoice := model.Invoice{
		ID:                 "invoice-id",
		InvoiceNumber:      "RE-20260301-456",
		BookingID:          "booking-id",
		BookingNumber:      "BU-20260301-123",
		IssueDate:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:            time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:             model.StatusFinalized,
		Total:              decimal.RequireFromString("417.00"),
		CustomerFirstName:  "Erika",
		CustomerLastName:   "Mustermann",
		CustomerStreet:     "Heidestraße 17",
		CustomerPostalCode: "10557",
		CustomerCity:       "Berlin",
		CustomerCountry:    "Deutschland",
	}

	t.Run("renders the document", func(t *testing.T) {
		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(invoice, nil)

		deps.lineItems.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.InvoiceLineItem{
				{
					ID:          "line-1",
					InvoiceID:   invoice.ID,
					Position:    1,
					Description: "Raum 101 - 3 Nächte",
					Quantity:    3,
					UnitPrice:   decimal.RequireFromString("129.00"),
					Total:       decimal.RequireFromString("387.00"),
				},
			}, nil)

		fileName, data, err := svc.RenderPDF(context.Background(), invoice.ID)

		assert.NoError(t, err)
		assert.Equal(t, "RE-20260301-456.pdf", fileName)
		require.NotEmpty(t, data)
		assert.Equal(t, "%PDF", string(data[:4]))
	})

	t.Run("invoice not found", func(t *testing.T) {
		deps.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Invoice{}, nil)

		_, _, err := svc.RenderPDF(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
