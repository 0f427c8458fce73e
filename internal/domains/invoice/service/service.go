package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"passat/config"
	"passat/infras/kafka"
	"passat/infras/otel"
	"passat/infras/s3"
	bookingDto "passat/internal/domains/booking/model/dto"
	bookingService "passat/internal/domains/booking/service"
	"passat/internal/domains/invoice/model"
	"passat/internal/domains/invoice/model/dto"
	"passat/internal/domains/invoice/pdf"
	"passat/internal/domains/invoice/repository"
	"passat/shared"
	"passat/shared/cache"
	"passat/shared/clock"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	"passat/shared/failure"
	gModel "passat/shared/model"
	"passat/shared/refnum"
	gRepo "passat/shared/repository"
	"passat/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetInvoice    = "invoice:get"
	cacheGetAllInvoice = "invoice:gets"
	cacheCountInvoice  = "invoice:count"

	eventInvoiceFinalized = "invoice.finalized"
	eventInvoicePaid      = "invoice.paid"

	documentDirectory = "invoices"
)

type Invoice interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (dto.InvoiceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInvoicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InvoiceResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateInvoiceStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
	RenderPDF(ctx context.Context, id string) (fileName string, data []byte, err error)
}

type serviceImpl struct {
	repo         repository.Invoice
	lineItemRepo repository.InvoiceLineItem
	bookings     bookingService.Booking
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	clock        clock.Clock
	publisher    kafka.Publisher
	documents    s3.DocumentStore
}

func New(
	repo repository.Invoice,
	lineItemRepo repository.InvoiceLineItem,
	bookings bookingService.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	clock clock.Clock,
	publisher kafka.Publisher,
	documents s3.DocumentStore,
) Invoice {
	return &serviceImpl{
		repo:         repo,
		lineItemRepo: lineItemRepo,
		bookings:     bookings,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		clock:        clock,
		publisher:    publisher,
		documents:    documents,
	}
}

type invoiceEvent struct {
	Event   string              `json:"event"`
	Invoice dto.InvoiceResponse `json:"invoice"`
}

// Create bills a booking. The invoice number is drawn with bounded retry, the
// line items are synthesized from the booking (room-nights line plus one line
// per occupancy charge) and the grand total is frozen at the booking's total
// price. Invoice and line items are persisted in one transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInvoiceRequest) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.bookings.Get(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	price, err := s.bookings.TotalPrice(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	charges, err := s.bookings.GetCharges(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	issueDate := s.clock.Now()

	dueDate := issueDate.AddDate(0, 0, s.cfg.Billing.DueDays)
	if req.DueDate != constant.Empty {
		dueDate, err = time.Parse(constant.DateOnlyFormat, req.DueDate)
		if err != nil {
			return res, failure.BadRequestFromString("due_date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
		}
	}

	invoice := model.Invoice{
		ID:        uuid.NewString(),
		BookingID: req.BookingID,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Status:    model.StatusDraft,
		Total:     price.Total,
		Comment:   req.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	lineItems := synthesizeLineItems(invoice.ID, user, booking, price, charges)

	for attempt := 0; attempt < refnum.MaxAttempts; attempt++ {
		invoice.InvoiceNumber = refnum.Generate(constant.ReferencePrefixInvoice, s.clock.Now())

		err = s.insertInvoice(ctx, invoice, lineItems)
		if err == nil {
			break
		}

		if gRepo.IsUniqueViolation(err) {
			log.Warn().Str("invoiceNumber", invoice.InvoiceNumber).Int("attempt", attempt+1).Msg("invoice number collision, redrawing")

			continue
		}

		return res, err
	}

	if err != nil {
		return res, failure.InternalError(errors.New("failed to allocate a unique invoice number")) //nolint:wrapcheck
	}

	res.FromModel(invoice)
	res.BookingNumber = booking.BookingNumber
	res.CustomerName = booking.CustomerName
	res.WithLineItems(lineItems)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllInvoice)
		shared.InvalidateCaches(c, s.cache, cacheCountInvoice)
	}()

	return res, nil
}

// synthesizeLineItems builds the frozen snapshot: a room-nights line when the
// booking has a room and at least one night, then one line per occupancy
// charge. Positions are 1-based.
func synthesizeLineItems(
	invoiceID, user string,
	booking bookingDto.BookingResponse,
	price bookingDto.TotalPriceResponse,
	charges bookingDto.GetChargesResponse,
) []model.InvoiceLineItem {
	metadata := gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}

	lineItems := []model.InvoiceLineItem{}

	if booking.RoomID != constant.Empty && price.Nights > 0 {
		lineItems = append(lineItems, model.InvoiceLineItem{
			ID:          uuid.NewString(),
			InvoiceID:   invoiceID,
			Position:    1,
			Description: fmt.Sprintf("Raum %s - %d Nächte", booking.RoomNumber, price.Nights),
			Quantity:    price.Nights,
			UnitPrice:   price.NightlyRate,
			Total:       price.RoomTotal,
			Metadata:    metadata,
		})
	}

	for _, charge := range charges.Charges {
		lineItems = append(lineItems, model.InvoiceLineItem{
			ID:          uuid.NewString(),
			InvoiceID:   invoiceID,
			Position:    len(lineItems) + 1,
			Description: charge.Description,
			Quantity:    charge.Quantity,
			UnitPrice:   charge.UnitPrice,
			Total:       charge.Total,
			Metadata:    metadata,
		})
	}

	return lineItems
}

func (s *serviceImpl) insertInvoice(ctx context.Context, invoice model.Invoice, lineItems []model.InvoiceLineItem) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := s.repo.InsertTx(ctx, tx, invoice); err != nil {
		_ = tx.Rollback()

		return err
	}

	if len(lineItems) > 0 {
		if err := s.lineItemRepo.InsertBulkTx(ctx, tx, lineItems); err != nil {
			_ = tx.Rollback()

			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit invoice transaction: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoices")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInvoice, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoice")

		return res, nil
	}

	invoice, lineItems, err := s.getInvoiceWithLineItems(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(invoice)
	res.WithLineItems(lineItems)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getInvoiceWithLineItems(ctx context.Context, id string) (model.Invoice, []model.InvoiceLineItem, error) {
	invoice, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return invoice, nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return invoice, nil, failure.NotFound("invoice not found") //nolint:wrapcheck
	}

	params := gDto.QueryParams{
		SortBy:  model.LineItemTableName + "." + model.FieldLineItemPosition,
		SortDir: gDto.SortDirAsc,
	}

	lineItems, err := s.lineItemRepo.GetAll(ctx, params, shared.FilterByID(id, model.FieldLineItemInvoiceID, model.LineItemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice line items")

		return invoice, nil, fmt.Errorf("failed to get invoice line items: %w", err)
	}

	return invoice, lineItems, nil
}

// UpdateStatus enforces the draft -> finalized -> paid lifecycle one step at
// a time; backward moves and skipped steps are rejected. On finalize, the
// rendered PDF is archived best-effort and a domain event is published.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateInvoiceStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	invoice, lineItems, err := s.getInvoiceWithLineItems(ctx, id)
	if err != nil {
		return err
	}

	if !model.IsForwardTransition(invoice.Status, req.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("invoice status cannot move from %s to %s", invoice.Status, req.Status)) //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update invoice status")

		return fmt.Errorf("failed to update invoice status: %w", err)
	}

	invoice.Status = req.Status

	res := dto.InvoiceResponse{}
	res.FromModel(invoice)
	res.WithLineItems(lineItems)

	go func() {
		c := context.WithoutCancel(ctx)

		switch req.Status {
		case model.StatusFinalized:
			s.archivePDF(c, invoice, lineItems)
			s.publishEvent(c, eventInvoiceFinalized, res)
		case model.StatusPaid:
			s.publishEvent(c, eventInvoicePaid, res)
		}

		s.invalidateInvoiceCaches(c, id)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	invoice, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return failure.NotFound("invoice not found") //nolint:wrapcheck
	}

	// Line items cascade at the store level.
	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete invoice")

		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		// Finalizing archived a copy; drop it along with the invoice.
		if invoice.Status != model.StatusDraft {
			if err := s.documents.DeleteDocument(c, documentDirectory, invoice.InvoiceNumber+".pdf"); err != nil {
				log.Error().Err(err).Str("invoiceNumber", invoice.InvoiceNumber).Msg("failed to delete archived invoice PDF")
			}
		}

		s.invalidateInvoiceCaches(c, id)
	}()

	return nil
}

// RenderPDF renders the invoice document on demand.
func (s *serviceImpl) RenderPDF(ctx context.Context, id string) (fileName string, data []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RenderPDF")
	defer scope.End()
	defer scope.TraceIfError(err)

	invoice, lineItems, err := s.getInvoiceWithLineItems(ctx, id)
	if err != nil {
		return constant.Empty, nil, err
	}

	data, err = pdf.Render(buildDocument(invoice, lineItems))
	if err != nil {
		log.Error().Err(err).Msg("failed to render invoice PDF")

		return constant.Empty, nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}

	return invoice.InvoiceNumber + ".pdf", data, nil
}

func buildDocument(invoice model.Invoice, lineItems []model.InvoiceLineItem) pdf.Document {
	document := pdf.Document{
		InvoiceNumber: invoice.InvoiceNumber,
		BookingNumber: invoice.BookingNumber,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
		RecipientName: invoice.CustomerFullName(),
		Street:        invoice.CustomerStreet,
		PostalCode:    invoice.CustomerPostalCode,
		City:          invoice.CustomerCity,
		Country:       invoice.CustomerCountry,
		Total:         invoice.Total,
		Comment:       invoice.Comment,
	}

	document.Lines = make([]pdf.Line, len(lineItems))
	for i, lineItem := range lineItems {
		document.Lines[i] = pdf.Line{
			Position:    lineItem.Position,
			Description: lineItem.Description,
			Quantity:    lineItem.Quantity,
			UnitPrice:   lineItem.UnitPrice,
			Total:       lineItem.Total,
		}
	}

	return document
}

// archivePDF stores the rendered document in the document bucket. Failures
// are logged, never surfaced: archival is best-effort.
func (s *serviceImpl) archivePDF(ctx context.Context, invoice model.Invoice, lineItems []model.InvoiceLineItem) {
	data, err := pdf.Render(buildDocument(invoice, lineItems))
	if err != nil {
		log.Error().Err(err).Str("invoiceNumber", invoice.InvoiceNumber).Msg("failed to render invoice PDF for archival")

		return
	}

	url, err := s.documents.StoreDocument(ctx, documentDirectory, invoice.InvoiceNumber+".pdf", constant.ContentTypePDF, data)
	if err != nil {
		log.Error().Err(err).Str("invoiceNumber", invoice.InvoiceNumber).Msg("failed to archive invoice PDF")

		return
	}

	log.Info().Str("invoiceNumber", invoice.InvoiceNumber).Str("url", url).Msg("invoice PDF archived")
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, invoice dto.InvoiceResponse) {
	message := kafka.Message{
		Key: invoice.ID,
		Value: invoiceEvent{
			Event:   event,
			Invoice: invoice,
		},
	}

	if err := s.publisher.Publish(ctx, constant.KafkaTopicInvoiceEvents, message); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish invoice event")
	}
}

func (s *serviceImpl) invalidateInvoiceCaches(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetInvoice, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete invoice from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllInvoice)
	shared.InvalidateCaches(ctx, s.cache, cacheCountInvoice)
}
