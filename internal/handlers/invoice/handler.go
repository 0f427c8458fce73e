package invoice

import (
	"fmt"
	"net/http"

	"passat/infras/otel"
	"passat/internal/domains/invoice/model"
	"passat/internal/domains/invoice/model/dto"
	"passat/internal/domains/invoice/service"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	"passat/shared/validator"
	"passat/transport/http/middleware"
	"passat/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Invoice
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Invoice, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invoices", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth, handler.middleware.RBAC)

		routerGroup.Post("/", handler.CreateInvoice)
		routerGroup.Get("/", handler.GetInvoices)
		routerGroup.Get("/{id}", handler.GetInvoiceByID)
		routerGroup.Patch("/{id}/status", handler.UpdateInvoiceStatus)
		routerGroup.Delete("/{id}", handler.DeleteInvoice)
		routerGroup.Get("/{id}/pdf", handler.DownloadInvoicePDF)
	})
}

// CreateInvoice bills a booking.
// @Summary Create an invoice for a booking
// @Description Generate an invoice from a booking: number, due date, synthesized line items and frozen grand total.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body dto.CreateInvoiceRequest true "Create Invoice Request"
// @Success 201 {object} response.Data[dto.InvoiceResponse] "Invoice created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [post]
// @Security BearerAuth
func (handler *Handler) CreateInvoice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInvoice")
	defer scope.End()

	req := dto.CreateInvoiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	invoice, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create invoice")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Invoice created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, invoice)
}

// GetInvoices retrieves all invoices based on query parameters.
// @Summary Get all invoices
// @Description Retrieve all invoices with optional filtering by status and booking.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param booking_id query string false "Filter by booking"
// @Success 200 {object} response.Data[dto.GetInvoicesResponse] "List of invoices"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [get]
// @Security BearerAuth
func (handler *Handler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldStatus, model.FieldBookingID} {
		value := r.URL.Query().Get(field)
		if value == "" {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	invoices, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoices retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoices)
}

// GetInvoiceByID retrieves an invoice with its line items.
// @Summary Get an invoice by ID
// @Description Retrieve an invoice, its booking reference and its line items.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Invoice details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	invoice, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoice)
}

// UpdateInvoiceStatus moves an invoice forward in its lifecycle.
// @Summary Update invoice status
// @Description Transition an invoice along draft -> finalized -> paid. Backward transitions are rejected.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.UpdateInvoiceStatusRequest true "Update Invoice Status Request"
// @Success 200 {object} response.Message "Invoice status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInvoiceStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateInvoiceStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update invoice status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Invoice status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Invoice status updated successfully")
}

// DeleteInvoice deletes an invoice by ID.
// @Summary Delete an invoice by ID
// @Description Delete an invoice. Its line items are removed with it.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Message "Invoice deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInvoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete invoice")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Invoice deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Invoice deleted successfully")
}

// DownloadInvoicePDF streams the rendered invoice document.
// @Summary Download an invoice as PDF
// @Description Render the invoice into a paginated PDF and stream it as an attachment.
// @Tags Invoice
// @Accept json
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} byte "Invoice PDF"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id}/pdf [get]
// @Security BearerAuth
func (handler *Handler) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadInvoicePDF")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	fileName, data, err := handler.service.RenderPDF(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render invoice PDF")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice PDF rendered successfully")

	w.Header().Set("Content-Type", constant.ContentTypePDF)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		log.Error().Err(err).Msg("failed to write invoice PDF response")
	}
}
