package booking

import (
	"net/http"

	"passat/infras/otel"
	"passat/internal/domains/booking/model"
	"passat/internal/domains/booking/model/dto"
	"passat/internal/domains/booking/service"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	"passat/shared/validator"
	"passat/transport/http/middleware"
	"passat/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth, handler.middleware.RBAC)

		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/calendar", handler.GetCalendar)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
		routerGroup.Get("/{id}/total", handler.GetTotalPrice)

		routerGroup.Post("/{id}/charges", handler.CreateCharge)
		routerGroup.Get("/{id}/charges", handler.GetCharges)
		routerGroup.Patch("/{id}/charges/{chargeID}", handler.UpdateCharge)
		routerGroup.Delete("/{id}/charges/{chargeID}", handler.DeleteCharge)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Book a room for a half-open date range. The availability check and the insert run atomically; the booking number is generated server-side.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering by status, room and customer.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param room_id query string false "Filter by room"
// @Param customer_id query string false "Filter by customer"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldStatus, model.FieldRoomID, model.FieldCustomerID} {
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

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetCalendar returns the weekly occupancy grid.
// @Summary Get the weekly booking calendar
// @Description Resolve the Monday..Sunday week containing the given date (today when omitted) and return the active bookings per day.
// @Tags Booking
// @Accept json
// @Produce json
// @Param date query string false "Any date inside the requested week (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.CalendarResponse] "Weekly calendar"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	calendar, err := handler.service.Calendar(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build booking calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, calendar)
}

// GetBookingByID retrieves a booking by ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking with its customer, room and derived night count.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates an existing booking by ID.
// @Summary Update a booking by ID
// @Description Update booking details. Changing room or dates re-checks availability; the booking number never changes.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// CancelBooking transitions a booking to cancelled.
// @Summary Cancel a booking
// @Description Cancel a booking. The room becomes available for the range again.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// DeleteBooking deletes a booking by ID.
// @Summary Delete a booking by ID
// @Description Delete a booking. Its occupancy charges are removed with it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// GetTotalPrice returns the price breakdown of a booking.
// @Summary Get the total price of a booking
// @Description Nightly rate times nights plus the occupancy charge totals.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.TotalPriceResponse] "Price breakdown"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/total [get]
// @Security BearerAuth
func (handler *Handler) GetTotalPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTotalPrice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	total, err := handler.service.TotalPrice(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking total price")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, total)
}

// CreateCharge adds an occupancy charge to a booking.
// @Summary Add an occupancy charge
// @Description Attach a billable position to the booking. The line total is derived from quantity and unit price.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CreateChargeRequest true "Create Charge Request"
// @Success 201 {object} response.Message "Occupancy charge created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges [post]
// @Security BearerAuth
func (handler *Handler) CreateCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCharge")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CreateChargeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateCharge(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create occupancy charge")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Occupancy charge created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Occupancy charge created successfully")
}

// GetCharges lists the occupancy charges of a booking.
// @Summary List occupancy charges
// @Description List the billable positions of a booking, ordered by charge date.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.GetChargesResponse] "Occupancy charges"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges [get]
// @Security BearerAuth
func (handler *Handler) GetCharges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCharges")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	charges, err := handler.service.GetCharges(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy charges")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, charges)
}

// UpdateCharge updates an occupancy charge.
// @Summary Update an occupancy charge
// @Description Patch a billable position. The line total is recomputed on every save.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param chargeID path string true "Charge ID"
// @Param request body dto.UpdateChargeRequest true "Update Charge Request"
// @Success 200 {object} response.Message "Occupancy charge updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges/{chargeID} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCharge")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	chargeID := chi.URLParam(r, constant.RequestParamChargeID)

	req := dto.UpdateChargeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateCharge(ctx, req, id, chargeID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update occupancy charge")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Occupancy charge updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Occupancy charge updated successfully")
}

// DeleteCharge removes an occupancy charge.
// @Summary Delete an occupancy charge
// @Description Remove a billable position from a booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param chargeID path string true "Charge ID"
// @Success 200 {object} response.Message "Occupancy charge deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges/{chargeID} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCharge")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	chargeID := chi.URLParam(r, constant.RequestParamChargeID)

	if err := handler.service.DeleteCharge(ctx, id, chargeID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete occupancy charge")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Occupancy charge deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Occupancy charge deleted successfully")
}
