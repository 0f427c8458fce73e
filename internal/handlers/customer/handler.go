package customer

import (
	"net/http"

	"passat/infras/otel"
	"passat/internal/domains/customer/model"
	"passat/internal/domains/customer/model/dto"
	"passat/internal/domains/customer/service"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	"passat/shared/validator"
	"passat/transport/http/middleware"
	"passat/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Customer
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Customer, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth, handler.middleware.RBAC)

		routerGroup.Post("/", handler.CreateCustomer)
		routerGroup.Get("/", handler.GetCustomers)
		routerGroup.Get("/search", handler.SearchCustomers)
		routerGroup.Get("/{id}", handler.GetCustomerByID)
		routerGroup.Patch("/{id}", handler.UpdateCustomer)
		routerGroup.Delete("/{id}", handler.DeleteCustomer)
	})
}

// CreateCustomer handles the creation of a new customer.
// @Summary Create a new customer
// @Description Create a new customer with the provided details. Privacy consent must be accepted.
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Create Customer Request"
// @Success 201 {object} response.Message "Customer created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers [post]
// @Security BearerAuth
func (handler *Handler) CreateCustomer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	req := dto.CreateCustomerRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Customer created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Customer created successfully")
}

// GetCustomers retrieves all customers based on query parameters.
// @Summary Get all customers
// @Description Retrieve all customers with optional filtering and pagination.
// @Tags Customer
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param last_name query string false "Filter by last name"
// @Param city query string false "Filter by city"
// @Success 200 {object} response.Data[dto.GetCustomersResponse] "List of customers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers [get]
// @Security BearerAuth
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	lastName := r.URL.Query().Get(model.FieldLastName)
	city := r.URL.Query().Get(model.FieldCity)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if lastName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLastName,
			Operator: gDto.FilterOperatorLike,
			Value:    lastName,
			Table:    model.TableName,
		})
	}

	if city != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorLike,
			Value:    city,
			Table:    model.TableName,
		})
	}

	customers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customers retrieved successfully")

	response.WithJSON(w, http.StatusOK, customers)
}

// SearchCustomers serves the autocomplete lookup over customer names.
// @Summary Search customers
// @Description Case-insensitive substring search over first and last name, capped at 10 results.
// @Tags Customer
// @Accept json
// @Produce json
// @Param q query string true "Search fragment"
// @Success 200 {object} response.Data[dto.SearchCustomersResponse] "Matching customers"
// @Failure 500 {object} response.Error
// @Router /v1/customers/search [get]
// @Security BearerAuth
func (handler *Handler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchCustomers")
	defer scope.End()

	query := r.URL.Query().Get(constant.RequestParamQuery)

	results, err := handler.service.Search(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search customers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, results)
}

// GetCustomerByID retrieves a customer by ID.
// @Summary Get a customer by ID
// @Description Retrieve a customer by their unique identifier.
// @Tags Customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Data[dto.CustomerResponse] "Customer details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	customer, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer retrieved successfully")

	response.WithJSON(w, http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer by ID.
// @Summary Update a customer by ID
// @Description Update the details of an existing customer. Privacy consent cannot be revoked.
// @Tags Customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body dto.UpdateCustomerRequest true "Update Customer Request"
// @Success 200 {object} response.Message "Customer updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCustomerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update customer")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Customer updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Customer updated successfully")
}

// DeleteCustomer deletes a customer by ID.
// @Summary Delete a customer by ID
// @Description Delete a customer. Their bookings are removed with them.
// @Tags Customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Message "Customer deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCustomer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete customer")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Customer deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Customer deleted successfully")
}
