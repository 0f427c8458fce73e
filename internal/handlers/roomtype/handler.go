package roomtype

import (
	"net/http"

	"passat/infras/otel"
	"passat/internal/domains/roomtype/model"
	"passat/internal/domains/roomtype/model/dto"
	"passat/internal/domains/roomtype/service"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	"passat/shared/validator"
	"passat/transport/http/middleware"
	"passat/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.RoomType
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.RoomType, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth, handler.middleware.RBAC)

		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Get("/{id}", handler.GetRoomTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateRoomType)
		routerGroup.Delete("/{id}", handler.DeleteRoomType)
	})
}

// CreateRoomType handles the creation of a new room type.
// @Summary Create a new room type
// @Description Create a new room type with category and nightly rate.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Create Room Type Request"
// @Success 201 {object} response.Message "Room type created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	req := dto.CreateRoomTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room type created successfully")
}

// GetRoomTypes retrieves all room types based on query parameters.
// @Summary Get all room types
// @Description Retrieve all room types with optional filtering and pagination.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[dto.GetRoomTypesResponse] "List of room types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	roomTypes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room types retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomTypes)
}

// GetRoomTypeByID retrieves a room type by its ID.
// @Summary Get a room type by ID
// @Description Retrieve a room type by its unique identifier.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} response.Data[dto.RoomTypeResponse] "Room type details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	roomType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room type retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomType)
}

// UpdateRoomType updates an existing room type by its ID.
// @Summary Update a room type by ID
// @Description Update the details of an existing room type.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Param request body dto.UpdateRoomTypeRequest true "Update Room Type Request"
// @Success 200 {object} response.Message "Room type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room type updated successfully")
}

// DeleteRoomType deletes a room type by its ID.
// @Summary Delete a room type by ID
// @Description Delete a room type. Rejected while rooms still reference it.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} response.Message "Room type deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room type deleted successfully")
}
