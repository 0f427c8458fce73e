package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"passat/config"
	"passat/infras/kafka"
	"passat/infras/otel"
	"passat/internal/domains/booking/model"
	"passat/internal/domains/booking/model/dto"
	"passat/internal/domains/booking/repository"
	"passat/shared"
	"passat/shared/cache"
	"passat/shared/clock"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	"passat/shared/failure"
	"passat/shared/refnum"
	gRepo "passat/shared/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	eventBookingCreated   = "booking.created"
	eventBookingCancelled = "booking.cancelled"

	calendarDays = 7
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	TotalPrice(ctx context.Context, id string) (dto.TotalPriceResponse, error)
	Calendar(ctx context.Context, date string) (dto.CalendarResponse, error)
	CreateCharge(ctx context.Context, req dto.CreateChargeRequest, bookingID string) error
	GetCharges(ctx context.Context, bookingID string) (dto.GetChargesResponse, error)
	UpdateCharge(ctx context.Context, req dto.UpdateChargeRequest, bookingID, chargeID string) error
	DeleteCharge(ctx context.Context, bookingID, chargeID string) error
}

type serviceImpl struct {
	repo       repository.Booking
	chargeRepo repository.OccupancyCharge
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	clock      clock.Clock
	publisher  kafka.Publisher
}

func New(
	repo repository.Booking,
	chargeRepo repository.OccupancyCharge,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	clock clock.Clock,
	publisher kafka.Publisher,
) Booking {
	return &serviceImpl{
		repo:       repo,
		chargeRepo: chargeRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		clock:      clock,
		publisher:  publisher,
	}
}

type bookingEvent struct {
	Event   string              `json:"event"`
	Booking dto.BookingResponse `json:"booking"`
}

// Create books a room for the half-open range [arrival, departure). The
// availability check and the insert run in one serializable transaction, and
// the generated booking number is redrawn on a unique collision up to
// refnum.MaxAttempts times.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	arrival, err := time.Parse(constant.DateOnlyFormat, req.ArrivalDate)
	if err != nil {
		return res, failure.BadRequestFromString("arrival_date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	departure, err := time.Parse(constant.DateOnlyFormat, req.DepartureDate)
	if err != nil {
		return res, failure.BadRequestFromString("departure_date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	if !departure.After(arrival) {
		return res, failure.BadRequestFromString("departure_date must be after arrival_date") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	for attempt := 0; attempt < refnum.MaxAttempts; attempt++ {
		number := refnum.Generate(constant.ReferencePrefixBooking, s.clock.Now())

		booking = req.ToModel(user, number)

		err = s.insertBooking(ctx, booking)
		if err == nil {
			break
		}

		if gRepo.IsUniqueViolation(err) {
			log.Warn().Str("bookingNumber", number).Int("attempt", attempt+1).Msg("booking number collision, redrawing")

			continue
		}

		return res, err
	}

	if err != nil {
		return res, failure.InternalError(errors.New("failed to allocate a unique booking number")) //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, eventBookingCreated, res)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

// insertBooking runs the availability check and the insert on one
// serializable transaction.
func (s *serviceImpl) insertBooking(ctx context.Context, booking model.Booking) error {
	tx, err := s.repo.BeginSerializableTx(ctx)
	if err != nil {
		return err
	}

	overlapping, err := s.repo.CountOverlappingTx(ctx, tx, booking.RoomID, booking.ArrivalDate, booking.DepartureDate, constant.Empty)
	if err != nil {
		_ = tx.Rollback()

		return err
	}

	if overlapping > 0 {
		_ = tx.Rollback()

		return failure.Conflict("room is not available for the requested period") //nolint:wrapcheck
	}

	if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
		_ = tx.Rollback()

		if gRepo.IsExclusionViolation(err) {
			return failure.Conflict("room is not available for the requested period") //nolint:wrapcheck
		}

		if gRepo.IsForeignKeyViolation(err) {
			return failure.BadRequestFromString("customer or room does not exist") //nolint:wrapcheck
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

// Update patches a booking. When the room or the stay range changes, the
// availability predicate is re-checked in a serializable transaction against
// every other active booking. The booking number is never regenerated.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if current.Status == model.StatusCancelled {
		return failure.BadRequestFromString("cancelled bookings cannot be modified") //nolint:wrapcheck
	}

	roomID := current.RoomID
	if req.RoomID != constant.Empty {
		roomID = req.RoomID
	}

	arrival := current.ArrivalDate

	if req.ArrivalDate != constant.Empty {
		arrival, err = time.Parse(constant.DateOnlyFormat, req.ArrivalDate)
		if err != nil {
			return failure.BadRequestFromString("arrival_date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
		}
	}

	departure := current.DepartureDate

	if req.DepartureDate != constant.Empty {
		departure, err = time.Parse(constant.DateOnlyFormat, req.DepartureDate)
		if err != nil {
			return failure.BadRequestFromString("departure_date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
		}
	}

	if !departure.After(arrival) {
		return failure.BadRequestFromString("departure_date must be after arrival_date") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	stayChanged := roomID != current.RoomID ||
		!arrival.Equal(current.ArrivalDate) ||
		!departure.Equal(current.DepartureDate)

	if stayChanged {
		err = s.updateWithAvailabilityCheck(ctx, id, roomID, arrival, departure, updatedFields, filter)
	} else {
		err = s.repo.Update(ctx, updatedFields, filter)
	}

	if err != nil {
		if gRepo.IsExclusionViolation(err) {
			return failure.Conflict("room is not available for the requested period") //nolint:wrapcheck
		}

		if gRepo.IsForeignKeyViolation(err) {
			return failure.BadRequestFromString("customer or room does not exist") //nolint:wrapcheck
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, id)
	}()

	return nil
}

func (s *serviceImpl) updateWithAvailabilityCheck(
	ctx context.Context,
	id, roomID string,
	arrival, departure time.Time,
	updatedFields map[string]any,
	filter gDto.FilterGroup,
) error {
	tx, err := s.repo.BeginSerializableTx(ctx)
	if err != nil {
		return err
	}

	overlapping, err := s.repo.CountOverlappingTx(ctx, tx, roomID, arrival, departure, id)
	if err != nil {
		_ = tx.Rollback()

		return err
	}

	if overlapping > 0 {
		_ = tx.Rollback()

		return failure.Conflict("room is not available for the requested period") //nolint:wrapcheck
	}

	if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}

// Cancel transitions a booking to cancelled. Cancelled bookings stop blocking
// their room immediately.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if current.Status == model.StatusCancelled {
		return failure.BadRequestFromString("booking is already cancelled") //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: s.clock.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	current.Status = model.StatusCancelled

	res := dto.BookingResponse{}
	res.FromModel(current)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, eventBookingCancelled, res)
		s.invalidateBookingCaches(c, id)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsForeignKeyViolation(err) {
			return failure.Conflict("booking is still referenced by invoices") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, id)
	}()

	return nil
}

// TotalPrice is nightly rate times nights plus the occupancy charge totals.
// Both the room line and the charges fall back to zero when unset.
func (s *serviceImpl) TotalPrice(ctx context.Context, id string) (res dto.TotalPriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TotalPrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.BookingID = booking.ID
	res.Nights = booking.Nights()
	res.NightlyRate = booking.NightlyRate
	res.RoomTotal = decimal.Zero
	res.ChargesTotal = decimal.Zero

	if booking.RoomID != constant.Empty && res.Nights > 0 {
		res.RoomTotal = booking.NightlyRate.Mul(decimal.NewFromInt(int64(res.Nights)))
	}

	charges, err := s.chargeRepo.GetAll(ctx, gDto.QueryParams{}, s.filterByBooking(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy charges")

		return res, fmt.Errorf("failed to get occupancy charges: %w", err)
	}

	for _, charge := range charges {
		res.ChargesTotal = res.ChargesTotal.Add(charge.Total)
	}

	res.Total = res.RoomTotal.Add(res.ChargesTotal)

	return res, nil
}

// Calendar resolves the Monday..Sunday week containing the given date and
// returns, per day, the active bookings covering it (arrival <= day <
// departure).
func (s *serviceImpl) Calendar(ctx context.Context, date string) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The default day is the clock's local calendar date, built in UTC the
	// same way parsed date-only inputs are. Truncating the instant would
	// shift to the previous day shortly after a local midnight.
	now := s.clock.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if date != constant.Empty {
		day, err = time.Parse(constant.DateOnlyFormat, date)
		if err != nil {
			return res, failure.BadRequestFromString("date must be in YYYY-MM-DD format") //nolint:wrapcheck
		}
	}

	offset := (int(day.Weekday()) + 6) % 7
	weekStart := day.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, calendarDays-1)

	bookings, err := s.repo.ListOverlapping(ctx, weekStart, weekStart.AddDate(0, 0, calendarDays))
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings for calendar")

		return res, fmt.Errorf("failed to list bookings for calendar: %w", err)
	}

	res.WeekStart = weekStart.Format(constant.DateOnlyFormat)
	res.WeekEnd = weekEnd.Format(constant.DateOnlyFormat)
	res.Days = make([]dto.CalendarDay, calendarDays)

	for i := range calendarDays {
		current := weekStart.AddDate(0, 0, i)

		entries := []dto.CalendarEntry{}

		for _, booking := range bookings {
			if !booking.Covers(current) {
				continue
			}

			entries = append(entries, dto.CalendarEntry{
				BookingID:     booking.ID,
				BookingNumber: booking.BookingNumber,
				RoomID:        booking.RoomID,
				RoomNumber:    booking.RoomNumber,
				CustomerName:  booking.CustomerFullName(),
				Status:        booking.Status,
				ArrivalDate:   booking.ArrivalDate.Format(constant.DateOnlyFormat),
				DepartureDate: booking.DepartureDate.Format(constant.DateOnlyFormat),
			})
		}

		res.Days[i] = dto.CalendarDay{
			Date:    current.Format(constant.DateOnlyFormat),
			Entries: entries,
		}
	}

	return res, nil
}

func (s *serviceImpl) CreateCharge(ctx context.Context, req dto.CreateChargeRequest, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCharge")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getBooking(ctx, bookingID); err != nil {
		return err
	}

	if req.UnitPrice.IsNegative() {
		return failure.BadRequestFromString("unit_price must not be negative") //nolint:wrapcheck
	}

	if err := s.chargeRepo.Insert(ctx, req.ToModel(user, bookingID)); err != nil {
		log.Error().Err(err).Msg("failed to create occupancy charge")

		return fmt.Errorf("failed to create occupancy charge: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, bookingID)
	}()

	return nil
}

func (s *serviceImpl) GetCharges(ctx context.Context, bookingID string) (res dto.GetChargesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCharges")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getBooking(ctx, bookingID); err != nil {
		return res, err
	}

	params := gDto.QueryParams{
		SortBy:  model.ChargeTableName + "." + model.FieldChargeDate,
		SortDir: gDto.SortDirAsc,
	}

	charges, err := s.chargeRepo.GetAll(ctx, params, s.filterByBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy charges")

		return res, fmt.Errorf("failed to get occupancy charges: %w", err)
	}

	res.FromModels(charges)

	return res, nil
}

// UpdateCharge patches a charge and recomputes its total from the effective
// quantity and unit price.
func (s *serviceImpl) UpdateCharge(ctx context.Context, req dto.UpdateChargeRequest, bookingID, chargeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCharge")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := s.filterChargeByID(bookingID, chargeID)

	current, err := s.chargeRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy charge")

		return fmt.Errorf("failed to get occupancy charge: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("occupancy charge not found") //nolint:wrapcheck
	}

	quantity := current.Quantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	unitPrice := current.UnitPrice
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}

	if unitPrice.IsNegative() {
		return failure.BadRequestFromString("unit_price must not be negative") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	updatedFields[model.FieldChargeTotal] = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	if err := s.chargeRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update occupancy charge")

		return fmt.Errorf("failed to update occupancy charge: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, bookingID)
	}()

	return nil
}

func (s *serviceImpl) DeleteCharge(ctx context.Context, bookingID, chargeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCharge")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.filterChargeByID(bookingID, chargeID)

	exist, err := s.chargeRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if occupancy charge exists")

		return fmt.Errorf("failed to check if occupancy charge exists: %w", err)
	}

	if !exist {
		return failure.NotFound("occupancy charge not found") //nolint:wrapcheck
	}

	if err := s.chargeRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete occupancy charge")

		return fmt.Errorf("failed to delete occupancy charge: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, bookingID)
	}()

	return nil
}

func (s *serviceImpl) filterByBooking(bookingID string) gDto.FilterGroup {
	return shared.FilterByID(bookingID, model.FieldChargeBookingID, model.ChargeTableName)
}

func (s *serviceImpl) filterChargeByID(bookingID, chargeID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldChargeID,
				Operator: gDto.FilterOperatorEq,
				Value:    chargeID,
				Table:    model.ChargeTableName,
			},
			gDto.Filter{
				ArgName:  "booking_id",
				Field:    model.FieldChargeBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.ChargeTableName,
			},
		},
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking dto.BookingResponse) {
	message := kafka.Message{
		Key: booking.ID,
		Value: bookingEvent{
			Event:   event,
			Booking: booking,
		},
	}

	if err := s.publisher.Publish(ctx, constant.KafkaTopicBookingEvents, message); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}
