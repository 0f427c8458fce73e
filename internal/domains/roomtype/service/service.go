package service

import (
	"context"
	"fmt"

	"passat/config"
	"passat/infras/otel"
	"passat/internal/domains/roomtype/model"
	"passat/internal/domains/roomtype/model/dto"
	"passat/internal/domains/roomtype/repository"
	"passat/shared"
	"passat/shared/cache"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	"passat/shared/failure"
	gRepo "passat/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomType    = "room_type:get"
	cacheGetAllRoomType = "room_type:gets"
	cacheCountRoomType  = "room_type:count"
)

type RoomType interface {
	Create(ctx context.Context, req dto.CreateRoomTypeRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomTypesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomTypeResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.RoomType
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.RoomType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RoomType {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomTypeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.NightlyRate.IsNegative() {
		return failure.BadRequestFromString("nightly rate must not be negative") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomType)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoomType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoomType, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	roomType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found") //nolint:wrapcheck
	}

	res.FromModel(roomType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.NightlyRate != nil && req.NightlyRate.IsNegative() {
		return failure.BadRequestFromString("nightly rate must not be negative") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type existence")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room type not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room type")

		return fmt.Errorf("failed to update room type: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomType, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room type cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomType)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room type exists")

		return fmt.Errorf("failed to check if room type exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room type not found") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsForeignKeyViolation(err) {
			return failure.Conflict("room type is still referenced by rooms") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete room type")

		return fmt.Errorf("failed to delete room type: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomType, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room type from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomType)
	}()

	return nil
}
