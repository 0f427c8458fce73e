package service

import (
	"context"
	"fmt"

	"passat/config"
	"passat/infras/otel"
	"passat/internal/domains/customer/model"
	"passat/internal/domains/customer/model/dto"
	"passat/internal/domains/customer/repository"
	"passat/shared"
	"passat/shared/cache"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	"passat/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCustomer    = "customer:get"
	cacheGetAllCustomer = "customer:gets"
	cacheCountCustomer  = "customer:count"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CustomerResponse, error)
	Search(ctx context.Context, query string) (dto.SearchCustomersResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Customer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.PrivacyConsent {
		return failure.BadRequestFromString("privacy consent must be accepted") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheCountCustomer)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customers")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCustomer, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCustomer, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer")

		return res, nil
	}

	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("customer not found") //nolint:wrapcheck
	}

	res.FromModel(customer)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer to cache")
		}
	}()

	return res, nil
}

// Search returns the autocomplete matches for the given fragment, capped at
// constant.SearchResultLimit rows.
func (s *serviceImpl) Search(ctx context.Context, query string) (res dto.SearchCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Results = []dto.CustomerSearchResult{}

	if query == constant.Empty {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldFirstName,
				Operator: gDto.FilterOperatorLike,
				Value:    query,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldLastName,
				Operator: gDto.FilterOperatorLike,
				Value:    query,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		Limit:   constant.SearchResultLimit,
		SortBy:  model.FieldLastName,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search customers")

		return res, fmt.Errorf("failed to search customers: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.PrivacyConsent != nil && !*req.PrivacyConsent {
		return failure.BadRequestFromString("privacy consent must be accepted") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check customer existence")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("customer not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update customer")

		return fmt.Errorf("failed to update customer: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCustomer, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete customer cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheCountCustomer)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !exist {
		return failure.NotFound("customer not found") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete customer")

		return fmt.Errorf("failed to delete customer: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCustomer, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete customer from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
		shared.InvalidateCaches(c, s.cache, cacheCountCustomer)
	}()

	return nil
}
