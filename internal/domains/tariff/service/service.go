package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"cospace/config"
	"cospace/infras/otel"
	"cospace/internal/domains/tariff/model"
	"cospace/internal/domains/tariff/model/dto"
	"cospace/internal/domains/tariff/repository"
	"cospace/shared"
	"cospace/shared/cache"
	"cospace/shared/constant"
	gDto "cospace/shared/dto"
	"cospace/shared/failure"
)

const cacheGetTariffs = "tariff:gets"

type Tariff interface {
	Create(ctx context.Context, req dto.CreateTariffRequest) (dto.TariffResponse, error)
	Get(ctx context.Context, id string) (dto.TariffResponse, error)
	GetAll(ctx context.Context) (dto.GetTariffsResponse, error)
	Update(ctx context.Context, req dto.UpdateTariffRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Tariff
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Tariff, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Tariff {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTariffRequest) (res dto.TariffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	tariff := req.ToModel(user)

	if err = s.repo.Insert(ctx, tariff); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.BadRequestFromString("plan_type must be unique")
		}

		return res, err
	}

	s.invalidate(ctx)

	res.FromModel(tariff)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TariffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	tariff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	if tariff.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName)
	}

	res.FromModel(tariff)

	return res, nil
}

// GetAll lists all tariffs. Tariffs change rarely, so the listing is cached.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetTariffsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTariffs, "all")

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tariffs")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldPlanType,
		SortDir: gDto.SortDirAsc,
	}

	tariffs, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return res, err
	}

	res.FromModels(tariffs)

	go func() {
		c := context.WithoutCancel(ctx)

		if cacheErr := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
			log.Error().Err(cacheErr).Msg("failed to cache tariffs")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTariffRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return err
	}

	if !exist {
		return failure.NotFound(model.EntityName)
	}

	fields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return failure.BadRequestFromString("plan_type must be unique")
		}

		return err
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return err
	}

	if !exist {
		return failure.NotFound(model.EntityName)
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return err
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetTariffs)
	}()
}
