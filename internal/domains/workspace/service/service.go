package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"cospace/config"
	"cospace/infras/otel"
	bookingRepo "cospace/internal/domains/booking/repository"
	"cospace/internal/domains/workspace/model"
	"cospace/internal/domains/workspace/model/dto"
	"cospace/internal/domains/workspace/repository"
	"cospace/shared"
	"cospace/shared/cache"
	"cospace/shared/constant"
	gDto "cospace/shared/dto"
	"cospace/shared/failure"
)

const (
	cacheGetWorkspace  = "workspace:get"
	cacheGetWorkspaces = "workspace:gets"
)

type Workspace interface {
	Create(ctx context.Context, req dto.CreateWorkspaceRequest) (dto.WorkspaceResponse, error)
	Get(ctx context.Context, id string) (dto.WorkspaceResponse, error)
	GetAll(ctx context.Context, window *dto.AvailabilityWindow) (dto.ListWorkspacesResponse, error)
}

type serviceImpl struct {
	repo        repository.Workspace
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Workspace, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Workspace {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateWorkspaceRequest) (res dto.WorkspaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.Number, model.FieldNumber, model.TableName))
	if err != nil {
		return res, err
	}

	if exist {
		return res, failure.BadRequestFromString("workspace number already registered")
	}

	workspace := req.ToModel(user)

	if err = s.repo.Insert(ctx, workspace); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetWorkspaces)
	}()

	res.FromModel(workspace, false)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.WorkspaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	workspace, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	if workspace.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName)
	}

	res.FromModel(workspace, false)

	return res, nil
}

// GetAll lists every workspace. With a window it also reports occupancy:
// a workspace is booked when any active booking overlaps the window,
// available otherwise. The overlapping set comes from one query over the
// bookings table, not one query per workspace. Occupancy is computed live
// on every windowed call; only the windowless listing is cached, because
// workspace attributes are static while bookings change under our feet.
func (s *serviceImpl) GetAll(ctx context.Context, window *dto.AvailabilityWindow) (res dto.ListWorkspacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if window != nil && !window.StartTime.Before(window.EndTime) {
		return res, failure.BadRequestFromString("start_time must be before end_time")
	}

	cacheKey := shared.BuildCacheKey(cacheGetWorkspaces, "all")

	if window == nil {
		if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for workspaces")

			return res, nil
		}
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldType + ", " + model.FieldNumber,
		SortDir: gDto.SortDirAsc,
	}

	workspaces, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return res, err
	}

	bookedIDs := map[string]struct{}{}
	if window != nil {
		bookedIDs, err = s.bookingRepo.BookedWorkspaceIDs(ctx, window.StartTime, window.EndTime)
		if err != nil {
			return res, err
		}
	}

	res.FromModels(workspaces, bookedIDs)

	if window == nil {
		go func() {
			c := context.WithoutCancel(ctx)

			if cacheErr := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
				log.Error().Err(cacheErr).Msg("failed to cache workspaces")
			}
		}()
	}

	return res, nil
}
