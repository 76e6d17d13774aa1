package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"cospace/config"
	"cospace/infras/otel"
	"cospace/internal/domains/review/model"
	"cospace/internal/domains/review/model/dto"
	"cospace/internal/domains/review/repository"
	workspaceModel "cospace/internal/domains/workspace/model"
	workspaceRepo "cospace/internal/domains/workspace/repository"
	"cospace/shared"
	"cospace/shared/constant"
	gDto "cospace/shared/dto"
	"cospace/shared/failure"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetAll(ctx context.Context) (dto.GetReviewsResponse, error)
	Update(ctx context.Context, req dto.UpdateReviewRequest, id string) (dto.ReviewResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo          repository.Review
	workspaceRepo workspaceRepo.Workspace
	cfg           *config.Config
	otel          otel.Otel
}

func New(repo repository.Review, workspaceRepo workspaceRepo.Workspace, cfg *config.Config, otel otel.Otel) Review {
	return &serviceImpl{
		repo:          repo,
		workspaceRepo: workspaceRepo,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.workspaceRepo.Exist(ctx, shared.FilterByID(req.WorkspaceID, workspaceModel.FieldID, workspaceModel.TableName))
	if err != nil {
		return res, err
	}

	if !exist {
		return res, failure.NotFound(workspaceModel.EntityName)
	}

	review := req.ToModel(user)

	if err = s.repo.Insert(ctx, review); err != nil {
		return res, err
	}

	res.FromModel(review)

	return res, nil
}

// GetAll returns the caller's reviews, newest first.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	reviews, err := s.repo.GetAll(ctx, params, shared.FilterByID(user, model.FieldUserID, model.TableName))
	if err != nil {
		return res, err
	}

	res.FromModels(reviews)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReviewRequest, id string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	review, err := s.getOwned(ctx, id, user)
	if err != nil {
		return res, err
	}

	fields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return res, err
	}

	if req.Rating != 0 {
		review.Rating = req.Rating
	}

	if req.Comment != constant.Empty {
		review.Comment = req.Comment
	}

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getOwned(ctx, id, user); err != nil {
		return err
	}

	return s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (s *serviceImpl) getOwned(ctx context.Context, id, user string) (model.Review, error) {
	review, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return review, err
	}

	if review.ID == constant.Empty {
		return review, failure.NotFound(model.EntityName)
	}

	if review.UserID != user {
		return review, failure.Forbidden("review belongs to another user")
	}

	return review, nil
}
