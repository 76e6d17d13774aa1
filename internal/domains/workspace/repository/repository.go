package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cospace/infras/otel"
	"cospace/infras/postgres"
	"cospace/internal/domains/workspace/model"
	gDto "cospace/shared/dto"
	gRepo "cospace/shared/repository"
)

type Workspace interface {
	Insert(ctx context.Context, model model.Workspace) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Workspace, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Workspace, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Workspace]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Workspace {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Workspace](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
